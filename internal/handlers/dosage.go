package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growroom/internal/models"
	"growroom/internal/service"
)

const errInvalidLiters = "invalid 'liters'; use a number greater than 0"

// LogDoseRequest is the payload of POST /api/v1/doses.
type LogDoseRequest struct {
	// Tank volume in liters
	Liters float64 `json:"liters" binding:"required" example:"10"`
	// Grow week, 0 or omitted means the current week
	Week int `json:"week,omitempty" example:"10"`
	// allMix | lightMix | cocoMix, omitted means the configured default
	Substrate string `json:"substrate,omitempty" example:"lightMix"`
	Notes     string `json:"notes,omitempty" example:"first feed after flip"`
}

// @Summary      Calculate a dosage plan
// @Description  Nothing is stored. Without week the current grow week is used.
// @Tags         dosage
// @Produce      json
// @Param        liters     query  number  true   "Tank volume in liters"  example(10)
// @Param        week       query  int     false  "Grow week (1..16)"  example(10)
// @Param        substrate  query  string  false  "Substrate"  Enums(allMix,lightMix,cocoMix)
// @Success      200  {object}  biobizz.DosagePlan
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dosage [get]
func (h *Handler) getDosage(c *gin.Context) {
	liters, err := strconv.ParseFloat(c.Query("liters"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidLiters})
		return
	}
	week, ok := queryWeek(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidWeek})
		return
	}
	if week == 0 {
		week, err = h.services.Dosage.CurrentWeek(c.Request.Context())
		if err != nil {
			h.serviceError(c, "dosage_current_week_failed", err)
			return
		}
	}
	plan, err := h.services.Dosage.Plan(liters, week, c.Query("substrate"))
	if err != nil {
		h.serviceError(c, "dosage_plan_failed", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// @Summary      Log a fed mix
// @Description  Stores the plan as a dose log, takes the amounts out of owned bottles and appends a DOSE event.
// @Tags         dosage
// @Accept       json
// @Produce      json
// @Param        body  body  LogDoseRequest  true  "Dose payload"
// @Success      201  {object}  service.DoseResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/doses [post]
func (h *Handler) logDose(c *gin.Context) {
	var req LogDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	res, err := h.services.Dosage.LogDose(c.Request.Context(), service.DoseRequest{
		Liters:    req.Liters,
		Week:      req.Week,
		Substrate: req.Substrate,
		Notes:     req.Notes,
	})
	if err != nil {
		h.serviceError(c, "dose_log_failed", err, "liters", req.Liters, "week", req.Week)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary      List dose logs
// @Description  Newest first. Same date formats as /api/v1/events.
// @Tags         dosage
// @Produce      json
// @Param        from  query  string  false  "Start of range"  example(2025-08-01)
// @Param        to    query  string  false  "End of range, date-only means end of day"  example(2025-08-31)
// @Success      200  {object}  map[string]interface{}  "count, doses"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/doses [get]
func (h *Handler) listDoses(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	doses, err := h.services.Dosage.ListDoses(c.Request.Context(), service.DoseFilter{From: from, To: to})
	if err != nil {
		h.serviceError(c, "dose_list_failed", err, "from", from, "to", to)
		return
	}
	if doses == nil {
		doses = []models.DoseLog{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(doses),
		"doses": doses,
	})
}
