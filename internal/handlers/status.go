package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"growroom/internal/biobizz"
	"growroom/internal/models"
)

const (
	errLiveStatus      = "failed to load live status"
	errRecommendations = "failed to evaluate recommendations"
)

// EvaluateRequest is the payload of POST /api/v1/recommendations/evaluate.
// Empty statuses are derived from the current readings and week.
type EvaluateRequest struct {
	ECStatus        biobizz.Status                    `json:"ec_status,omitempty" example:"optimal"`
	PHStatus        biobizz.Status                    `json:"ph_status,omitempty" example:"optimal"`
	CurrentEC       float64                           `json:"current_ec" example:"2.9"`
	CurrentPH       float64                           `json:"current_ph" example:"6.3"`
	TankLevel       float64                           `json:"tank_level" example:"45"`
	AvgSoilMoisture float64                           `json:"avg_soil_moisture" example:"38"`
	CurrentWeek     int                               `json:"current_week" example:"10"`
	ActivePlants    []models.Plant                    `json:"active_plants,omitempty"`
	Inventory       map[string]models.InventoryRecord `json:"inventory,omitempty"`
	Now             *time.Time                        `json:"now,omitempty"`
}

func (r EvaluateRequest) input() biobizz.RecommendationInput {
	entry := biobizz.ScheduleForWeek(r.CurrentWeek)
	target := entry.ECTarget

	in := biobizz.RecommendationInput{
		ECStatus:        r.ECStatus,
		PHStatus:        r.PHStatus,
		CurrentEC:       r.CurrentEC,
		CurrentPH:       r.CurrentPH,
		TankLevel:       r.TankLevel,
		AvgSoilMoisture: r.AvgSoilMoisture,
		ActivePlants:    r.ActivePlants,
		CurrentWeek:     entry.Week,
		Schedule:        entry,
		Inventory:       make(map[biobizz.ProductID]models.InventoryRecord, len(r.Inventory)),
	}
	if in.ECStatus == "" {
		in.ECStatus = biobizz.ClassifyEC(r.CurrentEC, &target).Status
	}
	if in.PHStatus == "" {
		in.PHStatus = biobizz.ClassifyPH(r.CurrentPH).Status
	}
	for id, rec := range r.Inventory {
		if rec.ProductID == "" {
			rec.ProductID = id
		}
		in.Inventory[biobizz.ProductID(id)] = rec
	}
	if r.Now != nil {
		in.Now = r.Now.UTC()
	}
	return in
}

// queryFloat reads an optional numeric query parameter, zero meaning no reading.
func queryFloat(c *gin.Context, key string) (float64, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// @Summary      Classify a reading
// @Description  Missing values are reported as unknown. Without week the current grow week is used.
// @Tags         status
// @Produce      json
// @Param        ec    query  number  false  "EC in mS/cm"  example(1.8)
// @Param        ph    query  number  false  "pH"  example(6.3)
// @Param        temp  query  number  false  "Temperature in °C"  example(22)
// @Param        soil  query  number  false  "Average soil moisture in %"  example(45)
// @Param        tank  query  number  false  "Reservoir level in %"  example(60)
// @Param        week  query  int     false  "Grow week"  example(10)
// @Success      200  {object}  service.StatusView
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	var r biobizz.SensorReading
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"ec", &r.EC},
		{"ph", &r.PH},
		{"temp", &r.Temperature},
		{"soil", &r.Soil},
		{"tank", &r.TankLevel},
	} {
		v, ok := queryFloat(c, f.key)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid '" + f.key + "'; use a number"})
			return
		}
		*f.dst = v
	}

	week, ok := queryWeek(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidWeek})
		return
	}
	if week == 0 {
		var err error
		week, err = h.services.Dosage.CurrentWeek(c.Request.Context())
		if err != nil {
			h.serviceError(c, "status_current_week_failed", err)
			return
		}
	}
	c.JSON(http.StatusOK, h.services.Monitoring.Status(r, week))
}

// @Summary      Live status
// @Description  Latest controller snapshot classified for the current week, with recommendations.
// @Tags         status
// @Produce      json
// @Success      200  {object}  service.LiveStatus
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/status/live [get]
func (h *Handler) getLiveStatus(c *gin.Context) {
	live, err := h.services.Monitoring.Live(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLiveStatus, "status_live_failed", err)
		return
	}
	c.JSON(http.StatusOK, live)
}

// @Summary      Current recommendations
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, recommendations"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/recommendations [get]
func (h *Handler) getRecommendations(c *gin.Context) {
	recs, err := h.services.Advisor.Recommendations(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRecommendations, "recommendations_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":           len(recs),
		"recommendations": recs,
	})
}

// @Summary      Evaluate recommendations for a hypothetical grow
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body  EvaluateRequest  true  "Rule input"
// @Success      200  {object}  map[string]interface{}  "count, recommendations"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/recommendations/evaluate [post]
func (h *Handler) evaluateRecommendations(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	recs := h.services.Advisor.Evaluate(req.input())
	c.JSON(http.StatusOK, gin.H{
		"count":           len(recs),
		"recommendations": recs,
	})
}
