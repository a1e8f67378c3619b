package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"growroom/internal/biobizz"
)

const errInvalidWeek = "invalid week; use a whole number"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List products
// @Description  The BioBizz catalogue in display order.
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  biobizz.Product
// @Router       /api/v1/products [get]
func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, biobizz.Products)
}

// @Summary      List growth phases
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  biobizz.GrowthPhase
// @Router       /api/v1/phases [get]
func (h *Handler) listPhases(c *gin.Context) {
	c.JSON(http.StatusOK, biobizz.Phases)
}

// @Summary      List substrates
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  biobizz.Substrate
// @Router       /api/v1/substrates [get]
func (h *Handler) listSubstrates(c *gin.Context) {
	c.JSON(http.StatusOK, biobizz.Substrates)
}

// @Summary      Feeding schedule
// @Tags         catalogue
// @Produce      json
// @Success      200  {array}  biobizz.WeekEntry
// @Router       /api/v1/schedule [get]
func (h *Handler) getSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, biobizz.Schedule)
}

// @Summary      Schedule row for a week
// @Description  Weeks outside 1..16 are clamped.
// @Tags         catalogue
// @Produce      json
// @Param        week  path  int  true  "Grow week"  example(10)
// @Success      200  {object}  biobizz.WeekEntry
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/schedule/{week} [get]
func (h *Handler) getScheduleWeek(c *gin.Context) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidWeek})
		return
	}
	c.JSON(http.StatusOK, biobizz.ScheduleForWeek(week))
}

// queryWeek reads ?week=, zero when absent.
func queryWeek(c *gin.Context) (int, bool) {
	s := c.Query("week")
	if s == "" {
		return 0, true
	}
	w, err := strconv.Atoi(s)
	if err != nil || w < 0 {
		return 0, false
	}
	return w, true
}
