package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"growroom/internal/models"
)

const (
	errTelemetryLoad   = "failed to load telemetry"
	errTelemetryIngest = "failed to store telemetry"
)

// @Summary      Latest controller snapshot
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.TelemetrySnapshot
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry [get]
func (h *Handler) getTelemetry(c *gin.Context) {
	snap, err := h.services.Telemetry.Latest(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errTelemetryLoad, "telemetry_load_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Push a controller snapshot
// @Description  Same JSON as the ESP32 /api/status endpoint. Newly critical readings are logged as ALERT events.
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        body  body  models.TelemetrySnapshot  true  "Snapshot"
// @Success      200  {object}  models.TelemetrySnapshot
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry [post]
func (h *Handler) pushTelemetry(c *gin.Context) {
	var snap models.TelemetrySnapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	stored, err := h.services.Telemetry.Ingest(c.Request.Context(), snap)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errTelemetryIngest, "telemetry_ingest_failed", err)
		return
	}
	c.JSON(http.StatusOK, stored)
}
