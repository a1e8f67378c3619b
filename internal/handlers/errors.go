package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"growroom/internal/service"
)

const (
	statusOK = "ok"

	errInvalidBodyPref = "invalid body: "
	errStorage         = "storage unavailable"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// serviceError maps validation errors to 400, unknown products to 404 and
// everything else to 500. Only 500s are logged.
func (h *Handler) serviceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidLiters),
		errors.Is(err, service.ErrInvalidPatch),
		errors.Is(err, service.ErrInvalidPlant),
		errors.Is(err, service.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownProduct):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errStorage, logKey, err, kv...)
	}
}
