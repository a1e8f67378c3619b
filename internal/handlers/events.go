package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"growroom/internal/models"
	"growroom/internal/service"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRange       = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

var queryTimeLayouts = []string{time.RFC3339, layoutDateTime, layoutDate}

// parseQueryTime accepts any of queryTimeLayouts and returns UTC.
func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range queryTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'", s)
}

func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// queryBound parses one optional range bound. A date-only upper bound is
// moved to the last instant of that day.
func queryBound(raw string, upper bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := parseQueryTime(raw)
	if err != nil {
		return time.Time{}, err
	}
	if upper && isDateOnly(raw) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// parseRange reads ?from=&to=. On failure the 400 response is already written.
func parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	reject := func(msg string) (time.Time, time.Time, bool) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return time.Time{}, time.Time{}, false
	}

	from, err := queryBound(c.Query("from"), false)
	if err != nil {
		return reject(errFromInvalid)
	}
	if to, err = queryBound(c.Query("to"), true); err != nil {
		return reject(errToInvalid)
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return reject(errRange)
	}
	return from, to, true
}

// @Summary      List grow events
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         events
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2025-08-01)
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        type  query   string  false  "Event type"  Enums(ALERT,RECOMMENDATION,LOW_STOCK,DOSE,REFILL)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/events [get]
func (h *Handler) getEvents(c *gin.Context) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}
	filter := service.LogFilter{From: from, To: to, Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	if err != nil {
		h.serviceError(c, "events_list_failed", err, "from", from, "to", to, "type", filter.Type)
		return
	}
	if events == nil {
		events = []models.GrowEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}
