package device

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"growroom/internal/models"
)

const statusPath = "/api/status"

// Client reads the grow controller's sensor snapshot.
type Client interface {
	FetchStatus(ctx context.Context) (models.TelemetrySnapshot, error)
}

// ESP32Client is a resty-backed Client for the controller's HTTP API.
type ESP32Client struct {
	httpClient *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *ESP32Client {
	c := resty.New()
	c.SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &ESP32Client{httpClient: c}
}

// FetchStatus calls GET /api/status. UpdatedAt is stamped on receipt since the
// controller has no clock.
func (c *ESP32Client) FetchStatus(ctx context.Context) (models.TelemetrySnapshot, error) {
	var snap models.TelemetrySnapshot

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&snap).
		Get(statusPath)
	if err != nil {
		return models.TelemetrySnapshot{}, fmt.Errorf("fetch controller status: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.TelemetrySnapshot{}, fmt.Errorf("controller status: unexpected http %d", resp.StatusCode())
	}

	snap.UpdatedAt = time.Now().UTC()
	return snap, nil
}
