package handlers

import (
	"errors"
	"net/http"
	"testing"

	"growroom/internal/models"
	"growroom/internal/service"
)

func TestPushTelemetry_AcceptsControllerJSON(t *testing.T) {
	tel := &mockTelemetry{}
	r := newTestRouter(&service.Service{Telemetry: tel})

	body := `{"ec":1.85,"ph":6.3,"temp":23.5,"reservoirLevel_percent":64,"soil":[41,0,47],"pumpRunning":true,"pumpProgress":35}`
	w := do(t, r, http.MethodPost, "/api/v1/telemetry", body)
	if w.Code != http.StatusOK {
		t.Fatalf("push status=%d, body=%s", w.Code, w.Body.String())
	}
	if len(tel.ingested) != 1 {
		t.Fatalf("want 1 ingested snapshot, got %d", len(tel.ingested))
	}
	got := tel.ingested[0]
	if got.EC != 1.85 || got.TankPercent != 64 || len(got.Soil) != 3 || !got.PumpRunning || got.PumpProgress != 35 {
		t.Fatalf("snapshot not decoded: %+v", got)
	}

	if w := do(t, r, http.MethodPost, "/api/v1/telemetry", `{"ec":"high"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad body: %d", w.Code)
	}
}

func TestTelemetry_Errors(t *testing.T) {
	r := newTestRouter(&service.Service{Telemetry: &mockTelemetry{err: errors.New("db down")}})

	if w := do(t, r, http.MethodPost, "/api/v1/telemetry", `{"ec":1}`); w.Code != http.StatusInternalServerError || errorOf(t, w) != errTelemetryIngest {
		t.Fatalf("ingest error: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodGet, "/api/v1/telemetry", nil); w.Code != http.StatusInternalServerError || errorOf(t, w) != errTelemetryLoad {
		t.Fatalf("load error: %d %s", w.Code, w.Body.String())
	}
}

func TestGetTelemetry(t *testing.T) {
	r := newTestRouter(&service.Service{Telemetry: &mockTelemetry{snap: models.TelemetrySnapshot{ID: 1, PH: 6.1, Alerts: []string{"tank"}}}})

	var snap models.TelemetrySnapshot
	w := do(t, r, http.MethodGet, "/api/v1/telemetry", nil)
	decode(t, w, &snap)
	if w.Code != http.StatusOK || snap.PH != 6.1 || len(snap.Alerts) != 1 {
		t.Fatalf("unexpected snapshot: %d %+v", w.Code, snap)
	}
}
