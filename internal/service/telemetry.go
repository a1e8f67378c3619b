package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"growroom/internal/biobizz"
	"growroom/internal/device"
	"growroom/internal/logger"
	"growroom/internal/models"
	"growroom/internal/repository"
)

// Alert keys stored on the snapshot, one per critical dimension.
const (
	AlertEC          = "ec"
	AlertPH          = "ph"
	AlertTemperature = "temp"
	AlertSoil        = "soil"
	AlertTank        = "tank"
)

// TelemetryService stores controller snapshots and raises alerts.
type TelemetryService struct {
	client    device.Client
	telemetry repository.TelemetryRepo
	plants    repository.PlantRepo
	events    repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

// NewTelemetryService builds the service. A nil log discards output.
func NewTelemetryService(client device.Client, telemetry repository.TelemetryRepo, plants repository.PlantRepo, events repository.EventRepo, log *logger.Logger) *TelemetryService {
	if log == nil {
		log = logger.Nop()
	}
	return &TelemetryService{
		client:    client,
		telemetry: telemetry,
		plants:    plants,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// Run polls the controller at the given interval until ctx is canceled.
// A failed poll or store is logged and skipped; the next tick tries again.
func (s *TelemetryService) Run(ctx context.Context, tick time.Duration) {
	if s.client == nil || tick <= 0 {
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			snap, err := s.client.FetchStatus(ctx)
			if err != nil {
				s.log.Warnw("telemetry_poll_failed", "err", err)
				continue
			}
			if _, err := s.Ingest(ctx, snap); err != nil {
				s.log.Warnw("telemetry_ingest_failed", "err", err)
			}
		}
	}
}

// Ingest classifies snap for the current grow week, appends an ALERT event for
// every dimension that turned critical since the previous snapshot and stores it.
func (s *TelemetryService) Ingest(ctx context.Context, snap models.TelemetrySnapshot) (models.TelemetrySnapshot, error) {
	now := s.now().UTC()
	if snap.UpdatedAt.IsZero() {
		snap.UpdatedAt = now
	}
	snap.UpdatedAt = snap.UpdatedAt.UTC()

	prev, err := s.telemetry.Load(ctx)
	if err != nil {
		return models.TelemetrySnapshot{}, fmt.Errorf("load telemetry: %w", err)
	}
	plants, err := s.plants.ListActive(ctx)
	if err != nil {
		return models.TelemetrySnapshot{}, fmt.Errorf("list plants: %w", err)
	}

	view := classify(readingFromSnapshot(snap), currentWeek(plants, now))
	snap.Alerts = criticalAlerts(view.Report)

	for _, a := range snap.Alerts {
		if hasString(prev.Alerts, a) {
			continue
		}
		if err := s.events.Append(ctx, alertEvent(a, view, now)); err != nil {
			return models.TelemetrySnapshot{}, fmt.Errorf("append alert: %w", err)
		}
	}

	snap.ID = 1
	if err := s.telemetry.Save(ctx, snap); err != nil {
		return models.TelemetrySnapshot{}, fmt.Errorf("save telemetry: %w", err)
	}
	return snap, nil
}

func (s *TelemetryService) Latest(ctx context.Context) (models.TelemetrySnapshot, error) {
	snap, err := s.telemetry.Load(ctx)
	if err != nil {
		return models.TelemetrySnapshot{}, err
	}
	snap.UpdatedAt = toUTC(snap.UpdatedAt)
	return snap, nil
}

func criticalAlerts(r biobizz.StatusReport) []string {
	var out []string
	for _, d := range []struct {
		key string
		c   biobizz.Classification
	}{
		{AlertEC, r.EC},
		{AlertPH, r.PH},
		{AlertTemperature, r.Temperature},
		{AlertSoil, r.Soil},
		{AlertTank, r.Tank},
	} {
		if d.c.Critical() {
			out = append(out, d.key)
		}
	}
	return out
}

func alertEvent(key string, view StatusView, now time.Time) models.GrowEvent {
	var (
		value float64
		c     biobizz.Classification
	)
	switch key {
	case AlertEC:
		value, c = view.Reading.EC, view.Report.EC
	case AlertPH:
		value, c = view.Reading.PH, view.Report.PH
	case AlertTemperature:
		value, c = view.Reading.Temperature, view.Report.Temperature
	case AlertSoil:
		value, c = view.Reading.Soil, view.Report.Soil
	case AlertTank:
		value, c = view.Reading.TankLevel, view.Report.Tank
	}
	return models.GrowEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventAlert,
		Description: fmt.Sprintf("%s %s (%.2f)", key, c.Status, value),
		Metadata: map[string]any{
			"dimension": key,
			"status":    c.Status,
			"value":     value,
			"week":      view.Week,
		},
	}
}

func hasString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
