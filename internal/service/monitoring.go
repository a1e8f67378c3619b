package service

import (
	"context"
	"time"

	"growroom/internal/biobizz"
)

type MonitoringService struct {
	loader stateLoader
	now    func() time.Time
}

func NewMonitoringService(loader stateLoader) *MonitoringService {
	return &MonitoringService{loader: loader, now: time.Now}
}

// Status classifies r against the EC target of week (clamped to the schedule).
func (s *MonitoringService) Status(r biobizz.SensorReading, week int) StatusView {
	return classify(r, week)
}

// Live classifies the latest stored snapshot for the current grow week.
// Before the first reading every dimension is unknown.
func (s *MonitoringService) Live(ctx context.Context) (LiveStatus, error) {
	now := s.now().UTC()
	st, err := s.loader.load(ctx, now)
	if err != nil {
		return LiveStatus{}, err
	}
	view, recs := evaluate(st, now)

	snap := st.Snapshot
	snap.UpdatedAt = toUTC(snap.UpdatedAt)
	return LiveStatus{
		Telemetry:       snap,
		Phase:           biobizz.PhaseForWeek(view.Week),
		Status:          view,
		Recommendations: recs,
		ActivePlants:    len(st.Plants),
		GeneratedAt:     now,
	}, nil
}
