package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"growroom/internal/models"
)

type TelemetrySQLite struct {
	db *sql.DB
}

func NewTelemetrySQLite(db *sql.DB) *TelemetrySQLite {
	return &TelemetrySQLite{db: db}
}

const (
	telemetryRowID = 1

	upsertTelemetrySQL = `
		INSERT INTO telemetry_state (id, ec, ph, temp_c, tank_percent, soil, pump_running, pump_progress, alerts, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ec=excluded.ec,
			ph=excluded.ph,
			temp_c=excluded.temp_c,
			tank_percent=excluded.tank_percent,
			soil=excluded.soil,
			pump_running=excluded.pump_running,
			pump_progress=excluded.pump_progress,
			alerts=excluded.alerts,
			updated_at=excluded.updated_at
	`

	selectTelemetrySQL = `
		SELECT id, ec, ph, temp_c, tank_percent, soil, pump_running, pump_progress, alerts, updated_at
		FROM telemetry_state WHERE id=?
	`
)

func marshalJSONList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalJSONList[T any](s sql.NullString) ([]T, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal([]byte(s.String), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the latest snapshot (row id 1).
func (r *TelemetrySQLite) Save(ctx context.Context, s models.TelemetrySnapshot) error {
	soil, err := marshalJSONList(s.Soil)
	if err != nil {
		return err
	}
	alerts, err := marshalJSONList(s.Alerts)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, upsertTelemetrySQL,
		telemetryRowID,
		s.EC,
		s.PH,
		s.TempC,
		s.TankPercent,
		soil,
		s.PumpRunning,
		s.PumpProgress,
		alerts,
		utcOrNow(s.UpdatedAt),
	)
	return err
}

// Load returns the latest snapshot, or the zero snapshot before the first reading.
func (r *TelemetrySQLite) Load(ctx context.Context) (models.TelemetrySnapshot, error) {
	row := r.db.QueryRowContext(ctx, selectTelemetrySQL, telemetryRowID)

	var (
		s            models.TelemetrySnapshot
		soil, alerts sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.EC,
		&s.PH,
		&s.TempC,
		&s.TankPercent,
		&soil,
		&s.PumpRunning,
		&s.PumpProgress,
		&alerts,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TelemetrySnapshot{}, nil
		}
		return models.TelemetrySnapshot{}, err
	}

	var err error
	if s.Soil, err = unmarshalJSONList[float64](soil); err != nil {
		return models.TelemetrySnapshot{}, err
	}
	if s.Alerts, err = unmarshalJSONList[string](alerts); err != nil {
		return models.TelemetrySnapshot{}, err
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
