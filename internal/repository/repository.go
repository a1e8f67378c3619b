package repository

import (
	"context"
	"database/sql"
	"time"

	"growroom/internal/models"
)

type InventoryRepo interface {
	// Get returns the stored record, or models.NewInventoryRecord when none exists.
	Get(ctx context.Context, productID string) (models.InventoryRecord, error)
	List(ctx context.Context) ([]models.InventoryRecord, error)
	Save(ctx context.Context, rec models.InventoryRecord) error
}

type DoseLogRepo interface {
	Append(ctx context.Context, d models.DoseLog) error
	List(ctx context.Context, from, to time.Time) ([]models.DoseLog, error)
}

type PlantRepo interface {
	Create(ctx context.Context, p models.Plant) (models.Plant, error)
	// ListActive returns growing plants, earliest planted first.
	ListActive(ctx context.Context) ([]models.Plant, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.GrowEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.GrowEvent, error)
}

type TelemetryRepo interface {
	Save(ctx context.Context, s models.TelemetrySnapshot) error
	Load(ctx context.Context) (models.TelemetrySnapshot, error)
}

type Repository struct {
	Inventory InventoryRepo
	Doses     DoseLogRepo
	Plants    PlantRepo
	Events    EventRepo
	Telemetry TelemetryRepo
}

// NewRepository wires the SQLite implementations around an open handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Inventory: NewInventorySQLite(db),
		Doses:     NewDoseLogSQLite(db),
		Plants:    NewPlantSQLite(db),
		Events:    NewEventSQLite(db),
		Telemetry: NewTelemetrySQLite(db),
	}
}

// utcOrNow normalises timestamps before they are written.
func utcOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
