package service

import (
	"context"
	"time"

	"growroom/internal/biobizz"
	"growroom/internal/device"
	"growroom/internal/logger"
	"growroom/internal/models"
	"growroom/internal/repository"
)

// Dosage plans nutrient mixes and records the ones actually fed.
type Dosage interface {
	Plan(liters float64, week int, substrate string) (biobizz.DosagePlan, error)
	CurrentWeek(ctx context.Context) (int, error)
	LogDose(ctx context.Context, req DoseRequest) (DoseResult, error)
	ListDoses(ctx context.Context, f DoseFilter) ([]models.DoseLog, error)
}

// Inventory tracks nutrient bottles.
type Inventory interface {
	List(ctx context.Context, week int) ([]InventoryItem, error)
	Update(ctx context.Context, productID string, patch biobizz.InventoryPatch) (models.InventoryRecord, error)
	Refill(ctx context.Context, productID string) (models.InventoryRecord, error)
	LowStock(ctx context.Context, minWeeks int) ([]InventoryItem, error)
}

// Monitoring classifies sensor readings.
type Monitoring interface {
	Status(r biobizz.SensorReading, week int) StatusView
	Live(ctx context.Context) (LiveStatus, error)
}

// Advisor produces recommendations from the live grow or from a caller-supplied input.
type Advisor interface {
	Recommendations(ctx context.Context) ([]biobizz.Recommendation, error)
	Evaluate(in biobizz.RecommendationInput) []biobizz.Recommendation
}

type Plants interface {
	Create(ctx context.Context, p PlantParams) (models.Plant, error)
	ListActive(ctx context.Context) ([]models.Plant, error)
}

// EventLog exposes the append-only grow log.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.GrowEvent, error)
	Record(ctx context.Context, typ, description string, meta any) error
}

// Telemetry keeps the latest controller snapshot. Run polls the controller
// until ctx is canceled; Ingest accepts pushed snapshots.
type Telemetry interface {
	Run(ctx context.Context, tick time.Duration)
	Ingest(ctx context.Context, snap models.TelemetrySnapshot) (models.TelemetrySnapshot, error)
	Latest(ctx context.Context) (models.TelemetrySnapshot, error)
}

type Service struct {
	Dosage
	Inventory
	Monitoring
	Advisor
	Plants
	EventLog
	Telemetry
}

// Options are the tunables the services take from configuration.
type Options struct {
	DefaultSubstrate string
	MaxLiters        float64
	// Device is nil when no controller is configured; Run then returns immediately.
	Device device.Client
	// Log receives background polling failures; nil discards them.
	Log *logger.Logger
}

func NewService(repos *repository.Repository, opts Options) *Service {
	loader := stateLoader{
		telemetry: repos.Telemetry,
		plants:    repos.Plants,
		inventory: repos.Inventory,
	}
	return &Service{
		Dosage:     NewDosageService(repos.Doses, repos.Inventory, repos.Plants, repos.Events, opts),
		Inventory:  NewInventoryService(repos.Inventory, repos.Plants, repos.Events),
		Monitoring: NewMonitoringService(loader),
		Advisor:    NewAdvisorService(loader),
		Plants:     NewPlantService(repos.Plants),
		EventLog:   NewEventLogService(repos.Events),
		Telemetry:  NewTelemetryService(opts.Device, repos.Telemetry, repos.Plants, repos.Events, opts.Log),
	}
}
