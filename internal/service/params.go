package service

import (
	"time"

	"growroom/internal/biobizz"
	"growroom/internal/models"
)

// LogFilter selects grow log entries by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", ALERT, RECOMMENDATION, LOW_STOCK, DOSE, REFILL
}

// DoseFilter selects dose logs by time range.
type DoseFilter struct {
	From time.Time
	To   time.Time
}

// DoseRequest describes a mix that was fed. Week 0 means the current grow week.
type DoseRequest struct {
	Liters    float64
	Week      int
	Substrate string
	Notes     string
}

// DoseResult is the stored log together with the plan it was computed from.
type DoseResult struct {
	Log  models.DoseLog     `json:"log"`
	Plan biobizz.DosagePlan `json:"plan"`
}

type PlantParams struct {
	Name        string
	Strain      string
	Stage       string
	PlantedDate *time.Time
	HarvestDate *time.Time
}

// InventoryItem joins a catalogue product with its bottle and supply forecast.
type InventoryItem struct {
	Product biobizz.Product        `json:"product"`
	Record  models.InventoryRecord `json:"record"`
	Supply  biobizz.SupplyEstimate `json:"supply"`
}

// StatusView is a classified reading for a given week.
type StatusView struct {
	Reading  biobizz.SensorReading `json:"reading"`
	Week     int                   `json:"week"`
	ECTarget biobizz.ECRange       `json:"ec_target"`
	Report   biobizz.StatusReport  `json:"report"`
}

// LiveStatus is everything the dashboard shows for the running grow.
type LiveStatus struct {
	Telemetry       models.TelemetrySnapshot `json:"telemetry"`
	Phase           biobizz.GrowthPhase      `json:"phase"`
	Status          StatusView               `json:"status"`
	Recommendations []biobizz.Recommendation `json:"recommendations"`
	ActivePlants    int                      `json:"active_plants"`
	GeneratedAt     time.Time                `json:"generated_at"`
}
