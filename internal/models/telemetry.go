package models

import "time"

// TelemetrySnapshot is the latest controller reading. Zero values mean the
// sensor has not reported.
type TelemetrySnapshot struct {
	ID           int       `json:"-" bson:"_id"`
	EC           float64   `json:"ec" bson:"ec"` // mS/cm
	PH           float64   `json:"ph" bson:"ph"`
	TempC        float64   `json:"temp" bson:"temp"`                                      // °C
	TankPercent  float64   `json:"reservoirLevel_percent" bson:"reservoir_level_percent"` // 0..100
	Soil         []float64 `json:"soil" bson:"soil"`                                      // per probe, %
	PumpRunning  bool      `json:"pumpRunning" bson:"pump_running"`
	PumpProgress float64   `json:"pumpProgress" bson:"pump_progress"` // 0..100
	Alerts       []string  `json:"alerts,omitempty" bson:"alerts,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
