package models

import "time"

// DoseLog is one logged nutrient mix.
type DoseLog struct {
	ID        string             `json:"id" bson:"_id"`
	Liters    float64            `json:"liters" bson:"liters"`
	Week      int                `json:"week" bson:"week"`
	Substrate string             `json:"substrate" bson:"substrate"`
	Products  map[string]float64 `json:"products" bson:"products"` // product id -> total ml
	TotalMl   float64            `json:"total_ml" bson:"total_ml"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	LoggedAt  time.Time          `json:"logged_at" bson:"logged_at"`
}
