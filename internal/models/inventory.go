package models

import "time"

// DefaultBottleSizeMl is assumed until the user edits the bottle size.
const DefaultBottleSizeMl = 1000.0

// InventoryRecord tracks one nutrient bottle.
type InventoryRecord struct {
	ProductID  string    `json:"product_id" bson:"_id"`
	Owned      bool      `json:"owned" bson:"owned"`
	BottleSize float64   `json:"bottle_size_ml" bson:"bottle_size_ml"`
	CurrentMl  float64   `json:"current_ml" bson:"current_ml"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// NewInventoryRecord returns the record used before anything is stored: not owned, empty.
func NewInventoryRecord(productID string) InventoryRecord {
	return InventoryRecord{
		ProductID:  productID,
		BottleSize: DefaultBottleSizeMl,
	}
}
