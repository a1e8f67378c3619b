package models

import "time"

// Plant stages that no longer count as growing.
const (
	StageEmpty     = "empty"
	StageHarvested = "harvested"
)

// Plant is a slot in the grow tent.
type Plant struct {
	ID          string     `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Strain      string     `json:"strain,omitempty" bson:"strain,omitempty"`
	Stage       string     `json:"stage" bson:"stage"`                                   // seedling | vegetative | flowering | harvested | empty
	PlantedDate *time.Time `json:"planted_date,omitempty" bson:"planted_date,omitempty"` // nil until planted
	HarvestDate *time.Time `json:"harvest_date,omitempty" bson:"harvest_date,omitempty"` // expected harvest
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// Active reports whether the plant is still growing.
func (p Plant) Active() bool {
	return p.Stage != StageEmpty && p.Stage != StageHarvested
}
