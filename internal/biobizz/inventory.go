package biobizz

import (
	"math"

	"growroom/internal/models"
)

// ReferenceTankLiters is the tank size supply forecasts assume.
const ReferenceTankLiters = 10.0

// InventoryPatch carries the fields to change; nil fields are kept.
type InventoryPatch struct {
	Owned      *bool    `json:"owned,omitempty"`
	BottleSize *float64 `json:"bottle_size_ml,omitempty"`
	CurrentMl  *float64 `json:"current_ml,omitempty"`
}

// ApplyPatch merges p into rec. Switching a product to owned without an
// explicit level assumes a full bottle; switching it off empties it.
func ApplyPatch(rec models.InventoryRecord, p InventoryPatch) models.InventoryRecord {
	wasOwned := rec.Owned
	if p.BottleSize != nil {
		rec.BottleSize = *p.BottleSize
	}
	if p.CurrentMl != nil {
		rec.CurrentMl = *p.CurrentMl
	}
	if p.Owned != nil {
		rec.Owned = *p.Owned
		switch {
		case !wasOwned && rec.Owned && p.CurrentMl == nil:
			rec.CurrentMl = rec.BottleSize
		case wasOwned && !rec.Owned:
			rec.CurrentMl = 0
		}
	}
	return rec
}

// Refill tops the bottle back up.
func Refill(rec models.InventoryRecord) models.InventoryRecord {
	rec.CurrentMl = rec.BottleSize
	return rec
}

// Consume subtracts a logged dose from an owned bottle, never below zero.
func Consume(rec models.InventoryRecord, ml float64) models.InventoryRecord {
	if !rec.Owned || ml <= 0 {
		return rec
	}
	rec.CurrentMl = math.Max(0, round1(rec.CurrentMl-ml))
	return rec
}

// SupplyEstimate forecasts how long a bottle lasts for the rest of the grow.
type SupplyEstimate struct {
	ProductID     ProductID `json:"product_id"`
	RemainingMl   float64   `json:"remaining_demand_ml"`
	WeeklyUsageMl float64   `json:"weekly_usage_ml"`
	WeeksLeft     int       `json:"weeks_left"`
	Unlimited     bool      `json:"unlimited"` // nothing left to use, WeeksLeft is meaningless
}

// EstimateSupply sums the raw schedule demand of weeks [week..16] at the
// reference tank size and divides currentMl by the weekly average.
func EstimateSupply(id ProductID, currentMl float64, week int) SupplyEstimate {
	week = ClampWeek(week)
	var demand float64
	for w := week; w <= LastWeek; w++ {
		demand += ScheduleForWeek(w).Dose(id) * ReferenceTankLiters
	}
	weeks := LastWeek - week + 1
	burn := demand / float64(weeks)

	est := SupplyEstimate{
		ProductID:     id,
		RemainingMl:   round1(demand),
		WeeklyUsageMl: round1(burn),
	}
	if burn == 0 {
		est.Unlimited = true
		return est
	}
	est.WeeksLeft = int(math.Floor(currentMl / burn))
	return est
}
