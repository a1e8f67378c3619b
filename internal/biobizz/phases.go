package biobizz

import (
	"math"
	"time"
)

// PhaseID names a growth phase.
type PhaseID string

const (
	PhaseSeedling   PhaseID = "seedling"
	PhaseVegetative PhaseID = "vegetative"
	PhaseEarlyBloom PhaseID = "early-bloom"
	PhaseMidBloom   PhaseID = "mid-bloom"
	PhaseLateBloom  PhaseID = "late-bloom"
	PhaseFlush      PhaseID = "flush"
)

// GrowthPhase is a contiguous, inclusive range of weeks.
type GrowthPhase struct {
	ID        PhaseID `json:"id"`
	Label     string  `json:"label"`
	FirstWeek int     `json:"first_week"`
	LastWeek  int     `json:"last_week"`
	Color     string  `json:"color"`
	Icon      string  `json:"icon"`
}

// Includes reports whether week falls in the phase.
func (p GrowthPhase) Includes(week int) bool {
	return week >= p.FirstWeek && week <= p.LastWeek
}

// Phases partition weeks 1..16 without gaps or overlaps.
var Phases = []GrowthPhase{
	{ID: PhaseSeedling, Label: "Seedling", FirstWeek: 1, LastWeek: 2, Color: "#8bc34a", Icon: "sprout"},
	{ID: PhaseVegetative, Label: "Vegetative", FirstWeek: 3, LastWeek: 6, Color: "#4caf50", Icon: "leaf"},
	{ID: PhaseEarlyBloom, Label: "Early bloom", FirstWeek: 7, LastWeek: 9, Color: "#ff9800", Icon: "flower"},
	{ID: PhaseMidBloom, Label: "Mid bloom", FirstWeek: 10, LastWeek: 12, Color: "#e91e63", Icon: "flower"},
	{ID: PhaseLateBloom, Label: "Late bloom", FirstWeek: 13, LastWeek: 14, Color: "#9c27b0", Icon: "grapes"},
	{ID: PhaseFlush, Label: "Flush", FirstWeek: 15, LastWeek: 16, Color: "#03a9f4", Icon: "droplet"},
}

// PhaseForWeek returns the phase containing week, or the last phase when none does.
func PhaseForWeek(week int) GrowthPhase {
	for _, p := range Phases {
		if p.Includes(week) {
			return p
		}
	}
	return fallbackPhase()
}

func fallbackPhase() GrowthPhase {
	return Phases[len(Phases)-1]
}

const day = 24 * time.Hour

// GrowWeek converts a planting date into a grow week: whole elapsed days
// divided by seven, rounded up, never below 1. The result is not clamped to 16.
// A nil date yields ok == false.
func GrowWeek(planted *time.Time, now time.Time) (week int, ok bool) {
	if planted == nil {
		return 0, false
	}
	days := math.Floor(float64(now.Sub(*planted)) / float64(day))
	week = int(math.Ceil(days / 7))
	if week < 1 {
		week = 1
	}
	return week, true
}
