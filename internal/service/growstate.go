package service

import (
	"context"
	"fmt"
	"time"

	"growroom/internal/biobizz"
	"growroom/internal/models"
	"growroom/internal/repository"
)

// growState is the persisted context the classifiers and rules run against.
type growState struct {
	Snapshot  models.TelemetrySnapshot
	Plants    []models.Plant
	Week      int
	Inventory map[biobizz.ProductID]models.InventoryRecord
}

type stateLoader struct {
	telemetry repository.TelemetryRepo
	plants    repository.PlantRepo
	inventory repository.InventoryRepo
}

func (l stateLoader) load(ctx context.Context, now time.Time) (growState, error) {
	snap, err := l.telemetry.Load(ctx)
	if err != nil {
		return growState{}, fmt.Errorf("load telemetry: %w", err)
	}
	plants, err := l.plants.ListActive(ctx)
	if err != nil {
		return growState{}, fmt.Errorf("list plants: %w", err)
	}
	recs, err := l.inventory.List(ctx)
	if err != nil {
		return growState{}, fmt.Errorf("list inventory: %w", err)
	}
	return growState{
		Snapshot:  snap,
		Plants:    plants,
		Week:      currentWeek(plants, now),
		Inventory: inventoryByProduct(recs),
	}, nil
}

// currentWeek is the grow week of the first active plant with a planting date,
// clamped to the schedule, or week 1 when nothing is planted.
func currentWeek(plants []models.Plant, now time.Time) int {
	for _, p := range plants {
		if !p.Active() {
			continue
		}
		if w, ok := biobizz.GrowWeek(p.PlantedDate, now); ok {
			return biobizz.ClampWeek(w)
		}
	}
	return biobizz.FirstWeek
}

// inventoryByProduct indexes stored records and fills the rest of the catalogue with defaults.
func inventoryByProduct(recs []models.InventoryRecord) map[biobizz.ProductID]models.InventoryRecord {
	out := make(map[biobizz.ProductID]models.InventoryRecord, len(biobizz.Products))
	for _, p := range biobizz.Products {
		out[p.ID] = models.NewInventoryRecord(string(p.ID))
	}
	for _, r := range recs {
		out[biobizz.ProductID(r.ProductID)] = r
	}
	return out
}

func readingFromSnapshot(s models.TelemetrySnapshot) biobizz.SensorReading {
	return biobizz.SensorReading{
		EC:          s.EC,
		PH:          s.PH,
		Temperature: s.TempC,
		Soil:        biobizz.AverageSoil(s.Soil),
		TankLevel:   s.TankPercent,
	}
}

func classify(r biobizz.SensorReading, week int) StatusView {
	entry := biobizz.ScheduleForWeek(week)
	target := entry.ECTarget
	return StatusView{
		Reading:  r,
		Week:     entry.Week,
		ECTarget: target,
		Report:   biobizz.ClassifyAll(r, &target),
	}
}

// evaluate classifies the stored snapshot and runs the recommendation rules over it.
func evaluate(st growState, now time.Time) (StatusView, []biobizz.Recommendation) {
	view := classify(readingFromSnapshot(st.Snapshot), st.Week)
	recs := biobizz.Recommend(biobizz.RecommendationInput{
		ECStatus:        view.Report.EC.Status,
		PHStatus:        view.Report.PH.Status,
		CurrentEC:       view.Reading.EC,
		CurrentPH:       view.Reading.PH,
		TankLevel:       view.Reading.TankLevel,
		AvgSoilMoisture: view.Reading.Soil,
		ActivePlants:    st.Plants,
		CurrentWeek:     st.Week,
		Schedule:        biobizz.ScheduleForWeek(st.Week),
		Inventory:       st.Inventory,
		Now:             now,
	})
	return view, recs
}

func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
