package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"growroom/internal/models"
	"growroom/internal/repository"
)

var errRepoDown = errors.New("db down")

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// memInventory is an in-memory repository.InventoryRepo.
type memInventory struct {
	recs    map[string]models.InventoryRecord
	saves   int
	getErr  error
	saveErr error
}

func newMemInventory(recs ...models.InventoryRecord) *memInventory {
	m := &memInventory{recs: map[string]models.InventoryRecord{}}
	for _, r := range recs {
		m.recs[r.ProductID] = r
	}
	return m
}

func (m *memInventory) Get(ctx context.Context, id string) (models.InventoryRecord, error) {
	if m.getErr != nil {
		return models.InventoryRecord{}, m.getErr
	}
	if r, ok := m.recs[id]; ok {
		return r, nil
	}
	return models.NewInventoryRecord(id), nil
}

func (m *memInventory) List(ctx context.Context) ([]models.InventoryRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := make([]models.InventoryRecord, 0, len(m.recs))
	for _, r := range m.recs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *memInventory) Save(ctx context.Context, r models.InventoryRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.recs[r.ProductID] = r
	return nil
}

type memDoses struct {
	logs      []models.DoseLog
	appendErr error
	gotFrom   time.Time
	gotTo     time.Time
	listCalls int
}

func (m *memDoses) Append(ctx context.Context, d models.DoseLog) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.logs = append(m.logs, d)
	return nil
}

func (m *memDoses) List(ctx context.Context, from, to time.Time) ([]models.DoseLog, error) {
	m.listCalls++
	m.gotFrom, m.gotTo = from, to
	return m.logs, nil
}

type memPlants struct {
	plants  []models.Plant
	listErr error
}

func (m *memPlants) Create(ctx context.Context, p models.Plant) (models.Plant, error) {
	if p.ID == "" {
		p.ID = "plant-1"
	}
	m.plants = append(m.plants, p)
	return p, nil
}

func (m *memPlants) ListActive(ctx context.Context) ([]models.Plant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Plant
	for _, p := range m.plants {
		if p.Active() {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeEventRepo records appended events and the last List arguments.
type fakeEventRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	gotType string

	appended  []models.GrowEvent
	events    []models.GrowEvent
	err       error
	appendErr error

	calls int
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.GrowEvent, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.GrowEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, e)
	return nil
}

func (f *fakeEventRepo) types() []string {
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

type memTelemetry struct {
	snap    models.TelemetrySnapshot
	saves   []models.TelemetrySnapshot
	loadErr error
}

func (m *memTelemetry) Save(ctx context.Context, s models.TelemetrySnapshot) error {
	m.saves = append(m.saves, s)
	m.snap = s
	return nil
}

func (m *memTelemetry) Load(ctx context.Context) (models.TelemetrySnapshot, error) {
	return m.snap, m.loadErr
}

type fakeRepos struct {
	inventory *memInventory
	doses     *memDoses
	plants    *memPlants
	events    *fakeEventRepo
	telemetry *memTelemetry
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		inventory: newMemInventory(),
		doses:     &memDoses{},
		plants:    &memPlants{},
		events:    &fakeEventRepo{},
		telemetry: &memTelemetry{},
	}
}

func (f *fakeRepos) repository() *repository.Repository {
	return &repository.Repository{
		Inventory: f.inventory,
		Doses:     f.doses,
		Plants:    f.plants,
		Events:    f.events,
		Telemetry: f.telemetry,
	}
}

func (f *fakeRepos) loader() stateLoader {
	return stateLoader{telemetry: f.telemetry, plants: f.plants, inventory: f.inventory}
}

// plantedInWeek returns an active plant whose grow week at fixedNow is week.
func plantedInWeek(week int) models.Plant {
	planted := fixedNow.Add(-time.Duration((week-1)*7+1) * 24 * time.Hour)
	return models.Plant{ID: "p1", Name: "Gorilla Glue", Stage: "flowering", PlantedDate: &planted}
}
