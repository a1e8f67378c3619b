package handlers

import (
	"context"
	"sync"
	"time"

	"growroom/internal/biobizz"
	"growroom/internal/models"
	"growroom/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDosage struct {
	week    int
	weekErr error
	planErr error
	logErr  error
	doses   []models.DoseLog
	listErr error

	lastLiters    float64
	lastWeek      int
	lastSubstrate string
	lastRequest   service.DoseRequest
	lastFilter    service.DoseFilter
}

func (m *mockDosage) Plan(liters float64, week int, substrate string) (biobizz.DosagePlan, error) {
	m.lastLiters, m.lastWeek, m.lastSubstrate = liters, week, substrate
	if m.planErr != nil {
		return biobizz.DosagePlan{}, m.planErr
	}
	return biobizz.CalculateDosage(liters, week, substrate), nil
}

func (m *mockDosage) CurrentWeek(ctx context.Context) (int, error) {
	return m.week, m.weekErr
}

func (m *mockDosage) LogDose(ctx context.Context, req service.DoseRequest) (service.DoseResult, error) {
	m.lastRequest = req
	if m.logErr != nil {
		return service.DoseResult{}, m.logErr
	}
	plan := biobizz.CalculateDosage(req.Liters, req.Week, req.Substrate)
	return service.DoseResult{
		Log:  models.DoseLog{ID: "dose-1", Liters: req.Liters, Week: plan.Week, TotalMl: plan.TotalMl},
		Plan: plan,
	}, nil
}

func (m *mockDosage) ListDoses(ctx context.Context, f service.DoseFilter) ([]models.DoseLog, error) {
	m.lastFilter = f
	return m.doses, m.listErr
}

type mockInventory struct {
	items     []service.InventoryItem
	rec       models.InventoryRecord
	err       error
	lastWeek  int
	lastID    string
	lastPatch biobizz.InventoryPatch
	refills   int
}

func (m *mockInventory) List(ctx context.Context, week int) ([]service.InventoryItem, error) {
	m.lastWeek = week
	return m.items, m.err
}

func (m *mockInventory) Update(ctx context.Context, productID string, patch biobizz.InventoryPatch) (models.InventoryRecord, error) {
	m.lastID, m.lastPatch = productID, patch
	return m.rec, m.err
}

func (m *mockInventory) Refill(ctx context.Context, productID string) (models.InventoryRecord, error) {
	m.lastID = productID
	m.refills++
	return m.rec, m.err
}

func (m *mockInventory) LowStock(ctx context.Context, minWeeks int) ([]service.InventoryItem, error) {
	return m.items, m.err
}

type mockMonitoring struct {
	live        service.LiveStatus
	err         error
	lastReading biobizz.SensorReading
	lastWeek    int

	// liveErrs, when set, scripts Live results call by call; nil entries succeed
	mu       sync.Mutex
	liveErrs []error
}

func (m *mockMonitoring) Status(r biobizz.SensorReading, week int) service.StatusView {
	m.lastReading, m.lastWeek = r, week
	target := biobizz.ScheduleForWeek(week).ECTarget
	return service.StatusView{Reading: r, Week: week, ECTarget: target, Report: biobizz.ClassifyAll(r, &target)}
}

func (m *mockMonitoring) Live(ctx context.Context) (service.LiveStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.liveErrs) > 0 {
		err := m.liveErrs[0]
		m.liveErrs = m.liveErrs[1:]
		return m.live, err
	}
	return m.live, m.err
}

type mockAdvisor struct {
	recs      []biobizz.Recommendation
	err       error
	lastInput biobizz.RecommendationInput
}

func (m *mockAdvisor) Recommendations(ctx context.Context) ([]biobizz.Recommendation, error) {
	return m.recs, m.err
}

func (m *mockAdvisor) Evaluate(in biobizz.RecommendationInput) []biobizz.Recommendation {
	m.lastInput = in
	return biobizz.Recommend(in)
}

type mockPlants struct {
	plants     []models.Plant
	err        error
	lastParams service.PlantParams
}

func (m *mockPlants) Create(ctx context.Context, p service.PlantParams) (models.Plant, error) {
	m.lastParams = p
	if m.err != nil {
		return models.Plant{}, m.err
	}
	return models.Plant{ID: "plant-1", Name: p.Name, Stage: p.Stage, PlantedDate: p.PlantedDate, HarvestDate: p.HarvestDate}, nil
}

func (m *mockPlants) ListActive(ctx context.Context) ([]models.Plant, error) {
	return m.plants, m.err
}

type mockEventLog struct {
	resp     []models.GrowEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.GrowEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

func (m *mockEventLog) Record(ctx context.Context, typ, description string, meta any) error {
	return m.err
}

type mockTelemetry struct {
	snap     models.TelemetrySnapshot
	err      error
	ingested []models.TelemetrySnapshot
}

func (m *mockTelemetry) Run(ctx context.Context, tick time.Duration) {}

func (m *mockTelemetry) Ingest(ctx context.Context, s models.TelemetrySnapshot) (models.TelemetrySnapshot, error) {
	m.ingested = append(m.ingested, s)
	if m.err != nil {
		return models.TelemetrySnapshot{}, m.err
	}
	s.ID = 1
	return s, nil
}

func (m *mockTelemetry) Latest(ctx context.Context) (models.TelemetrySnapshot, error) {
	return m.snap, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
