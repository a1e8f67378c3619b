package scheduler

import (
	"context"
	"errors"
	"testing"

	"growroom/internal/biobizz"
	"growroom/internal/config"
	"growroom/internal/models"
	"growroom/internal/service"
)

type fakeAdvisor struct {
	recs []biobizz.Recommendation
	err  error
}

func (f *fakeAdvisor) Recommendations(ctx context.Context) ([]biobizz.Recommendation, error) {
	return f.recs, f.err
}

type fakeStock struct {
	items   []service.InventoryItem
	err     error
	gotWeek int
}

func (f *fakeStock) LowStock(ctx context.Context, minWeeks int) ([]service.InventoryItem, error) {
	f.gotWeek = minWeeks
	return f.items, f.err
}

type recorded struct {
	typ  string
	desc string
	meta any
}

type fakeRecorder struct {
	got []recorded
	err error
}

func (f *fakeRecorder) Record(ctx context.Context, typ, description string, meta any) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, recorded{typ, description, meta})
	return nil
}

var testCron = config.SchedulerConfig{RecommendationCron: "*/15 * * * *", StockCron: "0 9 * * *"}

func TestSweepRecommendations_RecordsCriticalOnly(t *testing.T) {
	t.Parallel()

	adv := &fakeAdvisor{recs: []biobizz.Recommendation{
		{ID: "ec-high", Priority: biobizz.PriorityCritical, Type: biobizz.TypeEC, Title: "EC too high", Action: biobizz.ActionFlush},
		{ID: "tank-low", Priority: biobizz.PriorityWarning},
		{ID: "ph-low", Priority: biobizz.PriorityCritical, Type: biobizz.TypePH, Title: "pH too low", Action: biobizz.ActionPHCorrect},
		{ID: "soil-dry", Priority: biobizz.PriorityInfo},
	}}
	rec := &fakeRecorder{}
	s := New(testCron, adv, &fakeStock{}, rec, nil)

	n, err := s.SweepRecommendations(context.Background())
	if err != nil {
		t.Fatalf("SweepRecommendations: %v", err)
	}
	if n != 2 || len(rec.got) != 2 {
		t.Fatalf("recorded %d (%d events), want 2", n, len(rec.got))
	}
	for _, r := range rec.got {
		if r.typ != models.EventRecommendation {
			t.Fatalf("type = %q", r.typ)
		}
	}
	meta, _ := rec.got[1].meta.(map[string]any)
	if meta["recommendation_id"] != "ph-low" {
		t.Fatalf("unexpected metadata: %v", meta)
	}
}

func TestSweepRecommendations_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")

	s := New(testCron, &fakeAdvisor{err: boom}, &fakeStock{}, &fakeRecorder{}, nil)
	if _, err := s.SweepRecommendations(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected advisor error, got %v", err)
	}

	adv := &fakeAdvisor{recs: []biobizz.Recommendation{{ID: "ec-high", Priority: biobizz.PriorityCritical}}}
	s = New(testCron, adv, &fakeStock{}, &fakeRecorder{err: boom}, nil)
	if n, err := s.SweepRecommendations(context.Background()); !errors.Is(err, boom) || n != 0 {
		t.Fatalf("expected recorder error, got n=%d err=%v", n, err)
	}
}

func TestCheckStock(t *testing.T) {
	t.Parallel()

	stock := &fakeStock{items: []service.InventoryItem{
		{
			Product: biobizz.Product{ID: biobizz.BioBloom, Name: "Bio·Bloom"},
			Record:  models.InventoryRecord{ProductID: string(biobizz.BioBloom), Owned: true, CurrentMl: 30},
			Supply:  biobizz.SupplyEstimate{WeeksLeft: 1},
		},
	}}
	rec := &fakeRecorder{}
	s := New(testCron, &fakeAdvisor{}, stock, rec, nil)

	n, err := s.CheckStock(context.Background())
	if err != nil {
		t.Fatalf("CheckStock: %v", err)
	}
	if stock.gotWeek != lowStockWeeks {
		t.Fatalf("LowStock called with %d weeks", stock.gotWeek)
	}
	if n != 1 || rec.got[0].typ != models.EventLowStock {
		t.Fatalf("unexpected records: %+v", rec.got)
	}
	if rec.got[0].desc != "Bio·Bloom: 30 ml left, about 1 weeks of supply" {
		t.Fatalf("desc = %q", rec.got[0].desc)
	}
}

func TestStart_RejectsBadExpression(t *testing.T) {
	t.Parallel()

	s := New(config.SchedulerConfig{RecommendationCron: "every minute", StockCron: "0 9 * * *"}, &fakeAdvisor{}, &fakeStock{}, &fakeRecorder{}, nil)
	if err := s.Start(); err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	s := New(testCron, &fakeAdvisor{}, &fakeStock{}, &fakeRecorder{}, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
