package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"growroom/internal/biobizz"
	"growroom/internal/config"
	"growroom/internal/logger"
	"growroom/internal/models"
	"growroom/internal/service"
)

// lowStockWeeks is the supply horizon below which an owned bottle is reported.
const lowStockWeeks = 2

const jobTimeout = time.Minute

// Recommender is the part of service.Advisor the sweep needs.
type Recommender interface {
	Recommendations(ctx context.Context) ([]biobizz.Recommendation, error)
}

// StockChecker is the part of service.Inventory the stock check needs.
type StockChecker interface {
	LowStock(ctx context.Context, minWeeks int) ([]service.InventoryItem, error)
}

// Recorder is the part of service.EventLog the jobs write to.
type Recorder interface {
	Record(ctx context.Context, typ, description string, meta any) error
}

// Scheduler runs the periodic grow checks.
type Scheduler struct {
	cron   *cron.Cron
	cfg    config.SchedulerConfig
	advice Recommender
	stock  StockChecker
	events Recorder
	log    *logger.Logger
}

func New(cfg config.SchedulerConfig, advice Recommender, stock StockChecker, events Recorder, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:   cron.New(),
		cfg:    cfg,
		advice: advice,
		stock:  stock,
		events: events,
		log:    log,
	}
}

// Start registers both jobs and starts the cron loop. A bad expression is
// returned before anything runs.
func (s *Scheduler) Start() error {
	s.log.Infow("scheduler_start", "recommendation_cron", s.cfg.RecommendationCron, "stock_cron", s.cfg.StockCron)

	if _, err := s.cron.AddFunc(s.cfg.RecommendationCron, s.job("recommendation_sweep", s.SweepRecommendations)); err != nil {
		return fmt.Errorf("schedule recommendation sweep: %w", err)
	}
	if _, err := s.cron.AddFunc(s.cfg.StockCron, s.job("stock_check", s.CheckStock)); err != nil {
		return fmt.Errorf("schedule stock check: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	s.log.Infow("scheduler_stop")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) job(name string, run func(ctx context.Context) (int, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := run(ctx)
		if err != nil {
			s.log.Errorw(name+"_failed", "error", err)
			return
		}
		s.log.Infow(name+"_done", "recorded", n)
	}
}

// SweepRecommendations appends a RECOMMENDATION event for every critical
// recommendation of the live grow and returns how many were recorded.
func (s *Scheduler) SweepRecommendations(ctx context.Context) (int, error) {
	recs, err := s.advice.Recommendations(ctx)
	if err != nil {
		return 0, fmt.Errorf("recommendations: %w", err)
	}
	n := 0
	for _, r := range recs {
		if r.Priority != biobizz.PriorityCritical {
			continue
		}
		meta := map[string]any{
			"recommendation_id": r.ID,
			"type":              r.Type,
			"action":            r.Action,
		}
		if err := s.events.Record(ctx, models.EventRecommendation, r.Title+": "+r.Message, meta); err != nil {
			return n, fmt.Errorf("record %s: %w", r.ID, err)
		}
		n++
	}
	return n, nil
}

// CheckStock appends a LOW_STOCK event for every owned product that runs out
// within two weeks.
func (s *Scheduler) CheckStock(ctx context.Context) (int, error) {
	items, err := s.stock.LowStock(ctx, lowStockWeeks)
	if err != nil {
		return 0, fmt.Errorf("low stock: %w", err)
	}
	for i, it := range items {
		desc := fmt.Sprintf("%s: %.0f ml left, about %d weeks of supply", it.Product.Name, it.Record.CurrentMl, it.Supply.WeeksLeft)
		meta := map[string]any{
			"product_id": it.Product.ID,
			"current_ml": it.Record.CurrentMl,
			"weeks_left": it.Supply.WeeksLeft,
		}
		if err := s.events.Record(ctx, models.EventLowStock, desc, meta); err != nil {
			return i, fmt.Errorf("record %s: %w", it.Product.ID, err)
		}
	}
	return len(items), nil
}
