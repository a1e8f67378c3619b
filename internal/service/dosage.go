package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"growroom/internal/biobizz"
	"growroom/internal/models"
	"growroom/internal/repository"
)

const defaultMaxLiters = 100.0

// ErrInvalidLiters rejects tank volumes outside (0, max].
var ErrInvalidLiters = errors.New("invalid liters: must be greater than 0 and within the tank limit")

type DosageService struct {
	doses     repository.DoseLogRepo
	inventory repository.InventoryRepo
	plants    repository.PlantRepo
	events    repository.EventRepo

	defaultSubstrate string
	maxLiters        float64
	now              func() time.Time
}

func NewDosageService(
	doses repository.DoseLogRepo,
	inventory repository.InventoryRepo,
	plants repository.PlantRepo,
	events repository.EventRepo,
	opts Options,
) *DosageService {
	s := &DosageService{
		doses:            doses,
		inventory:        inventory,
		plants:           plants,
		events:           events,
		defaultSubstrate: opts.DefaultSubstrate,
		maxLiters:        opts.MaxLiters,
		now:              time.Now,
	}
	if s.defaultSubstrate == "" {
		s.defaultSubstrate = biobizz.LightMix
	}
	if s.maxLiters <= 0 {
		s.maxLiters = defaultMaxLiters
	}
	return s
}

func (s *DosageService) validateLiters(liters float64) error {
	if !(liters > 0) || liters > s.maxLiters {
		return fmt.Errorf("%w (got %.1f, max %.0f)", ErrInvalidLiters, liters, s.maxLiters)
	}
	return nil
}

// Plan computes the mix for liters in week. An empty substrate uses the configured default.
func (s *DosageService) Plan(liters float64, week int, substrate string) (biobizz.DosagePlan, error) {
	if err := s.validateLiters(liters); err != nil {
		return biobizz.DosagePlan{}, err
	}
	if substrate == "" {
		substrate = s.defaultSubstrate
	}
	return biobizz.CalculateDosage(liters, week, substrate), nil
}

func (s *DosageService) CurrentWeek(ctx context.Context) (int, error) {
	plants, err := s.plants.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list plants: %w", err)
	}
	return currentWeek(plants, s.now().UTC()), nil
}

// LogDose computes the plan, stores it as a dose log, takes the fed amounts
// out of the owned bottles and appends a DOSE event.
func (s *DosageService) LogDose(ctx context.Context, req DoseRequest) (DoseResult, error) {
	now := s.now().UTC()

	week := req.Week
	if week <= 0 {
		w, err := s.CurrentWeek(ctx)
		if err != nil {
			return DoseResult{}, err
		}
		week = w
	}

	plan, err := s.Plan(req.Liters, week, req.Substrate)
	if err != nil {
		return DoseResult{}, err
	}

	entry := models.DoseLog{
		ID:        uuid.NewString(),
		Liters:    plan.Liters,
		Week:      plan.Week,
		Substrate: plan.Substrate,
		Products:  make(map[string]float64, len(plan.Products)),
		TotalMl:   plan.TotalMl,
		Notes:     req.Notes,
		LoggedAt:  now,
	}
	for _, d := range plan.Products {
		entry.Products[string(d.ProductID)] = d.TotalMl
	}

	if err := s.doses.Append(ctx, entry); err != nil {
		return DoseResult{}, fmt.Errorf("append dose log: %w", err)
	}

	for _, d := range plan.Products {
		rec, err := s.inventory.Get(ctx, string(d.ProductID))
		if err != nil {
			return DoseResult{}, fmt.Errorf("load inventory %s: %w", d.ProductID, err)
		}
		if !rec.Owned {
			continue
		}
		rec = biobizz.Consume(rec, d.TotalMl)
		rec.UpdatedAt = now
		if err := s.inventory.Save(ctx, rec); err != nil {
			return DoseResult{}, fmt.Errorf("save inventory %s: %w", d.ProductID, err)
		}
	}

	err = s.events.Append(ctx, models.GrowEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventDose,
		Description: fmt.Sprintf("Fed %.1f L, %.1f ml nutrients (week %d)", plan.Liters, plan.TotalMl, plan.Week),
		Metadata: map[string]any{
			"dose_id":   entry.ID,
			"substrate": plan.Substrate,
			"total_ml":  plan.TotalMl,
		},
	})
	if err != nil {
		return DoseResult{}, fmt.Errorf("append dose event: %w", err)
	}

	return DoseResult{Log: entry, Plan: plan}, nil
}

func (s *DosageService) ListDoses(ctx context.Context, f DoseFilter) ([]models.DoseLog, error) {
	from, to, err := normalizeRange(f.From, f.To)
	if err != nil {
		return nil, err
	}
	return s.doses.List(ctx, from, to)
}
