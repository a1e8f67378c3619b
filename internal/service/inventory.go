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

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrInvalidPatch   = errors.New("invalid inventory update: volumes must not be negative")
)

type InventoryService struct {
	inventory repository.InventoryRepo
	plants    repository.PlantRepo
	events    repository.EventRepo
	now       func() time.Time
}

func NewInventoryService(inventory repository.InventoryRepo, plants repository.PlantRepo, events repository.EventRepo) *InventoryService {
	return &InventoryService{inventory: inventory, plants: plants, events: events, now: time.Now}
}

func knownProduct(productID string) (biobizz.Product, error) {
	p, ok := biobizz.ProductByID(biobizz.ProductID(productID))
	if !ok {
		return biobizz.Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	return p, nil
}

func (s *InventoryService) weekOrCurrent(ctx context.Context, week int) (int, error) {
	if week > 0 {
		return biobizz.ClampWeek(week), nil
	}
	plants, err := s.plants.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list plants: %w", err)
	}
	return currentWeek(plants, s.now().UTC()), nil
}

// List returns every catalogue product with its bottle and a supply forecast
// from week onwards. Week 0 means the current grow week.
func (s *InventoryService) List(ctx context.Context, week int) ([]InventoryItem, error) {
	week, err := s.weekOrCurrent(ctx, week)
	if err != nil {
		return nil, err
	}
	recs, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	byID := inventoryByProduct(recs)

	out := make([]InventoryItem, 0, len(biobizz.Products))
	for _, p := range biobizz.Products {
		rec := byID[p.ID]
		out = append(out, InventoryItem{
			Product: p,
			Record:  rec,
			Supply:  biobizz.EstimateSupply(p.ID, rec.CurrentMl, week),
		})
	}
	return out, nil
}

// LowStock returns owned products that run out within minWeeks at the current week's pace.
func (s *InventoryService) LowStock(ctx context.Context, minWeeks int) ([]InventoryItem, error) {
	items, err := s.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []InventoryItem
	for _, it := range items {
		if it.Record.Owned && !it.Supply.Unlimited && it.Supply.WeeksLeft < minWeeks {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *InventoryService) Update(ctx context.Context, productID string, patch biobizz.InventoryPatch) (models.InventoryRecord, error) {
	if _, err := knownProduct(productID); err != nil {
		return models.InventoryRecord{}, err
	}
	if (patch.BottleSize != nil && *patch.BottleSize < 0) || (patch.CurrentMl != nil && *patch.CurrentMl < 0) {
		return models.InventoryRecord{}, ErrInvalidPatch
	}

	rec, err := s.inventory.Get(ctx, productID)
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("load inventory %s: %w", productID, err)
	}
	rec = biobizz.ApplyPatch(rec, patch)
	rec.UpdatedAt = s.now().UTC()
	if err := s.inventory.Save(ctx, rec); err != nil {
		return models.InventoryRecord{}, fmt.Errorf("save inventory %s: %w", productID, err)
	}
	return rec, nil
}

// Refill tops the bottle up to its size and appends a REFILL event.
func (s *InventoryService) Refill(ctx context.Context, productID string) (models.InventoryRecord, error) {
	p, err := knownProduct(productID)
	if err != nil {
		return models.InventoryRecord{}, err
	}
	rec, err := s.inventory.Get(ctx, productID)
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("load inventory %s: %w", productID, err)
	}

	now := s.now().UTC()
	previous := rec.CurrentMl
	rec = biobizz.Refill(rec)
	rec.UpdatedAt = now
	if err := s.inventory.Save(ctx, rec); err != nil {
		return models.InventoryRecord{}, fmt.Errorf("save inventory %s: %w", productID, err)
	}

	err = s.events.Append(ctx, models.GrowEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventRefill,
		Description: p.Name + " refilled",
		Metadata:    map[string]any{"product_id": productID, "from_ml": previous, "to_ml": rec.CurrentMl},
	})
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("append refill event: %w", err)
	}
	return rec, nil
}
