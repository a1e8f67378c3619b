package service

import (
	"context"
	"errors"
	"testing"

	"growroom/internal/biobizz"
	"growroom/internal/models"
)

func newTestInventory(r *fakeRepos) *InventoryService {
	s := NewInventoryService(r.inventory, r.plants, r.events)
	s.now = fixedClock
	return s
}

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestInventoryService_List_CatalogueOrderWithDefaults(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	r.plants.plants = []models.Plant{plantedInWeek(10)}
	r.inventory = newMemInventory(models.InventoryRecord{ProductID: string(biobizz.BioBloom), Owned: true, BottleSize: 1000, CurrentMl: 500})
	s := newTestInventory(r)

	items, err := s.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != len(biobizz.Products) {
		t.Fatalf("want every catalogue product, got %d", len(items))
	}
	for i, it := range items {
		if it.Product.ID != biobizz.Products[i].ID || it.Record.ProductID != string(it.Product.ID) {
			t.Fatalf("item %d out of order: %s", i, it.Product.ID)
		}
		if it.Product.ID == biobizz.BioBloom {
			if !it.Record.Owned || it.Supply.WeeksLeft != 20 {
				t.Fatalf("bio-bloom: %+v", it)
			}
			continue
		}
		if it.Record.Owned || it.Record.BottleSize != models.DefaultBottleSizeMl {
			t.Fatalf("%s should use the default record, got %+v", it.Product.ID, it.Record)
		}
	}
}

func TestInventoryService_List_ExplicitWeekIsClamped(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	r.plants.listErr = errRepoDown
	s := newTestInventory(r)

	items, err := s.List(context.Background(), 40)
	if err != nil {
		t.Fatalf("explicit week must not need the plants: %v", err)
	}
	for _, it := range items {
		if !it.Supply.Unlimited {
			t.Fatalf("week 16 is a flush week, %s should have no demand", it.Product.ID)
		}
	}

	if _, err := s.List(context.Background(), 0); !errors.Is(err, errRepoDown) {
		t.Fatalf("expected plant repo error, got %v", err)
	}
}

func TestInventoryService_LowStock(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	r.plants.plants = []models.Plant{plantedInWeek(10)}
	r.inventory = newMemInventory(
		models.InventoryRecord{ProductID: string(biobizz.BioBloom), Owned: true, BottleSize: 1000, CurrentMl: 30},
		models.InventoryRecord{ProductID: string(biobizz.TopMax), Owned: true, BottleSize: 1000, CurrentMl: 1000},
		models.InventoryRecord{ProductID: string(biobizz.RootJuice), Owned: true, BottleSize: 250, CurrentMl: 0},
	)
	s := newTestInventory(r)

	low, err := s.LowStock(context.Background(), 2)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(low) != 1 || low[0].Product.ID != biobizz.BioBloom {
		t.Fatalf("want only bio-bloom, got %+v", low)
	}
}

func TestInventoryService_Update(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	s := newTestInventory(r)

	rec, err := s.Update(context.Background(), string(biobizz.CalMag), biobizz.InventoryPatch{Owned: boolPtr(true), BottleSize: floatPtr(250)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := models.InventoryRecord{ProductID: string(biobizz.CalMag), Owned: true, BottleSize: 250, CurrentMl: 250, UpdatedAt: fixedNow}
	if rec != want {
		t.Fatalf("got %+v, want %+v", rec, want)
	}
	if r.inventory.recs[string(biobizz.CalMag)] != want {
		t.Fatalf("record not saved")
	}
}

func TestInventoryService_Update_Rejects(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	s := newTestInventory(r)

	if _, err := s.Update(context.Background(), "guano", biobizz.InventoryPatch{}); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if _, err := s.Update(context.Background(), string(biobizz.TopMax), biobizz.InventoryPatch{CurrentMl: floatPtr(-1)}); !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("expected ErrInvalidPatch, got %v", err)
	}
	if r.inventory.saves != 0 {
		t.Fatalf("rejected updates must not be saved")
	}
}

func TestInventoryService_Refill(t *testing.T) {
	t.Parallel()

	r := newFakeRepos()
	r.inventory = newMemInventory(models.InventoryRecord{ProductID: string(biobizz.AlgAMic), Owned: true, BottleSize: 500, CurrentMl: 35})
	s := newTestInventory(r)

	rec, err := s.Refill(context.Background(), string(biobizz.AlgAMic))
	if err != nil {
		t.Fatalf("Refill: %v", err)
	}
	if rec.CurrentMl != 500 || !rec.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if got := r.events.types(); len(got) != 1 || got[0] != models.EventRefill {
		t.Fatalf("events = %v, want [REFILL]", got)
	}
	meta, _ := r.events.appended[0].Metadata.(map[string]any)
	if meta["from_ml"] != 35.0 || meta["to_ml"] != 500.0 {
		t.Fatalf("unexpected metadata: %v", meta)
	}

	if _, err := s.Refill(context.Background(), "guano"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}
