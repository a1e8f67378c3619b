package biobizz

import (
	"testing"

	"growroom/internal/models"
)

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	empty := models.NewInventoryRecord(string(BioGrow))
	owned := models.InventoryRecord{ProductID: string(BioGrow), Owned: true, BottleSize: 500, CurrentMl: 320}

	cases := []struct {
		name  string
		rec   models.InventoryRecord
		patch InventoryPatch
		want  models.InventoryRecord
	}{
		{
			name:  "empty patch keeps everything",
			rec:   owned,
			patch: InventoryPatch{},
			want:  owned,
		},
		{
			name:  "owning assumes a full bottle",
			rec:   empty,
			patch: InventoryPatch{Owned: boolPtr(true)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: true, BottleSize: 1000, CurrentMl: 1000},
		},
		{
			name:  "owning with new bottle size fills to that size",
			rec:   empty,
			patch: InventoryPatch{Owned: boolPtr(true), BottleSize: floatPtr(250)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: true, BottleSize: 250, CurrentMl: 250},
		},
		{
			name:  "owning with explicit level keeps the level",
			rec:   empty,
			patch: InventoryPatch{Owned: boolPtr(true), CurrentMl: floatPtr(40)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: true, BottleSize: 1000, CurrentMl: 40},
		},
		{
			name:  "disowning empties the bottle",
			rec:   owned,
			patch: InventoryPatch{Owned: boolPtr(false)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: false, BottleSize: 500, CurrentMl: 0},
		},
		{
			name:  "disowning wins over a level",
			rec:   owned,
			patch: InventoryPatch{Owned: boolPtr(false), CurrentMl: floatPtr(100)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: false, BottleSize: 500, CurrentMl: 0},
		},
		{
			name:  "owned again keeps the level",
			rec:   owned,
			patch: InventoryPatch{Owned: boolPtr(true)},
			want:  owned,
		},
		{
			name:  "bottle size edit alone",
			rec:   owned,
			patch: InventoryPatch{BottleSize: floatPtr(1000)},
			want:  models.InventoryRecord{ProductID: string(BioGrow), Owned: true, BottleSize: 1000, CurrentMl: 320},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ApplyPatch(tc.rec, tc.patch); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestRefill(t *testing.T) {
	t.Parallel()

	rec := models.InventoryRecord{ProductID: string(CalMag), Owned: true, BottleSize: 250, CurrentMl: 3}
	if got := Refill(rec); got.CurrentMl != 250 {
		t.Fatalf("CurrentMl = %v, want 250", got.CurrentMl)
	}
}

func TestConsume(t *testing.T) {
	t.Parallel()

	rec := models.InventoryRecord{ProductID: string(TopMax), Owned: true, BottleSize: 500, CurrentMl: 100}
	if got := Consume(rec, 30); got.CurrentMl != 70 {
		t.Fatalf("CurrentMl = %v, want 70", got.CurrentMl)
	}
	if got := Consume(rec, 300); got.CurrentMl != 0 {
		t.Fatalf("CurrentMl = %v, want 0", got.CurrentMl)
	}
	notOwned := models.NewInventoryRecord(string(TopMax))
	if got := Consume(notOwned, 30); got != notOwned {
		t.Fatalf("not owned bottles are untouched, got %+v", got)
	}
}

func TestEstimateSupply(t *testing.T) {
	t.Parallel()

	// bio-bloom weeks 10..16: 4+4+4+3+2+0+0 = 17 ml/L -> 170 ml over 7 weeks
	est := EstimateSupply(BioBloom, 500, 10)
	if est.RemainingMl != 170 {
		t.Fatalf("RemainingMl = %v, want 170", est.RemainingMl)
	}
	if est.WeeklyUsageMl != 24.3 {
		t.Fatalf("WeeklyUsageMl = %v, want 24.3", est.WeeklyUsageMl)
	}
	if est.Unlimited || est.WeeksLeft != 20 {
		t.Fatalf("WeeksLeft = %d unlimited=%v, want 20", est.WeeksLeft, est.Unlimited)
	}

	if est := EstimateSupply(BioBloom, 0, 10); est.WeeksLeft != 0 || est.Unlimited {
		t.Fatalf("empty bottle: %+v", est)
	}
}

func TestEstimateSupply_NoRemainingDemand(t *testing.T) {
	t.Parallel()

	// root-juice is only used in the first two weeks
	if est := EstimateSupply(RootJuice, 300, 10); !est.Unlimited || est.WeeklyUsageMl != 0 {
		t.Fatalf("root-juice week 10: %+v", est)
	}
	// clamped to week 16, a flush week
	if est := EstimateSupply(BioBloom, 300, 40); !est.Unlimited {
		t.Fatalf("week 40: %+v", est)
	}
}
