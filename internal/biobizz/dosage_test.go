package biobizz

import (
	"math"
	"reflect"
	"testing"
)

func assertDose(t *testing.T, plan DosagePlan, id ProductID, perLiter, total float64) {
	t.Helper()
	d, ok := plan.Dose(id)
	if !ok {
		t.Fatalf("expected %s in plan, got %+v", id, plan.Products)
	}
	if d.MlPerLiter != perLiter || d.TotalMl != total {
		t.Errorf("%s: got %.1f ml/L -> %.1f ml, want %.1f ml/L -> %.1f ml", id, d.MlPerLiter, d.TotalMl, perLiter, total)
	}
}

func assertAbsent(t *testing.T, plan DosagePlan, ids ...ProductID) {
	t.Helper()
	for _, id := range ids {
		if _, ok := plan.Dose(id); ok {
			t.Errorf("did not expect %s in plan", id)
		}
	}
}

func TestCalculateDosage_Week1LightMix(t *testing.T) {
	t.Parallel()

	plan := CalculateDosage(10, 1, LightMix)

	assertDose(t, plan, RootJuice, 1, 10)
	assertDose(t, plan, BioHeaven, 1, 10)
	assertDose(t, plan, ActiVera, 1, 10)
	assertAbsent(t, plan, BioGrow, BioBloom)
	if plan.TotalMl != 30.0 {
		t.Fatalf("TotalMl = %.1f, want 30.0", plan.TotalMl)
	}
	if plan.Phase.ID != PhaseSeedling {
		t.Fatalf("phase = %s, want seedling", plan.Phase.ID)
	}
}

func TestCalculateDosage_Week10LightMix(t *testing.T) {
	t.Parallel()

	plan := CalculateDosage(10, 10, LightMix)

	assertDose(t, plan, BioBloom, 4, 40)
	assertDose(t, plan, TopMax, 3, 30)
	assertDose(t, plan, BioHeaven, 5, 50)
	assertDose(t, plan, ActiVera, 4, 40)
	assertDose(t, plan, AlgAMic, 4, 40)
	assertDose(t, plan, CalMag, 1, 10)
	assertAbsent(t, plan, BioGrow, RootJuice, FishMix)
	if len(plan.Products) != 6 {
		t.Fatalf("want 6 products, got %d", len(plan.Products))
	}
	if plan.TotalMl != 210.0 {
		t.Fatalf("TotalMl = %.1f, want 210.0", plan.TotalMl)
	}
	if plan.ECTarget != ScheduleForWeek(10).ECTarget || plan.Note != ScheduleForWeek(10).Note {
		t.Fatalf("EC target and note must come from the schedule unchanged")
	}
}

func TestCalculateDosage_ProductsFollowCatalogueOrder(t *testing.T) {
	t.Parallel()

	plan := CalculateDosage(10, 10, LightMix)
	want := []ProductID{BioBloom, TopMax, BioHeaven, AlgAMic, ActiVera, CalMag}
	var got []ProductID
	for _, d := range plan.Products {
		got = append(got, d.ProductID)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestCalculateDosage_FlushWeeksAreEmpty(t *testing.T) {
	t.Parallel()

	for _, w := range []int{15, 16} {
		plan := CalculateDosage(10, w, LightMix)
		if len(plan.Products) != 0 {
			t.Errorf("week %d: want no products, got %+v", w, plan.Products)
		}
		if plan.TotalMl != 0 {
			t.Errorf("week %d: TotalMl = %.1f", w, plan.TotalMl)
		}
		if plan.Phase.ID != PhaseFlush {
			t.Errorf("week %d: phase = %s", w, plan.Phase.ID)
		}
	}
}

func TestCalculateDosage_SubstrateMonotonic(t *testing.T) {
	t.Parallel()

	for _, e := range Schedule {
		if len(e.Doses) == 0 {
			continue
		}
		all := CalculateDosage(10, e.Week, AllMix).TotalMl
		light := CalculateDosage(10, e.Week, LightMix).TotalMl
		coco := CalculateDosage(10, e.Week, CocoMix).TotalMl
		if !(all < light && light < coco) {
			t.Errorf("week %d: want allMix %.1f < lightMix %.1f < cocoMix %.1f", e.Week, all, light, coco)
		}
	}
}

func TestCalculateDosage_ScalesWithVolume(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{AllMix, LightMix, CocoMix} {
		for w := FirstWeek; w <= LastWeek; w++ {
			single := CalculateDosage(7, w, sub)
			double := CalculateDosage(14, w, sub)
			tolerance := 0.1*float64(len(single.Products)) + 1e-9
			if diff := math.Abs(double.TotalMl - 2*single.TotalMl); diff > tolerance {
				t.Errorf("%s week %d: 14L %.1f vs 2x7L %.1f", sub, w, double.TotalMl, 2*single.TotalMl)
			}
		}
	}
}

func TestCalculateDosage_UnknownSubstrateUsesNeutralModifier(t *testing.T) {
	t.Parallel()

	got := CalculateDosage(10, 10, "peat")
	want := CalculateDosage(10, 10, LightMix)
	if got.TotalMl != want.TotalMl {
		t.Fatalf("unknown substrate: %.1f, want %.1f", got.TotalMl, want.TotalMl)
	}
	if got.Substrate != "peat" {
		t.Fatalf("plan should echo the requested substrate, got %q", got.Substrate)
	}
}

func TestCalculateDosage_RoundsPerLiterBeforeScaling(t *testing.T) {
	t.Parallel()

	// 3 ml/L * 0.75 = 2.25 -> 2.3 ml/L -> 23 ml in 10 L
	plan := CalculateDosage(10, 10, AllMix)
	assertDose(t, plan, TopMax, 2.3, 23)
}

func TestCalculateDosage_DegenerateVolumes(t *testing.T) {
	t.Parallel()

	zero := CalculateDosage(0, 10, LightMix)
	if zero.TotalMl != 0 || len(zero.Products) != 6 {
		t.Fatalf("zero liters: %+v", zero)
	}
	neg := CalculateDosage(-1, 10, LightMix)
	if neg.TotalMl != -21 {
		t.Fatalf("negative liters: TotalMl = %.1f, want -21", neg.TotalMl)
	}
}

func TestCalculateDosage_OutOfRangeWeekIsClamped(t *testing.T) {
	t.Parallel()

	if got := CalculateDosage(10, 0, LightMix); got.Week != 1 || got.TotalMl != 30 {
		t.Fatalf("week 0: %+v", got)
	}
	if got := CalculateDosage(10, 30, LightMix); got.Week != 16 || len(got.Products) != 0 {
		t.Fatalf("week 30: %+v", got)
	}
}

func TestCalculateDosage_Idempotent(t *testing.T) {
	t.Parallel()

	a := CalculateDosage(12.5, 8, CocoMix)
	b := CalculateDosage(12.5, 8, CocoMix)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("plans differ:\n%+v\n%+v", a, b)
	}
}

func TestSubstrateModifier(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		AllMix:   0.75,
		LightMix: 1.0,
		CocoMix:  1.1,
		"":       1.0,
		"rock":   1.0,
	}
	for key, want := range cases {
		if got := SubstrateModifier(key); got != want {
			t.Errorf("SubstrateModifier(%q) = %v, want %v", key, got, want)
		}
	}
}
