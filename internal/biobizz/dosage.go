package biobizz

import "math"

// Substrate keys.
const (
	AllMix   = "allMix"
	LightMix = "lightMix"
	CocoMix  = "cocoMix"
)

const defaultModifier = 1.0

// Substrate scales every per-liter dose for a growing medium.
type Substrate struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Modifier float64 `json:"modifier"`
}

// Substrates lists the supported growing media.
var Substrates = []Substrate{
	{Key: AllMix, Label: "All·Mix (pre-fertilised)", Modifier: 0.75},
	{Key: LightMix, Label: "Light·Mix", Modifier: 1.0},
	{Key: CocoMix, Label: "Coco·Mix", Modifier: 1.1},
}

// SubstrateModifier returns the multiplier for key, 1.0 for unknown keys.
func SubstrateModifier(key string) float64 {
	for _, s := range Substrates {
		if s.Key == key {
			return s.Modifier
		}
	}
	return defaultModifier
}

// ProductDose is one line of a dosing plan.
type ProductDose struct {
	ProductID  ProductID `json:"product_id"`
	Name       string    `json:"name"`
	MlPerLiter float64   `json:"ml_per_liter"`
	TotalMl    float64   `json:"total_ml"`
}

// DosagePlan is computed on demand and never stored.
type DosagePlan struct {
	Liters    float64       `json:"liters"`
	Week      int           `json:"week"`
	Substrate string        `json:"substrate"`
	Phase     GrowthPhase   `json:"phase"`
	Products  []ProductDose `json:"products"`
	TotalMl   float64       `json:"total_ml"`
	ECTarget  ECRange       `json:"ec_target"`
	Note      string        `json:"note"`
}

// CalculateDosage builds the plan for a tank of liters in the given week.
// liters is not validated: zero or negative volumes give zero or negative totals.
func CalculateDosage(liters float64, week int, substrate string) DosagePlan {
	entry := ScheduleForWeek(week)
	modifier := SubstrateModifier(substrate)

	plan := DosagePlan{
		Liters:    liters,
		Week:      entry.Week,
		Substrate: substrate,
		Phase:     PhaseForWeek(entry.Week),
		Products:  []ProductDose{},
		ECTarget:  entry.ECTarget,
		Note:      entry.Note,
	}

	var total float64
	for _, p := range Products {
		raw := entry.Dose(p.ID)
		if raw <= 0 {
			continue
		}
		perLiter := round1(raw * modifier)
		productTotal := round1(perLiter * liters)
		plan.Products = append(plan.Products, ProductDose{
			ProductID:  p.ID,
			Name:       p.Name,
			MlPerLiter: perLiter,
			TotalMl:    productTotal,
		})
		// summed from rounded lines so the total matches what the user measures out
		total += productTotal
	}
	plan.TotalMl = round1(total)
	return plan
}

// Dose returns the plan line for id.
func (p DosagePlan) Dose(id ProductID) (ProductDose, bool) {
	for _, d := range p.Products {
		if d.ProductID == id {
			return d, true
		}
	}
	return ProductDose{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
