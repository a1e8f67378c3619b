package biobizz

// ProductID identifies a nutrient product in the catalogue.
type ProductID string

const (
	BioGrow   ProductID = "bio-grow"
	BioBloom  ProductID = "bio-bloom"
	TopMax    ProductID = "top-max"
	RootJuice ProductID = "root-juice"
	BioHeaven ProductID = "bio-heaven"
	AlgAMic   ProductID = "alg-a-mic"
	ActiVera  ProductID = "acti-vera"
	FishMix   ProductID = "fish-mix"
	CalMag    ProductID = "calmag"
)

// Category groups products by their role in the feeding line.
type Category string

const (
	CategoryBasis      Category = "Basis"
	CategoryStimulator Category = "Stimulator"
	CategoryBooster    Category = "Booster"
	CategorySupplement Category = "Supplement"
)

// DoseRange is the manufacturer's per-liter dosage window in ml.
type DoseRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Product is immutable reference data.
type Product struct {
	ID        ProductID `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	NPK       *string   `json:"npk"` // nil when the product has no NPK rating
	Category  Category  `json:"category"`
	Dose      DoseRange `json:"dose_ml_per_l"`
	Color     string    `json:"color"`
}

func npk(s string) *string { return &s }

// Products lists the catalogue in display order. Dosage plans and restock
// recommendations follow this order.
var Products = []Product{
	{ID: BioGrow, Name: "Bio·Grow", ShortName: "Grow", NPK: npk("4-3-6"), Category: CategoryBasis, Dose: DoseRange{1, 4}, Color: "#4caf50"},
	{ID: BioBloom, Name: "Bio·Bloom", ShortName: "Bloom", NPK: npk("2-7-4"), Category: CategoryBasis, Dose: DoseRange{1, 4}, Color: "#e91e63"},
	{ID: TopMax, Name: "Top·Max", ShortName: "TopMax", NPK: npk("0.1-0.01-0.1"), Category: CategoryBooster, Dose: DoseRange{1, 4}, Color: "#ff9800"},
	{ID: RootJuice, Name: "Root·Juice", ShortName: "Root", Category: CategoryStimulator, Dose: DoseRange{1, 4}, Color: "#795548"},
	{ID: BioHeaven, Name: "Bio·Heaven", ShortName: "Heaven", Category: CategoryStimulator, Dose: DoseRange{2, 5}, Color: "#03a9f4"},
	{ID: AlgAMic, Name: "Alg·A·Mic", ShortName: "AlgAMic", Category: CategoryStimulator, Dose: DoseRange{1, 4}, Color: "#009688"},
	{ID: ActiVera, Name: "Acti·Vera", ShortName: "ActiVera", Category: CategoryStimulator, Dose: DoseRange{1, 5}, Color: "#8bc34a"},
	{ID: FishMix, Name: "Fish·Mix", ShortName: "Fish", NPK: npk("2-1-1"), Category: CategoryBasis, Dose: DoseRange{1, 4}, Color: "#607d8b"},
	{ID: CalMag, Name: "CalMag", ShortName: "CalMag", Category: CategorySupplement, Dose: DoseRange{0.5, 1.5}, Color: "#9e9e9e"},
}

// ProductByID looks a product up in the catalogue.
func ProductByID(id ProductID) (Product, bool) {
	for _, p := range Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
