package biobizz

const (
	FirstWeek = 1
	LastWeek  = 16
)

// ECRange is an electrical conductivity target in mS/cm, both ends inclusive.
type ECRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether ec lies within the range.
func (r ECRange) Contains(ec float64) bool {
	return ec >= r.Min && ec <= r.Max
}

// WeekEntry is one row of the feeding chart. A product missing from Doses
// (or mapped to zero) is not used that week.
type WeekEntry struct {
	Week     int                   `json:"week"`
	Phase    PhaseID               `json:"phase"`
	Doses    map[ProductID]float64 `json:"doses"`
	ECTarget ECRange               `json:"ec_target"`
	Note     string                `json:"note"`
}

// Dose returns the raw ml/L for a product, zero when unused.
func (e WeekEntry) Dose(id ProductID) float64 {
	return e.Doses[id]
}

// Schedule is the 16 week BioBizz feeding chart, ordered by week.
var Schedule = []WeekEntry{
	{
		Week: 1, Phase: PhaseSeedling,
		Doses:    map[ProductID]float64{RootJuice: 1, BioHeaven: 1, ActiVera: 1},
		ECTarget: ECRange{0.4, 0.8},
		Note:     "Rooting: stimulators only, keep the medium moist but not wet.",
	},
	{
		Week: 2, Phase: PhaseSeedling,
		Doses:    map[ProductID]float64{BioGrow: 1, RootJuice: 2, BioHeaven: 2, ActiVera: 1},
		ECTarget: ECRange{0.6, 1.0},
		Note:     "First light feed with Bio·Grow.",
	},
	{
		Week: 3, Phase: PhaseVegetative,
		Doses:    map[ProductID]float64{BioGrow: 2, BioHeaven: 2, AlgAMic: 1, ActiVera: 2, FishMix: 1, CalMag: 0.5},
		ECTarget: ECRange{0.8, 1.2},
		Note:     "Vegetative growth starts.",
	},
	{
		Week: 4, Phase: PhaseVegetative,
		Doses:    map[ProductID]float64{BioGrow: 3, BioHeaven: 2, AlgAMic: 2, ActiVera: 2, FishMix: 2, CalMag: 0.5},
		ECTarget: ECRange{1.0, 1.4},
	},
	{
		Week: 5, Phase: PhaseVegetative,
		Doses:    map[ProductID]float64{BioGrow: 3, BioHeaven: 3, AlgAMic: 2, ActiVera: 3, FishMix: 2, CalMag: 1},
		ECTarget: ECRange{1.2, 1.6},
	},
	{
		Week: 6, Phase: PhaseVegetative,
		Doses:    map[ProductID]float64{BioGrow: 4, BioHeaven: 3, AlgAMic: 3, ActiVera: 3, FishMix: 2, CalMag: 1},
		ECTarget: ECRange{1.2, 1.6},
		Note:     "Last vegetative week, switch the light cycle to 12/12 at the end.",
	},
	{
		Week: 7, Phase: PhaseEarlyBloom,
		Doses:    map[ProductID]float64{BioGrow: 2, BioBloom: 2, TopMax: 1, BioHeaven: 4, AlgAMic: 3, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.4, 1.8},
		Note:     "Transition: Bio·Grow is phased out, Bio·Bloom comes in.",
	},
	{
		Week: 8, Phase: PhaseEarlyBloom,
		Doses:    map[ProductID]float64{BioGrow: 1, BioBloom: 3, TopMax: 2, BioHeaven: 4, AlgAMic: 3, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.4, 1.8},
	},
	{
		Week: 9, Phase: PhaseEarlyBloom,
		Doses:    map[ProductID]float64{BioBloom: 3, TopMax: 2, BioHeaven: 5, AlgAMic: 4, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.6, 2.0},
	},
	{
		Week: 10, Phase: PhaseMidBloom,
		Doses:    map[ProductID]float64{BioBloom: 4, TopMax: 3, BioHeaven: 5, AlgAMic: 4, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.6, 2.0},
		Note:     "Peak bloom feeding.",
	},
	{
		Week: 11, Phase: PhaseMidBloom,
		Doses:    map[ProductID]float64{BioBloom: 4, TopMax: 4, BioHeaven: 5, AlgAMic: 4, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.8, 2.2},
	},
	{
		Week: 12, Phase: PhaseMidBloom,
		Doses:    map[ProductID]float64{BioBloom: 4, TopMax: 4, BioHeaven: 5, AlgAMic: 4, ActiVera: 4, CalMag: 1},
		ECTarget: ECRange{1.8, 2.2},
	},
	{
		Week: 13, Phase: PhaseLateBloom,
		Doses:    map[ProductID]float64{BioBloom: 3, TopMax: 4, BioHeaven: 4, AlgAMic: 3, ActiVera: 3},
		ECTarget: ECRange{1.4, 1.8},
		Note:     "Ripening: reduce base nutrients.",
	},
	{
		Week: 14, Phase: PhaseLateBloom,
		Doses:    map[ProductID]float64{BioBloom: 2, TopMax: 4, BioHeaven: 4, AlgAMic: 2, ActiVera: 2},
		ECTarget: ECRange{1.2, 1.6},
	},
	{
		Week: 15, Phase: PhaseFlush,
		ECTarget: ECRange{0, 0.4},
		Note:     "Flush: plain pH-adjusted water only.",
	},
	{
		Week: 16, Phase: PhaseFlush,
		ECTarget: ECRange{0, 0.4},
		Note:     "Flush until harvest.",
	},
}

// ClampWeek limits week to the chart range.
func ClampWeek(week int) int {
	if week < FirstWeek {
		return FirstWeek
	}
	if week > LastWeek {
		return LastWeek
	}
	return week
}

// ScheduleForWeek returns the chart row for week after clamping it to 1..16.
// Rows cover every week, the trailing fallback only guards a broken table.
func ScheduleForWeek(week int) WeekEntry {
	week = ClampWeek(week)
	for _, e := range Schedule {
		if e.Week == week {
			return e
		}
	}
	return fallbackEntry()
}

func fallbackEntry() WeekEntry {
	return Schedule[len(Schedule)-1]
}
