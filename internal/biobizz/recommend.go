package biobizz

import (
	"fmt"
	"math"
	"sort"
	"time"

	"growroom/internal/models"
)

// Priority of a recommendation.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityWarning  Priority = "warning"
	PriorityInfo     Priority = "info"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityWarning:  1,
	PriorityInfo:     2,
}

// RecommendationType is the dimension a recommendation is about.
type RecommendationType string

const (
	TypeEC        RecommendationType = "ec"
	TypePH        RecommendationType = "ph"
	TypeTank      RecommendationType = "tank"
	TypeSoil      RecommendationType = "soil"
	TypePhase     RecommendationType = "phase"
	TypeInventory RecommendationType = "inventory"
)

// Suggested action tokens.
const (
	ActionFlush     = "flush"
	ActionFeed      = "feed"
	ActionPHCorrect = "ph-correct"
	ActionRefill    = "refill"
	ActionWater     = "water"
	ActionRestock   = "restock"
)

const (
	harvestWindowDays = 14
	flushStartWeek    = 15
	tankRefillBelow   = 20.0
	soilWaterBelow    = 30.0
	restockFraction   = 0.2

	// pH readings further than this outside the target are critical
	phWarningBand = 0.3
	phEpsilon     = 1e-9
)

// Recommendation is generated fresh on every evaluation.
type Recommendation struct {
	ID       string             `json:"id"`
	Priority Priority           `json:"priority"`
	Type     RecommendationType `json:"type"`
	Title    string             `json:"title"`
	Message  string             `json:"message"`
	Action   string             `json:"action,omitempty"`
}

// RecommendationInput is everything the rules look at.
type RecommendationInput struct {
	ECStatus        Status
	PHStatus        Status
	CurrentEC       float64
	CurrentPH       float64
	TankLevel       float64
	AvgSoilMoisture float64
	ActivePlants    []models.Plant
	CurrentWeek     int
	Schedule        WeekEntry
	Inventory       map[ProductID]models.InventoryRecord
	Now             time.Time
}

// Recommend evaluates every rule and returns the fired recommendations,
// most urgent first. Equal priorities keep their rule order.
func Recommend(in RecommendationInput) []Recommendation {
	out := make([]Recommendation, 0, 8)
	out = append(out, ecRules(in)...)
	out = append(out, phRules(in)...)
	out = append(out, harvestRules(in)...)
	out = append(out, tankRules(in)...)
	out = append(out, soilRules(in)...)
	out = append(out, restockRules(in)...)

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out
}

func ecRules(in RecommendationInput) []Recommendation {
	switch in.ECStatus {
	case StatusTooHigh:
		return []Recommendation{{
			ID:       "ec-high",
			Priority: PriorityCritical,
			Type:     TypeEC,
			Title:    "EC too high",
			Message:  fmt.Sprintf("EC is %.2f mS/cm. Flush with plain pH-adjusted water to avoid nutrient burn.", in.CurrentEC),
			Action:   ActionFlush,
		}}
	case StatusTooLow:
		return []Recommendation{{
			ID:       "ec-low",
			Priority: PriorityWarning,
			Type:     TypeEC,
			Title:    "EC too low",
			Message:  fmt.Sprintf("EC is %.2f mS/cm. Feed according to the week %d schedule.", in.CurrentEC, in.Schedule.Week),
			Action:   ActionFeed,
		}}
	}
	return nil
}

// phRules escalates to critical when the status says so or when the reading
// is more than phWarningBand outside the target range.
func phRules(in RecommendationInput) []Recommendation {
	var priority Priority
	switch in.PHStatus {
	case StatusCritical:
		priority = PriorityCritical
	case StatusWarning:
		priority = PriorityWarning
		if phOffTarget(in.CurrentPH) > phWarningBand+phEpsilon {
			priority = PriorityCritical
		}
	default:
		return nil
	}

	if in.CurrentPH < PHTargetMin {
		return []Recommendation{{
			ID:       "ph-low",
			Priority: priority,
			Type:     TypePH,
			Title:    "pH too low",
			Message:  fmt.Sprintf("pH is %.1f, raise it to %.1f-%.1f with pH up.", in.CurrentPH, PHTargetMin, PHTargetMax),
			Action:   ActionPHCorrect,
		}}
	}
	return []Recommendation{{
		ID:       "ph-high",
		Priority: priority,
		Type:     TypePH,
		Title:    "pH too high",
		Message:  fmt.Sprintf("pH is %.1f, lower it to %.1f-%.1f with pH down.", in.CurrentPH, PHTargetMin, PHTargetMax),
		Action:   ActionPHCorrect,
	}}
}

// phOffTarget is the distance of ph from the target range, 0 inside it.
func phOffTarget(ph float64) float64 {
	switch {
	case ph < PHTargetMin:
		return PHTargetMin - ph
	case ph > PHTargetMax:
		return ph - PHTargetMax
	}
	return 0
}

// harvestRules fires once, for the first active plant whose harvest is near
// while the flush has not started.
func harvestRules(in RecommendationInput) []Recommendation {
	if in.CurrentWeek >= flushStartWeek {
		return nil
	}
	for _, p := range in.ActivePlants {
		if !p.Active() || p.HarvestDate == nil {
			continue
		}
		days := daysUntil(*p.HarvestDate, in.Now)
		if days < 0 || days > harvestWindowDays {
			continue
		}
		return []Recommendation{{
			ID:       "harvest-flush",
			Priority: PriorityWarning,
			Type:     TypePhase,
			Title:    "Start flushing",
			Message:  fmt.Sprintf("%s is due for harvest in %d days. Switch to plain water now.", p.Name, days),
			Action:   ActionFlush,
		}}
	}
	return nil
}

func tankRules(in RecommendationInput) []Recommendation {
	if in.TankLevel <= 0 || in.TankLevel >= tankRefillBelow {
		return nil
	}
	return []Recommendation{{
		ID:       "tank-low",
		Priority: PriorityWarning,
		Type:     TypeTank,
		Title:    "Reservoir low",
		Message:  fmt.Sprintf("Reservoir is at %.0f%%. Refill before the next watering cycle.", in.TankLevel),
		Action:   ActionRefill,
	}}
}

func soilRules(in RecommendationInput) []Recommendation {
	if in.AvgSoilMoisture <= 0 || in.AvgSoilMoisture >= soilWaterBelow {
		return nil
	}
	return []Recommendation{{
		ID:       "soil-dry",
		Priority: PriorityInfo,
		Type:     TypeSoil,
		Title:    "Soil is drying out",
		Message:  fmt.Sprintf("Average soil moisture is %.0f%%. Water soon.", in.AvgSoilMoisture),
		Action:   ActionWater,
	}}
}

func restockRules(in RecommendationInput) []Recommendation {
	var out []Recommendation
	for _, p := range Products {
		if in.Schedule.Dose(p.ID) <= 0 {
			continue
		}
		rec, ok := in.Inventory[p.ID]
		if !ok || !rec.Owned {
			continue
		}
		if rec.CurrentMl >= rec.BottleSize*restockFraction {
			continue
		}
		out = append(out, Recommendation{
			ID:       "restock-" + string(p.ID),
			Priority: PriorityInfo,
			Type:     TypeInventory,
			Title:    p.Name + " running low",
			Message:  fmt.Sprintf("Only %.0f ml of %.0f ml left and it is needed this week.", rec.CurrentMl, rec.BottleSize),
			Action:   ActionRestock,
		})
	}
	return out
}

// daysUntil counts days to t rounded up, negative once t has passed.
func daysUntil(t, now time.Time) int {
	return int(math.Ceil(float64(t.Sub(now)) / float64(day)))
}

// AverageSoil averages the probes that report a value.
func AverageSoil(probes []float64) float64 {
	var sum float64
	var n int
	for _, v := range probes {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
