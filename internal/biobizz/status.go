package biobizz

// Status is a classifier label.
type Status string

const (
	StatusUnknown  Status = "unknown"
	StatusOptimal  Status = "optimal"
	StatusOK       Status = "ok"
	StatusTooHigh  Status = "too high"
	StatusTooLow   Status = "too low"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusDry      Status = "dry"
	StatusTooWet   Status = "too wet"
	StatusGood     Status = "good"
	StatusMedium   Status = "medium"
	StatusLow      Status = "low"
)

// Tone is the presentation tag that travels with a status.
type Tone string

const (
	ToneMuted   Tone = "muted"
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Classification pairs a status with its tone.
type Classification struct {
	Status Status `json:"status"`
	Tone   Tone   `json:"tone"`
}

// Safe operating envelope. These are fixed, not configurable.
const (
	ECMax = 2.5
	ECMin = 0.4

	PHTargetMin   = 6.2
	PHTargetMax   = 6.5
	PHCriticalMin = 5.5
	PHCriticalMax = 7.0

	TempOptimalMin  = 18.0
	TempOptimalMax  = 24.0
	TempCriticalMin = 15.0
	TempCriticalMax = 28.0

	SoilOptimalMin = 40.0
	SoilOptimalMax = 70.0
	SoilDry        = 25.0
	SoilWet        = 80.0

	TankGood   = 50.0
	TankMedium = 20.0
)

var unknown = Classification{Status: StatusUnknown, Tone: ToneMuted}

// SensorReading holds the latest values. Zero means no reading.
type SensorReading struct {
	EC          float64 `json:"ec"`
	PH          float64 `json:"ph"`
	Temperature float64 `json:"temp"`
	Soil        float64 `json:"soil"`
	TankLevel   float64 `json:"tank"`
}

// StatusReport is the per-dimension classification of a reading.
type StatusReport struct {
	EC          Classification `json:"ec"`
	PH          Classification `json:"ph"`
	Temperature Classification `json:"temp"`
	Soil        Classification `json:"soil"`
	Tank        Classification `json:"tank"`
}

// ClassifyEC checks ec against the week target first, then the fixed limits.
// target may be nil when no schedule applies.
func ClassifyEC(ec float64, target *ECRange) Classification {
	switch {
	case ec == 0:
		return unknown
	case target != nil && target.Contains(ec):
		return Classification{StatusOptimal, ToneSuccess}
	case ec > ECMax:
		return Classification{StatusTooHigh, ToneDanger}
	case ec < ECMin:
		return Classification{StatusTooLow, ToneWarning}
	default:
		return Classification{StatusOK, ToneInfo}
	}
}

func ClassifyPH(ph float64) Classification {
	switch {
	case ph == 0:
		return unknown
	case ph >= PHTargetMin && ph <= PHTargetMax:
		return Classification{StatusOptimal, ToneSuccess}
	case ph < PHCriticalMin || ph > PHCriticalMax:
		return Classification{StatusCritical, ToneDanger}
	default:
		return Classification{StatusWarning, ToneWarning}
	}
}

// ClassifyTemperature takes °C. The in-between band is "ok" with a warning tone.
func ClassifyTemperature(c float64) Classification {
	switch {
	case c == 0:
		return unknown
	case c >= TempOptimalMin && c <= TempOptimalMax:
		return Classification{StatusOptimal, ToneSuccess}
	case c < TempCriticalMin || c > TempCriticalMax:
		return Classification{StatusCritical, ToneDanger}
	default:
		return Classification{StatusOK, ToneWarning}
	}
}

func ClassifySoil(pct float64) Classification {
	switch {
	case pct == 0:
		return unknown
	case pct >= SoilOptimalMin && pct <= SoilOptimalMax:
		return Classification{StatusOptimal, ToneSuccess}
	case pct < SoilDry:
		return Classification{StatusDry, ToneDanger}
	case pct > SoilWet:
		return Classification{StatusTooWet, ToneWarning}
	default:
		return Classification{StatusOK, ToneInfo}
	}
}

// ClassifyTank takes the reservoir fill level in percent. An empty tank reads as unknown.
func ClassifyTank(pct float64) Classification {
	switch {
	case pct == 0:
		return unknown
	case pct >= TankGood:
		return Classification{StatusGood, ToneSuccess}
	case pct >= TankMedium:
		return Classification{StatusMedium, ToneWarning}
	default:
		return Classification{StatusLow, ToneDanger}
	}
}

// ClassifyAll classifies every dimension of r.
func ClassifyAll(r SensorReading, target *ECRange) StatusReport {
	return StatusReport{
		EC:          ClassifyEC(r.EC, target),
		PH:          ClassifyPH(r.PH),
		Temperature: ClassifyTemperature(r.Temperature),
		Soil:        ClassifySoil(r.Soil),
		Tank:        ClassifyTank(r.TankLevel),
	}
}

// Critical reports whether the classification needs immediate attention.
func (c Classification) Critical() bool {
	return c.Tone == ToneDanger
}
