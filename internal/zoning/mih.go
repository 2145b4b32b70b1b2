package zoning

import "math"

// Mandatory Inclusionary Housing, ZR 23-154 / 23-90. In MIH-mapped
// areas the bonus FAR is only available with affordable housing; no
// as-of-right path exists without it.

// MIHOption is one of the affordability options a developer may elect.
type MIHOption struct {
	Key           string  `json:"option_key"`
	Name          string  `json:"option_name"`
	AffordablePct float64 `json:"affordable_pct"`
	AvgAMI        int     `json:"avg_ami"`
	AMIRangeMin   int     `json:"ami_range_min"`
	AMIRangeMax   int     `json:"ami_range_max"`
	Description   string  `json:"description"`
}

const (
	MIHOption1           = "option_1"
	MIHOption2           = "option_2"
	MIHDeepAffordability = "deep_affordability"
	MIHWorkforce         = "workforce"
)

var mihOptions = map[string]MIHOption{
	MIHOption1: {
		Key: MIHOption1, Name: "MIH Option 1",
		AffordablePct: 0.25, AvgAMI: 60, AMIRangeMin: 40, AMIRangeMax: 80,
		Description: "25% of residential floor area affordable at avg 60% AMI",
	},
	MIHOption2: {
		Key: MIHOption2, Name: "MIH Option 2",
		AffordablePct: 0.30, AvgAMI: 80, AMIRangeMin: 60, AMIRangeMax: 115,
		Description: "30% of residential floor area affordable at avg 80% AMI",
	},
	MIHDeepAffordability: {
		Key: MIHDeepAffordability, Name: "Deep Affordability",
		AffordablePct: 0.20, AvgAMI: 40, AMIRangeMin: 20, AMIRangeMax: 60,
		Description: "20% of residential floor area affordable at avg 40% AMI",
	},
	MIHWorkforce: {
		Key: MIHWorkforce, Name: "Workforce Option",
		AffordablePct: 0.30, AvgAMI: 115, AMIRangeMin: 90, AMIRangeMax: 135,
		Description: "30% of residential floor area affordable at avg 115% AMI",
	},
}

// HUD-published monthly rent limits for the NYC MSA, 2024, keyed by
// AMI percentage then unit type.
var amiRents2024 = map[int]map[string]float64{
	30:  {"studio": 567, "1br": 607, "2br": 729, "3br": 842},
	40:  {"studio": 756, "1br": 810, "2br": 972, "3br": 1123},
	50:  {"studio": 945, "1br": 1012, "2br": 1215, "3br": 1404},
	60:  {"studio": 1134, "1br": 1215, "2br": 1458, "3br": 1685},
	80:  {"studio": 1512, "1br": 1620, "2br": 1944, "3br": 2246},
	100: {"studio": 1890, "1br": 2025, "2br": 2430, "3br": 2808},
	115: {"studio": 2174, "1br": 2329, "2br": 2795, "3br": 3229},
	130: {"studio": 2457, "1br": 2633, "2br": 3159, "3br": 3650},
}

// MIHProgram is the affordability math for one MIH option applied to
// a building's residential floor area.
type MIHProgram struct {
	Option                   MIHOption          `json:"option"`
	AffordableSF             float64            `json:"affordable_sf"`
	MarketRateSF             float64            `json:"market_rate_sf"`
	EstimatedAffordableUnits int                `json:"estimated_affordable_units"`
	RentSchedule             map[string]float64 `json:"rent_schedule"`
	AnnualRevenueImpact      float64            `json:"estimated_annual_revenue_impact"`
}

const avgAffordableUnitSF = 650.0

// CalculateMIHProgram sizes the affordable set-aside for one MIH
// option. Unknown option keys fall back to Option 1. Revenue impact
// compares the option's rent schedule against 100% AMI rents.
func CalculateMIHProgram(optionKey string, totalResidentialSF float64) MIHProgram {
	option, ok := mihOptions[optionKey]
	if !ok {
		option = mihOptions[MIHOption1]
	}

	affordableSF := totalResidentialSF * option.AffordablePct
	marketRateSF := totalResidentialSF - affordableSF

	units := int(affordableSF / avgAffordableUnitSF)
	if units < 1 {
		units = 1
	}

	rents := amiRents2024[option.AvgAMI]
	marketRents := amiRents2024[100]
	var annualImpact float64
	if len(rents) > 0 && len(marketRents) > 0 {
		annualImpact = (avgRent(marketRents) - avgRent(rents)) * float64(units) * 12
	}

	return MIHProgram{
		Option:                   option,
		AffordableSF:             math.Round(affordableSF),
		MarketRateSF:             math.Round(marketRateSF),
		EstimatedAffordableUnits: units,
		RentSchedule:             rents,
		AnnualRevenueImpact:      math.Round(annualImpact),
	}
}

// AllMIHOptions computes every MIH option for side-by-side comparison.
func AllMIHOptions(totalResidentialSF float64) []MIHProgram {
	keys := []string{MIHOption1, MIHOption2, MIHDeepAffordability, MIHWorkforce}
	out := make([]MIHProgram, 0, len(keys))
	for _, k := range keys {
		out = append(out, CalculateMIHProgram(k, totalResidentialSF))
	}
	return out
}

func avgRent(rents map[string]float64) float64 {
	var sum float64
	for _, r := range rents {
		sum += r
	}
	return sum / float64(len(rents))
}
