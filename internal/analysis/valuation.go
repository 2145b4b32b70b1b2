// Package analysis values and ranks development scenarios, nets air
// rights across merged zoning lots, and compares assemblage outcomes.
package analysis

import (
	"math"

	"zoning-feasibility/internal/model"
)

// ValueBenchmarks are order-of-magnitude $/SF rates by use, gross
// building area basis. Drawn from DOF rolling sales and public market
// data; not appraisals.
type ValueBenchmarks struct {
	Residential float64 `json:"residential"`
	Commercial  float64 `json:"commercial"`
	CommunityFac float64 `json:"cf"`
	Parking     float64 `json:"parking"`
}

// $/SF by borough code 1-5.
var valuePerSF = map[int]ValueBenchmarks{
	1: {Residential: 1500, Commercial: 800, CommunityFac: 500, Parking: 80},
	2: {Residential: 500, Commercial: 350, CommunityFac: 300, Parking: 60},
	3: {Residential: 1000, Commercial: 600, CommunityFac: 400, Parking: 70},
	4: {Residential: 700, Commercial: 450, CommunityFac: 350, Parking: 65},
	5: {Residential: 550, Commercial: 350, CommunityFac: 300, Parking: 60},
}

const fallbackBorough = 3

// GetValueBenchmarks returns $/SF rates for a borough. Unknown codes
// fall back to Brooklyn.
func GetValueBenchmarks(borough int) ValueBenchmarks {
	if v, ok := valuePerSF[borough]; ok {
		return v
	}
	return valuePerSF[fallbackBorough]
}

// Valuer prices scenarios, optionally with per-borough rate overrides
// from configuration. The zero value uses the built-in benchmarks.
type Valuer struct {
	Overrides map[int]ValueBenchmarks
}

// Benchmarks resolves the effective rates for a borough: built-in
// defaults with non-zero override fields layered on top.
func (v Valuer) Benchmarks(borough int) ValueBenchmarks {
	rates := GetValueBenchmarks(borough)
	o, ok := v.Overrides[borough]
	if !ok {
		return rates
	}
	if o.Residential != 0 {
		rates.Residential = o.Residential
	}
	if o.Commercial != 0 {
		rates.Commercial = o.Commercial
	}
	if o.CommunityFac != 0 {
		rates.CommunityFac = o.CommunityFac
	}
	if o.Parking != 0 {
		rates.Parking = o.Parking
	}
	return rates
}

// Estimate prices one scenario at the effective rates.
func (v Valuer) Estimate(sc model.DevelopmentScenario, borough int) ScenarioValuation {
	rates := v.Benchmarks(borough)

	out := ScenarioValuation{
		ResidentialValue: sc.ResidentialSF * rates.Residential,
		CommercialValue:  sc.CommercialSF * rates.Commercial,
		CommunityValue:   sc.CommunitySF * rates.CommunityFac,
		ParkingValue:     sc.ParkingSF * rates.Parking,
		Rates:            rates,
	}
	out.TotalValue = out.ResidentialValue + out.CommercialValue + out.CommunityValue + out.ParkingValue
	if sc.TotalGrossSF > 0 {
		out.BlendedPSF = math.Round(out.TotalValue/sc.TotalGrossSF*100) / 100
	}
	return out
}

// ScenarioValuation breaks a scenario's estimated value down by use.
type ScenarioValuation struct {
	ResidentialValue float64         `json:"residential_value"`
	CommercialValue  float64         `json:"commercial_value"`
	CommunityValue   float64         `json:"cf_value"`
	ParkingValue     float64         `json:"parking_value"`
	TotalValue       float64         `json:"total_estimated_value"`
	BlendedPSF       float64         `json:"value_per_sf_blended"`
	Rates            ValueBenchmarks `json:"rates_used"`
}

// EstimateScenarioValue prices one scenario at borough benchmark
// rates. Blended $/SF divides by gross building area.
func EstimateScenarioValue(sc model.DevelopmentScenario, borough int) ScenarioValuation {
	return Valuer{}.Estimate(sc, borough)
}

// ValuationDisclaimer is attached to every valuation-bearing output.
const ValuationDisclaimer = "Estimated values are rough order-of-magnitude benchmarks based on " +
	"borough-level average $/SF for new development. They do not constitute an appraisal, " +
	"market study, or investment recommendation. Actual values depend on market conditions, " +
	"location within the borough, building quality, unit mix, amenities, and other factors. " +
	"Consult a licensed appraiser or broker for project-specific valuations."
