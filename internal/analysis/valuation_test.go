package analysis

import (
	"testing"

	"zoning-feasibility/internal/model"
)

func TestGetValueBenchmarks(t *testing.T) {
	if got := GetValueBenchmarks(1).Residential; got != 1500 {
		t.Errorf("Manhattan residential $/SF = %v, want 1500", got)
	}
	// Unknown boroughs fall back to Brooklyn rates.
	if got, want := GetValueBenchmarks(9), GetValueBenchmarks(3); got != want {
		t.Errorf("unknown borough = %+v, want Brooklyn fallback %+v", got, want)
	}
}

func TestValuerBenchmarksOverlay(t *testing.T) {
	v := Valuer{Overrides: map[int]ValueBenchmarks{
		3: {Residential: 1200},
	}}
	rates := v.Benchmarks(3)
	if rates.Residential != 1200 {
		t.Errorf("override residential = %v, want 1200", rates.Residential)
	}
	// Zero override fields keep the built-in rate.
	if rates.Commercial != 600 {
		t.Errorf("commercial = %v, want built-in 600", rates.Commercial)
	}
	// Boroughs without overrides are untouched.
	if got := v.Benchmarks(1).Residential; got != 1500 {
		t.Errorf("borough 1 residential = %v, want 1500", got)
	}
}

func TestEstimateScenarioValue(t *testing.T) {
	sc := model.DevelopmentScenario{
		ResidentialSF: 10000,
		CommercialSF:  2000,
		TotalGrossSF:  12000,
	}
	val := EstimateScenarioValue(sc, 3)
	if val.ResidentialValue != 10000*1000 {
		t.Errorf("residential value = %v, want 10,000,000", val.ResidentialValue)
	}
	if val.CommercialValue != 2000*600 {
		t.Errorf("commercial value = %v, want 1,200,000", val.CommercialValue)
	}
	if want := 10000*1000.0 + 2000*600.0; val.TotalValue != want {
		t.Errorf("total value = %v, want %v", val.TotalValue, want)
	}
	// 11,200,000 / 12,000 rounded to cents.
	if val.BlendedPSF != 933.33 {
		t.Errorf("blended $/SF = %v, want 933.33", val.BlendedPSF)
	}
}

func TestEstimateZeroGrossSF(t *testing.T) {
	val := EstimateScenarioValue(model.DevelopmentScenario{}, 3)
	if val.BlendedPSF != 0 {
		t.Errorf("blended $/SF on empty scenario = %v, want 0", val.BlendedPSF)
	}
}
