package analysis

import (
	"sort"

	"zoning-feasibility/internal/model"
)

// RankScenarios orders scenarios by estimated development value,
// highest first. Ties break on residential SF, larger first. The input
// slice is not modified; the returned slice carries rank annotations
// and the highest-and-best flag on rank 1.
func RankScenarios(scenarios []model.DevelopmentScenario, borough int) []model.DevelopmentScenario {
	return Valuer{}.Rank(scenarios, borough)
}

// Rank orders scenarios by estimated value at the valuer's effective
// rates, annotating rank and the highest-and-best flag.
func (v Valuer) Rank(scenarios []model.DevelopmentScenario, borough int) []model.DevelopmentScenario {
	if len(scenarios) == 0 {
		return nil
	}

	out := make([]model.DevelopmentScenario, len(scenarios))
	copy(out, scenarios)

	for i := range out {
		val := v.Estimate(out[i], borough)
		out[i].EstimatedValue = val.TotalValue
		out[i].BlendedPSF = val.BlendedPSF
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EstimatedValue != out[j].EstimatedValue {
			return out[i].EstimatedValue > out[j].EstimatedValue
		}
		return out[i].ResidentialSF > out[j].ResidentialSF
	})

	for i := range out {
		out[i].Rank = i + 1
		out[i].HighestAndBest = i == 0
	}
	return out
}
