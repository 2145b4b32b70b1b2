package analysis

import (
	"testing"

	"zoning-feasibility/internal/model"
)

func TestRankScenariosByValue(t *testing.T) {
	scenarios := []model.DevelopmentScenario{
		{Name: "small", ResidentialSF: 5000, TotalGrossSF: 5000},
		{Name: "large", ResidentialSF: 20000, TotalGrossSF: 20000},
		{Name: "mid", ResidentialSF: 10000, TotalGrossSF: 10000},
	}
	ranked := RankScenarios(scenarios, 3)
	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}
	wantOrder := []string{"large", "mid", "small"}
	for i, name := range wantOrder {
		if ranked[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i+1, ranked[i].Name, name)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("%s Rank = %d, want %d", ranked[i].Name, ranked[i].Rank, i+1)
		}
	}
	if !ranked[0].HighestAndBest {
		t.Errorf("rank 1 should carry the highest-and-best flag")
	}
	if ranked[1].HighestAndBest || ranked[2].HighestAndBest {
		t.Errorf("only rank 1 is highest and best")
	}

	// Input slice stays unranked.
	if scenarios[0].Rank != 0 {
		t.Errorf("input slice was mutated: %+v", scenarios[0])
	}
}

func TestRankScenariosResidentialTiebreak(t *testing.T) {
	// Same total value in borough 2 (res 500, comm 350):
	// 7000 res = 3.5M vs 10000 comm = 3.5M.
	scenarios := []model.DevelopmentScenario{
		{Name: "commercial", CommercialSF: 10000, TotalGrossSF: 10000},
		{Name: "residential", ResidentialSF: 7000, TotalGrossSF: 7000},
	}
	ranked := RankScenarios(scenarios, 2)
	if ranked[0].Name != "residential" {
		t.Errorf("equal value should break toward residential SF, got %q first", ranked[0].Name)
	}
}

func TestRankScenariosEmpty(t *testing.T) {
	if got := RankScenarios(nil, 3); got != nil {
		t.Errorf("RankScenarios(nil) = %v, want nil", got)
	}
}

func TestValuerRankUsesOverrides(t *testing.T) {
	// Override flips commercial above residential in borough 3.
	v := Valuer{Overrides: map[int]ValueBenchmarks{
		3: {Commercial: 2000},
	}}
	scenarios := []model.DevelopmentScenario{
		{Name: "res", ResidentialSF: 10000, TotalGrossSF: 10000},
		{Name: "comm", CommercialSF: 10000, TotalGrossSF: 10000},
	}
	ranked := v.Rank(scenarios, 3)
	if ranked[0].Name != "comm" {
		t.Errorf("with override, commercial should rank first, got %q", ranked[0].Name)
	}
	if ranked[0].EstimatedValue != 20000000 {
		t.Errorf("commercial value = %v, want 20,000,000", ranked[0].EstimatedValue)
	}
}
