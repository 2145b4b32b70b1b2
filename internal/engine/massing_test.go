package engine

import (
	"testing"

	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

func TestEstimateCore(t *testing.T) {
	cases := []struct {
		name      string
		floors    int
		fp        float64
		elevators int
		stairs    int
	}{
		{"walkup", 2, 3000, 0, 1},
		{"small elevator building", 4, 3000, 1, 1},
		{"single stair limit is 4000 SF", 4, 5000, 1, 2},
		{"midrise", 10, 8000, 2, 2},
		{"15 stories", 15, 8000, 3, 2},
		{"25 stories", 25, 10000, 4, 2},
		{"highrise", 45, 10000, 5, 3},
	}
	for _, tc := range cases {
		core := estimateCore(tc.floors, tc.fp)
		if core.Elevators != tc.elevators {
			t.Errorf("%s: elevators = %d, want %d", tc.name, core.Elevators, tc.elevators)
		}
		if core.Stairs != tc.stairs {
			t.Errorf("%s: stairs = %d, want %d", tc.name, core.Stairs, tc.stairs)
		}
	}
}

func TestEstimateCorePercentage(t *testing.T) {
	core := estimateCore(10, 10000)
	// 2 elevators * 75 + 2 stairs * 150 + 3% mech + 8% corridor.
	if want := 150.0 + 300 + 300 + 800; core.TotalCoreSFPerFloor != want {
		t.Errorf("core SF per floor = %v, want %v", core.TotalCoreSFPerFloor, want)
	}
	if core.CorePercentage != 15.5 {
		t.Errorf("core percentage = %v, want 15.5", core.CorePercentage)
	}
}

func TestGenerateUnitMix(t *testing.T) {
	// Balanced strategy averages 745 SF/unit.
	mix := generateUnitMix(74500, "balanced")
	if mix.TotalUnits != 100 {
		t.Fatalf("TotalUnits = %d, want 100", mix.TotalUnits)
	}
	if len(mix.Units) != 4 {
		t.Errorf("unit types = %d, want 4", len(mix.Units))
	}
	counts := map[string]int{}
	for _, u := range mix.Units {
		counts[u.Type] = u.Count
	}
	if counts["1br"] != 40 || counts["studio"] != 15 {
		t.Errorf("balanced mix = %v", counts)
	}

	// Unknown strategies fall back to balanced.
	fallback := generateUnitMix(74500, "unheard_of")
	if fallback.TotalUnits != 100 {
		t.Errorf("fallback TotalUnits = %d, want 100", fallback.TotalUnits)
	}
}

func TestGenerateUnitMixEmpty(t *testing.T) {
	mix := generateUnitMix(0, "balanced")
	if mix.TotalUnits != 0 || len(mix.Units) != 0 {
		t.Errorf("zero SF should yield an empty mix: %+v", mix)
	}
}

func TestCapUnitMix(t *testing.T) {
	mix := generateUnitMix(74500, "balanced")

	if got := capUnitMix(mix, 0, 74500); got.TotalUnits != 100 {
		t.Errorf("cap 0 means uncapped, got %d units", got.TotalUnits)
	}
	if got := capUnitMix(mix, 200, 74500); got.TotalUnits != 100 {
		t.Errorf("cap above total should not change the mix, got %d units", got.TotalUnits)
	}
	if got := capUnitMix(mix, 5, 74500); got.TotalUnits != 5 {
		t.Errorf("capped mix = %d units, want exactly 5", got.TotalUnits)
	}
}

func TestCapUnitMixSmallCaps(t *testing.T) {
	// Low-density lot-area-per-DU caps bind hard: the refit mix must
	// still emit units.
	mix := generateUnitMix(7790, "balanced")
	for _, cap := range []int{1, 2, 3} {
		got := capUnitMix(mix, cap, 7790)
		if got.TotalUnits != cap {
			t.Errorf("cap %d: TotalUnits = %d, want %d", cap, got.TotalUnits, cap)
		}
		if len(got.Units) == 0 {
			t.Errorf("cap %d: empty unit mix", cap)
		}
		counted := 0
		for _, u := range got.Units {
			counted += u.Count
		}
		if counted != got.TotalUnits {
			t.Errorf("cap %d: per-type counts sum to %d, TotalUnits says %d", cap, counted, got.TotalUnits)
		}
	}
}

func TestMinPositiveCap(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 5, 5},
		{5, 0, 5},
		{3, 7, 3},
		{7, 3, 3},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := minPositiveCap(tc.a, tc.b); got != tc.want {
			t.Errorf("minPositiveCap(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestFootprint(t *testing.T) {
	lot := model.LotProfile{LotArea: 5000, LotFrontage: 50, LotDepth: 100}

	env := &model.ZoningEnvelope{RearYard: 30}
	if got := footprint(lot, env); got != 3500 {
		t.Errorf("footprint = %v, want 50 x 70 = 3500", got)
	}

	env = &model.ZoningEnvelope{RearYard: 30, SideYardsRequired: true, SideYardWidth: 5}
	if got := footprint(lot, env); got != 2800 {
		t.Errorf("footprint with side yards = %v, want 40 x 70 = 2800", got)
	}

	env = &model.ZoningEnvelope{RearYard: 30, LotCoverageMax: 65}
	if got := footprint(lot, env); got != 3250 {
		t.Errorf("coverage-capped footprint = %v, want 3250", got)
	}

	env = &model.ZoningEnvelope{RearYard: 120}
	if got := footprint(lot, env); got != 0 {
		t.Errorf("yards exceeding depth should floor at 0, got %v", got)
	}
}

func TestExemptionType(t *testing.T) {
	if got := exemptionType(zoning.BuildingDetached, 10); got != zoning.ExemptWalkup {
		t.Errorf("detached = %q, want walkup", got)
	}
	if got := exemptionType(zoning.BuildingApartment, 6); got != zoning.ExemptWalkup {
		t.Errorf("6 floors = %q, want walkup", got)
	}
	if got := exemptionType(zoning.BuildingApartment, 12); got != zoning.ExemptElevator {
		t.Errorf("12 floors = %q, want elevator", got)
	}
	if got := exemptionType(zoning.BuildingApartment, 30); got != zoning.ExemptTower {
		t.Errorf("30 floors = %q, want tower", got)
	}
}

func TestFormatSF(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := formatSF(tc.in); got != tc.want {
			t.Errorf("formatSF(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
