package zoning

import "testing"

func TestGetYardRequirementsThroughLot(t *testing.T) {
	cases := []struct {
		depth    float64
		wantEq   float64
	}{
		{100, 0},  // shallow enough for two separate buildings
		{110, 0},
		{150, 40},
		{180, 40},
		{200, 60},
	}
	for _, tc := range cases {
		r := GetYardRequirements("R7A", "through", tc.depth, 100)
		if r.RearYard != 0 {
			t.Errorf("depth %v: through lot rear yard = %v, want 0", tc.depth, r.RearYard)
		}
		if r.RearYardEquivalent != tc.wantEq {
			t.Errorf("depth %v: rear yard equivalent = %v, want %v", tc.depth, r.RearYardEquivalent, tc.wantEq)
		}
	}
}

func TestGetYardRequirementsInterior(t *testing.T) {
	r := GetYardRequirements("R7A", "interior", 100, 50)
	if r.RearYard != 20 {
		t.Errorf("R7A rear yard at depth 100 = %v, want 20", r.RearYard)
	}
	if r.SideYardsRequired {
		t.Errorf("R7A should not require side yards")
	}
	if r.LotCoverageMaxPct != 65 {
		t.Errorf("R7A interior coverage = %v, want 65", r.LotCoverageMaxPct)
	}

	corner := GetYardRequirements("R7A", "corner", 100, 50)
	if corner.LotCoverageMaxPct != 80 {
		t.Errorf("R7A corner coverage = %v, want 80", corner.LotCoverageMaxPct)
	}
}

func TestGetYardRequirementsLowDensity(t *testing.T) {
	r := GetYardRequirements("R3-1", "interior", 100, 40)
	if r.FrontYard != 15 {
		t.Errorf("R3 front yard = %v, want 15", r.FrontYard)
	}
	if !r.SideYardsRequired || r.SideYardEach != 5 {
		t.Errorf("R3-1 side yards = (%v, %v), want required at 5 ft each", r.SideYardsRequired, r.SideYardEach)
	}
	if r.RearYard != 30 {
		t.Errorf("R3 rear yard = %v, want 30", r.RearYard)
	}
}

func TestRearYardClamps(t *testing.T) {
	// 20% of depth, clamped to [20, 30] in R6-R10.
	if r := GetYardRequirements("R8", "interior", 80, 50); r.RearYard != 20 {
		t.Errorf("R8 rear yard at depth 80 = %v, want 20", r.RearYard)
	}
	if r := GetYardRequirements("R8", "interior", 200, 50); r.RearYard != 30 {
		t.Errorf("R8 rear yard at depth 200 = %v, want 30", r.RearYard)
	}
	if r := GetYardRequirements("M1-1", "interior", 100, 50); r.RearYard != 0 {
		t.Errorf("M district rear yard = %v, want 0", r.RearYard)
	}
}
