package program

import (
	"testing"

	"zoning-feasibility/internal/model"
)

func result(t *testing.T, results []model.ProgramResult, key string) model.ProgramResult {
	t.Helper()
	for _, r := range results {
		if r.Key == key {
			return r
		}
	}
	t.Fatalf("no result for program %q", key)
	return model.ProgramResult{}
}

func TestCheckMIH(t *testing.T) {
	lot := model.LotProfile{
		BBL: "3012340056", Borough: 3, LotArea: 10000,
		ZoningDistricts: []string{"R6"},
		IsMIHArea:       true,
	}
	results := NewRegistry().CheckAll(lot)

	mih := result(t, results, "mih")
	if !mih.Applicable {
		t.Fatalf("MIH should apply in a designated area")
	}
	if mih.Effect == nil || mih.Effect.FARBonus != 0.55 {
		t.Errorf("MIH R6 FAR bonus = %+v, want 0.55", mih.Effect)
	}

	// MIH designation supersedes the voluntary program.
	vih := result(t, results, "voluntary_ih")
	if vih.Applicable {
		t.Errorf("voluntary IH should not apply inside an MIH area")
	}
	if !vih.Eligible {
		t.Errorf("voluntary IH should still report district eligibility")
	}
}

func TestCheckADUAndSharedHousing(t *testing.T) {
	lowDensity := model.LotProfile{
		BBL: "4000010001", Borough: 4, LotArea: 5000,
		ZoningDistricts: []string{"R4"},
	}
	results := NewRegistry().CheckAll(lowDensity)
	if adu := result(t, results, "adu"); !adu.Applicable {
		t.Errorf("ADU should apply in R4")
	}
	if sh := result(t, results, "shared_housing"); sh.Applicable {
		t.Errorf("shared housing requires R6+, should not apply in R4")
	}

	highDensity := model.LotProfile{
		BBL: "1000010001", Borough: 1, LotArea: 5000,
		ZoningDistricts: []string{"R7A"},
	}
	results = NewRegistry().CheckAll(highDensity)
	if adu := result(t, results, "adu"); adu.Applicable {
		t.Errorf("ADU should not apply in R7A")
	}
	if sh := result(t, results, "shared_housing"); !sh.Applicable {
		t.Errorf("shared housing should apply in R7A")
	}
}

func TestCheckCommercialOverlay(t *testing.T) {
	lot := model.LotProfile{
		BBL: "3012340056", Borough: 3, LotArea: 10000,
		ZoningDistricts: []string{"R6A"},
		Overlays:        []string{"C1-3", "C2-4"},
	}
	res := result(t, NewRegistry().CheckAll(lot), "commercial_overlay")
	if !res.Applicable {
		t.Fatalf("commercial overlay should apply")
	}
	if res.Effect == nil || res.Effect.FARBonus != 1.0 {
		t.Errorf("overlay FAR bonus = %+v, want 1.0 from C2-4", res.Effect)
	}
}

func TestCheckSpecialDistrictMembership(t *testing.T) {
	lot := model.LotProfile{
		BBL: "1000010001", Borough: 1, LotArea: 20000,
		ZoningDistricts:  []string{"C6-4"},
		SpecialDistricts: []string{"MiD"},
	}
	results := NewRegistry().CheckAll(lot)
	if mid := result(t, results, "sd_mid"); !mid.Applicable {
		t.Errorf("MiD special district should apply")
	}
	if hy := result(t, results, "sd_hy"); hy.Applicable {
		t.Errorf("Hudson Yards should not apply to a MiD lot")
	}
}

func TestCheckCoastalFlood(t *testing.T) {
	lot := model.LotProfile{
		BBL: "4000010001", Borough: 4, LotArea: 5000,
		ZoningDistricts: []string{"R4"},
		FloodZone:       "AE",
		CoastalZone:     true,
	}
	res := result(t, NewRegistry().CheckAll(lot), "coastal_flood")
	if !res.Applicable {
		t.Fatalf("flood requirements should apply in zone AE")
	}

	dry := lot
	dry.FloodZone = ""
	dry.CoastalZone = false
	if res := result(t, NewRegistry().CheckAll(dry), "coastal_flood"); res.Applicable {
		t.Errorf("flood requirements should not apply outside flood zones")
	}
}
