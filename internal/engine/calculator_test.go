package engine

import (
	"reflect"
	"testing"

	"zoning-feasibility/internal/model"
)

func brooklynR7ALot() model.LotProfile {
	return model.LotProfile{
		BBL: "3012340056", Address: "1234 Atlantic Avenue",
		Borough: 3, Block: 1234, Lot: 56,
		ZoningDistricts: []string{"R7A"},
		Overlays:        []string{"C2-4"},
		LotArea:         10000, LotFrontage: 100, LotDepth: 100,
		LotType:     model.LotInterior,
		StreetWidth: model.StreetWide, StreetWidthFt: 80,
		CommunityDistrict: 308,
	}
}

func TestAnalyze(t *testing.T) {
	calc := NewCalculator()
	result, err := calc.Analyze(brooklynR7ALot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Envelope == nil {
		t.Fatal("no envelope")
	}
	if result.Envelope.ResidentialFAR != 4.0 {
		t.Errorf("R7A residential FAR = %v, want 4.0", result.Envelope.ResidentialFAR)
	}
	if len(result.Scenarios) == 0 {
		t.Fatal("no scenarios generated")
	}
	for _, sc := range result.Scenarios {
		if sc.ZoningFloorArea <= 0 {
			t.Errorf("scenario %q ZFA = %v, want > 0", sc.Name, sc.ZoningFloorArea)
		}
		if want := round2(sc.ZoningFloorArea / 10000); sc.FARUsed != want {
			t.Errorf("scenario %q FARUsed = %v, want %v", sc.Name, sc.FARUsed, want)
		}
	}
	// Scenarios come back ranked 1..n with the top flagged.
	for i, sc := range result.Scenarios {
		if sc.Rank != i+1 {
			t.Errorf("scenario %d Rank = %d, want %d", i, sc.Rank, i+1)
		}
	}
	if !result.Scenarios[0].HighestAndBest {
		t.Errorf("rank 1 should be flagged highest and best")
	}
	if result.Disclaimer == "" {
		t.Errorf("result should carry the disclaimer")
	}
	if len(result.Programs) == 0 {
		t.Errorf("program checks should always run")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	calc := NewCalculator()
	lot := brooklynR7ALot()
	first, err := calc.Analyze(lot)
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := calc.Analyze(lot)
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}
	if !reflect.DeepEqual(first.Scenarios, second.Scenarios) {
		t.Errorf("repeated analysis of the same lot diverged")
	}
	if !reflect.DeepEqual(first.Envelope, second.Envelope) {
		t.Errorf("repeated analysis produced different envelopes")
	}
}

func TestAnalyzeNoDistrict(t *testing.T) {
	_, err := NewCalculator().Analyze(model.LotProfile{LotArea: 5000, Borough: 3})
	if err == nil {
		t.Fatal("lot without districts should fail")
	}
}

func TestAnalyzeR1UnitCap(t *testing.T) {
	lot := model.LotProfile{
		BBL: "5000010001", Borough: 5, Block: 1, Lot: 1,
		ZoningDistricts: []string{"R1"},
		LotArea:         19000, LotFrontage: 100, LotDepth: 190,
		LotType:         model.LotInterior,
	}
	result, err := NewCalculator().Analyze(lot)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, sc := range result.Scenarios {
		if sc.Name != "Max Residential" {
			continue
		}
		// 19,000 SF / 9,500 SF per dwelling unit.
		if sc.TotalUnits < 1 || sc.TotalUnits > 2 {
			t.Errorf("R1 unit count = %d, want at most 2", sc.TotalUnits)
		}
		return
	}
	t.Fatal("no Max Residential scenario for R1")
}

func TestEnvelopeOverlayFillsCommercialFAR(t *testing.T) {
	lot := brooklynR7ALot()
	lot.ZoningDistricts = []string{"R6A"}
	calc := NewCalculator()
	env := calc.Envelope(lot, "R6A")
	if env.CommercialFAR != 1.0 {
		t.Errorf("R6A + C2-4 commercial FAR = %v, want 1.0 from the overlay", env.CommercialFAR)
	}
	if env.MaxCommercialZFA != 10000 {
		t.Errorf("max commercial ZFA = %v, want 10000", env.MaxCommercialZFA)
	}
}

func TestEnvelopeSliverCap(t *testing.T) {
	lot := model.LotProfile{
		BBL: "1000010001", Borough: 1,
		ZoningDistricts: []string{"R8"},
		LotArea:         4000, LotFrontage: 40, LotDepth: 100,
		LotType:     model.LotInterior,
		StreetWidth: model.StreetNarrow, StreetWidthFt: 60,
	}
	env := NewCalculator().Envelope(lot, "R8")
	if env.MaxBuildingHeight != 60 {
		t.Errorf("narrow R8 lot max height = %v, want sliver cap of 60", env.MaxBuildingHeight)
	}
}

func TestEnvelopeMIHBonus(t *testing.T) {
	lot := brooklynR7ALot()
	lot.IsMIHArea = true
	env := NewCalculator().Envelope(lot, "R7A")
	if env.IHBonusFAR != 0.6 {
		t.Errorf("R7A IH bonus FAR = %v, want 0.6", env.IHBonusFAR)
	}
}

func TestLotDims(t *testing.T) {
	f, d := lotDims(model.LotProfile{})
	if f != 50 || d != 100 {
		t.Errorf("default dims = (%v, %v), want (50, 100)", f, d)
	}
	f, d = lotDims(model.LotProfile{LotFrontage: 25, LotDepth: 80})
	if f != 25 || d != 80 {
		t.Errorf("explicit dims = (%v, %v), want (25, 80)", f, d)
	}
}
