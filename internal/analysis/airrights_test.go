package analysis

import (
	"testing"

	"zoning-feasibility/internal/model"
)

func TestCalculateAirRights(t *testing.T) {
	lots := []model.LotProfile{
		{BBL: "3012340001", LotArea: 5000, Pluto: &model.PlutoData{BldgArea: 12000}},
		{BBL: "3012340002", LotArea: 5000},
	}
	envelope := model.ZoningEnvelope{ResidentialFAR: 4.0, CommercialFAR: 2.0}

	res := CalculateAirRights(lots, []bool{true, false}, envelope, 10000)
	if res.ApplicableFAR != 4.0 {
		t.Errorf("ApplicableFAR = %v, want the higher residential 4.0", res.ApplicableFAR)
	}
	if res.TotalAllowableZFA != 40000 {
		t.Errorf("TotalAllowableZFA = %v, want 40000", res.TotalAllowableZFA)
	}
	if res.KeptBuildingSF != 12000 {
		t.Errorf("KeptBuildingSF = %v, want 12000", res.KeptBuildingSF)
	}
	if res.DevelopableZFA != 28000 {
		t.Errorf("DevelopableZFA = %v, want 28000", res.DevelopableZFA)
	}
	if res.DevelopmentLotArea != 5000 {
		t.Errorf("DevelopmentLotArea = %v, want the non-kept lot's 5000", res.DevelopmentLotArea)
	}
	if len(res.Lots) != 2 {
		t.Fatalf("len(Lots) = %d, want 2", len(res.Lots))
	}
	kept := res.Lots[0]
	if !kept.Kept || kept.UnusedZFA != 8000 {
		t.Errorf("kept lot detail = %+v, want Kept with 8000 unused ZFA", kept)
	}
	if res.Lots[1].OwnAllowableZFA != 20000 {
		t.Errorf("own allowable ZFA = %v, want 20000", res.Lots[1].OwnAllowableZFA)
	}
}

func TestCalculateAirRightsOverbuiltClampsToZero(t *testing.T) {
	lots := []model.LotProfile{
		{BBL: "1000010001", LotArea: 2000, Pluto: &model.PlutoData{BldgArea: 50000}},
		{BBL: "1000010002", LotArea: 2000},
	}
	envelope := model.ZoningEnvelope{ResidentialFAR: 2.0}
	res := CalculateAirRights(lots, []bool{true, false}, envelope, 4000)
	if res.DevelopableZFA != 0 {
		t.Errorf("DevelopableZFA = %v, want 0 when kept building exceeds allowable", res.DevelopableZFA)
	}
}

func TestAdjustScenariosForAirRights(t *testing.T) {
	scenarios := []model.DevelopmentScenario{
		{
			Name:            "over",
			ZoningFloorArea: 40000,
			TotalGrossSF:    44000,
			TotalNetSF:      37400,
			ResidentialSF:   40000,
			TotalUnits:      50,
		},
		{
			Name:            "within",
			ZoningFloorArea: 10000,
			TotalGrossSF:    11000,
			TotalUnits:      12,
		},
	}
	air := model.AirRightsResult{DevelopableZFA: 20000, MergedLotArea: 10000}

	out := AdjustScenariosForAirRights(scenarios, air)
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	over := out[0]
	if over.ZoningFloorArea != 20000 {
		t.Errorf("capped ZFA = %v, want 20000", over.ZoningFloorArea)
	}
	if over.TotalGrossSF != 22000 {
		t.Errorf("scaled gross SF = %v, want 22000", over.TotalGrossSF)
	}
	if over.TotalUnits != 25 {
		t.Errorf("scaled units = %d, want 25", over.TotalUnits)
	}
	if over.FARUsed != 2.0 {
		t.Errorf("recomputed FAR = %v, want 2.0", over.FARUsed)
	}

	if out[1].ZoningFloorArea != 10000 || out[1].TotalUnits != 12 {
		t.Errorf("scenario within the cap should pass through unchanged: %+v", out[1])
	}

	// Input slice untouched.
	if scenarios[0].ZoningFloorArea != 40000 {
		t.Errorf("input slice was mutated: %+v", scenarios[0])
	}
}

func TestAdjustScenariosScalesProportionally(t *testing.T) {
	scenarios := []model.DevelopmentScenario{
		{
			Name:            "Max Residential",
			ZoningFloorArea: 25000,
			TotalGrossSF:    27500,
			ResidentialSF:   25000,
			TotalUnits:      50,
		},
	}
	air := model.AirRightsResult{DevelopableZFA: 20000, MergedLotArea: 10000}

	out := AdjustScenariosForAirRights(scenarios, air)
	// 20000/25000 = 0.8 applied across the board.
	if out[0].ZoningFloorArea != 20000 {
		t.Errorf("ZFA = %v, want 20000", out[0].ZoningFloorArea)
	}
	if out[0].TotalGrossSF != 22000 {
		t.Errorf("gross SF = %v, want 22000", out[0].TotalGrossSF)
	}
	if out[0].ResidentialSF != 20000 {
		t.Errorf("residential SF = %v, want 20000", out[0].ResidentialSF)
	}
	if out[0].TotalUnits != 40 {
		t.Errorf("units = %d, want 40", out[0].TotalUnits)
	}
}

func TestAdjustScenariosUnitFloor(t *testing.T) {
	scenarios := []model.DevelopmentScenario{
		{Name: "tiny", ZoningFloorArea: 100000, TotalGrossSF: 100000, TotalUnits: 2},
	}
	air := model.AirRightsResult{DevelopableZFA: 1000, MergedLotArea: 10000}
	out := AdjustScenariosForAirRights(scenarios, air)
	if out[0].TotalUnits != 1 {
		t.Errorf("scaled unit count = %d, want floor of 1", out[0].TotalUnits)
	}
}

func TestAdjustScenariosNoDevelopableZFA(t *testing.T) {
	scenarios := []model.DevelopmentScenario{{Name: "a", ZoningFloorArea: 5000}}
	out := AdjustScenariosForAirRights(scenarios, model.AirRightsResult{})
	if out[0].ZoningFloorArea != 5000 {
		t.Errorf("zero developable ZFA should leave scenarios unchanged")
	}
}
