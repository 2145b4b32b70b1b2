package analysis

import (
	"errors"
	"strings"
	"testing"

	"zoning-feasibility/internal/model"
)

// stubAnalyzer returns one scenario sized by a flat FAR of 4 on the
// lot area, enough to exercise the delta math.
type stubAnalyzer struct {
	err error
}

func (s stubAnalyzer) Analyze(lot model.LotProfile) (*model.CalculationResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	zfa := lot.LotArea * 4
	return &model.CalculationResult{
		Lot:      &lot,
		Envelope: &model.ZoningEnvelope{ResidentialFAR: 4},
		Scenarios: []model.DevelopmentScenario{
			{
				Name:            "Max Residential",
				ZoningFloorArea: zfa,
				TotalGrossSF:    zfa * 1.1,
				ResidentialSF:   zfa,
				TotalUnits:      int(zfa / 680),
				MaxHeightFt:     85,
			},
		},
	}, nil
}

func twoLots() []model.LotProfile {
	return []model.LotProfile{
		{
			BBL: "3012340001", Borough: 3, Block: 1234, Lot: 1,
			Address:         "100 Atlantic Avenue",
			ZoningDistricts: []string{"R7A"},
			LotArea:         5000, LotFrontage: 50, LotDepth: 100,
			LotType: model.LotInterior,
		},
		{
			BBL: "3012340002", Borough: 3, Block: 1234, Lot: 2,
			Address:         "102 Atlantic Avenue",
			ZoningDistricts: []string{"R7A"},
			LotArea:         5000, LotFrontage: 50, LotDepth: 100,
			LotType: model.LotInterior,
		},
	}
}

func TestAnalyzeAssemblageRequiresTwoLots(t *testing.T) {
	_, err := AnalyzeAssemblage(twoLots()[:1], stubAnalyzer{})
	if err == nil {
		t.Fatalf("single lot should be rejected")
	}
}

func TestAnalyzeAssemblageRejectsThreeBlocks(t *testing.T) {
	lots := twoLots()
	lots = append(lots, model.LotProfile{
		BBL: "3019990001", Borough: 3, Block: 1999, Lot: 1,
		ZoningDistricts: []string{"R7A"}, LotArea: 5000,
	})
	lots[1].Block = 1235
	_, err := AnalyzeAssemblage(lots, stubAnalyzer{})
	if err == nil || !strings.Contains(err.Error(), "2 blocks") {
		t.Fatalf("three blocks should fail contiguity, got %v", err)
	}
}

func TestAnalyzeAssemblageRejectsLotNumberGap(t *testing.T) {
	lots := twoLots()
	lots[1].Lot = 40
	_, err := AnalyzeAssemblage(lots, stubAnalyzer{})
	if err == nil || !strings.Contains(err.Error(), "not adjacent") {
		t.Fatalf("lot gap of 39 should fail contiguity, got %v", err)
	}
}

func TestAnalyzeAssemblage(t *testing.T) {
	study, err := AnalyzeAssemblage(twoLots(), stubAnalyzer{})
	if err != nil {
		t.Fatalf("AnalyzeAssemblage: %v", err)
	}
	if len(study.IndividualAnalyses) != 2 {
		t.Fatalf("len(IndividualAnalyses) = %d, want 2", len(study.IndividualAnalyses))
	}
	if study.MergedLot.LotArea != 10000 {
		t.Errorf("merged lot area = %v, want 10000", study.MergedLot.LotArea)
	}
	if study.ContiguityMethod != "block_adjacency" {
		t.Errorf("contiguity method = %q", study.ContiguityMethod)
	}
	if len(study.Delta.ScenarioDeltas) != 1 {
		t.Fatalf("scenario deltas = %+v, want one", study.Delta.ScenarioDeltas)
	}
	// 40000 ZFA merged vs 20000 + 20000 individually: no ZFA delta,
	// but the merged footprint gains side yard area.
	d := study.Delta.ScenarioDeltas[0]
	if d.ZFADelta != 0 {
		t.Errorf("ZFA delta = %v, want 0 for a flat FAR", d.ZFADelta)
	}
	if study.Delta.FootprintGainSF != 700 {
		t.Errorf("footprint gain = %v, want 700 (2 sides x 5 ft x 70 ft)", study.Delta.FootprintGainSF)
	}
	if study.Delta.StreetFrontage.MergedFt != 100 {
		t.Errorf("merged frontage = %v, want 100", study.Delta.StreetFrontage.MergedFt)
	}
}

func TestAnalyzeAssemblageAnalyzerErrorBecomesWarning(t *testing.T) {
	study, err := AnalyzeAssemblage(twoLots(), stubAnalyzer{err: errors.New("no data")})
	if err != nil {
		t.Fatalf("analyzer failure should degrade to warnings, got %v", err)
	}
	if len(study.Warnings) == 0 {
		t.Errorf("expected warnings when every analysis fails")
	}
}

func TestMergeLots(t *testing.T) {
	lots := twoLots()
	lots[1].ZoningDistricts = []string{"R6"}
	lots[1].Overlays = []string{"C2-4"}
	lots[1].StreetWidthFt = 80

	merged, warnings := MergeLots(lots)
	if merged.LotArea != 10000 || merged.LotFrontage != 100 {
		t.Errorf("merged area/frontage = %v/%v, want 10000/100", merged.LotArea, merged.LotFrontage)
	}
	if merged.Lot != 9999 {
		t.Errorf("merged pseudo lot number = %d, want 9999", merged.Lot)
	}
	if len(merged.ZoningDistricts) != 2 || !merged.SplitZone {
		t.Errorf("split-zone merge = %+v", merged.ZoningDistricts)
	}
	if len(warnings) == 0 || !strings.Contains(warnings[0], "multiple zoning districts") {
		t.Errorf("split zone should warn, got %v", warnings)
	}
	if merged.StreetWidth != model.StreetWide || merged.StreetWidthFt != 80 {
		t.Errorf("widest street should win: %q %v", merged.StreetWidth, merged.StreetWidthFt)
	}
	if len(merged.Overlays) != 1 || merged.Overlays[0] != "C2-4" {
		t.Errorf("overlays = %v", merged.Overlays)
	}
}

func TestMergedLotType(t *testing.T) {
	lots := twoLots()
	if got := mergedLotType(lots); got != model.LotInterior {
		t.Errorf("same-street merge = %q, want interior", got)
	}

	lots[1].Address = "200 Pacific Street"
	if got := mergedLotType(lots); got != model.LotThrough {
		t.Errorf("two streets on one block = %q, want through", got)
	}

	lots[1].LotType = model.LotCorner
	if got := mergedLotType(lots); got != model.LotCorner {
		t.Errorf("any corner lot = %q, want corner", got)
	}
}
