package data

import (
	"os"
	"path/filepath"
	"testing"

	"zoning-feasibility/internal/model"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lot.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadLotProfile(t *testing.T) {
	path := writeJSON(t, `{
		"bbl": "3012340056",
		"borough": 3,
		"zoning_districts": ["R7A"],
		"lot_area": 10000,
		"street_width_ft": 80
	}`)
	lot, err := LoadLotProfile(path)
	if err != nil {
		t.Fatalf("LoadLotProfile: %v", err)
	}
	if lot.BBL != "3012340056" || lot.LotArea != 10000 {
		t.Errorf("lot = %+v", lot)
	}
	if lot.StreetWidth != model.StreetWide {
		t.Errorf("street width %v ft should classify wide, got %q", lot.StreetWidthFt, lot.StreetWidth)
	}
}

func TestLoadLotProfileBadJSON(t *testing.T) {
	path := writeJSON(t, `{not json`)
	if _, err := LoadLotProfile(path); err == nil {
		t.Fatal("malformed JSON should error")
	}
}

func TestLoadLotProfileMissingFile(t *testing.T) {
	if _, err := LoadLotProfile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestLoadLotProfiles(t *testing.T) {
	path := writeJSON(t, `[
		{"bbl": "3012340001", "borough": 3, "zoning_districts": ["R6"], "lot_area": 5000},
		{"bbl": "3012340002", "borough": 3, "zoning_districts": ["R6"], "lot_area": 5000}
	]`)
	lots, err := LoadLotProfiles(path)
	if err != nil {
		t.Fatalf("LoadLotProfiles: %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("len(lots) = %d, want 2", len(lots))
	}
}

func TestFillFromPluto(t *testing.T) {
	lot := model.LotProfile{
		LotArea: 9000, // explicit value wins over PLUTO
		Pluto: &model.PlutoData{
			BBL:       "3012340056",
			Address:   "1234 ATLANTIC AVENUE",
			ZoneDist1: "R7A",
			Overlay1:  "C2-4",
			LotArea:   10000,
			LotFront:  100,
			LotDepth:  100,
			CD:        308,
		},
	}
	FillFromPluto(&lot)
	if lot.BBL != "3012340056" {
		t.Errorf("BBL not backfilled")
	}
	if lot.Borough != 3 || lot.Block != 1234 || lot.Lot != 56 {
		t.Errorf("BBL split = %d/%d/%d", lot.Borough, lot.Block, lot.Lot)
	}
	if lot.LotArea != 9000 {
		t.Errorf("explicit lot area overwritten: %v", lot.LotArea)
	}
	if lot.LotFrontage != 100 || lot.LotDepth != 100 {
		t.Errorf("dimensions not backfilled: %v x %v", lot.LotFrontage, lot.LotDepth)
	}
	if len(lot.ZoningDistricts) != 1 || lot.ZoningDistricts[0] != "R7A" {
		t.Errorf("districts = %v", lot.ZoningDistricts)
	}
	if lot.CommunityDistrict != 308 {
		t.Errorf("CD = %d", lot.CommunityDistrict)
	}
}

func TestFillFromPlutoNoRecord(t *testing.T) {
	lot := model.LotProfile{BBL: "3012340056"}
	FillFromPluto(&lot)
	if lot.Borough != 0 {
		t.Errorf("no PLUTO record should leave the profile alone")
	}
}
