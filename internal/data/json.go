package data

import (
	"encoding/json"
	"fmt"
	"os"

	"zoning-feasibility/internal/model"
)

// LoadLotProfile reads a lot profile from a JSON file. Derived fields
// left empty in the file (dimensions, community district, street width)
// are filled from embedded PLUTO attributes when present.
func LoadLotProfile(path string) (*model.LotProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lot profile: %w", err)
	}
	var lot model.LotProfile
	if err := json.Unmarshal(raw, &lot); err != nil {
		return nil, fmt.Errorf("failed to parse lot profile: %w", err)
	}
	FillFromPluto(&lot)
	return &lot, nil
}

// LoadLotProfiles reads a JSON array of lot profiles, for assemblage
// studies.
func LoadLotProfiles(path string) ([]model.LotProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lot profiles: %w", err)
	}
	var lots []model.LotProfile
	if err := json.Unmarshal(raw, &lots); err != nil {
		return nil, fmt.Errorf("failed to parse lot profiles: %w", err)
	}
	for i := range lots {
		FillFromPluto(&lots[i])
	}
	return lots, nil
}

// FillFromPluto backfills profile fields from the embedded PLUTO record
// without overwriting anything explicitly set.
func FillFromPluto(lot *model.LotProfile) {
	if lot.StreetWidthFt > 0 && lot.StreetWidth == "" {
		lot.StreetWidth = model.ClassifyStreetWidth(lot.StreetWidthFt)
	}
	p := lot.Pluto
	if p == nil {
		return
	}
	if lot.BBL == "" {
		lot.BBL = p.BBL
	}
	if lot.Address == "" {
		lot.Address = p.Address
	}
	if lot.Borough == 0 {
		lot.Borough, lot.Block, lot.Lot = SplitBBL(p.BBL)
	}
	if len(lot.ZoningDistricts) == 0 {
		lot.ZoningDistricts = nonEmpty(p.ZoneDist1, p.ZoneDist2)
	}
	if len(lot.Overlays) == 0 {
		lot.Overlays = nonEmpty(p.Overlay1, p.Overlay2)
	}
	if len(lot.SpecialDistricts) == 0 {
		lot.SpecialDistricts = nonEmpty(p.SpDist1, p.SpDist2)
	}
	if lot.LotArea == 0 {
		lot.LotArea = p.LotArea
	}
	if lot.LotFrontage == 0 {
		lot.LotFrontage = p.LotFront
	}
	if lot.LotDepth == 0 {
		lot.LotDepth = p.LotDepth
	}
	if lot.CommunityDistrict == 0 {
		lot.CommunityDistrict = p.CD
	}
	if lot.LimitedHeight == "" {
		lot.LimitedHeight = p.LtdHeight
	}
}
