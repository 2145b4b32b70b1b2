package zoning

import (
	"fmt"

	"zoning-feasibility/internal/model"
)

// Large-scale development special permits: LSRD (ZR 78-00) for
// residential sites and LSGD (ZR 74-74) for mixed-use sites, both
// requiring at least 1.5 acres.
const (
	LSRDMinLotAreaSF = 65340.0
	LSGDMinLotAreaSF = 65340.0
)

var lsrdEligibleGroups = map[string]bool{
	"R3": true, "R4": true, "R5": true, "R6": true, "R7": true,
	"R8": true, "R9": true, "R10": true,
}

var lsgdEligibleGroups = map[string]bool{
	"R6": true, "R7": true, "R8": true, "R9": true, "R10": true,
	"C1": true, "C2": true, "C4": true, "C5": true, "C6": true,
}

var lsrdModifications = []string{
	"Modified yard requirements",
	"Modified height and setback regulations",
	"Modified tower coverage rules",
	"Distribution of floor area across site",
	"Planned open space / public amenity requirement",
	"Modified lot coverage maximums",
}

var lsgdModifications = []string{
	"Distribution of bulk across sub-lots",
	"Mix of uses across the development",
	"Modified yard and setback requirements",
	"Modified parking requirements",
	"Phased development approval",
	"Modified lot coverage and open space",
}

// LargeScaleDetails describes an available large-scale special permit.
type LargeScaleDetails struct {
	Name                   string   `json:"name"`
	SourceZR               string   `json:"source_zr"`
	MinLotAreaSF           float64  `json:"min_lot_area_sf"`
	ActualLotAreaSF        float64  `json:"actual_lot_area_sf"`
	AvailableModifications []string `json:"available_modifications"`
	Process                string   `json:"process"`
	Description            string   `json:"description"`
}

// IsLSRDEligible reports whether the lot qualifies for a Large-Scale
// Residential Development special permit.
func IsLSRDEligible(lot model.LotProfile) bool {
	if lot.LotArea < LSRDMinLotAreaSF {
		return false
	}
	return lsrdEligibleGroups[useBaseDistrict(lot.PrimaryDistrict())]
}

// IsLSGDEligible reports whether the lot qualifies for a Large-Scale
// General Development special permit.
func IsLSGDEligible(lot model.LotProfile) bool {
	if lot.LotArea < LSGDMinLotAreaSF {
		return false
	}
	return lsgdEligibleGroups[useBaseDistrict(lot.PrimaryDistrict())]
}

// GetLSRDDetails returns LSRD program details, or nil if ineligible.
func GetLSRDDetails(lot model.LotProfile) *LargeScaleDetails {
	if !IsLSRDEligible(lot) {
		return nil
	}
	return &LargeScaleDetails{
		Name:                   "Large-Scale Residential Development (LSRD)",
		SourceZR:               "ZR 78-00",
		MinLotAreaSF:           LSRDMinLotAreaSF,
		ActualLotAreaSF:        lot.LotArea,
		AvailableModifications: lsrdModifications,
		Process:                "CPC Special Permit (discretionary)",
		Description: fmt.Sprintf(
			"Site qualifies for LSRD (%s SF >= %s SF minimum). CPC special permit allows modification of bulk controls for planned residential development.",
			formatSF(lot.LotArea), formatSF(LSRDMinLotAreaSF)),
	}
}

// GetLSGDDetails returns LSGD program details, or nil if ineligible.
func GetLSGDDetails(lot model.LotProfile) *LargeScaleDetails {
	if !IsLSGDEligible(lot) {
		return nil
	}
	return &LargeScaleDetails{
		Name:                   "Large-Scale General Development (LSGD)",
		SourceZR:               "ZR 74-74",
		MinLotAreaSF:           LSGDMinLotAreaSF,
		ActualLotAreaSF:        lot.LotArea,
		AvailableModifications: lsgdModifications,
		Process:                "CPC Special Permit (discretionary)",
		Description: fmt.Sprintf(
			"Site qualifies for LSGD (%s SF >= %s SF minimum). CPC special permit allows broad modifications for planned mixed-use development.",
			formatSF(lot.LotArea), formatSF(LSGDMinLotAreaSF)),
	}
}
