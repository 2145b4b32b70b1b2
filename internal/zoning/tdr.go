package zoning

import (
	"fmt"
	"math"
	"strings"

	"zoning-feasibility/internal/model"
)

// Landmark TDR, ZR 74-79 as expanded by City of Yes: Chair
// certification instead of ULURP, non-adjacent transfers, capped at
// 20% of the receiving lot's permitted FAR.
const LandmarkTDRMaxIncreasePct = 0.20

// Districts eligible to receive landmark TDR.
var landmarkTDREligible = map[string]bool{
	"R6": true, "R6A": true, "R6B": true,
	"R7-1": true, "R7-2": true, "R7A": true, "R7B": true, "R7D": true, "R7X": true,
	"R8": true, "R8A": true, "R8B": true, "R8X": true,
	"R9": true, "R9A": true, "R9X": true, "R9D": true,
	"R10": true, "R10A": true, "R10X": true, "R11": true, "R12": true,
	"C4-4": true, "C4-4A": true, "C4-5": true, "C4-5A": true, "C4-5D": true, "C4-5X": true,
	"C4-6": true, "C4-6A": true, "C4-7": true,
	"C5-1": true, "C5-2": true, "C5-2.5": true, "C5-3": true, "C5-5": true,
	"C6-1": true, "C6-1A": true, "C6-2": true, "C6-2A": true, "C6-2M": true,
	"C6-3": true, "C6-3A": true, "C6-3D": true, "C6-3X": true,
	"C6-4": true, "C6-4A": true, "C6-4M": true, "C6-4X": true,
	"C6-5": true, "C6-5.5": true, "C6-6": true, "C6-6.5": true, "C6-7": true, "C6-7T": true, "C6-9": true,
	"C1-6": true, "C1-6A": true, "C1-7": true, "C1-7A": true,
	"C1-8": true, "C1-8A": true, "C1-8X": true, "C1-9": true, "C1-9A": true,
	"C2-6": true, "C2-6A": true, "C2-7": true, "C2-7A": true, "C2-7X": true,
	"C2-8": true, "C2-8A": true,
}

// Special district TDR bank parameters.
const (
	eastMidtownBaseFAR        = 15.0
	eastMidtownMaxFARWithTDR  = 27.0
	eastMidtownContributionSF = 61.49 // $/SF of transferred FAR, ZR 81-64

	westChelseaBaseFAR       = 5.0
	westChelseaMaxFARWithTDR = 7.5

	hudsonYardsBaseFAR       = 10.0
	hudsonYardsMaxAdditional = 10.0
)

// LandmarkTDRBonus is the potential FAR gain from receiving landmark
// development rights.
type LandmarkTDRBonus struct {
	FARBonus                 float64 `json:"far_bonus"`
	AdditionalZFA            float64 `json:"additional_zfa"`
	Mechanism                string  `json:"mechanism"`
	AdjacencyRequired        bool    `json:"adjacency_required"`
	PreservationContribution bool    `json:"preservation_contribution_required"`
	SourceZR                 string  `json:"source_zr"`
	Description              string  `json:"description"`
}

// IsLandmarkTDREligible reports whether the lot's primary district can
// receive landmark TDR.
func IsLandmarkTDREligible(lot model.LotProfile) bool {
	return landmarkTDREligible[NormalizeDistrict(lot.PrimaryDistrict())]
}

// GetLandmarkTDRBonus sizes the landmark TDR bonus against the lot's
// base permitted FAR, or nil when the district is ineligible.
func GetLandmarkTDRBonus(lot model.LotProfile, baseFAR float64) *LandmarkTDRBonus {
	if !IsLandmarkTDREligible(lot) {
		return nil
	}
	additional := math.Round(baseFAR*LandmarkTDRMaxIncreasePct*100) / 100
	return &LandmarkTDRBonus{
		FARBonus:                 additional,
		AdditionalZFA:            math.Round(additional * lot.LotArea),
		Mechanism:                "Chair certification (no ULURP)",
		PreservationContribution: true,
		SourceZR:                 "ZR 74-79",
		Description: fmt.Sprintf(
			"+%.2f FAR via landmark TDR (20%% of base %.2f FAR). Chair certification, non-adjacent transfers permitted.",
			additional, baseFAR),
	}
}

// SpecialDistrictTDR describes a special district TDR bank available
// to the lot.
type SpecialDistrictTDR struct {
	Type                    string  `json:"type"`
	Name                    string  `json:"name"`
	BaseFAR                 float64 `json:"base_far"`
	MaxFARWithTDR           float64 `json:"max_far_with_tdr,omitempty"`
	FARBonus                float64 `json:"far_bonus"`
	AdditionalZFA           float64 `json:"additional_zfa"`
	PublicRealmContribution float64 `json:"public_realm_contribution,omitempty"`
	SourceZR                string  `json:"source_zr"`
	Description             string  `json:"description"`
}

// CheckSpecialDistrictTDR returns the TDR bank for the first mapped
// special district that carries one, or nil.
func CheckSpecialDistrictTDR(lot model.LotProfile) *SpecialDistrictTDR {
	for _, code := range lot.SpecialDistricts {
		switch strings.TrimSpace(code) {
		case "EM":
			additional := eastMidtownMaxFARWithTDR - eastMidtownBaseFAR
			return &SpecialDistrictTDR{
				Type:                    "east_midtown_tdr",
				Name:                    "East Midtown TDR Bank",
				BaseFAR:                 eastMidtownBaseFAR,
				MaxFARWithTDR:           eastMidtownMaxFARWithTDR,
				FARBonus:                additional,
				AdditionalZFA:           math.Round(additional * lot.LotArea),
				PublicRealmContribution: math.Round(eastMidtownContributionSF * additional * lot.LotArea),
				SourceZR:                "ZR 81-64",
				Description: "East Midtown landmark preservation TDR. Transfer development " +
					"rights from designated landmarks with public realm improvement contribution.",
			}
		case "WCh":
			additional := westChelseaMaxFARWithTDR - westChelseaBaseFAR
			return &SpecialDistrictTDR{
				Type:          "west_chelsea_tdr",
				Name:          "West Chelsea / High Line TDR",
				BaseFAR:       westChelseaBaseFAR,
				MaxFARWithTDR: westChelseaMaxFARWithTDR,
				FARBonus:      additional,
				AdditionalZFA: math.Round(additional * lot.LotArea),
				SourceZR:      "ZR 98-04",
				Description: "High Line improvement area TDR. Unused development rights " +
					"from donor sites along the High Line corridor.",
			}
		case "HY":
			return &SpecialDistrictTDR{
				Type:          "hudson_yards_tdr",
				Name:          "Hudson Yards Development Rights",
				BaseFAR:       hudsonYardsBaseFAR,
				FARBonus:      hudsonYardsMaxAdditional,
				AdditionalZFA: math.Round(hudsonYardsMaxAdditional * lot.LotArea),
				SourceZR:      "ZR 93-32",
				Description: "Hudson Yards district improvement bonus. Additional FAR " +
					"from Eastern Rail Yard development rights.",
			}
		}
	}
	return nil
}
