package zoning

import (
	"math"

	"zoning-feasibility/internal/model"
)

// FRESH (Food Retail Expansion to Support Health), ZR 63-02. FAR and
// height bonuses for full-line grocery stores in mapped food desert
// community districts.
const (
	FreshMinStoreSF    = 6000.0
	FreshFARBonus      = 0.5
	FreshHeightBonusFt = 5.0
)

// FRESH-eligible community districts per the DCP/EDC FRESH Zone map,
// keyed as borough*100 + CD number.
var freshEligibleCDs = map[int]bool{
	201: true, 202: true, 203: true, 204: true, 205: true, 206: true,
	207: true, 209: true, 210: true, 211: true, 212: true,
	301: true, 303: true, 304: true, 305: true, 308: true,
	313: true, 316: true, 317: true,
	109: true, 110: true, 111: true, 112: true,
	401: true, 403: true, 412: true, 414: true,
	501: true,
}

// IsFreshEligible reports whether the lot sits in a FRESH zone.
func IsFreshEligible(lot model.LotProfile) bool {
	if lot.CommunityDistrict == 0 {
		return false
	}
	return freshEligibleCDs[lot.CommunityDistrict]
}

// FreshBonus is the FRESH program bonus available to a lot.
type FreshBonus struct {
	FARBonus      float64 `json:"far_bonus"`
	AdditionalZFA float64 `json:"additional_zfa"`
	HeightBonusFt float64 `json:"height_bonus_ft"`
	MinStoreSF    float64 `json:"min_store_sf"`
	EligibleCD    int     `json:"eligible_cd"`
	Description   string  `json:"description"`
}

// GetFreshBonus calculates the FRESH bonus, or nil if the lot is not
// in an eligible community district.
func GetFreshBonus(lot model.LotProfile) *FreshBonus {
	if !IsFreshEligible(lot) {
		return nil
	}
	additionalZFA := math.Round(FreshFARBonus * lot.LotArea)
	return &FreshBonus{
		FARBonus:      FreshFARBonus,
		AdditionalZFA: additionalZFA,
		HeightBonusFt: FreshHeightBonusFt,
		MinStoreSF:    FreshMinStoreSF,
		EligibleCD:    lot.CommunityDistrict,
		Description: "+0.5 FAR bonus for food retail (+" + formatSF(additionalZFA) +
			" ZFA). Requires min " + formatSF(FreshMinStoreSF) + " SF full-line grocery store.",
	}
}
