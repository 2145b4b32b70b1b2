package zoning

import "math"

// hfOpenSpace holds the Height Factor open-space parameters per
// non-contextual district, ZR 23-15. FAR in these districts is a
// function of open space ratio (OSR = open space / floor area x 100)
// via FAR = factor / OSR, between the district's floor and ceiling.
type hfOpenSpaceRule struct {
	MinOSR          float64
	MaxFAR          float64
	OpenSpaceFactor float64
	MinFARAtMaxOSR  float64
	MaxOSR          float64
}

var hfOpenSpace = map[string]hfOpenSpaceRule{
	"R6":   {MinOSR: 27.5, MaxFAR: 2.43, OpenSpaceFactor: 66.8, MinFARAtMaxOSR: 0.78, MaxOSR: 85.5},
	"R7-1": {MinOSR: 15.5, MaxFAR: 3.44, OpenSpaceFactor: 53.3, MinFARAtMaxOSR: 0.87, MaxOSR: 61.3},
	"R7-2": {MinOSR: 15.5, MaxFAR: 3.44, OpenSpaceFactor: 53.3, MinFARAtMaxOSR: 0.87, MaxOSR: 61.3},
	"R8":   {MinOSR: 5.9, MaxFAR: 6.02, OpenSpaceFactor: 35.5, MinFARAtMaxOSR: 0.94, MaxOSR: 37.7},
	"R9":   {MinOSR: 1.0, MaxFAR: 7.52, OpenSpaceFactor: 7.5, MinFARAtMaxOSR: 0.99, MaxOSR: 7.6},
	"R10":  {MinOSR: 0, MaxFAR: 10.0, OpenSpaceFactor: 0, MinFARAtMaxOSR: 10.0, MaxOSR: 0},
}

// HeightFactorFAR is the result of the open-space ratio calculation.
type HeightFactorFAR struct {
	IsHeightFactor   bool    `json:"is_height_factor"`
	MaxFAR           float64 `json:"max_far,omitempty"`
	MinOSR           float64 `json:"min_osr,omitempty"`
	MinOpenSpaceSF   float64 `json:"min_open_space_sf"`
	FARAtProposedOSR float64 `json:"far_at_proposed_osr,omitempty"`
	OpenSpaceFactor  float64 `json:"open_space_factor,omitempty"`
}

// CalculateHFFar computes the Height Factor FAR envelope. Only
// non-contextual R6-R10 (including -1/-2 subs) are Height Factor;
// other districts report IsHeightFactor false. Providing more open
// space than the minimum trades floor area for height via the
// district's open space factor.
func CalculateHFFar(district string, lotArea, proposedOpenSpace float64) HeightFactorFAR {
	rules, ok := hfOpenSpace[NormalizeDistrict(district)]
	if !ok {
		return HeightFactorFAR{}
	}

	maxFloorArea := rules.MaxFAR * lotArea
	minOpenSpace := rules.MinOSR / 100 * maxFloorArea

	farAtProposed := rules.MaxFAR
	if proposedOpenSpace > 0 && rules.OpenSpaceFactor > 0 && lotArea > 0 && maxFloorArea > 0 {
		proposedOSR := proposedOpenSpace / maxFloorArea * 100
		if proposedOSR > rules.MinOSR {
			farAtProposed = rules.OpenSpaceFactor / proposedOSR
			farAtProposed = math.Max(farAtProposed, rules.MinFARAtMaxOSR)
			farAtProposed = math.Min(farAtProposed, rules.MaxFAR)
		}
	}

	return HeightFactorFAR{
		IsHeightFactor:   true,
		MaxFAR:           rules.MaxFAR,
		MinOSR:           rules.MinOSR,
		MinOpenSpaceSF:   math.Round(minOpenSpace),
		FARAtProposedOSR: math.Round(farAtProposed*100) / 100,
		OpenSpaceFactor:  rules.OpenSpaceFactor,
	}
}

// RequiredOpenSpace returns the minimum open space in SF for a floor
// area in a Height Factor district, 0 elsewhere.
func RequiredOpenSpace(district string, totalFloorArea float64) float64 {
	rules, ok := hfOpenSpace[NormalizeDistrict(district)]
	if !ok {
		return 0
	}
	return totalFloorArea * rules.MinOSR / 100
}

// MaxFloorAreaForOpenSpace returns the achievable floor area given the
// open space provided. Non-HF districts return 0; R10 ignores open
// space entirely. Providing more open space than the formula supports
// drops the result to the district's minimum FAR.
func MaxFloorAreaForOpenSpace(district string, lotArea, openSpaceSF float64) float64 {
	rules, ok := hfOpenSpace[NormalizeDistrict(district)]
	if !ok {
		return 0
	}
	if rules.OpenSpaceFactor == 0 {
		return rules.MaxFAR * lotArea
	}

	minOpenSpaceAtMax := rules.MinOSR / 100 * rules.MaxFAR * lotArea
	if openSpaceSF <= minOpenSpaceAtMax {
		return rules.MaxFAR * lotArea
	}
	if openSpaceSF > rules.OpenSpaceFactor*lotArea/100 {
		return rules.MinFARAtMaxOSR * lotArea
	}
	return rules.MaxFAR * lotArea
}

// IsHeightFactorDistrict reports whether the district follows the
// Height Factor regulations.
func IsHeightFactorDistrict(district string) bool {
	_, ok := hfOpenSpace[NormalizeDistrict(district)]
	return ok
}
