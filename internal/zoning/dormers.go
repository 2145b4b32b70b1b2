package zoning

import "math"

// MaxDormerWidthPct caps the dormer at 60% of the street wall width,
// ZR 23-621.
const MaxDormerWidthPct = 0.60

// Contextual districts where the dormer provision applies.
var dormerEligibleDistricts = map[string]bool{
	"R5A": true, "R5B": true, "R5D": true,
	"R6A": true, "R6B": true,
	"R7A": true, "R7B": true, "R7D": true, "R7X": true,
	"R8A": true, "R8B": true, "R8X": true,
	"R9A": true, "R9X": true, "R9D": true,
	"R10A": true, "R10X": true,
}

// DormerRules describes the upper-floor retention available from the
// dormer provision.
type DormerRules struct {
	Eligible             bool    `json:"eligible"`
	MaxWidthPct          float64 `json:"max_width_pct"`
	UpperFloorAreaFactor float64 `json:"upper_floor_area_factor"`
}

// GetDormerRules reports whether a district allows dormers above the
// maximum base height. With a dormer, 60% of the frontage rises
// straight up and only 40% sets back, retaining roughly 92% of the
// base plate on upper floors.
func GetDormerRules(district string) DormerRules {
	if !dormerEligibleDistricts[NormalizeDistrict(district)] {
		return DormerRules{UpperFloorAreaFactor: 1.0}
	}
	return DormerRules{
		Eligible:             true,
		MaxWidthPct:          MaxDormerWidthPct,
		UpperFloorAreaFactor: 0.92,
	}
}

// CalculateUpperFloorArea sizes a floor above the maximum base height.
// Non-eligible districts or zero setback reduce the plate by the full
// setback; eligible districts keep the dormer portion at full depth.
// The result never exceeds the base footprint.
func CalculateUpperFloorArea(baseFootprint, lotFrontage, lotDepth, setback float64, district string) float64 {
	rules := GetDormerRules(district)

	if !rules.Eligible || setback <= 0 {
		effectiveDepth := lotDepth
		if setback > 0 {
			effectiveDepth = math.Max(0, lotDepth-setback)
		}
		return lotFrontage * effectiveDepth
	}

	dormerArea := lotFrontage * MaxDormerWidthPct * lotDepth
	setbackArea := lotFrontage * (1 - MaxDormerWidthPct) * math.Max(0, lotDepth-setback)
	return math.Min(dormerArea+setbackArea, baseFootprint)
}
