package zoning

import (
	"math"
)

// Sliver law, ZR 23-692: lots with street walls under 45 ft in
// non-contextual R6-R10 (and commercial equivalents) have height
// capped by street width.
const SliverLawThresholdFt = 45.0

var sliverLawDistricts = map[string]bool{
	"R6": true, "R7-1": true, "R7-2": true, "R8": true, "R9": true, "R10": true,
}

var sliverLawCommercial = map[string]string{
	"C6-1": "R7-2", "C6-2": "R8", "C6-3": "R9", "C6-4": "R10",
	"C4-3": "R7-1", "C4-4": "R8", "C4-5": "R9", "C4-6": "R10",
}

// SliverLawHeight returns the maximum height under the sliver law, or
// 0 when it does not apply. Interior and through lots cap at the
// lesser of street width and 100 ft; corner lots fronting only narrow
// streets cap at the narrowest street width.
func SliverLawHeight(district string, lotWidth, streetWidthFt float64, lotType string) float64 {
	if lotWidth >= SliverLawThresholdFt {
		return 0
	}
	d := NormalizeDistrict(district)
	if !sliverLawDistricts[d] {
		if _, ok := sliverLawCommercial[d]; !ok {
			return 0
		}
	}

	if streetWidthFt <= 0 {
		streetWidthFt = 60
	}

	if lotType == "corner" {
		if streetWidthFt >= 75 {
			return math.Min(streetWidthFt, 100)
		}
		return streetWidthFt
	}
	return math.Min(streetWidthFt, 100)
}

type streetWallRule struct {
	MinBasePct      float64
	MaxRecessPct    float64
	SetbackDistance float64
}

// Quality Housing street wall requirements, ZR 23-66 / 35-65.
var qhStreetWall = map[string]struct{ Narrow, Wide streetWallRule }{
	"R6A":  {streetWallRule{60, 30, 0}, streetWallRule{70, 30, 0}},
	"R6B":  {streetWallRule{50, 30, 0}, streetWallRule{60, 30, 0}},
	"R7A":  {streetWallRule{60, 30, 0}, streetWallRule{70, 30, 0}},
	"R7B":  {streetWallRule{50, 30, 0}, streetWallRule{60, 30, 0}},
	"R7D":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R7X":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R8A":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R8B":  {streetWallRule{60, 30, 0}, streetWallRule{60, 30, 0}},
	"R8X":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R9A":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R9X":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R9D":  {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R10A": {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
	"R10X": {streetWallRule{70, 30, 0}, streetWallRule{70, 30, 0}},
}

// StreetWallRules is the Quality Housing street wall requirement.
type StreetWallRules struct {
	Applies         bool    `json:"applies"`
	MinBasePct      float64 `json:"min_base_pct,omitempty"`
	MaxRecessPct    float64 `json:"max_recess_pct,omitempty"`
	SetbackDistance float64 `json:"setback_distance"`
}

// GetStreetWallRules returns the street wall continuity requirement
// for a contextual district; other districts report Applies false.
func GetStreetWallRules(district, streetWidth string) StreetWallRules {
	pair, ok := qhStreetWall[NormalizeDistrict(district)]
	if !ok {
		return StreetWallRules{}
	}
	rule := pair.Narrow
	if streetWidth == "wide" {
		rule = pair.Wide
	}
	return StreetWallRules{
		Applies:         true,
		MinBasePct:      rule.MinBasePct,
		MaxRecessPct:    rule.MaxRecessPct,
		SetbackDistance: rule.SetbackDistance,
	}
}

// MinFloorHeight returns the minimum floor-to-floor height for a use.
// Quality Housing districts require 9'6" clear on residential floors
// per ZR 28-23.
func MinFloorHeight(district, use string) float64 {
	if isQualityHousingDistrict(district) {
		switch use {
		case "ground_commercial":
			return 13.0
		case "community_facility":
			return 10.0
		default:
			return 9.5
		}
	}
	switch use {
	case "ground_commercial":
		return 12.0
	case "community_facility":
		return 10.0
	default:
		return 9.0
	}
}

// Contextual districts are R5 and above with a letter suffix.
func isQualityHousingDistrict(district string) bool {
	d := NormalizeDistrict(district)
	m := districtCodeRe.FindStringSubmatch(d)
	if m == nil || m[1] != "R" || m[4] == "" {
		return false
	}
	n := 0
	for _, c := range m[2] {
		n = n*10 + int(c-'0')
	}
	return n >= 5
}
