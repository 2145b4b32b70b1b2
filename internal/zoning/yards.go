package zoning

import "strings"

// YardRequirements is the resolved open-area envelope around the
// building.
type YardRequirements struct {
	FrontYard          float64 `json:"front_yard"`
	RearYard           float64 `json:"rear_yard"`
	RearYardEquivalent float64 `json:"rear_yard_equivalent"`
	SideYardsRequired  bool    `json:"side_yards_required"`
	SideYardEach       float64 `json:"side_yard_each"`
	SideYardTotal      float64 `json:"side_yard_total"`
	LotCoverageMaxPct  float64 `json:"lot_coverage_max,omitempty"` // 0 = no limit
}

var frontYardByBase = map[string]float64{
	"R1": 20, "R2": 20, "R3": 15, "R4": 10, "R5": 10,
}

var sideYardByDistrict = map[string]float64{
	"R1": 8, "R1-1": 8, "R1-2": 15, "R1-2A": 15,
	"R2": 5, "R2A": 5, "R2X": 5,
	"R3-1": 5, "R3-2": 5, "R3A": 5, "R3X": 5,
	"R4": 5, "R4-1": 5, "R4A": 5, "R4B": 5,
	"R5": 5, "R5A": 5, "R5B": 5, "R5D": 0,
}

type coveragePair struct{ Interior, Corner float64 }

// Quality Housing lot coverage, ZR 23-153. Non-contextual R6-R10 base
// districts use the same percentages as the QH default.
var qhLotCoverage = map[string]coveragePair{
	"R6A": {65, 80}, "R6B": {65, 80},
	"R7A": {65, 80}, "R7B": {65, 80}, "R7D": {65, 80}, "R7X": {65, 80},
	"R8A": {70, 100}, "R8B": {70, 100}, "R8X": {70, 100},
	"R9A": {70, 100}, "R9X": {70, 100}, "R9D": {70, 100},
	"R10A": {70, 100}, "R10X": {70, 100},
}

var baseLotCoverage = map[string]coveragePair{
	"R6": {65, 80}, "R7": {65, 80},
	"R8": {70, 100}, "R9": {70, 100}, "R10": {70, 100},
}

var lowDensityCoverage = map[string]float64{
	"R1": 35, "R2": 40, "R3": 35, "R4": 55, "R5": 55,
}

// GetYardRequirements derives the required yards and coverage limit
// for a district and lot. Through lots swap the plain rear yard for a
// mid-block rear yard equivalent per ZR 23-532/533: depth of 110 ft or
// less needs none (two separate buildings), over 180 ft needs 60 ft,
// everything between needs 40 ft.
func GetYardRequirements(district, lotType string, lotDepth, lotFrontage float64) YardRequirements {
	d := NormalizeDistrict(district)
	base := useBaseDistrict(d)
	attached := BuildingTypeForDistrict(d) == BuildingAttached

	r := YardRequirements{RearYard: rearYard(base, lotDepth)}

	lowDensity := base == "R1" || base == "R2" || base == "R3"
	midDensity := base == "R4" || base == "R5"

	if lowDensity || (midDensity && !attached) {
		r.FrontYard = frontYardByBase[base]
		r.SideYardsRequired = true
		r.SideYardEach = sideYardByDistrict[d]
		r.SideYardTotal = r.SideYardEach * 2
	}

	if lotType == "through" {
		switch {
		case lotDepth <= 110:
			r.RearYardEquivalent = 0
		case lotDepth > 180:
			r.RearYardEquivalent = 60
		default:
			r.RearYardEquivalent = 40
		}
		r.RearYard = 0
	}

	r.LotCoverageMaxPct = lotCoverage(d, base, lotType)
	return r
}

func rearYard(base string, lotDepth float64) float64 {
	switch base {
	case "R1", "R2", "R3", "R4", "R5":
		return 30
	case "R6", "R7", "R8", "R9", "R10":
		v := lotDepth * 0.20
		if v < 20 {
			v = 20
		}
		if v > 30 {
			v = 30
		}
		return v
	}
	if strings.HasPrefix(base, "C") {
		if base == "C1" || base == "C2" || base == "C3" {
			return 20
		}
		v := lotDepth * 0.20
		if v > 20 {
			v = 20
		}
		return v
	}
	if strings.HasPrefix(base, "M") {
		return 0
	}
	return 30
}

func lotCoverage(district, base, lotType string) float64 {
	if p, ok := qhLotCoverage[district]; ok {
		if lotType == "corner" {
			return p.Corner
		}
		return p.Interior
	}
	if v, ok := lowDensityCoverage[base]; ok {
		return v
	}
	if p, ok := baseLotCoverage[base]; ok {
		if lotType == "corner" {
			return p.Corner
		}
		return p.Interior
	}
	return 0
}
