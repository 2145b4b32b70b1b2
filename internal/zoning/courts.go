package zoning

import (
	"fmt"
	"math"
	"strings"
)

// MaxWingDepthFt is the maximum distance from a legally required
// window to the exterior wall before a court is needed for light and
// air (Multiple Dwelling Law practical rule).
const MaxWingDepthFt = 30.0

// CourtRequirements captures the light-court deduction for a floor
// plate, ZR 23-84 through 23-86.
type CourtRequirements struct {
	NeedsInnerCourt    bool     `json:"needs_inner_court"`
	InnerCourtMinArea  float64  `json:"inner_court_min_area"`
	InnerCourtMinDim   float64  `json:"inner_court_min_dim"`
	MinWindowDistance  float64  `json:"min_window_distance"`
	CourtAreaDeduction float64  `json:"court_area_deduction"`
	EffectiveFootprint float64  `json:"effective_footprint"`
	Notes              []string `json:"notes,omitempty"`
}

// CourtInput describes the building configuration under test.
type CourtInput struct {
	LotDepth       float64
	LotWidth       float64
	LotType        string
	BuildingHeight float64
	Footprint      float64
	District       string
	RearYard       float64
	FrontYard      float64
	SideYards      float64 // both sides combined
}

// CalculateCourtRequirements determines whether a light court is
// needed and how much plate area it consumes. Buildings at or below
// 75 ft need an 800 SF / 20 ft court; taller buildings need 1200 SF /
// 30 ft. Corner lots get 10 ft of extra tolerance from the third light
// source; through lots split into two wings around the 60 ft mid-block
// opening.
func CalculateCourtRequirements(in CourtInput) CourtRequirements {
	result := CourtRequirements{MinWindowDistance: 20}

	var buildableDepth float64
	if in.LotType == "through" {
		if in.LotDepth > 60 {
			buildableDepth = (in.LotDepth - 60.0) / 2.0
		} else {
			buildableDepth = in.LotDepth
		}
		result.Notes = append(result.Notes, fmt.Sprintf(
			"Through lot: 60ft rear yard equivalent mid-block, two wings of %.0fft each", buildableDepth))
	} else {
		buildableDepth = in.LotDepth - in.RearYard - in.FrontYard
	}
	buildableWidth := in.LotWidth - in.SideYards

	if buildableDepth <= 0 || buildableWidth <= 0 {
		result.EffectiveFootprint = in.Footprint
		return result
	}

	if in.BuildingHeight > 75 {
		result.InnerCourtMinArea = 1200
		result.InnerCourtMinDim = 30
	} else {
		result.InnerCourtMinArea = 800
		result.InnerCourtMinDim = 20
	}

	d := NormalizeDistrict(in.District)
	if strings.HasPrefix(d, "R3") || strings.HasPrefix(d, "R4") || strings.HasPrefix(d, "R5") {
		result.MinWindowDistance = 15
	}

	threshold := 2 * MaxWingDepthFt
	if in.LotType == "corner" {
		threshold += 10
	}
	if buildableDepth <= threshold {
		result.EffectiveFootprint = in.Footprint
		result.Notes = append(result.Notes, fmt.Sprintf(
			"No court needed: buildable depth %.0fft <= %.0fft (2 x %.0fft wing depth)",
			buildableDepth, 2*MaxWingDepthFt, MaxWingDepthFt))
		return result
	}

	result.NeedsInnerCourt = true

	courtDim := result.InnerCourtMinDim
	excessDepth := buildableDepth - 2*MaxWingDepthFt

	courtDepth := math.Max(excessDepth, courtDim)
	courtWidth := courtDim
	courtArea := courtDepth * courtWidth
	if courtArea < result.InnerCourtMinArea {
		courtWidth = math.Max(courtDim, result.InnerCourtMinArea/courtDepth)
		courtArea = courtDepth * courtWidth
	}

	result.CourtAreaDeduction = math.Round(courtArea)
	result.EffectiveFootprint = math.Max(0, in.Footprint-courtArea)
	result.Notes = append(result.Notes, fmt.Sprintf(
		"Inner court required: buildable depth %.0fft exceeds 2 x %.0fft. Court: %.0fft x %.0fft = %.0f SF",
		buildableDepth, MaxWingDepthFt, courtWidth, courtDepth, courtArea))
	return result
}
