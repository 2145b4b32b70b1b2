package zoning

import (
	"math"

	"zoning-feasibility/internal/model"
)

// Height program selectors for districts that carry both the Quality
// Housing and Height Factor options.
const (
	ProgramAuto          = "auto"
	ProgramQualityHousing = "qh"
	ProgramHeightFactor  = "hf"
)

type qhHeightRule struct {
	BaseMin      float64
	BaseMax      float64
	MaxHeight    float64
	Setback      float64
	UAPMaxHeight float64 // 0 = no UAP height bonus
}

type qhHeightPair struct {
	Narrow qhHeightRule
	Wide   qhHeightRule
}

// Quality Housing height limits per ZR 23-432 as amended by City of
// Yes. Non-contextual R6-R10 entries are the QH election available as
// the alternative to Height Factor.
var qhHeightRules = map[string]qhHeightPair{
	"R4B": {
		Narrow: qhHeightRule{0, 24, 24, 0, 0},
		Wide:   qhHeightRule{0, 24, 24, 0, 0},
	},
	"R5A": {
		Narrow: qhHeightRule{0, 25, 25, 0, 0},
		Wide:   qhHeightRule{0, 25, 25, 0, 0},
	},
	"R5B": {
		Narrow: qhHeightRule{0, 33, 33, 0, 0},
		Wide:   qhHeightRule{0, 33, 33, 0, 0},
	},
	"R5D": {
		Narrow: qhHeightRule{25, 40, 40, 10, 0},
		Wide:   qhHeightRule{25, 40, 40, 10, 0},
	},
	"R6": {
		Narrow: qhHeightRule{30, 45, 65, 10, 85},
		Wide:   qhHeightRule{40, 65, 75, 10, 95},
	},
	"R6A": {
		Narrow: qhHeightRule{40, 65, 75, 10, 95},
		Wide:   qhHeightRule{40, 65, 75, 10, 95},
	},
	"R6B": {
		Narrow: qhHeightRule{30, 45, 55, 10, 65},
		Wide:   qhHeightRule{30, 45, 55, 10, 65},
	},
	"R6D": {
		Narrow: qhHeightRule{30, 45, 65, 10, 75},
		Wide:   qhHeightRule{30, 45, 65, 10, 75},
	},
	"R7-1": {
		Narrow: qhHeightRule{40, 65, 75, 10, 95},
		Wide:   qhHeightRule{40, 75, 85, 15, 115},
	},
	"R7-2": {
		Narrow: qhHeightRule{40, 65, 75, 10, 95},
		Wide:   qhHeightRule{40, 75, 85, 15, 115},
	},
	"R7A": {
		Narrow: qhHeightRule{40, 65, 75, 10, 95},
		Wide:   qhHeightRule{40, 75, 85, 15, 115},
	},
	"R7B": {
		Narrow: qhHeightRule{40, 60, 75, 10, 85},
		Wide:   qhHeightRule{40, 65, 75, 10, 85},
	},
	"R7D": {
		Narrow: qhHeightRule{60, 85, 105, 10, 125},
		Wide:   qhHeightRule{60, 85, 105, 15, 125},
	},
	"R7X": {
		Narrow: qhHeightRule{60, 85, 105, 10, 135},
		Wide:   qhHeightRule{60, 95, 125, 15, 155},
	},
	"R8": {
		Narrow: qhHeightRule{60, 85, 115, 10, 135},
		Wide:   qhHeightRule{60, 95, 125, 15, 145},
	},
	"R8A": {
		Narrow: qhHeightRule{60, 85, 115, 10, 135},
		Wide:   qhHeightRule{60, 95, 125, 15, 145},
	},
	"R8B": {
		Narrow: qhHeightRule{55, 65, 75, 10, 85},
		Wide:   qhHeightRule{55, 65, 75, 10, 85},
	},
	"R8X": {
		Narrow: qhHeightRule{60, 85, 135, 10, 165},
		Wide:   qhHeightRule{60, 95, 155, 15, 175},
	},
	"R9": {
		Narrow: qhHeightRule{60, 95, 135, 10, 165},
		Wide:   qhHeightRule{60, 105, 145, 15, 175},
	},
	"R9A": {
		Narrow: qhHeightRule{60, 95, 135, 10, 165},
		Wide:   qhHeightRule{60, 105, 145, 15, 175},
	},
	"R9X": {
		Narrow: qhHeightRule{60, 95, 165, 10, 195},
		Wide:   qhHeightRule{105, 125, 175, 15, 205},
	},
	"R9D": {
		Narrow: qhHeightRule{60, 95, 155, 10, 185},
		Wide:   qhHeightRule{60, 125, 175, 15, 205},
	},
	"R10": {
		Narrow: qhHeightRule{60, 125, 185, 10, 215},
		Wide:   qhHeightRule{125, 155, 215, 15, 245},
	},
	"R10A": {
		Narrow: qhHeightRule{60, 125, 185, 10, 215},
		Wide:   qhHeightRule{125, 155, 215, 15, 245},
	},
	"R10X": {
		Narrow: qhHeightRule{60, 125, 185, 10, 215},
		Wide:   qhHeightRule{60, 155, 215, 15, 245},
	},
}

type sepRule struct {
	StartHeight float64
	Slope       float64
}

// Height Factor sky exposure plane, ZR 23-44.
var skyExposurePlane = map[string]struct{ Narrow, Wide sepRule }{
	"R6":   {sepRule{60, 2.7}, sepRule{85, 5.6}},
	"R7-1": {sepRule{60, 2.7}, sepRule{85, 5.6}},
	"R7-2": {sepRule{60, 2.7}, sepRule{85, 5.6}},
	"R8":   {sepRule{60, 2.7}, sepRule{85, 5.6}},
	"R9":   {sepRule{60, 2.7}, sepRule{85, 5.6}},
	"R10":  {sepRule{60, 5.6}, sepRule{85, 5.6}},
}

var lowDensityHeights = map[string]float64{
	"R1": 35, "R1-1": 35, "R1-2": 35, "R1-2A": 35,
	"R2": 35, "R2A": 35, "R2X": 35,
	"R3-1": 35, "R3-2": 35, "R3A": 35, "R3X": 35,
	"R4": 35, "R4-1": 35, "R4A": 35,
	"R5": 40,
}

// FloorHeights are floor-to-floor defaults in feet by use.
type FloorHeights struct {
	GroundCommercial   float64
	GroundResidential  float64
	TypicalResidential float64
	TypicalCommercial  float64
	TypicalCF          float64
}

// GetFloorHeights returns floor-to-floor heights. Quality Housing
// carries stricter minimums per ZR 23-663.
func GetFloorHeights(qualityHousing bool) FloorHeights {
	if qualityHousing {
		return FloorHeights{
			GroundCommercial:   14,
			GroundResidential:  12,
			TypicalResidential: 10.5,
			TypicalCommercial:  14,
			TypicalCF:          12,
		}
	}
	return FloorHeights{
		GroundCommercial:   14,
		GroundResidential:  12,
		TypicalResidential: 10,
		TypicalCommercial:  13,
		TypicalCF:          12,
	}
}

// Permitted obstructions above the height limit, ZR 23-62.
const (
	BulkheadZoneHeightFt   = 25.0
	BulkheadMaxCoveragePct = 20.0
)

// HeightRules is the resolved height envelope for a district.
type HeightRules struct {
	QualityHousing    bool                    `json:"quality_housing"`
	HeightFactor      bool                    `json:"height_factor"`
	BaseHeightMin     float64                 `json:"base_height_min,omitempty"`
	BaseHeightMax     float64                 `json:"base_height_max,omitempty"`
	MaxBuildingHeight float64                 `json:"max_building_height,omitempty"` // 0 = no cap
	SetbackAboveBase  float64                 `json:"setback_above_base"`
	SkyExposure       *model.SkyExposurePlane `json:"sky_exposure_plane,omitempty"`
}

// GetHeightRules resolves the height envelope. program selects between
// the QH and HF options where a district has both (auto prefers QH);
// affordable developments use the UAP height ceiling. Commercial
// districts delegate to their residential equivalent.
func GetHeightRules(district, streetWidth string, affordable bool, program string) HeightRules {
	d := NormalizeDistrict(district)
	wide := streetWidth == model.StreetWide

	_, hasQH := qhHeightRules[d]
	_, hasSEP := skyExposurePlane[d]
	useQH := hasQH && (!hasSEP || program != ProgramHeightFactor)

	if useQH {
		pair := qhHeightRules[d]
		rule := pair.Narrow
		if wide {
			rule = pair.Wide
		}
		maxHt := rule.MaxHeight
		if affordable && rule.UAPMaxHeight > 0 {
			maxHt = rule.UAPMaxHeight
		}
		return HeightRules{
			QualityHousing:    true,
			BaseHeightMin:     rule.BaseMin,
			BaseHeightMax:     rule.BaseMax,
			MaxBuildingHeight: maxHt,
			SetbackAboveBase:  rule.Setback,
		}
	}

	if hasSEP {
		pair := skyExposurePlane[d]
		sep := pair.Narrow
		setback := 10.0
		if wide {
			sep = pair.Wide
			setback = 15.0
		}
		return HeightRules{
			HeightFactor:     true,
			BaseHeightMax:    sep.StartHeight,
			SetbackAboveBase: setback,
			SkyExposure: &model.SkyExposurePlane{
				StartHeightFt: sep.StartHeight,
				Slope:         sep.Slope,
			},
		}
	}

	if h, ok := lowDensityHeights[d]; ok {
		return HeightRules{MaxBuildingHeight: h}
	}

	if d == "R11" || d == "R12" {
		return HeightRules{
			BaseHeightMin:    60,
			BaseHeightMax:    150,
			SetbackAboveBase: 15,
		}
	}

	if equiv, ok := commercialResidentialEquivalents[d]; ok {
		return GetHeightRules(equiv, streetWidth, affordable, program)
	}

	return HeightRules{}
}

// BulkheadAllowance is the permitted obstruction zone above the roof.
type BulkheadAllowance struct {
	MaxHeightAboveRoofFt float64 `json:"max_height_above_roof"`
	MaxBulkheadSF        float64 `json:"max_bulkhead_sf"`
	MaxCoveragePct       float64 `json:"max_coverage_pct"`
}

// GetBulkheadAllowance sizes the elevator/stair/mechanical bulkhead
// zone: up to 25 ft above the roof covering at most 20% of it.
func GetBulkheadAllowance(lotArea, lotCoveragePct float64) BulkheadAllowance {
	roofArea := lotArea * lotCoveragePct / 100
	return BulkheadAllowance{
		MaxHeightAboveRoofFt: BulkheadZoneHeightFt,
		MaxBulkheadSF:        math.Round(roofArea * BulkheadMaxCoveragePct / 100),
		MaxCoveragePct:       BulkheadMaxCoveragePct,
	}
}
