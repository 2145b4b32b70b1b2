package zoning

import (
	"math"
	"strings"
)

// Building type categories, ZR 22-10 through 22-15.
const (
	BuildingDetached     = "detached"
	BuildingSemiDetached = "semi_detached"
	BuildingAttached     = "attached"
	BuildingApartment    = "apartment"
	BuildingTowerOnBase  = "tower_on_base"
	BuildingTower        = "tower"
)

// Explicit district-to-type assignments. Districts not listed fall
// back to prefix rules in BuildingTypeForDistrict.
var buildingTypeDistricts = map[string]string{
	"R1": BuildingDetached, "R1-1": BuildingDetached, "R1-2": BuildingDetached,
	"R1-2A": BuildingDetached, "R2": BuildingDetached, "R2A": BuildingDetached,
	"R2X": BuildingDetached,

	"R3-1": BuildingSemiDetached, "R3-2": BuildingSemiDetached,
	"R3A": BuildingSemiDetached, "R3X": BuildingSemiDetached,
	"R4-1": BuildingSemiDetached, "R4A": BuildingSemiDetached,

	"R4B": BuildingAttached, "R5": BuildingAttached,
	"R5A": BuildingAttached, "R5B": BuildingAttached,

	"R6": BuildingApartment, "R6A": BuildingApartment, "R6B": BuildingApartment,
	"R7-1": BuildingApartment, "R7-2": BuildingApartment, "R7A": BuildingApartment,
	"R7B": BuildingApartment, "R7D": BuildingApartment, "R7X": BuildingApartment,
	"R8": BuildingApartment, "R8A": BuildingApartment, "R8B": BuildingApartment,
	"R8X": BuildingApartment,

	"R9": BuildingTowerOnBase, "R9A": BuildingTowerOnBase, "R9X": BuildingTowerOnBase,
	"R9D": BuildingTowerOnBase, "R10": BuildingTowerOnBase, "R10A": BuildingTowerOnBase,
	"R10X": BuildingTowerOnBase,
	"C6-4": BuildingTowerOnBase, "C6-4A": BuildingTowerOnBase, "C6-4M": BuildingTowerOnBase,
	"C6-4X": BuildingTowerOnBase, "C6-5": BuildingTowerOnBase, "C6-5.5": BuildingTowerOnBase,
	"C6-6": BuildingTowerOnBase, "C6-6.5": BuildingTowerOnBase, "C6-7": BuildingTowerOnBase,
	"C6-9": BuildingTowerOnBase,

	"C5-1": BuildingTower, "C5-2": BuildingTower, "C5-2.5": BuildingTower,
	"C5-3": BuildingTower, "C5-5": BuildingTower, "C5-P": BuildingTower,
}

// Per-district side yard widths for detached and semi-detached types.
var detachedSideYard = map[string]float64{
	"R1": 8, "R1-1": 8, "R1-2": 15, "R1-2A": 10,
	"R2": 5, "R2A": 5, "R2X": 5,
}

var semiDetachedSideYard = map[string]float64{
	"R3-1": 5, "R3-2": 5, "R3A": 5, "R3X": 5,
	"R4-1": 5, "R4A": 5,
}

// Low-density flat lot coverage percentages per district.
var lowDensityLotCoverage = map[string]float64{
	"R1": 35, "R1-1": 35, "R1-2": 25, "R1-2A": 30,
	"R2": 40, "R2A": 40, "R2X": 40,
	"R3-1": 35, "R3-2": 35, "R3A": 35, "R3X": 35,
	"R4-1": 55, "R4A": 55, "R4B": 55,
	"R5": 55, "R5A": 55, "R5B": 55,
	"R6A": 65, "R6B": 65, "R7A": 65, "R7B": 65,
	"R7D": 65, "R7X": 65, "R8A": 70, "R8B": 70, "R8X": 70,
}

// Minimum lot area per dwelling unit, ZR 23-22 through 23-32. R6 and
// above use the dwelling unit factor instead.
var minLotAreaPerDU = map[string]float64{
	"R1": 9500, "R1-1": 5700, "R1-2": 3800, "R1-2A": 5700,
	"R2": 3800, "R2A": 2850, "R2X": 3325,
	"R3-1": 3800, "R3-2": 1700, "R3A": 2375, "R3X": 2375,
	"R4": 970, "R4-1": 970, "R4A": 970, "R4B": 855,
	"R5": 680, "R5A": 605, "R5B": 495, "R5D": 335,
}

var minLotWidth = map[string]float64{
	"R1": 100, "R1-1": 60, "R1-2": 60, "R1-2A": 60,
	"R2": 40, "R2A": 30, "R2X": 35,
	"R3-1": 40, "R3-2": 25, "R3A": 25, "R3X": 25,
	"R4": 25, "R4-1": 25, "R4A": 25, "R4B": 18,
	"R5": 18, "R5A": 18, "R5B": 18, "R5D": 18,
}

// Tower-on-base parameters, ZR 23-65 and 35-65.
var towerBaseHeightMax = map[string]float64{
	"R9": 85, "R9A": 95, "R10": 85, "R10A": 150,
}

var towerBaseLotCoverage = map[string]float64{
	"R9": 100, "R9A": 70, "R10": 100, "R10A": 70,
}

const (
	towerCoverageMaxPct      = 40.0
	towerSetbackFromBaseFt   = 10.0
	minDistanceBetweenTowers = 60.0
	minTowerFloorAreaSF      = 3000.0
)

// BuildingTypeForDistrict classifies a district into its building
// form. Districts not explicitly listed fall back to prefix rules.
func BuildingTypeForDistrict(district string) string {
	d := NormalizeDistrict(district)
	if t, ok := buildingTypeDistricts[d]; ok {
		return t
	}
	switch {
	case strings.HasPrefix(d, "R1"), strings.HasPrefix(d, "R2"):
		return BuildingDetached
	case strings.HasPrefix(d, "R3"):
		return BuildingSemiDetached
	case strings.HasPrefix(d, "R4"), strings.HasPrefix(d, "R5"):
		return BuildingAttached
	case strings.HasPrefix(d, "R9"), strings.HasPrefix(d, "R10"):
		return BuildingTowerOnBase
	case strings.HasPrefix(d, "R6"), strings.HasPrefix(d, "R7"), strings.HasPrefix(d, "R8"):
		return BuildingApartment
	case strings.HasPrefix(d, "C5"):
		return BuildingTower
	case strings.HasPrefix(d, "C6"):
		if strings.ContainsAny(strings.TrimPrefix(d, "C6-"), "45679") {
			return BuildingTowerOnBase
		}
		return BuildingApartment
	}
	return BuildingApartment
}

// BuildingTypeRules is the form envelope for a district.
type BuildingTypeRules struct {
	BuildingType      string  `json:"building_type"`
	RequiredSideYards int     `json:"required_side_yards"`
	MinSideYardFt     float64 `json:"min_side_yard"`
	LotCoverageMaxPct float64 `json:"lot_coverage_max,omitempty"` // 0 = no limit
	MinLotAreaPerDU   float64 `json:"min_lot_area_per_du,omitempty"`
	MinLotWidthFt     float64 `json:"min_lot_width,omitempty"`

	// Tower forms only.
	TowerCoverageMaxPct float64 `json:"tower_coverage_max,omitempty"`
	BaseLotCoveragePct  float64 `json:"base_lot_coverage,omitempty"`
	BaseHeightMaxFt     float64 `json:"base_height_max,omitempty"`
	TowerSetbackFt      float64 `json:"tower_setback,omitempty"`
	MinTowerFloorAreaSF float64 `json:"min_tower_floor_area,omitempty"`
}

// GetBuildingTypeRules resolves the per-district form rules.
func GetBuildingTypeRules(district string) BuildingTypeRules {
	d := NormalizeDistrict(district)
	bt := BuildingTypeForDistrict(d)

	r := BuildingTypeRules{
		BuildingType:    bt,
		MinLotAreaPerDU: minLotAreaPerDU[d],
		MinLotWidthFt:   minLotWidth[d],
	}
	if r.MinLotWidthFt == 0 {
		r.MinLotWidthFt = 18
	}
	r.LotCoverageMaxPct = lowDensityLotCoverage[d]

	switch bt {
	case BuildingDetached:
		r.RequiredSideYards = 2
		r.MinSideYardFt = detachedSideYard[d]
		if r.MinSideYardFt == 0 {
			r.MinSideYardFt = 5
		}
	case BuildingSemiDetached:
		r.RequiredSideYards = 1
		r.MinSideYardFt = semiDetachedSideYard[d]
		if r.MinSideYardFt == 0 {
			r.MinSideYardFt = 5
		}
	case BuildingTowerOnBase, BuildingTower:
		r.TowerCoverageMaxPct = towerCoverageMaxPct
		r.BaseLotCoveragePct = towerBaseLotCoverage[d]
		if r.BaseLotCoveragePct == 0 {
			r.BaseLotCoveragePct = 70
		}
		r.BaseHeightMaxFt = towerBaseHeightMax[d]
		if r.BaseHeightMaxFt == 0 {
			r.BaseHeightMaxFt = 85
		}
		r.TowerSetbackFt = towerSetbackFromBaseFt
		r.MinTowerFloorAreaSF = minTowerFloorAreaSF
	}
	return r
}

// TowerFootprint sizes the base and tower floor plates for tower-form
// districts.
type TowerFootprint struct {
	IsTower          bool    `json:"is_tower"`
	BuildingType     string  `json:"building_type,omitempty"`
	BaseFootprintSF  float64 `json:"base_footprint_sf,omitempty"`
	TowerFootprintSF float64 `json:"tower_footprint_sf,omitempty"`
	TowerCoveragePct float64 `json:"tower_coverage_pct,omitempty"`
	BaseHeightMaxFt  float64 `json:"base_height_max,omitempty"`
	TowerSetbackFt   float64 `json:"tower_setback,omitempty"`
	TowerWidthFt     float64 `json:"tower_width,omitempty"`
	TowerDepthFt     float64 `json:"tower_depth,omitempty"`
}

// CalculateTowerFootprint computes tower-on-base plate sizes, assuming
// a roughly square tower constrained by the lot frontage less the
// required setbacks.
func CalculateTowerFootprint(lotArea float64, district string, lotFrontage, lotDepth float64) TowerFootprint {
	rules := GetBuildingTypeRules(district)
	if rules.BuildingType != BuildingTowerOnBase && rules.BuildingType != BuildingTower {
		return TowerFootprint{}
	}
	if lotFrontage <= 0 {
		lotFrontage = 50
	}

	baseFootprint := lotArea * rules.BaseLotCoveragePct / 100
	towerFootprint := lotArea * rules.TowerCoverageMaxPct / 100

	towerSide := math.Sqrt(towerFootprint)
	towerWidth := math.Min(towerSide, lotFrontage-2*rules.TowerSetbackFt)
	var towerDepth float64
	if towerWidth > 0 {
		towerDepth = towerFootprint / towerWidth
	}
	towerActual := towerWidth * towerDepth

	coveragePct := 0.0
	if lotArea > 0 {
		coveragePct = math.Round(towerActual/lotArea*1000) / 10
	}
	return TowerFootprint{
		IsTower:          true,
		BuildingType:     rules.BuildingType,
		BaseFootprintSF:  math.Round(baseFootprint),
		TowerFootprintSF: math.Round(towerActual),
		TowerCoveragePct: coveragePct,
		BaseHeightMaxFt:  rules.BaseHeightMaxFt,
		TowerSetbackFt:   rules.TowerSetbackFt,
		TowerWidthFt:     math.Round(towerWidth*10) / 10,
		TowerDepthFt:     math.Round(towerDepth*10) / 10,
	}
}
