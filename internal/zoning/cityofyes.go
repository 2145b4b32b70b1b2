package zoning

import (
	"fmt"
	"math"
	"strings"
)

// City of Yes for Housing Opportunity, adopted December 5 2024
// (ULURP N 240187 ZRY).
const (
	CityOfYesEffectiveDate  = "2024-12-05"
	CityOfYesVestingDeadline = "2025-12-05"
)

// UAPAffordability describes the affordability requirements attached
// to Universal Affordability Preference bonus floor area.
type UAPAffordability struct {
	WeightedAvgAMI             int     `json:"weighted_avg_ami"`
	MaxSingleBandAMI           int     `json:"max_single_band_ami"`
	DeepAffordabilityThresholdSF float64 `json:"deep_affordability_threshold_sf"`
	DeepAffordabilityAMI       int     `json:"deep_affordability_ami"`
	DeepAffordabilityPct       float64 `json:"deep_affordability_pct"`
}

// UAPDistribution describes how affordable units must be distributed
// through the building.
type UAPDistribution struct {
	VerticalPct    float64 `json:"vertical_pct"`
	MaxPerFloorPct float64 `json:"max_per_floor_pct"`
}

var uapAffordability = UAPAffordability{
	WeightedAvgAMI:               60,
	MaxSingleBandAMI:             100,
	DeepAffordabilityThresholdSF: 10000,
	DeepAffordabilityAMI:         40,
	DeepAffordabilityPct:         0.20,
}

var uapDistribution = UAPDistribution{
	VerticalPct:    0.65,
	MaxPerFloorPct: 0.667,
}

// HPD minimum unit sizes for UAP affordable units.
var uapMinUnitSizes = map[string]float64{
	"studio": 400,
	"1br":    575,
	"2br":    775,
	"3br":    950,
}

// ADU provisions, as-of-right in R1-R5.
var aduEligibleDistricts = map[string]bool{
	"R1": true, "R1-1": true, "R1-2": true, "R1-2A": true,
	"R2": true, "R2A": true, "R2X": true,
	"R3-1": true, "R3-2": true, "R3A": true, "R3X": true,
	"R4": true, "R4-1": true, "R4A": true, "R4B": true,
	"R5": true, "R5A": true, "R5B": true, "R5D": true,
}

// ADURules are the accessory dwelling unit construction limits.
type ADURules struct {
	MaxSizeSF              float64 `json:"max_size_sf"`
	MaxUnitsPerLot         int     `json:"max_units_per_lot"`
	ConversionOnly         bool    `json:"conversion_only"`
	DetachedMaxHeightFt    float64 `json:"detached_max_height_ft"`
	RequiresOwnerOccupancy bool    `json:"requires_owner_occupancy"`
}

var aduRules = ADURules{
	MaxSizeSF:           800,
	MaxUnitsPerLot:      1,
	DetachedMaxHeightFt: 16,
}

// Office-to-residential conversion: buildings existing before
// December 31 1990 in the listed districts.
const OfficeConversionAgeCutoffYear = 1990

var officeConversionDistricts = map[string]bool{
	"M1-5": true, "M1-5A": true, "M1-5B": true, "M1-5M": true,
	"M1-6": true, "M1-6D": true, "M1-6M": true,
	"C5-1": true, "C5-2": true, "C5-2.5": true, "C5-3": true, "C5-5": true, "C5-P": true,
	"C6-1": true, "C6-2": true, "C6-3": true, "C6-4": true,
	"C6-5": true, "C6-6": true, "C6-7": true, "C6-9": true,
}

// Landmark TDR under the Chair certification process, ZR 74-79.
type LandmarkTDRRules struct {
	MaxReceivingFARIncreasePct float64 `json:"max_receiving_far_increase_pct"`
	CertificationProcess       string  `json:"certification_process"`
	AdjacencyRequired          bool    `json:"adjacency_required"`
	ContributionRequired       bool    `json:"contribution_required"`
}

var landmarkTDRRules = LandmarkTDRRules{
	MaxReceivingFARIncreasePct: 0.20,
	CertificationProcess:       "chair",
	ContributionRequired:       true,
}

// Shared housing (SRO), legalized in R6 and above.
type SharedHousingRules struct {
	EligibleDistrictsMin string  `json:"eligible_districts_min"`
	MinUnitSizeSF        float64 `json:"min_unit_size_sf"`
	SharedKitchenBath    bool    `json:"shared_kitchen_bath"`
}

var sharedHousingRules = SharedHousingRules{
	EligibleDistrictsMin: "R6",
	MinUnitSizeSF:        150,
	SharedKitchenBath:    true,
}

// UAPScenario is the Universal Affordability Preference bonus math
// for an eligible district.
type UAPScenario struct {
	BaseFAR           float64            `json:"base_far"`
	UAPFAR            float64            `json:"uap_far"`
	BonusFAR          float64            `json:"bonus_far"`
	BaseZFA           float64            `json:"base_zfa"`
	UAPZFA            float64            `json:"uap_zfa"`
	BonusZFA          float64            `json:"bonus_zfa"`
	AffordableFAR     float64            `json:"affordable_far"`
	AffordableZFA     float64            `json:"affordable_zfa"`
	MaxHeight         float64            `json:"max_height"`
	MaxHeightWithUAP  float64            `json:"max_height_with_uap"`
	Affordability     UAPAffordability   `json:"affordability_requirements"`
	Distribution      UAPDistribution    `json:"distribution_requirements"`
	MinUnitSizes      map[string]float64 `json:"min_unit_sizes"`
}

// CalculateUAPScenario computes the UAP bonus for a district, or nil
// when the district carries no UAP FAR. All bonus floor area must be
// affordable at a weighted average of 60% AMI or below.
func CalculateUAPScenario(district string, lotArea float64, streetWidth string) *UAPScenario {
	uapFAR := UAPMaxFAR(district)
	if uapFAR == 0 {
		return nil
	}

	entry := LookupFAR(district)
	if entry.Residential.IsZero() {
		return nil
	}
	wide := streetWidth == "wide"
	baseFAR := entry.Residential.Resolve(wide)

	bonusFAR := uapFAR - baseFAR

	standard := GetHeightRules(district, streetWidth, false, ProgramAuto)
	affordable := GetHeightRules(district, streetWidth, true, ProgramAuto)

	return &UAPScenario{
		BaseFAR:          baseFAR,
		UAPFAR:           uapFAR,
		BonusFAR:         math.Round(bonusFAR*100) / 100,
		BaseZFA:          math.Round(baseFAR * lotArea),
		UAPZFA:           math.Round(uapFAR * lotArea),
		BonusZFA:         math.Round(bonusFAR * lotArea),
		AffordableFAR:    math.Round(bonusFAR*100) / 100,
		AffordableZFA:    math.Round(bonusFAR * lotArea),
		MaxHeight:        standard.MaxBuildingHeight,
		MaxHeightWithUAP: affordable.MaxBuildingHeight,
		Affordability:    uapAffordability,
		Distribution:     uapDistribution,
		MinUnitSizes:     uapMinUnitSizes,
	}
}

// IsADUEligible reports whether a district permits an accessory
// dwelling unit as-of-right.
func IsADUEligible(district string) bool {
	return aduEligibleDistricts[NormalizeDistrict(district)]
}

// GetADURules returns ADU limits for an eligible district, or nil.
func GetADURules(district string) *ADURules {
	if !IsADUEligible(district) {
		return nil
	}
	r := aduRules
	return &r
}

// IsOfficeConversionEligible reports whether a site qualifies for
// office-to-residential conversion. buildingYear 0 means unknown and
// is treated as eligible on age.
func IsOfficeConversionEligible(district string, buildingYear int) bool {
	if !officeConversionDistricts[NormalizeDistrict(district)] {
		return false
	}
	if buildingYear > OfficeConversionAgeCutoffYear {
		return false
	}
	return true
}

// GetLandmarkTDRRules returns the Chair-certification transfer rules.
func GetLandmarkTDRRules() LandmarkTDRRules {
	return landmarkTDRRules
}

// GetSharedHousingRules returns the shared housing (SRO) provisions.
func GetSharedHousingRules() SharedHousingRules {
	return sharedHousingRules
}

// CityOfYesProvision is one applicable provision in the summary.
type CityOfYesProvision struct {
	Name        string       `json:"name"`
	Applicable  bool         `json:"applicable"`
	Impact      string       `json:"impact"`
	ParkingZone *int         `json:"parking_zone,omitempty"`
	UAP         *UAPScenario `json:"details,omitempty"`
	ADU         *ADURules    `json:"adu_details,omitempty"`
}

// CityOfYesSummary aggregates every provision applicable to a site.
type CityOfYesSummary struct {
	Applicable      bool                 `json:"city_of_yes_applicable"`
	EffectiveDate   string               `json:"effective_date"`
	VestingDeadline string               `json:"vesting_deadline"`
	Provisions      []CityOfYesProvision `json:"provisions"`
}

// GetCityOfYesSummary surveys UAP, parking reform, ADU, and office
// conversion applicability for a site.
func GetCityOfYesSummary(district string, lotArea float64, borough, communityDistrict int, streetWidth string) CityOfYesSummary {
	d := NormalizeDistrict(district)

	summary := CityOfYesSummary{
		Applicable:      true,
		EffectiveDate:   CityOfYesEffectiveDate,
		VestingDeadline: CityOfYesVestingDeadline,
		Provisions:      []CityOfYesProvision{},
	}

	if uap := CalculateUAPScenario(d, lotArea, streetWidth); uap != nil {
		summary.Provisions = append(summary.Provisions, CityOfYesProvision{
			Name:       "Universal Affordability Preference (UAP)",
			Applicable: true,
			Impact: fmt.Sprintf("+%.2f FAR (%s SF) for affordable housing at avg <=60%% AMI",
				uap.BonusFAR, formatSF(uap.BonusZFA)),
			UAP: uap,
		})
	}

	zone := ParkingZone(borough, communityDistrict)
	zoneName, ok := parkingZoneNames[zone]
	if !ok {
		zoneName = "Unknown zone"
	}
	z := zone
	summary.Provisions = append(summary.Provisions, CityOfYesProvision{
		Name:        "Parking Reform",
		Applicable:  zone <= ZoneOuterTransit,
		Impact:      zoneName,
		ParkingZone: &z,
	})

	if IsADUEligible(d) {
		adu := aduRules
		summary.Provisions = append(summary.Provisions, CityOfYesProvision{
			Name:       "Accessory Dwelling Unit (ADU)",
			Applicable: true,
			Impact:     fmt.Sprintf("One ADU up to %.0f SF permitted as-of-right", aduRules.MaxSizeSF),
			ADU:        &adu,
		})
	}

	if strings.HasPrefix(d, "C") || strings.HasPrefix(d, "M") {
		eligible := IsOfficeConversionEligible(d, 0)
		impact := "Not eligible in this district"
		if eligible {
			impact = "Buildings existing before Dec 31, 1990 may convert to residential"
		}
		summary.Provisions = append(summary.Provisions, CityOfYesProvision{
			Name:       "Office-to-Residential Conversion",
			Applicable: eligible,
			Impact:     impact,
		})
	}

	return summary
}

// formatSF renders a square-foot quantity with thousands separators.
func formatSF(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	pre := n % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
