package zoning

import (
	"fmt"
	"strings"

	"zoning-feasibility/internal/model"
)

// FAROverride carries the FAR modifications a special district maps
// over the base zoning. Zero fields mean no override.
type FAROverride struct {
	CommercialBase        float64 `json:"commercial_base,omitempty"`
	CommercialMaxBonus    float64 `json:"commercial_max_with_bonus,omitempty"`
	Residential           float64 `json:"residential,omitempty"`
	ResidentialBase       float64 `json:"residential_base,omitempty"`
	ResidentialMaxBonus   float64 `json:"residential_max_with_bonus,omitempty"`
	CommunityFac          float64 `json:"cf,omitempty"`
	PreservationCommercial float64 `json:"preservation_area_commercial,omitempty"`
	PreservationResidential float64 `json:"preservation_area_residential,omitempty"`
}

// SpecialDistrictBonus is one FAR bonus mechanism within a special
// district.
type SpecialDistrictBonus struct {
	MaxAdditionalFAR float64 `json:"max_additional_far"`
}

// SpecialDistrict describes one mapped special purpose district,
// keyed by PLUTO spdist code.
type SpecialDistrict struct {
	Code                 string
	Name                 string
	Description          string
	FAROverride          *FAROverride
	MandatoryImprovements bool
	DaylightEvaluation   bool
	MandatoryInclusionary bool
	TDRAvailable         bool
	Bonuses              map[string]SpecialDistrictBonus
}

// The most impactful of NYC's 60+ special districts. PLUTO spdist1-3
// identify which apply to a lot.
var specialDistricts = map[string]SpecialDistrict{
	"MiD": {
		Code: "MiD",
		Name: "Special Midtown District",
		Description: "Core Midtown Manhattan (31st-61st, 3rd-8th Ave). " +
			"Mandatory daylight evaluation, specific tower setbacks, " +
			"FAR bonuses for public improvements.",
		FAROverride: &FAROverride{
			CommercialBase:     15.0,
			CommercialMaxBonus: 21.6,
			Residential:        10.0,
			CommunityFac:       15.0,
		},
		MandatoryImprovements: true,
		DaylightEvaluation:    true,
		Bonuses: map[string]SpecialDistrictBonus{
			"public_plaza":         {MaxAdditionalFAR: 3.0},
			"subway_improvement":   {MaxAdditionalFAR: 2.0},
			"theater_preservation": {MaxAdditionalFAR: 4.4},
		},
	},
	"HY": {
		Code: "HY",
		Name: "Special Hudson Yards District",
		Description: "Far west side of Midtown. FARs up to 33.0 with " +
			"district improvement bonuses and mandatory IH.",
		FAROverride: &FAROverride{
			CommercialBase:      10.0,
			CommercialMaxBonus:  33.0,
			ResidentialBase:     10.0,
			ResidentialMaxBonus: 26.0,
		},
		MandatoryInclusionary: true,
	},
	"LIC": {
		Code: "LIC",
		Name: "Special Long Island City Mixed Use District",
		Description: "Queens waterfront. Mixed-use development with " +
			"residential and commercial at high densities.",
		FAROverride: &FAROverride{
			Residential:  6.5,
			CommercialBase: 5.0,
			CommunityFac: 6.5,
		},
	},
	"DB": {
		Code:        "DB",
		Name:        "Special Downtown Brooklyn District",
		Description: "Downtown Brooklyn commercial/mixed-use core.",
		FAROverride: &FAROverride{
			CommercialBase:     12.0,
			CommercialMaxBonus: 18.0,
			Residential:        12.0,
		},
		MandatoryInclusionary: true,
	},
	"EC": {
		Code:                  "EC",
		Name:                  "Special East Harlem Corridors District",
		Description:           "East Harlem rezoning with mandatory inclusionary housing.",
		MandatoryInclusionary: true,
	},
	"CL": {
		Code: "CL",
		Name: "Special Clinton District",
		Description: "Hell's Kitchen / Clinton. Preservation area with " +
			"anti-harassment protections.",
		FAROverride: &FAROverride{
			PreservationCommercial:  5.0,
			PreservationResidential: 6.0,
		},
	},
	"WCh": {
		Code:        "WCh",
		Name:        "Special West Chelsea District",
		Description: "High Line corridor with TDR mechanisms.",
		FAROverride: &FAROverride{
			ResidentialBase:     5.0,
			ResidentialMaxBonus: 7.5,
		},
		TDRAvailable: true,
	},
	"GC": {
		Code:        "GC",
		Name:        "Special Garment Center District",
		Description: "Garment district with manufacturing preservation requirements.",
	},
	"TMU": {
		Code:        "TMU",
		Name:        "Special TriBeCa Mixed Use District",
		Description: "TriBeCa loft district allowing residential conversion.",
	},
	"SRD": {
		Code:        "SRD",
		Name:        "Special South Richmond Development District",
		Description: "Planned development area in southern Staten Island.",
	},
	"BR": {
		Code:        "BR",
		Name:        "Special Bay Ridge District",
		Description: "Bay Ridge special zoning with contextual rules.",
	},
	"CI": {
		Code:        "CI",
		Name:        "Special Coney Island District",
		Description: "Amusement and entertainment district.",
	},
	"GI": {
		Code:        "GI",
		Name:        "Special Governors Island District",
		Description: "Special regulations for Governors Island redevelopment.",
	},
	"FW": {
		Code: "FW",
		Name: "Special Flushing Waterfront District",
		Description: "Mixed-use waterfront area in Flushing with mandatory " +
			"affordable housing and height tiers.",
		FAROverride: &FAROverride{
			ResidentialBase:     3.0,
			ResidentialMaxBonus: 6.0,
			CommercialBase:      2.0,
			CommunityFac:        4.8,
		},
		MandatoryInclusionary: true,
	},
	"WP": {
		Code: "WP",
		Name: "Special Willets Point District",
		Description: "Large-scale redevelopment area near Citi Field with " +
			"phased FAR and mandatory affordable housing.",
		FAROverride: &FAROverride{
			ResidentialBase:     3.0,
			ResidentialMaxBonus: 6.9,
			CommercialBase:      2.0,
			CommercialMaxBonus:  5.0,
		},
		MandatoryInclusionary: true,
	},
	"HRW": {
		Code: "HRW",
		Name: "Special Harlem River Waterfront District",
		Description: "Bronx waterfront district requiring waterfront public " +
			"access and height controls.",
		FAROverride: &FAROverride{
			Residential:    5.0,
			CommercialBase: 3.0,
			CommunityFac:   5.0,
		},
	},
	"BPC": {
		Code: "BPC",
		Name: "Battery Park City",
		Description: "Governed by BPC Authority master plan with unique " +
			"FAR, height, and use regulations.",
		FAROverride: &FAROverride{
			Residential:    10.0,
			CommercialBase: 15.0,
			CommunityFac:   10.0,
		},
	},
	"LM": {
		Code: "LM",
		Name: "Special Lower Manhattan District",
		Description: "FAR bonuses and conversion incentives for Lower " +
			"Manhattan south of Chambers Street.",
		FAROverride: &FAROverride{
			CommercialBase:     15.0,
			CommercialMaxBonus: 18.0,
			Residential:        12.0,
		},
		Bonuses: map[string]SpecialDistrictBonus{
			"subway_improvement": {MaxAdditionalFAR: 3.0},
			"public_plaza":       {MaxAdditionalFAR: 2.0},
		},
	},
	"EM": {
		Code: "EM",
		Name: "Special East Midtown Subdistrict",
		Description: "High-density commercial with TDR bank for landmark " +
			"preservation and public realm improvements.",
		FAROverride: &FAROverride{
			CommercialBase:     15.0,
			CommercialMaxBonus: 27.0,
		},
		TDRAvailable: true,
		Bonuses: map[string]SpecialDistrictBonus{
			"landmark_tdr": {MaxAdditionalFAR: 12.0},
			"public_realm": {MaxAdditionalFAR: 3.0},
		},
	},
	"125": {
		Code: "125",
		Name: "Special 125th Street District",
		Description: "Mixed-use corridor along 125th Street with mandatory " +
			"inclusionary housing and height tiers.",
		FAROverride: &FAROverride{
			ResidentialBase:     6.0,
			ResidentialMaxBonus: 9.0,
			CommercialBase:      6.0,
		},
		MandatoryInclusionary: true,
	},
	"CR": {
		Code: "CR",
		Name: "Coastal Flood Resilience Zone",
		Description: "Areas with flood resilience requirements including " +
			"freeboard, wet/dry floodproofing, and elevated utilities.",
	},
	"EC2": {
		Code: "EC2",
		Name: "Enhanced Commercial District",
		Description: "Various mapped areas with enhanced commercial FAR " +
			"and ground-floor retail requirements.",
		FAROverride: &FAROverride{
			CommercialBase: 2.0,
		},
	},
}

// GetSpecialDistrict looks up special district rules by PLUTO spdist
// code. The second return is false for unmapped codes.
func GetSpecialDistrict(code string) (SpecialDistrict, bool) {
	sd, ok := specialDistricts[strings.TrimSpace(code)]
	return sd, ok
}

// ApplySpecialDistrictOverrides raises the base FAR entry where a
// mapped special district overrides it. Residential overrides replace
// an HF/QH dual outright; flat values take the maximum.
func ApplySpecialDistrictOverrides(entry FAREntry, codes []string) FAREntry {
	result := entry

	for _, code := range codes {
		sd, ok := GetSpecialDistrict(code)
		if !ok || sd.FAROverride == nil {
			continue
		}
		o := sd.FAROverride

		if o.CommercialBase > 0 && o.CommercialBase > result.Commercial.Max() {
			result.Commercial = model.FlatFar(o.CommercialBase)
		}
		if o.Residential > 0 {
			if result.Residential.Kind == model.FarDual {
				result.Residential = model.FlatFar(o.Residential)
			} else if o.Residential > result.Residential.Max() {
				result.Residential = model.FlatFar(o.Residential)
			}
		}
		if o.CommunityFac > 0 && o.CommunityFac > result.CommunityFac.Max() {
			result.CommunityFac = model.FlatFar(o.CommunityFac)
		}
	}
	return result
}

// BonusOpportunity is an available special district FAR bonus.
type BonusOpportunity struct {
	Source           string  `json:"source"`
	Type             string  `json:"type"`
	MaxAdditionalFAR float64 `json:"max_additional_far"`
	Description      string  `json:"description"`
}

// GetSpecialDistrictBonuses lists the FAR bonus mechanisms available
// across the mapped special districts.
func GetSpecialDistrictBonuses(codes []string) []BonusOpportunity {
	var bonuses []BonusOpportunity
	for _, code := range codes {
		sd, ok := GetSpecialDistrict(code)
		if !ok {
			continue
		}
		for name, info := range sd.Bonuses {
			bonuses = append(bonuses, BonusOpportunity{
				Source:           sd.Name,
				Type:             titleWords(name),
				MaxAdditionalFAR: info.MaxAdditionalFAR,
				Description:      fmt.Sprintf("Bonus from %s", sd.Name),
			})
		}
	}
	return bonuses
}

func titleWords(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
