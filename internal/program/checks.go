package program

import (
	"fmt"
	"regexp"
	"strings"

	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

var rDistrictRe = regexp.MustCompile(`^R(\d+)`)

func registerAll(r *Registry) {
	r.Register(Definition{
		Key: "mih", Name: "Mandatory Inclusionary Housing (MIH)",
		Category:    model.CategoryAffordable,
		Description: "Mandatory affordable housing with FAR bonus in designated areas",
		Citation:    "ZR 23-154",
		Check:       checkMIH,
	})
	r.Register(Definition{
		Key: "uap", Name: "Universal Affordability Preference (UAP)",
		Category:    model.CategoryAffordable,
		Description: "~20% FAR bonus citywide for affordable housing (City of Yes)",
		Citation:    "ZR 23-154 (City of Yes)",
		Check:       checkUAP,
	})
	r.Register(Definition{
		Key: "voluntary_ih", Name: "Voluntary Inclusionary Housing (R10+)",
		Category:    model.CategoryAffordable,
		Description: "Legacy IH bonus for R10+ districts (mostly superseded by UAP)",
		Citation:    "ZR 23-90",
		Check:       checkVoluntaryIH,
	})
	r.Register(Definition{
		Key: "fresh", Name: "FRESH Food Store Program",
		Category:    model.CategoryBonus,
		Description: "FAR bonus for grocery stores in food desert areas",
		Citation:    "ZR 63-02",
		Check:       checkFresh,
	})

	for _, code := range specialDistrictCodes {
		code := code
		r.Register(Definition{
			Key:         "sd_" + strings.ToLower(code),
			Name:        "Special District: " + code,
			Category:    model.CategorySpecialDistrict,
			Description: fmt.Sprintf("Special %s district overlay", code),
			Citation:    fmt.Sprintf("NYC ZR (%s)", code),
			Check: func(lot model.LotProfile) (model.ProgramResult, error) {
				return checkSpecialDistrict(lot, code)
			},
		})
	}

	r.Register(Definition{
		Key: "landmark_tdr", Name: "Landmark Transfer of Development Rights",
		Category:    model.CategoryTDR,
		Description: "TDR from designated landmarks (City of Yes: chair cert, non-adjacent OK)",
		Citation:    "ZR 74-79",
		Check:       checkLandmarkTDR,
	})
	r.Register(Definition{
		Key: "east_midtown_tdr", Name: "East Midtown TDR Bank",
		Category:    model.CategoryTDR,
		Description: "Landmark preservation TDR bank in East Midtown",
		Citation:    "ZR 81-64",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return checkDistrictTDR(lot, "EM", "east_midtown_tdr",
				"East Midtown TDR Bank", "ZR 81-64",
				"Site in East Midtown TDR subdistrict", "Site not in East Midtown subdistrict")
		},
	})
	r.Register(Definition{
		Key: "west_chelsea_tdr", Name: "West Chelsea / High Line TDR",
		Category:    model.CategoryTDR,
		Description: "High Line corridor TDR for West Chelsea",
		Citation:    "ZR 98-04",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return checkDistrictTDR(lot, "WCh", "west_chelsea_tdr",
				"West Chelsea / High Line TDR", "ZR 98-04",
				"Site in West Chelsea High Line TDR area", "Site not in West Chelsea district")
		},
	})
	r.Register(Definition{
		Key: "hudson_yards_tdr", Name: "Hudson Yards Development Rights",
		Category:    model.CategoryTDR,
		Description: "Eastern Rail Yard development rights in Hudson Yards",
		Citation:    "ZR 93-32",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return checkDistrictTDR(lot, "HY", "hudson_yards_tdr",
				"Hudson Yards Development Rights", "ZR 93-32",
				"Site in Hudson Yards TDR district", "Site not in Hudson Yards district")
		},
	})

	r.Register(Definition{
		Key: "lsrd", Name: "Large-Scale Residential Development (LSRD)",
		Category:    model.CategoryLargeScale,
		Description: "Bulk modification for sites >= 1.5 acres in R3-R10",
		Citation:    "ZR 78-00",
		Check:       checkLSRD,
	})
	r.Register(Definition{
		Key: "lsgd", Name: "Large-Scale General Development (LSGD)",
		Category:    model.CategoryLargeScale,
		Description: "Bulk modification for mixed-use sites >= 1.5 acres",
		Citation:    "ZR 74-74",
		Check:       checkLSGD,
	})
	r.Register(Definition{
		Key: "office_conversion", Name: "Office-to-Residential Conversion (City of Yes)",
		Category:    model.CategoryUseFlexibility,
		Description: "Convert pre-1991 offices to residential in eligible districts",
		Citation:    "ZR 15-00 (City of Yes)",
		Check:       checkOfficeConversion,
	})
	r.Register(Definition{
		Key: "ibz", Name: "Industrial Business Zone (IBZ)",
		Category:    model.CategoryUseFlexibility,
		Description: "Use restrictions in mapped industrial zones",
		Citation:    "NYC Executive Order (2006)",
		Check:       checkIBZ,
	})
	r.Register(Definition{
		Key: "iia", Name: "Industrial Incentive Area (IIA)",
		Category:    model.CategoryUseFlexibility,
		Description: "Tax incentives for industrial development in IBZ areas",
		Citation:    "NYC IIA Designation (2022)",
		Check:       checkIIA,
	})
	r.Register(Definition{
		Key: "adu", Name: "Accessory Dwelling Unit (ADU)",
		Category:    model.CategoryUseFlexibility,
		Description: "As-of-right ADU in R1-R5 districts (City of Yes)",
		Citation:    "ZR 12-10 (City of Yes)",
		Check:       checkADU,
	})
	r.Register(Definition{
		Key: "shared_housing", Name: "Shared Housing / SRO (City of Yes)",
		Category:    model.CategoryUseFlexibility,
		Description: "Legalized shared housing in R6+ districts",
		Citation:    "ZR 12-10 (City of Yes)",
		Check:       checkSharedHousing,
	})
	r.Register(Definition{
		Key: "quality_housing", Name: "Quality Housing Program",
		Category:    model.CategoryBulk,
		Description: "Height/setback rules for contextual districts",
		Citation:    "ZR 23-15",
		Check:       checkQualityHousing,
	})
	r.Register(Definition{
		Key: "transit_parking_waiver", Name: "Transit Zone Parking Waiver",
		Category:    model.CategoryBulk,
		Description: "Reduced or eliminated parking in transit zones (City of Yes)",
		Citation:    "ZR 25-00 (City of Yes)",
		Check:       checkTransitParking,
	})
	r.Register(Definition{
		Key: "commercial_overlay", Name: "Commercial Overlay",
		Category:    model.CategoryBulk,
		Description: "Ground-floor commercial FAR from C1-C8 overlays",
		Citation:    "ZR 32-00",
		Check:       checkCommercialOverlay,
	})
	r.Register(Definition{
		Key: "cf_far", Name: "Community Facility FAR Allowance",
		Category:    model.CategoryBulk,
		Description: "Higher FAR for community facility uses (schools, hospitals, etc.)",
		Citation:    "ZR 24-11",
		Check:       checkCommunityFacilityFAR,
	})
	r.Register(Definition{
		Key: "coastal_flood", Name: "Coastal Flood Resilience Requirements",
		Category:    model.CategoryResilience,
		Description: "Flood and coastal resilience requirements",
		Citation:    "ZR Appendix A",
		Check:       checkCoastalFlood,
	})
}

var specialDistrictCodes = []string{
	"MiD", "HY", "LIC", "DB", "EC", "CL", "WCh", "GC", "TMU",
	"SRD", "BR", "CI", "GI",
	"FW", "WP", "HRW", "BPC", "LM", "EM", "125", "CR", "EC2",
}

func checkMIH(lot model.LotProfile) (model.ProgramResult, error) {
	applicable := lot.IsMIHArea
	res := model.ProgramResult{
		Key: "mih", Name: "Mandatory Inclusionary Housing (MIH)",
		Category:   model.CategoryAffordable,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   "ZR 23-154",
		Rationale:  "Site not in an MIH-designated area",
	}
	if !applicable {
		return res, nil
	}
	bonus := zoning.MIHBonusFAR(lot.PrimaryDistrict())
	res.Rationale = "MIH designated area; affordable units required."
	if bonus > 0 {
		res.Rationale = fmt.Sprintf("MIH area: +%.2f FAR bonus with 25-30%% affordable units required.", bonus)
	}
	res.Effect = &model.ProgramEffect{
		FARBonus:               bonus,
		MandatoryAffordablePct: 0.25,
	}
	return res, nil
}

func checkUAP(lot model.LotProfile) (model.ProgramResult, error) {
	bonus := zoning.UAPBonusFAR(lot.PrimaryDistrict(), lot.IsWideStreet())
	applicable := bonus > 0
	res := model.ProgramResult{
		Key: "uap", Name: "Universal Affordability Preference (UAP)",
		Category:   model.CategoryAffordable,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   "ZR 23-154 (City of Yes)",
		Rationale:  "UAP not available (district below R6 or not residential)",
	}
	if applicable {
		res.Rationale = "UAP available (R6+ district)"
		res.Effect = &model.ProgramEffect{
			FARBonus:               bonus,
			MandatoryAffordablePct: 0.20,
		}
	}
	return res, nil
}

func checkVoluntaryIH(lot model.LotProfile) (model.ProgramResult, error) {
	bonus := zoning.MIHBonusFAR(lot.PrimaryDistrict())
	eligible := bonus > 0
	applicable := eligible && !lot.IsMIHArea
	res := model.ProgramResult{
		Key: "voluntary_ih", Name: "Voluntary Inclusionary Housing (R10+)",
		Category:   model.CategoryAffordable,
		Applicable: applicable,
		Eligible:   eligible,
		Citation:   "ZR 23-90",
		Rationale:  "Not applicable (superseded by UAP or MIH, or district not eligible)",
	}
	if applicable {
		res.Rationale = "Voluntary IH bonus available (high-density district)"
		res.Effect = &model.ProgramEffect{FARBonus: bonus}
	}
	return res, nil
}

func checkFresh(lot model.LotProfile) (model.ProgramResult, error) {
	eligible := zoning.IsFreshEligible(lot)
	res := model.ProgramResult{
		Key: "fresh", Name: "FRESH Food Store Program",
		Category:   model.CategoryBonus,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "ZR 63-02",
		Rationale:  "Site not in a mapped FRESH zone",
	}
	if eligible {
		bonus := zoning.GetFreshBonus(lot)
		res.Rationale = "Site in FRESH-eligible food desert area"
		res.Effect = &model.ProgramEffect{
			FARBonus:      bonus.FARBonus,
			HeightBonusFt: bonus.HeightBonusFt,
		}
	}
	return res, nil
}

func checkSpecialDistrict(lot model.LotProfile, code string) (model.ProgramResult, error) {
	applicable := false
	for _, c := range lot.SpecialDistricts {
		if strings.TrimSpace(c) == code {
			applicable = true
			break
		}
	}
	sd, known := zoning.GetSpecialDistrict(code)
	name := "Special District " + code
	if known {
		name = sd.Name
	}
	res := model.ProgramResult{
		Key:        "sd_" + strings.ToLower(code),
		Name:       name,
		Category:   model.CategorySpecialDistrict,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   fmt.Sprintf("NYC ZR (%s)", code),
		Rationale:  "Site not in " + name,
	}
	if applicable && known {
		var bonusFAR float64
		for _, b := range sd.Bonuses {
			bonusFAR += b.MaxAdditionalFAR
		}
		var affordable float64
		if sd.MandatoryInclusionary {
			affordable = 0.25
		}
		res.Rationale = "Site in " + name
		res.Effect = &model.ProgramEffect{
			FARBonus:               bonusFAR,
			MandatoryAffordablePct: affordable,
		}
	}
	return res, nil
}

func checkLandmarkTDR(lot model.LotProfile) (model.ProgramResult, error) {
	eligible := zoning.IsLandmarkTDREligible(lot)
	res := model.ProgramResult{
		Key: "landmark_tdr", Name: "Landmark Transfer of Development Rights",
		Category:   model.CategoryTDR,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "ZR 74-79",
		Rationale:  "District not eligible for landmark TDR (requires R6+ or commercial)",
	}
	if !eligible {
		return res, nil
	}
	entry := zoning.LookupFAR(lot.PrimaryDistrict())
	baseFAR := entry.Residential.Max()
	if c := entry.Commercial.Max(); c > baseFAR {
		baseFAR = c
	}
	res.Rationale = "District eligible to receive landmark TDR"
	if bonus := zoning.GetLandmarkTDRBonus(lot, baseFAR); bonus != nil {
		res.Effect = &model.ProgramEffect{FARBonus: bonus.FARBonus}
	}
	return res, nil
}

func checkDistrictTDR(lot model.LotProfile, code, tdrType, name, citation, inReason, outReason string) (model.ProgramResult, error) {
	res := model.ProgramResult{
		Key:       tdrType,
		Name:      name,
		Category:  model.CategoryTDR,
		Citation:  citation,
		Rationale: outReason,
	}
	tdr := zoning.CheckSpecialDistrictTDR(lot)
	if tdr == nil || tdr.Type != tdrType {
		return res, nil
	}
	res.Applicable = true
	res.Eligible = true
	res.Rationale = inReason
	res.Effect = &model.ProgramEffect{FARBonus: tdr.FARBonus}
	return res, nil
}

func checkLSRD(lot model.LotProfile) (model.ProgramResult, error) {
	details := zoning.GetLSRDDetails(lot)
	res := model.ProgramResult{
		Key: "lsrd", Name: "Large-Scale Residential Development (LSRD)",
		Category: model.CategoryLargeScale,
		Citation: "ZR 78-00",
		Rationale: fmt.Sprintf("Lot area %.0f SF < 65,340 SF minimum or district not eligible",
			lot.LotArea),
	}
	if details != nil {
		res.Applicable = true
		res.Eligible = true
		res.Rationale = details.Description
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}

func checkLSGD(lot model.LotProfile) (model.ProgramResult, error) {
	details := zoning.GetLSGDDetails(lot)
	res := model.ProgramResult{
		Key: "lsgd", Name: "Large-Scale General Development (LSGD)",
		Category: model.CategoryLargeScale,
		Citation: "ZR 74-74",
		Rationale: fmt.Sprintf("Lot area %.0f SF < 65,340 SF minimum or district not eligible",
			lot.LotArea),
	}
	if details != nil {
		res.Applicable = true
		res.Eligible = true
		res.Rationale = details.Description
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}

func checkOfficeConversion(lot model.LotProfile) (model.ProgramResult, error) {
	year := 0
	if lot.Pluto != nil {
		year = lot.Pluto.YearBuilt
	}
	eligible := zoning.IsOfficeConversionEligible(lot.PrimaryDistrict(), year)
	res := model.ProgramResult{
		Key: "office_conversion", Name: "Office-to-Residential Conversion (City of Yes)",
		Category:   model.CategoryUseFlexibility,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "ZR 15-00 (City of Yes)",
		Rationale:  "District not eligible or building too new (post-1990)",
	}
	if eligible {
		res.Rationale = "Eligible district with pre-1991 building"
		res.Effect = &model.ProgramEffect{
			UseAllowances: []string{"residential_in_commercial_mfg"},
		}
	}
	return res, nil
}

func checkIBZ(lot model.LotProfile) (model.ProgramResult, error) {
	inIBZ := zoning.IsIBZ(lot)
	res := model.ProgramResult{
		Key: "ibz", Name: "Industrial Business Zone (IBZ)",
		Category:   model.CategoryUseFlexibility,
		Applicable: inIBZ,
		Eligible:   inIBZ,
		Citation:   "NYC Executive Order (2006)",
		Rationale:  "Site not in an IBZ (not M-district or not mapped IBZ area)",
	}
	if inIBZ {
		res.Rationale = "Site in Industrial Business Zone"
		res.Effect = &model.ProgramEffect{
			UseRestrictions: []string{"no_residential"},
		}
	}
	return res, nil
}

func checkIIA(lot model.LotProfile) (model.ProgramResult, error) {
	eligible := zoning.IsIIAEligible(lot)
	res := model.ProgramResult{
		Key: "iia", Name: "Industrial Incentive Area (IIA)",
		Category:   model.CategoryUseFlexibility,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "NYC IIA Designation (2022)",
		Rationale:  "Site not in an Industrial Incentive Area",
	}
	if eligible {
		res.Rationale = "Site in IIA with tax incentives"
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}

func checkADU(lot model.LotProfile) (model.ProgramResult, error) {
	eligible := zoning.IsADUEligible(lot.PrimaryDistrict())
	res := model.ProgramResult{
		Key: "adu", Name: "Accessory Dwelling Unit (ADU)",
		Category:   model.CategoryUseFlexibility,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "ZR 12-10 (City of Yes)",
		Rationale:  "ADU not available (requires R1-R5 district)",
	}
	if eligible {
		res.Rationale = "ADU eligible (R1-R5 district)"
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}

func checkSharedHousing(lot model.LotProfile) (model.ProgramResult, error) {
	eligible := false
	if m := rDistrictRe.FindStringSubmatch(lot.PrimaryDistrict()); m != nil {
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		eligible = n >= 6
	}
	res := model.ProgramResult{
		Key: "shared_housing", Name: "Shared Housing / SRO (City of Yes)",
		Category:   model.CategoryUseFlexibility,
		Applicable: eligible,
		Eligible:   eligible,
		Citation:   "ZR 12-10 (City of Yes)",
		Rationale:  "Shared housing not permitted (requires R6+)",
	}
	if eligible {
		res.Rationale = "Shared housing permitted (R6+ district)"
		res.Effect = &model.ProgramEffect{
			UseAllowances: []string{"shared_housing"},
		}
	}
	return res, nil
}

func checkQualityHousing(lot model.LotProfile) (model.ProgramResult, error) {
	h := zoning.GetHeightRules(lot.PrimaryDistrict(), lot.StreetWidth, false, zoning.ProgramAuto)
	res := model.ProgramResult{
		Key: "quality_housing", Name: "Quality Housing Program",
		Category:   model.CategoryBulk,
		Applicable: h.QualityHousing,
		Eligible:   h.QualityHousing,
		Citation:   "ZR 23-15",
		Rationale:  "QH not applicable (height factor or low-density district)",
	}
	if h.QualityHousing {
		res.Rationale = fmt.Sprintf(
			"Quality Housing: base height %.0f-%.0f ft, max %.0f ft",
			h.BaseHeightMin, h.BaseHeightMax, h.MaxBuildingHeight)
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}

func checkTransitParking(lot model.LotProfile) (model.ProgramResult, error) {
	zone := zoning.ParkingZone(lot.Borough, lot.CommunityDistrict)
	zoneNames := map[int]string{
		0: "Manhattan Core (no residential parking required)",
		1: "Inner Transit Zone (no residential parking required)",
		2: "Outer Transit Zone (reduced parking with waivers)",
		3: "Beyond Greater Transit Zone (standard requirements)",
	}
	res := model.ProgramResult{
		Key: "transit_parking_waiver", Name: "Transit Zone Parking Waiver",
		Category:   model.CategoryBulk,
		Applicable: zone <= 1,
		Eligible:   zone <= 2,
		Citation:   "ZR 25-00 (City of Yes)",
		Rationale:  zoneNames[zone],
	}
	if zone <= 2 {
		reduction := 50.0
		if zone <= 1 {
			reduction = 100.0
		}
		res.Effect = &model.ProgramEffect{ParkingReductionPct: reduction}
	}
	return res, nil
}

func checkCommercialOverlay(lot model.LotProfile) (model.ProgramResult, error) {
	bestFAR := 0.0
	bestOverlay := ""
	for _, o := range lot.Overlays {
		if f := zoning.OverlayCommercialFAR(o); f > bestFAR {
			bestFAR = f
			bestOverlay = o
		}
	}
	applicable := bestFAR > 0
	res := model.ProgramResult{
		Key: "commercial_overlay", Name: "Commercial Overlay",
		Category:   model.CategoryBulk,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   "ZR 32-00",
		Rationale:  "No commercial overlay on this lot",
	}
	if applicable {
		res.Rationale = fmt.Sprintf("Overlay %s (%.1f commercial FAR)", bestOverlay, bestFAR)
		res.Effect = &model.ProgramEffect{FARBonus: bestFAR}
	}
	return res, nil
}

func checkCommunityFacilityFAR(lot model.LotProfile) (model.ProgramResult, error) {
	cfFAR := zoning.LookupFAR(lot.PrimaryDistrict()).CommunityFac.Max()
	applicable := cfFAR > 0
	res := model.ProgramResult{
		Key: "cf_far", Name: "Community Facility FAR Allowance",
		Category:   model.CategoryBulk,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   "ZR 24-11",
		Rationale:  "No community facility FAR in this district",
	}
	if applicable {
		res.Rationale = fmt.Sprintf("CF FAR %.2f (%.0f SF) available for schools, houses of worship, hospitals",
			cfFAR, cfFAR*lot.LotArea)
		res.Effect = &model.ProgramEffect{FAROverride: cfFAR}
	}
	return res, nil
}

func checkCoastalFlood(lot model.LotProfile) (model.ProgramResult, error) {
	var parts []string
	if lot.FloodZone != "" {
		parts = append(parts, "FEMA flood zone "+lot.FloodZone)
	}
	if lot.CoastalZone {
		parts = append(parts, "coastal zone")
	}
	applicable := len(parts) > 0
	res := model.ProgramResult{
		Key: "coastal_flood", Name: "Coastal Flood Resilience Requirements",
		Category:   model.CategoryResilience,
		Applicable: applicable,
		Eligible:   applicable,
		Citation:   "ZR Appendix A (Flood Resilience)",
		Rationale:  "Site not in a flood zone or coastal area",
	}
	if applicable {
		res.Rationale = fmt.Sprintf(
			"Site in %s. Freeboard +2 ft above BFE, elevated utilities, wet/dry floodproofing required.",
			strings.Join(parts, ", "))
		res.Effect = &model.ProgramEffect{}
	}
	return res, nil
}
