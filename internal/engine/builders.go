package engine

import (
	"fmt"
	"math"

	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

func (c *Calculator) buildResidential(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, name, desc string, unitCap int) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.ResidentialFAR <= 0 || fp <= 0 {
		return nil
	}

	maxZFA := env.ResidentialFAR * lotArea
	frontage, depth := lotDims(lot)

	numFloors, totalHeight, floors := buildFloors(maxZFA, fp, env, "residential", district, frontage, depth)
	if numFloors == 0 {
		return nil
	}
	totalGross := grossOf(floors)

	btype := zoning.BuildingTypeForDistrict(district)
	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    exemptionType(btype, numFloors),
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalGross, core)
	netRes := loss.NetRentableArea

	mix := generateUnitMix(netRes, "balanced")
	mix = capUnitMix(mix, unitCap, netRes)

	parking := c.parkingFor(lot, district, mix.TotalUnits, 0)

	return &model.DevelopmentScenario{
		Name:            name,
		Description:     desc,
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

// buildMaxUnits targets the dwelling unit factor ceiling with smaller
// units: the same floor area as Max Residential, but more of them.
func (c *Calculator) buildMaxUnits(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, targetUnits, byArea int) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.ResidentialFAR <= 0 || fp <= 0 {
		return nil
	}
	if byArea > 0 && byArea < targetUnits {
		targetUnits = byArea
	}
	if targetUnits <= 0 {
		return nil
	}

	maxZFA := env.ResidentialFAR * lotArea
	frontage, depth := lotDims(lot)

	numFloors, totalHeight, floors := buildFloors(maxZFA, fp, env, "residential", district, frontage, depth)
	if numFloors == 0 {
		return nil
	}
	totalGross := grossOf(floors)

	btype := zoning.BuildingTypeForDistrict(district)
	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    exemptionType(btype, numFloors),
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalGross, core)
	netRes := loss.NetRentableArea

	mix := generateUnitMix(float64(targetUnits)*480, "maximize_units")

	// Scale and trim the mix to hit the target exactly. Overflow is
	// shed from the largest types first, never below one unit each.
	if mix.TotalUnits != targetUnits {
		if mix.TotalUnits > 0 {
			scale := float64(targetUnits) / float64(mix.TotalUnits)
			for i := range mix.Units {
				n := int(math.Round(float64(mix.Units[i].Count) * scale))
				if n < 1 {
					n = 1
				}
				mix.Units[i].Count = n
			}
		}
		actual := 0
		for _, u := range mix.Units {
			actual += u.Count
		}
		diff := targetUnits - actual
		if diff > 0 && len(mix.Units) > 0 {
			mix.Units[0].Count += diff
		} else if diff < 0 {
			for i := len(mix.Units) - 1; i >= 0 && diff < 0; i-- {
				reduction := mix.Units[i].Count - 1
				if reduction > -diff {
					reduction = -diff
				}
				if reduction > 0 {
					mix.Units[i].Count -= reduction
					diff += reduction
				}
			}
		}
		total := 0
		for _, u := range mix.Units {
			total += u.Count
		}
		mix.TotalUnits = total
		if total > 0 {
			mix.AverageUnitSF = math.Round(netRes / float64(total))
		} else {
			mix.AverageUnitSF = 0
		}
	}
	if mix.TotalUnits <= 0 {
		return nil
	}

	parking := c.parkingFor(lot, district, mix.TotalUnits, 0)

	return &model.DevelopmentScenario{
		Name: "Max Units",
		Description: fmt.Sprintf(
			"Maximize dwelling unit count to %d units (DU factor: ZFA %s / 680 = %.2f, rounded per ZR 23-52). Uses smaller unit sizes.",
			targetUnits, formatSF(maxZFA), maxZFA/zoning.DwellingUnitFactor),
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

// buildPenthouse builds four full floors plus a penthouse on a third
// of the roof. The penthouse is not a story under ZR 12-10, so the
// building stays at four stories for code purposes: no elevator,
// single staircase.
func (c *Calculator) buildPenthouse(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, unitCap int) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.ResidentialFAR <= 0 || fp <= 0 {
		return nil
	}

	maxZFA := env.ResidentialFAR * lotArea

	heights := zoning.GetFloorHeights(env.QualityHousing)
	ground := heights.GroundResidential
	typical := heights.TypicalResidential
	penthouseHt := typical

	needed := ground + 3*typical + penthouseHt
	if env.MaxBuildingHeight > 0 && needed > env.MaxBuildingHeight {
		return nil
	}

	var floors []model.MassingFloor
	var totalSF, totalHeight float64
	for i := 0; i < 4; i++ {
		fh := typical
		if i == 0 {
			fh = ground
		}
		floorSF := math.Min(fp, maxZFA-totalSF)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    i + 1,
			Use:      "residential",
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: fh,
		})
		totalSF += floorSF
		totalHeight += fh
	}
	if len(floors) < 4 {
		return nil
	}

	penthouseSF := math.Min(fp/3, maxZFA-totalSF)
	if penthouseSF > 0 {
		floors = append(floors, model.MassingFloor{
			Floor:    5,
			Use:      "residential",
			GrossSF:  penthouseSF,
			NetSF:    penthouseSF * 0.85,
			HeightFt: penthouseHt,
		})
		totalSF += penthouseSF
		totalHeight += penthouseHt
	}

	numFloors := len(floors)
	totalGross := grossOf(floors)

	btype := zoning.BuildingTypeForDistrict(district)
	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    exemptionType(btype, 4),
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(4, fp)
	coreSF := 150 + core.MechanicalSFPerFloor + core.CorridorSFPerFloor
	var corePct float64
	if fp > 0 {
		corePct = math.Round(coreSF/fp*1000) / 10
	}
	core = model.CoreEstimate{
		Elevators:            0,
		Stairs:               1,
		StairSFPerFloor:      150,
		MechanicalSFPerFloor: core.MechanicalSFPerFloor,
		CorridorSFPerFloor:   core.CorridorSFPerFloor,
		TotalCoreSFPerFloor:  coreSF,
		CorePercentage:       corePct,
	}

	loss := calculateLoss(totalGross, core)
	netRes := loss.NetRentableArea

	mix := generateUnitMix(netRes, "balanced")
	mix = capUnitMix(mix, unitCap, netRes)

	parking := c.parkingFor(lot, district, mix.TotalUnits, 0)

	var penthouseFraction float64
	if fp > 0 && penthouseSF > 0 {
		penthouseFraction = math.Round(penthouseSF/fp*10) / 10
	}

	return &model.DevelopmentScenario{
		Name: "4+1 Penthouse (No Elevator)",
		Description: fmt.Sprintf(
			"%.1f floors: 4 full floors + penthouse at 1/3 roof area (%s SF, ZR 12-10). Penthouse doesn't count as a story, so no elevator is required. Single staircase saves ~150 SF/floor.",
			4+penthouseFraction, formatSF(penthouseSF)),
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

func (c *Calculator) buildCommercial(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.CommercialFAR <= 0 || fp <= 0 {
		return nil
	}

	maxZFA := env.CommercialFAR * lotArea
	frontage, depth := lotDims(lot)

	numFloors, totalHeight, floors := buildFloors(maxZFA, fp, env, "commercial", district, frontage, depth)
	if numFloors == 0 {
		return nil
	}
	totalGross := grossOf(floors)

	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    zoning.ExemptOffice,
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalGross, core)

	return &model.DevelopmentScenario{
		Name:            "Max Commercial",
		Description:     "Maximize commercial floor area.",
		TotalGrossSF:    totalGross,
		TotalNetSF:      loss.NetRentableArea,
		ZoningFloorArea: math.Round(zfa),
		CommercialSF:    loss.NetRentableArea,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

// buildMixedUse stacks ground-floor retail under residential floors,
// the standard outer-borough configuration.
func (c *Calculator) buildMixedUse(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, unitCap int) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	resFAR := env.ResidentialFAR
	if resFAR <= 0 || fp <= 0 {
		return nil
	}

	heights := zoning.GetFloorHeights(false)
	groundHt := heights.GroundCommercial
	commercialSF := fp

	remainingZFA := resFAR*lotArea - commercialSF
	if remainingZFA <= 0 {
		return nil
	}

	resFloors := int(math.Ceil(remainingZFA / fp))
	if resFloors < 1 {
		resFloors = 1
	}
	if env.MaxBuildingHeight > 0 {
		available := env.MaxBuildingHeight - groundHt
		maxResFloors := int(available / heights.TypicalResidential)
		if maxResFloors < 1 {
			maxResFloors = 1
		}
		if maxResFloors < resFloors {
			resFloors = maxResFloors
		}
	}

	floors := []model.MassingFloor{{
		Floor:    1,
		Use:      "commercial",
		GrossSF:  commercialSF,
		NetSF:    commercialSF * commNetFactor,
		HeightFt: groundHt,
	}}
	totalHeight := groundHt
	resRemaining := remainingZFA
	for i := 0; i < resFloors; i++ {
		floorSF := math.Min(fp, resRemaining)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    i + 2,
			Use:      "residential",
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: heights.TypicalResidential,
		})
		resRemaining -= floorSF
		totalHeight += heights.TypicalResidential
	}

	totalGross := grossOf(floors)
	totalResGross := grossOfUse(floors, "residential")
	numFloors := len(floors)

	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    zoning.ExemptMixedUse,
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalResGross, core)
	netRes := loss.NetRentableArea

	mix := generateUnitMix(netRes, "balanced")
	mix = capUnitMix(mix, unitCap, netRes)

	parking := c.parkingFor(lot, district, mix.TotalUnits, commercialSF)

	return &model.DevelopmentScenario{
		Name:            "Mixed-Use (Retail + Residential)",
		Description:     "Ground floor retail with upper floor residential, the most common outer-borough development.",
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes + commercialSF*commNetFactor,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		CommercialSF:    commercialSF * commNetFactor,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

func (c *Calculator) buildCF(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.CommunityFAR <= 0 || fp <= 0 {
		return nil
	}

	maxZFA := env.CommunityFAR * lotArea
	frontage, depth := lotDims(lot)

	numFloors, totalHeight, floors := buildFloors(maxZFA, fp, env, "community_facility", district, frontage, depth)
	if numFloors == 0 {
		return nil
	}
	totalGross := grossOf(floors)

	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    zoning.ExemptOffice,
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalGross, core)

	return &model.DevelopmentScenario{
		Name:            "Community Facility",
		Description:     fmt.Sprintf("Community facility use with higher FAR (%g).", env.CommunityFAR),
		TotalGrossSF:    totalGross,
		TotalNetSF:      loss.NetRentableArea,
		ZoningFloorArea: math.Round(zfa),
		CommunitySF:     loss.NetRentableArea,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

// buildResidentialCF combines full residential FAR with community
// facility space filling the balance up to the highest single-use FAR
// (ZR 24-10/24-16). CF sits on the lower floors, residential above.
func (c *Calculator) buildResidentialCF(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, unitCap int) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	resFAR := env.ResidentialFAR
	cfFAR := env.CommunityFAR
	if resFAR <= 0 || cfFAR <= 0 || fp <= 0 {
		return nil
	}

	maxTotalFAR := math.Max(resFAR, cfFAR)
	maxResZFA := resFAR * lotArea
	cfZFA := math.Min(cfFAR*lotArea, (maxTotalFAR-resFAR)*lotArea)

	heights := zoning.GetFloorHeights(false)
	groundHt := heights.GroundCommercial
	typicalResHt := heights.TypicalResidential
	typicalCFHt := heights.TypicalCF

	cfFloorsNeeded := int(math.Ceil(cfZFA / fp))
	if cfFloorsNeeded < 1 {
		cfFloorsNeeded = 1
	}
	if env.MaxBuildingHeight > 0 {
		// Reserve at least two residential floors above the CF portion.
		cfMaxHeight := env.MaxBuildingHeight - 2*typicalResHt
		byHeight := int(cfMaxHeight / typicalCFHt)
		if byHeight < 1 {
			byHeight = 1
		}
		if byHeight < cfFloorsNeeded {
			cfFloorsNeeded = byHeight
		}
	}

	var floors []model.MassingFloor
	var totalHeight, totalCFSF, totalResSF float64

	for i := 0; i < cfFloorsNeeded; i++ {
		fh := typicalCFHt
		if i == 0 {
			fh = groundHt
		}
		floorSF := math.Min(fp, cfZFA-totalCFSF)
		if floorSF <= 0 {
			break
		}
		if env.MaxBuildingHeight > 0 && totalHeight+fh > env.MaxBuildingHeight {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    i + 1,
			Use:      "community_facility",
			GrossSF:  floorSF,
			NetSF:    floorSF * cfNetFactor,
			HeightFt: fh,
		})
		totalCFSF += floorSF
		totalHeight += fh
	}

	remainingResZFA := maxResZFA
	for remainingResZFA > 0 {
		if env.MaxBuildingHeight > 0 && totalHeight+typicalResHt > env.MaxBuildingHeight {
			break
		}
		floorSF := math.Min(fp, remainingResZFA)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    len(floors) + 1,
			Use:      "residential",
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: typicalResHt,
		})
		totalResSF += floorSF
		remainingResZFA -= floorSF
		totalHeight += typicalResHt
	}

	if len(floors) == 0 {
		return nil
	}

	totalGross := grossOf(floors)
	totalResGross := grossOfUse(floors, "residential")
	totalCFGross := grossOfUse(floors, "community_facility")
	numFloors := len(floors)

	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    zoning.ExemptMixedUse,
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, fp)
	loss := calculateLoss(totalResGross, core)
	netRes := loss.NetRentableArea

	mix := generateUnitMix(netRes, "balanced")
	mix = capUnitMix(mix, unitCap, netRes)

	parking := c.parkingFor(lot, district, mix.TotalUnits, 0)

	cfNet := totalCFGross * cfNetFactor
	resFARUsed := farUsed(totalResGross, lotArea)
	cfFARUsed := farUsed(totalCFGross, lotArea)

	return &model.DevelopmentScenario{
		Name: "Residential + Community Facility",
		Description: fmt.Sprintf(
			"Combined use: residential (FAR %g) + CF (FAR %g). Total bulk limited to highest single-use FAR (%.1f).",
			resFARUsed, cfFARUsed, maxTotalFAR),
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes + cfNet,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		CommunitySF:     cfNet,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

// buildTower masses a wide podium at the street wall with a narrower
// tower above (ZR 23-65).
func (c *Calculator) buildTower(lot model.LotProfile, env *model.ZoningEnvelope, district string, tower zoning.TowerFootprint) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	if env.ResidentialFAR <= 0 || lotArea <= 0 {
		return nil
	}
	if tower.BaseFootprintSF <= 0 || tower.TowerFootprintSF <= 0 {
		return nil
	}

	maxZFA := env.ResidentialFAR * lotArea

	heights := zoning.GetFloorHeights(false)
	groundHt := heights.GroundCommercial
	typicalHt := heights.TypicalResidential

	baseFloorsCount := int(tower.BaseHeightMaxFt / typicalHt)
	if baseFloorsCount < 1 {
		baseFloorsCount = 1
	}

	var floors []model.MassingFloor
	var totalSF, totalHeight float64

	groundSF := math.Min(tower.BaseFootprintSF, maxZFA)
	floors = append(floors, model.MassingFloor{
		Floor:    1,
		Use:      "commercial",
		GrossSF:  groundSF,
		NetSF:    groundSF * commNetFactor,
		HeightFt: groundHt,
	})
	totalSF += groundSF
	totalHeight += groundHt

	for i := 1; i < baseFloorsCount; i++ {
		floorSF := math.Min(tower.BaseFootprintSF, maxZFA-totalSF)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    i + 1,
			Use:      "residential",
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: typicalHt,
		})
		totalSF += floorSF
		totalHeight += typicalHt
	}

	remainingZFA := maxZFA - totalSF
	towerFloorCount := 0
	if tower.TowerFootprintSF > 0 && remainingZFA > 0 {
		towerFloorCount = int(math.Ceil(remainingZFA / tower.TowerFootprintSF))
	}
	if env.MaxBuildingHeight > 0 {
		remainingHeight := env.MaxBuildingHeight - totalHeight
		byHeight := int(math.Max(0, remainingHeight) / typicalHt)
		if byHeight < towerFloorCount {
			towerFloorCount = byHeight
		}
	}
	if towerFloorCount > 80 {
		towerFloorCount = 80
	}

	for i := 0; i < towerFloorCount; i++ {
		floorSF := math.Min(tower.TowerFootprintSF, maxZFA-totalSF)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    len(floors) + 1,
			Use:      "residential",
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: typicalHt,
		})
		totalSF += floorSF
		totalHeight += typicalHt
	}

	if len(floors) <= 1 {
		return nil
	}

	totalGross := grossOf(floors)
	totalResGross := grossOfUse(floors, "residential")
	numFloors := len(floors)

	exType := zoning.ExemptElevator
	if numFloors > 20 {
		exType = zoning.ExemptTower
	}
	ex := zoning.CalculateExemptArea(zoning.ExemptionInput{
		ZoningFloorArea: totalGross,
		BuildingType:    exType,
		HasCellar:       true,
	})
	zfa := totalGross - ex.TotalExemptSF

	core := estimateCore(numFloors, tower.TowerFootprintSF)
	loss := calculateLoss(totalResGross, core)
	netRes := loss.NetRentableArea
	mix := generateUnitMix(netRes, "balanced")

	parking := c.parkingFor(lot, district, mix.TotalUnits, floors[0].GrossSF)

	return &model.DevelopmentScenario{
		Name: "Tower-on-Base",
		Description: fmt.Sprintf(
			"Tower-on-base: %d-story podium (%s SF footprint) + %d-story tower (%s SF footprint, %.0f%% lot coverage).",
			baseFloorsCount, formatSF(tower.BaseFootprintSF),
			towerFloorCount, formatSF(tower.TowerFootprintSF), tower.TowerCoveragePct),
		TotalGrossSF:    totalGross,
		TotalNetSF:      netRes + floors[0].NetSF,
		ZoningFloorArea: math.Round(zfa),
		ResidentialSF:   netRes,
		CommercialSF:    floors[0].NetSF,
		TotalUnits:      mix.TotalUnits,
		UnitMix:         &mix,
		Parking:         parking,
		LossFactor:      &loss,
		Core:            &core,
		Exemptions:      &ex,
		Floors:          floors,
		MaxHeightFt:     totalHeight,
		NumFloors:       numFloors,
		FARUsed:         farUsed(zfa, lotArea),
	}
}

func (c *Calculator) parkingFor(lot model.LotProfile, district string, units int, commercialSF float64) *model.ParkingResult {
	p := zoning.CalculateParking(zoning.ParkingInput{
		District:          district,
		UnitCount:         units,
		CommercialSF:      commercialSF,
		LotArea:           lot.LotArea,
		Borough:           lot.Borough,
		CommunityDistrict: communityDistrict(lot),
	})
	return &p
}

func grossOf(floors []model.MassingFloor) float64 {
	var total float64
	for _, f := range floors {
		total += f.GrossSF
	}
	return total
}

func grossOfUse(floors []model.MassingFloor, use string) float64 {
	var total float64
	for _, f := range floors {
		if f.Use == use {
			total += f.GrossSF
		}
	}
	return total
}

func farUsed(zfa, lotArea float64) float64 {
	if lotArea <= 0 {
		return 0
	}
	return round2(zfa / lotArea)
}
