package engine

import (
	"fmt"
	"math"
	"strings"

	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

// Scenarios generates the development scenarios a lot supports:
// residential, unit-count maximization, penthouse, commercial, mixed
// use, community facility, the Height Factor alternative, tower on
// base, the IH bonus, and UAP.
func (c *Calculator) Scenarios(lot model.LotProfile, env *model.ZoningEnvelope, district string) []model.DevelopmentScenario {
	var scenarios []model.DevelopmentScenario

	lotArea := lot.LotArea
	uses := zoning.GetPermittedUses(district)
	farData := zoning.LookupFAR(district)
	frontage, depth := lotDims(lot)

	fp := footprint(lot, env)
	tower := zoning.CalculateTowerFootprint(lotArea, district, frontage, depth)

	byArea, _ := zoning.MaxUnitsByLotArea(district, lotArea)
	byDU, _ := zoning.MaxUnitsByDUFactor(district, env.ResidentialFAR*lotArea, false, false)

	if uses.ResidentialAllowed && env.ResidentialFAR > 0 {
		sc := c.buildResidential(
			lot, env, district, fp, "Max Residential",
			"Maximize residential floor area with ground-floor commercial if overlay permits.",
			minPositiveCap(byArea, byDU),
		)
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	// Unit-count maximization: smaller units to reach the dwelling unit
	// factor ceiling. Only worth reporting when it beats Max Residential.
	if uses.ResidentialAllowed && env.ResidentialFAR > 0 && byDU > 0 {
		maxResUnits := 0
		if len(scenarios) > 0 {
			maxResUnits = scenarios[0].TotalUnits
		}
		if byDU > maxResUnits {
			sc := c.buildMaxUnits(lot, env, district, fp, byDU, byArea)
			if sc != nil && sc.TotalUnits > maxResUnits {
				scenarios = append(scenarios, *sc)
			}
		}
	}

	// A penthouse on no more than a third of the roof is not a story
	// (ZR 12-10), so four floors plus penthouse needs no elevator.
	if uses.ResidentialAllowed && env.ResidentialFAR > 0 {
		sc := c.buildPenthouse(lot, env, district, fp, minPositiveCap(byArea, byDU))
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if uses.CommercialAllowed && env.CommercialFAR > 0 {
		sc := c.buildCommercial(lot, env, district, fp)
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if uses.ResidentialAllowed && (uses.CommercialAllowed || len(lot.Overlays) > 0) {
		sc := c.buildMixedUse(lot, env, district, fp, minPositiveCap(byArea, byDU))
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if uses.CommunityFacilityAllowed && env.CommunityFAR > 0 && env.CommunityFAR > env.ResidentialFAR {
		sc := c.buildCF(lot, env, district, fp)
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	// Residential plus community facility under ZR 24-10/24-16: each
	// component within its own FAR, total bulk within the highest
	// single-use FAR.
	if uses.ResidentialAllowed && uses.CommunityFacilityAllowed &&
		env.CommunityFAR > 0 && env.ResidentialFAR > 0 &&
		env.CommunityFAR >= env.ResidentialFAR {
		sc := c.buildResidentialCF(lot, env, district, fp, minPositiveCap(byArea, byDU))
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	// Height Factor election for non-contextual R6-R10.
	if farData.Residential.Kind == model.FarDual {
		if sc := c.buildHeightFactor(lot, env, district, fp, farData); sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if tower.IsTower && uses.ResidentialAllowed {
		sc := c.buildTower(lot, env, district, tower)
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if lot.IsMIHArea && env.IHBonusFAR > 0 {
		if sc := c.buildIHBonus(lot, env, district, fp); sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if uapFAR := zoning.UAPMaxFAR(district); uapFAR > 0 && uses.ResidentialAllowed {
		if sc := c.buildUAP(lot, env, district, fp, uapFAR); sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	return scenarios
}

func (c *Calculator) buildHeightFactor(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, farData zoning.FAREntry) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	frontage, _ := lotDims(lot)
	qhFAR := farData.Residential.Resolve(lot.IsWideStreet())

	hfOSR := zoning.CalculateHFFar(district, lotArea, 0)
	hfMaxFAR := qhFAR
	if hfOSR.IsHeightFactor && hfOSR.MaxFAR > 0 {
		hfMaxFAR = hfOSR.MaxFAR
	}

	hfHeight := zoning.GetHeightRules(district, lot.StreetWidth, false, zoning.ProgramHeightFactor)

	hfEnv := &model.ZoningEnvelope{
		ResidentialFAR:    hfMaxFAR,
		CommercialFAR:     env.CommercialFAR,
		CommunityFAR:      env.CommunityFAR,
		MaxResidentialZFA: hfMaxFAR * lotArea,
		SkyExposure:       hfHeight.SkyExposure,
		Setbacks:          env.Setbacks,
		HeightFactor:      true,
		FrontYard:         env.FrontYard,
		RearYard:          env.RearYard,
		SideYardsRequired: env.SideYardsRequired,
		SideYardWidth:     env.SideYardWidth,
		LotCoverageMax:    env.LotCoverageMax,
	}

	// The sliver law still caps Height Factor buildings on narrow lots.
	if sliver := zoning.SliverLawHeight(district, frontage, lot.StreetWidthFt, lot.LotType); sliver > 0 {
		hfEnv.MaxBuildingHeight = sliver
	}

	var osrDesc string
	if hfOSR.IsHeightFactor {
		osrDesc = fmt.Sprintf(" Min open space: %s SF (OSR %g%%).", formatSF(hfOSR.MinOpenSpaceSF), hfOSR.MinOSR)
	}

	hfDU, _ := zoning.MaxUnitsByDUFactor(district, hfMaxFAR*lotArea, false, false)

	return c.buildResidential(
		lot, hfEnv, district, fp, "Height Factor Option",
		fmt.Sprintf("Height Factor: FAR up to %.2f, no height limit, sky exposure plane applies.%s",
			hfMaxFAR, osrDesc),
		hfDU,
	)
}

func (c *Calculator) buildIHBonus(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	ihFAR := env.ResidentialFAR + env.IHBonusFAR

	ihEnv := *env
	ihEnv.ResidentialFAR = ihFAR
	ihEnv.MaxResidentialZFA = ihFAR * lotArea

	mihOption := lot.MIHOption
	if mihOption == "" {
		mihOption = zoning.MIHOption1
	}

	ihDU, _ := zoning.MaxUnitsByDUFactor(district, ihFAR*lotArea, false, false)

	sc := c.buildResidential(
		lot, &ihEnv, district, fp, "With IH Bonus",
		fmt.Sprintf("Inclusionary Housing bonus: FAR %.2f with affordable unit requirement (%s).",
			ihFAR, titleOption(mihOption)),
		ihDU,
	)
	if sc == nil {
		return nil
	}

	mih := zoning.CalculateMIHProgram(mihOption, sc.ResidentialSF)
	sc.Description += fmt.Sprintf(" %.0f%% affordable (%d units at avg %d%% AMI).",
		mih.Option.AffordablePct*100, mih.EstimatedAffordableUnits, mih.Option.AvgAMI)
	return sc
}

func (c *Calculator) buildUAP(lot model.LotProfile, env *model.ZoningEnvelope, district string, fp float64, uapFAR float64) *model.DevelopmentScenario {
	lotArea := lot.LotArea
	frontage, _ := lotDims(lot)

	uapHeight := zoning.GetHeightRules(district, lot.StreetWidth, true, zoning.ProgramAuto)
	uapBonus := zoning.UAPBonusFAR(district, lot.IsWideStreet())

	uapEnv := &model.ZoningEnvelope{
		ResidentialFAR:    uapFAR,
		CommercialFAR:     env.CommercialFAR,
		CommunityFAR:      env.CommunityFAR,
		MaxResidentialZFA: uapFAR * lotArea,
		MaxBuildingHeight: uapHeight.MaxBuildingHeight,
		BaseHeightMin:     uapHeight.BaseHeightMin,
		BaseHeightMax:     uapHeight.BaseHeightMax,
		SkyExposure:       env.SkyExposure,
		Setbacks:          env.Setbacks,
		QualityHousing:    uapHeight.QualityHousing,
		HeightFactor:      uapHeight.HeightFactor,
		IHBonusFAR:        uapBonus,
		FrontYard:         env.FrontYard,
		RearYard:          env.RearYard,
		SideYardsRequired: env.SideYardsRequired,
		SideYardWidth:     env.SideYardWidth,
		LotCoverageMax:    env.LotCoverageMax,
	}
	if uapEnv.BaseHeightMin == 0 {
		uapEnv.BaseHeightMin = env.BaseHeightMin
	}
	if uapEnv.BaseHeightMax == 0 {
		uapEnv.BaseHeightMax = env.BaseHeightMax
	}

	if sliver := zoning.SliverLawHeight(district, frontage, lot.StreetWidthFt, lot.LotType); sliver > 0 && uapEnv.MaxBuildingHeight > 0 {
		uapEnv.MaxBuildingHeight = math.Min(uapEnv.MaxBuildingHeight, sliver)
	}

	heightDesc := "no cap"
	if uapHeight.MaxBuildingHeight > 0 {
		heightDesc = fmt.Sprintf("%.0f ft", uapHeight.MaxBuildingHeight)
	}

	uapDU, _ := zoning.MaxUnitsByDUFactor(district, uapFAR*lotArea, false, false)

	return c.buildResidential(
		lot, uapEnv, district, fp, "UAP (City of Yes)",
		fmt.Sprintf("Universal Affordability Preference: FAR %.2f (+%.2f bonus) with affordable housing at avg <=60%% AMI. Height: %s.",
			uapFAR, uapBonus, heightDesc),
		uapDU,
	)
}

// Programs whose scenarios are generated separately, and categories
// that carry no quantitative FAR bonus.
var skipBonusKeys = map[string]bool{
	"mih": true, "uap": true, "voluntary_ih": true,
}

var infoOnlyCategories = map[string]bool{
	model.CategoryUseFlexibility: true,
	model.CategoryResilience:     true,
	model.CategoryLargeScale:     true,
}

// bonusScenarios builds a "Max Res + program" scenario for each
// applicable FAR-granting program, plus one combined scenario stacking
// every bonus when two or more apply.
func (c *Calculator) bonusScenarios(lot model.LotProfile, env *model.ZoningEnvelope, district string, results []model.ProgramResult) []model.DevelopmentScenario {
	var bonusPrograms []model.ProgramResult
	for _, r := range results {
		if !r.Applicable || r.Effect == nil {
			continue
		}
		if skipBonusKeys[r.Key] || infoOnlyCategories[r.Category] {
			continue
		}
		if r.Effect.FARBonus <= 0 && r.Effect.FAROverride == 0 {
			continue
		}
		bonusPrograms = append(bonusPrograms, r)
	}
	if len(bonusPrograms) == 0 {
		return nil
	}

	lotArea := lot.LotArea
	fp := footprint(lot, env)
	var scenarios []model.DevelopmentScenario

	for _, prog := range bonusPrograms {
		bonusFAR := prog.Effect.FARBonus
		if bonusFAR <= 0 {
			continue
		}
		newFAR := env.ResidentialFAR + bonusFAR

		bonusEnv := *env
		bonusEnv.ResidentialFAR = newFAR
		bonusEnv.MaxResidentialZFA = newFAR * lotArea
		bonusEnv.IHBonusFAR = 0

		bonusDU, _ := zoning.MaxUnitsByDUFactor(district, newFAR*lotArea, false, false)

		sc := c.buildResidential(
			lot, &bonusEnv, district, fp,
			fmt.Sprintf("Max Res + %s", prog.Name),
			fmt.Sprintf("Base FAR %.2f + %.2f bonus (%s). Total FAR %.2f.",
				env.ResidentialFAR, bonusFAR, prog.Name, newFAR),
			bonusDU,
		)
		if sc != nil {
			scenarios = append(scenarios, *sc)
		}
	}

	if len(bonusPrograms) >= 2 {
		var totalBonus float64
		names := make([]string, 0, len(bonusPrograms))
		for _, p := range bonusPrograms {
			totalBonus += p.Effect.FARBonus
			names = append(names, p.Name)
		}
		if totalBonus > 0 {
			combinedFAR := env.ResidentialFAR + totalBonus

			combinedEnv := *env
			combinedEnv.ResidentialFAR = combinedFAR
			combinedEnv.MaxResidentialZFA = combinedFAR * lotArea
			combinedEnv.IHBonusFAR = 0

			combinedDU, _ := zoning.MaxUnitsByDUFactor(district, combinedFAR*lotArea, false, false)

			sc := c.buildResidential(
				lot, &combinedEnv, district, fp,
				"Max Development (All Programs)",
				fmt.Sprintf("All applicable bonuses stacked: %s. Total FAR %.2f (+%.2f bonus).",
					strings.Join(names, ", "), combinedFAR, totalBonus),
				combinedDU,
			)
			if sc != nil {
				scenarios = append(scenarios, *sc)
			}
		}
	}

	return scenarios
}

func titleOption(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
