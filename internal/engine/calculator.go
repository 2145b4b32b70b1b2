// Package engine orchestrates the zoning rule tables into a full
// feasibility analysis: resolved bulk envelope, development scenarios,
// program checks, and special district context for a single lot.
package engine

import (
	"errors"

	"zoning-feasibility/internal/analysis"
	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/program"
	"zoning-feasibility/internal/zoning"
)

// Calculator computes all allowable development parameters for a lot.
// Safe for concurrent use; it holds no per-request state.
type Calculator struct {
	programs *program.Registry
	valuer   analysis.Valuer
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithValuer sets the valuer used to rank scenarios, typically carrying
// configured $/SF rate overrides.
func WithValuer(v analysis.Valuer) Option {
	return func(c *Calculator) { c.valuer = v }
}

// WithRegistry replaces the default program registry.
func WithRegistry(r *program.Registry) Option {
	return func(c *Calculator) { c.programs = r }
}

// NewCalculator returns a Calculator with the full program registry.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{programs: program.NewRegistry()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Programs exposes the underlying registry for listing endpoints.
func (c *Calculator) Programs() *program.Registry {
	return c.programs
}

// Analyze runs the full calculation: envelope, scenarios, building
// type, street wall, special districts, City of Yes provisions, and
// every registered program check.
func (c *Calculator) Analyze(lot model.LotProfile) (*model.CalculationResult, error) {
	district := lot.PrimaryDistrict()
	if district == "" {
		return nil, errors.New("no zoning district mapped for this lot")
	}

	envelope := c.Envelope(lot, district)
	scenarios := c.Scenarios(lot, envelope, district)

	btype := zoning.GetBuildingTypeRules(district)
	streetWall := zoning.GetStreetWallRules(district, lot.StreetWidth)
	spInfo := specialDistrictInfo(lot.SpecialDistricts)

	coy := zoning.GetCityOfYesSummary(
		district, lot.LotArea, lot.Borough, communityDistrict(lot), lot.StreetWidth,
	)

	results := c.programs.CheckAll(lot)
	effects := program.Summarize(results)

	scenarios = append(scenarios, c.bonusScenarios(lot, envelope, district, results)...)
	scenarios = c.valuer.Rank(scenarios, lot.Borough)

	return &model.CalculationResult{
		Lot:              &lot,
		Envelope:         envelope,
		Scenarios:        scenarios,
		BuildingType:     btype,
		StreetWall:       streetWall,
		SpecialDistricts: spInfo,
		CityOfYes:        coy,
		Programs:         results,
		ProgramEffects:   &effects,
		Disclaimer:       model.Disclaimer,
	}, nil
}

// Envelope resolves the bulk envelope for one lot and district:
// FAR by use (with special district overrides and commercial overlay
// fill-in), height rules, yards, and the sliver law height cap.
func (c *Calculator) Envelope(lot model.LotProfile, district string) *model.ZoningEnvelope {
	far := zoning.LookupFAR(district)
	if len(lot.SpecialDistricts) > 0 {
		far = zoning.ApplySpecialDistrictOverrides(far, lot.SpecialDistricts)
	}

	height := zoning.GetHeightRules(district, lot.StreetWidth, false, zoning.ProgramAuto)
	frontage, depth := lotDims(lot)
	yards := zoning.GetYardRequirements(district, lot.LotType, depth, frontage)

	wide := lot.IsWideStreet()
	resFAR := far.Residential.Resolve(wide)
	commFAR := far.Commercial.Resolve(wide)
	cfFAR := far.CommunityFac.Resolve(wide)
	mfgFAR := far.Manufacturing.Resolve(wide)

	// A commercial overlay lends its FAR when the base district has none.
	var overlayFAR float64
	for _, ov := range lot.Overlays {
		if f := zoning.OverlayCommercialFAR(ov); f > overlayFAR {
			overlayFAR = f
		}
	}
	if overlayFAR > 0 && commFAR == 0 {
		commFAR = overlayFAR
	}

	var ihBonus float64
	if lot.IsMIHArea {
		ihBonus = zoning.MIHBonusFAR(district)
	}

	front := yards.FrontYard
	if height.QualityHousing {
		front = 0
	}
	setbacks := &model.SetbackRules{
		Front:                 front,
		Rear:                  yards.RearYard,
		SideEach:              yards.SideYardEach,
		FrontSetbackAboveBase: height.SetbackAboveBase,
	}

	maxHeight := height.MaxBuildingHeight
	if sliver := zoning.SliverLawHeight(district, frontage, lot.StreetWidthFt, lot.LotType); sliver > 0 {
		if maxHeight == 0 || sliver < maxHeight {
			maxHeight = sliver
		}
	}

	lotArea := lot.LotArea

	return &model.ZoningEnvelope{
		ResidentialFAR:   resFAR,
		CommercialFAR:    commFAR,
		CommunityFAR:     cfFAR,
		ManufacturingFAR: mfgFAR,

		MaxResidentialZFA: resFAR * lotArea,
		MaxCommercialZFA:  commFAR * lotArea,
		MaxCommunityZFA:   cfFAR * lotArea,

		IHBonusFAR: ihBonus,

		BaseHeightMin:     height.BaseHeightMin,
		BaseHeightMax:     height.BaseHeightMax,
		MaxBuildingHeight: maxHeight,
		SkyExposure:       height.SkyExposure,
		Setbacks:          setbacks,

		FrontYard:          yards.FrontYard,
		RearYard:           yards.RearYard,
		RearYardEquivalent: yards.RearYardEquivalent,
		SideYardsRequired:  yards.SideYardsRequired,
		SideYardWidth:      yards.SideYardEach,

		LotCoverageMax: yards.LotCoverageMaxPct,

		QualityHousing: height.QualityHousing,
		HeightFactor:   height.HeightFactor,
	}
}

func specialDistrictInfo(codes []string) *model.SpecialDistrictInfo {
	info := &model.SpecialDistrictInfo{}
	if len(codes) == 0 {
		return info
	}

	for _, code := range codes {
		sd, ok := zoning.GetSpecialDistrict(code)
		if !ok {
			continue
		}
		info.Districts = append(info.Districts, model.SpecialDistrictSummary{
			Code:           sd.Code,
			Name:           sd.Name,
			Description:    sd.Description,
			HasFAROverride: sd.FAROverride != nil,
		})
		if sd.MandatoryInclusionary {
			info.MandatoryInclusionary = true
		}
		if sd.TDRAvailable {
			info.TDRAvailable = true
		}
	}

	info.Applicable = len(info.Districts) > 0
	if bonuses := zoning.GetSpecialDistrictBonuses(codes); len(bonuses) > 0 {
		info.Bonuses = bonuses
	}
	return info
}

// lotDims returns frontage and depth with survey-default fallbacks for
// lots missing dimension data.
func lotDims(lot model.LotProfile) (frontage, depth float64) {
	frontage, depth = lot.LotFrontage, lot.LotDepth
	if frontage <= 0 {
		frontage = 50
	}
	if depth <= 0 {
		depth = 100
	}
	return frontage, depth
}

func communityDistrict(lot model.LotProfile) int {
	if lot.CommunityDistrict != 0 {
		return lot.CommunityDistrict
	}
	if lot.Pluto != nil {
		return lot.Pluto.CD
	}
	return 0
}
