package engine

import (
	"math"
	"strconv"

	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

// Net-to-gross efficiency by use for individual floor plates.
const (
	resNetFactor  = 0.82
	commNetFactor = 0.93
	cfNetFactor   = 0.88
)

// footprint computes the buildable plate: frontage by depth net of
// required yards, capped by the lot coverage maximum (ZR 23-153).
func footprint(lot model.LotProfile, env *model.ZoningEnvelope) float64 {
	frontage, depth := lotDims(lot)
	lotArea := lot.LotArea
	if lotArea <= 0 {
		lotArea = frontage * depth
	}

	effectiveDepth := depth - env.RearYard - env.FrontYard
	effectiveWidth := frontage
	if env.SideYardsRequired {
		effectiveWidth -= env.SideYardWidth * 2
	}

	fp := effectiveWidth * effectiveDepth

	if env.LotCoverageMax > 0 && lotArea > 0 {
		maxCoverage := lotArea * env.LotCoverageMax / 100
		fp = math.Min(fp, maxCoverage)
	}
	return math.Max(fp, 0)
}

// buildFloors stacks floors within the envelope until the floor area or
// height budget runs out. Upper floors above the maximum base height
// shrink by the required setback, less any dormer allowance in
// contextual districts. Partial top floors are kept so the stack always
// reaches the full ZFA when height permits.
func buildFloors(maxZFA, fp float64, env *model.ZoningEnvelope, use, district string, frontage, depth float64) (int, float64, []model.MassingFloor) {
	if fp <= 0 {
		return 0, 0, nil
	}

	heights := zoning.GetFloorHeights(env.QualityHousing)
	var ground, typical float64
	switch use {
	case "commercial":
		ground, typical = heights.GroundCommercial, heights.TypicalCommercial
	case "residential":
		ground, typical = heights.GroundResidential, heights.TypicalResidential
	default:
		typical = heights.TypicalResidential
		ground = typical
	}

	maxFloorsByArea := int(math.Ceil(maxZFA / fp))
	if maxFloorsByArea < 1 {
		maxFloorsByArea = 1
	}

	numFloors := maxFloorsByArea
	if env.MaxBuildingHeight > 0 {
		available := env.MaxBuildingHeight - ground
		byHeight := 1 + int(math.Max(0, available)/typical)
		if byHeight < numFloors {
			numFloors = byHeight
		}
	}
	if numFloors > 100 {
		numFloors = 100
	}

	dormer := zoning.GetDormerRules(district)
	baseMax := env.BaseHeightMax
	var setback float64
	if env.Setbacks != nil {
		setback = env.Setbacks.FrontSetbackAboveBase
	}

	var floors []model.MassingFloor
	var totalSF, totalHeight float64
	for i := 0; i < numFloors; i++ {
		fh := typical
		if i == 0 {
			fh = ground
		}

		plate := fp
		if env.QualityHousing && baseMax > 0 && totalHeight >= baseMax && setback > 0 {
			if dormer.Eligible {
				plate = zoning.CalculateUpperFloorArea(fp, frontage, depth, setback, district)
			} else {
				effectiveDepth := math.Max(0, depth-setback)
				plate = math.Min(frontage*effectiveDepth, fp)
			}
		}

		floorSF := math.Min(plate, maxZFA-totalSF)
		if floorSF <= 0 {
			break
		}
		floors = append(floors, model.MassingFloor{
			Floor:    i + 1,
			Use:      use,
			GrossSF:  floorSF,
			NetSF:    floorSF * resNetFactor,
			HeightFt: fh,
		})
		totalSF += floorSF
		totalHeight += fh
	}

	return len(floors), totalHeight, floors
}

// estimateCore sizes the vertical core. Elevators step with floor
// count; the 2024 single-stair reform allows one staircase up to six
// stories on plates of 4,000 SF or less.
func estimateCore(numFloors int, fp float64) model.CoreEstimate {
	var elevators int
	switch {
	case numFloors <= 6:
		elevators = numFloors - 3
		if elevators < 0 {
			elevators = 0
		}
		if elevators > 1 {
			elevators = 1
		}
	case numFloors <= 12:
		elevators = 2
	case numFloors <= 20:
		elevators = 3
	case numFloors <= 30:
		elevators = 4
	default:
		elevators = 4 + (numFloors-30)/15
	}

	var stairs int
	switch {
	case numFloors <= 6 && fp <= 4000:
		stairs = 1
	case numFloors <= 30:
		stairs = 2
	default:
		stairs = 3
	}

	elevatorSF := float64(elevators) * 75
	stairSF := float64(stairs) * 150
	mechanicalSF := fp * 0.03
	corridorSF := fp * 0.08

	totalCore := elevatorSF + stairSF + mechanicalSF + corridorSF
	var corePct float64
	if fp > 0 {
		corePct = math.Round(totalCore/fp*1000) / 10
	}

	return model.CoreEstimate{
		Elevators:            elevators,
		Stairs:               stairs,
		ElevatorSFPerFloor:   elevatorSF,
		StairSFPerFloor:      stairSF,
		MechanicalSFPerFloor: mechanicalSF,
		CorridorSFPerFloor:   corridorSF,
		TotalCoreSFPerFloor:  totalCore,
		CorePercentage:       corePct,
	}
}

// calculateLoss nets common area (core plus a ground-floor lobby) out
// of gross to reach rentable area.
func calculateLoss(grossSF float64, core model.CoreEstimate) model.LossFactorResult {
	common := grossSF*core.CorePercentage/100 + 500
	net := grossSF - common

	var lossPct, efficiency float64
	if grossSF > 0 {
		lossPct = math.Round(common/grossSF*1000) / 10
		efficiency = math.Round(net/grossSF*1000) / 1000
	}
	return model.LossFactorResult{
		GrossBuildingArea: grossSF,
		TotalCommonArea:   math.Round(common),
		NetRentableArea:   math.Round(math.Max(net, 0)),
		LossFactorPct:     lossPct,
		EfficiencyRatio:   efficiency,
	}
}

var unitTypes = []struct {
	name string
	sf   int
}{
	{"studio", 400},
	{"1br", 625},
	{"2br", 875},
	{"3br", 1150},
}

// Mix percentages aligned with unitTypes order.
var mixStrategies = map[string][4]float64{
	"balanced":       {0.15, 0.40, 0.30, 0.15},
	"maximize_units": {0.50, 0.35, 0.10, 0.05},
	"family":         {0.05, 0.20, 0.45, 0.30},
	"luxury":         {0.05, 0.25, 0.40, 0.30},
}

// generateUnitMix distributes net residential area across unit types
// per the named strategy.
func generateUnitMix(netResidentialSF float64, strategy string) model.UnitMixResult {
	if netResidentialSF <= 0 {
		return model.UnitMixResult{Units: []model.UnitMix{}}
	}

	pcts, ok := mixStrategies[strategy]
	if !ok {
		pcts = mixStrategies["balanced"]
	}

	var avgSize float64
	for i, ut := range unitTypes {
		avgSize += float64(ut.sf) * pcts[i]
	}
	totalUnits := int(netResidentialSF / avgSize)
	if totalUnits < 1 {
		totalUnits = 1
	}

	var units []model.UnitMix
	for i, ut := range unitTypes {
		count := int(math.Round(float64(totalUnits) * pcts[i]))
		if count > 0 {
			units = append(units, model.UnitMix{
				Type:  ut.name,
				Count: count,
				AvgSF: ut.sf,
			})
		}
	}

	actual := 0
	for _, u := range units {
		actual += u.Count
	}
	var avg float64
	if actual > 0 {
		avg = math.Round(netResidentialSF / float64(actual))
	}
	return model.UnitMixResult{
		Units:         units,
		TotalUnits:    actual,
		AverageUnitSF: avg,
	}
}

// capUnitMix refits a mix to a binding unit cap: lot area per DU in
// R1-R5, the dwelling unit factor in R6 and above. The cap is spread
// across unit types directly, with the dominant type absorbing the
// rounding remainder, so a binding cap always yields 1..cap units.
func capUnitMix(mix model.UnitMixResult, cap int, netResidentialSF float64) model.UnitMixResult {
	if cap <= 0 || mix.TotalUnits <= cap {
		return mix
	}
	strategy := "balanced"
	if netResidentialSF/float64(cap) > 800 {
		strategy = "family"
	}
	pcts := mixStrategies[strategy]

	var counts [4]int
	total, dominant := 0, 0
	for i := range unitTypes {
		counts[i] = int(math.Round(float64(cap) * pcts[i]))
		total += counts[i]
		if pcts[i] > pcts[dominant] {
			dominant = i
		}
	}
	counts[dominant] += cap - total
	if counts[dominant] < 0 {
		counts[dominant] = 0
	}

	var units []model.UnitMix
	actual := 0
	for i, ut := range unitTypes {
		if counts[i] > 0 {
			units = append(units, model.UnitMix{
				Type:  ut.name,
				Count: counts[i],
				AvgSF: ut.sf,
			})
			actual += counts[i]
		}
	}
	var avg float64
	if actual > 0 {
		avg = math.Round(netResidentialSF / float64(actual))
	}
	return model.UnitMixResult{
		Units:         units,
		TotalUnits:    actual,
		AverageUnitSF: avg,
	}
}

// minPositiveCap combines two unit caps where 0 means no cap.
func minPositiveCap(a, b int) int {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// exemptionType maps a building form and floor count to the floor area
// exemption category.
func exemptionType(btype string, numFloors int) string {
	switch btype {
	case zoning.BuildingDetached, zoning.BuildingSemiDetached, zoning.BuildingAttached:
		return zoning.ExemptWalkup
	}
	if numFloors <= 6 {
		return zoning.ExemptWalkup
	}
	if numFloors <= 20 {
		return zoning.ExemptElevator
	}
	return zoning.ExemptTower
}

func formatSF(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
