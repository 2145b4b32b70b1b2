package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"zoning-feasibility/internal/model"
)

// Analyzer runs a full feasibility calculation for one lot.
type Analyzer interface {
	Analyze(lot model.LotProfile) (*model.CalculationResult, error)
}

// ScenarioDelta is the difference between merged and summed individual
// outcomes for one scenario name.
type ScenarioDelta struct {
	ScenarioName          string   `json:"scenario_name"`
	FARDelta              float64  `json:"far_delta"`
	ZFADelta              float64  `json:"zfa_delta"`
	HeightDelta           float64  `json:"height_delta"`
	UnitCountDelta        int      `json:"unit_count_delta"`
	ParkingDelta          int      `json:"parking_delta"`
	LossFactorDelta       float64  `json:"loss_factor_delta"`
	AdditionalBuildableSF float64  `json:"additional_buildable_sf"`
	Notes                 []string `json:"notes,omitempty"`
}

// FrontageChange summarizes street frontage before and after merging.
type FrontageChange struct {
	IndividualTotalFt float64 `json:"individual_total_ft"`
	MergedFt          float64 `json:"merged_ft"`
	ChangeFt          float64 `json:"change_ft"`
}

// AssemblageDelta summarizes what assembling the lots changes.
type AssemblageDelta struct {
	LotAreaChange   float64         `json:"lot_area_change"`
	LotTypeChange   string          `json:"lot_type_change,omitempty"`
	StreetFrontage  FrontageChange  `json:"street_frontage_change"`
	FootprintGainSF float64         `json:"footprint_gain_sf"`
	ScenarioDeltas  []ScenarioDelta `json:"scenario_deltas,omitempty"`
	KeyUnlocks      []string        `json:"key_unlocks,omitempty"`
}

// AssemblageAnalysis is the complete individual-versus-merged study.
type AssemblageAnalysis struct {
	IndividualLots     []model.LotProfile         `json:"individual_lots"`
	IndividualAnalyses []*model.CalculationResult `json:"individual_analyses"`
	MergedLot          model.LotProfile           `json:"merged_lot"`
	MergedAnalysis     *model.CalculationResult   `json:"merged_analysis"`
	Delta              AssemblageDelta            `json:"delta"`
	ContiguityMethod   string                     `json:"contiguity_method"`
	Warnings           []string                   `json:"warnings,omitempty"`
}

// AnalyzeAssemblage compares assembling two or more contiguous lots
// against developing them individually. Contiguity is validated by
// block adjacency: lots must sit on at most two blocks with lot
// numbers within a plausible gap.
func AnalyzeAssemblage(lots []model.LotProfile, calc Analyzer) (*AssemblageAnalysis, error) {
	if len(lots) < 2 {
		return nil, errors.New("assemblage requires at least 2 lots")
	}
	if err := validateBlockAdjacency(lots); err != nil {
		return nil, err
	}

	var warnings []string

	individual := make([]*model.CalculationResult, 0, len(lots))
	for _, lot := range lots {
		res, err := calc.Analyze(lot)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Error analyzing lot %s: %v", lot.BBL, err))
			res = &model.CalculationResult{}
		}
		individual = append(individual, res)
	}

	merged, mergeWarnings := MergeLots(lots)
	warnings = append(warnings, mergeWarnings...)

	mergedAnalysis, err := calc.Analyze(merged)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Error analyzing merged lot: %v", err))
		mergedAnalysis = &model.CalculationResult{}
	}

	delta := calculateDelta(lots, individual, merged, mergedAnalysis)
	delta.KeyUnlocks = identifyKeyUnlocks(lots, merged, delta)

	return &AssemblageAnalysis{
		IndividualLots:     lots,
		IndividualAnalyses: individual,
		MergedLot:          merged,
		MergedAnalysis:     mergedAnalysis,
		Delta:              delta,
		ContiguityMethod:   "block_adjacency",
		Warnings:           warnings,
	}, nil
}

// validateBlockAdjacency rejects lot sets that plainly cannot be
// contiguous: spanning more than two blocks, or lot numbers on the
// same block with a gap above 10.
func validateBlockAdjacency(lots []model.LotProfile) error {
	blocks := map[int][]model.LotProfile{}
	for _, l := range lots {
		blocks[l.Block] = append(blocks[l.Block], l)
	}
	if len(blocks) > 2 {
		return errors.New("lots span more than 2 blocks, likely not contiguous")
	}
	for blockNum, blockLots := range blocks {
		nums := make([]int, 0, len(blockLots))
		for _, l := range blockLots {
			nums = append(nums, l.Lot)
		}
		sort.Ints(nums)
		for i := 0; i+1 < len(nums); i++ {
			gap := nums[i+1] - nums[i]
			if gap > 10 {
				return fmt.Errorf(
					"lot numbers on block %d are not adjacent (gap of %d between lots %d and %d)",
					blockNum, gap, nums[i], nums[i+1])
			}
		}
	}
	return nil
}

// MergeLots builds the merged zoning lot profile: summed area and
// frontage, deepest depth, widest street, and the union of districts
// and overlays. The pseudo lot number 9999 marks the merged parcel.
func MergeLots(lots []model.LotProfile) (model.LotProfile, []string) {
	var warnings []string
	first := lots[0]

	var mergedArea, mergedFrontage, mergedDepth float64
	for _, l := range lots {
		mergedArea += l.LotArea
		mergedFrontage += l.LotFrontage
		if l.LotDepth > mergedDepth {
			mergedDepth = l.LotDepth
		}
	}
	if mergedDepth == 0 {
		mergedDepth = 100
	}

	districts := uniqueOrdered(collect(lots, func(l model.LotProfile) []string { return l.ZoningDistricts }))
	overlays := uniqueOrdered(collect(lots, func(l model.LotProfile) []string { return l.Overlays }))
	specials := uniqueOrdered(collect(lots, func(l model.LotProfile) []string { return l.SpecialDistricts }))

	isSplit := len(districts) > 1
	if isSplit {
		warnings = append(warnings, fmt.Sprintf(
			"Merged lot spans multiple zoning districts: %s. Split-zone rules (ZR 77-02/03) may allow FAR averaging.",
			strings.Join(districts, ", ")))
	}

	streetWidth := model.StreetNarrow
	var streetWidthFt float64
	for _, l := range lots {
		if l.IsWideStreet() {
			streetWidth = model.StreetWide
		}
		if l.StreetWidthFt > streetWidthFt {
			streetWidthFt = l.StreetWidthFt
		}
	}

	mihOption := ""
	isMIH := false
	for _, l := range lots {
		if l.IsMIHArea {
			isMIH = true
		}
		if mihOption == "" && l.MIHOption != "" {
			mihOption = l.MIHOption
		}
	}

	bbls := make([]string, len(lots))
	for i, l := range lots {
		bbls[i] = l.BBL
	}
	mergedBBL := first.BBL
	if len(mergedBBL) >= 6 {
		mergedBBL = mergedBBL[:6] + "9999"
	}

	merged := model.LotProfile{
		BBL:     mergedBBL,
		Address: fmt.Sprintf("Assembled: %d lots", len(lots)),
		Borough: first.Borough,
		Block:   first.Block,
		Lot:     9999,
		Lat:     first.Lat,
		Lon:     first.Lon,
		Pluto: &model.PlutoData{
			BBL:      mergedBBL,
			Address:  "Assemblage: " + strings.Join(bbls, ", "),
			LotArea:  mergedArea,
			LotFront: mergedFrontage,
			LotDepth: mergedDepth,
			CD:       first.CommunityDistrict,
		},
		ZoningDistricts:   districts,
		Overlays:          overlays,
		SpecialDistricts:  specials,
		SplitZone:         isSplit,
		LotArea:           mergedArea,
		LotFrontage:       mergedFrontage,
		LotDepth:          mergedDepth,
		LotType:           mergedLotType(lots),
		StreetWidth:       streetWidth,
		StreetWidthFt:     streetWidthFt,
		IsMIHArea:         isMIH,
		MIHOption:         mihOption,
		CommunityDistrict: first.CommunityDistrict,
	}
	return merged, warnings
}

// mergedLotType classifies the assembled site. Any corner lot keeps
// the merger a corner; lots fronting different streets on one block
// form a through lot; otherwise the site stays interior.
func mergedLotType(lots []model.LotProfile) string {
	streets := map[string]bool{}
	blocks := map[int]bool{}
	for _, l := range lots {
		if l.LotType == model.LotCorner {
			return model.LotCorner
		}
		blocks[l.Block] = true
		if l.Address != "" {
			parts := strings.SplitN(strings.TrimSpace(l.Address), " ", 2)
			if len(parts) == 2 {
				streets[strings.ToUpper(parts[1])] = true
			}
		}
	}
	if len(streets) >= 2 {
		if len(blocks) == 1 {
			return model.LotThrough
		}
		return model.LotCorner
	}
	return model.LotInterior
}

func collect(lots []model.LotProfile, f func(model.LotProfile) []string) []string {
	var out []string
	for _, l := range lots {
		out = append(out, f(l)...)
	}
	return out
}

func uniqueOrdered(items []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range items {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

type scenarioSums struct {
	grossSF    float64
	zfa        float64
	height     float64
	units      int
	parking    int
	lossFactor float64
	lossCount  int
}

func calculateDelta(lots []model.LotProfile, individual []*model.CalculationResult, merged model.LotProfile, mergedAnalysis *model.CalculationResult) AssemblageDelta {
	var individualArea, individualFrontage float64
	for _, l := range lots {
		individualArea += l.LotArea
		individualFrontage += l.LotFrontage
	}

	lotTypeChange := ""
	types := map[string]bool{}
	for _, l := range lots {
		types[l.LotType] = true
	}
	if merged.LotType != lots[0].LotType || len(types) > 1 {
		var parts []string
		for _, l := range lots {
			parts = append(parts, fmt.Sprintf("%s: %s", l.BBL, l.LotType))
		}
		lotTypeChange = strings.Join(parts, ", ") + " -> " + merged.LotType
	}

	sums := map[string]*scenarioSums{}
	for _, a := range individual {
		if a == nil {
			continue
		}
		for _, sc := range a.Scenarios {
			s, ok := sums[sc.Name]
			if !ok {
				s = &scenarioSums{}
				sums[sc.Name] = s
			}
			s.grossSF += sc.TotalGrossSF
			s.zfa += sc.ZoningFloorArea
			if sc.MaxHeightFt > s.height {
				s.height = sc.MaxHeightFt
			}
			s.units += sc.TotalUnits
			if sc.Parking != nil {
				s.parking += sc.Parking.TotalSpaces
			}
			if sc.LossFactor != nil {
				s.lossFactor += sc.LossFactor.LossFactorPct
				s.lossCount++
			}
		}
	}
	for _, s := range sums {
		if s.lossCount > 0 {
			s.lossFactor /= float64(s.lossCount)
		}
	}

	var deltas []ScenarioDelta
	mergedArea := merged.LotArea
	if mergedArea == 0 {
		mergedArea = 1
	}
	if mergedAnalysis != nil {
		for _, sc := range mergedAnalysis.Scenarios {
			s := sums[sc.Name]
			if s == nil {
				s = &scenarioSums{}
			}
			mergedParking := 0
			if sc.Parking != nil {
				mergedParking = sc.Parking.TotalSpaces
			}
			mergedLF := 0.0
			if sc.LossFactor != nil {
				mergedLF = sc.LossFactor.LossFactorPct
			}

			mergedFAR := math.Round(sc.ZoningFloorArea/mergedArea*100) / 100
			indFAR := 0.0
			if individualArea > 0 {
				indFAR = math.Round(s.zfa/individualArea*100) / 100
			}

			additionalSF := sc.TotalGrossSF - s.grossSF
			var notes []string
			if additionalSF > 0 {
				notes = append(notes, fmt.Sprintf("Assemblage unlocks %.0f additional buildable SF.", additionalSF))
			}
			if sc.MaxHeightFt > s.height {
				notes = append(notes, fmt.Sprintf("Max height increases from %.0f ft to %.0f ft.", s.height, sc.MaxHeightFt))
			}
			if mergedFAR > indFAR {
				notes = append(notes, fmt.Sprintf("Effective FAR increases from %.2f to %.2f.", indFAR, mergedFAR))
			}

			deltas = append(deltas, ScenarioDelta{
				ScenarioName:          sc.Name,
				FARDelta:              math.Round((mergedFAR-indFAR)*100) / 100,
				ZFADelta:              math.Round(sc.ZoningFloorArea - s.zfa),
				HeightDelta:           math.Round(sc.MaxHeightFt - s.height),
				UnitCountDelta:        sc.TotalUnits - s.units,
				ParkingDelta:          mergedParking - s.parking,
				LossFactorDelta:       math.Round((mergedLF-s.lossFactor)*10) / 10,
				AdditionalBuildableSF: math.Round(additionalSF),
				Notes:                 notes,
			})
		}
	}

	return AssemblageDelta{
		LotAreaChange: math.Round(merged.LotArea - individualArea),
		LotTypeChange: lotTypeChange,
		StreetFrontage: FrontageChange{
			IndividualTotalFt: math.Round(individualFrontage*10) / 10,
			MergedFt:          math.Round(merged.LotFrontage*10) / 10,
			ChangeFt:          math.Round((merged.LotFrontage-individualFrontage)*10) / 10,
		},
		FootprintGainSF: math.Round(footprintGain(lots)),
		ScenarioDeltas:  deltas,
	}
}

// footprintGain approximates the buildable footprint recovered when
// side lot lines between assembled lots disappear. Assumes a typical
// 5 ft side yard and 30 ft rear yard; districts without side yards
// gain through a more efficient plate instead.
func footprintGain(lots []model.LotProfile) float64 {
	n := len(lots)
	if n < 2 {
		return 0
	}
	var depthSum float64
	for _, l := range lots {
		d := l.LotDepth
		if d == 0 {
			d = 100
		}
		depthSum += d
	}
	avgDepth := depthSum / float64(n)
	const sideYard, rearYard = 5.0, 30.0
	gain := float64(n-1) * 2 * sideYard * (avgDepth - rearYard)
	return math.Max(0, gain)
}

func identifyKeyUnlocks(lots []model.LotProfile, merged model.LotProfile, delta AssemblageDelta) []string {
	var unlocks []string

	types := map[string]bool{}
	var maxFrontage, maxArea float64
	districts := map[string]bool{}
	for _, l := range lots {
		types[l.LotType] = true
		if l.LotFrontage > maxFrontage {
			maxFrontage = l.LotFrontage
		}
		if l.LotArea > maxArea {
			maxArea = l.LotArea
		}
		for _, d := range l.ZoningDistricts {
			districts[d] = true
		}
	}

	if merged.LotType == model.LotThrough && !types[model.LotThrough] {
		unlocks = append(unlocks,
			"Assemblage creates a through lot. Rear yard equivalent rules (ZR 23-532) apply instead of "+
				"standard rear yard and may allow full lot coverage with the equivalent distributed across upper floors.")
	}
	if merged.LotType == model.LotCorner && !types[model.LotCorner] {
		unlocks = append(unlocks,
			"Assemblage creates a corner lot. Height and setback rules change per ZR 23-632/633; corner lots "+
				"may have higher lot coverage and different height transitions.")
	}
	if merged.LotFrontage >= 100 && maxFrontage < 100 {
		unlocks = append(unlocks,
			"Merged lot width exceeds 100 ft: tower-on-base rules may apply in R9/R10 districts.")
	}
	if merged.LotFrontage >= 45 && maxFrontage < 45 {
		unlocks = append(unlocks,
			"Merged lot width exceeds 45 ft: sliver law height restriction no longer applies (ZR 23-692).")
	}
	if merged.LotArea >= 10000 && maxArea < 10000 {
		unlocks = append(unlocks,
			"Merged lot exceeds 10,000 SF: different lot coverage and open space rules may apply.")
	}
	if merged.LotArea >= 5000 && maxArea < 5000 {
		unlocks = append(unlocks,
			"Merged lot exceeds 5,000 SF: more efficient building footprint and lower loss factor achievable.")
	}
	if delta.FootprintGainSF > 0 {
		unlocks = append(unlocks, fmt.Sprintf(
			"Elimination of side yards between lots increases buildable footprint by approximately %.0f SF per floor.",
			delta.FootprintGainSF))
	}
	if len(districts) > 1 {
		var names []string
		for d := range districts {
			names = append(names, d)
		}
		sort.Strings(names)
		unlocks = append(unlocks, fmt.Sprintf(
			"Individual lots are in different districts (%s). Assemblage may allow FAR averaging across the site (ZR 77-02/03).",
			strings.Join(names, ", ")))
	}
	if len(delta.ScenarioDeltas) > 0 {
		best := delta.ScenarioDeltas[0]
		for _, d := range delta.ScenarioDeltas[1:] {
			if d.AdditionalBuildableSF > best.AdditionalBuildableSF {
				best = d
			}
		}
		if best.AdditionalBuildableSF > 0 {
			unlocks = append(unlocks, fmt.Sprintf(
				"Best scenario (%s) unlocks %.0f additional buildable SF and %d additional units.",
				best.ScenarioName, best.AdditionalBuildableSF, best.UnitCountDelta))
		}
	}
	return unlocks
}
