package analysis

import (
	"math"

	"zoning-feasibility/internal/model"
)

// CalculateAirRights nets unused development rights across a merged
// zoning lot. keepFlags parallels lots: true keeps that lot's existing
// building, whose floor area counts against the merged allowable ZFA.
// Applicable FAR is the higher of residential and commercial; community
// facility FAR is excluded.
func CalculateAirRights(lots []model.LotProfile, keepFlags []bool, envelope model.ZoningEnvelope, mergedLotArea float64) model.AirRightsResult {
	applicableFAR := envelope.ResidentialFAR
	if envelope.CommercialFAR > applicableFAR {
		applicableFAR = envelope.CommercialFAR
	}
	totalAllowable := mergedLotArea * applicableFAR

	result := model.AirRightsResult{
		MergedLotArea:     mergedLotArea,
		ApplicableFAR:     applicableFAR,
		TotalAllowableZFA: math.Round(totalAllowable),
	}

	for i, lot := range lots {
		keep := i < len(keepFlags) && keepFlags[i]
		bldgArea := lot.ExistingBuildingArea()

		detail := model.AirRightsLot{
			BBL:                lot.BBL,
			LotArea:            lot.LotArea,
			Kept:               keep,
			ExistingBuildingSF: bldgArea,
			OwnAllowableZFA:    math.Round(lot.LotArea * applicableFAR),
		}
		if keep {
			result.KeptBuildingSF += bldgArea
			detail.UnusedZFA = math.Round(lot.LotArea*applicableFAR - bldgArea)
		} else {
			result.DevelopmentLotArea += lot.LotArea
		}
		result.Lots = append(result.Lots, detail)
	}

	result.DevelopableZFA = math.Max(0, math.Round(totalAllowable-result.KeptBuildingSF))
	return result
}

// AdjustScenariosForAirRights caps each scenario's ZFA at the
// developable floor area, scaling units and per-use SF proportionally.
// Returns new scenario values; the input slice is untouched. Scenarios
// already within the cap pass through unchanged.
func AdjustScenariosForAirRights(scenarios []model.DevelopmentScenario, airRights model.AirRightsResult) []model.DevelopmentScenario {
	out := make([]model.DevelopmentScenario, len(scenarios))
	copy(out, scenarios)

	if airRights.DevelopableZFA <= 0 {
		return out
	}

	for i := range out {
		sc := &out[i]
		originalZFA := sc.ZoningFloorArea
		if originalZFA <= 0 {
			originalZFA = sc.TotalGrossSF
		}
		if originalZFA <= 0 || originalZFA <= airRights.DevelopableZFA {
			continue
		}

		ratio := airRights.DevelopableZFA / originalZFA
		sc.ZoningFloorArea = math.Round(airRights.DevelopableZFA)
		sc.TotalGrossSF = math.Round(sc.TotalGrossSF * ratio)
		sc.TotalNetSF = math.Round(sc.TotalNetSF * ratio)
		if sc.TotalUnits > 0 {
			units := int(math.Round(float64(sc.TotalUnits) * ratio))
			if units < 1 {
				units = 1
			}
			sc.TotalUnits = units
		}
		sc.ResidentialSF = math.Round(sc.ResidentialSF * ratio)
		sc.CommercialSF = math.Round(sc.CommercialSF * ratio)
		sc.CommunitySF = math.Round(sc.CommunitySF * ratio)
		if airRights.MergedLotArea > 0 {
			sc.FARUsed = math.Round(airRights.DevelopableZFA/airRights.MergedLotArea*100) / 100
		}
	}
	return out
}
