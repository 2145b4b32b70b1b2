package engine

import (
	"errors"

	"zoning-feasibility/internal/analysis"
	"zoning-feasibility/internal/model"
)

// AnalyzeAssemblage studies assembling the given lots into one zoning
// lot. keep parallels lots: true keeps that lot's existing building in
// place, which charges its floor area against the merged allowable ZFA
// and scales every merged scenario down to the developable remainder.
func (c *Calculator) AnalyzeAssemblage(lots []model.LotProfile, keep []bool) (*analysis.AssemblageAnalysis, error) {
	study, err := analysis.AnalyzeAssemblage(lots, c)
	if err != nil {
		return nil, err
	}

	if anyKept(keep) {
		merged := study.MergedAnalysis
		if merged == nil || merged.Envelope == nil {
			return nil, errors.New("merged lot analysis did not produce an envelope")
		}
		airRights := analysis.CalculateAirRights(lots, keep, *merged.Envelope, study.MergedLot.LotArea)
		merged.AirRights = &airRights
		merged.Scenarios = analysis.AdjustScenariosForAirRights(merged.Scenarios, airRights)
		merged.Scenarios = c.valuer.Rank(merged.Scenarios, study.MergedLot.Borough)
	}

	return study, nil
}

func anyKept(keep []bool) bool {
	for _, k := range keep {
		if k {
			return true
		}
	}
	return false
}
