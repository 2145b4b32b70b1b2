package models

import "zoning-feasibility/internal/model"

// AnalyzeRequest represents the request body for a single-lot analysis.
// Either a full lot profile or a BBL to resolve through PLUTO must be
// provided; an explicit profile wins.
type AnalyzeRequest struct {
	BBL     string            `json:"bbl,omitempty"`
	Lot     *model.LotProfile `json:"lot,omitempty"`
	Options AnalyzeOptions    `json:"options,omitempty"`
}

// AnalyzeOptions contains optional analysis parameters.
type AnalyzeOptions struct {
	MIHOption     string  `json:"mih_option,omitempty"`      // option_1, option_2, deep_affordability, workforce
	StreetWidthFt float64 `json:"street_width_ft,omitempty"` // overrides the profile's mapped width
	SkipCache     bool    `json:"skip_cache,omitempty"`
}

// AssemblageRequest represents the request body for an assemblage
// study. KeepBuildings parallels Lots; true keeps that lot's existing
// building and charges its floor area against the merged development
// rights.
type AssemblageRequest struct {
	Lots          []model.LotProfile `json:"lots" binding:"required"`
	KeepBuildings []bool             `json:"keep_buildings,omitempty"`
}
