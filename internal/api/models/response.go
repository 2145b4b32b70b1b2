package models

import (
	"zoning-feasibility/internal/model"
	"zoning-feasibility/internal/zoning"
)

// AnalyzeResponse wraps a calculation result with request metadata.
type AnalyzeResponse struct {
	Status string                   `json:"status"`
	Cached bool                     `json:"cached,omitempty"`
	Result *model.CalculationResult `json:"result"`
}

// DistrictResponse describes one zoning district's rule tables.
type DistrictResponse struct {
	District      string                   `json:"district"`
	BaseDistrict  string                   `json:"base_district"`
	FAR           zoning.FAREntry          `json:"far"`
	PermittedUses zoning.PermittedUses     `json:"permitted_uses"`
	BuildingType  zoning.BuildingTypeRules `json:"building_type"`
	Heights       zoning.HeightRules       `json:"heights"`
	MIHBonusFAR   float64                  `json:"mih_bonus_far,omitempty"`
}

// ProgramInfo describes one registered zoning program.
type ProgramInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Citation    string `json:"citation,omitempty"`
}

// ProgramsResponse lists programs, optionally with per-lot results when
// the request supplied a district or profile to check against.
type ProgramsResponse struct {
	Programs []ProgramInfo         `json:"programs"`
	Results  []model.ProgramResult `json:"results,omitempty"`
	Count    int                   `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
