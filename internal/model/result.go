package model

// Disclaimer attached to every valuation-bearing output. Figures are
// planning estimates, not appraisals or legal determinations.
const Disclaimer = "Estimates only. Not an appraisal, offering, or legal determination of development rights. Verify with a licensed professional."

// SpecialDistrictSummary is the per-district line item in
// SpecialDistrictInfo.
type SpecialDistrictSummary struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	HasFAROverride bool   `json:"has_far_override"`
}

// SpecialDistrictInfo summarizes special-district applicability.
// Bonuses holds the zoning package's bonus opportunity rows.
type SpecialDistrictInfo struct {
	Applicable            bool                     `json:"applicable"`
	Districts             []SpecialDistrictSummary `json:"districts,omitempty"`
	Bonuses               any                      `json:"bonuses,omitempty"`
	MandatoryInclusionary bool                     `json:"mandatory_inclusionary"`
	TDRAvailable          bool                     `json:"tdr_available"`
}

// AirRightsLot is the per-lot detail of an assemblage.
type AirRightsLot struct {
	BBL              string  `json:"bbl"`
	LotArea          float64 `json:"lot_area"`
	Kept             bool    `json:"kept"`
	ExistingBuildingSF float64 `json:"existing_building_sf"`
	OwnAllowableZFA  float64 `json:"own_allowable_zfa"`
	UnusedZFA        float64 `json:"unused_zfa"`
}

// AirRightsResult nets unused development rights across a merged site.
// DevelopableZFA floors at zero regardless of kept building area.
type AirRightsResult struct {
	MergedLotArea      float64        `json:"merged_lot_area"`
	DevelopmentLotArea float64        `json:"development_lot_area"`
	ApplicableFAR      float64        `json:"applicable_far"`
	TotalAllowableZFA  float64        `json:"total_allowable_zfa"`
	KeptBuildingSF     float64        `json:"kept_building_sf"`
	DevelopableZFA     float64        `json:"developable_zfa"`
	Lots               []AirRightsLot `json:"lots,omitempty"`
}

// CalculationResult is the top-level output for one request. Built
// fresh per call; the engine never persists it. BuildingType,
// StreetWall, and CityOfYes hold the zoning package's rule structs;
// they are typed any only to keep this package free of upward imports.
type CalculationResult struct {
	Lot              *LotProfile           `json:"lot_profile"`
	Envelope         *ZoningEnvelope       `json:"zoning_envelope"`
	Scenarios        []DevelopmentScenario `json:"scenarios"`
	BuildingType     any                   `json:"building_type,omitempty"`
	StreetWall       any                   `json:"street_wall,omitempty"`
	SpecialDistricts *SpecialDistrictInfo  `json:"special_districts,omitempty"`
	CityOfYes        any                   `json:"city_of_yes,omitempty"`
	Programs         []ProgramResult       `json:"programs,omitempty"`
	ProgramEffects   *EffectsSummary       `json:"program_effects_summary,omitempty"`
	AirRights        *AirRightsResult      `json:"air_rights,omitempty"`
	Disclaimer       string                `json:"disclaimer"`
}
