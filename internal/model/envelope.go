package model

// SkyExposurePlane describes the Height Factor sloped plane above the
// front wall.
type SkyExposurePlane struct {
	StartHeightFt float64 `json:"start_height_ft"`
	Slope         float64 `json:"slope"` // vertical rise per 1 ft horizontal
}

// SetbackRules holds required setbacks around and above the base.
type SetbackRules struct {
	Front                 float64 `json:"front"`
	Rear                  float64 `json:"rear"`
	SideEach              float64 `json:"side_each"`
	FrontSetbackAboveBase float64 `json:"front_setback_above_base"`
}

// ZoningEnvelope is the resolved bulk parameters for one lot. Built
// once by the calculator and read-only afterward. At most one of the
// Height Factor / Quality Housing paths is active in any scenario.
type ZoningEnvelope struct {
	ResidentialFAR   float64 `json:"residential_far,omitempty"`
	CommercialFAR    float64 `json:"commercial_far,omitempty"`
	CommunityFAR     float64 `json:"cf_far,omitempty"`
	ManufacturingFAR float64 `json:"manufacturing_far,omitempty"`

	MaxResidentialZFA float64 `json:"max_residential_zfa,omitempty"`
	MaxCommercialZFA  float64 `json:"max_commercial_zfa,omitempty"`
	MaxCommunityZFA   float64 `json:"max_cf_zfa,omitempty"`

	IHBonusFAR float64 `json:"ih_bonus_far,omitempty"`

	BaseHeightMin     float64           `json:"base_height_min,omitempty"`
	BaseHeightMax     float64           `json:"base_height_max,omitempty"`
	MaxBuildingHeight float64           `json:"max_building_height,omitempty"`
	SkyExposure       *SkyExposurePlane `json:"sky_exposure_plane,omitempty"`
	Setbacks          *SetbackRules     `json:"setbacks,omitempty"`

	FrontYard         float64 `json:"front_yard"`
	RearYard          float64 `json:"rear_yard"`
	RearYardEquivalent float64 `json:"rear_yard_equivalent,omitempty"`
	SideYardsRequired bool    `json:"side_yards_required"`
	SideYardWidth     float64 `json:"side_yard_width,omitempty"`

	LotCoverageMax float64 `json:"lot_coverage_max,omitempty"` // percent, 0 = no limit

	QualityHousing bool `json:"quality_housing"`
	HeightFactor   bool `json:"height_factor"`
}
