package model

// ParkingOption is one way of physically providing the required spaces.
type ParkingOption struct {
	Type           string  `json:"type"` // surface, below_grade, structure
	SFPerSpace     int     `json:"sf_per_space"`
	TotalSF        int     `json:"total_sf"`
	EstimatedCost  int     `json:"estimated_cost,omitempty"`
	FloorsConsumed float64 `json:"floors_consumed,omitempty"`
}

// ParkingResult is the full parking requirement for one scenario.
type ParkingResult struct {
	ResidentialSpaces int             `json:"residential_spaces_required"`
	CommercialSpaces  int             `json:"commercial_spaces_required"`
	TotalSpaces       int             `json:"total_spaces_required"`
	AccessibleSpaces  int             `json:"accessible_spaces_required"`
	BicycleSpaces     int             `json:"bicycle_spaces_required"`
	BikeRoomSF        float64         `json:"bike_room_sf,omitempty"`
	LoadingBerths     int             `json:"loading_berths_required"`
	WaiverEligible    bool            `json:"waiver_eligible"`
	WaiverReason      string          `json:"waiver_reason,omitempty"`
	ParkingZone       string          `json:"parking_zone,omitempty"`
	Options           []ParkingOption `json:"parking_options,omitempty"`
}

// CoreEstimate sizes the vertical core for a floor plate.
type CoreEstimate struct {
	Elevators          int     `json:"elevators"`
	Stairs             int     `json:"stairs"`
	ElevatorSFPerFloor float64 `json:"elevator_sf_per_floor"`
	StairSFPerFloor    float64 `json:"stair_sf_per_floor"`
	MechanicalSFPerFloor float64 `json:"mechanical_sf_per_floor"`
	CorridorSFPerFloor float64 `json:"corridor_sf_per_floor"`
	TotalCoreSFPerFloor float64 `json:"total_core_sf_per_floor"`
	CorePercentage     float64 `json:"core_percentage"`
}

// UnitMix is one unit type's share of the program.
type UnitMix struct {
	Type  string `json:"type"` // studio, 1br, 2br, 3br
	Count int    `json:"count"`
	AvgSF int    `json:"avg_sf"`
}

// UnitMixResult summarizes the residential program.
type UnitMixResult struct {
	Units         []UnitMix `json:"units"`
	TotalUnits    int       `json:"total_units"`
	AverageUnitSF float64   `json:"average_unit_sf"`
	UnitsPerFloor float64   `json:"units_per_floor"`
}

// LossFactorResult relates gross area to rentable area.
type LossFactorResult struct {
	GrossBuildingArea float64 `json:"gross_building_area"`
	TotalCommonArea   float64 `json:"total_common_area"`
	NetRentableArea   float64 `json:"net_rentable_area"`
	LossFactorPct     float64 `json:"loss_factor_pct"`
	EfficiencyRatio   float64 `json:"efficiency_ratio"`
}

// MassingFloor is one floor of the massing stack.
type MassingFloor struct {
	Floor    int     `json:"floor"`
	Use      string  `json:"use"` // residential, commercial, community_facility, parking
	GrossSF  float64 `json:"gross_sf"`
	NetSF    float64 `json:"net_sf"`
	HeightFt float64 `json:"height_ft"`
}

// ExemptionResult is the FAR-exempt share of gross area per ZR 12-10.
// GrossBuildingArea = zoning floor area + exempt area: what actually
// gets built versus what counts against FAR.
type ExemptionResult struct {
	TotalExemptSF     float64            `json:"total_exempt_sf"`
	GrossBuildingArea float64            `json:"gross_building_area"`
	ExemptionRatio    float64            `json:"exemption_ratio"`
	Breakdown         map[string]float64 `json:"breakdown,omitempty"`
}

// DevelopmentScenario is one complete, internally consistent buildable
// outcome. Scenarios are independent full computations, not deltas of
// each other. FARUsed is always zoning floor area over lot area; gross
// SF includes exempt space and must never feed the FAR figure.
type DevelopmentScenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	TotalGrossSF    float64 `json:"total_gross_sf"`
	TotalNetSF      float64 `json:"total_net_sf"`
	ZoningFloorArea float64 `json:"zoning_floor_area"`

	ResidentialSF float64 `json:"residential_sf"`
	CommercialSF  float64 `json:"commercial_sf"`
	CommunitySF   float64 `json:"cf_sf"`
	ParkingSF     float64 `json:"parking_sf"`

	TotalUnits int               `json:"total_units"`
	UnitMix    *UnitMixResult    `json:"unit_mix,omitempty"`
	Parking    *ParkingResult    `json:"parking,omitempty"`
	LossFactor *LossFactorResult `json:"loss_factor,omitempty"`
	Core       *CoreEstimate     `json:"core,omitempty"`
	Exemptions *ExemptionResult  `json:"floor_area_exemptions,omitempty"`

	Floors      []MassingFloor `json:"floors,omitempty"`
	MaxHeightFt float64        `json:"max_height_ft"`
	NumFloors   int            `json:"num_floors"`
	FARUsed     float64        `json:"far_used"`

	EstimatedValue float64 `json:"estimated_value,omitempty"`
	BlendedPSF     float64 `json:"blended_psf,omitempty"`
	Rank           int     `json:"rank,omitempty"`
	HighestAndBest bool    `json:"highest_and_best_use,omitempty"`
}
