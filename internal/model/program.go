package model

// Program categories.
const (
	CategoryAffordable      = "affordable_housing"
	CategoryBonus           = "bonus"
	CategorySpecialDistrict = "special_district"
	CategoryTDR             = "tdr"
	CategoryLargeScale      = "large_scale"
	CategoryUseFlexibility  = "use_flexibility"
	CategoryBulk            = "bulk"
	CategoryResilience      = "resilience"
)

// ProgramEffect quantifies what an applicable program changes. FAR and
// height bonuses are additive; overrides replace the base value.
type ProgramEffect struct {
	FARBonus            float64  `json:"far_bonus,omitempty"`
	FAROverride         float64  `json:"far_override,omitempty"`
	HeightBonusFt       float64  `json:"height_bonus_ft,omitempty"`
	HeightOverrideFt    float64  `json:"height_override_ft,omitempty"`
	ParkingReductionPct float64  `json:"parking_reduction_pct,omitempty"`
	UseRestrictions     []string `json:"use_restrictions,omitempty"`
	UseAllowances       []string `json:"use_allowances,omitempty"`
	MandatoryAffordablePct float64 `json:"mandatory_affordable_pct,omitempty"`
}

// ProgramResult is the outcome of evaluating one regulatory program
// against a lot. Applicable means the program was triggered for this
// lot; Eligible means its preconditions are met. Effect is populated
// only when Applicable. Error carries the failure text when a check
// could not run; a failed check never aborts the others.
type ProgramResult struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	Applicable bool           `json:"applicable"`
	Eligible   bool           `json:"eligible"`
	Effect     *ProgramEffect `json:"effect,omitempty"`
	Rationale  string         `json:"rationale,omitempty"`
	Citation   string         `json:"citation,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// EffectsSummary aggregates effects across all applicable programs.
// FAR and height bonuses sum; affordability mandates do not stack, so
// the maximum percentage wins.
type EffectsSummary struct {
	TotalFARBonus       float64  `json:"total_far_bonus"`
	TotalHeightBonusFt  float64  `json:"total_height_bonus_ft"`
	MaxParkingReduction float64  `json:"max_parking_reduction_pct"`
	MandatoryAffordable float64  `json:"mandatory_affordable_pct"`
	UseRestrictions     []string `json:"use_restrictions,omitempty"`
	UseAllowances       []string `json:"use_allowances,omitempty"`
	ApplicableKeys      []string `json:"applicable_programs"`
}
