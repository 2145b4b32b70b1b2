package zoning

import (
	"strings"

	"zoning-feasibility/internal/model"
)

// Industrial Business Zones: 16 mapped areas where residential,
// hotel, and self-storage conversions are restricted. Keyed as
// borough*100 + community district number.
var ibzCommunityDistricts = map[int]bool{
	201: true, 202: true, 206: true, 209: true,
	301: true, 306: true, 307: true, 315: true, 317: true,
	401: true, 402: true, 405: true, 407: true, 412: true, 414: true,
	501: true, 502: true, 503: true,
}

var ibzUseRestrictions = []string{
	"No residential development or conversion",
	"No hotel development",
	"No self-storage or mini-storage facilities",
	"Manufacturing and industrial uses protected",
}

var iiaIncentives = []string{
	"Industrial & Commercial Abatement Program (ICAP) tax benefits",
	"Relocation & Employment Assistance Program (REAP)",
	"Enhanced energy cost savings for qualifying facilities",
	"Expedited permitting for industrial construction",
}

// IsIBZ reports whether the lot sits in an Industrial Business Zone.
// Requires both an M-district zoning and an IBZ community district.
func IsIBZ(lot model.LotProfile) bool {
	if lot.CommunityDistrict == 0 {
		return false
	}
	if !strings.HasPrefix(lot.PrimaryDistrict(), "M") {
		return false
	}
	return ibzCommunityDistricts[lot.CommunityDistrict]
}

// IBZRestrictions describes the use restrictions in an IBZ.
type IBZRestrictions struct {
	Name           string   `json:"name"`
	Restrictions   []string `json:"restrictions"`
	UseRestriction string   `json:"use_restriction"`
	SourceZR       string   `json:"source_zr"`
	Description    string   `json:"description"`
}

// GetIBZRestrictions returns the IBZ restrictions, or nil when the
// lot is not in one.
func GetIBZRestrictions(lot model.LotProfile) *IBZRestrictions {
	if !IsIBZ(lot) {
		return nil
	}
	return &IBZRestrictions{
		Name:           "Industrial Business Zone (IBZ)",
		Restrictions:   ibzUseRestrictions,
		UseRestriction: "no_residential",
		SourceZR:       "NYC Executive Order (2006)",
		Description: "Industrial Business Zone: residential, hotel, and " +
			"self-storage conversions are restricted. Manufacturing and industrial uses protected.",
	}
}

// IsIIAEligible reports Industrial Incentive Area eligibility: an IBZ
// lot zoned M1-M3.
func IsIIAEligible(lot model.LotProfile) bool {
	if !IsIBZ(lot) {
		return false
	}
	d := lot.PrimaryDistrict()
	return strings.HasPrefix(d, "M1") || strings.HasPrefix(d, "M2") || strings.HasPrefix(d, "M3")
}

// IIAIncentives describes the tax and permitting benefits available
// in an Industrial Incentive Area.
type IIAIncentives struct {
	Name        string   `json:"name"`
	Incentives  []string `json:"incentives"`
	SourceZR    string   `json:"source_zr"`
	Description string   `json:"description"`
}

// GetIIAIncentives returns IIA benefits, or nil if ineligible.
func GetIIAIncentives(lot model.LotProfile) *IIAIncentives {
	if !IsIIAEligible(lot) {
		return nil
	}
	return &IIAIncentives{
		Name:       "Industrial Incentive Area (IIA)",
		Incentives: iiaIncentives,
		SourceZR:   "NYC IIA Designation (ULURP 2022)",
		Description: "Site in Industrial Incentive Area. Tax benefits and " +
			"expedited permitting available for qualifying industrial development.",
	}
}
