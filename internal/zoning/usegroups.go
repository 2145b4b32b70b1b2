package zoning

import (
	"regexp"
	"strings"
)

// Use Group descriptions, ZR Article II-IV.
var useGroupNames = map[int]string{
	1:  "Residences (1-2 family)",
	2:  "Residences (all types)",
	3:  "Community Facilities (schools, libraries, museums)",
	4:  "Community Facilities (houses of worship, hospitals)",
	5:  "Hotels, transient accommodations",
	6:  "Retail (general), eating/drinking, offices",
	7:  "Home furnishings, large retail",
	8:  "Amusement, recreation (indoor)",
	9:  "Retail (general), service establishments",
	10: "Retail (larger), home maintenance services",
	11: "Custom manufacturing, retail (specialized)",
	12: "General service, amusement (outdoor), auto",
	13: "Automotive, boating, open amusements",
	14: "Amusements, boating (large-scale)",
	15: "Light manufacturing",
	16: "Heavy commercial, some manufacturing",
	17: "Manufacturing (general)",
	18: "Heavy manufacturing",
}

// As-of-right use groups per base district.
var districtUseGroups = map[string][]int{
	"R1":  {1, 3, 4},
	"R2":  {1, 3, 4},
	"R3":  {1, 2, 3, 4},
	"R4":  {1, 2, 3, 4},
	"R5":  {1, 2, 3, 4},
	"R6":  {1, 2, 3, 4},
	"R7":  {1, 2, 3, 4},
	"R8":  {1, 2, 3, 4},
	"R9":  {1, 2, 3, 4},
	"R10": {1, 2, 3, 4},

	"C1": {1, 2, 3, 4, 5, 6},
	"C2": {1, 2, 3, 4, 5, 6, 9},
	"C3": {1, 2, 3, 4, 6, 9, 12},
	"C4": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	"C5": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"C6": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	"C7": {8, 14},
	"C8": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 16},

	"M1": {3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 16, 17},
	"M2": {15, 16, 17},
	"M3": {15, 16, 17, 18},
}

// PermittedUses is the use permission summary for a district.
type PermittedUses struct {
	UseGroups                      []int          `json:"use_groups"`
	UseGroupNames                  map[int]string `json:"use_group_names"`
	ResidentialAllowed             bool           `json:"residential_allowed"`
	CommunityFacilityAllowed       bool           `json:"community_facility_allowed"`
	CommercialAllowed              bool           `json:"commercial_allowed"`
	ManufacturingAllowed           bool           `json:"manufacturing_allowed"`
	GroundFloorCommercialRequired  bool           `json:"ground_floor_commercial_required"`
	GroundFloorCommercialPermitted bool           `json:"ground_floor_commercial_permitted"`
}

var useBaseRe = regexp.MustCompile(`^(R\d+|C\d+|M\d+)`)

func useBaseDistrict(district string) string {
	if m := useBaseRe.FindString(district); m != "" {
		return m
	}
	return district
}

// Districts that mandate active ground-floor uses.
var groundFloorRequired = map[string]bool{
	"C4-5X": true, "C4-5D": true, "C6-3A": true, "C6-3X": true,
}

// GetPermittedUses returns the use-group permissions for a district.
// Unknown districts carry an empty use-group set with all flags false.
func GetPermittedUses(district string) PermittedUses {
	d := NormalizeDistrict(district)
	base := useBaseDistrict(d)

	groups := districtUseGroups[base]
	names := make(map[int]string, len(groups))
	for _, ug := range groups {
		names[ug] = useGroupNames[ug]
	}

	return PermittedUses{
		UseGroups:                      groups,
		UseGroupNames:                  names,
		ResidentialAllowed:             containsAny(groups, 1, 2),
		CommunityFacilityAllowed:       containsAny(groups, 3, 4),
		CommercialAllowed:              containsAny(groups, 5, 6, 7, 8, 9, 10, 11),
		ManufacturingAllowed:           containsAny(groups, 15, 16, 17, 18),
		GroundFloorCommercialRequired:  groundFloorRequired[d],
		GroundFloorCommercialPermitted: strings.HasPrefix(base, "C") || strings.HasPrefix(base, "M1"),
	}
}

func containsAny(groups []int, want ...int) bool {
	for _, g := range groups {
		for _, w := range want {
			if g == w {
				return true
			}
		}
	}
	return false
}
