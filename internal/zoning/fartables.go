// Package zoning encodes the NYC Zoning Resolution rule tables and the
// calculation pipeline that composes them into buildable envelopes and
// development scenarios. Tables reflect the text as amended by City of
// Yes for Housing Opportunity (adopted December 5, 2024).
package zoning

import (
	"math"
	"regexp"
	"strings"

	"zoning-feasibility/internal/model"
)

// FAREntry is the bulk lookup result for one district. A zero-kind Far
// means the use is not permitted.
type FAREntry struct {
	Residential   model.Far
	Commercial    model.Far
	CommunityFac  model.Far
	Manufacturing model.Far
}

// Residential districts, ZR 23-22. Non-contextual R6-R10 carry a
// Height Factor ratio plus a Quality Housing ratio; R6/R7/R8 QH is
// street-width dependent (wide street outside the Manhattan Core gets
// the contextual-equivalent ratio).
var residentialFAR = map[string]FAREntry{
	"R1":    {Residential: model.FlatFar(0.50)},
	"R1-1":  {Residential: model.FlatFar(0.50)},
	"R1-2":  {Residential: model.FlatFar(0.50)},
	"R1-2A": {Residential: model.FlatFar(0.50)},
	"R2":    {Residential: model.FlatFar(0.50)},
	"R2A":   {Residential: model.FlatFar(0.50)},
	"R2X":   {Residential: model.FlatFar(0.50)},
	"R3-1":  {Residential: model.FlatFar(0.50)},
	"R3-2":  {Residential: model.FlatFar(0.50)},
	"R3A":   {Residential: model.FlatFar(0.50)},
	"R3X":   {Residential: model.FlatFar(0.50)},

	"R4":   {Residential: model.FlatFar(0.75), CommunityFac: model.FlatFar(2.0)},
	"R4-1": {Residential: model.FlatFar(0.75), CommunityFac: model.FlatFar(2.0)},
	"R4A":  {Residential: model.FlatFar(0.75), CommunityFac: model.FlatFar(2.0)},
	"R4B":  {Residential: model.FlatFar(0.90), CommunityFac: model.FlatFar(2.0)},

	"R5":  {Residential: model.FlatFar(1.25), CommunityFac: model.FlatFar(2.0)},
	"R5A": {Residential: model.FlatFar(1.10), CommunityFac: model.FlatFar(2.0)},
	"R5B": {Residential: model.FlatFar(1.35), CommunityFac: model.FlatFar(2.0)},
	"R5D": {Residential: model.FlatFar(2.00), CommunityFac: model.FlatFar(2.0)},

	"R6": {
		Residential:  model.DualFar(0.78, model.StreetWidthFar(3.0, 2.2)),
		CommunityFac: model.FlatFar(4.8),
	},
	"R6A": {Residential: model.FlatFar(3.0), CommunityFac: model.FlatFar(3.0)},
	"R6B": {Residential: model.FlatFar(2.0), CommunityFac: model.FlatFar(2.0)},
	"R6D": {Residential: model.FlatFar(2.50), CommunityFac: model.FlatFar(2.5)},

	"R7-1": {
		Residential:  model.DualFar(0.87, model.StreetWidthFar(4.0, 3.44)),
		CommunityFac: model.FlatFar(6.5),
	},
	"R7-2": {
		Residential:  model.DualFar(0.87, model.StreetWidthFar(4.0, 3.44)),
		CommunityFac: model.FlatFar(6.5),
	},
	"R7A": {Residential: model.FlatFar(4.0), CommunityFac: model.FlatFar(4.0)},
	"R7B": {Residential: model.FlatFar(3.0), CommunityFac: model.FlatFar(3.0)},
	"R7D": {Residential: model.FlatFar(4.66), CommunityFac: model.FlatFar(4.66)},
	"R7X": {Residential: model.FlatFar(5.0), CommunityFac: model.FlatFar(5.0)},

	"R8": {
		Residential:  model.DualFar(0.94, model.StreetWidthFar(7.2, 6.02)),
		CommunityFac: model.FlatFar(6.5),
	},
	"R8A": {Residential: model.FlatFar(6.02), CommunityFac: model.FlatFar(6.5)},
	"R8B": {Residential: model.FlatFar(4.0), CommunityFac: model.FlatFar(4.0)},
	"R8X": {Residential: model.FlatFar(6.02), CommunityFac: model.FlatFar(6.5)},

	"R9": {
		Residential:  model.DualFar(0.99, model.FlatFar(7.52)),
		CommunityFac: model.FlatFar(10.0),
	},
	"R9A": {Residential: model.FlatFar(7.52), CommunityFac: model.FlatFar(10.0)},
	"R9X": {Residential: model.FlatFar(9.0), CommunityFac: model.FlatFar(10.0)},
	"R9D": {Residential: model.FlatFar(9.0), CommunityFac: model.FlatFar(9.0)},

	"R10": {
		Residential:  model.DualFar(10.0, model.FlatFar(10.0)),
		CommunityFac: model.FlatFar(10.0),
	},
	"R10A": {Residential: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"R10X": {Residential: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},

	"R11": {Residential: model.FlatFar(12.0), CommunityFac: model.FlatFar(12.0)},
	"R12": {Residential: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
}

// Maximum FAR with Universal Affordability Preference housing
// (weighted average at or below 60% AMI). ZR 23-22 as amended.
var uapAffordableFAR = map[string]float64{
	"R6": 3.90, "R6A": 3.90, "R6B": 2.40, "R6D": 3.00,
	"R7-1": 5.01, "R7-2": 5.01, "R7A": 5.01, "R7B": 3.90,
	"R7D": 5.60, "R7X": 6.00,
	"R8": 7.20, "R8A": 7.20, "R8B": 4.80, "R8X": 7.20,
	"R9": 9.02, "R9A": 9.02, "R9D": 10.80, "R9X": 10.80,
	"R10": 12.00, "R10A": 12.00, "R10X": 12.00,
	"R11": 15.00, "R12": 18.00,
}

var commercialFAR = map[string]FAREntry{
	"C1-1":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C1-2":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C1-3":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C1-4":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.0)},
	"C1-5":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.0)},
	"C1-6":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C1-6A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(3.0)},
	"C1-7":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C1-7A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.0)},
	"C1-8":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.5)},
	"C1-8A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.02)},
	"C1-8X": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.02)},
	"C1-9":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(10.0)},
	"C1-9A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(7.52)},

	"C2-1":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C2-2":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C2-3":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C2-4":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.0)},
	"C2-5":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.0)},
	"C2-6":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C2-6A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(3.0)},
	"C2-7":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C2-7A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.0)},
	"C2-7X": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(5.0)},
	"C2-8":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.5)},
	"C2-8A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.02)},

	"C3":    {Commercial: model.FlatFar(0.50)},
	"C3A":   {Commercial: model.FlatFar(0.50)},
	"C4-1":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(1.0)},
	"C4-2":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(2.0)},
	"C4-2A": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(3.0)},
	"C4-2F": {Commercial: model.FlatFar(3.4), CommunityFac: model.FlatFar(3.4)},
	"C4-3":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C4-3A": {Commercial: model.FlatFar(3.0), CommunityFac: model.FlatFar(3.0)},
	"C4-4":  {Commercial: model.FlatFar(3.4), CommunityFac: model.FlatFar(6.5)},
	"C4-4A": {Commercial: model.FlatFar(4.0), CommunityFac: model.FlatFar(4.0)},
	"C4-4D": {Commercial: model.FlatFar(4.2), CommunityFac: model.FlatFar(4.2)},
	"C4-4L": {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.0)},
	"C4-5":  {Commercial: model.FlatFar(3.4), CommunityFac: model.FlatFar(6.5)},
	"C4-5A": {Commercial: model.FlatFar(4.0), CommunityFac: model.FlatFar(4.0)},
	"C4-5D": {Commercial: model.FlatFar(4.2), CommunityFac: model.FlatFar(4.2)},
	"C4-5X": {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(5.0)},
	"C4-6":  {Commercial: model.FlatFar(3.4), CommunityFac: model.FlatFar(6.5)},
	"C4-6A": {Commercial: model.FlatFar(6.02), CommunityFac: model.FlatFar(6.5)},
	"C4-7":  {Commercial: model.FlatFar(3.4), CommunityFac: model.FlatFar(6.5)},

	"C5-1":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C5-2":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C5-2.5": {Commercial: model.FlatFar(13.0), CommunityFac: model.FlatFar(13.0)},
	"C5-3":   {Commercial: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
	"C5-5":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C5-P":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},

	"C6-1":   {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.0)},
	"C6-1A":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.0)},
	"C6-1G":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.0)},
	"C6-2":   {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-2A":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-2G":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-2M":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-3":   {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-3A":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-3D":  {Commercial: model.FlatFar(6.0), CommunityFac: model.FlatFar(6.5)},
	"C6-3X":  {Commercial: model.FlatFar(9.0), CommunityFac: model.FlatFar(9.0)},
	"C6-4":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C6-4.5": {Commercial: model.FlatFar(12.0), CommunityFac: model.FlatFar(12.0)},
	"C6-4A":  {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C6-4M":  {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C6-4X":  {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C6-5":   {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0)},
	"C6-5.5": {Commercial: model.FlatFar(12.0), CommunityFac: model.FlatFar(12.0)},
	"C6-6":   {Commercial: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
	"C6-6.5": {Commercial: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
	"C6-7":   {Commercial: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
	"C6-7T":  {Commercial: model.FlatFar(15.0), CommunityFac: model.FlatFar(15.0)},
	"C6-9":   {Commercial: model.FlatFar(18.0), CommunityFac: model.FlatFar(18.0)},

	"C7": {Commercial: model.FlatFar(2.0)},

	"C8-1": {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.4)},
	"C8-2": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8)},
	"C8-3": {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.5)},
	"C8-4": {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(6.5)},
}

// Residential equivalents for mixed-use commercial districts. C1/C2
// districts take the mapped residential district; C4 and above use
// these fixed pairings.
var commercialResidentialEquivalents = map[string]string{
	"C4-1": "R5", "C4-2": "R6", "C4-2A": "R6A",
	"C4-2F": "R7A", "C4-3": "R7-1", "C4-3A": "R6A",
	"C4-4": "R8", "C4-4A": "R7A", "C4-4D": "R7D",
	"C4-4L": "R5", "C4-5": "R9", "C4-5A": "R7A",
	"C4-5D": "R7D", "C4-5X": "R7X", "C4-6": "R10",
	"C4-6A": "R8A", "C4-7": "R10",
	"C5-1": "R10", "C5-2": "R10", "C5-2.5": "R10",
	"C5-3": "R10", "C5-5": "R10", "C5-P": "R10",
	"C6-1": "R7-2", "C6-1A": "R7A", "C6-1G": "R7A",
	"C6-2": "R8", "C6-2A": "R8A", "C6-2G": "R8A",
	"C6-2M": "R8", "C6-3": "R9", "C6-3A": "R9A",
	"C6-3D": "R9", "C6-3X": "R9X", "C6-4": "R10",
	"C6-4.5": "R10", "C6-4A": "R10A", "C6-4M": "R10",
	"C6-4X": "R10", "C6-5": "R10", "C6-5.5": "R10",
	"C6-6": "R10", "C6-6.5": "R10", "C6-7": "R10",
	"C6-7T": "R10", "C6-9": "R10",
}

var manufacturingFAR = map[string]FAREntry{
	"M1-1":  {Commercial: model.FlatFar(1.0), CommunityFac: model.FlatFar(2.4), Manufacturing: model.FlatFar(1.0)},
	"M1-2":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(4.8), Manufacturing: model.FlatFar(2.0)},
	"M1-3":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(2.0)},
	"M1-4":  {Commercial: model.FlatFar(2.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(2.0)},
	"M1-5":  {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(5.0)},
	"M1-5A": {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(5.0)},
	"M1-5B": {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(5.0)},
	"M1-5M": {Commercial: model.FlatFar(5.0), CommunityFac: model.FlatFar(6.5), Manufacturing: model.FlatFar(5.0)},
	"M1-6":  {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0), Manufacturing: model.FlatFar(10.0)},
	"M1-6D": {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0), Manufacturing: model.FlatFar(10.0)},
	"M1-6M": {Commercial: model.FlatFar(10.0), CommunityFac: model.FlatFar(10.0), Manufacturing: model.FlatFar(10.0)},
	"M2-1":  {Manufacturing: model.FlatFar(2.0)},
	"M2-2":  {Manufacturing: model.FlatFar(5.0)},
	"M2-3":  {Manufacturing: model.FlatFar(10.0)},
	"M2-4":  {Manufacturing: model.FlatFar(15.0)},
	"M3-1":  {Manufacturing: model.FlatFar(2.0)},
	"M3-2":  {Manufacturing: model.FlatFar(2.0)},
}

// Commercial overlays add commercial FAR on a residential base.
var commercialOverlayFAR = map[string]float64{
	"C1-1": 1.0, "C1-2": 1.0, "C1-3": 1.0, "C1-4": 1.0, "C1-5": 1.0,
	"C2-1": 1.0, "C2-2": 1.0, "C2-3": 1.0, "C2-4": 1.0, "C2-5": 1.0,
}

// MIH maximums still govern in designated MIH areas; UAP replaced the
// old voluntary program elsewhere.
var mihBonus = map[string]struct{ BaseQH, MIHMax float64 }{
	"R6":   {2.20, 2.75},
	"R6A":  {3.0, 3.6},
	"R6B":  {2.0, 2.4},
	"R6D":  {2.5, 3.0},
	"R7-1": {3.44, 4.0},
	"R7-2": {3.44, 4.6},
	"R7A":  {4.0, 4.6},
	"R7B":  {3.0, 3.9},
	"R7D":  {4.66, 5.6},
	"R7X":  {5.0, 6.0},
	"R8":   {6.02, 7.2},
	"R8A":  {6.02, 7.2},
	"R8B":  {4.0, 4.8},
	"R8X":  {6.02, 7.2},
	"R9":   {7.52, 8.5},
	"R9A":  {7.52, 9.0},
	"R9D":  {9.0, 10.8},
	"R9X":  {9.0, 9.7},
	"R10":  {10.0, 12.0},
	"R10A": {10.0, 12.0},
	"R10X": {10.0, 12.0},
	"R11":  {12.0, 15.0},
	"R12":  {15.0, 18.0},
}

var districtCodeRe = regexp.MustCompile(`^([RCM])(\d+)(-\d+(?:\.\d+)?)?([A-DX])?`)

// NormalizeDistrict canonicalizes a district code for table lookup.
func NormalizeDistrict(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// BaseDistrict strips sub-designation and contextual suffix from a
// district code: C6-4 -> C6, R7A -> R7, M1-5B -> M1. Returns "" when
// the code does not follow the district grammar.
func BaseDistrict(code string) string {
	m := districtCodeRe.FindStringSubmatch(NormalizeDistrict(code))
	if m == nil {
		return ""
	}
	return m[1] + m[2]
}

// LookupFAR resolves the FAR entry for a district. Unknown codes
// return the zero entry (no use permitted). Mixed-use commercial
// districts pick up their residential equivalent's ratio.
func LookupFAR(district string) FAREntry {
	d := NormalizeDistrict(district)

	if e, ok := residentialFAR[d]; ok {
		return e
	}
	if e, ok := commercialFAR[d]; ok {
		if equiv, ok := commercialResidentialEquivalents[d]; ok {
			if re, ok := residentialFAR[equiv]; ok {
				e.Residential = re.Residential
			}
		}
		return e
	}
	if e, ok := manufacturingFAR[d]; ok {
		return e
	}
	return FAREntry{}
}

// OverlayCommercialFAR returns the commercial FAR added by a C1/C2
// overlay on a residential base district, 0 when the overlay is not
// recognized.
func OverlayCommercialFAR(overlay string) float64 {
	return commercialOverlayFAR[NormalizeDistrict(overlay)]
}

// UAPMaxFAR returns the maximum total FAR with qualifying affordable
// housing, or 0 when the district is outside the program.
func UAPMaxFAR(district string) float64 {
	return uapAffordableFAR[NormalizeDistrict(district)]
}

// UAPBonusFAR returns the additional FAR the affordable housing
// unlocks above the Quality Housing base, 0 when not eligible.
func UAPBonusFAR(district string, wideStreet bool) float64 {
	d := NormalizeDistrict(district)
	max := uapAffordableFAR[d]
	if max == 0 {
		return 0
	}
	base := LookupFAR(d).Residential.Resolve(wideStreet)
	if base == 0 {
		return 0
	}
	bonus := max - base
	if bonus <= 0 {
		return 0
	}
	return math.Round(bonus*100) / 100
}

// MIHMaxFAR returns the affordable-housing FAR cap in a designated MIH
// area, 0 for districts outside the program. Commercial districts map
// through their residential equivalent.
func MIHMaxFAR(district string) float64 {
	d := NormalizeDistrict(district)
	if e, ok := mihBonus[d]; ok {
		return e.MIHMax
	}
	if equiv, ok := commercialResidentialEquivalents[d]; ok {
		return mihBonus[equiv].MIHMax
	}
	return 0
}

// MIHBonusFAR returns the FAR bonus available over the Quality Housing
// base in an MIH area, 0 when the district is not eligible.
func MIHBonusFAR(district string) float64 {
	d := NormalizeDistrict(district)
	e, ok := mihBonus[d]
	if !ok {
		if equiv, ok2 := commercialResidentialEquivalents[d]; ok2 {
			e, ok = mihBonus[equiv]
		}
		if !ok {
			return 0
		}
	}
	return math.Round((e.MIHMax-e.BaseQH)*100) / 100
}
