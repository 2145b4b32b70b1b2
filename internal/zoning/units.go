package zoning

import (
	"regexp"
	"strings"
)

// DwellingUnitFactor is the SF of residential floor area per dwelling
// unit in R6-R12 and their commercial equivalents, ZR 23-52.
const DwellingUnitFactor = 680.0

var rDistrictRe = regexp.MustCompile(`^R(\d+)`)

func residentialDensityClass(district string) (num int, ok bool) {
	m := rDistrictRe.FindStringSubmatch(district)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// MaxUnitsByLotArea caps unit count for low-density districts via the
// minimum lot area per dwelling unit. The second return is false when
// the district caps units by FAR and the DU factor instead.
func MaxUnitsByLotArea(district string, lotArea float64) (int, bool) {
	minArea := minLotAreaPerDU[NormalizeDistrict(district)]
	if minArea <= 0 {
		return 0, false
	}
	units := int(lotArea / minArea)
	if units < 1 {
		units = 1
	}
	return units, true
}

// MaxUnitsByDUFactor caps unit count for R6-R12 (and C4-C6
// equivalents) via the dwelling unit factor. Fractions of 0.75 and
// above round up; below are dropped, with a one-unit floor for any
// positive floor area. Senior housing and conversions waive the cap
// entirely (second return false).
func MaxUnitsByDUFactor(district string, maxResidentialFloorArea float64, seniorHousing, conversion bool) (int, bool) {
	d := NormalizeDistrict(district)

	if n, ok := residentialDensityClass(d); ok {
		if n < 6 {
			return 0, false
		}
	} else if !strings.HasPrefix(d, "C4") && !strings.HasPrefix(d, "C5") && !strings.HasPrefix(d, "C6") {
		return 0, false
	}

	if seniorHousing || conversion {
		return 0, false
	}

	if maxResidentialFloorArea <= 0 {
		return 0, true
	}

	raw := maxResidentialFloorArea / DwellingUnitFactor
	whole := int(raw)
	if raw-float64(whole) >= 0.75 {
		return whole + 1, true
	}
	if whole < 1 {
		return 1, true
	}
	return whole, true
}
