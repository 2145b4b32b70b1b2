package zoning

import "testing"

func TestSliverLawHeight(t *testing.T) {
	cases := []struct {
		name          string
		district      string
		lotWidth      float64
		streetWidthFt float64
		lotType       string
		want          float64
	}{
		{"narrow interior lot capped at street width", "R8", 40, 60, "interior", 60},
		{"wide street capped at 100", "R8", 40, 120, "interior", 100},
		{"lot at threshold exempt", "R8", 45, 60, "interior", 0},
		{"contextual district exempt", "R6A", 40, 60, "interior", 0},
		{"low density exempt", "R4", 40, 60, "interior", 0},
		{"commercial equivalent applies", "C6-2", 40, 60, "interior", 60},
		{"corner on wide street", "R8", 40, 80, "corner", 80},
		{"corner on narrow street", "R8", 40, 60, "corner", 60},
		{"unknown street width defaults to 60", "R8", 40, 0, "interior", 60},
		{"through lot treated like interior", "R7-2", 30, 75, "through", 75},
	}
	for _, tc := range cases {
		got := SliverLawHeight(tc.district, tc.lotWidth, tc.streetWidthFt, tc.lotType)
		if got != tc.want {
			t.Errorf("%s: SliverLawHeight(%s, %v, %v, %s) = %v, want %v",
				tc.name, tc.district, tc.lotWidth, tc.streetWidthFt, tc.lotType, got, tc.want)
		}
	}
}
