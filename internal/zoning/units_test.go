package zoning

import "testing"

func TestMaxUnitsByDUFactor(t *testing.T) {
	cases := []struct {
		name      string
		district  string
		floorArea float64
		want      int
		capped    bool
	}{
		{"rounds up at three quarters", "R6", 5950, 9, true}, // 8.75
		{"drops fraction below three quarters", "R6", 5100, 7, true}, // 7.5
		{"exact multiple", "R7A", 6800, 10, true},
		{"zero floor area", "R6", 0, 0, true},
		{"small positive floors at one unit", "R6", 100, 1, true},
		{"commercial equivalent", "C4-4", 6800, 10, true},
		{"low density districts use lot area instead", "R4", 6800, 0, false},
		{"unknown district", "M1-1", 6800, 0, false},
	}
	for _, tc := range cases {
		got, capped := MaxUnitsByDUFactor(tc.district, tc.floorArea, false, false)
		if got != tc.want || capped != tc.capped {
			t.Errorf("%s: MaxUnitsByDUFactor(%s, %v) = (%d, %v), want (%d, %v)",
				tc.name, tc.district, tc.floorArea, got, capped, tc.want, tc.capped)
		}
	}
}

func TestMaxUnitsByDUFactorWaivers(t *testing.T) {
	if got, capped := MaxUnitsByDUFactor("R8", 10000, true, false); capped {
		t.Errorf("senior housing should waive the cap, got (%d, %v)", got, capped)
	}
	if got, capped := MaxUnitsByDUFactor("R8", 10000, false, true); capped {
		t.Errorf("conversion should waive the cap, got (%d, %v)", got, capped)
	}
}

func TestMaxUnitsByLotArea(t *testing.T) {
	cases := []struct {
		district string
		lotArea  float64
		want     int
		capped   bool
	}{
		{"R1", 19000, 2, true},
		{"R1", 9500, 1, true},
		{"R1", 5000, 1, true}, // floor of one unit
		{"R5", 6800, 10, true},
		{"R3-2", 5100, 3, true},
		{"R6", 19000, 0, false},
		{"C4-4", 19000, 0, false},
	}
	for _, tc := range cases {
		got, capped := MaxUnitsByLotArea(tc.district, tc.lotArea)
		if got != tc.want || capped != tc.capped {
			t.Errorf("MaxUnitsByLotArea(%s, %v) = (%d, %v), want (%d, %v)",
				tc.district, tc.lotArea, got, capped, tc.want, tc.capped)
		}
	}
}
