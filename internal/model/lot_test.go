package model

import "testing"

func TestParseStreetWidthFt(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"80", 80},
		{"<75", 74},
		{">=75", 75},
		{"80 ft", 80},
		{" 100 ", 100},
		{"", 0},
		{"unknown", 0},
		{"-20", 0},
	}
	for _, tc := range cases {
		if got := ParseStreetWidthFt(tc.in); got != tc.want {
			t.Errorf("ParseStreetWidthFt(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClassifyStreetWidth(t *testing.T) {
	if got := ClassifyStreetWidth(80); got != StreetWide {
		t.Errorf("80 ft = %q, want wide", got)
	}
	if got := ClassifyStreetWidth(74); got != StreetNarrow {
		t.Errorf("74 ft = %q, want narrow", got)
	}
	if got := ClassifyStreetWidth(75); got != StreetWide {
		t.Errorf("75 ft = %q, want wide (threshold inclusive)", got)
	}
}

func TestLotProfilePrimaryDistrict(t *testing.T) {
	lot := LotProfile{ZoningDistricts: []string{" r7a ", "C4-4"}}
	if got := lot.PrimaryDistrict(); got != "R7A" {
		t.Errorf("PrimaryDistrict() = %q, want R7A", got)
	}
	empty := LotProfile{}
	if got := empty.PrimaryDistrict(); got != "" {
		t.Errorf("empty profile PrimaryDistrict() = %q, want empty", got)
	}
}

func TestLotProfileIsWideStreet(t *testing.T) {
	// Numeric width wins over the classification string.
	lot := LotProfile{StreetWidth: StreetWide, StreetWidthFt: 60}
	if lot.IsWideStreet() {
		t.Errorf("60 ft street should be narrow regardless of label")
	}
	lot = LotProfile{StreetWidth: StreetWide}
	if !lot.IsWideStreet() {
		t.Errorf("wide label without feet should count as wide")
	}
}

func TestLotProfileValidate(t *testing.T) {
	good := LotProfile{
		ZoningDistricts: []string{"R6"},
		LotArea:         2000,
		Borough:         3,
	}
	if err := good.Validate(); err != nil {
		t.Errorf("valid profile rejected: %v", err)
	}

	bad := []LotProfile{
		{LotArea: 2000, Borough: 3},
		{ZoningDistricts: []string{"R6"}, Borough: 3},
		{ZoningDistricts: []string{"R6"}, LotArea: 2000, Borough: 0},
		{ZoningDistricts: []string{"R6"}, LotArea: 2000, Borough: 6},
	}
	for i, lot := range bad {
		if err := lot.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
