package zoning

import (
	"testing"

	"zoning-feasibility/internal/model"
)

func TestBaseDistrict(t *testing.T) {
	cases := []struct{ in, want string }{
		{"R7A", "R7"},
		{"C6-4", "C6"},
		{"M1-5B", "M1"},
		{"r8x", "R8"},
		{" R6 ", "R6"},
		{"X9", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := BaseDistrict(tc.in); got != tc.want {
			t.Errorf("BaseDistrict(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLookupFAR(t *testing.T) {
	r7a := LookupFAR("R7A")
	if got := r7a.Residential.Resolve(false); got != 4.0 {
		t.Errorf("R7A residential FAR = %v, want 4.0", got)
	}
	if !r7a.Commercial.IsZero() {
		t.Errorf("R7A should not permit commercial use")
	}

	// Case and whitespace tolerant.
	if got := LookupFAR(" r7a ").Residential.Resolve(false); got != 4.0 {
		t.Errorf("lookup should normalize case and whitespace, got %v", got)
	}

	// Non-contextual R6 carries an HF/QH dual with street-width QH.
	r6 := LookupFAR("R6")
	if r6.Residential.Kind != model.FarDual {
		t.Fatalf("R6 residential kind = %v, want FarDual", r6.Residential.Kind)
	}
	if wide, narrow := r6.Residential.Resolve(true), r6.Residential.Resolve(false); wide != 3.0 || narrow != 2.2 {
		t.Errorf("R6 QH FAR = (%v, %v), want (3.0, 2.2)", wide, narrow)
	}

	// Mixed-use commercial districts inherit the residential
	// equivalent's ratio.
	c53 := LookupFAR("C5-3")
	if got := c53.Commercial.Resolve(false); got != 15.0 {
		t.Errorf("C5-3 commercial FAR = %v, want 15.0", got)
	}
	if c53.Residential.IsZero() {
		t.Errorf("C5-3 should carry its R10 equivalent residential FAR")
	}

	unknown := LookupFAR("R99Z")
	if !unknown.Residential.IsZero() || !unknown.Commercial.IsZero() {
		t.Errorf("unknown district should return the zero entry")
	}
}

func TestOverlayCommercialFAR(t *testing.T) {
	if got := OverlayCommercialFAR("C2-4"); got != 1.0 {
		t.Errorf("C2-4 overlay FAR = %v, want 1.0", got)
	}
	if got := OverlayCommercialFAR("C6-2"); got != 0 {
		t.Errorf("non-overlay district should yield 0, got %v", got)
	}
}

func TestMIHBonusFAR(t *testing.T) {
	// R6 QH base 2.20, MIH max 2.75.
	if got := MIHBonusFAR("R6"); got != 0.55 {
		t.Errorf("MIHBonusFAR(R6) = %v, want 0.55", got)
	}
	if got := MIHBonusFAR("R7A"); got != 0.6 {
		t.Errorf("MIHBonusFAR(R7A) = %v, want 0.6", got)
	}
	if got := MIHBonusFAR("R3A"); got != 0 {
		t.Errorf("MIHBonusFAR(R3A) = %v, want 0", got)
	}
}

func TestApplySpecialDistrictOverrides(t *testing.T) {
	// MiD commercial base 15.0 equals C5-3's own 15.0: no change.
	c53 := LookupFAR("C5-3")
	after := ApplySpecialDistrictOverrides(c53, []string{"MiD"})
	if got := after.Commercial.Resolve(false); got != 15.0 {
		t.Errorf("C5-3 + MiD commercial FAR = %v, want 15.0 (no-op)", got)
	}

	// A lower base gets replaced.
	c61 := LookupFAR("C6-1")
	boosted := ApplySpecialDistrictOverrides(c61, []string{"MiD"})
	if got := boosted.Commercial.Resolve(false); got != 15.0 {
		t.Errorf("C6-1 + MiD commercial FAR = %v, want 15.0", got)
	}

	// A residential override replaces an HF/QH dual outright.
	r72 := LookupFAR("R7-2")
	if r72.Residential.Kind != model.FarDual {
		t.Fatalf("R7-2 residential should carry the HF/QH dual")
	}
	lic := ApplySpecialDistrictOverrides(r72, []string{"LIC"})
	if lic.Residential.Kind != model.FarFlat {
		t.Errorf("LIC override should flatten the dual, got kind %v", lic.Residential.Kind)
	}
	if got := lic.Residential.Resolve(true); got != 6.5 {
		t.Errorf("R7-2 + LIC residential FAR = %v, want 6.5", got)
	}

	// Unknown codes pass through untouched.
	same := ApplySpecialDistrictOverrides(c53, []string{"ZZZ"})
	if got := same.Commercial.Resolve(false); got != 15.0 {
		t.Errorf("unknown special district changed the entry")
	}
}
