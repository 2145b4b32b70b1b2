package zoning

import "testing"

func TestCalculateMIHProgram(t *testing.T) {
	p := CalculateMIHProgram(MIHOption1, 100000)
	if p.Option.Key != MIHOption1 {
		t.Fatalf("option key = %q, want %q", p.Option.Key, MIHOption1)
	}
	if p.AffordableSF != 25000 {
		t.Errorf("affordable SF = %v, want 25000", p.AffordableSF)
	}
	if p.MarketRateSF != 75000 {
		t.Errorf("market rate SF = %v, want 75000", p.MarketRateSF)
	}
	affSF := 25000.0
	if want := int(affSF / avgAffordableUnitSF); p.EstimatedAffordableUnits != want {
		t.Errorf("affordable units = %d, want %d", p.EstimatedAffordableUnits, want)
	}
	if p.Option.AvgAMI != 60 {
		t.Errorf("option 1 avg AMI = %d, want 60", p.Option.AvgAMI)
	}
}

func TestCalculateMIHProgramUnknownKeyFallsBack(t *testing.T) {
	p := CalculateMIHProgram("not_an_option", 10000)
	if p.Option.Key != MIHOption1 {
		t.Errorf("unknown key should fall back to option 1, got %q", p.Option.Key)
	}
}

func TestAllMIHOptions(t *testing.T) {
	opts := AllMIHOptions(50000)
	if len(opts) != 4 {
		t.Fatalf("expected 4 MIH options, got %d", len(opts))
	}
	seen := map[string]bool{}
	for _, o := range opts {
		seen[o.Option.Key] = true
		if o.AffordableSF <= 0 {
			t.Errorf("option %s affordable SF = %v, want > 0", o.Option.Key, o.AffordableSF)
		}
	}
	for _, key := range []string{MIHOption1, MIHOption2, MIHDeepAffordability, MIHWorkforce} {
		if !seen[key] {
			t.Errorf("missing option %s", key)
		}
	}
}
