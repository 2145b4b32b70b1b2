package model

import "testing"

func TestFarFlat(t *testing.T) {
	f := FlatFar(4.0)
	if f.IsZero() {
		t.Fatalf("flat FAR should not be zero")
	}
	if got := f.Resolve(true); got != 4.0 {
		t.Errorf("Resolve(wide) = %v, want 4.0", got)
	}
	if got := f.Resolve(false); got != 4.0 {
		t.Errorf("Resolve(narrow) = %v, want 4.0", got)
	}
	if got := f.Max(); got != 4.0 {
		t.Errorf("Max() = %v, want 4.0", got)
	}
}

func TestFarByStreetWidth(t *testing.T) {
	f := StreetWidthFar(3.0, 2.2)
	if got := f.Resolve(true); got != 3.0 {
		t.Errorf("Resolve(wide) = %v, want 3.0", got)
	}
	if got := f.Resolve(false); got != 2.2 {
		t.Errorf("Resolve(narrow) = %v, want 2.2", got)
	}
	if got := f.Max(); got != 3.0 {
		t.Errorf("Max() = %v, want 3.0", got)
	}
}

func TestFarDual(t *testing.T) {
	f := DualFar(0.78, StreetWidthFar(3.0, 2.2))
	if got := f.HeightFactor(false); got != 0.78 {
		t.Errorf("HeightFactor() = %v, want 0.78", got)
	}
	// Resolve follows the Quality Housing path.
	if got := f.Resolve(true); got != 3.0 {
		t.Errorf("Resolve(wide) = %v, want 3.0", got)
	}
	if got := f.Resolve(false); got != 2.2 {
		t.Errorf("Resolve(narrow) = %v, want 2.2", got)
	}
	// Max considers both paths.
	if got := f.Max(); got != 3.0 {
		t.Errorf("Max() = %v, want 3.0", got)
	}

	hfHeavy := DualFar(10.0, FlatFar(4.0))
	if got := hfHeavy.Max(); got != 10.0 {
		t.Errorf("Max() = %v, want HF 10.0", got)
	}
}

func TestFarZero(t *testing.T) {
	var f Far
	if !f.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if got := f.Resolve(true); got != 0 {
		t.Errorf("Resolve on zero value = %v, want 0", got)
	}
	if got := f.Max(); got != 0 {
		t.Errorf("Max on zero value = %v, want 0", got)
	}
	if got := f.HeightFactor(true); got != 0 {
		t.Errorf("HeightFactor on zero value = %v, want 0", got)
	}
}
