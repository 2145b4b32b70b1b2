package model

// FarKind discriminates the shapes a floor-area-ratio entry can take.
// District tables mix plain numbers, street-width-dependent values, and
// Height Factor / Quality Housing pairs; callers switch on Kind instead
// of runtime type checks.
type FarKind int

const (
	// FarNone means the use is not permitted in the district.
	FarNone FarKind = iota
	// FarFlat is a single ratio regardless of street width or program.
	FarFlat
	// FarByStreetWidth carries separate ratios for wide (>=75 ft) and
	// narrow streets.
	FarByStreetWidth
	// FarDual carries a Height Factor ratio plus a Quality Housing
	// entry (itself flat or street-width-dependent).
	FarDual
)

// Far is a tagged floor-area-ratio value.
type Far struct {
	Kind   FarKind
	Value  float64 // FarFlat
	Wide   float64 // FarByStreetWidth
	Narrow float64 // FarByStreetWidth
	HF     float64 // FarDual: Height Factor ratio
	QH     *Far    // FarDual: Quality Housing entry
}

func FlatFar(v float64) Far {
	return Far{Kind: FarFlat, Value: v}
}

func StreetWidthFar(wide, narrow float64) Far {
	return Far{Kind: FarByStreetWidth, Wide: wide, Narrow: narrow}
}

func DualFar(hf float64, qh Far) Far {
	return Far{Kind: FarDual, HF: hf, QH: &qh}
}

// IsZero reports whether the use is not permitted.
func (f Far) IsZero() bool { return f.Kind == FarNone }

// Resolve returns the ratio for a given street width under the Quality
// Housing path of a dual entry. wide is ignored for flat values.
func (f Far) Resolve(wide bool) float64 {
	switch f.Kind {
	case FarFlat:
		return f.Value
	case FarByStreetWidth:
		if wide {
			return f.Wide
		}
		return f.Narrow
	case FarDual:
		return f.QH.Resolve(wide)
	default:
		return 0
	}
}

// HeightFactor returns the Height Factor ratio where one exists,
// falling back to the resolved value otherwise.
func (f Far) HeightFactor(wide bool) float64 {
	if f.Kind == FarDual {
		return f.HF
	}
	return f.Resolve(wide)
}

// Max returns the largest ratio reachable under any street width or
// program path.
func (f Far) Max() float64 {
	switch f.Kind {
	case FarFlat:
		return f.Value
	case FarByStreetWidth:
		if f.Wide > f.Narrow {
			return f.Wide
		}
		return f.Narrow
	case FarDual:
		q := f.QH.Max()
		if f.HF > q {
			return f.HF
		}
		return q
	default:
		return 0
	}
}
