package model

import (
	"errors"
	"strconv"
	"strings"
)

// Lot type classifications per ZR 12-10.
const (
	LotInterior  = "interior"
	LotCorner    = "corner"
	LotThrough   = "through"
	LotIrregular = "irregular"
)

// Street width classifications. A street mapped at 75 ft or more is wide.
const (
	StreetNarrow = "narrow"
	StreetWide   = "wide"

	WideStreetThresholdFt = 75.0
)

// PlutoData carries the assessor attributes consumed by the engine.
// Field names track the public PLUTO column names.
type PlutoData struct {
	BBL       string  `json:"bbl"`
	Address   string  `json:"address,omitempty"`
	ZoneDist1 string  `json:"zonedist1,omitempty"`
	ZoneDist2 string  `json:"zonedist2,omitempty"`
	Overlay1  string  `json:"overlay1,omitempty"`
	Overlay2  string  `json:"overlay2,omitempty"`
	SpDist1   string  `json:"spdist1,omitempty"`
	SpDist2   string  `json:"spdist2,omitempty"`
	LtdHeight string  `json:"ltdheight,omitempty"`
	SplitZone string  `json:"splitzone,omitempty"`
	LandUse   string  `json:"landuse,omitempty"`
	LotArea   float64 `json:"lotarea,omitempty"`
	LotFront  float64 `json:"lotfront,omitempty"`
	LotDepth  float64 `json:"lotdepth,omitempty"`
	BldgArea  float64 `json:"bldgarea,omitempty"`
	NumBldgs  int     `json:"numbldgs,omitempty"`
	NumFloors float64 `json:"numfloors,omitempty"`
	AssessTot float64 `json:"assesstot,omitempty"`
	BuiltFAR  float64 `json:"builtfar,omitempty"`
	ResidFAR  float64 `json:"residfar,omitempty"`
	CommFAR   float64 `json:"commfar,omitempty"`
	FacilFAR  float64 `json:"facilfar,omitempty"`
	YearBuilt int     `json:"yearbuilt,omitempty"`
	IrrLot    string  `json:"irrlotcode,omitempty"`
	CD        int     `json:"cd,omitempty"`
	ZipCode   string  `json:"zipcode,omitempty"`
}

// LotProfile is one parcel's fully resolved attributes. Upstream
// collaborators (geocoder, PLUTO fetch, zoning layers) populate it; the
// engine treats it as immutable for the duration of a calculation.
type LotProfile struct {
	BBL     string  `json:"bbl"`
	Address string  `json:"address,omitempty"`
	Borough int     `json:"borough"`
	Block   int     `json:"block"`
	Lot     int     `json:"lot"`
	Lat     float64 `json:"latitude,omitempty"`
	Lon     float64 `json:"longitude,omitempty"`

	Pluto *PlutoData `json:"pluto,omitempty"`

	ZoningDistricts  []string `json:"zoning_districts"`
	Overlays         []string `json:"overlays,omitempty"`
	SpecialDistricts []string `json:"special_districts,omitempty"`
	LimitedHeight    string   `json:"limited_height,omitempty"`
	SplitZone        bool     `json:"split_zone,omitempty"`

	LotArea     float64 `json:"lot_area"`
	LotFrontage float64 `json:"lot_frontage,omitempty"`
	LotDepth    float64 `json:"lot_depth,omitempty"`
	LotType     string  `json:"lot_type,omitempty"`      // interior, corner, through, irregular
	StreetWidth string  `json:"street_width,omitempty"`  // narrow or wide
	StreetWidthFt float64 `json:"street_width_ft,omitempty"`

	IsMIHArea          bool    `json:"is_mih_area,omitempty"`
	MIHOption          string  `json:"mih_option,omitempty"`
	IsHistoricDistrict bool    `json:"is_historic_district,omitempty"`
	FloodZone          string  `json:"flood_zone,omitempty"`
	CoastalZone        bool    `json:"coastal_zone,omitempty"`
	CommunityDistrict  int     `json:"community_district,omitempty"`
	GroceryFloorArea   float64 `json:"grocery_floor_area,omitempty"`
	Neighbourhood      string  `json:"neighbourhood,omitempty"`
}

// PrimaryDistrict returns the first zoning district, or "" when none is
// mapped.
func (l *LotProfile) PrimaryDistrict() string {
	if len(l.ZoningDistricts) == 0 {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(l.ZoningDistricts[0]))
}

// IsWideStreet reports whether the fronting street is wide (>=75 ft).
func (l *LotProfile) IsWideStreet() bool {
	if l.StreetWidthFt > 0 {
		return l.StreetWidthFt >= WideStreetThresholdFt
	}
	return strings.EqualFold(l.StreetWidth, StreetWide)
}

// ExistingBuildingArea returns the built floor area on the lot.
func (l *LotProfile) ExistingBuildingArea() float64 {
	if l.Pluto == nil {
		return 0
	}
	return l.Pluto.BldgArea
}

func (l *LotProfile) Validate() error {
	if len(l.ZoningDistricts) == 0 {
		return errors.New("lot has no zoning districts mapped")
	}
	if l.LotArea <= 0 {
		return errors.New("lot area must be > 0")
	}
	if l.Borough < 1 || l.Borough > 5 {
		return errors.New("borough must be 1..5")
	}
	return nil
}

// ParseStreetWidthFt parses a mapped-street-width string as it appears
// in city datasets. Accepts plain numbers ("80"), bounded forms ("<75",
// ">=75"), and trailing units ("80 ft"). Bounded "<N" resolves to N-1 so
// the wide/narrow classification lands on the correct side of the
// threshold. Returns 0 when nothing numeric can be extracted.
func ParseStreetWidthFt(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	lessThan := strings.HasPrefix(s, "<")
	s = strings.TrimLeft(s, "<>=")
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "ft"))
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0
	}
	if lessThan {
		v--
	}
	return v
}

// ClassifyStreetWidth maps feet to the narrow/wide classification.
func ClassifyStreetWidth(ft float64) string {
	if ft >= WideStreetThresholdFt {
		return StreetWide
	}
	return StreetNarrow
}
