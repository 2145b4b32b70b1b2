package zoning

import (
	"math"

	"zoning-feasibility/internal/model"
)

// City of Yes parking zones, effective December 5, 2024.
const (
	ZoneManhattanCore    = 0
	ZoneInnerTransit     = 1
	ZoneOuterTransit     = 2
	ZoneBeyondTransit    = 3
)

var parkingZoneNames = map[int]string{
	ZoneManhattanCore: "Manhattan Core",
	ZoneInnerTransit:  "Inner Transit Zone",
	ZoneOuterTransit:  "Outer Transit Zone",
	ZoneBeyondTransit: "Beyond Greater Transit Zone",
}

// Community districts keyed as borough*100 + CD number.
var manhattanCoreCDs = map[int]bool{
	101: true, 102: true, 103: true, 104: true,
	105: true, 106: true, 107: true, 108: true,
}

var innerTransitZoneCDs = map[int]bool{
	109: true, 110: true, 111: true, 112: true,
	301: true, 302: true, 303: true, 306: true, 307: true, 308: true,
	401: true, 402: true,
}

var outerTransitZoneCDs = map[int]bool{
	304: true, 305: true, 309: true, 310: true, 312: true, 314: true,
	315: true, 316: true, 317: true, 318: true,
	403: true, 404: true, 405: true, 406: true, 407: true, 408: true,
	412: true, 414: true,
	201: true, 202: true, 203: true, 204: true, 205: true, 206: true,
	207: true, 208: true, 209: true, 210: true, 211: true, 212: true,
	501: true,
}

// Base residential parking ratios (spaces per unit), ZR 25-20, before
// transit-zone reductions.
var residentialParkingRatios = map[string]float64{
	"R1": 1.0, "R2": 1.0, "R3": 1.0, "R4": 1.0, "R4A": 1.0, "R4B": 1.0,
	"R5": 0.85, "R5A": 0.85, "R5B": 0.85, "R5D": 0.50,
	"R6": 0.70, "R6A": 0.50, "R6B": 0.50, "R6D": 0.50,
	"R7": 0.50, "R7-1": 0.50, "R7-2": 0.50,
	"R7A": 0.50, "R7B": 0.50, "R7D": 0.40, "R7X": 0.40,
	"R8": 0.40, "R8A": 0.40, "R8B": 0.40, "R8X": 0.40,
	"R9": 0.40, "R9A": 0.40, "R9X": 0.40, "R9D": 0.40,
	"R10": 0.40, "R10A": 0.40, "R10X": 0.40,
	"R11": 0.40, "R12": 0.40,
}

// Outer Transit Zone ratios with as-of-right waiver thresholds.
var outerTransitZoneRatios = map[string]struct {
	Ratio           float64
	WaiverThreshold int
}{
	"R5":  {0.50, 10},
	"R6":  {0.25, 15},
	"R7":  {0.25, 15},
	"R8":  {0.20, 15},
	"R9":  {0.20, 15},
	"R10": {0.20, 15},
	"R11": {0.20, 15},
	"R12": {0.20, 15},
}

// Retail parking ratios per 1,000 SF by base district, ZR 36-21.
var retailParkingRatios = map[string]float64{
	"R1": 3.3, "R2": 3.3, "R3": 3.3, "R4": 3.3, "R5": 3.3,
	"R6": 1.0, "R7": 1.0, "R8": 1.0, "R9": 1.0, "R10": 0,
	"C1": 3.3, "C2": 3.3, "C3": 1.0, "C4": 1.0,
	"C5": 0, "C6": 0, "C7": 1.0, "C8": 1.0,
}

// Bicycle parking, ZR 25-80.
const (
	bikeSpaceSF      = 18.0
	bikeRoomOverhead = 1.3
	bikePerSFRatio   = 1.0 / 10000
)

// Loading berth thresholds, ZR 36-60. Entries are (min SF, berths).
type berthTier struct {
	MinSF  float64
	Berths int
}

var loadingBerthTiers = map[string][]berthTier{
	"residential": {
		{25000, 0}, {100000, 1}, {200000, 2}, {500000, 3}, {800000, 4},
	},
	"commercial_retail": {
		{8000, 0}, {25000, 1}, {40000, 2}, {60000, 3}, {100000, 4},
	},
	"commercial_office": {
		{25000, 0}, {100000, 1}, {200000, 2}, {500000, 3}, {800000, 4},
	},
	"community_facility": {
		{25000, 0}, {100000, 1}, {200000, 2},
	},
}

const loadingBerthSF = 396 // 12ft x 33ft standard berth

// AccessibleSpaces returns the ADA/Building Code accessible-space
// requirement for a total space count.
func AccessibleSpaces(totalSpaces int) int {
	switch {
	case totalSpaces <= 0:
		return 0
	case totalSpaces <= 25:
		return 1
	case totalSpaces <= 50:
		return 2
	case totalSpaces <= 75:
		return 3
	case totalSpaces <= 100:
		return 4
	case totalSpaces <= 150:
		return 5
	case totalSpaces <= 200:
		return 6
	case totalSpaces <= 300:
		return 7
	case totalSpaces <= 400:
		return 8
	case totalSpaces <= 500:
		return 9
	case totalSpaces <= 1000:
		n := totalSpaces * 2 / 100
		if n < 10 {
			n = 10
		}
		return n
	default:
		return 20 + (totalSpaces-1000)/100
	}
}

// ParkingZone maps a borough and community district to a City of Yes
// parking zone. Accepts the CD either bare (1..18) or pre-combined as
// borough*100+cd.
func ParkingZone(borough, communityDistrict int) int {
	cdID := communityDistrict
	if communityDistrict <= 100 {
		cdID = borough*100 + communityDistrict
	}
	if borough == 1 {
		if manhattanCoreCDs[cdID] {
			return ZoneManhattanCore
		}
		return ZoneInnerTransit
	}
	if innerTransitZoneCDs[cdID] {
		return ZoneInnerTransit
	}
	if outerTransitZoneCDs[cdID] {
		return ZoneOuterTransit
	}
	return ZoneBeyondTransit
}

// BicycleParking is the ZR 25-80 requirement.
type BicycleParking struct {
	ResidentialSpaces int     `json:"residential_bike_spaces"`
	CommercialSpaces  int     `json:"commercial_bike_spaces"`
	CommunitySpaces   int     `json:"cf_bike_spaces"`
	TotalSpaces       int     `json:"total_bike_spaces"`
	BikeRoomSF        float64 `json:"bike_room_sf"`
}

// CalculateBicycleParking computes bike spaces: one per unit through
// 200 units, one per two units after, plus SF-based commercial and
// community facility spaces.
func CalculateBicycleParking(unitCount int, commercialSF, cfSF float64) BicycleParking {
	var b BicycleParking
	if unitCount > 0 {
		if unitCount <= 200 {
			b.ResidentialSpaces = unitCount
		} else {
			b.ResidentialSpaces = 200 + int(float64(unitCount-200)*0.5)
		}
	}
	if commercialSF > 0 {
		b.CommercialSpaces = int(commercialSF * bikePerSFRatio)
		if b.CommercialSpaces < 1 {
			b.CommercialSpaces = 1
		}
	}
	if cfSF > 0 {
		b.CommunitySpaces = int(cfSF * bikePerSFRatio)
		if b.CommunitySpaces < 1 {
			b.CommunitySpaces = 1
		}
	}
	b.TotalSpaces = b.ResidentialSpaces + b.CommercialSpaces + b.CommunitySpaces
	b.BikeRoomSF = math.Trunc(float64(b.TotalSpaces) * bikeSpaceSF * bikeRoomOverhead)
	return b
}

// LoadingBerths is the ZR 36-60 requirement.
type LoadingBerths struct {
	ResidentialBerths int     `json:"residential_berths"`
	CommercialBerths  int     `json:"commercial_berths"`
	CommunityBerths   int     `json:"cf_berths"`
	TotalBerths       int     `json:"total_berths"`
	TotalLoadingSF    float64 `json:"total_loading_sf"`
}

// CalculateLoadingBerths counts required berths for each use's floor
// area against the SF threshold ladder.
func CalculateLoadingBerths(residentialSF, commercialSF, cfSF float64, commercialType string) LoadingBerths {
	key := "commercial_retail"
	if commercialType == "office" {
		key = "commercial_office"
	}
	l := LoadingBerths{
		ResidentialBerths: berthsForArea(residentialSF, "residential"),
		CommercialBerths:  berthsForArea(commercialSF, key),
		CommunityBerths:   berthsForArea(cfSF, "community_facility"),
	}
	l.TotalBerths = l.ResidentialBerths + l.CommercialBerths + l.CommunityBerths
	l.TotalLoadingSF = float64(l.TotalBerths * loadingBerthSF)
	return l
}

func berthsForArea(floorArea float64, useType string) int {
	berths := 0
	for _, tier := range loadingBerthTiers[useType] {
		if floorArea >= tier.MinSF {
			berths = tier.Berths
		}
	}
	return berths
}

// ParkingInput configures a parking calculation.
type ParkingInput struct {
	District          string
	UnitCount         int
	CommercialSF      float64
	CommunitySF       float64
	LotArea           float64
	Borough           int
	CommunityDistrict int
	IsTransitZone     bool // legacy flag, forces at least Inner Transit Zone
	AffordableUnits   int  // no parking requirement under City of Yes
}

// CalculateParking computes the full parking requirement under the
// City of Yes four-zone system: no residential parking in the
// Manhattan Core and Inner Transit Zone, reduced ratios with
// as-of-right waivers in the Outer Transit Zone, and the pre-2024
// ratios beyond.
func CalculateParking(in ParkingInput) model.ParkingResult {
	d := NormalizeDistrict(in.District)
	base := useBaseDistrict(d)

	zone := ParkingZone(in.Borough, in.CommunityDistrict)
	if in.IsTransitZone && zone > ZoneInnerTransit {
		zone = ZoneInnerTransit
	}

	marketRateUnits := in.UnitCount - in.AffordableUnits
	if marketRateUnits < 0 {
		marketRateUnits = 0
	}

	var resSpaces int
	switch zone {
	case ZoneManhattanCore, ZoneInnerTransit:
		resSpaces = 0
	case ZoneOuterTransit:
		otz, ok := outerTransitZoneRatios[base]
		if !ok {
			otz.Ratio, otz.WaiverThreshold = 0.25, 15
		}
		resSpaces = int(math.Round(float64(marketRateUnits) * otz.Ratio))
		if resSpaces <= otz.WaiverThreshold {
			resSpaces = 0
		}
	default:
		ratio, ok := residentialParkingRatios[d]
		if !ok {
			if ratio, ok = residentialParkingRatios[base]; !ok {
				ratio = 0.5
			}
		}
		resSpaces = int(math.Round(float64(marketRateUnits) * ratio))
	}

	var commSpaces int
	if in.CommercialSF > 0 && zone > ZoneInnerTransit {
		ratio, ok := retailParkingRatios[base]
		if !ok {
			ratio = 1.0
		}
		if zone == ZoneOuterTransit {
			ratio *= 0.5
		}
		commSpaces = int(math.Round(in.CommercialSF / 1000 * ratio))
	}

	total := resSpaces + commSpaces

	waiver := false
	waiverReason := ""
	switch {
	case zone >= ZoneBeyondTransit:
		switch base {
		case "R5", "R6", "R7":
			if in.LotArea < 10000 {
				waiver = true
				waiverReason = "small lot (under 10,000 SF)"
			}
		case "R8", "R9", "R10", "R11", "R12":
			if in.LotArea < 15000 {
				waiver = true
				waiverReason = "small lot (under 15,000 SF)"
			}
		}
		if in.UnitCount <= 10 {
			switch base {
			case "R6", "R7", "R8", "R9", "R10", "R11", "R12":
				waiver = true
				waiverReason = "10 units or fewer"
			}
		}
	case zone == ZoneOuterTransit:
		waiver = total == 0
		if waiver {
			waiverReason = "outer transit zone as-of-right waiver"
		}
	}

	bike := CalculateBicycleParking(in.UnitCount, in.CommercialSF, in.CommunitySF)
	loading := CalculateLoadingBerths(float64(in.UnitCount)*700, in.CommercialSF, in.CommunitySF, "retail")

	return model.ParkingResult{
		ResidentialSpaces: resSpaces,
		CommercialSpaces:  commSpaces,
		TotalSpaces:       total,
		AccessibleSpaces:  AccessibleSpaces(total),
		BicycleSpaces:     bike.TotalSpaces,
		BikeRoomSF:        bike.BikeRoomSF,
		LoadingBerths:     loading.TotalBerths,
		WaiverEligible:    waiver,
		WaiverReason:      waiverReason,
		ParkingZone:       parkingZoneNames[zone],
		Options:           buildParkingOptions(total, in.LotArea),
	}
}

func buildParkingOptions(totalSpaces int, lotArea float64) []model.ParkingOption {
	if totalSpaces == 0 {
		return nil
	}

	belowGradeRamp := int(float64(totalSpaces) * 350 * 0.15)
	options := []model.ParkingOption{
		{
			Type:          "below_grade",
			SFPerSpace:    350,
			TotalSF:       totalSpaces*350 + belowGradeRamp,
			EstimatedCost: totalSpaces * 80000,
		},
	}

	atGradeSF := totalSpaces * 350
	floors := 1.0
	if lotArea > 0 {
		floors = math.Round(float64(atGradeSF)/lotArea*100) / 100
	}
	options = append(options,
		model.ParkingOption{
			Type:           "at_grade",
			SFPerSpace:     350,
			TotalSF:        atGradeSF,
			FloorsConsumed: floors,
		},
		model.ParkingOption{
			Type:          "mechanical_stackers",
			SFPerSpace:    200,
			TotalSF:       totalSpaces * 200,
			EstimatedCost: totalSpaces * 35000,
		},
		model.ParkingOption{
			Type:       "ramp_to_second_floor",
			SFPerSpace: 375,
			TotalSF:    totalSpaces*375 + 1200,
		},
	)
	return options
}
