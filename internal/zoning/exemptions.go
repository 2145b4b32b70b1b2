package zoning

import (
	"math"

	"zoning-feasibility/internal/model"
)

// Exemption building-type keys.
const (
	ExemptWalkup      = "residential_walkup"
	ExemptElevator    = "residential_elevator"
	ExemptTower       = "residential_tower"
	ExemptOffice      = "commercial_office"
	ExemptMixedUse    = "mixed_use"
)

// Typical FAR-exempt space as a fraction of ZFA per building type,
// ZR 12-10. Cellars, mechanical space, open balconies, laundry and
// bike rooms, loading, and exempt lobby portions.
var exemptionEstimates = map[string]map[string]float64{
	ExemptWalkup: {
		"cellar": 0.10, "mechanical": 0.03, "laundry_storage": 0.02, "balconies": 0.02,
	},
	ExemptElevator: {
		"cellar": 0.08, "mechanical": 0.04, "laundry_storage": 0.02, "balconies": 0.02,
		"elevator_bulkhead": 0.01,
	},
	ExemptTower: {
		"cellar": 0.06, "mechanical": 0.05, "laundry_storage": 0.01, "balconies": 0.02,
		"elevator_bulkhead": 0.01,
	},
	ExemptOffice: {
		"cellar": 0.05, "mechanical": 0.06, "loading": 0.01, "lobby_transit": 0.03,
	},
	ExemptMixedUse: {
		"cellar": 0.07, "mechanical": 0.05, "laundry_storage": 0.01, "loading": 0.01,
	},
}

// ExemptionInput configures the exempt-area estimate.
type ExemptionInput struct {
	ZoningFloorArea      float64
	BuildingType         string
	HasCellar            bool
	ParkingSFBelowGrade  float64
	MechanicalFloors     int
	MechanicalSFPerFloor float64
}

// CalculateExemptArea estimates the floor area exempt from FAR.
// Below-grade parking is exempt at its literal SF; dedicated
// mechanical floors replace the percentage estimate when specified.
// GrossBuildingArea is ZFA plus exemptions: what actually gets built.
func CalculateExemptArea(in ExemptionInput) model.ExemptionResult {
	estimates, ok := exemptionEstimates[in.BuildingType]
	if !ok {
		estimates = exemptionEstimates[ExemptElevator]
	}

	breakdown := map[string]float64{}

	if in.HasCellar {
		breakdown["cellar"] = in.ZoningFloorArea * estimates["cellar"]
	} else {
		breakdown["cellar"] = 0
	}

	breakdown["parking_below_grade"] = in.ParkingSFBelowGrade

	if in.MechanicalFloors > 0 {
		breakdown["mechanical"] = float64(in.MechanicalFloors) * in.MechanicalSFPerFloor
	} else {
		breakdown["mechanical"] = in.ZoningFloorArea * estimates["mechanical"]
	}

	for _, key := range []string{"laundry_storage", "balconies", "elevator_bulkhead", "loading", "lobby_transit"} {
		if pct := estimates[key]; pct > 0 {
			breakdown[key] = in.ZoningFloorArea * pct
		}
	}

	var total float64
	for _, v := range breakdown {
		total += v
	}
	rounded := make(map[string]float64, len(breakdown))
	for k, v := range breakdown {
		rounded[k] = math.Round(v)
	}

	ratio := 0.0
	if in.ZoningFloorArea > 0 {
		ratio = math.Round(total/in.ZoningFloorArea*1000) / 1000
	}
	return model.ExemptionResult{
		TotalExemptSF:     math.Round(total),
		GrossBuildingArea: math.Round(in.ZoningFloorArea + total),
		ExemptionRatio:    ratio,
		Breakdown:         rounded,
	}
}
