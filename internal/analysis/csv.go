package analysis

import (
	"encoding/csv"
	"os"
	"strconv"

	"zoning-feasibility/internal/model"
)

// WriteScenarioCSV writes ranked scenarios to a CSV file, one row per
// scenario.
func WriteScenarioCSV(path string, scenarios []model.DevelopmentScenario) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"rank",
		"name",
		"zoning_floor_area",
		"total_gross_sf",
		"total_net_sf",
		"residential_sf",
		"commercial_sf",
		"cf_sf",
		"far_used",
		"num_floors",
		"max_height_ft",
		"total_units",
		"parking_spaces",
		"loss_factor_pct",
		"estimated_value",
		"blended_psf",
		"highest_and_best_use",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, sc := range scenarios {
		parking := 0
		if sc.Parking != nil {
			parking = sc.Parking.TotalSpaces
		}
		lossPct := 0.0
		if sc.LossFactor != nil {
			lossPct = sc.LossFactor.LossFactorPct
		}
		row := []string{
			strconv.Itoa(sc.Rank),
			sc.Name,
			fmtFloat(sc.ZoningFloorArea),
			fmtFloat(sc.TotalGrossSF),
			fmtFloat(sc.TotalNetSF),
			fmtFloat(sc.ResidentialSF),
			fmtFloat(sc.CommercialSF),
			fmtFloat(sc.CommunitySF),
			fmtFloat(sc.FARUsed),
			strconv.Itoa(sc.NumFloors),
			fmtFloat(sc.MaxHeightFt),
			strconv.Itoa(sc.TotalUnits),
			strconv.Itoa(parking),
			fmtFloat(lossPct),
			fmtFloat(sc.EstimatedValue),
			fmtFloat(sc.BlendedPSF),
			strconv.FormatBool(sc.HighestAndBest),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
