package main

import (
	"flag"
	"fmt"

	"zoning-feasibility/internal/analysis"
	"zoning-feasibility/internal/engine"
	"zoning-feasibility/internal/model"
)

// Demo:
// - Build a representative R7A lot on a wide Brooklyn street
// - Run the full feasibility calculation
// - Print the ranked scenarios and the applicable programs
func main() {
	district := flag.String("district", "R7A", "Zoning district for the demo lot")
	lotArea := flag.Float64("area", 10000, "Lot area in SF")
	frontage := flag.Float64("frontage", 100, "Lot frontage in ft")
	mih := flag.Bool("mih", false, "Place the lot in a Mandatory Inclusionary Housing area")
	flag.Parse()

	depth := *lotArea / *frontage

	lot := model.LotProfile{
		BBL:               "3012340056",
		Address:           "1234 Atlantic Avenue",
		Borough:           3,
		Block:             1234,
		Lot:               56,
		ZoningDistricts:   []string{*district},
		Overlays:          []string{"C2-4"},
		LotArea:           *lotArea,
		LotFrontage:       *frontage,
		LotDepth:          depth,
		LotType:           model.LotInterior,
		StreetWidth:       model.StreetWide,
		StreetWidthFt:     80,
		IsMIHArea:         *mih,
		CommunityDistrict: 8,
	}

	calc := engine.NewCalculator()
	result, err := calc.Analyze(lot)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Lot: %s (%s), %s, %.0f SF, %.0f ft frontage\n",
		lot.Address, lot.BBL, *district, lot.LotArea, lot.LotFrontage)

	env := result.Envelope
	fmt.Printf("Envelope: res FAR %.2f, comm FAR %.2f, CF FAR %.2f, max height %.0f ft\n\n",
		env.ResidentialFAR, env.CommercialFAR, env.CommunityFAR, env.MaxBuildingHeight)

	fmt.Println("Scenarios (ranked by estimated value):")
	for _, sc := range result.Scenarios {
		best := ""
		if sc.HighestAndBest {
			best = "  <- highest and best use"
		}
		fmt.Printf("  %2d. %-38s ZFA %9.0f SF  FAR %5.2f  %3d floors  %4d units%s\n",
			sc.Rank, sc.Name, sc.ZoningFloorArea, sc.FARUsed, sc.NumFloors, sc.TotalUnits, best)
	}

	fmt.Println("\nApplicable programs:")
	count := 0
	for _, p := range result.Programs {
		if !p.Applicable {
			continue
		}
		count++
		fmt.Printf("  - %s (%s): %s\n", p.Name, p.Category, p.Rationale)
	}
	if count == 0 {
		fmt.Println("  none")
	}

	fmt.Printf("\n%s\n\n%s\n", analysis.ValuationDisclaimer, result.Disclaimer)
}
