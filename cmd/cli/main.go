package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"zoning-feasibility/internal/analysis"
	"zoning-feasibility/internal/config"
	"zoning-feasibility/internal/data"
	"zoning-feasibility/internal/engine"
	"zoning-feasibility/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "assemblage":
		cmdAssemblage(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --lot lot.json [--config config.yaml] [--out results/scenarios.csv]")
	fmt.Println("  cli assemblage --lots lots.json [--keep 1,0] [--config config.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints every development scenario ranked by estimated value")
	fmt.Println("  - assemblage compares merging the lots against developing them individually")
}

func newCalculator(cfgPath string) *engine.Calculator {
	valuer := analysis.Valuer{}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
			os.Exit(1)
		}
		if len(cfg.Valuation.Boroughs) > 0 {
			valuer.Overrides = map[int]analysis.ValueBenchmarks{}
			for borough, r := range cfg.Valuation.Boroughs {
				valuer.Overrides[borough] = analysis.ValueBenchmarks{
					Residential:  r.Residential,
					Commercial:   r.Commercial,
					CommunityFac: r.CommunityFac,
					Parking:      r.Parking,
				}
			}
		}
	}
	return engine.NewCalculator(engine.WithValuer(valuer))
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	lotPath := fs.String("lot", "", "Path to lot profile JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "", "Optional path to write scenario CSV")
	_ = fs.Parse(args)

	if *lotPath == "" {
		fmt.Println("--lot is required")
		os.Exit(2)
	}

	lot, err := data.LoadLotProfile(*lotPath)
	if err != nil {
		fmt.Printf("failed to load lot: %v\n", err)
		os.Exit(1)
	}
	if err := lot.Validate(); err != nil {
		fmt.Printf("invalid lot: %v\n", err)
		os.Exit(1)
	}

	calc := newCalculator(*cfgPath)
	result, err := calc.Analyze(*lot)
	if err != nil {
		fmt.Printf("analysis failed: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	if *outPath != "" {
		if err := analysis.WriteScenarioCSV(*outPath, result.Scenarios); err != nil {
			fmt.Printf("failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nWrote %d scenarios to %s\n", len(result.Scenarios), *outPath)
	}
}

func cmdAssemblage(args []string) {
	fs := flag.NewFlagSet("assemblage", flag.ExitOnError)
	lotsPath := fs.String("lots", "", "Path to JSON array of lot profiles")
	keepSpec := fs.String("keep", "", "Comma-separated keep flags (1=keep building), parallel to lots")
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	_ = fs.Parse(args)

	if *lotsPath == "" {
		fmt.Println("--lots is required")
		os.Exit(2)
	}

	lots, err := data.LoadLotProfiles(*lotsPath)
	if err != nil {
		fmt.Printf("failed to load lots: %v\n", err)
		os.Exit(1)
	}

	var keep []bool
	if *keepSpec != "" {
		for _, tok := range strings.Split(*keepSpec, ",") {
			keep = append(keep, strings.TrimSpace(tok) == "1")
		}
		if len(keep) != len(lots) {
			fmt.Printf("--keep has %d flags for %d lots\n", len(keep), len(lots))
			os.Exit(2)
		}
	}

	calc := newCalculator(*cfgPath)
	study, err := calc.AnalyzeAssemblage(lots, keep)
	if err != nil {
		fmt.Printf("assemblage failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Assemblage: %d lots -> %s (%s, %.0f SF)\n",
		len(lots), study.MergedLot.BBL, study.MergedLot.LotType, study.MergedLot.LotArea)
	for _, w := range study.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	for _, u := range study.Delta.KeyUnlocks {
		fmt.Printf("  unlock: %s\n", u)
	}
	fmt.Println()
	if study.MergedAnalysis != nil {
		printResult(study.MergedAnalysis)
	}
}

func printResult(result *model.CalculationResult) {
	if result.Envelope != nil {
		env := result.Envelope
		fmt.Printf("Envelope: res FAR %.2f, comm FAR %.2f, CF FAR %.2f", env.ResidentialFAR, env.CommercialFAR, env.CommunityFAR)
		if env.MaxBuildingHeight > 0 {
			fmt.Printf(", max height %.0f ft", env.MaxBuildingHeight)
		}
		fmt.Println()
	}
	if result.AirRights != nil {
		fmt.Printf("Air rights: %.0f SF developable of %.0f SF allowable (kept buildings %.0f SF)\n",
			result.AirRights.DevelopableZFA, result.AirRights.TotalAllowableZFA, result.AirRights.KeptBuildingSF)
	}

	fmt.Printf("%-4s %-38s %12s %8s %7s %7s %14s\n",
		"rank", "scenario", "zfa_sf", "far", "floors", "units", "est_value")
	for _, sc := range result.Scenarios {
		fmt.Printf("%-4d %-38s %12.0f %8.2f %7d %7d %14.0f\n",
			sc.Rank, sc.Name, sc.ZoningFloorArea, sc.FARUsed, sc.NumFloors, sc.TotalUnits, sc.EstimatedValue)
	}
}
