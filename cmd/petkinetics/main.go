package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"petkinetics/pkg/config"
	"petkinetics/pkg/graphical"
	"petkinetics/pkg/tacio"
)

func main() {
	// Parse command line arguments
	inputTACPath := flag.String("input-tac", "", "Path to the input (plasma) TAC file")
	regionTACPath := flag.String("roi-tac", "", "Path to the region-of-interest TAC file")
	methodName := flag.String("method", "", "Graphical method: patlak, logan, or alt_logan (default: from config)")
	threshold := flag.Float64("threshold", -1, "Fit window start threshold in minutes (default: from config)")
	configPath := flag.String("config", "petkinetics.yaml", "Path to YAML configuration file")
	outputDir := flag.String("output", "", "Directory for the analysis report (default: from config)")
	prefix := flag.String("prefix", "", "Output filename prefix (default: from config)")
	flag.Parse()

	// Validate inputs
	if *inputTACPath == "" || *regionTACPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, falling back to defaults when no file exists
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Command line flags override the configuration
	if *methodName != "" {
		cfg.Analysis.Method = *methodName
	}
	if *threshold >= 0 {
		cfg.Analysis.ThresholdMinutes = *threshold
	}
	if *outputDir != "" {
		cfg.Output.Directory = *outputDir
	}
	if *prefix != "" {
		cfg.Output.FilenamePrefix = *prefix
	}

	method, err := graphical.ParseMethod(cfg.Analysis.Method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	// Load both curves
	inputTAC, err := tacio.LoadTAC(*inputTACPath)
	if err != nil {
		log.Fatalf("Failed to load input TAC: %v", err)
	}
	regionTAC, err := tacio.LoadTAC(*regionTACPath)
	if err != nil {
		log.Fatalf("Failed to load region TAC: %v", err)
	}

	// Both curves must be sampled at the same times
	if inputTAC.Len() != regionTAC.Len() {
		log.Fatalf("TAC length mismatch: input has %d samples, region has %d", inputTAC.Len(), regionTAC.Len())
	}

	if cfg.Output.Verbose {
		fmt.Println("================================")
		fmt.Println("PET GRAPHICAL ANALYSIS OF TIME-ACTIVITY CURVES")
		fmt.Println("================================")
		fmt.Printf("Method: %s\n", method)
		fmt.Printf("Threshold: %.2f min\n", cfg.Analysis.ThresholdMinutes)
		fmt.Printf("Samples: %d\n", inputTAC.Len())
	}

	// Run the analysis
	fit, err := method.Analyze(inputTAC.Values, regionTAC.Values, inputTAC.Times, cfg.Analysis.ThresholdMinutes)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	startIndex := graphical.ThresholdIndex(inputTAC.Times, cfg.Analysis.ThresholdMinutes)

	fmt.Printf("\nAnalysis completed successfully!\n")
	fmt.Printf("Slope:     %.6f\n", fit.Slope)
	fmt.Printf("Intercept: %.6f\n", fit.Intercept)
	fmt.Printf("Points fit: %d (from t=%.2f min)\n", inputTAC.Len()-startIndex, inputTAC.Times[startIndex])

	// Write the report with its metadata
	report := tacio.NewReport(method.String(), cfg.Analysis.ThresholdMinutes, inputTAC.Times, startIndex, fit)
	report.InputTACPath = *inputTACPath
	report.RegionTACPath = *regionTACPath

	reportPath := filepath.Join(cfg.Output.Directory, fmt.Sprintf("%s_%s.yaml", cfg.Output.FilenamePrefix, method))
	if err := tacio.SaveReport(reportPath, report); err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("\nReport saved to: %s\n", reportPath)
	}
}
