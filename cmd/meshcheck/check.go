package main

import (
	"fmt"
	"os"
	"time"

	"github.com/protolab3d/meshcheck/pkg/analysis"
	"github.com/protolab3d/meshcheck/pkg/report"
	"github.com/protolab3d/meshcheck/pkg/stl"
	"github.com/protolab3d/meshcheck/pkg/validation"
	"github.com/protolab3d/meshcheck/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	checkJSON          bool
	checkDetails       bool
	checkSeed          int64
	checkWatch         bool
	checkFailOnWarning bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate an STL file against the design-rule guidelines",
	Long: `Run the full analysis pipeline and check the extracted metrics against the
manufacturing guidelines. The exit code is non-zero when any check fails
(or warns, with --fail-on-warning), so the command can gate a CI pipeline.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit the full report as JSON")
	checkCmd.Flags().BoolVarP(&checkDetails, "details", "d", false, "Show the long detail text of every check")
	checkCmd.Flags().Int64Var(&checkSeed, "seed", 1, "Seed for the wall thickness sampler")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-run the checks whenever the file changes")
	checkCmd.Flags().BoolVar(&checkFailOnWarning, "fail-on-warning", false, "Exit non-zero on warnings as well as failures")
}

func runCheck(cmd *cobra.Command, args []string) {
	filename := args[0]

	ok, err := checkOnce(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if checkWatch {
		fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}
		defer fw.Close()

		err = fw.Watch([]string{filename}, func(path string) {
			fmt.Printf("\n--- %s changed, re-checking ---\n\n", path)
			if _, err := checkOnce(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
			os.Exit(1)
		}

		fw.Start()
		select {} // watch until interrupted
	}

	if !ok {
		os.Exit(1)
	}
}

func checkOnce(filename string) (bool, error) {
	model, err := stl.Parse(filename)
	if err != nil {
		return false, fmt.Errorf("parsing STL file: %w", err)
	}

	opts := analysis.DefaultOptions()
	opts.Seed = checkSeed

	guidelines := validation.Default()
	opts.MinWallThickness = guidelines.MinWallThickness
	opts.MinCharacterHeight = guidelines.MinCharacterHeight

	data, err := analysis.AnalyzeWithOptions(model.Soup(), opts)
	if err != nil {
		return false, fmt.Errorf("analyzing model: %w", err)
	}

	checks := validation.Validate(data, guidelines)

	if checkJSON {
		if err := report.JSON(os.Stdout, data, checks); err != nil {
			return false, err
		}
	} else {
		if err := report.Text(os.Stdout, data, checks); err != nil {
			return false, err
		}
		if checkDetails {
			fmt.Println()
			report.Details(os.Stdout, checks)
		}
	}

	if report.HasErrors(checks) {
		return false, nil
	}
	if checkFailOnWarning && report.HasWarnings(checks) {
		return false, nil
	}
	return true, nil
}
