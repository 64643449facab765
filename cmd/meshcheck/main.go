package main

import (
	"fmt"
	"os"

	"github.com/protolab3d/meshcheck/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meshcheck",
	Short: "A CLI tool for checking STL models against 3D-printing design rules",
	Long: `meshcheck analyzes STL (Stereolithography) files and validates them against
a set of additive-manufacturing design rules: build envelope, wall thickness,
curvature radii, cavity and channel proportions, surface features and more.
It supports both ASCII and binary STL formats.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
