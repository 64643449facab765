package main

import (
	"fmt"
	"os"

	"github.com/protolab3d/meshcheck/pkg/analysis"
	"github.com/protolab3d/meshcheck/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometric information about an STL file",
	Long:  "Show dimensions, volume, surface area, edge classification and the extracted feature estimates.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	data, err := analysis.Analyze(model.Soup())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing model: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", data.TriangleCount)
	fmt.Printf("  Edges: %d\n", data.EdgeCount)
	fmt.Printf("  Surface Area: %.6f mm²\n", data.SurfaceArea)
	fmt.Printf("  Volume: %.6f mm³\n\n", data.Volume)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f mm\n", data.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f mm\n", data.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f mm\n", data.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f mm\n\n", data.BoundingBox.Diagonal())

	fmt.Println("Edges:")
	fmt.Printf("  Manifold: %d\n", data.Edges.ManifoldEdges)
	fmt.Printf("  Boundary: %d\n", data.Edges.BoundaryEdges)
	fmt.Printf("  T-junctions: %d\n", data.Edges.TJunctions)
	fmt.Printf("  Sharp: %d\n", data.Edges.SharpEdges)
	if data.Edges.MinCurvatureRadius > 0 {
		fmt.Printf("  Min curvature radius: %.6f mm\n", data.Edges.MinCurvatureRadius)
	}
	fmt.Println()

	fmt.Println("Feature Estimates:")
	fmt.Printf("  Cavities: %d (blind holes: %d, through holes: %d)\n",
		data.Cavities.PotentialCavities, data.Cavities.BlindHoles, data.Cavities.ThroughHoles)
	fmt.Printf("  Channels: %d\n", data.Channels.PotentialChannels)
	fmt.Printf("  Reliefs: %d, Engravings: %d\n", data.Surface.Reliefs, data.Surface.Engravings)
	fmt.Printf("  Wall thickness: %.2f–%.2f mm (mean %.2f)\n",
		data.Thickness.MinThickness, data.Thickness.MaxThickness, data.Thickness.MeanThickness)
	fmt.Printf("  Triangle density: %.4f per mm²\n", data.Complexity.TriangleDensity)
	if base := data.Complexity.FlatBase; base != nil {
		fmt.Printf("  Flat base: %.2f mm²\n", base.Area)
	} else {
		fmt.Println("  Flat base: none detected")
	}
}
