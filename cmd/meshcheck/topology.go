package main

import (
	"fmt"
	"os"

	"github.com/protolab3d/meshcheck/pkg/mesh"
	"github.com/protolab3d/meshcheck/pkg/stl"
	"github.com/spf13/cobra"
)

var topoShowProblems bool

var topologyCmd = &cobra.Command{
	Use:   "topology [file]",
	Short: "Inspect the reconstructed edge topology of an STL file",
	Long:  "Rebuild edge adjacency from the unindexed triangle list and report manifold, boundary and non-manifold edge counts.",
	Args:  cobra.ExactArgs(1),
	Run:   runTopology,
}

func init() {
	rootCmd.AddCommand(topologyCmd)

	topologyCmd.Flags().BoolVarP(&topoShowProblems, "problems", "p", false, "List boundary and non-manifold edges")
}

func runTopology(cmd *cobra.Command, args []string) {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	soup, err := mesh.NewSoup(model.Soup())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	topo := mesh.BuildTopology(soup)

	manifold, boundary, junctions := 0, 0, 0
	for _, edge := range topo.Edges() {
		switch {
		case edge.IsManifold():
			manifold++
		case edge.IsBoundary():
			boundary++
		default:
			junctions++
		}
	}

	fmt.Println("Mesh Topology")
	fmt.Println("=============")
	fmt.Printf("Triangles: %d\n", soup.TriangleCount())
	fmt.Printf("Distinct edges: %d\n", topo.EdgeCount())
	fmt.Printf("  Manifold: %d\n", manifold)
	fmt.Printf("  Boundary: %d\n", boundary)
	fmt.Printf("  T-junctions: %d\n", junctions)

	if boundary == 0 && junctions == 0 {
		fmt.Println("\nThe surface is fully manifold.")
	} else {
		fmt.Println("\nThe surface has openings or non-manifold junctions.")
	}

	if topoShowProblems && (boundary > 0 || junctions > 0) {
		fmt.Println("\nProblem Edges:")
		fmt.Printf("%-12s %-35s %-35s %s\n", "Type", "Start", "End", "Faces")
		for _, edge := range topo.Edges() {
			if edge.IsManifold() {
				continue
			}
			kind := "boundary"
			if edge.IsTJunction() {
				kind = "t-junction"
			}
			fmt.Printf("%-12s (%.4f, %.4f, %.4f)             (%.4f, %.4f, %.4f)             %d\n",
				kind,
				edge.A.X, edge.A.Y, edge.A.Z,
				edge.B.X, edge.B.Y, edge.B.Z,
				len(edge.Faces))
		}
	}
}
