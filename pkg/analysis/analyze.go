package analysis

import (
	"fmt"
	"math/rand"

	"github.com/protolab3d/meshcheck/pkg/geometry"
	"github.com/protolab3d/meshcheck/pkg/mesh"
)

// Options configures an analysis run. Thresholds that analyzers need
// internally (as opposed to validation-time thresholds) live here so the
// engine stays independent of any guideline table.
type Options struct {
	// Seed drives the wall thickness sampler's random triangle selection.
	// Runs with the same soup and seed produce identical results.
	Seed int64

	// MinWallThickness is the threshold below which a thickness sample
	// counts as a thin area (mm).
	MinWallThickness float64

	// MinCharacterHeight classifies height jumps as relief/engraving when
	// they exceed half of it (mm).
	MinCharacterHeight float64
}

// DefaultOptions returns the reference thresholds
func DefaultOptions() Options {
	return Options{
		Seed:               1,
		MinWallThickness:   1.0,
		MinCharacterHeight: 1.5,
	}
}

// Analyze runs the full analysis pipeline over a triangle soup with
// default options. See AnalyzeWithOptions.
func Analyze(points []geometry.Vector3) (*ModelData, error) {
	return AnalyzeWithOptions(points, DefaultOptions())
}

// AnalyzeWithOptions validates the soup, reconstructs its topology once,
// and runs every analyzer against the shared read-only structure.
// Malformed input fails before any analyzer runs; no partial ModelData is
// ever returned.
func AnalyzeWithOptions(points []geometry.Vector3, opts Options) (*ModelData, error) {
	soup, err := mesh.NewSoup(points)
	if err != nil {
		return nil, fmt.Errorf("invalid triangle soup: %w", err)
	}

	topo := mesh.BuildTopology(soup)

	data := &ModelData{
		TriangleCount:   soup.TriangleCount(),
		VertexCount:     soup.VertexCount(),
		EdgeCount:       topo.EdgeCount(),
		BoundingBox:     topo.Bounds,
		Dimensions:      topo.Bounds.Size(),
		Volume:          SignedVolume(soup),
		SurfaceArea:     TotalSurfaceArea(soup),
		NormalHistogram: NormalHistogram(topo.Normals),
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	data.Edges = analyzeEdges(topo)
	data.Cavities = analyzeCavities(topo)
	data.Channels = analyzeChannels(topo)
	data.Surface = analyzeSurface(topo, opts.MinCharacterHeight)
	data.Thickness = sampleThickness(topo, rng, opts.MinWallThickness)
	data.Complexity = analyzeComplexity(topo, data.SurfaceArea)

	return data, nil
}
