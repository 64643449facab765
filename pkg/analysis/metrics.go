package analysis

import (
	"math"

	"github.com/protolab3d/meshcheck/pkg/geometry"
	"github.com/protolab3d/meshcheck/pkg/mesh"
)

// SignedVolume computes the enclosed volume as the signed sum of
// tetrahedra spanned by each triangle and the origin, taking the absolute
// value at the end. The sign cancellation assumes globally consistent
// triangle winding; inconsistent winding biases the result and is neither
// detected nor repaired here.
func SignedVolume(s mesh.Soup) float64 {
	volume := 0.0
	for i := 0; i < s.TriangleCount(); i++ {
		a, b, c := s.Triangle(i)
		volume += a.Dot(b.Cross(c)) / 6.0
	}
	return math.Abs(volume)
}

// TotalSurfaceArea sums the area of every triangle.
// Degenerate triangles contribute zero.
func TotalSurfaceArea(s mesh.Soup) float64 {
	total := 0.0
	for i := 0; i < s.TriangleCount(); i++ {
		total += s.Area(i)
	}
	return total
}

// NormalHistogram returns the mean absolute normal component per axis,
// normalized by triangle count. Zero normals from degenerate triangles
// contribute nothing.
func NormalHistogram(normals []geometry.Vector3) [3]float64 {
	var histogram [3]float64
	if len(normals) == 0 {
		return histogram
	}
	for _, n := range normals {
		histogram[0] += math.Abs(n.X)
		histogram[1] += math.Abs(n.Y)
		histogram[2] += math.Abs(n.Z)
	}
	count := float64(len(normals))
	histogram[0] /= count
	histogram[1] /= count
	histogram[2] /= count
	return histogram
}
