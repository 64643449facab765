package mesh

import (
	"errors"
	"fmt"

	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// Soup is an unindexed triangle list: a flat point sequence whose length is
// a multiple of 3, where triangle i occupies points [3i..3i+2]. Triangles
// carry no shared-vertex connectivity; coincident vertices appear once per
// incident triangle. Degenerate (zero-area) triangles are not filtered.
type Soup []geometry.Vector3

// NewSoup validates the point sequence and returns it as a Soup.
// An empty sequence or a length that is not a multiple of 3 is rejected
// before any analysis runs.
func NewSoup(points []geometry.Vector3) (Soup, error) {
	if len(points) == 0 {
		return nil, errors.New("triangle soup is empty")
	}
	if len(points)%3 != 0 {
		return nil, fmt.Errorf("triangle soup has %d points, not a multiple of 3", len(points))
	}
	return Soup(points), nil
}

// TriangleCount returns the number of triangles in the soup
func (s Soup) TriangleCount() int {
	return len(s) / 3
}

// VertexCount returns the number of stored points (three per triangle)
func (s Soup) VertexCount() int {
	return len(s)
}

// Triangle returns the three vertices of triangle i
func (s Soup) Triangle(i int) (geometry.Vector3, geometry.Vector3, geometry.Vector3) {
	return s[3*i], s[3*i+1], s[3*i+2]
}

// Centroid returns the centroid of triangle i
func (s Soup) Centroid(i int) geometry.Vector3 {
	a, b, c := s.Triangle(i)
	return geometry.Vector3{
		X: (a.X + b.X + c.X) / 3.0,
		Y: (a.Y + b.Y + c.Y) / 3.0,
		Z: (a.Z + b.Z + c.Z) / 3.0,
	}
}

// Area returns the surface area of triangle i (0 for degenerate triangles)
func (s Soup) Area(i int) float64 {
	a, b, c := s.Triangle(i)
	return b.Sub(a).Cross(c.Sub(a)).Length() / 2.0
}

// BoundingBox calculates the axis-aligned bounding box over all points
func (s Soup) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range s {
		bbox.Extend(p)
	}
	return bbox
}
