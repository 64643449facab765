package mesh

import (
	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// Normals computes one unit face normal per triangle, indexed like the soup.
// The normal direction follows the triangle winding (right-hand rule).
// Degenerate triangles yield the zero vector rather than an error; dot
// products against a zero normal simply contribute nothing downstream.
func Normals(s Soup) []geometry.Vector3 {
	normals := make([]geometry.Vector3, s.TriangleCount())
	for i := range normals {
		a, b, c := s.Triangle(i)
		normals[i] = b.Sub(a).Cross(c.Sub(a)).Normalize()
	}
	return normals
}
