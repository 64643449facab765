package mesh

import (
	"fmt"
	"math"

	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// Edge coordinates are rounded to this many decimal places when building
// edge keys, so that coincident vertices emitted by independent triangles
// merge into one edge. Points that differ beyond the tolerance stay
// distinct; the merge is deliberately lossy and bounded by it.
const keyDecimals = 4

// Edge is one topological edge of the mesh: its two endpoint positions as
// recorded at first insertion, plus the indices of all incident triangles
// in input order.
type Edge struct {
	A, B  geometry.Vector3
	Faces []int
}

// Length returns the distance between the edge endpoints
func (e *Edge) Length() float64 {
	return e.A.Distance(e.B)
}

// IsManifold reports whether exactly two triangles share this edge
func (e *Edge) IsManifold() bool { return len(e.Faces) == 2 }

// IsBoundary reports whether only one triangle touches this edge,
// which indicates an opening or hole in the surface
func (e *Edge) IsBoundary() bool { return len(e.Faces) == 1 }

// IsTJunction reports whether three or more triangles share this edge
func (e *Edge) IsTJunction() bool { return len(e.Faces) >= 3 }

// Topology is the reconstructed connectivity of a triangle soup: per-face
// unit normals, the bounding box, and the edge adjacency map. It is built
// once per analysis run and shared read-only across all analyzers.
type Topology struct {
	Normals []geometry.Vector3
	Bounds  geometry.BoundingBox

	soup  Soup
	edges map[string]*Edge
	order []*Edge // first-insertion order, for deterministic iteration
}

// BuildTopology reconstructs edge adjacency from geometric coincidence of
// triangle edges. The resulting edge set depends only on the input geometry
// and the fixed rounding tolerance, not on enumeration order; the incident
// triangle list within each edge follows input order.
func BuildTopology(s Soup) *Topology {
	t := &Topology{
		Normals: Normals(s),
		Bounds:  s.BoundingBox(),
		soup:    s,
		edges:   make(map[string]*Edge),
	}

	for i := 0; i < s.TriangleCount(); i++ {
		a, b, c := s.Triangle(i)
		pairs := [3][2]geometry.Vector3{{a, b}, {b, c}, {c, a}}
		for _, p := range pairs {
			key := EdgeKey(p[0], p[1])
			edge, ok := t.edges[key]
			if !ok {
				edge = &Edge{A: p[0], B: p[1]}
				t.edges[key] = edge
				t.order = append(t.order, edge)
			}
			edge.Faces = append(edge.Faces, i)
		}
	}

	return t
}

// Soup returns the soup the topology was built from
func (t *Topology) Soup() Soup {
	return t.soup
}

// Edges returns all edges in first-insertion order
func (t *Topology) Edges() []*Edge {
	return t.order
}

// EdgeCount returns the number of distinct edges
func (t *Topology) EdgeCount() int {
	return len(t.order)
}

// BoundaryEdgeCount returns the number of edges with exactly one incident face
func (t *Topology) BoundaryEdgeCount() int {
	count := 0
	for _, e := range t.order {
		if e.IsBoundary() {
			count++
		}
	}
	return count
}

// Lookup returns the edge identified by the two endpoints, or nil
func (t *Topology) Lookup(a, b geometry.Vector3) *Edge {
	return t.edges[EdgeKey(a, b)]
}

// EdgeKey derives the canonical, order-independent identity of an edge from
// its two endpoint coordinates: both points are rounded to the key tolerance
// and ordered, so (A, B) and (B, A) produce the same key.
func EdgeKey(a, b geometry.Vector3) string {
	ka, kb := pointKey(a), pointKey(b)
	if kb < ka {
		ka, kb = kb, ka
	}
	return ka + "|" + kb
}

func pointKey(v geometry.Vector3) string {
	return fmt.Sprintf("%.*f,%.*f,%.*f",
		keyDecimals, roundCoord(v.X),
		keyDecimals, roundCoord(v.Y),
		keyDecimals, roundCoord(v.Z))
}

func roundCoord(c float64) float64 {
	r := math.Round(c*1e4) / 1e4
	if r == 0 {
		return 0 // fold negative zero
	}
	return r
}
