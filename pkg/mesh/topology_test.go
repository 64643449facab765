package mesh

import (
	"testing"

	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// cubePoints returns a closed, consistently outward-wound cube of the
// given size with one corner at the origin, as 12 triangles.
func cubePoints(s float64) []geometry.Vector3 {
	quads := [][4][3]float64{
		// bottom (z=0), top (z=s)
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		// front (y=0), back (y=s)
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
		// left (x=0), right (x=s)
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	}

	var points []geometry.Vector3
	at := func(c [3]float64) geometry.Vector3 {
		return geometry.NewVector3(c[0]*s, c[1]*s, c[2]*s)
	}
	for _, q := range quads {
		points = append(points, at(q[0]), at(q[1]), at(q[2]))
		points = append(points, at(q[0]), at(q[2]), at(q[3]))
	}
	return points
}

func TestNewSoupRejectsEmpty(t *testing.T) {
	if _, err := NewSoup(nil); err == nil {
		t.Error("expected error for empty soup")
	}
}

func TestNewSoupRejectsPartialTriangle(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
	}
	if _, err := NewSoup(points); err == nil {
		t.Error("expected error for point count not a multiple of 3")
	}
}

func TestSoupAccessors(t *testing.T) {
	soup, err := NewSoup(cubePoints(1))
	if err != nil {
		t.Fatalf("NewSoup failed: %v", err)
	}

	if soup.TriangleCount() != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", soup.TriangleCount())
	}
	if soup.VertexCount() != 36 {
		t.Errorf("VertexCount failed: expected 36, got %d", soup.VertexCount())
	}

	bbox := soup.BoundingBox()
	if bbox.Min != geometry.NewVector3(0, 0, 0) || bbox.Max != geometry.NewVector3(1, 1, 1) {
		t.Errorf("BoundingBox failed: got min %v max %v", bbox.Min, bbox.Max)
	}
}

func TestNormalsUnitLength(t *testing.T) {
	soup, _ := NewSoup(cubePoints(1))
	normals := Normals(soup)

	if len(normals) != 12 {
		t.Fatalf("expected 12 normals, got %d", len(normals))
	}
	for i, n := range normals {
		if diff := n.Length() - 1.0; diff > 1e-10 || diff < -1e-10 {
			t.Errorf("normal %d is not unit length: %v", i, n)
		}
	}
}

func TestNormalsDegenerate(t *testing.T) {
	// Collinear vertices: zero-area triangle must yield a zero normal,
	// not an error.
	points := []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(2, 0, 0),
	}
	soup, err := NewSoup(points)
	if err != nil {
		t.Fatalf("NewSoup failed: %v", err)
	}

	normals := Normals(soup)
	if normals[0] != (geometry.Vector3{}) {
		t.Errorf("degenerate triangle normal: expected zero vector, got %v", normals[0])
	}
}

func TestEdgeKeyOrderIndependent(t *testing.T) {
	a := geometry.NewVector3(1.5, 2.25, -3)
	b := geometry.NewVector3(-0.5, 0, 7.125)

	if EdgeKey(a, b) != EdgeKey(b, a) {
		t.Errorf("edge key is order dependent: %q vs %q", EdgeKey(a, b), EdgeKey(b, a))
	}
}

func TestEdgeKeyToleranceMerging(t *testing.T) {
	a := geometry.NewVector3(1, 2, 3)
	b := geometry.NewVector3(4, 5, 6)

	// Within the 4-decimal rounding tolerance: same key.
	aNear := geometry.NewVector3(1.000004, 2, 3)
	if EdgeKey(a, b) != EdgeKey(aNear, b) {
		t.Error("points within tolerance should share an edge key")
	}

	// Beyond the tolerance: distinct keys, by design.
	aFar := geometry.NewVector3(1.001, 2, 3)
	if EdgeKey(a, b) == EdgeKey(aFar, b) {
		t.Error("points beyond tolerance should not share an edge key")
	}
}

func TestSharedEdgeCountedOnce(t *testing.T) {
	// Two triangles sharing an edge, the second listing the shared
	// endpoints in reverse order. The edge must resolve to one entry with
	// two incident faces, not two boundary edges.
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 0, 0)
	c := geometry.NewVector3(0, 1, 0)
	d := geometry.NewVector3(1, 1, 0)

	soup, _ := NewSoup([]geometry.Vector3{a, b, c, b, a, d})
	topo := BuildTopology(soup)

	if topo.EdgeCount() != 5 {
		t.Errorf("expected 5 distinct edges, got %d", topo.EdgeCount())
	}

	shared := topo.Lookup(a, b)
	if shared == nil {
		t.Fatal("shared edge not found")
	}
	if !shared.IsManifold() {
		t.Errorf("shared edge should be manifold, has %d faces", len(shared.Faces))
	}
	if shared.Faces[0] != 0 || shared.Faces[1] != 1 {
		t.Errorf("incident faces should follow input order, got %v", shared.Faces)
	}
}

func TestCubeTopologyFullyManifold(t *testing.T) {
	soup, _ := NewSoup(cubePoints(1))
	topo := BuildTopology(soup)

	// A triangulated cube has 18 distinct edges (12 cube edges + 6 face
	// diagonals), all shared by exactly two triangles.
	if topo.EdgeCount() != 18 {
		t.Errorf("expected 18 edges, got %d", topo.EdgeCount())
	}
	if topo.BoundaryEdgeCount() != 0 {
		t.Errorf("expected 0 boundary edges, got %d", topo.BoundaryEdgeCount())
	}
	for _, edge := range topo.Edges() {
		if !edge.IsManifold() {
			t.Errorf("edge %v-%v has %d faces, expected 2", edge.A, edge.B, len(edge.Faces))
		}
	}
}

func TestSingleTriangleAllBoundary(t *testing.T) {
	soup, _ := NewSoup([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	})
	topo := BuildTopology(soup)

	if topo.EdgeCount() != 3 {
		t.Errorf("expected 3 edges, got %d", topo.EdgeCount())
	}
	if topo.BoundaryEdgeCount() != 3 {
		t.Errorf("expected 3 boundary edges, got %d", topo.BoundaryEdgeCount())
	}
}

func TestTJunctionDetection(t *testing.T) {
	// Three triangles fanning out from the same edge.
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(0, 0, 1)

	soup, _ := NewSoup([]geometry.Vector3{
		a, b, geometry.NewVector3(1, 0, 0),
		a, b, geometry.NewVector3(0, 1, 0),
		a, b, geometry.NewVector3(-1, 0, 0),
	})
	topo := BuildTopology(soup)

	shared := topo.Lookup(a, b)
	if shared == nil {
		t.Fatal("shared edge not found")
	}
	if !shared.IsTJunction() {
		t.Errorf("expected a T-junction, edge has %d faces", len(shared.Faces))
	}
}
