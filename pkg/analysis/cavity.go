package analysis

import (
	"github.com/protolab3d/meshcheck/pkg/mesh"
)

// Calibration constants for the boundary-edge density heuristics: typical
// triangulated circular openings contribute roughly this many boundary
// edges per loop / blind hole / through hole.
const (
	edgesPerLoop        = 3
	edgesPerBlindHole   = 6
	edgesPerThroughHole = 12
	trianglesPerCavity  = 10
)

// analyzeCavities estimates blind/through holes and boundary loops from
// boundary-edge density, and concave regions from triangles whose normal
// points strongly toward the bounding box center. None of these trace
// connected regions; they are single-pass density proxies.
func analyzeCavities(t *mesh.Topology) CavityData {
	soup := t.Soup()
	center := t.Bounds.Center()

	concave := 0
	for i := 0; i < soup.TriangleCount(); i++ {
		toCenter := center.Sub(soup.Centroid(i)).Normalize()
		if t.Normals[i].Dot(toCenter) > 0.7 {
			concave++
		}
	}

	boundary := t.BoundaryEdgeCount()

	data := CavityData{
		BoundaryEdges:     boundary,
		ConcaveTriangles:  concave,
		PotentialCavities: concave / trianglesPerCavity,
		BoundaryLoops:     boundary / edgesPerLoop,
		BlindHoles:        boundary / edgesPerBlindHole,
		ThroughHoles:      boundary / edgesPerThroughHole,
	}

	if data.PotentialCavities > 0 || data.BlindHoles > 0 || data.ThroughHoles > 0 {
		data.EstimatedDepth = 0.3 * t.Bounds.MinDimension()
	}

	return data
}
