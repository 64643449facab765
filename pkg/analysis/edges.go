package analysis

import (
	"math"

	"github.com/protolab3d/meshcheck/pkg/mesh"
)

// An edge is sharp when its dihedral angle is below this threshold.
const sharpAngleThreshold = 90.0

// analyzeEdges classifies every edge by incident face count and computes
// dihedral angles across manifold edges. For each sharp edge a local
// curvature radius is estimated from the edge length and the angle offset
// from a right angle; the minimum of those estimates is reported, with 0 as
// the explicit "no sharp edges" sentinel.
func analyzeEdges(t *mesh.Topology) EdgeData {
	data := EdgeData{}
	minRadius := 0.0

	for _, edge := range t.Edges() {
		data.TotalEdges++

		switch {
		case edge.IsBoundary():
			data.BoundaryEdges++

		case edge.IsManifold():
			data.ManifoldEdges++

			n1 := t.Normals[edge.Faces[0]]
			n2 := t.Normals[edge.Faces[1]]
			dihedral := dihedralAngle(n1.Dot(n2))
			if dihedral < sharpAngleThreshold {
				data.SharpEdges++
				data.SharpAngles = append(data.SharpAngles, dihedral)

				radius := curvatureRadius(edge.Length(), dihedral)
				if minRadius == 0 || radius < minRadius {
					minRadius = radius
				}
			}

		default:
			data.TJunctions++
		}
	}

	data.MinCurvatureRadius = minRadius
	return data
}

// dihedralAngle converts the dot product of two face normals into the
// dihedral angle in degrees. The dot product is clamped to [-1, 1] so
// float drift never feeds an out-of-range value to Acos.
func dihedralAngle(dot float64) float64 {
	dot = math.Max(-1, math.Min(1, dot))
	return 180.0 - math.Acos(dot)*180.0/math.Pi
}

// curvatureRadius estimates the local curvature radius at a sharp edge of
// length l with the given dihedral angle in degrees.
func curvatureRadius(l, dihedral float64) float64 {
	return l / (2.0 * math.Sin((sharpAngleThreshold-dihedral)*math.Pi/360.0))
}
