package analysis

import (
	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// cubePoints returns a closed, consistently outward-wound cube of the
// given size with one corner at the origin, as 12 triangles.
func cubePoints(s float64) []geometry.Vector3 {
	quads := [][4][3]float64{
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
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

// invertedCubePoints flips every triangle so all normals face inward.
func invertedCubePoints(s float64) []geometry.Vector3 {
	points := cubePoints(s)
	for i := 0; i < len(points); i += 3 {
		points[i+1], points[i+2] = points[i+2], points[i+1]
	}
	return points
}

// platePoints returns a flat square plate in the plane z=z0, subdivided
// into cells x cells quads of width w/cells, triangulated row-major. With
// up=true the normals face +Z, otherwise -Z.
func platePoints(z0, w float64, cells int, up bool) []geometry.Vector3 {
	var points []geometry.Vector3
	d := w / float64(cells)
	for row := 0; row < cells; row++ {
		for col := 0; col < cells; col++ {
			x0, y0 := float64(col)*d, float64(row)*d
			x1, y1 := x0+d, y0+d

			p00 := geometry.NewVector3(x0, y0, z0)
			p10 := geometry.NewVector3(x1, y0, z0)
			p11 := geometry.NewVector3(x1, y1, z0)
			p01 := geometry.NewVector3(x0, y1, z0)

			if up {
				points = append(points, p00, p10, p11)
				points = append(points, p00, p11, p01)
			} else {
				points = append(points, p00, p11, p10)
				points = append(points, p00, p01, p11)
			}
		}
	}
	return points
}

// shellPoints returns two parallel plates with outward-opposed normals,
// a stand-in for a wall of uniform thickness.
func shellPoints(w, thickness float64, cells int) []geometry.Vector3 {
	points := platePoints(0, w, cells, false)
	return append(points, platePoints(thickness, w, cells, true)...)
}

// tubePoints returns the four vertical walls of an open square tube
// (no top or bottom), each wall subdivided along Z into the given number
// of segments. Every normal is horizontal.
func tubePoints(w, h float64, segments int) []geometry.Vector3 {
	var points []geometry.Vector3
	dz := h / float64(segments)

	wall := func(a, b geometry.Vector3) {
		for s := 0; s < segments; s++ {
			z0, z1 := float64(s)*dz, float64(s+1)*dz
			a0 := geometry.NewVector3(a.X, a.Y, z0)
			b0 := geometry.NewVector3(b.X, b.Y, z0)
			a1 := geometry.NewVector3(a.X, a.Y, z1)
			b1 := geometry.NewVector3(b.X, b.Y, z1)
			points = append(points, a0, b0, b1)
			points = append(points, a0, b1, a1)
		}
	}

	wall(geometry.NewVector3(0, 0, 0), geometry.NewVector3(w, 0, 0))
	wall(geometry.NewVector3(w, 0, 0), geometry.NewVector3(w, w, 0))
	wall(geometry.NewVector3(w, w, 0), geometry.NewVector3(0, w, 0))
	wall(geometry.NewVector3(0, w, 0), geometry.NewVector3(0, 0, 0))

	return points
}
