package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/protolab3d/meshcheck/pkg/geometry"
	"github.com/protolab3d/meshcheck/pkg/mesh"
)

// A normal bin counts as downward-facing when its Y or Z component is
// below this threshold, covering both vertical-up and depth-up axis
// conventions found in the wild.
const downwardComponentMax = -0.9

// analyzeComplexity computes triangle density, a curvature-variance
// smoothness proxy, flat-base detection via normal binning, and a coarse
// genus estimate from boundary-edge density.
//
// The curvature samples pair consecutive normals by input order, not
// spatial adjacency, so the figure is sensitive to triangle enumeration
// order. Connected-component separation is not implemented; the component
// count is always 1.
func analyzeComplexity(t *mesh.Topology, surfaceArea float64) ComplexityData {
	soup := t.Soup()
	data := ComplexityData{Components: 1}

	if surfaceArea > 0 {
		data.TriangleDensity = float64(soup.TriangleCount()) / surfaceArea
	}

	if len(t.Normals) > 1 {
		samples := make([]float64, 0, len(t.Normals)-1)
		for i := 0; i+1 < len(t.Normals); i++ {
			samples = append(samples, 1.0-t.Normals[i].Dot(t.Normals[i+1]))
		}
		data.CurvatureMean = stat.Mean(samples, nil)
		data.CurvatureVariance = stat.PopVariance(samples, nil)
	}

	data.FlatBase = detectFlatBase(soup, t.Normals)

	genus := t.BoundaryEdgeCount()/6 - 1
	if genus < 0 {
		genus = 0
	}
	data.GenusEstimate = genus

	return data
}

// detectFlatBase bins triangles by their normal direction rounded to one
// decimal place, accumulating area per bin, and reports the largest bin
// whose normal points predominantly downward. Returns nil when no such
// bin exists.
func detectFlatBase(soup mesh.Soup, normals []geometry.Vector3) *FlatBase {
	type bin struct {
		area   float64
		normal geometry.Vector3 // first normal seen in the bin
	}

	bins := make(map[[3]float64]*bin)
	var order [][3]float64
	for i, n := range normals {
		key := [3]float64{round1(n.X), round1(n.Y), round1(n.Z)}
		b, ok := bins[key]
		if !ok {
			b = &bin{normal: n}
			bins[key] = b
			order = append(order, key)
		}
		b.area += soup.Area(i)
	}

	var base *FlatBase
	for _, key := range order {
		if key[1] >= downwardComponentMax && key[2] >= downwardComponentMax {
			continue
		}
		b := bins[key]
		if base == nil || b.area > base.Area {
			base = &FlatBase{Area: b.area, Normal: b.normal}
		}
	}
	return base
}

func round1(c float64) float64 {
	r := math.Round(c*10) / 10
	if r == 0 {
		return 0
	}
	return r
}
