package analysis

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/protolab3d/meshcheck/pkg/mesh"
)

const (
	maxThicknessSamples   = 100
	thicknessSampleRatio  = 10
	candidateStride       = 5
	opposedNormalMax      = -0.5
	thicknessNoiseFloor   = 0.1
	syntheticSampleFactor = 0.1
)

// sampleThickness is a Monte-Carlo estimator of local material thickness.
// For each randomly chosen source triangle it searches a strided subset of
// triangles for the nearest centroid on a roughly opposed face; that
// distance is the thickness sample. The centroid-to-centroid distance is a
// coarse proxy for a true opposite-surface ray intersection and can both
// over- and under-estimate thickness on non-convex geometry.
//
// The generator is injected so runs are reproducible under a fixed seed.
func sampleThickness(t *mesh.Topology, rng *rand.Rand, minWall float64) ThicknessData {
	soup := t.Soup()
	n := soup.TriangleCount()

	sampleCount := n / thicknessSampleRatio
	if sampleCount > maxThicknessSamples {
		sampleCount = maxThicknessSamples
	}

	var samples []float64
	for s := 0; s < sampleCount; s++ {
		i := rng.Intn(n)
		centroid := soup.Centroid(i)
		normal := t.Normals[i]

		nearest := 0.0
		for j := 0; j < n; j += candidateStride {
			if j == i {
				continue
			}
			if normal.Dot(t.Normals[j]) >= opposedNormalMax {
				continue
			}
			dist := centroid.Distance(soup.Centroid(j))
			if dist > thicknessNoiseFloor && (nearest == 0 || dist < nearest) {
				nearest = dist
			}
		}
		if nearest > 0 {
			samples = append(samples, nearest)
		}
	}

	synthetic := false
	if len(samples) == 0 {
		samples = []float64{syntheticSampleFactor * t.Bounds.MinDimension()}
		synthetic = true
	}

	data := ThicknessData{
		SampleCount:   len(samples),
		MinThickness:  floats.Min(samples),
		MaxThickness:  floats.Max(samples),
		MeanThickness: floats.Sum(samples) / float64(len(samples)),
		Synthetic:     synthetic,
	}
	for _, sample := range samples {
		if sample < minWall {
			data.ThinAreas++
		}
	}
	return data
}
