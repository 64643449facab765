package analysis

import (
	"math"

	"github.com/protolab3d/meshcheck/pkg/mesh"
)

const (
	channelSampleStride = 10
	samplesPerChannel   = 20
)

// analyzeChannels estimates tubular (cylindrical) features by sampling
// every 10th triangle normal. A sample counts as tubular when its
// horizontal component dominates and its vertical component is small,
// consistent with a surface tangent to a roughly vertical cylinder. The
// diameter and depth figures are fixed fractions of the bounding box, not
// fitted cylinders.
func analyzeChannels(t *mesh.Topology) ChannelData {
	tubular := 0
	for i := 0; i < len(t.Normals); i += channelSampleStride {
		n := t.Normals[i]
		horizontal := math.Hypot(n.X, n.Y)
		if horizontal > 0.8 && math.Abs(n.Z) < 0.3 {
			tubular++
		}
	}

	data := ChannelData{
		TubularSamples:    tubular,
		PotentialChannels: tubular / samplesPerChannel,
		Shape:             "straight",
	}

	if tubular > 5 {
		size := t.Bounds.Size()
		data.Diameters = []float64{0.1 * size.X, 0.1 * size.Y}
		data.Depths = []float64{0.5 * size.Z}
	}

	return data
}
