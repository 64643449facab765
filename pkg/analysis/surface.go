package analysis

import (
	"math"

	"github.com/protolab3d/meshcheck/pkg/mesh"
)

const (
	surfaceScanLimit   = 1000
	surfaceScanStride  = 3
	heightJumpMin      = 0.1
	featureNoiseFloor  = 0.01
	widthScanLimit     = 500
	featureCountDivide = 5
)

// analyzeSurface estimates embossed/engraved relief from height jumps
// between sampled vertices, and the minimum feature width from the
// smallest observed edge length above a noise floor. Raw relief and
// engraving tallies are divided down to suppress noise-level over-counting.
func analyzeSurface(t *mesh.Topology, minCharacterHeight float64) SurfaceData {
	soup := t.Soup()
	data := SurfaceData{}

	limit := soup.TriangleCount()
	if limit > surfaceScanLimit {
		limit = surfaceScanLimit
	}

	reliefRaw, engravingRaw := 0, 0
	prev := math.NaN()
	for i := 0; i < limit; i += surfaceScanStride {
		a, _, _ := soup.Triangle(i)
		height := a.Z
		if !math.IsNaN(prev) {
			jump := height - prev
			if math.Abs(jump) > heightJumpMin {
				data.HeightVariations++
				if math.Abs(jump) > minCharacterHeight/2 {
					if jump > 0 {
						reliefRaw++
					} else {
						engravingRaw++
					}
				}
			}
		}
		prev = height
	}
	data.Reliefs = reliefRaw / featureCountDivide
	data.Engravings = engravingRaw / featureCountDivide

	widthLimit := soup.TriangleCount()
	if widthLimit > widthScanLimit {
		widthLimit = widthScanLimit
	}
	minWidth := 0.0
	for i := 0; i < widthLimit; i++ {
		a, b, _ := soup.Triangle(i)
		length := a.Distance(b)
		if length > featureNoiseFloor && (minWidth == 0 || length < minWidth) {
			minWidth = length
		}
	}
	data.MinFeatureWidth = minWidth

	return data
}
