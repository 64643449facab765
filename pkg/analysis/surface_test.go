package analysis

import (
	"math"
	"testing"

	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// steppedPoints returns n unit triangles whose height alternates between
// 0 and 2 from one triangle to the next.
func steppedPoints(n int) []geometry.Vector3 {
	var points []geometry.Vector3
	for i := 0; i < n; i++ {
		x := float64(i) * 2
		z := float64(i%2) * 2
		points = append(points,
			geometry.NewVector3(x, 0, z),
			geometry.NewVector3(x+1, 0, z),
			geometry.NewVector3(x, 1, z),
		)
	}
	return points
}

func TestHeightStepsClassifiedAsReliefAndEngraving(t *testing.T) {
	// 60 triangles sampled at stride 3 yields 20 samples whose heights
	// alternate 0, 2, 0, ... Every jump exceeds both the 0.1 variation
	// floor and half the 1.5 character height: 10 rises and 9 drops,
	// divided by 5 to suppress noise-level over-counting.
	points := make([]geometry.Vector3, 0, 180)
	for i := 0; i < 60; i++ {
		x := float64(i) * 2
		z := float64((i/3)%2) * 2
		points = append(points,
			geometry.NewVector3(x, 0, z),
			geometry.NewVector3(x+1, 0, z),
			geometry.NewVector3(x, 1, z),
		)
	}

	data, err := Analyze(points)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	s := data.Surface
	if s.HeightVariations != 19 {
		t.Errorf("HeightVariations: expected 19, got %d", s.HeightVariations)
	}
	if s.Reliefs != 2 {
		t.Errorf("Reliefs: expected 10/5 = 2, got %d", s.Reliefs)
	}
	if s.Engravings != 1 {
		t.Errorf("Engravings: expected 9/5 = 1, got %d", s.Engravings)
	}
}

func TestMinFeatureWidthFromEdgeLengths(t *testing.T) {
	data, err := Analyze(steppedPoints(4))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	// The first edge of every triangle has length 1.
	if math.Abs(data.Surface.MinFeatureWidth-1.0) > 1e-10 {
		t.Errorf("MinFeatureWidth: expected 1, got %v", data.Surface.MinFeatureWidth)
	}
}

func TestFlatSurfaceHasNoFeatures(t *testing.T) {
	data, err := Analyze(platePoints(0, 10, 4, true))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	s := data.Surface
	if s.HeightVariations != 0 || s.Reliefs != 0 || s.Engravings != 0 {
		t.Errorf("expected no surface features on a flat plate, got %+v", s)
	}
}
