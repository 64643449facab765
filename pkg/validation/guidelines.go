package validation

import (
	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// ChannelBand is one diameter band of the channel depth guideline.
// A zero MaxDiameter means the band is open-ended; a zero MaxStraightDepth
// or MinCurveRadius means the band imposes no such limit.
type ChannelBand struct {
	MinDiameter      float64
	MaxDiameter      float64
	MaxStraightDepth float64
	MinCurveRadius   float64
}

// Guidelines is the manufacturing design-rule threshold table. It is a
// plain value passed into Validate, never package-level state, so rule
// sets for different materials or processes can be swapped freely.
// All lengths are millimeters.
type Guidelines struct {
	MaxDimensions geometry.Vector3

	// Tolerance is the typical achievable process tolerance, surfaced as
	// an advisory only.
	Tolerance float64

	MaxAspectRatio         float64
	RecommendedAspectRatio float64

	MinWallThickness float64
	MaxWallThickness float64

	MinCurvatureRadius float64
	MinTJunctionRadius float64

	MinCavityWidth      float64
	MaxCavityDepthRatio float64

	ChannelBands []ChannelBand

	MinCharacterHeight float64
	MinLineWidth       float64

	MinThreadSize string

	MinHollowWallThickness float64
	MinDrainHoleDiameter   float64
	RecommendedDrainHoles  int

	MinPartClearance float64
}

// Default returns the reference guideline table.
func Default() Guidelines {
	return Guidelines{
		MaxDimensions: geometry.NewVector3(50, 50, 50),

		Tolerance: 0.1,

		MaxAspectRatio:         10.0,
		RecommendedAspectRatio: 5.0,

		MinWallThickness: 1.0,
		MaxWallThickness: 10.0,

		MinCurvatureRadius: 0.5,
		MinTJunctionRadius: 1.0,

		MinCavityWidth:      2.0,
		MaxCavityDepthRatio: 2.0,

		ChannelBands: []ChannelBand{
			{MinDiameter: 1, MaxDiameter: 3, MaxStraightDepth: 10},
			{MinDiameter: 3, MaxDiameter: 5, MaxStraightDepth: 30},
			{MinDiameter: 5, MinCurveRadius: 25},
		},

		MinCharacterHeight: 1.5,
		MinLineWidth:       0.8,

		MinThreadSize: "M2",

		MinHollowWallThickness: 1.0,
		MinDrainHoleDiameter:   2.0,
		RecommendedDrainHoles:  2,

		MinPartClearance: 0.5,
	}
}
