package analysis

import (
	"github.com/protolab3d/meshcheck/pkg/geometry"
)

// ModelData aggregates every metric extracted from one triangle soup.
// It is created once per successfully analyzed mesh and never mutated
// afterwards; the validation engine only reads it.
type ModelData struct {
	TriangleCount int `json:"triangleCount"`
	VertexCount   int `json:"vertexCount"`
	EdgeCount     int `json:"edgeCount"`

	BoundingBox geometry.BoundingBox `json:"boundingBox"`
	Dimensions  geometry.Vector3     `json:"dimensions"`
	Volume      float64              `json:"volume"`
	SurfaceArea float64              `json:"surfaceArea"`

	// NormalHistogram is the mean absolute per-axis normal component across
	// all triangles: a coarse orientation profile, not a solid angle
	// distribution.
	NormalHistogram [3]float64 `json:"normalHistogram"`

	Edges      EdgeData       `json:"edges"`
	Cavities   CavityData     `json:"cavities"`
	Channels   ChannelData    `json:"channels"`
	Surface    SurfaceData    `json:"surface"`
	Thickness  ThicknessData  `json:"thickness"`
	Complexity ComplexityData `json:"complexity"`
}

// EdgeData summarizes edge classification and dihedral angle analysis.
type EdgeData struct {
	TotalEdges    int `json:"totalEdges"`
	ManifoldEdges int `json:"manifoldEdges"`
	BoundaryEdges int `json:"boundaryEdges"`
	TJunctions    int `json:"tJunctions"`

	SharpEdges  int       `json:"sharpEdges"`
	SharpAngles []float64 `json:"sharpAngles"`

	// MinCurvatureRadius is the smallest curvature radius estimated across
	// all sharp edges. 0 means no sharp edge exists, not a physical radius.
	MinCurvatureRadius float64 `json:"minCurvatureRadius"`
}

// CavityData holds the blind/through hole and boundary loop estimates.
// All counts are density-based heuristics, not traced regions.
type CavityData struct {
	BoundaryEdges     int     `json:"boundaryEdges"`
	ConcaveTriangles  int     `json:"concaveTriangles"`
	PotentialCavities int     `json:"potentialCavities"`
	BoundaryLoops     int     `json:"boundaryLoops"`
	BlindHoles        int     `json:"blindHoles"`
	ThroughHoles      int     `json:"throughHoles"`
	EstimatedDepth    float64 `json:"estimatedDepth"`
}

// ChannelData holds the tubular feature estimates from normal sampling.
type ChannelData struct {
	TubularSamples    int       `json:"tubularSamples"`
	PotentialChannels int       `json:"potentialChannels"`
	Diameters         []float64 `json:"diameters"`
	Depths            []float64 `json:"depths"`

	// Shape is always "straight": no curvature samples feed the curved
	// classification, so curved channels are never detected. The field is
	// kept so a curvature-based classifier can slot in without a schema
	// change.
	Shape string `json:"shape"`
}

// SurfaceData holds the relief/engraving estimates from height sampling.
type SurfaceData struct {
	HeightVariations int     `json:"heightVariations"`
	Reliefs          int     `json:"reliefs"`
	Engravings       int     `json:"engravings"`
	MinFeatureWidth  float64 `json:"minFeatureWidth"`
}

// ThicknessData aggregates the Monte-Carlo wall thickness samples.
type ThicknessData struct {
	SampleCount   int     `json:"sampleCount"`
	MinThickness  float64 `json:"minThickness"`
	MaxThickness  float64 `json:"maxThickness"`
	MeanThickness float64 `json:"meanThickness"`

	// ThinAreas counts samples below the minimum wall thickness the sampler
	// was configured with.
	ThinAreas int `json:"thinAreas"`

	// Synthetic is set when no valid sample was found and the single
	// fallback sample (10% of the smallest bounding box dimension) was used.
	Synthetic bool `json:"synthetic"`
}

// FlatBase describes the largest downward-facing normal bin.
type FlatBase struct {
	Area   float64          `json:"area"`
	Normal geometry.Vector3 `json:"normal"`
}

// ComplexityData holds the geometric complexity estimators.
type ComplexityData struct {
	TriangleDensity   float64 `json:"triangleDensity"`
	CurvatureMean     float64 `json:"curvatureMean"`
	CurvatureVariance float64 `json:"curvatureVariance"`

	// FlatBase is nil when no predominantly downward-facing bin exists.
	FlatBase *FlatBase `json:"flatBase"`

	// GenusEstimate is a coarse boundary-edge heuristic, not an Euler
	// characteristic computation.
	GenusEstimate int `json:"genusEstimate"`

	// Components is always 1: connected-component separation is out of scope.
	Components int `json:"components"`
}
