package validation

import (
	"fmt"

	"github.com/protolab3d/meshcheck/pkg/analysis"
)

// CheckResult is the outcome of one guideline check. Passed is false only
// for error-severity violations; advisory findings keep Passed true and
// carry their weight in the Severity field.
type CheckResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail"`
}

// Validate maps the extracted metrics onto the guideline table. The result
// list has a fixed length and order: every check is always present, and
// checks whose underlying metric is degenerate report "not applicable"
// through their message rather than disappearing. Checks are independent;
// no outcome depends on another's.
func Validate(data *analysis.ModelData, g Guidelines) []CheckResult {
	return []CheckResult{
		checkMaxDimensions(data, g),
		checkTolerances(g),
		checkAspectRatio(data, g),
		checkEdges(data, g),
		checkCavities(data, g),
		checkChannels(data, g),
		checkSurfaceFeatures(data, g),
		checkWallThickness(data, g),
		checkFlatBase(data),
		checkThreads(g),
		checkHollowObjects(g),
		checkPartClearance(g),
	}
}

func pass(name, message, detail string) CheckResult {
	return CheckResult{Name: name, Passed: true, Severity: SeverityInfo, Message: message, Detail: detail}
}

func warn(name, message, detail string) CheckResult {
	return CheckResult{Name: name, Passed: true, Severity: SeverityWarning, Message: message, Detail: detail}
}

func fail(name, message, detail string) CheckResult {
	return CheckResult{Name: name, Passed: false, Severity: SeverityError, Message: message, Detail: detail}
}

func checkMaxDimensions(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Dimensioni Massime"

	d := data.Dimensions
	m := g.MaxDimensions
	detail := fmt.Sprintf("model is %.2f x %.2f x %.2f mm, envelope limit is %.0f x %.0f x %.0f mm",
		d.X, d.Y, d.Z, m.X, m.Y, m.Z)

	if d.X > m.X || d.Y > m.Y || d.Z > m.Z {
		return fail(name, "model exceeds the maximum build envelope", detail)
	}
	return pass(name, "model fits within the build envelope", detail)
}

func checkTolerances(g Guidelines) CheckResult {
	const name = "Tolleranze"
	return pass(name,
		"dimensional tolerance advisory",
		fmt.Sprintf("expect a typical process tolerance of ±%.1f mm on all dimensions; critical fits should be post-machined", g.Tolerance))
}

func checkAspectRatio(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Proporzioni"

	minDim := data.BoundingBox.MinDimension()
	maxDim := data.BoundingBox.MaxDimension()
	if minDim <= 0 {
		return pass(name, "aspect ratio not applicable", "model has a zero extent along at least one axis")
	}

	ratio := maxDim / minDim
	detail := fmt.Sprintf("aspect ratio is %.1f:1 (limit %.0f:1, recommended %.0f:1)",
		ratio, g.MaxAspectRatio, g.RecommendedAspectRatio)

	switch {
	case ratio > g.MaxAspectRatio:
		return fail(name, "model is too elongated to print reliably", detail)
	case ratio > g.RecommendedAspectRatio:
		return warn(name, "model exceeds the recommended aspect ratio", detail)
	}
	return pass(name, "model proportions are within limits", detail)
}

func checkEdges(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Spigoli e Raggi di Curvatura"

	e := data.Edges
	if e.SharpEdges == 0 && e.TJunctions == 0 {
		return pass(name, "no sharp edges or junctions detected",
			fmt.Sprintf("%d edges analyzed, all dihedral angles at or above 90°", e.TotalEdges))
	}

	detail := fmt.Sprintf("%d sharp edges (minimum estimated curvature radius %.2f mm, guideline %.1f mm), %d T-junctions (guideline radius %.1f mm)",
		e.SharpEdges, e.MinCurvatureRadius, g.MinCurvatureRadius, e.TJunctions, g.MinTJunctionRadius)

	tightRadius := e.MinCurvatureRadius > 0 && e.MinCurvatureRadius < g.MinCurvatureRadius
	if tightRadius || e.TJunctions > 0 {
		return warn(name, "sharp features may chip or trap resin", detail)
	}
	return pass(name, "sharp edges are within the curvature guideline", detail)
}

func checkCavities(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Cavità e Fori"

	c := data.Cavities
	if c.PotentialCavities == 0 && c.BlindHoles == 0 && c.ThroughHoles == 0 {
		return pass(name, "no cavities detected",
			fmt.Sprintf("%d boundary edges, %d concave-region triangles", c.BoundaryEdges, c.ConcaveTriangles))
	}

	detail := fmt.Sprintf("estimated %d cavities, %d blind holes, %d through holes; estimated depth %.2f mm against a minimum width of %.1f mm (max depth/width ratio %.0f)",
		c.PotentialCavities, c.BlindHoles, c.ThroughHoles, c.EstimatedDepth, g.MinCavityWidth, g.MaxCavityDepthRatio)

	if c.EstimatedDepth > g.MaxCavityDepthRatio*g.MinCavityWidth {
		return warn(name, "deep cavities may be hard to clean", detail)
	}
	return pass(name, "cavity proportions are within limits", detail)
}

func checkChannels(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Canali"

	c := data.Channels
	if c.PotentialChannels == 0 || len(c.Diameters) == 0 {
		return pass(name, "no channels detected",
			fmt.Sprintf("%d tubular normal samples", c.TubularSamples))
	}

	depth := 0.0
	if len(c.Depths) > 0 {
		depth = c.Depths[0]
	}

	for _, diameter := range c.Diameters {
		band := findChannelBand(g.ChannelBands, diameter)
		if band == nil {
			continue
		}
		if band.MaxStraightDepth > 0 && depth > band.MaxStraightDepth {
			return warn(name, "channel depth exceeds the limit for its diameter",
				fmt.Sprintf("estimated diameter %.2f mm at depth %.2f mm; a straight channel of %.0f–%.0f mm diameter should not exceed %.0f mm",
					diameter, depth, band.MinDiameter, band.MaxDiameter, band.MaxStraightDepth))
		}
	}

	return pass(name, "channel proportions are within limits",
		fmt.Sprintf("estimated %d channels (%s), diameters %.2f/%.2f mm, depth %.2f mm",
			c.PotentialChannels, c.Shape, c.Diameters[0], c.Diameters[1], depth))
}

func findChannelBand(bands []ChannelBand, diameter float64) *ChannelBand {
	for i := range bands {
		b := &bands[i]
		if diameter < b.MinDiameter {
			continue
		}
		if b.MaxDiameter > 0 && diameter >= b.MaxDiameter {
			continue
		}
		return b
	}
	return nil
}

func checkSurfaceFeatures(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Rilievi e Incisioni"

	s := data.Surface
	if s.Reliefs == 0 && s.Engravings == 0 {
		return pass(name, "no relief or engraving detected",
			fmt.Sprintf("%d height variations sampled", s.HeightVariations))
	}

	detail := fmt.Sprintf("estimated %d reliefs and %d engravings; minimum feature width %.2f mm against a guideline of %.1f mm line width and %.1f mm character height",
		s.Reliefs, s.Engravings, s.MinFeatureWidth, g.MinLineWidth, g.MinCharacterHeight)

	if s.MinFeatureWidth > 0 && s.MinFeatureWidth < g.MinLineWidth {
		return warn(name, "surface features may be too fine to resolve", detail)
	}
	return pass(name, "surface features are within limits", detail)
}

func checkWallThickness(data *analysis.ModelData, g Guidelines) CheckResult {
	const name = "Spessore delle Pareti"

	t := data.Thickness
	detail := fmt.Sprintf("sampled thickness min %.2f / mean %.2f / max %.2f mm over %d samples, %d below the %.1f mm minimum",
		t.MinThickness, t.MeanThickness, t.MaxThickness, t.SampleCount, t.ThinAreas, g.MinWallThickness)
	if t.Synthetic {
		detail += " (no valid samples found, synthetic fallback used)"
	}

	switch {
	case t.MinThickness < g.MinWallThickness:
		return fail(name, "walls are thinner than the printable minimum", detail)
	case t.MaxThickness > g.MaxWallThickness:
		return warn(name, "thick walls may warp or cure unevenly", detail)
	}
	return pass(name, "wall thickness is within limits", detail)
}

func checkFlatBase(data *analysis.ModelData) CheckResult {
	const name = "Base di Appoggio"

	base := data.Complexity.FlatBase
	if base == nil {
		return warn(name, "no flat base detected",
			"the model has no predominantly downward-facing flat region; consider adding one or printing on supports")
	}
	return pass(name, "flat base detected",
		fmt.Sprintf("base area %.2f mm² with normal (%.2f, %.2f, %.2f)",
			base.Area, base.Normal.X, base.Normal.Y, base.Normal.Z))
}

// Thread geometry is not reliably extractable from triangle-soup
// heuristics; this check surfaces the guideline text only.
func checkThreads(g Guidelines) CheckResult {
	const name = "Filettature"
	return pass(name, "thread size advisory",
		fmt.Sprintf("printed threads below %s are not reliable; model larger threads or use inserts", g.MinThreadSize))
}

func checkHollowObjects(g Guidelines) CheckResult {
	const name = "Oggetti Cavi"
	return pass(name, "hollow object advisory",
		fmt.Sprintf("hollow sections need walls of at least %.1f mm and %d drain holes of %.1f mm or more to avoid trapped material",
			g.MinHollowWallThickness, g.RecommendedDrainHoles, g.MinDrainHoleDiameter))
}

// Multi-body separation is out of scope for the soup heuristics; advisory
// text only.
func checkPartClearance(g Guidelines) CheckResult {
	const name = "Distanza tra le Parti"
	return pass(name, "inter-part clearance advisory",
		fmt.Sprintf("keep at least %.1f mm between separate parts or they may fuse during printing", g.MinPartClearance))
}
