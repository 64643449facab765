package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/protolab3d/meshcheck/pkg/analysis"
	"github.com/protolab3d/meshcheck/pkg/validation"
)

// Document bundles one analysis run with its check results for
// serialization.
type Document struct {
	Model  *analysis.ModelData      `json:"model"`
	Checks []validation.CheckResult `json:"checks"`
}

// JSON writes the document as indented JSON, for headless/CI consumers.
func JSON(w io.Writer, data *analysis.ModelData, checks []validation.CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Model: data, Checks: checks})
}

// Text writes a human-readable report: a model summary followed by one
// line per check, in the engine's fixed order.
func Text(w io.Writer, data *analysis.ModelData, checks []validation.CheckResult) error {
	fmt.Fprintln(w, "Model Summary")
	fmt.Fprintln(w, "=============")
	fmt.Fprintf(w, "Triangles: %d\n", data.TriangleCount)
	fmt.Fprintf(w, "Edges: %d (%d boundary, %d T-junctions)\n",
		data.EdgeCount, data.Edges.BoundaryEdges, data.Edges.TJunctions)
	fmt.Fprintf(w, "Dimensions: %.2f x %.2f x %.2f mm\n",
		data.Dimensions.X, data.Dimensions.Y, data.Dimensions.Z)
	fmt.Fprintf(w, "Volume: %.2f mm³\n", data.Volume)
	fmt.Fprintf(w, "Surface Area: %.2f mm²\n\n", data.SurfaceArea)

	fmt.Fprintln(w, "Design Rule Checks")
	fmt.Fprintln(w, "==================")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, check := range checks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", statusLabel(check), check.Severity, check.Name, check.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", Summary(checks))
	return nil
}

// Details writes the long detail string of every check.
func Details(w io.Writer, checks []validation.CheckResult) {
	for _, check := range checks {
		fmt.Fprintf(w, "%s [%s]\n", check.Name, check.Severity)
		fmt.Fprintf(w, "  %s\n", check.Message)
		fmt.Fprintf(w, "  %s\n\n", check.Detail)
	}
}

// Summary returns a one-line verdict over the full check list.
func Summary(checks []validation.CheckResult) string {
	errors, warnings := 0, 0
	for _, check := range checks {
		switch check.Severity {
		case validation.SeverityError:
			errors++
		case validation.SeverityWarning:
			warnings++
		}
	}
	switch {
	case errors > 0:
		return fmt.Sprintf("FAILED: %d of %d checks failed, %d warnings", errors, len(checks), warnings)
	case warnings > 0:
		return fmt.Sprintf("PASSED with %d warnings (%d checks)", warnings, len(checks))
	}
	return fmt.Sprintf("PASSED: all %d checks passed", len(checks))
}

// HasErrors reports whether any check failed.
func HasErrors(checks []validation.CheckResult) bool {
	for _, check := range checks {
		if !check.Passed {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any check carries warning severity.
func HasWarnings(checks []validation.CheckResult) bool {
	for _, check := range checks {
		if check.Severity == validation.SeverityWarning {
			return true
		}
	}
	return false
}

func statusLabel(check validation.CheckResult) string {
	if !check.Passed {
		return "FAIL"
	}
	if check.Severity == validation.SeverityWarning {
		return "WARN"
	}
	return "PASS"
}
