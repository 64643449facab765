package validation

// Severity classifies a check outcome. Renderers are expected to handle
// all three variants exhaustively.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)
