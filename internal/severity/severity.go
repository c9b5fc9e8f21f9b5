// Package severity provides severity levels for mismatch diagnostics
// reported by the reconcile package.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates how strongly a mismatch prevents two features from
// being treated as one.
type Severity int

const (
	// SeverityError indicates a mismatch that blocks a merge or equality.
	SeverityError Severity = iota

	// SeverityWarning indicates a difference that is tolerated but worth
	// reporting.
	SeverityWarning

	// SeverityInfo indicates a notice with no effect on the outcome.
	SeverityInfo

	// SeverityCritical indicates features that cannot be compared at all,
	// e.g. lines that do not touch.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Blocks reports whether a diagnostic of this severity prevents a merge.
func (s Severity) Blocks() bool {
	return s == SeverityError || s == SeverityCritical
}
