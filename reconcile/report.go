package reconcile

import (
	"fmt"

	"github.com/erraggy/dirattrs/internal/severity"
)

// Severity indicates how strongly a mismatch blocks a merge
type Severity = severity.Severity

const (
	// SeverityInfo indicates a notice that does not affect the outcome
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates a tolerated difference
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates an attribute that blocks the merge
	SeverityError = severity.SeverityError
	// SeverityCritical indicates features that cannot be merged at all
	SeverityCritical = severity.SeverityCritical
)

// MismatchKind identifies why an attribute blocks a merge.
type MismatchKind string

const (
	// MismatchNotAdjacent means the lines do not meet at the junction.
	MismatchNotAdjacent MismatchKind = "not-adjacent"
	// MismatchDuplicateGeometry means both features carry the same line.
	MismatchDuplicateGeometry MismatchKind = "duplicate-geometry"
	// MismatchValue means two compared values differ.
	MismatchValue MismatchKind = "value"
	// MismatchNotNull means an end attribute at the junction holds a value.
	MismatchNotNull MismatchKind = "not-null"
)

// Mismatch describes one attribute that prevents a merge.
type Mismatch struct {
	// Field is the attribute being checked
	Field string
	// Kind is the reason the check failed
	Kind MismatchKind
	// Field1 is the attribute read from the first feature
	Field1 string
	// Value1 is the value read from the first feature (substituted if directional)
	Value1 any
	// Field2 is the attribute read from the second feature
	Field2 string
	// Value2 is the value read from the second feature (substituted if directional)
	Value2 any
	// Severity is SeverityCritical for a failed junction, SeverityError otherwise
	Severity Severity
}

// String returns a one-line description of the mismatch.
func (m Mismatch) String() string {
	switch m.Kind {
	case MismatchNotAdjacent:
		return fmt.Sprintf("%s: lines not adjacent", m.Field)
	case MismatchDuplicateGeometry:
		return fmt.Sprintf("%s: identical lines", m.Field)
	case MismatchNotNull:
		return fmt.Sprintf("%s: %s=%v and %s=%v must both be null", m.Field, m.Field1, m.Value1, m.Field2, m.Value2)
	default:
		return fmt.Sprintf("%s: %s=%v != %s=%v", m.Field, m.Field1, m.Value1, m.Field2, m.Value2)
	}
}

// MergeReport is the structured result of Engine.Check.
type MergeReport struct {
	// Orientation is the resolved junction (zero if the lines do not meet)
	Orientation Orientation
	// Mergeable is true when no mismatch blocks the merge
	Mergeable bool
	// Mismatches lists failing attributes in field order
	Mismatches []Mismatch
}

// Fields returns the names of the failing attributes in field order.
func (r *MergeReport) Fields() []string {
	names := make([]string, 0, len(r.Mismatches))
	for _, m := range r.Mismatches {
		names = append(names, m.Field)
	}
	return names
}

// HasCritical reports whether the features could not be compared at all.
func (r *MergeReport) HasCritical() bool {
	for _, m := range r.Mismatches {
		if m.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
