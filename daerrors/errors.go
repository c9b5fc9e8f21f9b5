package daerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConflictingMapping indicates a schema definition tried to remap a name or value.
	ErrConflictingMapping = errors.New("conflicting mapping")

	// ErrNotAdjacent indicates two lines do not touch at a shared endpoint.
	ErrNotAdjacent = errors.New("lines not adjacent")

	// ErrUnsupportedLoop indicates a closed line was supplied where a direction is required.
	ErrUnsupportedLoop = errors.New("unsupported loop")

	// ErrInvalidGeometry indicates a feature has a missing or degenerate line.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// MappingKind identifies which schema table a conflicting mapping belongs to.
type MappingKind string

const (
	// MappingEndPair is the start/end attribute name table.
	MappingEndPair MappingKind = "end pair"
	// MappingSidePair is the left/right attribute name table.
	MappingSidePair MappingKind = "side pair"
	// MappingReverse is the reverse attribute name table.
	MappingReverse MappingKind = "reverse"
	// MappingDirectionalValue is a per-attribute value substitution table.
	MappingDirectionalValue MappingKind = "directional value"
	// MappingRole is the attribute role table (start, end, side, directional).
	MappingRole MappingKind = "role"
)

// ConflictingMappingError reports a schema definition that would map a name
// (or a directional value) to a second, different partner.
// A schema builder that returned this error must not be used.
type ConflictingMappingError struct {
	// Kind is the table the conflict was detected in
	Kind MappingKind
	// Attribute is the attribute owning a directional value table (empty for name tables)
	Attribute string
	// Key is the name or value that is already mapped
	Key any
	// Existing is the current partner of Key
	Existing any
	// Requested is the partner the definition tried to assign
	Requested any
}

// Error returns a human-readable error message.
func (e *ConflictingMappingError) Error() string {
	msg := "conflicting mapping"
	if e.Kind != "" {
		msg += " in " + string(e.Kind) + " table"
	}
	if e.Attribute != "" {
		msg += " for " + e.Attribute
	}
	return msg + fmt.Sprintf(": cannot override %v=%v with %v", e.Key, e.Existing, e.Requested)
}

// Unwrap returns nil as ConflictingMappingError has no underlying cause.
func (e *ConflictingMappingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ConflictingMappingError) Is(target error) bool {
	return target == ErrConflictingMapping
}

// NotAdjacentError reports two lines that do not share an endpoint in one of
// the four supported touch configurations.
type NotAdjacentError struct {
	// Point is the junction coordinate that was tested (nil if none was given)
	Point []float64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *NotAdjacentError) Error() string {
	msg := "lines not adjacent"
	if len(e.Point) > 0 {
		msg += fmt.Sprintf(" at %v", e.Point)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as NotAdjacentError has no underlying cause.
func (e *NotAdjacentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NotAdjacentError) Is(target error) bool {
	return target == ErrNotAdjacent
}

// UnsupportedLoopError reports a closed line (first point equals last point).
type UnsupportedLoopError struct {
	// Feature identifies the offending operand, e.g. "feature1"
	Feature string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedLoopError) Error() string {
	msg := "unsupported loop"
	if e.Feature != "" {
		msg += " in " + e.Feature
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnsupportedLoopError has no underlying cause.
func (e *UnsupportedLoopError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedLoopError) Is(target error) bool {
	return target == ErrUnsupportedLoop
}

// GeometryError reports a feature whose geometry field is missing, has the
// wrong type or has fewer than two points.
type GeometryError struct {
	// Field is the geometry field name
	Field string
	// Message describes the problem
	Message string
}

// Error returns a human-readable error message.
func (e *GeometryError) Error() string {
	msg := "invalid geometry"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as GeometryError has no underlying cause.
func (e *GeometryError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
