// Package daerrors provides structured error types for the dirattrs library.
//
// Import path: github.com/erraggy/dirattrs/daerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish schema definition problems from input-shape
// problems at merge or comparison time.
//
// # Error Types
//
//   - [ConflictingMappingError]: a name or value already paired to a different partner
//   - [NotAdjacentError]: two lines do not share an endpoint in a supported configuration
//   - [UnsupportedLoopError]: a closed line has no defined direction
//   - [GeometryError]: a feature has no usable line geometry
//   - [ConfigError]: invalid options or schema catalog configuration
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrConflictingMapping]: Matches any [ConflictingMappingError]
//   - [ErrNotAdjacent]: Matches any [NotAdjacentError]
//   - [ErrUnsupportedLoop]: Matches any [UnsupportedLoopError]
//   - [ErrInvalidGeometry]: Matches any [GeometryError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// A mismatched attribute value is not an error. It is reported as false from
// the reconcile package's CanMerge and Equals, and by name from
// CantMergeAttributes.
//
// # Usage Examples
//
//	merged, err := engine.Merge(point, road1, road2)
//	if errors.Is(err, daerrors.ErrNotAdjacent) {
//	    // the two roads do not meet at point
//	}
//
//	var conflict *daerrors.ConflictingMappingError
//	if errors.As(err, &conflict) {
//	    fmt.Printf("%s already paired with %v\n", conflict.Key, conflict.Existing)
//	}
package daerrors
