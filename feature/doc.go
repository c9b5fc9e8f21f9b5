// Package feature provides the record side of a linear network feature: a
// [Type] describing the attribute names of a feature class, and a [Feature]
// holding one record of that class as a name to value map.
//
// The line geometry is an ordinary attribute stored under the type's geometry
// field as a [*geom.LineString]. A type may also name a length field that is
// recomputed whenever features are merged, and a set of fields that are
// ignored when features are compared.
//
// Types are immutable once created and can be shared between goroutines.
// Features are owned by the caller: the reconcile package never modifies a
// feature it is given and always returns new ones.
package feature
