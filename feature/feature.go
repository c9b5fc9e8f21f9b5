package feature

import (
	"fmt"
	"maps"

	"github.com/davecgh/go-spew/spew"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/twpayne/go-geom"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Feature is one record of a feature type.
//
// Concurrency: a Feature is not safe for concurrent mutation. Values read by
// the reconcile engine are never written by it.
type Feature struct {
	typ    *Type
	values map[string]any
}

// New creates a feature of type t. values is copied; names that are not
// fields of t are kept but never visited by type-driven traversals.
func New(t *Type, values map[string]any) *Feature {
	return &Feature{typ: t, values: maps.Clone(values)}
}

// Type returns the feature type.
func (f *Feature) Type() *Type {
	return f.typ
}

// Get returns the value of name, or nil if it is not set.
func (f *Feature) Get(name string) any {
	return f.values[name]
}

// Set assigns value to name.
func (f *Feature) Set(name string, value any) {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	f.values[name] = value
}

// Values returns a copy of the attribute map.
func (f *Feature) Values() map[string]any {
	return maps.Clone(f.values)
}

// Geometry returns the line stored in the geometry field, or nil when it is
// missing or not a line.
func (f *Feature) Geometry() *geom.LineString {
	line, _ := f.values[f.typ.geometryField].(*geom.LineString)
	return line
}

// Line returns the validated line geometry.
func (f *Feature) Line() (*geom.LineString, error) {
	line := f.Geometry()
	if err := geometry.Validate(f.typ.geometryField, line); err != nil {
		return nil, err
	}
	return line, nil
}

// Length returns the planar length of the line geometry.
func (f *Feature) Length() float64 {
	return geometry.Length(f.Geometry())
}

// Clone returns a copy of the feature. Attribute values are shared; lines are
// treated as immutable throughout this module.
func (f *Feature) Clone() *Feature {
	return &Feature{typ: f.typ, values: maps.Clone(f.values)}
}

// CloneWithGeometry returns a copy of the feature holding line as its geometry.
func (f *Feature) CloneWithGeometry(line *geom.LineString) *Feature {
	clone := f.Clone()
	clone.Set(f.typ.geometryField, line)
	return clone
}

// SetLength stores the current line length in the type's length field, if
// the type has one.
func (f *Feature) SetLength() {
	if f.typ.lengthField != "" {
		f.Set(f.typ.lengthField, f.Length())
	}
}

// String returns a one-line summary of the feature.
func (f *Feature) String() string {
	return fmt.Sprintf("%s%v", f.typ.name, f.values)
}

// Dump returns a multi-line dump of every attribute, with keys sorted.
func (f *Feature) Dump() string {
	return dumpConfig.Sdump(f.values)
}
