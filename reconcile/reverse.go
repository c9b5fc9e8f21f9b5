package reconcile

import (
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
)

// Reverse returns a copy of f digitized in the opposite direction: the line
// is reversed, paired attributes take their partner's value and directional
// values are substituted. f is not modified.
func (e *Engine) Reverse(f *feature.Feature) *feature.Feature {
	reversed := e.ReverseAttributes(f)
	if line := f.Geometry(); line != nil {
		reversed.Set(e.typ.GeometryField(), geometry.Reverse(line))
	}
	return reversed
}

// ReverseAttributes returns a copy of f with its attributes reversed and
// its line unchanged.
func (e *Engine) ReverseAttributes(f *feature.Feature) *feature.Feature {
	reversed := f.Clone()
	for from, to := range e.schema.ReverseMap() {
		reversed.Set(from, f.Get(to))
	}
	for _, name := range e.schema.DirectionalNames() {
		reversed.Set(name, e.schema.Substitute(name, f.Get(name)))
	}
	return reversed
}

// ReverseGeometry returns a copy of f with its line reversed and its
// attributes unchanged.
func (e *Engine) ReverseGeometry(f *feature.Feature) *feature.Feature {
	line := f.Geometry()
	if line == nil {
		return f.Clone()
	}
	return f.CloneWithGeometry(geometry.Reverse(line))
}
