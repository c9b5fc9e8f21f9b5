package reconcile

import (
	"fmt"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/erraggy/dirattrs/schema"
)

// EqualsAttribute reports whether f1[name1] equals f2[name2]. Excluded
// names always compare equal.
func (e *Engine) EqualsAttribute(f1 *feature.Feature, name1 string, f2 *feature.Feature, name2 string, exclude feature.NameSet) bool {
	return e.compareValues(name1, f1, name1, f1.Get(name1), f2, name2, f2.Get(name2), exclude) == nil
}

// Equals reports whether f1 and f2 describe the same feature, possibly
// digitized in opposite directions.
//
// The lines must have exactly the same vertices, in either order. When both
// lines start at the same point the other attributes are compared name by
// name; otherwise f2 is read reversed: each name is compared against its
// reversal partner on f2 and directional values are substituted. Excluded
// and ignored attributes are skipped. Closed lines have no direction and are
// rejected with an UnsupportedLoopError.
func (e *Engine) Equals(f1, f2 *feature.Feature, exclude feature.NameSet) (bool, error) {
	line1, err := f1.Line()
	if err != nil {
		return false, fmt.Errorf("reconcile: equals: %w", err)
	}
	line2, err := f2.Line()
	if err != nil {
		return false, fmt.Errorf("reconcile: equals: %w", err)
	}
	if geometry.IsClosed(line1) {
		return false, &daerrors.UnsupportedLoopError{Feature: "feature1", Message: "closed line has no direction"}
	}
	if geometry.IsClosed(line2) {
		return false, &daerrors.UnsupportedLoopError{Feature: "feature2", Message: "closed line has no direction"}
	}

	reversed := !geometry.VertexEqual(line1, 0, line2, 0, 2)
	for _, name := range e.typ.Fields() {
		if !e.compared(name, exclude) {
			continue
		}
		if !e.equalsField(name, f1, f2, reversed, exclude) {
			return false, nil
		}
	}
	return true, nil
}

func (e *Engine) equalsField(name string, f1, f2 *feature.Feature, reversed bool, exclude feature.NameSet) bool {
	if name == e.typ.GeometryField() {
		if geometry.EqualIgnoringDirection(f1.Geometry(), f2.Geometry(), 4) {
			return true
		}
		e.logMismatch("different geometries", f1, name, f1.Geometry(), f2, name, f2.Geometry())
		return false
	}
	if !reversed {
		return e.EqualsAttribute(f1, name, f2, name, exclude)
	}
	if e.schema.Classify(name) == schema.RoleDirectional {
		v1 := f1.Get(name)
		v2 := e.schema.Substitute(name, f2.Get(name))
		return e.compareValues(name, f1, name, v1, f2, name, v2, exclude) == nil
	}
	return e.EqualsAttribute(f1, name, f2, e.schema.ReverseName(name), exclude)
}
