package reconcile

import (
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/erraggy/dirattrs/internal/equalutil"
	"github.com/erraggy/dirattrs/schema"
	"github.com/twpayne/go-geom"
)

// junction is a resolved pair of features ready for attribute checks.
type junction struct {
	f1, f2       *feature.Feature
	line1, line2 *geom.LineString
	orientation  Orientation
}

func (e *Engine) resolveJunction(point geom.Coord, f1, f2 *feature.Feature) (*junction, error) {
	line1, err := f1.Line()
	if err != nil {
		return nil, err
	}
	line2, err := f2.Line()
	if err != nil {
		return nil, err
	}
	o, err := Resolve(line1, line2, point)
	if err != nil {
		return nil, err
	}
	return &junction{f1: f1, f2: f2, line1: line1, line2: line2, orientation: o}, nil
}

// CanMerge reports whether f1 and f2 can be merged at point. The lines must
// meet at point and every attribute that is neither excluded nor ignored by
// the feature type must pass CanMergeAttribute.
func (e *Engine) CanMerge(point geom.Coord, f1, f2 *feature.Feature, exclude feature.NameSet) bool {
	j, err := e.resolveJunction(point, f1, f2)
	if err != nil {
		e.logger.Debug("cannot merge", "error", err)
		return false
	}
	for _, name := range e.typ.Fields() {
		if e.compared(name, exclude) && e.checkAttribute(name, j, exclude) != nil {
			return false
		}
	}
	return true
}

// CanMergeAttribute reports whether the single attribute name allows f1 and
// f2 to be merged at point. It returns false when the lines do not meet.
func (e *Engine) CanMergeAttribute(name string, point geom.Coord, f1, f2 *feature.Feature, exclude feature.NameSet) bool {
	j, err := e.resolveJunction(point, f1, f2)
	if err != nil {
		e.logger.Debug("cannot merge", "field", name, "error", err)
		return false
	}
	return e.checkAttribute(name, j, exclude) == nil
}

// CantMergeAttributes returns every attribute that blocks merging f1 and f2
// at point, in field order. When the lines do not meet the result is just
// the geometry field.
func (e *Engine) CantMergeAttributes(point geom.Coord, f1, f2 *feature.Feature, exclude feature.NameSet) []string {
	report := e.Check(point, f1, f2, exclude)
	return report.Fields()
}

// Check runs the same traversal as CanMerge and describes every failing
// attribute.
func (e *Engine) Check(point geom.Coord, f1, f2 *feature.Feature, exclude feature.NameSet) *MergeReport {
	j, err := e.resolveJunction(point, f1, f2)
	if err != nil {
		e.logger.Debug("cannot merge", "error", err)
		geometryField := e.typ.GeometryField()
		return &MergeReport{
			Mismatches: []Mismatch{{
				Field:    geometryField,
				Kind:     MismatchNotAdjacent,
				Field1:   geometryField,
				Value1:   f1.Geometry(),
				Field2:   geometryField,
				Value2:   f2.Geometry(),
				Severity: SeverityCritical,
			}},
		}
	}
	report := &MergeReport{Orientation: j.orientation, Mergeable: true}
	for _, name := range e.typ.Fields() {
		if !e.compared(name, exclude) {
			continue
		}
		if m := e.checkAttribute(name, j, exclude); m != nil {
			report.Mismatches = append(report.Mismatches, *m)
			if m.Severity.Blocks() {
				report.Mergeable = false
			}
		}
	}
	return report
}

// checkAttribute returns nil when name does not block the merge.
func (e *Engine) checkAttribute(name string, j *junction, exclude feature.NameSet) *Mismatch {
	if name == e.typ.GeometryField() {
		if geometry.EqualIgnoringDirection(j.line1, j.line2, 4) {
			return &Mismatch{
				Field: name, Kind: MismatchDuplicateGeometry,
				Field1: name, Value1: j.line1, Field2: name, Value2: j.line2,
				Severity: SeverityError,
			}
		}
		return nil
	}

	o := j.orientation
	switch role := e.schema.Classify(name); role {
	case schema.RoleDirectional:
		if o.Aligned() {
			return nil
		}
		v1 := j.f1.Get(name)
		v2 := e.schema.Substitute(name, j.f2.Get(name))
		return e.compareValues(name, j.f1, name, v1, j.f2, name, v2, exclude)
	case schema.RoleStart, schema.RoleEnd:
		partner, _ := e.schema.PairOf(name)
		out := endRule(role, name, partner, o)
		if out.alwaysOK {
			return nil
		}
		return e.bothNull(name, j.f1, out.name1, j.f2, out.name2)
	case schema.RoleSide:
		if o.Aligned() {
			return nil
		}
		partner, _ := e.schema.PairOf(name)
		return e.compareValues(name, j.f1, name, j.f1.Get(name), j.f2, partner, j.f2.Get(partner), exclude)
	default:
		return e.compareValues(name, j.f1, name, j.f1.Get(name), j.f2, name, j.f2.Get(name), exclude)
	}
}

// compareValues treats excluded names as always equal.
func (e *Engine) compareValues(field string, f1 *feature.Feature, name1 string, v1 any, f2 *feature.Feature, name2 string, v2 any, exclude feature.NameSet) *Mismatch {
	if exclude.Contains(name1) || exclude.Contains(name2) || equalutil.Equal(v1, v2) {
		return nil
	}
	e.logMismatch("different values", f1, name1, v1, f2, name2, v2)
	return &Mismatch{
		Field: field, Kind: MismatchValue,
		Field1: name1, Value1: v1, Field2: name2, Value2: v2,
		Severity: SeverityError,
	}
}

func (e *Engine) bothNull(field string, f1 *feature.Feature, name1 string, f2 *feature.Feature, name2 string) *Mismatch {
	v1, v2 := f1.Get(name1), f2.Get(name2)
	if equalutil.IsNil(v1) && equalutil.IsNil(v2) {
		return nil
	}
	e.logMismatch("both values not null", f1, name1, v1, f2, name2, v2)
	return &Mismatch{
		Field: field, Kind: MismatchNotNull,
		Field1: name1, Value1: v1, Field2: name2, Value2: v2,
		Severity: SeverityError,
	}
}
