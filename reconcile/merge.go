package reconcile

import (
	"fmt"

	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/twpayne/go-geom"
)

// joined is the outcome of lining up two features end to start.
type joined struct {
	start, end *feature.Feature
	// second is f2, reversed when the orientation required it
	second *feature.Feature
	line   *geom.LineString
}

func (e *Engine) join(point geom.Coord, f1, f2 *feature.Feature) (*joined, error) {
	j, err := e.resolveJunction(point, f1, f2)
	if err != nil {
		return nil, err
	}
	r := &joined{second: f2}
	switch j.orientation.Touch {
	case geometry.TouchStartStart:
		r.second = e.Reverse(f2)
		r.start, r.end = r.second, f1
	case geometry.TouchEndEnd:
		r.second = e.Reverse(f2)
		r.start, r.end = f1, r.second
	case geometry.TouchEndStart:
		r.start, r.end = f1, f2
	case geometry.TouchStartEnd:
		r.start, r.end = f2, f1
	}
	r.line, err = geometry.ConcatAt(point, r.start.Geometry(), r.end.Geometry(), geometry.WithPrecision(e.precision))
	if err != nil {
		return nil, err
	}
	return r, nil
}

// apply copies the start attributes of the start feature and the end
// attributes of the end feature onto a copy of base holding the joined line.
func (e *Engine) apply(base *feature.Feature, r *joined) *feature.Feature {
	merged := base.CloneWithGeometry(r.line)
	for _, name := range e.schema.StartNames() {
		merged.Set(name, r.start.Get(name))
	}
	for _, name := range e.schema.EndNames() {
		merged.Set(name, r.end.Get(name))
	}
	return merged
}

// Merge joins f1 and f2 at point into a new feature.
//
// f2 is reversed when both lines start or both end at point. Attributes are
// taken from the longer feature (f1 on a tie); start attributes then come
// from the feature the merged line starts with and end attributes from the
// one it ends with. The length field is recomputed. A nil point merges the
// lines at whichever endpoints they share.
func (e *Engine) Merge(point geom.Coord, f1, f2 *feature.Feature) (*feature.Feature, error) {
	r, err := e.join(point, f1, f2)
	if err != nil {
		return nil, fmt.Errorf("reconcile: merge: %w", err)
	}
	base := f1
	if f2.Length() > f1.Length() {
		base = r.second
	}
	merged := e.apply(base, r)
	merged.SetLength()
	return merged, nil
}

// MergeLongestFirst merges with the longer feature as the first operand, so
// that a reversal, when needed, is applied to the shorter one.
func (e *Engine) MergeLongestFirst(point geom.Coord, f1, f2 *feature.Feature) (*feature.Feature, error) {
	if f1.Length() >= f2.Length() {
		return e.Merge(point, f1, f2)
	}
	return e.Merge(point, f2, f1)
}

// MergedValues returns the attributes Merge would produce if f1 were always
// the base record, without recomputing the length field.
func (e *Engine) MergedValues(point geom.Coord, f1, f2 *feature.Feature) (map[string]any, error) {
	r, err := e.join(point, f1, f2)
	if err != nil {
		return nil, fmt.Errorf("reconcile: merge: %w", err)
	}
	return e.apply(f1, r).Values(), nil
}
