package reconcile

import (
	"fmt"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/twpayne/go-geom"
)

// ClearStartAttributes returns a copy of f with every start attribute set to nil.
func (e *Engine) ClearStartAttributes(f *feature.Feature) *feature.Feature {
	return e.clear(f, e.schema.StartNames())
}

// ClearEndAttributes returns a copy of f with every end attribute set to nil.
func (e *Engine) ClearEndAttributes(f *feature.Feature) *feature.Feature {
	return e.clear(f, e.schema.EndNames())
}

func (e *Engine) clear(f *feature.Feature, names []string) *feature.Feature {
	cleared := f.Clone()
	for _, name := range names {
		cleared.Set(name, nil)
	}
	return cleared
}

// SplitAttributes fixes up one part of a line that was split at point. The
// end attributes only describe the original line ends, so a part that starts
// at point loses its start attributes and a part that ends there loses its
// end attributes. A part that both starts and ends at point is kept as is.
func (e *Engine) SplitAttributes(point geom.Coord, part *feature.Feature) (*feature.Feature, error) {
	if len(point) < 2 {
		return nil, fmt.Errorf("reconcile: split: %w", &daerrors.GeometryError{Field: "point", Message: "split point needs x and y"})
	}
	line, err := part.Line()
	if err != nil {
		return nil, fmt.Errorf("reconcile: split: %w", err)
	}
	startsAtPoint := geometry.PointEqual(line, 0, point)
	endsAtPoint := geometry.PointEqual(line, line.NumCoords()-1, point)
	switch {
	case startsAtPoint && !endsAtPoint:
		return e.ClearStartAttributes(part), nil
	case !startsAtPoint && endsAtPoint:
		return e.ClearEndAttributes(part), nil
	default:
		return part.Clone(), nil
	}
}

// SplitParts applies SplitAttributes to every part.
func (e *Engine) SplitParts(point geom.Coord, parts []*feature.Feature) ([]*feature.Feature, error) {
	out := make([]*feature.Feature, 0, len(parts))
	for i, part := range parts {
		fixed, err := e.SplitAttributes(point, part)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		out = append(out, fixed)
	}
	return out, nil
}
