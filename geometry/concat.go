package geometry

import (
	"math"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/twpayne/go-geom"
)

// Precision is a fixed precision model expressed as a scale factor: ordinates
// are rounded to the nearest 1/scale. The zero value keeps full float64
// precision.
type Precision float64

// Floating is the full-precision model.
const Floating Precision = 0

// Round applies the precision model to v. NaN is returned unchanged.
func (p Precision) Round(v float64) float64 {
	if p <= 0 || math.IsNaN(v) {
		return v
	}
	scale := float64(p)
	return math.Round(v*scale) / scale
}

// ConcatOption configures ConcatAt.
type ConcatOption func(*concatConfig)

type concatConfig struct {
	precision Precision
}

// WithPrecision rounds every ordinate of the concatenated line.
func WithPrecision(p Precision) ConcatOption {
	return func(c *concatConfig) {
		c.precision = p
	}
}

// ConcatAt returns a line made of a followed by b, where the last vertex of a
// and the first vertex of b are the same junction and appear once in the
// result.
//
// The output layout is the widest of the two inputs. Ordinates a line does not
// carry are NaN, except at the seam, where Z and M are taken from a, then b,
// then point. The precision option rounds X, Y and Z but leaves M untouched.
// When point is nil the caller must already know that the lines
// meet; otherwise the seam must also equal point in 2D. A line that fails
// Validate is reported as a *daerrors.GeometryError.
func ConcatAt(point geom.Coord, a, b *geom.LineString, opts ...ConcatOption) (*geom.LineString, error) {
	cfg := concatConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := Validate("a", a); err != nil {
		return nil, err
	}
	if err := Validate("b", b); err != nil {
		return nil, err
	}

	lastA := a.NumCoords() - 1
	if !VertexEqual(a, lastA, b, 0, 2) || (point != nil && !PointEqual(a, lastA, point)) {
		return nil, &daerrors.NotAdjacentError{Point: point, Message: "end of first line is not the start of second line"}
	}

	hasZ := a.Layout().ZIndex() >= 0 || b.Layout().ZIndex() >= 0
	hasM := a.Layout().MIndex() >= 0 || b.Layout().MIndex() >= 0
	layout := layoutFor(hasZ, hasM)

	n := a.NumCoords() + b.NumCoords() - 1
	flat := make([]float64, 0, n*layout.Stride())
	emit := func(x, y, z, m float64) {
		flat = append(flat, cfg.precision.Round(x), cfg.precision.Round(y))
		if hasZ {
			flat = append(flat, cfg.precision.Round(z))
		}
		if hasM {
			flat = append(flat, m)
		}
	}
	emitVertex := func(l geom.Layout, c geom.Coord) {
		emit(c[0], c[1], ordinateOrNaN(l, c, axisZ), ordinateOrNaN(l, c, axisM))
	}

	for i := 0; i < lastA; i++ {
		emitVertex(a.Layout(), a.Coord(i))
	}
	seam := a.Coord(lastA)
	emit(seam[0], seam[1], seamOrdinate(axisZ, point, a, lastA, b), seamOrdinate(axisM, point, a, lastA, b))
	for i := 1; i < b.NumCoords(); i++ {
		emitVertex(b.Layout(), b.Coord(i))
	}

	return geom.NewLineStringFlat(layout, flat).SetSRID(a.SRID()), nil
}

func layoutFor(hasZ, hasM bool) geom.Layout {
	switch {
	case hasZ && hasM:
		return geom.XYZM
	case hasZ:
		return geom.XYZ
	case hasM:
		return geom.XYM
	default:
		return geom.XY
	}
}

func ordinateOrNaN(l geom.Layout, c geom.Coord, axis int) float64 {
	if v, ok := ordinate(l, c, axis); ok {
		return v
	}
	return math.NaN()
}

// seamOrdinate picks the Z or M value for the shared vertex.
func seamOrdinate(axis int, point geom.Coord, a *geom.LineString, lastA int, b *geom.LineString) float64 {
	if v, ok := ordinate(a.Layout(), a.Coord(lastA), axis); ok && !math.IsNaN(v) {
		return v
	}
	if v, ok := ordinate(b.Layout(), b.Coord(0), axis); ok && !math.IsNaN(v) {
		return v
	}
	if v, ok := ordinate(PointLayout(point), point, axis); ok {
		return v
	}
	return math.NaN()
}
