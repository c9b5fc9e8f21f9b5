package geometry

import (
	"math"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/twpayne/go-geom"
)

// Axis indexes used for dimension-bounded comparisons.
const (
	axisX = iota
	axisY
	axisZ
	axisM
)

// Validate returns a *daerrors.GeometryError when line is nil or has fewer
// than two points. field names the geometry attribute for the message.
func Validate(field string, line *geom.LineString) error {
	if line == nil {
		return &daerrors.GeometryError{Field: field, Message: "missing line"}
	}
	if line.NumCoords() < 2 {
		return &daerrors.GeometryError{Field: field, Message: "line must have at least two points"}
	}
	return nil
}

// Start returns the first vertex of line.
func Start(line *geom.LineString) geom.Coord {
	return line.Coord(0)
}

// End returns the last vertex of line.
func End(line *geom.LineString) geom.Coord {
	return line.Coord(line.NumCoords() - 1)
}

// Length returns the planar 2D length of line, or 0 for a nil line.
func Length(line *geom.LineString) float64 {
	if line == nil {
		return 0
	}
	return line.Length()
}

// IsClosed reports whether the first and last vertices of line are equal in 2D.
func IsClosed(line *geom.LineString) bool {
	n := line.NumCoords()
	return n > 1 && VertexEqual(line, 0, line, n-1, 2)
}

// VertexEqual reports whether vertex i of line1 equals vertex j of line2 on
// the first dim axes (X, Y, Z).
func VertexEqual(line1 *geom.LineString, i int, line2 *geom.LineString, j int, dim int) bool {
	return coordsEqual(line1.Layout(), line1.Coord(i), line2.Layout(), line2.Coord(j), dim)
}

// PointEqual reports whether vertex i of line equals point in 2D.
func PointEqual(line *geom.LineString, i int, point geom.Coord) bool {
	return coordsEqual(line.Layout(), line.Coord(i), PointLayout(point), point, 2)
}

// CoordsEqual compares two bare coordinates on the first dim axes, inferring
// each layout from the coordinate length.
func CoordsEqual(a, b geom.Coord, dim int) bool {
	return coordsEqual(PointLayout(a), a, PointLayout(b), b, dim)
}

// PointLayout infers the layout of a bare coordinate from its length.
func PointLayout(c geom.Coord) geom.Layout {
	switch len(c) {
	case 2:
		return geom.XY
	case 3:
		return geom.XYZ
	case 4:
		return geom.XYZM
	default:
		return geom.NoLayout
	}
}

// Equal reports whether two lines have the same vertices in the same order on
// every axis either of them carries.
func Equal(a, b *geom.LineString) bool {
	return EqualN(a, b, 4)
}

// EqualN reports whether two lines have the same vertices in the same order
// on the first dim axes.
func EqualN(a, b *geom.LineString, dim int) bool {
	if a == nil || b == nil {
		return a == b
	}
	n := a.NumCoords()
	if n != b.NumCoords() {
		return false
	}
	for i := 0; i < n; i++ {
		if !VertexEqual(a, i, b, i, dim) {
			return false
		}
	}
	return true
}

// EqualIgnoringDirection reports whether a equals b, or a equals b reversed,
// on the first dim axes.
func EqualIgnoringDirection(a, b *geom.LineString, dim int) bool {
	if EqualN(a, b, dim) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	n := a.NumCoords()
	if n != b.NumCoords() {
		return false
	}
	for i := 0; i < n; i++ {
		if !VertexEqual(a, i, b, n-1-i, dim) {
			return false
		}
	}
	return true
}

// Reverse returns a new line with the vertices of line in reverse order.
// The layout and SRID are preserved.
func Reverse(line *geom.LineString) *geom.LineString {
	if line == nil {
		return nil
	}
	stride := line.Stride()
	flat := line.FlatCoords()
	reversed := make([]float64, len(flat))
	n := line.NumCoords()
	for i := 0; i < n; i++ {
		copy(reversed[(n-1-i)*stride:(n-i)*stride], flat[i*stride:(i+1)*stride])
	}
	return geom.NewLineStringFlat(line.Layout(), reversed).SetSRID(line.SRID())
}

func coordsEqual(l1 geom.Layout, c1 geom.Coord, l2 geom.Layout, c2 geom.Coord, dim int) bool {
	for axis := 0; axis < dim && axis <= axisM; axis++ {
		v1, ok1 := ordinate(l1, c1, axis)
		v2, ok2 := ordinate(l2, c2, axis)
		if !ok1 && !ok2 {
			continue
		}
		if ok1 != ok2 {
			return false
		}
		if math.IsNaN(v1) && math.IsNaN(v2) {
			continue
		}
		if v1 != v2 {
			return false
		}
	}
	return true
}

// ordinate returns the value of axis in c, or false when the layout lacks it.
func ordinate(layout geom.Layout, c geom.Coord, axis int) (float64, bool) {
	idx := axis
	switch axis {
	case axisZ:
		idx = layout.ZIndex()
	case axisM:
		idx = layout.MIndex()
	}
	if idx < 0 || idx >= len(c) {
		return 0, false
	}
	return c[idx], true
}
