// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"github.com/twpayne/go-geom"
)

// Line builds an XY line from alternating x, y ordinates.
func Line(xy ...float64) *geom.LineString {
	return geom.NewLineStringFlat(geom.XY, xy)
}

// LineZ builds an XYZ line from x, y, z ordinate triples.
func LineZ(xyz ...float64) *geom.LineString {
	return geom.NewLineStringFlat(geom.XYZ, xyz)
}

// Point builds a junction coordinate.
func Point(ordinates ...float64) geom.Coord {
	return geom.Coord(ordinates)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
