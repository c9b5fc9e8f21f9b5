// Package geometry provides the coordinate-sequence operations the reconcile
// engine needs on top of the go-geom kernel: exact and direction-ignoring
// line equality, reversal, touch classification at a junction point and
// concatenation of two lines at a shared seam vertex.
//
// Lines are [*geom.LineString] values in any of the XY, XYZ, XYM or XYZM
// layouts. Junction points are plain [geom.Coord] values whose length implies
// their layout (2 = XY, 3 = XYZ, 4 = XYZM).
//
// All comparisons are exact. There is no snapping tolerance: two vertices
// touch only when their X and Y ordinates are bit-for-bit equal.
//
// Every function returns new lines and never modifies its arguments.
package geometry
