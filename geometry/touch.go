package geometry

import "github.com/twpayne/go-geom"

//go:generate go tool stringer -type=TouchConfig -trimprefix=Touch -output=touchconfig_string.go

// TouchConfig identifies which endpoints of two lines coincide at a junction.
type TouchConfig int

const (
	// TouchNone means the lines do not share an endpoint at the junction.
	TouchNone TouchConfig = iota
	// TouchStartStart means both lines start at the junction.
	TouchStartStart
	// TouchEndEnd means both lines end at the junction.
	TouchEndEnd
	// TouchEndStart means line1 ends where line2 starts.
	TouchEndStart
	// TouchStartEnd means line1 starts where line2 ends.
	TouchStartEnd
)

// Touch classifies how line1 and line2 meet at point.
//
// The four configurations are tested in a fixed order (start-start, end-end,
// end-start, start-end) using exact 2D equality, so a pair of lines that
// touch at both ends resolves to the first match. When point is nil the same
// four tests run on the lines alone. TouchNone is returned when nothing
// matches or when either line fails Validate.
func Touch(line1, line2 *geom.LineString, point geom.Coord) TouchConfig {
	if Validate("line1", line1) != nil || Validate("line2", line2) != nil {
		return TouchNone
	}
	last1 := line1.NumCoords() - 1
	last2 := line2.NumCoords() - 1
	touches := func(i, j int) bool {
		if !VertexEqual(line1, i, line2, j, 2) {
			return false
		}
		return point == nil || PointEqual(line1, i, point)
	}
	switch {
	case touches(0, 0):
		return TouchStartStart
	case touches(last1, last2):
		return TouchEndEnd
	case touches(last1, 0):
		return TouchEndStart
	case touches(0, last2):
		return TouchStartEnd
	default:
		return TouchNone
	}
}
