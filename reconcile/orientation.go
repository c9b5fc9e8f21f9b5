package reconcile

import (
	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/twpayne/go-geom"
)

// Orientation describes how two lines meet at a junction.
//
// Line1Forward is true when line 1 ends at the junction. Line2Forward is true
// when line 2 starts there. Both true means line 2 continues line 1.
type Orientation struct {
	Touch        geometry.TouchConfig
	Line1Forward bool
	Line2Forward bool
}

// Aligned reports whether both lines run the same way through the junction.
func (o Orientation) Aligned() bool {
	return o.Line1Forward == o.Line2Forward
}

// Resolve classifies how line1 and line2 meet at point. A nil point resolves
// the lines against each other alone.
//
//	<--*-->  start-start  false true
//	-->*<--  end-end      true  false
//	-->*-->  end-start    true  true
//	<--*<--  start-end    false false
func Resolve(line1, line2 *geom.LineString, point geom.Coord) (Orientation, error) {
	if err := geometry.Validate("line1", line1); err != nil {
		return Orientation{}, err
	}
	if err := geometry.Validate("line2", line2); err != nil {
		return Orientation{}, err
	}
	touch := geometry.Touch(line1, line2, point)
	switch touch {
	case geometry.TouchStartStart:
		return Orientation{Touch: touch, Line1Forward: false, Line2Forward: true}, nil
	case geometry.TouchEndEnd:
		return Orientation{Touch: touch, Line1Forward: true, Line2Forward: false}, nil
	case geometry.TouchEndStart:
		return Orientation{Touch: touch, Line1Forward: true, Line2Forward: true}, nil
	case geometry.TouchStartEnd:
		return Orientation{Touch: touch, Line1Forward: false, Line2Forward: false}, nil
	default:
		return Orientation{}, &daerrors.NotAdjacentError{Point: point, Message: "no shared endpoint"}
	}
}
