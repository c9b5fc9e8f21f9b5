package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"
)

func TestLine(t *testing.T) {
	line := Line(0, 0, 10, 20)
	assert.Equal(t, geom.XY, line.Layout())
	assert.Equal(t, 2, line.NumCoords())
	assert.Equal(t, []float64{10, 20}, []float64(line.Coord(1)))
}

func TestLineZ(t *testing.T) {
	line := LineZ(0, 0, 1, 10, 20, 2)
	assert.Equal(t, geom.XYZ, line.Layout())
	assert.Equal(t, 2, line.NumCoords())
	assert.Equal(t, []float64{10, 20, 2}, []float64(line.Coord(1)))
}

func TestPtr(t *testing.T) {
	p := Ptr(3.14)
	assert.Equal(t, 3.14, *p)
}
