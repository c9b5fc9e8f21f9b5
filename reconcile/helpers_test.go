package reconcile_test

import (
	"testing"

	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/erraggy/dirattrs/internal/testutil"
	"github.com/erraggy/dirattrs/reconcile"
	"github.com/erraggy/dirattrs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

const (
	directional    = "DIRECTIONAL"
	left           = "LEFT"
	right          = "RIGHT"
	start          = "START"
	end            = "END"
	startLeft      = "START_LEFT"
	startRight     = "START_RIGHT"
	endLeft        = "END_LEFT"
	endRight       = "END_RIGHT"
	startLeftTurn  = "START_LEFT_TURN"
	startRightTurn = "START_RIGHT_TURN"
	endLeftTurn    = "END_LEFT_TURN"
	endRightTurn   = "END_RIGHT_TURN"
	name           = "NAME"
	length         = "LENGTH"
	lineField      = "LINE"

	forwards  = "Forwards"
	backwards = "Backwards"
	either    = "Either"
	other     = "Other"
)

var mergePoint = testutil.Point(10, 20)

func line1() *geom.LineString        { return testutil.Line(0, 0, 10, 20) }
func reverseLine1() *geom.LineString { return testutil.Line(10, 20, 0, 0) }
func line2() *geom.LineString        { return testutil.Line(10, 20, 20, 30) }
func reverseLine2() *geom.LineString { return testutil.Line(20, 30, 10, 20) }
func line3() *geom.LineString        { return testutil.Line(11, 20, 20, 30) }
func mergedLine() *geom.LineString   { return testutil.Line(0, 0, 10, 20, 20, 30) }
func reverseMerged() *geom.LineString {
	return testutil.Line(20, 30, 10, 20, 0, 0)
}

// directionalValues are the substitutions used throughout the tests; values
// outside the table are kept on reversal.
var directionalValues = map[string]string{
	forwards:  backwards,
	backwards: forwards,
	either:    either,
}

func reverseValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if r, ok := directionalValues[s]; ok {
		return r
	}
	return s
}

var fixtureType = func() *feature.Type {
	typ, err := feature.NewType("Directional", lineField, []string{
		directional, left, right, start, end,
		startLeft, startRight, endLeft, endRight,
		startLeftTurn, startRightTurn, endLeftTurn, endRightTurn,
		name, length, lineField,
	}, feature.WithLengthField(length), feature.WithIgnored(length))
	if err != nil {
		panic(err)
	}
	return typ
}()

func testSchema(t testing.TB) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder(fixtureType)
	require.NoError(t, b.AddDirectionalValues(directional, schema.StringValues(directionalValues)))
	require.NoError(t, b.AddSidePair(left, right))
	require.NoError(t, b.AddEndPair(start, end))
	require.NoError(t, b.AddEndAndSidePair(startLeft, startRight, endLeft, endRight))
	require.NoError(t, b.AddEndTurnPair(startLeftTurn, startRightTurn, endLeftTurn, endRightTurn))
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func testEngine(t testing.TB, opts ...reconcile.Option) *reconcile.Engine {
	t.Helper()
	e, err := reconcile.New(testSchema(t), opts...)
	require.NoError(t, err)
	return e
}

// record builds a feature holding line and the given name/value pairs.
func record(t testing.TB, line *geom.LineString, kv ...any) *feature.Feature {
	t.Helper()
	require.Equal(t, 0, len(kv)%2, "record needs name/value pairs")
	values := map[string]any{lineField: line}
	for i := 0; i < len(kv); i += 2 {
		values[kv[i].(string)] = kv[i+1]
	}
	return feature.New(fixtureType, values)
}

func quad(t testing.TB, line *geom.LineString, names [4]string, values [4]any) *feature.Feature {
	t.Helper()
	return record(t, line,
		names[0], values[0], names[1], values[1],
		names[2], values[2], names[3], values[3])
}

func assertLine(t *testing.T, want, got *geom.LineString) {
	t.Helper()
	assert.True(t, geometry.Equal(want, got), "want %v, got %v", want.FlatCoords(), got.FlatCoords())
}
