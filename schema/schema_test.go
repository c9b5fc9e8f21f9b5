package schema_test

import (
	"errors"
	"testing"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFields = []string{
	"ID", "NAME", "LINE", "LENGTH",
	"FROM_TURN", "TO_TURN",
	"LEFT_LANES", "RIGHT_LANES",
	"START_LEFT", "START_RIGHT", "END_LEFT", "END_RIGHT",
	"START_LEFT_TURN", "START_RIGHT_TURN", "END_LEFT_TURN", "END_RIGHT_TURN",
	"FLOW", "SPEED",
}

func testType(t *testing.T) *feature.Type {
	t.Helper()
	typ, err := feature.NewType("road", "LINE", testFields, feature.WithLengthField("LENGTH"))
	require.NoError(t, err)
	return typ
}

func fullSchema(t *testing.T) *schema.Schema {
	t.Helper()
	b := schema.NewBuilder(testType(t))
	require.NoError(t, b.AddEndPair("FROM_TURN", "TO_TURN"))
	require.NoError(t, b.AddSidePair("LEFT_LANES", "RIGHT_LANES"))
	require.NoError(t, b.AddEndAndSidePair("START_LEFT", "START_RIGHT", "END_LEFT", "END_RIGHT"))
	require.NoError(t, b.AddEndTurnPair("START_LEFT_TURN", "START_RIGHT_TURN", "END_LEFT_TURN", "END_RIGHT_TURN"))
	require.NoError(t, b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{
		"Forwards": "Backwards",
		"Either":   "Either",
	})))
	s, err := b.Build()
	require.NoError(t, err)
	return s
}

func TestSchema_Classify(t *testing.T) {
	s := fullSchema(t)

	tests := []struct {
		name string
		want schema.Role
	}{
		{"FROM_TURN", schema.RoleStart},
		{"TO_TURN", schema.RoleEnd},
		{"LEFT_LANES", schema.RoleSide},
		{"RIGHT_LANES", schema.RoleSide},
		{"START_LEFT", schema.RoleStart},
		{"END_RIGHT", schema.RoleEnd},
		{"START_RIGHT_TURN", schema.RoleStart},
		{"END_LEFT_TURN", schema.RoleEnd},
		{"FLOW", schema.RoleDirectional},
		{"NAME", schema.RolePlain},
		{"LINE", schema.RolePlain},
		{"UNKNOWN", schema.RolePlain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Classify(tt.name))
		})
	}
}

func TestSchema_ReverseName(t *testing.T) {
	s := fullSchema(t)

	tests := []struct {
		name string
		want string
	}{
		{"FROM_TURN", "TO_TURN"},
		{"TO_TURN", "FROM_TURN"},
		{"LEFT_LANES", "RIGHT_LANES"},
		{"RIGHT_LANES", "LEFT_LANES"},
		// end+side quads cross the diagonals
		{"START_LEFT", "END_RIGHT"},
		{"END_RIGHT", "START_LEFT"},
		{"END_LEFT", "START_RIGHT"},
		{"START_RIGHT", "END_LEFT"},
		// end-turn quads keep the side
		{"START_LEFT_TURN", "END_LEFT_TURN"},
		{"START_RIGHT_TURN", "END_RIGHT_TURN"},
		{"END_LEFT_TURN", "START_LEFT_TURN"},
		// no partner
		{"FLOW", "FLOW"},
		{"NAME", "NAME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ReverseName(tt.name))
		})
	}
}

func TestSchema_PairOf(t *testing.T) {
	s := fullSchema(t)

	partner, ok := s.PairOf("START_LEFT")
	assert.True(t, ok)
	assert.Equal(t, "END_LEFT", partner, "quads pair ends on the same side")

	partner, ok = s.PairOf("RIGHT_LANES")
	assert.True(t, ok)
	assert.Equal(t, "LEFT_LANES", partner)

	_, ok = s.PairOf("FLOW")
	assert.False(t, ok)
}

func TestSchema_Substitute(t *testing.T) {
	s := fullSchema(t)

	assert.Equal(t, "Backwards", s.Substitute("FLOW", "Forwards"))
	assert.Equal(t, "Forwards", s.Substitute("FLOW", "Backwards"))
	assert.Equal(t, "Either", s.Substitute("FLOW", "Either"))
	assert.Equal(t, "Sideways", s.Substitute("FLOW", "Sideways"), "unmapped values are kept")
	assert.Nil(t, s.Substitute("FLOW", nil))
	assert.Equal(t, []int{1}, s.Substitute("FLOW", []int{1}), "non-comparable values are kept")
	wrapped := struct{ V any }{[]int{1}}
	assert.Equal(t, wrapped, s.Substitute("FLOW", wrapped), "values wrapping a slice are kept")
	assert.Equal(t, "Forwards", s.Substitute("NAME", "Forwards"), "plain attributes are kept")
}

func TestSchema_SubstituteNumeric(t *testing.T) {
	b := schema.NewBuilder(testType(t))
	require.NoError(t, b.AddDirectionalValues("SPEED", map[any]any{1: -1, 2: -2}))
	s, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, -1, s.Substitute("SPEED", int64(1)))
	assert.Equal(t, 2, s.Substitute("SPEED", -2.0))
	assert.Equal(t, 3, s.Substitute("SPEED", 3))
}

func TestSchema_NameLists(t *testing.T) {
	s := fullSchema(t)

	assert.Equal(t,
		[]string{"FROM_TURN", "START_LEFT", "START_LEFT_TURN", "START_RIGHT", "START_RIGHT_TURN"},
		s.StartNames())
	assert.Equal(t,
		[]string{"END_LEFT", "END_LEFT_TURN", "END_RIGHT", "END_RIGHT_TURN", "TO_TURN"},
		s.EndNames())
	assert.Equal(t, []string{"LEFT_LANES", "RIGHT_LANES"}, s.SideNames())
	assert.Equal(t, []string{"FLOW"}, s.DirectionalNames())
	assert.True(t, s.HasDirectionalValues("FLOW"))
	assert.False(t, s.HasDirectionalValues("NAME"))
	assert.True(t, s.HasDirectionalAttributes())
}

func TestSchema_QueriesReturnCopies(t *testing.T) {
	s := fullSchema(t)

	ends := s.EndPairs()
	ends["FROM_TURN"] = "x"
	assert.Equal(t, "TO_TURN", s.EndPairs()["FROM_TURN"])

	rev := s.ReverseMap()
	delete(rev, "START_LEFT")
	assert.Equal(t, "END_RIGHT", s.ReverseName("START_LEFT"))

	sides := s.SidePairs()
	assert.Equal(t, map[string]string{"LEFT_LANES": "RIGHT_LANES", "RIGHT_LANES": "LEFT_LANES"}, sides)

	values := s.DirectionalValues("FLOW")
	values["Forwards"] = "x"
	assert.Equal(t, "Backwards", s.Substitute("FLOW", "Forwards"))
	assert.Nil(t, s.DirectionalValues("NAME"))

	quads := s.EndAndSideQuads()
	require.Len(t, quads, 1)
	assert.Equal(t, [4]string{"START_LEFT", "START_RIGHT", "END_LEFT", "END_RIGHT"}, quads[0].Names())
	quads[0].StartLeft = "x"
	assert.Equal(t, "START_LEFT", s.EndAndSideQuads()[0].StartLeft)

	turns := s.EndTurnQuads()
	require.Len(t, turns, 1)
	assert.Equal(t, "END_RIGHT_TURN", turns[0].EndRight)
}

func TestSchema_Empty(t *testing.T) {
	s, err := schema.NewBuilder(testType(t)).Build()
	require.NoError(t, err)

	assert.False(t, s.HasDirectionalAttributes())
	assert.Empty(t, s.StartNames())
	assert.Empty(t, s.DirectionalNames())
	assert.Equal(t, "road", s.Type().Name())
}

func TestBuilder_IdenticalPairIsNoOp(t *testing.T) {
	b := schema.NewBuilder(testType(t))
	require.NoError(t, b.AddEndPair("FROM_TURN", "TO_TURN"))
	require.NoError(t, b.AddEndPair("FROM_TURN", "TO_TURN"))
	require.NoError(t, b.AddSidePair("LEFT_LANES", "RIGHT_LANES"))
	require.NoError(t, b.AddSidePair("LEFT_LANES", "RIGHT_LANES"))
	require.NoError(t, b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "S"})))
	require.NoError(t, b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"S": "N", "E": "W"})))

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "W", s.Substitute("FLOW", "E"))
	assert.Equal(t, "S", s.Substitute("FLOW", "N"))
}

func TestBuilder_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *schema.Builder) error
		kind  daerrors.MappingKind
	}{
		{
			name: "end pair remapped",
			build: func(b *schema.Builder) error {
				_ = b.AddEndPair("FROM_TURN", "TO_TURN")
				return b.AddEndPair("FROM_TURN", "END_LEFT")
			},
			kind: daerrors.MappingEndPair,
		},
		{
			name: "end pair partner remapped",
			build: func(b *schema.Builder) error {
				_ = b.AddEndPair("FROM_TURN", "TO_TURN")
				return b.AddEndPair("START_LEFT", "TO_TURN")
			},
			kind: daerrors.MappingEndPair,
		},
		{
			name: "side pair remapped",
			build: func(b *schema.Builder) error {
				_ = b.AddSidePair("LEFT_LANES", "RIGHT_LANES")
				return b.AddSidePair("LEFT_LANES", "SPEED")
			},
			kind: daerrors.MappingSidePair,
		},
		{
			name: "side pair reused as end pair",
			build: func(b *schema.Builder) error {
				_ = b.AddSidePair("LEFT_LANES", "RIGHT_LANES")
				return b.AddEndPair("LEFT_LANES", "RIGHT_LANES")
			},
			kind: daerrors.MappingRole,
		},
		{
			name: "end pair reversed",
			build: func(b *schema.Builder) error {
				_ = b.AddEndPair("FROM_TURN", "TO_TURN")
				return b.AddEndPair("TO_TURN", "FROM_TURN")
			},
			kind: daerrors.MappingRole,
		},
		{
			name: "directional value with two partners",
			build: func(b *schema.Builder) error {
				return b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "S", "E": "S"}))
			},
			kind: daerrors.MappingDirectionalValue,
		},
		{
			name: "directional value remapped later",
			build: func(b *schema.Builder) error {
				_ = b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "S"}))
				return b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "E"}))
			},
			kind: daerrors.MappingDirectionalValue,
		},
		{
			name: "directional attribute reused as side",
			build: func(b *schema.Builder) error {
				_ = b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "S"}))
				return b.AddSidePair("FLOW", "SPEED")
			},
			kind: daerrors.MappingRole,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := schema.NewBuilder(testType(t))
			err := tt.build(b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, daerrors.ErrConflictingMapping))

			var cme *daerrors.ConflictingMappingError
			require.True(t, errors.As(err, &cme))
			assert.Equal(t, tt.kind, cme.Kind)

			s, buildErr := b.Build()
			assert.Nil(t, s)
			assert.Equal(t, err, buildErr)
		})
	}
}

func TestBuilder_InvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *schema.Builder) error
	}{
		{"unknown field", func(b *schema.Builder) error { return b.AddEndPair("FROM_TURN", "MISSING") }},
		{"geometry field", func(b *schema.Builder) error { return b.AddSidePair("LINE", "LEFT_LANES") }},
		{"self pair", func(b *schema.Builder) error { return b.AddSidePair("LEFT_LANES", "LEFT_LANES") }},
		{"quad repeats a name", func(b *schema.Builder) error {
			return b.AddEndAndSidePair("START_LEFT", "START_LEFT", "END_LEFT", "END_RIGHT")
		}},
		{"unknown directional field", func(b *schema.Builder) error {
			return b.AddDirectionalValues("MISSING", schema.StringValues(map[string]string{"N": "S"}))
		}},
		{"non-comparable value", func(b *schema.Builder) error {
			return b.AddDirectionalValues("FLOW", map[any]any{"N": []string{"S"}})
		}},
		{"value wrapping a slice", func(b *schema.Builder) error {
			return b.AddDirectionalValues("FLOW", map[any]any{"N": struct{ V any }{[]string{"S"}}})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := schema.NewBuilder(testType(t))
			err := tt.build(b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, daerrors.ErrConfig))
			assert.Equal(t, err, b.Err())
		})
	}
}

func TestBuilder_ErrorsAreSticky(t *testing.T) {
	b := schema.NewBuilder(testType(t))
	first := b.AddEndPair("FROM_TURN", "MISSING")
	require.Error(t, first)

	assert.Equal(t, first, b.AddSidePair("LEFT_LANES", "RIGHT_LANES"))
	_, err := b.Build()
	assert.Equal(t, first, err)
}

func TestBuilder_UseAfterBuildPanics(t *testing.T) {
	b := schema.NewBuilder(testType(t))
	_, err := b.Build()
	require.NoError(t, err)

	assert.Panics(t, func() { _ = b.AddEndPair("FROM_TURN", "TO_TURN") })
	assert.Panics(t, func() { _, _ = b.Build() })
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Plain", schema.RolePlain.String())
	assert.Equal(t, "Directional", schema.RoleDirectional.String())
	assert.Equal(t, "Role(9)", schema.Role(9).String())
}
