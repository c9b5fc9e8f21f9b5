package schema

import (
	"maps"
	"slices"

	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/internal/equalutil"
	"github.com/erraggy/dirattrs/internal/maputil"
)

// Schema is the frozen set of directional definitions for one feature type.
// A Schema is immutable and safe for concurrent use.
type Schema struct {
	typ *feature.Type
	t   tables
}

// Type returns the feature type the schema was built for.
func (s *Schema) Type() *feature.Type {
	return s.typ
}

// Classify returns the role of name. Unknown names are RolePlain.
func (s *Schema) Classify(name string) Role {
	if role, ok := s.t.roles[name]; ok {
		return role
	}
	return RolePlain
}

// PairOf returns the partner of name in its end or side pair.
func (s *Schema) PairOf(name string) (string, bool) {
	if partner, ok := s.t.endPairs[name]; ok {
		return partner, true
	}
	partner, ok := s.t.sidePairs[name]
	return partner, ok
}

// ReverseName returns the attribute whose value name takes when a line is
// reversed. Names without a reversal partner map to themselves.
func (s *Schema) ReverseName(name string) string {
	if partner, ok := s.t.reverseMap[name]; ok {
		return partner
	}
	return name
}

// Substitute returns the reversed form of value for the directional
// attribute name. Values without a substitution are returned unchanged.
func (s *Schema) Substitute(name string, value any) any {
	table, ok := s.t.directionalValues[name]
	if !ok || !equalutil.Hashable(value) {
		return value
	}
	if reversed, ok := table[equalutil.Key(value)]; ok {
		return reversed
	}
	return value
}

// HasDirectionalValues reports whether name has a value substitution table.
func (s *Schema) HasDirectionalValues(name string) bool {
	_, ok := s.t.directionalValues[name]
	return ok
}

// DirectionalValues returns a copy of the substitution table for name,
// keyed by canonical value.
func (s *Schema) DirectionalValues(name string) map[any]any {
	table, ok := s.t.directionalValues[name]
	if !ok {
		return nil
	}
	return maps.Clone(table)
}

// StartNames returns the start-role attributes in lexical order.
func (s *Schema) StartNames() []string {
	return s.namesWithRole(RoleStart)
}

// EndNames returns the end-role attributes in lexical order.
func (s *Schema) EndNames() []string {
	return s.namesWithRole(RoleEnd)
}

// SideNames returns the side-role attributes in lexical order.
func (s *Schema) SideNames() []string {
	return s.namesWithRole(RoleSide)
}

// DirectionalNames returns the attributes with value tables in lexical order.
func (s *Schema) DirectionalNames() []string {
	return maputil.SortedKeys(s.t.directionalValues)
}

// EndPairs returns a copy of the end pair table. Each pair appears under
// both of its names.
func (s *Schema) EndPairs() map[string]string {
	return maps.Clone(s.t.endPairs)
}

// SidePairs returns a copy of the side pair table.
func (s *Schema) SidePairs() map[string]string {
	return maps.Clone(s.t.sidePairs)
}

// ReverseMap returns a copy of the reversal table.
func (s *Schema) ReverseMap() map[string]string {
	return maps.Clone(s.t.reverseMap)
}

// EndAndSideQuads returns the registered end+side quads in order.
func (s *Schema) EndAndSideQuads() []Quad {
	return slices.Clone(s.t.endAndSideQuads)
}

// EndTurnQuads returns the registered end-turn quads in order.
func (s *Schema) EndTurnQuads() []Quad {
	return slices.Clone(s.t.endTurnQuads)
}

// HasDirectionalAttributes reports whether any attribute of the schema
// changes on reversal.
func (s *Schema) HasDirectionalAttributes() bool {
	return len(s.t.roles) > 0
}

func (s *Schema) namesWithRole(role Role) []string {
	var names []string
	for _, name := range maputil.SortedKeys(s.t.roles) {
		if s.t.roles[name] == role {
			names = append(names, name)
		}
	}
	return names
}
