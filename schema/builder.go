package schema

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/internal/equalutil"
)

// tables holds the definitions shared by Builder and Schema.
type tables struct {
	endPairs          map[string]string
	sidePairs         map[string]string
	reverseMap        map[string]string
	roles             map[string]Role
	directionalValues map[string]map[any]any
	endAndSideQuads   []Quad
	endTurnQuads      []Quad
}

// Builder collects attribute pairing definitions for one feature type.
//
// Concurrency: Builder is not safe for concurrent use.
type Builder struct {
	typ   *feature.Type
	t     tables
	err   error
	built bool
}

// NewBuilder returns an empty builder for typ.
func NewBuilder(typ *feature.Type) *Builder {
	return &Builder{
		typ: typ,
		t: tables{
			endPairs:          make(map[string]string),
			sidePairs:         make(map[string]string),
			reverseMap:        make(map[string]string),
			roles:             make(map[string]Role),
			directionalValues: make(map[string]map[any]any),
		},
	}
}

// StringValues converts a string substitution table for AddDirectionalValues.
func StringValues(values map[string]string) map[any]any {
	out := make(map[any]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// AddEndPair registers start and end as the two ends of one attribute.
// Re-adding an identical pair is a no-op.
func (b *Builder) AddEndPair(start, end string) error {
	return b.apply(func() error {
		if err := b.addEnd(start, end); err != nil {
			return err
		}
		return addNamePair(b.t.reverseMap, daerrors.MappingReverse, start, end)
	})
}

// AddSidePair registers left and right as the two sides of one attribute.
// Re-adding an identical pair is a no-op.
func (b *Builder) AddSidePair(left, right string) error {
	return b.apply(func() error {
		if err := b.checkNames(left, right); err != nil {
			return err
		}
		if err := b.setRoles(RoleSide, left, right); err != nil {
			return err
		}
		if err := addNamePair(b.t.sidePairs, daerrors.MappingSidePair, left, right); err != nil {
			return err
		}
		return addNamePair(b.t.reverseMap, daerrors.MappingReverse, left, right)
	})
}

// AddEndAndSidePair registers a quad whose sides swap on reversal:
// startLeft becomes endRight and endLeft becomes startRight.
func (b *Builder) AddEndAndSidePair(startLeft, startRight, endLeft, endRight string) error {
	return b.apply(func() error {
		if err := b.addQuadEnds(startLeft, startRight, endLeft, endRight); err != nil {
			return err
		}
		if err := addNamePair(b.t.reverseMap, daerrors.MappingReverse, startLeft, endRight); err != nil {
			return err
		}
		if err := addNamePair(b.t.reverseMap, daerrors.MappingReverse, endLeft, startRight); err != nil {
			return err
		}
		b.t.endAndSideQuads = append(b.t.endAndSideQuads, Quad{startLeft, startRight, endLeft, endRight})
		return nil
	})
}

// AddEndTurnPair registers a quad of turn attributes whose sides are kept on
// reversal: startLeft becomes endLeft and startRight becomes endRight.
func (b *Builder) AddEndTurnPair(startLeft, startRight, endLeft, endRight string) error {
	return b.apply(func() error {
		if err := b.addQuadEnds(startLeft, startRight, endLeft, endRight); err != nil {
			return err
		}
		if err := addNamePair(b.t.reverseMap, daerrors.MappingReverse, startLeft, endLeft); err != nil {
			return err
		}
		if err := addNamePair(b.t.reverseMap, daerrors.MappingReverse, startRight, endRight); err != nil {
			return err
		}
		b.t.endTurnQuads = append(b.t.endTurnQuads, Quad{startLeft, startRight, endLeft, endRight})
		return nil
	})
}

// AddDirectionalValues registers value substitutions for name. Every entry
// a: b is stored both ways. A value that would gain a second, different
// partner is a conflict. Calling it again for the same attribute extends the
// existing table.
func (b *Builder) AddDirectionalValues(name string, values map[any]any) error {
	return b.apply(func() error {
		if err := b.checkNames(name); err != nil {
			return err
		}
		if err := b.setRoles(RoleDirectional, name); err != nil {
			return err
		}
		table := b.t.directionalValues[name]
		if table == nil {
			table = make(map[any]any, len(values)*2)
			b.t.directionalValues[name] = table
		}
		for _, key := range sortedValueKeys(values) {
			value := values[key]
			if !equalutil.Hashable(value) {
				return &daerrors.ConfigError{Option: "directional value", Value: value, Message: "value of " + name + " is not comparable"}
			}
			if err := addValue(table, name, key, value); err != nil {
				return err
			}
			if err := addValue(table, name, value, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Build freezes the definitions. It returns the first definition error, if
// any. The builder must not be used afterwards.
func (b *Builder) Build() (*Schema, error) {
	b.mustBeOpen()
	b.built = true
	if b.err != nil {
		return nil, b.err
	}
	return &Schema{typ: b.typ, t: b.t}, nil
}

// Err returns the first definition error.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) apply(fn func() error) error {
	b.mustBeOpen()
	if b.err != nil {
		return b.err
	}
	if err := fn(); err != nil {
		b.err = fmt.Errorf("schema %s: %w", b.typ.Name(), err)
	}
	return b.err
}

func (b *Builder) mustBeOpen() {
	if b.built {
		panic("schema: builder used after Build")
	}
}

func (b *Builder) addEnd(start, end string) error {
	if err := b.checkNames(start, end); err != nil {
		return err
	}
	if err := b.setRoles(RoleStart, start); err != nil {
		return err
	}
	if err := b.setRoles(RoleEnd, end); err != nil {
		return err
	}
	return addNamePair(b.t.endPairs, daerrors.MappingEndPair, start, end)
}

func (b *Builder) addQuadEnds(startLeft, startRight, endLeft, endRight string) error {
	if err := b.checkNames(startLeft, startRight, endLeft, endRight); err != nil {
		return err
	}
	if err := b.addEnd(startLeft, endLeft); err != nil {
		return err
	}
	return b.addEnd(startRight, endRight)
}

func (b *Builder) checkNames(names ...string) error {
	seen := make(feature.NameSet, len(names))
	for _, name := range names {
		if !b.typ.HasField(name) {
			return &daerrors.ConfigError{Option: "attribute", Value: name, Message: "not a field of " + b.typ.Name()}
		}
		if name == b.typ.GeometryField() {
			return &daerrors.ConfigError{Option: "attribute", Value: name, Message: "geometry field cannot be directional"}
		}
		if seen.Contains(name) {
			return &daerrors.ConfigError{Option: "attribute", Value: name, Message: "cannot be paired with itself"}
		}
		seen.Add(name)
	}
	return nil
}

func (b *Builder) setRoles(role Role, names ...string) error {
	for _, name := range names {
		if existing, ok := b.t.roles[name]; ok && existing != role {
			return &daerrors.ConflictingMappingError{
				Kind:      daerrors.MappingRole,
				Key:       name,
				Existing:  existing,
				Requested: role,
			}
		}
	}
	for _, name := range names {
		b.t.roles[name] = role
	}
	return nil
}

// addNamePair links from and to in both directions.
func addNamePair(pairs map[string]string, kind daerrors.MappingKind, from, to string) error {
	if existing, ok := pairs[from]; ok {
		if existing == to {
			return nil
		}
		return &daerrors.ConflictingMappingError{Kind: kind, Key: from, Existing: existing, Requested: to}
	}
	if existing, ok := pairs[to]; ok {
		return &daerrors.ConflictingMappingError{Kind: kind, Key: to, Existing: existing, Requested: from}
	}
	pairs[from] = to
	pairs[to] = from
	return nil
}

// addValue maps key to value, keyed by the canonical form of key.
func addValue(table map[any]any, name string, key, value any) error {
	k := equalutil.Key(key)
	if existing, ok := table[k]; ok && !equalutil.Equal(existing, value) {
		return &daerrors.ConflictingMappingError{
			Kind:      daerrors.MappingDirectionalValue,
			Attribute: name,
			Key:       key,
			Existing:  existing,
			Requested: value,
		}
	}
	table[k] = value
	return nil
}

// sortedValueKeys orders keys by their printed form so conflicts are
// reported deterministically.
func sortedValueKeys(values map[any]any) []any {
	keys := slices.Collect(maps.Keys(values))
	slices.SortFunc(keys, func(a, b any) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}
