package schemaconfig

import (
	"fmt"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/internal/maputil"
	"github.com/erraggy/dirattrs/schema"
)

// Catalog holds the frozen schemas of a configuration, by type name.
// It is safe for concurrent use.
type Catalog struct {
	names   []string
	schemas map[string]*schema.Schema
}

// Schema returns the schema of the named type.
func (c *Catalog) Schema(name string) (*schema.Schema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

// Names returns the type names in configuration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Build validates every type and freezes its schema. The first failing type
// is reported as a *daerrors.ConfigError naming its position.
func (c *Config) Build() (*Catalog, error) {
	cat := &Catalog{schemas: make(map[string]*schema.Schema, len(c.Types))}
	for i := range c.Types {
		tc := &c.Types[i]
		option := fmt.Sprintf("types[%d]", i)
		if _, dup := cat.schemas[tc.Name]; dup {
			return nil, &daerrors.ConfigError{Option: option, Value: tc.Name, Message: "duplicate type name"}
		}
		s, err := tc.build()
		if err != nil {
			return nil, &daerrors.ConfigError{Option: option, Value: tc.Name, Cause: err}
		}
		cat.names = append(cat.names, tc.Name)
		cat.schemas[tc.Name] = s
	}
	return cat, nil
}

func (tc *TypeConfig) build() (*schema.Schema, error) {
	if err := tc.checkShapes(); err != nil {
		return nil, err
	}
	var opts []feature.TypeOption
	if tc.Length != "" {
		opts = append(opts, feature.WithLengthField(tc.Length))
	}
	if len(tc.Ignore) > 0 {
		opts = append(opts, feature.WithIgnored(tc.Ignore...))
	}
	typ, err := feature.NewType(tc.Name, tc.Geometry, tc.Fields, opts...)
	if err != nil {
		return nil, err
	}

	// Builder errors are sticky; Build reports the first one.
	b := schema.NewBuilder(typ)
	for _, name := range maputil.SortedKeys(tc.DirectionalValues) {
		_ = b.AddDirectionalValues(name, tc.DirectionalValues[name])
	}
	for _, p := range tc.EndPairs {
		_ = b.AddEndPair(p[0], p[1])
	}
	for _, p := range tc.SidePairs {
		_ = b.AddSidePair(p[0], p[1])
	}
	for _, q := range tc.EndAndSideQuads {
		_ = b.AddEndAndSidePair(q[0], q[1], q[2], q[3])
	}
	for _, q := range tc.EndTurnQuads {
		_ = b.AddEndTurnPair(q[0], q[1], q[2], q[3])
	}
	return b.Build()
}

func (tc *TypeConfig) checkShapes() error {
	groups := []struct {
		key     string
		size    int
		entries [][]string
	}{
		{"endPairs", 2, tc.EndPairs},
		{"sidePairs", 2, tc.SidePairs},
		{"endAndSideQuads", 4, tc.EndAndSideQuads},
		{"endTurnQuads", 4, tc.EndTurnQuads},
	}
	for _, g := range groups {
		for i, names := range g.entries {
			if len(names) != g.size {
				return &daerrors.ConfigError{
					Option:  fmt.Sprintf("%s[%d]", g.key, i),
					Value:   names,
					Message: fmt.Sprintf("want %d names, got %d", g.size, len(names)),
				}
			}
		}
	}
	return nil
}
