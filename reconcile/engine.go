package reconcile

import (
	"fmt"

	"github.com/erraggy/dirattrs/daerrors"
	"github.com/erraggy/dirattrs/feature"
	"github.com/erraggy/dirattrs/geometry"
	"github.com/erraggy/dirattrs/schema"
)

// Engine compares, reverses and merges features of one type according to a
// frozen schema. An Engine is immutable and safe for concurrent use.
type Engine struct {
	schema    *schema.Schema
	typ       *feature.Type
	logger    Logger
	precision geometry.Precision
	dumps     bool
}

// New creates an engine for s.
func New(s *schema.Schema, opts ...Option) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("reconcile: %w", &daerrors.ConfigError{Option: "schema", Message: "must not be nil"})
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("reconcile: invalid options: %w", err)
	}
	return &Engine{
		schema:    s,
		typ:       s.Type(),
		logger:    cfg.logger.With("type", s.Type().Name()),
		precision: cfg.precision,
		dumps:     cfg.dumps,
	}, nil
}

// Schema returns the schema the engine was built with.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// compared reports whether name takes part in attribute traversals.
func (e *Engine) compared(name string, exclude feature.NameSet) bool {
	return !exclude.Contains(name) && !e.typ.IsIgnored(name)
}

func (e *Engine) logMismatch(msg string, f1 *feature.Feature, name1 string, v1 any, f2 *feature.Feature, name2 string, v2 any) {
	attrs := []any{"field1", name1, "value1", v1, "field2", name2, "value2", v2}
	if e.dumps {
		attrs = append(attrs, "feature1", f1.Dump(), "feature2", f2.Dump())
	}
	e.logger.Debug(msg, attrs...)
}
