package feature

import (
	"slices"

	"github.com/erraggy/dirattrs/daerrors"
)

// Type describes the attributes of a feature class.
type Type struct {
	name          string
	fields        []string
	fieldSet      NameSet
	geometryField string
	lengthField   string
	ignored       NameSet
}

// TypeOption configures a Type.
type TypeOption func(*Type) error

// WithLengthField names the attribute that stores the line length.
func WithLengthField(name string) TypeOption {
	return func(t *Type) error {
		if !t.fieldSet.Contains(name) {
			return &daerrors.ConfigError{Option: "length field", Value: name, Message: "not a field of " + t.name}
		}
		if name == t.geometryField {
			return &daerrors.ConfigError{Option: "length field", Value: name, Message: "cannot be the geometry field"}
		}
		t.lengthField = name
		return nil
	}
}

// WithIgnored names attributes that are never compared by equality or
// mergeability checks, e.g. identifiers and audit columns.
func WithIgnored(names ...string) TypeOption {
	return func(t *Type) error {
		for _, name := range names {
			if !t.fieldSet.Contains(name) {
				return &daerrors.ConfigError{Option: "ignored field", Value: name, Message: "not a field of " + t.name}
			}
			t.ignored.Add(name)
		}
		return nil
	}
}

// NewType creates a feature type with the given ordered field names. The
// geometry field must be one of the fields.
func NewType(name, geometryField string, fields []string, opts ...TypeOption) (*Type, error) {
	if name == "" {
		return nil, &daerrors.ConfigError{Option: "type name", Message: "must not be empty"}
	}
	t := &Type{
		name:          name,
		fields:        slices.Clone(fields),
		fieldSet:      make(NameSet, len(fields)),
		geometryField: geometryField,
		ignored:       make(NameSet),
	}
	for _, field := range fields {
		if field == "" {
			return nil, &daerrors.ConfigError{Option: "field", Message: "empty field name in " + name}
		}
		if t.fieldSet.Contains(field) {
			return nil, &daerrors.ConfigError{Option: "field", Value: field, Message: "duplicate field in " + name}
		}
		t.fieldSet.Add(field)
	}
	if !t.fieldSet.Contains(geometryField) {
		return nil, &daerrors.ConfigError{Option: "geometry field", Value: geometryField, Message: "not a field of " + name}
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Name returns the type name.
func (t *Type) Name() string {
	return t.name
}

// Fields returns the field names in declaration order.
func (t *Type) Fields() []string {
	return slices.Clone(t.fields)
}

// HasField reports whether name is a field of the type.
func (t *Type) HasField(name string) bool {
	return t.fieldSet.Contains(name)
}

// GeometryField returns the name of the line attribute.
func (t *Type) GeometryField() string {
	return t.geometryField
}

// LengthField returns the name of the derived length attribute, or "" if the
// type has none.
func (t *Type) LengthField() string {
	return t.lengthField
}

// IsIgnored reports whether name is excluded from comparisons for this type.
func (t *Type) IsIgnored(name string) bool {
	return t.ignored.Contains(name)
}

// Ignored returns the ignored field names in lexical order.
func (t *Type) Ignored() []string {
	return t.ignored.Sorted()
}
