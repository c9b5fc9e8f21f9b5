package schemaconfig

import (
	"fmt"
	"io"

	"github.com/erraggy/dirattrs/daerrors"
	"go.yaml.in/yaml/v4"
)

// Config is a decoded schema catalog.
type Config struct {
	Types []TypeConfig `yaml:"types"`
}

// TypeConfig describes one feature type and its attribute pairings.
type TypeConfig struct {
	Name     string   `yaml:"name"`
	Geometry string   `yaml:"geometry"`
	Length   string   `yaml:"length,omitempty"`
	Fields   []string `yaml:"fields"`
	Ignore   []string `yaml:"ignore,omitempty"`

	EndPairs        [][]string `yaml:"endPairs,omitempty"`
	SidePairs       [][]string `yaml:"sidePairs,omitempty"`
	EndAndSideQuads [][]string `yaml:"endAndSideQuads,omitempty"`
	EndTurnQuads    [][]string `yaml:"endTurnQuads,omitempty"`

	// DirectionalValues maps an attribute to its value substitutions.
	DirectionalValues map[string]map[any]any `yaml:"directionalValues,omitempty"`
}

// Parse decodes a catalog from YAML (or JSON) bytes.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &daerrors.ConfigError{Option: "catalog", Message: "invalid YAML", Cause: err}
	}
	if len(c.Types) == 0 {
		return nil, &daerrors.ConfigError{Option: "catalog", Message: "no types defined"}
	}
	return &c, nil
}

// Decode reads a catalog from r.
func Decode(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schemaconfig: read catalog: %w", err)
	}
	return Parse(data)
}

// Marshal serializes a catalog to YAML.
func Marshal(c *Config) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("schemaconfig: failed to marshal: %w", err)
	}
	return data, nil
}
