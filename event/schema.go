package event

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema describes how raw rows map onto events: which column anchors the
// record to the dimension and which columns are carried as attributes.
// The descriptor is explicit and validated up front; columns are never
// inferred per access.
type Schema struct {
	// Dimension names the array dimension the events anchor to, e.g. "time".
	Dimension string `yaml:"dimension"`

	// Anchor names the column holding the coordinate (or interval start).
	Anchor string `yaml:"anchor"`

	// End optionally names the column holding the interval end; empty means
	// scalar anchors.
	End string `yaml:"end,omitempty"`

	// Attributes lists the columns carried onto records. Empty means every
	// non-anchor column is an attribute.
	Attributes []string `yaml:"attributes,omitempty"`
}

// Validate checks the descriptor itself (not any rows).
// Returns ErrSchema when Dimension or Anchor is empty, or when the anchor
// column is also listed as an attribute.
func (s Schema) Validate() error {
	if s.Dimension == "" {
		return fmt.Errorf("%w: empty dimension name", ErrSchema)
	}
	if s.Anchor == "" {
		return fmt.Errorf("%w: empty anchor column", ErrSchema)
	}
	for _, col := range s.Attributes {
		if col == s.Anchor || (s.End != "" && col == s.End) {
			return fmt.Errorf("%w: column %q is both anchor and attribute", ErrSchema, col)
		}
	}

	return nil
}

// ParseSchema decodes a YAML schema descriptor.
func ParseSchema(b []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Schema{}, fmt.Errorf("event: parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}

	return s, nil
}

// LoadSchema reads and decodes a YAML schema descriptor from path.
func LoadSchema(path string) (Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("event: load schema: %w", err)
	}

	return ParseSchema(b)
}
