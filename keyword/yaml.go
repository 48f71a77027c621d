package keyword

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a flat `name: description` YAML mapping into a table.
// Empty keyword names are rejected.
func LoadYAML(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read keyword table: %w", err)
	}

	var pairs map[string]string
	if err := yaml.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	for name := range pairs {
		if name == "" {
			return nil, fmt.Errorf("parse keyword table: empty keyword name")
		}
	}
	return NewTable(pairs), nil
}
