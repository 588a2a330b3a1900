// Package yaml is a thin wrapper around goccy/go-yaml so the rest of the
// codebase does not depend on a concrete YAML implementation directly.
package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Unmarshal parses YAML bytes into the provided object.
func Unmarshal(data []byte, obj interface{}) error {
	if err := yaml.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("error parsing YAML: %w", err)
	}
	return nil
}

// Marshal renders the provided object as YAML bytes.
func Marshal(obj interface{}) ([]byte, error) {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("error rendering YAML: %w", err)
	}
	return data, nil
}
