package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a settings schema file from the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, NewSchemaParseError("schema is not valid YAML", err)
	}
	if root.Kind == 0 {
		return nil, NewSchemaParseError("empty schema document", nil)
	}
	return parseDocument(&root)
}
