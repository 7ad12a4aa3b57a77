package schema

import (
	"bytes"
	"sort"

	"gopkg.in/yaml.v3"
)

// Format re-emits a schema document in canonical order: entries of each
// section sorted by designator, with the designator key hoisted to the front
// of each entry mapping. All other key order, including tier and property
// order, is preserved. Comments survive via the yaml node representation.
func Format(data []byte) ([]byte, error) {
	// Reject documents that are not valid schemas before rewriting anything.
	if _, err := Parse(data); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, NewSchemaParseError("schema is not valid YAML", err)
	}

	mapping := &root
	if mapping.Kind == yaml.DocumentNode {
		mapping = mapping.Content[0]
	}

	for i := 0; i < len(mapping.Content); i += 2 {
		var designatorKey string
		switch mapping.Content[i].Value {
		case SectionProviders:
			designatorKey = DesignatorProvider
		case SectionConstants:
			designatorKey = DesignatorName
		default:
			continue
		}

		seq := resolveAlias(mapping.Content[i+1])
		if seq.Kind != yaml.SequenceNode {
			continue
		}
		for _, entry := range seq.Content {
			hoistDesignator(resolveAlias(entry), designatorKey)
		}
		sort.SliceStable(seq.Content, func(a, b int) bool {
			return designatorValue(seq.Content[a], designatorKey) <
				designatorValue(seq.Content[b], designatorKey)
		})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, NewSchemaParseError("failed to re-emit schema", err)
	}
	if err := enc.Close(); err != nil {
		return nil, NewSchemaParseError("failed to re-emit schema", err)
	}
	return buf.Bytes(), nil
}

// hoistDesignator moves the designator key/value pair to the front of an
// entry mapping.
func hoistDesignator(entry *yaml.Node, designatorKey string) {
	if entry.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i < len(entry.Content); i += 2 {
		if entry.Content[i].Value != designatorKey {
			continue
		}
		pair := []*yaml.Node{entry.Content[i], entry.Content[i+1]}
		rest := append(entry.Content[:i:i], entry.Content[i+2:]...)
		entry.Content = append(pair, rest...)
		return
	}
}

// designatorValue returns the designator scalar of an entry mapping, or ""
// when absent.
func designatorValue(entry *yaml.Node, designatorKey string) string {
	entry = resolveAlias(entry)
	if entry.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i < len(entry.Content); i += 2 {
		if entry.Content[i].Value == designatorKey {
			return resolveAlias(entry.Content[i+1]).Value
		}
	}
	return ""
}
