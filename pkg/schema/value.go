package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PropertyMap is a property map that preserves the key order of the source
// document. Values are scalars (string, int64, float64, bool, nil), []interface{}
// sequences of scalars, or nested *PropertyMap records.
type PropertyMap struct {
	keys   []string
	values map[string]interface{}
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{
		values: make(map[string]interface{}),
	}
}

// Len returns the number of keys.
func (m *PropertyMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *PropertyMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value for key and whether the key is present.
func (m *PropertyMap) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set inserts or overwrites the value for key. A new key is appended after
// all existing keys.
func (m *PropertyMap) Set(key string, value interface{}) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Clone returns a deep copy of the property map.
func (m *PropertyMap) Clone() *PropertyMap {
	clone := NewPropertyMap()
	for _, key := range m.keys {
		clone.Set(key, CloneValue(m.values[key]))
	}
	return clone
}

// CloneValue deep-copies a property value. Scalars are returned as-is.
func CloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case *PropertyMap:
		return val.Clone()
	case []interface{}:
		elems := make([]interface{}, len(val))
		for i, e := range val {
			elems[i] = CloneValue(e)
		}
		return elems
	default:
		return v
	}
}

// decodeMapping decodes a YAML mapping node into a PropertyMap.
func decodeMapping(node *yaml.Node) (*PropertyMap, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, NewSchemaParseError(
			fmt.Sprintf("expected a mapping at line %d, got %s", node.Line, kindName(node.Kind)), nil)
	}

	m := NewPropertyMap()
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, NewSchemaParseError(
				fmt.Sprintf("expected a scalar key at line %d", keyNode.Line), nil)
		}
		if _, dup := m.Get(keyNode.Value); dup {
			return nil, NewSchemaParseError(
				fmt.Sprintf("duplicate key %q at line %d", keyNode.Value, keyNode.Line), nil)
		}
		value, err := decodeValue(valNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, value)
	}
	return m, nil
}

// decodeValue decodes a YAML node into a property value.
func decodeValue(node *yaml.Node) (interface{}, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.SequenceNode:
		elems := make([]interface{}, 0, len(node.Content))
		for _, elem := range node.Content {
			v, err := decodeValue(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil
	case yaml.ScalarNode:
		return decodeScalar(node)
	default:
		return nil, NewSchemaParseError(
			fmt.Sprintf("unsupported node at line %d", node.Line), nil)
	}
}

// decodeScalar decodes a YAML scalar node into its Go representation.
func decodeScalar(node *yaml.Node) (interface{}, error) {
	switch node.Tag {
	case "!!str":
		return node.Value, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, NewSchemaParseError(
				fmt.Sprintf("invalid integer %q at line %d", node.Value, node.Line), err)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, NewSchemaParseError(
				fmt.Sprintf("invalid float %q at line %d", node.Value, node.Line), err)
		}
		return f, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, NewSchemaParseError(
				fmt.Sprintf("invalid boolean %q at line %d", node.Value, node.Line), err)
		}
		return b, nil
	case "!!null":
		return nil, nil
	default:
		return nil, NewSchemaParseError(
			fmt.Sprintf("unsupported scalar tag %s at line %d", node.Tag, node.Line), nil)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
