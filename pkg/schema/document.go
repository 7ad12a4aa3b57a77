package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section and designator key names of the schema document.
const (
	// SectionProviders is the top-level sequence of provider entries.
	SectionProviders = "providers"

	// SectionConstants is the top-level sequence of constant entries.
	SectionConstants = "constants"

	// DesignatorProvider is the designator key of a provider entry.
	DesignatorProvider = "provider"

	// DesignatorName is the designator key of a constant entry.
	DesignatorName = "name"

	// TierDev is the mandatory fallback tier.
	TierDev = "dev"
)

// Document is a parsed settings schema. It is read-only after parsing.
type Document struct {
	// Providers are the entries of the providers section, in document order.
	Providers []Entry

	// Constants are the entries of the constants section, in document order.
	Constants []Entry
}

// Entry is one provider or constant definition, keyed by tier.
type Entry struct {
	// Designator is the entry's name as written in the schema. The
	// uppercased designator becomes the generated record name.
	Designator string

	// Tiers maps tier name to that tier's property map.
	Tiers map[string]*PropertyMap
}

// parseDocument decodes the root YAML node into a Document.
func parseDocument(root *yaml.Node) (*Document, error) {
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, NewSchemaParseError("empty schema document", nil)
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, NewSchemaParseError("schema root must be a mapping", nil)
	}

	doc := &Document{}
	for i := 0; i < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		switch keyNode.Value {
		case SectionProviders:
			entries, err := parseSection(valNode, SectionProviders, DesignatorProvider)
			if err != nil {
				return nil, err
			}
			doc.Providers = entries
		case SectionConstants:
			entries, err := parseSection(valNode, SectionConstants, DesignatorName)
			if err != nil {
				return nil, err
			}
			doc.Constants = entries
		default:
			return nil, NewSchemaParseError(
				fmt.Sprintf("unknown top-level section %q at line %d", keyNode.Value, keyNode.Line), nil)
		}
	}
	return doc, nil
}

// parseSection decodes one top-level sequence of entries.
func parseSection(node *yaml.Node, section, designatorKey string) ([]Entry, error) {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, NewSchemaParseError(
			fmt.Sprintf("section %q must be a sequence, got %s at line %d",
				section, kindName(node.Kind), node.Line), nil)
	}

	entries := make([]Entry, 0, len(node.Content))
	for _, elem := range node.Content {
		entry, err := parseEntry(elem, section, designatorKey)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseEntry decodes one entry mapping. The designator key names the entry;
// every other key is a tier name mapping to that tier's property map.
func parseEntry(node *yaml.Node, section, designatorKey string) (Entry, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return Entry{}, NewSchemaParseError(
			fmt.Sprintf("entries of %q must be mappings, got %s at line %d",
				section, kindName(node.Kind), node.Line), nil)
	}

	entry := Entry{Tiers: make(map[string]*PropertyMap)}
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Value == designatorKey {
			designator := resolveAlias(valNode)
			if designator.Kind != yaml.ScalarNode {
				return Entry{}, NewSchemaParseError(
					fmt.Sprintf("designator %q must be a scalar at line %d", designatorKey, valNode.Line), nil)
			}
			entry.Designator = designator.Value
			continue
		}
		if _, dup := entry.Tiers[keyNode.Value]; dup {
			return Entry{}, NewSchemaParseError(
				fmt.Sprintf("duplicate tier %q at line %d", keyNode.Value, keyNode.Line), nil)
		}
		properties, err := decodeMapping(valNode)
		if err != nil {
			return Entry{}, err
		}
		entry.Tiers[keyNode.Value] = properties
	}

	if entry.Designator == "" {
		return Entry{}, NewSchemaParseError(
			fmt.Sprintf("entry in %q has no %q key at line %d", section, designatorKey, node.Line), nil)
	}
	return entry, nil
}

// Validate checks the schema invariants that do not depend on the requested
// tier: designators must be unique within their section after uppercasing.
// Missing dev tiers surface later, from tier resolution.
func (d *Document) Validate() error {
	if err := validateSection(d.Providers, SectionProviders); err != nil {
		return err
	}
	return validateSection(d.Constants, SectionConstants)
}

func validateSection(entries []Entry, section string) error {
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := strings.ToUpper(entry.Designator)
		if _, dup := seen[name]; dup {
			return NewDuplicateDesignatorError(section, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
