package compiler

import (
	"strings"

	"github.com/typedsettings/typedsettings/pkg/schema"
)

// BuildRecord walks a resolved property map and builds its record
// declaration. Keys are visited in the map's document order; hyphens in keys
// are normalized to underscores to form valid identifiers.
//
// A sequence value is only supported in the single-key shape: a map with
// exactly one key mapping to a list of scalars becomes a typed tuple field.
// A list value anywhere else fails with an UnsupportedValue error.
func BuildRecord(resolved *schema.PropertyMap, name string) (*RecordDecl, error) {
	return buildRecord(resolved, name, name)
}

func buildRecord(resolved *schema.PropertyMap, name, path string) (*RecordDecl, error) {
	record := &RecordDecl{Name: name}
	for _, key := range resolved.Keys() {
		value, _ := resolved.Get(key)
		ident := identifier(key)
		fieldPath := path + "." + key

		switch v := value.(type) {
		case *schema.PropertyMap:
			nested, err := buildRecord(v, ident, fieldPath)
			if err != nil {
				return nil, err
			}
			record.Fields = append(record.Fields, nested)

		case []interface{}:
			if resolved.Len() != 1 {
				return nil, schema.NewUnsupportedValueError(fieldPath, value)
			}
			tupleType, elems, err := TupleType(v)
			if err != nil {
				if serr, ok := err.(*schema.Error); ok && serr.Path == "" {
					serr.Path = fieldPath
				}
				return nil, err
			}
			record.Fields = append(record.Fields, &TupleDecl{
				Name:  ident,
				Type:  tupleType,
				Elems: elems,
			})

		default:
			normalized := NormalizeScalar(v)
			kind, err := ScalarKind(normalized)
			if err != nil {
				return nil, schema.NewUnsupportedValueError(fieldPath, v)
			}
			record.Fields = append(record.Fields, &FieldDecl{
				Name:  ident,
				Kind:  kind,
				Value: normalized,
			})
		}
	}
	return record, nil
}

// identifier normalizes a property key to a valid identifier.
func identifier(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}
