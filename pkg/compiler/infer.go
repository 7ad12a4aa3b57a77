package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/typedsettings/typedsettings/pkg/schema"
)

// Kind is the inferred scalar kind of a leaf value, named with the target
// language's type vocabulary. The zero value means "no annotation" (null).
type Kind string

const (
	KindNone  Kind = ""
	KindStr   Kind = "str"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindBool  Kind = "bool"
)

// NormalizeScalar canonicalizes a scalar value before kind inference. A
// string bracketed by a matching pair of single or double quotes has the
// quotes stripped; otherwise the boolean literal spellings true/True/TRUE and
// false/False/FALSE are coerced to booleans. Stripping and coercion are
// mutually exclusive, so a quoted "'true'" stays a string.
func NormalizeScalar(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if quoted(s) {
		return s[1 : len(s)-1]
	}
	switch s {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	return s
}

func quoted(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == last && (first == '\'' || first == '"')
}

// ScalarKind infers the kind of a normalized scalar value. A nil value
// yields KindNone: the generated field carries no type annotation.
func ScalarKind(v interface{}) (Kind, error) {
	switch v.(type) {
	case nil:
		return KindNone, nil
	case string:
		return KindStr, nil
	case int64:
		return KindInt, nil
	case float64:
		return KindFloat, nil
	case bool:
		return KindBool, nil
	default:
		return KindNone, schema.NewUnsupportedValueError("", v)
	}
}

// TupleType infers the type annotation of a sequence of scalars and returns
// it alongside the normalized elements. The element kinds are collected into
// a set and sorted lexicographically, so the union ordering is canonical:
// a single-kind sequence yields Tuple[kind], a mixed sequence yields
// Tuple[Union[kind1,kind2,...]]. An empty sequence yields no annotation.
func TupleType(elems []interface{}) (string, []interface{}, error) {
	normalized := make([]interface{}, len(elems))
	kindSet := make(map[string]struct{})
	for i, elem := range elems {
		v := NormalizeScalar(elem)
		kind, err := ScalarKind(v)
		if err != nil {
			return "", nil, err
		}
		normalized[i] = v
		if kind == KindNone {
			// A null element annotates as the target language's null type.
			kindSet["NoneType"] = struct{}{}
		} else {
			kindSet[string(kind)] = struct{}{}
		}
	}
	if len(elems) == 0 {
		return "", normalized, nil
	}

	kinds := make([]string, 0, len(kindSet))
	for kind := range kindSet {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	if len(kinds) == 1 {
		return fmt.Sprintf("Tuple[%s]", kinds[0]), normalized, nil
	}
	return fmt.Sprintf("Tuple[Union[%s]]", strings.Join(kinds, ",")), normalized, nil
}
