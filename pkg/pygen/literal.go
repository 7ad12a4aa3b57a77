package pygen

import (
	"fmt"
	"strconv"
	"strings"
)

// literal renders a scalar value as a Python literal.
func literal(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "None", nil
	case bool:
		if val {
			return "True", nil
		}
		return "False", nil
	case string:
		return quote(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return formatFloat(val), nil
	default:
		return "", fmt.Errorf("cannot render %T as a Python literal", v)
	}
}

// quote renders a single-quoted Python string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// formatFloat renders a float so it round-trips as a Python float literal:
// a value without a fractional part still gets a trailing ".0".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// tupleLiteral renders a Python tuple literal, with the trailing comma a
// one-element tuple requires.
func tupleLiteral(elems []interface{}) (string, error) {
	parts := make([]string, len(elems))
	for i, elem := range elems {
		lit, err := literal(elem)
		if err != nil {
			return "", err
		}
		parts[i] = lit
	}
	switch len(parts) {
	case 0:
		return "()", nil
	case 1:
		return "(" + parts[0] + ",)", nil
	default:
		return "(" + strings.Join(parts, ", ") + ")", nil
	}
}
