package schema

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	doc, err := Parse([]byte(`
providers:
  - provider: db
    dev:
      host: localhost
      port: 5432
    staging:
      host: db.internal
constants:
  - name: flags
    dev:
      modes:
        - read
        - write
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Providers) != 1 || len(doc.Constants) != 1 {
		t.Fatalf("expected 1 provider and 1 constant, got %d and %d",
			len(doc.Providers), len(doc.Constants))
	}

	db := doc.Providers[0]
	if db.Designator != "db" {
		t.Errorf("expected designator db, got %q", db.Designator)
	}
	if len(db.Tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(db.Tiers))
	}

	dev := db.Tiers["dev"]
	if got := dev.Keys(); !reflect.DeepEqual(got, []string{"host", "port"}) {
		t.Errorf("expected key order [host port], got %v", got)
	}
	if host, _ := dev.Get("host"); host != "localhost" {
		t.Errorf("expected host localhost, got %v", host)
	}
	if port, _ := dev.Get("port"); port != int64(5432) {
		t.Errorf("expected port int64(5432), got %v (%T)", port, port)
	}

	flags := doc.Constants[0]
	modes, _ := flags.Tiers["dev"].Get("modes")
	if !reflect.DeepEqual(modes, []interface{}{"read", "write"}) {
		t.Errorf("expected modes [read write], got %v", modes)
	}
}

func TestParse_ScalarTypes(t *testing.T) {
	doc, err := Parse([]byte(`
providers:
  - provider: svc
    dev:
      name: api
      replicas: 3
      ratio: 0.5
      enabled: true
      comment: null
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	dev := doc.Providers[0].Tiers["dev"]
	tests := []struct {
		key  string
		want interface{}
	}{
		{"name", "api"},
		{"replicas", int64(3)},
		{"ratio", 0.5},
		{"enabled", true},
		{"comment", nil},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := dev.Get(tt.key)
			if !ok {
				t.Fatalf("key %q missing", tt.key)
			}
			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestParse_NestedMapPreservesOrder(t *testing.T) {
	doc, err := Parse([]byte(`
providers:
  - provider: web
    dev:
      timeouts:
        connect: 5
        read: 30
      host: example.com
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	dev := doc.Providers[0].Tiers["dev"]
	if got := dev.Keys(); !reflect.DeepEqual(got, []string{"timeouts", "host"}) {
		t.Fatalf("expected key order [timeouts host], got %v", got)
	}

	timeouts, _ := dev.Get("timeouts")
	nested, ok := timeouts.(*PropertyMap)
	if !ok {
		t.Fatalf("expected nested *PropertyMap, got %T", timeouts)
	}
	if got := nested.Keys(); !reflect.DeepEqual(got, []string{"connect", "read"}) {
		t.Errorf("expected nested key order [connect read], got %v", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", ":\n  - ["},
		{"root not mapping", "- a\n- b\n"},
		{"unknown section", "services:\n  - provider: db\n    dev: {}\n"},
		{"section not sequence", "providers:\n  provider: db\n"},
		{"entry not mapping", "providers:\n  - just-a-string\n"},
		{"missing designator", "providers:\n  - dev:\n      host: x\n"},
		{"tier not mapping", "providers:\n  - provider: db\n    dev: 42\n"},
		{"duplicate tier", "providers:\n  - provider: db\n    dev: {a: 1}\n    dev: {b: 2}\n"},
		{"empty document", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("expected a parse error")
			}
			if !IsSchemaParse(err) {
				t.Errorf("expected a SCHEMA_PARSE error, got %v", err)
			}
		})
	}
}

func TestDocument_Validate(t *testing.T) {
	doc, err := Parse([]byte(`
providers:
  - provider: db
    dev: {host: a}
  - provider: DB
    dev: {host: b}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	err = doc.Validate()
	if err == nil {
		t.Fatal("expected a duplicate designator error")
	}
	if !IsDuplicateDesignator(err) {
		t.Errorf("expected a DUPLICATE_DESIGNATOR error, got %v", err)
	}
}

func TestDocument_ValidateDistinctSections(t *testing.T) {
	// The same name in providers and constants is legal at parse time; the
	// compiler rejects the collision when building the export list.
	doc, err := Parse([]byte(`
providers:
  - provider: db
    dev: {host: a}
constants:
  - name: db
    dev: {host: b}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("expected per-section validation to pass, got %v", err)
	}
}

func TestError_Is(t *testing.T) {
	err := NewMissingTierError("db")
	if !errors.Is(err, &Error{Code: CodeMissingTier}) {
		t.Error("expected errors.Is to match on code")
	}
	if errors.Is(err, &Error{Code: CodeSchemaParse}) {
		t.Error("expected errors.Is not to match a different code")
	}
}

func TestPropertyMap_Clone(t *testing.T) {
	m := NewPropertyMap()
	nested := NewPropertyMap()
	nested.Set("inner", int64(1))
	m.Set("rec", nested)
	m.Set("list", []interface{}{"a", "b"})

	clone := m.Clone()
	nested.Set("inner", int64(2))

	got, _ := clone.Get("rec")
	if inner, _ := got.(*PropertyMap).Get("inner"); inner != int64(1) {
		t.Errorf("clone shares nested map with original: inner = %v", inner)
	}
}
