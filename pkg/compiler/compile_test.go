package compiler

import (
	"reflect"
	"testing"

	"github.com/typedsettings/typedsettings/pkg/schema"
)

func compileDocument(t *testing.T, in, tier string) (*Module, error) {
	t.Helper()
	doc, err := schema.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := DefaultOptions()
	opts.Tier = tier
	return Compile(doc, opts)
}

func TestCompile_ScenarioDev(t *testing.T) {
	module, err := compileDocument(t, `
providers:
  - provider: db
    dev:
      host: localhost
      port: 5432
`, "dev")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if len(module.Providers) != 1 {
		t.Fatalf("expected 1 provider record, got %d", len(module.Providers))
	}
	db := module.Providers[0]
	if db.Name != "DB" {
		t.Errorf("expected record name DB, got %q", db.Name)
	}

	want := []Decl{
		&FieldDecl{Name: "host", Kind: KindStr, Value: "localhost"},
		&FieldDecl{Name: "port", Kind: KindInt, Value: int64(5432)},
	}
	if !reflect.DeepEqual(db.Fields, want) {
		t.Errorf("expected fields %+v, got %+v", want, db.Fields)
	}

	if !reflect.DeepEqual(module.Exports.Names, []string{"DB"}) {
		t.Errorf("expected exports [DB], got %v", module.Exports.Names)
	}
}

func TestCompile_StagingFallback(t *testing.T) {
	module, err := compileDocument(t, `
providers:
  - provider: db
    dev:
      host: localhost
      port: 5432
    staging:
      host: db.internal
`, "staging")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	want := []Decl{
		&FieldDecl{Name: "host", Kind: KindStr, Value: "db.internal"},
		&FieldDecl{Name: "port", Kind: KindInt, Value: int64(5432)},
	}
	if !reflect.DeepEqual(module.Providers[0].Fields, want) {
		t.Errorf("expected fields %+v, got %+v", want, module.Providers[0].Fields)
	}
}

func TestCompile_EntriesSortedByDesignator(t *testing.T) {
	module, err := compileDocument(t, `
providers:
  - provider: zebra
    dev: {x: 1}
  - provider: alpha
    dev: {x: 2}
`, "dev")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	var names []string
	for _, record := range module.Providers {
		names = append(names, record.Name)
	}
	if !reflect.DeepEqual(names, []string{"ALPHA", "ZEBRA"}) {
		t.Errorf("expected record order [ALPHA ZEBRA], got %v", names)
	}
}

func TestCompile_ExportCompleteness(t *testing.T) {
	module, err := compileDocument(t, `
providers:
  - provider: zulu
    dev: {x: 1}
  - provider: alpha
    dev: {x: 2}
constants:
  - name: mike
    dev: {x: 3}
`, "dev")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if !reflect.DeepEqual(module.Exports.Names, []string{"ALPHA", "MIKE", "ZULU"}) {
		t.Errorf("expected sorted exports [ALPHA MIKE ZULU], got %v", module.Exports.Names)
	}
}

func TestCompile_DuplicateAcrossSections(t *testing.T) {
	_, err := compileDocument(t, `
providers:
  - provider: db
    dev: {x: 1}
constants:
  - name: DB
    dev: {x: 2}
`, "dev")
	if err == nil {
		t.Fatal("expected a duplicate designator error")
	}
	if !schema.IsDuplicateDesignator(err) {
		t.Errorf("expected a DUPLICATE_DESIGNATOR error, got %v", err)
	}
}

func TestCompile_MissingDevTier(t *testing.T) {
	_, err := compileDocument(t, `
providers:
  - provider: db
    staging:
      host: db.internal
`, "staging")
	if err == nil {
		t.Fatal("expected a missing tier error")
	}
	if !schema.IsMissingTier(err) {
		t.Errorf("expected a MISSING_TIER error, got %v", err)
	}
}

func TestCompile_Determinism(t *testing.T) {
	const in = `
providers:
  - provider: web
    dev:
      host: example.com
      flags-enabled: true
constants:
  - name: limits
    dev:
      depths:
        - 1
        - 2
`
	first, err := compileDocument(t, in, "dev")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	second, err := compileDocument(t, in, "dev")
	if err != nil {
		t.Fatalf("second Compile failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical modules for identical input")
	}
}

func TestBuildRecord_HyphenNormalization(t *testing.T) {
	record, err := BuildRecord(propertyMap("flags-enabled", true), "WEB")
	if err != nil {
		t.Fatalf("BuildRecord failed: %v", err)
	}
	field := record.Fields[0].(*FieldDecl)
	if field.Name != "flags_enabled" {
		t.Errorf("expected identifier flags_enabled, got %q", field.Name)
	}
}

func TestBuildRecord_NestedRecord(t *testing.T) {
	record, err := BuildRecord(
		propertyMap("timeouts", propertyMap("connect", int64(5)), "host", "x"), "WEB")
	if err != nil {
		t.Fatalf("BuildRecord failed: %v", err)
	}

	nested, ok := record.Fields[0].(*RecordDecl)
	if !ok {
		t.Fatalf("expected a nested record, got %T", record.Fields[0])
	}
	if nested.Name != "timeouts" {
		t.Errorf("expected nested record name timeouts, got %q", nested.Name)
	}
	inner := nested.Fields[0].(*FieldDecl)
	if inner.Name != "connect" || inner.Kind != KindInt {
		t.Errorf("unexpected nested field %+v", inner)
	}
}

func TestBuildRecord_SingleKeyTuple(t *testing.T) {
	record, err := BuildRecord(
		propertyMap("modes", []interface{}{"read", "write"}), "FLAGS")
	if err != nil {
		t.Fatalf("BuildRecord failed: %v", err)
	}

	tuple, ok := record.Fields[0].(*TupleDecl)
	if !ok {
		t.Fatalf("expected a tuple declaration, got %T", record.Fields[0])
	}
	if tuple.Type != "Tuple[str]" {
		t.Errorf("expected Tuple[str], got %q", tuple.Type)
	}
	if !reflect.DeepEqual(tuple.Elems, []interface{}{"read", "write"}) {
		t.Errorf("expected elements [read write], got %v", tuple.Elems)
	}
}

func TestBuildRecord_ListInMultiKeyMapRejected(t *testing.T) {
	_, err := BuildRecord(
		propertyMap("modes", []interface{}{"read"}, "host", "x"), "FLAGS")
	if err == nil {
		t.Fatal("expected an unsupported value error")
	}
	if !schema.IsUnsupportedValue(err) {
		t.Errorf("expected an UNSUPPORTED_VALUE error, got %v", err)
	}
}

func TestBuildRecord_NullFieldIsUntyped(t *testing.T) {
	record, err := BuildRecord(propertyMap("comment", nil), "META")
	if err != nil {
		t.Fatalf("BuildRecord failed: %v", err)
	}
	field := record.Fields[0].(*FieldDecl)
	if field.Kind != KindNone {
		t.Errorf("expected no kind for a null value, got %q", field.Kind)
	}
}

func TestCompile_InvalidOptions(t *testing.T) {
	doc, err := schema.Parse([]byte("providers:\n  - provider: db\n    dev: {x: 1}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, err = Compile(doc, Options{Tier: "dev"})
	if err == nil {
		t.Fatal("expected an error for options without a command")
	}
}
