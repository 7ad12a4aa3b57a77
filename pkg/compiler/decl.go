package compiler

// Decl is a node of the language-neutral declaration tree. The concrete
// variants are RecordDecl, FieldDecl, TupleDecl, and ExportListDecl.
type Decl interface {
	decl()
}

// RecordDecl is a named group of typed fields, possibly nested. Fields are
// emitted in the order of the resolved property map.
type RecordDecl struct {
	// Name is the record's identifier. Top-level records use the entry's
	// uppercased designator; nested records use the normalized key.
	Name string

	// Fields are *FieldDecl, *TupleDecl, or nested *RecordDecl values.
	Fields []Decl
}

// FieldDecl is a typed scalar field. Kind is KindNone for null values, in
// which case the rendered field carries no type annotation.
type FieldDecl struct {
	Name  string
	Kind  Kind
	Value interface{}
}

// TupleDecl is a typed tuple field holding a sequence of scalars. Type is
// the full annotation text (e.g. "Tuple[Union[int,str]]") or empty for an
// empty sequence.
type TupleDecl struct {
	Name  string
	Type  string
	Elems []interface{}
}

// ExportListDecl is the trailing export list naming every generated
// top-level record, lexicographically sorted.
type ExportListDecl struct {
	Names []string
}

func (*RecordDecl) decl()     {}
func (*FieldDecl) decl()      {}
func (*TupleDecl) decl()      {}
func (*ExportListDecl) decl() {}

// Module is the compiled declaration tree for one schema document at one
// tier. It is built fresh per compile and rendered exactly once.
type Module struct {
	// Command is the regenerating command named in the generated banner.
	Command string

	// TierEnv is the environment variable named in the generated banner as
	// the tier override.
	TierEnv string

	// Tier is the tier the module was compiled for.
	Tier string

	// Providers and Constants hold the top-level record declarations in
	// render order.
	Providers []*RecordDecl
	Constants []*RecordDecl

	// Exports is the trailing export-list declaration.
	Exports *ExportListDecl
}
