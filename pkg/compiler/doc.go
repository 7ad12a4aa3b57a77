// Package compiler turns a parsed settings schema into the declaration tree
// of a statically-typed settings module.
//
// # Overview
//
// The compiler is a pure, single-pass batch transform: given a schema
// Document and a requested tier, it resolves each entry's effective property
// map, infers a type for every leaf value, and builds a language-neutral
// declaration tree. Rendering the tree to source text is a separate concern
// (see pkg/pygen).
//
// # Pipeline
//
//	schema.Document --per entry--> ResolveTier --> BuildRecord --> Module
//
// ResolveTier implements the dev-fallback merge: the requested tier's own
// values win for keys it defines, keys unique to dev are pulled in, and the
// dev tier passes through verbatim when it is the requested tier or when the
// requested tier is absent.
//
// BuildRecord walks a resolved property map in document order, emitting typed
// field declarations for scalars, nested record declarations for nested maps,
// and a typed tuple declaration for the single-key list shape.
//
// Compile orchestrates both sections: entries are sorted by designator before
// building, uppercased designators become record names, and the sorted name
// set becomes the trailing export list. The export accumulator is explicit —
// Compile returns the full Module or an error, never partial state.
//
// # Determinism
//
// Identical (document, tier, options) input always produces an identical
// Module: entry order is sorted, field order follows the source document, and
// tuple type unions are sorted lexicographically.
//
// All failures are *schema.Error values carrying one of the schema.ErrorCode
// classifications; every failure aborts the whole compile.
package compiler
