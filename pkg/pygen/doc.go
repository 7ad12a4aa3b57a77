// Package pygen renders a compiled declaration tree to Python source.
//
// The renderer is the only target-language-specific part of the pipeline: it
// maps record declarations to nested classes, typed fields to annotated
// assignments, and the export list to a trailing __all__ declaration. A field
// without a kind (a null value, or an empty tuple) renders without a type
// annotation.
//
// Rendering is deterministic: the same Module always renders to byte-identical
// output. Nothing is written anywhere — Render returns the complete module
// text, and the caller decides where it goes.
package pygen
