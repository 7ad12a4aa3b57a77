// Package schema provides parsing and validation of tiered settings schema
// documents for typedsettings.
//
// # Overview
//
// A settings schema is a YAML document with two top-level sequences, providers
// and constants. Each element is an entry: a mapping whose designator key
// (provider or name) names the entry, and whose remaining keys are deployment
// tiers (dev, staging, prod, ...), each mapping to a property map. The dev
// tier is mandatory and acts as the per-key fallback for every other tier.
//
//	providers:
//	  - provider: db
//	    dev:
//	      host: localhost
//	      port: 5432
//	    staging:
//	      host: db.internal
//	constants:
//	  - name: flags
//	    dev:
//	      modes:
//	        - read
//	        - write
//
// # Components
//
// Document: the parsed schema, with per-section entries and duplicate
// designator validation.
//
// PropertyMap: an insertion-ordered property map. Key order in the source
// document is preserved through to the generated module, so re-parsing the
// same schema always yields the same structure.
//
// Error: the classified error type shared by the loader, the compiler, and
// the renderer. Every failure in the pipeline carries one of the ErrorCode
// constants so callers can branch on the failure class.
//
// Format: canonical re-emission of a schema file with entries sorted by
// designator and the designator key hoisted first, for stable diffs.
//
// # Usage Example
//
//	doc, err := schema.Load("settings.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := doc.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Documents are read-only after loading; nothing in this package mutates a
// parsed Document.
package schema
