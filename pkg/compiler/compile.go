package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/typedsettings/typedsettings/pkg/schema"
)

// Options configures one compile.
type Options struct {
	// Tier is the requested deployment tier. Empty means dev.
	Tier string `validate:"omitempty,printascii"`

	// Command is the regenerating command named in the generated banner.
	Command string `validate:"required"`

	// TierEnv is the environment variable named in the generated banner as
	// the tier override.
	TierEnv string `validate:"required,alphanum"`
}

// DefaultOptions returns the default compile options.
func DefaultOptions() Options {
	return Options{
		Tier:    schema.TierDev,
		Command: "typedsettings gen --input-yaml settings.yaml --output-py settings.py",
		TierEnv: "TIER",
	}
}

var validate = validator.New()

// Compile builds the declaration tree for a schema document at the requested
// tier. Entries of each section are sorted by designator before building, so
// output order is independent of document order. The export list is the
// lexicographically sorted set of all uppercased designators; a name produced
// twice across both sections aborts the compile with a DuplicateDesignator
// error. Compile returns the full Module or an error, never partial state.
func Compile(doc *schema.Document, opts Options) (*Module, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid compile options: %w", err)
	}
	if opts.Tier == "" {
		opts.Tier = schema.TierDev
	}

	seen := make(map[string]struct{})

	providers, providerNames, err := compileSection(doc.Providers, schema.SectionProviders, opts.Tier, seen)
	if err != nil {
		return nil, err
	}
	constants, constantNames, err := compileSection(doc.Constants, schema.SectionConstants, opts.Tier, seen)
	if err != nil {
		return nil, err
	}

	exports := append(providerNames, constantNames...)
	sort.Strings(exports)

	return &Module{
		Command:   opts.Command,
		TierEnv:   opts.TierEnv,
		Tier:      opts.Tier,
		Providers: providers,
		Constants: constants,
		Exports:   &ExportListDecl{Names: exports},
	}, nil
}

// compileSection resolves and builds one section's entries, returning the
// records in sorted order together with the names they export.
func compileSection(entries []schema.Entry, section, tier string, seen map[string]struct{}) ([]*RecordDecl, []string, error) {
	sorted := make([]schema.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Designator < sorted[b].Designator
	})

	records := make([]*RecordDecl, 0, len(sorted))
	names := make([]string, 0, len(sorted))
	for _, entry := range sorted {
		name := strings.ToUpper(entry.Designator)
		if _, dup := seen[name]; dup {
			return nil, nil, schema.NewDuplicateDesignatorError(section, name)
		}
		seen[name] = struct{}{}

		resolved, err := ResolveTier(entry.Tiers, tier)
		if err != nil {
			if serr, ok := err.(*schema.Error); ok {
				return nil, nil, serr.WithEntry(entry.Designator)
			}
			return nil, nil, err
		}

		record, err := BuildRecord(resolved, name)
		if err != nil {
			if serr, ok := err.(*schema.Error); ok && serr.Entry == "" {
				serr.Entry = entry.Designator
			}
			return nil, nil, err
		}

		records = append(records, record)
		names = append(names, name)
	}
	return records, names, nil
}
