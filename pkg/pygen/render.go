package pygen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/typedsettings/typedsettings/pkg/compiler"
)

// indentUnit is one level of Python indentation.
const indentUnit = "    "

// moduleTemplate is the fixed frame of a generated module: header comments,
// the typing import, both section banners, and the export list. Section
// bodies are pre-rendered and newline-terminated.
var moduleTemplate = template.Must(template.New("module").Parse(
	"#!/usr/bin/env python\n" +
		"# -*- coding: utf-8 -*-\n" +
		"\n" +
		"# GENERATED! Do not manually edit. Modify 'settings.yaml' instead (then run `{{.Command}}`)\n" +
		"# (different tiers can be targeted with this script by setting the `{{.TierEnv}}` env var; defaults to 'dev')\n" +
		"from typing import List, Tuple, Union\n" +
		"\n" +
		"#############\n" +
		"# Providers #\n" +
		"#############\n" +
		"{{.Providers}}" +
		"\n" +
		"#############\n" +
		"# Constants #\n" +
		"#############\n" +
		"{{.Constants}}" +
		"\n" +
		"__all__: List[str] = {{.Exports}}\n"))

type templateData struct {
	Command   string
	TierEnv   string
	Providers string
	Constants string
	Exports   string
}

// Render serializes a compiled module to Python source. Identical modules
// render to byte-identical output.
func Render(m *compiler.Module) ([]byte, error) {
	providers, err := renderSection(m.Providers)
	if err != nil {
		return nil, err
	}
	constants, err := renderSection(m.Constants)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = moduleTemplate.Execute(&buf, templateData{
		Command:   m.Command,
		TierEnv:   m.TierEnv,
		Providers: providers,
		Constants: constants,
		Exports:   exportList(m.Exports),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering module: %w", err)
	}
	return buf.Bytes(), nil
}

// renderSection renders a section's records, blank-line separated. The
// result is newline-terminated, or empty for an empty section.
func renderSection(records []*compiler.RecordDecl) (string, error) {
	var buf bytes.Buffer
	for i, record := range records {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := renderRecord(&buf, record, 0); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// renderRecord renders one class declaration at the given indent level.
func renderRecord(buf *bytes.Buffer, record *compiler.RecordDecl, depth int) error {
	pad := strings.Repeat(indentUnit, depth)
	fmt.Fprintf(buf, "%sclass %s(object):\n", pad, record.Name)

	if len(record.Fields) == 0 {
		fmt.Fprintf(buf, "%s%spass\n", pad, indentUnit)
		return nil
	}

	for i, field := range record.Fields {
		switch f := field.(type) {
		case *compiler.FieldDecl:
			lit, err := literal(f.Value)
			if err != nil {
				return err
			}
			if f.Kind == compiler.KindNone {
				fmt.Fprintf(buf, "%s%s%s = %s\n", pad, indentUnit, f.Name, lit)
			} else {
				fmt.Fprintf(buf, "%s%s%s: %s = %s\n", pad, indentUnit, f.Name, f.Kind, lit)
			}

		case *compiler.TupleDecl:
			lit, err := tupleLiteral(f.Elems)
			if err != nil {
				return err
			}
			if f.Type == "" {
				fmt.Fprintf(buf, "%s%s%s = %s\n", pad, indentUnit, f.Name, lit)
			} else {
				fmt.Fprintf(buf, "%s%s%s: %s = %s\n", pad, indentUnit, f.Name, f.Type, lit)
			}

		case *compiler.RecordDecl:
			if i > 0 {
				buf.WriteByte('\n')
			}
			if err := renderRecord(buf, f, depth+1); err != nil {
				return err
			}

		default:
			return fmt.Errorf("cannot render declaration of type %T", field)
		}
	}
	return nil
}

// exportList renders the __all__ value.
func exportList(exports *compiler.ExportListDecl) string {
	var names []string
	if exports != nil {
		names = exports.Names
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = quote(name)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
