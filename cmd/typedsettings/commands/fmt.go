package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/typedsettings/typedsettings/pkg/schema"
)

func newFmtCommand() *cobra.Command {
	var (
		inputYAML string
		write     bool
	)

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Re-emit a settings schema in canonical order",
		Long: `Re-emit a settings schema with entries sorted by designator and the
designator key hoisted first in each entry. Tier and property order inside
entries is preserved.

By default the canonical document is printed to stdout; --write rewrites the
input file in place.`,
		Example: `  # Print the canonical schema
  typedsettings fmt -i settings.yaml

  # Rewrite the schema in place
  typedsettings fmt -i settings.yaml --write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputYAML)
			if err != nil {
				return fmt.Errorf("input schema %s: %w", inputYAML, err)
			}

			formatted, err := schema.Format(data)
			if err != nil {
				return err
			}

			if !write {
				_, err = os.Stdout.Write(formatted)
				return err
			}

			if err := os.WriteFile(inputYAML, formatted, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", inputYAML, err)
			}
			log.Info().Str("input", inputYAML).Msg("Schema rewritten in canonical order")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputYAML, "input-yaml", "i", "", "settings schema (input) filepath")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the input file in place")
	_ = cmd.MarkFlagRequired("input-yaml")

	return cmd
}
