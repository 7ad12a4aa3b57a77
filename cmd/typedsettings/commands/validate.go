package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/typedsettings/typedsettings/pkg/compiler"
	"github.com/typedsettings/typedsettings/pkg/schema"
)

func newValidateCommand() *cobra.Command {
	var inputYAML string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a settings schema without writing output",
		Long: `Validate a settings schema by running a full dry-run compile.

This command checks:
  - YAML well-formedness and schema shape
  - Designator uniqueness across both sections
  - Presence of the mandatory dev tier in every entry
  - Value shapes the compiler supports

The tier from the ` + tierEnvVar + ` environment variable is used for tier
resolution, so tier-specific problems surface too. No file is written.`,
		Example: `  # Validate the default schema
  typedsettings validate -i settings.yaml

  # Validate resolution at the prod tier
  TIER=prod typedsettings validate -i settings.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := tierFromEnv()

			log.Info().
				Str("input", inputYAML).
				Str("tier", tier).
				Msg("Validating settings schema")

			doc, err := schema.Load(inputYAML)
			if err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			opts := compiler.DefaultOptions()
			opts.Tier = tier
			module, err := compiler.Compile(doc, opts)
			if err != nil {
				return err
			}

			fmt.Printf("%s is valid: %d providers, %d constants, %d exported names (tier %s)\n",
				inputYAML, len(module.Providers), len(module.Constants),
				len(module.Exports.Names), tier)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputYAML, "input-yaml", "i", "", "settings schema (input) filepath")
	_ = cmd.MarkFlagRequired("input-yaml")

	return cmd
}
