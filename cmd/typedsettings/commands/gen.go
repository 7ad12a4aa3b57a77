package commands

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/typedsettings/typedsettings/pkg/compiler"
	"github.com/typedsettings/typedsettings/pkg/pygen"
	"github.com/typedsettings/typedsettings/pkg/schema"
)

func newGenCommand() *cobra.Command {
	var (
		inputYAML string
		outputPy  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Compile a settings schema to a typed Python module",
		Long: `Compile a settings schema to a typed Python settings module.

The requested tier is read from the ` + tierEnvVar + ` environment variable and
defaults to dev. Keys missing from the requested tier fall back per-key to
the mandatory dev tier. The output file is only written after the whole
schema compiles successfully.`,
		Example: `  # Generate for the dev tier
  typedsettings gen --input-yaml settings.yaml --output-py settings.py

  # Generate for staging
  TIER=staging typedsettings gen -i settings.yaml -o settings.py`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := tierFromEnv()
			runID := uuid.New().String()

			log.Info().
				Str("run_id", runID).
				Str("input", inputYAML).
				Str("output", outputPy).
				Str("tier", tier).
				Msg("Compiling settings module")

			if err := generateModule(inputYAML, outputPy, tier); err != nil {
				return err
			}

			log.Info().
				Str("run_id", runID).
				Str("output", outputPy).
				Msg("Settings module written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputYAML, "input-yaml", "i", "", "settings schema (input) filepath")
	cmd.Flags().StringVarP(&outputPy, "output-py", "o", "", "settings module (output) filepath")
	_ = cmd.MarkFlagRequired("input-yaml")
	_ = cmd.MarkFlagRequired("output-py")

	return cmd
}

// generateModule runs one full compile: load, validate, resolve, build,
// render, and only then write. Nothing is written on any failure path.
func generateModule(inputPath, outputPath, tier string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input schema %s: %w", inputPath, err)
	}

	doc, err := schema.Load(inputPath)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	opts := compiler.DefaultOptions()
	opts.Tier = tier
	opts.Command = fmt.Sprintf("typedsettings gen --input-yaml %s --output-py %s", inputPath, outputPath)

	module, err := compiler.Compile(doc, opts)
	if err != nil {
		return err
	}

	source, err := pygen.Render(module)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, source, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
