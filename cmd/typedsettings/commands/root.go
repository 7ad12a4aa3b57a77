package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// tierEnvVar is the environment variable that selects the deployment tier.
const tierEnvVar = "TIER"

var (
	// Global flags
	verbose bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typedsettings",
		Short: "typedsettings - compile tiered settings schemas to typed Python modules",
		Long: `typedsettings compiles a declarative, environment-tiered settings schema
(settings.yaml) into a statically-typed Python settings module, so downstream
code references settings with dot access and type annotations instead of
untyped dictionary lookups.

Features:
  - One generated class per provider and constant, nested classes for
    nested property groups
  - Per-key fallback to the mandatory dev tier for incomplete tiers
  - Deterministic, byte-stable output for clean diffs
  - Watch mode for regenerate-on-save workflows`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGenCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}

// tierFromEnv reads the requested tier from the environment, defaulting to
// dev when unset.
func tierFromEnv() string {
	if tier := os.Getenv(tierEnvVar); tier != "" {
		return tier
	}
	return "dev"
}
