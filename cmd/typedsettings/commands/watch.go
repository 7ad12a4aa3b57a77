package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/typedsettings/typedsettings/pkg/watch"
)

func newWatchCommand() *cobra.Command {
	var (
		inputYAML string
		outputPy  string
		debounce  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a settings schema and regenerate on change",
		Long: `Watch a settings schema file and regenerate the Python module whenever
it changes.

Each regeneration is an independent, full compile; regenerations are
serialized so the output is never an interleaving of two writes. A failed
compile is logged and leaves the previous output intact.`,
		Example: `  # Regenerate settings.py on every save of settings.yaml
  typedsettings watch -i settings.yaml -o settings.py

  # Watch with a longer quiet period
  typedsettings watch -i settings.yaml -o settings.py --debounce 2s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := tierFromEnv()
			logger := log.With().Str("component", "watch").Logger()

			log.Info().
				Str("input", inputYAML).
				Str("output", outputPy).
				Str("tier", tier).
				Msg("Watching settings schema")

			watcher, err := watch.New(watch.Config{
				Path:     inputYAML,
				Debounce: debounce,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			return watcher.Run(cmd.Context(), func(ctx context.Context) error {
				runID := uuid.New().String()
				logger.Debug().Str("run_id", runID).Msg("Regenerating settings module")
				return generateModule(inputYAML, outputPy, tier)
			})
		},
	}

	cmd.Flags().StringVarP(&inputYAML, "input-yaml", "i", "", "settings schema (input) filepath")
	cmd.Flags().StringVarP(&outputPy, "output-py", "o", "", "settings module (output) filepath")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period after a change before regenerating")
	_ = cmd.MarkFlagRequired("input-yaml")
	_ = cmd.MarkFlagRequired("output-py")

	return cmd
}
