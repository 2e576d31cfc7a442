package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincover/experiment"
)

// newRunCmd builds the "run" command: execute the batch described by a
// TOML config file and print the aggregated results table.
func newRunCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run annealing experiments from a TOML config",
		Long: `Run loads the graphs listed in the config file, searches each one for
a fixed-size vertex cover the configured number of times and prints
best/mean/stddev statistics per graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}

			runner := &experiment.Runner{
				Repeats: cfg.Defaults.Repeats,
				Seed:    cfg.Defaults.Seed,
				Logger:  logger,
				Options: opts,
			}

			p := newProgress(logger)
			sums, err := runner.Run(cfg.Specs())
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Ran %d of %d graphs", len(sums), len(cfg.Graphs)))

			fmt.Fprintln(cmd.OutOrStdout(), styleTitle.Render("Vertex cover results"))
			fmt.Fprintln(cmd.OutOrStdout(), renderSummaries(sums))

			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to the TOML config file")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
