// curves builds a random population of 3D curves, prints their positions and
// derivatives, and sums the radii of its circles sequentially and in
// parallel.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"honnef.co/go/curve3/internal/config"
)

var version = "dev"

func main() {
	var (
		configPath string
		overrides  []string
		verbose    bool
		flagCfg    = config.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Generate random 3D curves and sum the radii of their circles",
		Long: `curves builds a random population of circles, ellipses and helices,
reports each curve's position and derivative at a parameter t, then collects
the circles, sorts them by radius and sums their radii twice: once
sequentially and once in parallel. It exits with a non-zero status if the two
sums disagree.

Settings come from defaults, an optional YAML file (--config), --set
key=value overrides, and finally the individual flags.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyOverrides(overrides); err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("count") {
				cfg.Population.Count = flagCfg.Population.Count
			}
			if flags.Changed("seed") {
				cfg.Population.Seed = flagCfg.Population.Seed
			}
			if flags.Changed("t") {
				cfg.Evaluate.T = flagCfg.Evaluate.T
			}
			if flags.Changed("workers") {
				cfg.Aggregate.Workers = flagCfg.Aggregate.Workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a configuration key, e.g. population.count=50")
	cmd.Flags().IntVarP(&flagCfg.Population.Count, "count", "n", flagCfg.Population.Count, "Number of curves to attempt")
	cmd.Flags().Uint64Var(&flagCfg.Population.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	cmd.Flags().Float64Var(&flagCfg.Evaluate.T, "t", flagCfg.Evaluate.T, "Parameter at which curves are evaluated")
	cmd.Flags().IntVarP(&flagCfg.Aggregate.Workers, "workers", "w", 0, "Parallel workers, 0 for GOMAXPROCS")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}
