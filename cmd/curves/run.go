package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"honnef.co/go/curve3"
	"honnef.co/go/curve3/internal/config"
	"honnef.co/go/curve3/internal/random"
)

// Replaced in tests.
var (
	sumSequential = curve3.SumSequential
	sumParallel   = curve3.SumParallel
)

func run(ctx context.Context, cfg *config.Config, w io.Writer, logger *slog.Logger) error {
	src, err := random.New(cfg.Population.Seed, cfg.Population.Min, cfg.Population.Max)
	if err != nil {
		return err
	}
	logger.Debug("seeded random source", "seed", src.Seed())
	return report(ctx, cfg, src, w, logger)
}

func report(ctx context.Context, cfg *config.Config, src curve3.Sampler, w io.Writer, logger *slog.Logger) error {
	start := time.Now()
	pop := curve3.Build(cfg.Population.Count, src, logger)
	logger.Debug("built population", "attempts", cfg.Population.Count, "curves", pop.Curves.Len(), "took", time.Since(start))

	fmt.Fprintf(w, "population: %d curves (%d of %d attempts skipped)\n",
		pop.Curves.Len(), len(pop.Skipped), cfg.Population.Count)
	for _, s := range pop.Skipped {
		fmt.Fprintf(w, "  skipped attempt %d: %v\n", s.Attempt, s.Err)
	}

	t := cfg.Evaluate.T
	fmt.Fprintf(w, "\nevaluated at t=%g\n", t)
	for i, c := range pop.Curves.All() {
		fmt.Fprintf(w, "  #%d %-8s %v\n", i, c.Kind(), c)
		fmt.Fprintf(w, "     position   %v\n", c.Position(t))
		fmt.Fprintf(w, "     derivative %v\n", c.Derivative(t))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	circles := curve3.Circles(pop.Curves)
	curve3.SortByRadius(circles)
	logger.Debug("filtered and sorted circles", "circles", circles.Len(), "took", time.Since(start))

	fmt.Fprintf(w, "\ncircles: %d\n", circles.Len())
	for i, c := range circles.All() {
		fmt.Fprintf(w, "  radius %d: %g\n", i, c.Radius())
	}

	start = time.Now()
	seq := sumSequential(circles)
	seqTook := time.Since(start)

	start = time.Now()
	par := sumParallel(circles, cfg.Aggregate.Workers)
	parTook := time.Since(start)

	fmt.Fprintf(w, "\nsum of radii (sequential): %g in %v\n", seq, seqTook)
	fmt.Fprintf(w, "sum of radii (parallel):   %g in %v\n", par, parTook)

	if err := curve3.Reconcile(seq, par); err != nil {
		logger.Error("radius sums disagree", "sequential", seq, "parallel", par, "err", err)
		return err
	}
	return nil
}
