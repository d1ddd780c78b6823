package curve3

import "log/slog"

// Sampler is the source of randomness for [Build].
type Sampler interface {
	// Kind draws a curve kind uniformly from [Kinds].
	Kind() Kind
	// Float64 draws a parameter value from the configured range.
	Float64() float64
}

// SkippedDraw records an attempt whose parameters were rejected.
type SkippedDraw struct {
	Attempt int
	Kind    Kind
	Params  []float64
	Err     error
}

// Population is the result of [Build].
type Population struct {
	Store *Store
	// Curves holds every successfully constructed curve in generation order.
	Curves  Collection
	Skipped []SkippedDraw
}

// Build makes n attempts at constructing a random curve. Each attempt draws a
// kind and then [Kind.Arity] independent parameters from src. Attempts with
// invalid parameters are skipped, recorded in [Population.Skipped] and logged
// at warning level; they are not retried. The population thus holds at most n
// curves.
//
// A nil logger discards log output.
func Build(n int, src Sampler, logger *slog.Logger) *Population {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := NewStore(max(n, 0))
	pop := &Population{Store: store}
	for attempt := range max(n, 0) {
		kind := src.Kind()
		params := make([]float64, kind.Arity())
		for i := range params {
			params[i] = src.Float64()
		}
		c, err := New(kind, params...)
		if err != nil {
			logger.Warn("skipping curve", "attempt", attempt, "kind", kind, "params", params, "err", err)
			pop.Skipped = append(pop.Skipped, SkippedDraw{Attempt: attempt, Kind: kind, Params: params, Err: err})
			continue
		}
		logger.Debug("built curve", "attempt", attempt, "curve", c)
		store.Add(c)
	}
	pop.Curves = store.Collection()
	return pop
}
