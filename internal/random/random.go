// Package random provides the pseudo-random [curve3.Sampler] used by the
// curves command.
package random

import (
	"fmt"
	"math/rand/v2"
	"time"

	"honnef.co/go/curve3"
)

// Source draws curve kinds uniformly and parameters uniformly from [lo, hi).
type Source struct {
	rng    *rand.Rand
	seed   uint64
	lo, hi float64
}

var _ curve3.Sampler = (*Source)(nil)

// New returns a source seeded with seed. A seed of 0 is replaced with one
// derived from the current time. Two sources with the same non-zero seed and
// range produce the same draws.
func New(seed uint64, lo, hi float64) (*Source, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("invalid parameter range [%g, %g)", lo, hi)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
		lo:   lo,
		hi:   hi,
	}, nil
}

// Seed returns the seed actually in use.
func (s *Source) Seed() uint64 { return s.seed }

// Kind implements curve3.Sampler.
func (s *Source) Kind() curve3.Kind {
	kinds := curve3.Kinds()
	return kinds[s.rng.IntN(len(kinds))]
}

// Float64 implements curve3.Sampler.
func (s *Source) Float64() float64 {
	return s.lo + (s.hi-s.lo)*s.rng.Float64()
}
