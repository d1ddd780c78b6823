package curve3

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Tolerance is the largest difference between the sequential and the parallel
// radius sum that is still considered consistent.
const Tolerance = 1e-6

// Sums holds the radius sum of a collection computed two ways.
type Sums struct {
	Sequential float64
	Parallel   float64
}

// SumSequential returns the sum of [Curve.Radius] over c, accumulated left to
// right.
func SumSequential(c Collection) float64 {
	var sum float64
	for _, h := range c.handles {
		sum += c.store.Curve(h).Radius()
	}
	return sum
}

// SumParallel returns the sum of [Curve.Radius] over c, computed by splitting
// c into at most workers contiguous chunks that are summed concurrently. The
// partial sums are combined in chunk order, so the result only depends on c
// and workers. It may differ from [SumSequential] by rounding.
//
// If workers is less than 1, runtime.GOMAXPROCS(0) is used.
func SumParallel(c Collection, workers int) float64 {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := partition(len(c.handles), workers)
	partials := make([]float64, len(chunks))

	var g errgroup.Group
	for i, chunk := range chunks {
		g.Go(func() error {
			partials[i] = SumSequential(Collection{store: c.store, handles: c.handles[chunk[0]:chunk[1]]})
			return nil
		})
	}
	// The workers can't fail.
	_ = g.Wait()

	var sum float64
	for _, p := range partials {
		sum += p
	}
	return sum
}

// partition splits [0, n) into at most k contiguous, non-empty ranges whose
// lengths differ by at most one.
func partition(n, k int) [][2]int {
	if n <= 0 {
		return nil
	}
	k = min(k, n)
	out := make([][2]int, 0, k)
	size, rem := n/k, n%k
	start := 0
	for i := range k {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}

// Reconcile returns a [*ConsistencyError] if seq and par differ by
// [Tolerance] or more, or if either is NaN.
func Reconcile(seq, par float64) error {
	if !(math.Abs(seq-par) < Tolerance) {
		return &ConsistencyError{Sequential: seq, Parallel: par, Tolerance: Tolerance}
	}
	return nil
}

// Aggregate computes both radius sums of c and reconciles them. The sums are
// returned even if they are inconsistent.
func Aggregate(c Collection, workers int) (Sums, error) {
	sums := Sums{
		Sequential: SumSequential(c),
		Parallel:   SumParallel(c, workers),
	}
	return sums, Reconcile(sums.Sequential, sums.Parallel)
}
