package curve3

import (
	"cmp"
	"slices"
)

// Filter returns a new collection of the curves in c that are of the given
// kind, in their original order. The result shares c's store; no curve is
// copied.
func Filter(c Collection, kind Kind) Collection {
	out := Collection{store: c.store}
	for _, h := range c.handles {
		if c.store.Curve(h).Kind() == kind {
			out.handles = append(out.handles, h)
		}
	}
	return out
}

// Circles returns the circles in c. It is shorthand for Filter(c, CircleKind).
func Circles(c Collection) Collection {
	return Filter(c, CircleKind)
}

// SortByRadius sorts c in place, in ascending order of [Curve.Radius]. The
// order of curves with equal radii is unspecified.
//
// Collections share their handle slice with copies of themselves, so sorting
// is visible through every copy of c, but not through collections c was
// derived from.
func SortByRadius(c Collection) {
	s := c.store
	slices.SortFunc(c.handles, func(a, b Handle) int {
		return cmp.Compare(s.Curve(a).Radius(), s.Curve(b).Radius())
	})
}
