// Package curve3 provides parametric 3D curves and a small pipeline for
// generating, filtering and aggregating collections of them.
//
// # Curves
//
// [Curve] is a closed set of variants, identified by [Kind]:
//
//   - [CircleKind]: (r·cos t, r·sin t, 0)
//   - [EllipseKind]: (rx·cos t, ry·sin t, 0)
//   - [HelixKind]: (r·cos t, r·sin t, p·t/2π)
//
// All curves are centered on the origin and lie in, or wind around, the z
// axis. They are evaluated with [Curve.Position] and [Curve.Derivative], both
// of which accept any real t. [Curve.Length] and [Curve.BoundingBox] describe
// one full turn, t ∈ [0, 2π].
//
// Curves are values. They are constructed with [NewCircle], [NewEllipse],
// [NewHelix] or [New], which reject parameters that aren't strictly positive
// with a [*ParameterError] wrapping [ErrInvalidParameter]. Once constructed,
// a curve cannot be changed.
//
// # Stores and collections
//
// A [Store] owns curves, and a [Collection] is an ordered list of [Handle]s
// into a store. Collections derived from one another with [Filter] or
// [Circles] refer to the same curve instances; [Collection.Ref] exposes the
// shared instance.
//
// # Building and aggregating
//
// [Build] generates a [Population] of random curves from a [Sampler],
// skipping draws with invalid parameters. [SortByRadius] orders a collection
// of circles by radius, and [Aggregate] sums the radii both sequentially and
// in parallel and fails with a [*ConsistencyError] if the two sums disagree
// by [Tolerance] or more.
package curve3
