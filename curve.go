package curve3

import (
	"fmt"
	"math"
)

// Curve is a parametric curve in 3D space. It is one of a closed set of
// variants, identified by [Curve.Kind].
//
// Curves are constructed with [NewCircle], [NewEllipse], [NewHelix] or [New],
// all of which validate their parameters. The zero value is not a valid curve
// and its methods panic. Curves cannot be modified after construction; copying
// a Curve copies an immutable value.
type Curve struct {
	kind Kind
	// circle: a = radius
	// ellipse: a = x radius, b = y radius
	// helix: a = radius, b = pitch
	a, b float64
}

// New constructs a curve of the given kind from its parameters, in the order
// the kind's constructor takes them. The number of parameters must equal
// [Kind.Arity].
func New(kind Kind, params ...float64) (Curve, error) {
	if !kind.Valid() {
		return Curve{}, fmt.Errorf("%w: unknown curve kind %d", ErrInvalidParameter, uint8(kind))
	}
	if len(params) != kind.Arity() {
		return Curve{}, fmt.Errorf("%w %s: want %d parameters, got %d",
			ErrInvalidParameter, kind, kind.Arity(), len(params))
	}
	switch kind {
	case CircleKind:
		return NewCircle(params[0])
	case EllipseKind:
		return NewEllipse(params[0], params[1])
	case HelixKind:
		return NewHelix(params[0], params[1])
	default:
		panic(fmt.Sprintf("unhandled case %v", kind))
	}
}

func checkParam(kind Kind, name string, v float64) error {
	// The negated comparison also rejects NaN.
	if !(v > 0) || math.IsInf(v, 1) {
		return &ParameterError{Kind: kind, Name: name, Value: v}
	}
	return nil
}

// Kind returns the curve's variant.
func (c Curve) Kind() Kind { return c.kind }

// Position evaluates the curve at parameter t. Any real t is accepted; the
// planar curves are periodic in 2π.
func (c Curve) Position(t float64) Point3 {
	switch c.kind {
	case CircleKind:
		return circlePosition(c.a, t)
	case EllipseKind:
		return ellipsePosition(c.a, c.b, t)
	case HelixKind:
		return helixPosition(c.a, c.b, t)
	default:
		panic(fmt.Sprintf("unhandled curve kind %v", c.kind))
	}
}

// Derivative returns the first derivative of [Curve.Position] with respect to
// t.
func (c Curve) Derivative(t float64) Vec3 {
	switch c.kind {
	case CircleKind:
		return circleDerivative(c.a, t)
	case EllipseKind:
		return ellipseDerivative(c.a, c.b, t)
	case HelixKind:
		return helixDerivative(c.a, c.b, t)
	default:
		panic(fmt.Sprintf("unhandled curve kind %v", c.kind))
	}
}

// Radius returns the radius of a circle.
//
// Ellipses and helices aren't single-radius curves in this sense and return
// 0. Callers have to check [Curve.Kind] before relying on the result.
func (c Curve) Radius() float64 {
	if c.kind == CircleKind {
		return c.a
	}
	return 0
}

// Radii returns the radii along the x and y axes. For circles and helices,
// both are equal to the radius.
func (c Curve) Radii() (rx, ry float64) {
	switch c.kind {
	case CircleKind, HelixKind:
		return c.a, c.a
	case EllipseKind:
		return c.a, c.b
	default:
		panic(fmt.Sprintf("unhandled curve kind %v", c.kind))
	}
}

// Pitch returns the rise per full turn of a helix, and 0 for planar curves.
func (c Curve) Pitch() float64 {
	if c.kind == HelixKind {
		return c.b
	}
	return 0
}

// Params returns the curve's parameters in the order [New] accepts them.
func (c Curve) Params() []float64 {
	switch c.kind {
	case CircleKind:
		return []float64{c.a}
	case EllipseKind, HelixKind:
		return []float64{c.a, c.b}
	default:
		panic(fmt.Sprintf("unhandled curve kind %v", c.kind))
	}
}

// Length returns the arc length of one full turn, t ∈ [0, 2π].
//
// It is exact for circles and helices. For ellipses, it is a closed-form
// approximation with a relative error below 1e-8 for
// eccentricities up to about 0.9.
func (c Curve) Length() float64 {
	switch c.kind {
	case CircleKind:
		return circleLength(c.a)
	case EllipseKind:
		return ellipseLength(c.a, c.b)
	case HelixKind:
		return helixLength(c.a, c.b)
	default:
		panic(fmt.Sprintf("unhandled curve kind %v", c.kind))
	}
}

// BoundingBox returns the smallest axis-aligned box that encloses one full
// turn of the curve, t ∈ [0, 2π].
func (c Curve) BoundingBox() Box3 {
	rx, ry := c.Radii()
	return Box3{
		X0: -rx, Y0: -ry, Z0: 0,
		X1: rx, Y1: ry, Z1: c.Pitch(),
	}
}

func (c Curve) String() string {
	switch c.kind {
	case CircleKind:
		return fmt.Sprintf("circle(r=%g)", c.a)
	case EllipseKind:
		return fmt.Sprintf("ellipse(rx=%g, ry=%g)", c.a, c.b)
	case HelixKind:
		return fmt.Sprintf("helix(r=%g, p=%g)", c.a, c.b)
	default:
		return "invalid curve"
	}
}
