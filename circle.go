package curve3

import "math"

// NewCircle returns a circle of radius r centered on the origin, in the xy
// plane.
func NewCircle(r float64) (Curve, error) {
	if err := checkParam(CircleKind, "radius", r); err != nil {
		return Curve{}, err
	}
	return Curve{kind: CircleKind, a: r}, nil
}

func circlePosition(r, t float64) Point3 {
	s, c := math.Sincos(t)
	return Point3{X: r * c, Y: r * s}
}

func circleDerivative(r, t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{X: -r * s, Y: r * c}
}

func circleLength(r float64) float64 {
	return 2 * math.Pi * r
}
