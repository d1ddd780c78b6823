package curve3

import "math"

// NewEllipse returns an axis-aligned ellipse centered on the origin, in the xy
// plane, with radius rx along the x axis and ry along the y axis.
func NewEllipse(rx, ry float64) (Curve, error) {
	if err := checkParam(EllipseKind, "x radius", rx); err != nil {
		return Curve{}, err
	}
	if err := checkParam(EllipseKind, "y radius", ry); err != nil {
		return Curve{}, err
	}
	return Curve{kind: EllipseKind, a: rx, b: ry}, nil
}

func ellipsePosition(rx, ry, t float64) Point3 {
	s, c := math.Sincos(t)
	return Point3{X: rx * c, Y: ry * s}
}

func ellipseDerivative(rx, ry, t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{X: -rx * s, Y: ry * c}
}

// ellipseLength approximates the perimeter using Ramanujan's second
// approximation. It is exact for circles and has a relative error below 1e-8
// for eccentricities up to about 0.9.
//
// See https://en.wikipedia.org/wiki/Ellipse#Circumference
func ellipseLength(rx, ry float64) float64 {
	h := (rx - ry) / (rx + ry)
	h *= h
	return math.Pi * (rx + ry) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}
