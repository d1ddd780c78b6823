package curve3

import "math"

// NewHelix returns a helix of radius r around the z axis. The helix starts at
// (r, 0, 0) for t = 0 and rises by pitch p for every full turn.
func NewHelix(r, p float64) (Curve, error) {
	if err := checkParam(HelixKind, "radius", r); err != nil {
		return Curve{}, err
	}
	if err := checkParam(HelixKind, "pitch", p); err != nil {
		return Curve{}, err
	}
	return Curve{kind: HelixKind, a: r, b: p}, nil
}

func helixPosition(r, p, t float64) Point3 {
	s, c := math.Sincos(t)
	return Point3{X: r * c, Y: r * s, Z: p / (2 * math.Pi) * t}
}

func helixDerivative(r, p, t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{X: -r * s, Y: r * c, Z: p / (2 * math.Pi)}
}

// helixLength is the length of one full turn, which unrolls into the
// hypotenuse of a right triangle with legs 2πr and p.
func helixLength(r, p float64) float64 {
	return math.Hypot(2*math.Pi*r, p)
}
