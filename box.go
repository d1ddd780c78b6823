package curve3

import "fmt"

// Box3 is an axis-aligned box.
type Box3 struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
}

// NewBoxFromPoints returns a box with the extents of p0 and p1, ensuring that
// all side lengths are non-negative.
func NewBoxFromPoints(p0, p1 Point3) Box3 {
	return Box3{p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z}.Abs()
}

// Abs returns a new box with the same extents as b, but ensuring that all side
// lengths are non-negative.
func (b Box3) Abs() Box3 {
	return Box3{
		X0: min(b.X0, b.X1),
		Y0: min(b.Y0, b.Y1),
		Z0: min(b.Z0, b.Z1),
		X1: max(b.X0, b.X1),
		Y1: max(b.Y0, b.Y1),
		Z1: max(b.Z0, b.Z1),
	}
}

func (b Box3) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]×[%g, %g]", b.X0, b.X1, b.Y0, b.Y1, b.Z0, b.Z1)
}

// Size returns the side lengths of the box. They may be negative.
func (b Box3) Size() Vec3 {
	return Vec3{
		X: b.X1 - b.X0,
		Y: b.Y1 - b.Y0,
		Z: b.Z1 - b.Z0,
	}
}

func (b Box3) Center() Point3 {
	return Point3{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
		Z: 0.5 * (b.Z0 + b.Z1),
	}
}

// Contains reports whether pt lies inside b or on its boundary.
//
// The boundary counts so that flat boxes, such as the bounds of a planar
// curve, contain the points of the curve.
func (b Box3) Contains(pt Point3) bool {
	return pt.X >= b.X0 && pt.X <= b.X1 &&
		pt.Y >= b.Y0 && pt.Y <= b.Y1 &&
		pt.Z >= b.Z0 && pt.Z <= b.Z1
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if side lengths are non-negative.
func (b Box3) Union(o Box3) Box3 {
	return Box3{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		Z0: min(b.Z0, o.Z0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
		Z1: max(b.Z1, o.Z1),
	}
}

// UnionPoint computes the union with one point.
//
// Results are valid only if side lengths are non-negative.
func (b Box3) UnionPoint(pt Point3) Box3 {
	return Box3{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		Z0: min(b.Z0, pt.Z),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
		Z1: max(b.Z1, pt.Z),
	}
}
