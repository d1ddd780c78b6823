package curve3

import "fmt"

// Kind identifies the variant of a [Curve].
type Kind uint8

const (
	// A circle of radius r in the xy plane, centered on the origin.
	CircleKind Kind = iota + 1
	// An axis-aligned ellipse with radii rx and ry in the xy plane.
	EllipseKind
	// A helix of radius r around the z axis, rising by pitch p per turn.
	HelixKind
)

var kindNames = [...]string{
	CircleKind:  "circle",
	EllipseKind: "ellipse",
	HelixKind:   "helix",
}

// Kinds returns all valid kinds, in declaration order.
func Kinds() []Kind {
	return []Kind{CircleKind, EllipseKind, HelixKind}
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= CircleKind && k <= HelixKind
}

// Arity returns the number of parameters needed to construct a curve of
// this kind, or 0 for invalid kinds.
func (k Kind) Arity() int {
	switch k {
	case CircleKind:
		return 1
	case EllipseKind, HelixKind:
		return 2
	default:
		return 0
	}
}

// ParseKind returns the kind named s, as produced by [Kind.String].
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown curve kind %q", s)
}
