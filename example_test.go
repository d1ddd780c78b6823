package curve3_test

import (
	"fmt"
	"math"

	"honnef.co/go/curve3"
)

func ExampleCurve() {
	h, err := curve3.NewHelix(2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	fmt.Println(h.Position(0))
	fmt.Printf("%.4f\n", h.Position(2*math.Pi).Z)
	fmt.Printf("%.4f\n", h.Derivative(0).Z)

	_, err = curve3.NewCircle(-1)
	fmt.Println(err)
	// Output:
	// helix(r=2, p=1)
	// (2, 0, 0)
	// 1.0000
	// 0.1592
	// invalid parameter circle: radius must be positive, got -1
}

func ExampleSortByRadius() {
	s := curve3.NewStore(4)
	for _, params := range [][]float64{{5}, {2, 4}, {3}, {1, 1}} {
		kind := curve3.CircleKind
		if len(params) == 2 {
			kind = curve3.EllipseKind
		}
		c, err := curve3.New(kind, params...)
		if err != nil {
			panic(err)
		}
		s.Add(c)
	}

	circles := curve3.Circles(s.Collection())
	curve3.SortByRadius(circles)
	for _, c := range circles.All() {
		fmt.Println(c)
	}

	sums, err := curve3.Aggregate(circles, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(sums.Sequential)
	// Output:
	// circle(r=3)
	// circle(r=5)
	// 8
}
