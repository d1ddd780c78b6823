package curve3

import (
	"math/rand/v2"
	"testing"
)

func mixedCollection(t *testing.T) Collection {
	t.Helper()
	s := NewStore(0)
	s.Add(mustCurve(t, CircleKind, 5))
	s.Add(mustCurve(t, EllipseKind, 2, 4))
	s.Add(mustCurve(t, HelixKind, 1, 1))
	s.Add(mustCurve(t, CircleKind, 3))
	s.Add(mustCurve(t, CircleKind, 4))
	s.Add(mustCurve(t, EllipseKind, 1, 1))
	return s.Collection()
}

func TestFilterCircles(t *testing.T) {
	all := mixedCollection(t)
	circles := Circles(all)

	if circles.Len() != 3 {
		t.Fatalf("got %d circles, want 3", circles.Len())
	}
	for i, c := range circles.All() {
		if c.Kind() != CircleKind {
			t.Errorf("element %d is a %v", i, c.Kind())
		}
	}
	// Original encounter order.
	diff(t, []Handle{0, 3, 4}, circles.Handles())

	if n := Filter(all, HelixKind).Len(); n != 1 {
		t.Errorf("got %d helices, want 1", n)
	}
	if n := Circles(Collection{}).Len(); n != 0 {
		t.Errorf("got %d circles in empty collection", n)
	}
}

func TestFilterShares(t *testing.T) {
	all := mixedCollection(t)
	circles := Circles(all)
	SortByRadius(circles)

	if circles.Store() != all.Store() {
		t.Fatal("filtered collection uses a different store")
	}
	for i := range circles.Len() {
		h := circles.Handle(i)
		if circles.Ref(i) != all.Ref(int(h)) {
			t.Errorf("circle %d is not the same instance as element %d of the original collection", i, h)
		}
	}
}

func TestSortByRadius(t *testing.T) {
	all := mixedCollection(t)
	circles := Circles(all)
	SortByRadius(circles)

	var radii []float64
	for _, c := range circles.All() {
		radii = append(radii, c.Radius())
	}
	diff(t, []float64{3, 4, 5}, radii)

	// Sorting the derived collection leaves the original alone.
	diff(t, []Handle{0, 1, 2, 3, 4, 5}, all.Handles())
}

func TestSortByRadiusRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewStore(500)
	for range 500 {
		// Few distinct values, to exercise ties.
		s.Add(mustCurve(t, CircleKind, float64(1+rng.IntN(20))))
	}
	c := s.Collection()
	SortByRadius(c)
	for i := 1; i < c.Len(); i++ {
		if a, b := c.At(i-1).Radius(), c.At(i).Radius(); a > b {
			t.Fatalf("radius %v at index %d precedes %v", a, i-1, b)
		}
	}
}

func TestStoreHandles(t *testing.T) {
	s := NewStore(2)
	h0 := s.Add(mustCurve(t, CircleKind, 1))
	h1 := s.Add(mustCurve(t, HelixKind, 1, 2))
	diff(t, []Handle{0, 1}, []Handle{h0, h1})
	if s.Len() != 2 {
		t.Errorf("got %d curves, want 2", s.Len())
	}
	if s.Ref(h1) != s.Ref(h1) {
		t.Error("expected Ref to be stable")
	}

	c := NewCollection(s, h1, h0, h1)
	diff(t, []Curve{s.Curve(h1), s.Curve(h0), s.Curve(h1)}, []Curve{c.At(0), c.At(1), c.At(2)}, cmpCurve)

	defer func() {
		if recover() == nil {
			t.Error("expected out of range handle to panic")
		}
	}()
	s.Curve(2)
}
