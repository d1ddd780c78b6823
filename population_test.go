package curve3

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	src := &script{
		kinds:  []Kind{CircleKind, EllipseKind, HelixKind, CircleKind, EllipseKind},
		params: []float64{5, 2, 4, -1, 3, 3, 0.5, -2},
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	pop := Build(5, src, logger)

	var got []Curve
	for _, c := range pop.Curves.All() {
		got = append(got, c)
	}
	want := []Curve{
		mustCurve(t, CircleKind, 5),
		mustCurve(t, EllipseKind, 2, 4),
		mustCurve(t, CircleKind, 3),
	}
	diff(t, want, got, cmpCurve)

	if len(pop.Skipped) != 2 {
		t.Fatalf("got %d skipped draws, want 2", len(pop.Skipped))
	}
	for i, s := range []struct {
		attempt int
		kind    Kind
		params  []float64
	}{{2, HelixKind, []float64{-1, 3}}, {4, EllipseKind, []float64{0.5, -2}}} {
		got := pop.Skipped[i]
		if got.Attempt != s.attempt || got.Kind != s.kind {
			t.Errorf("skipped draw %d: got attempt %d (%v), want %d (%v)", i, got.Attempt, got.Kind, s.attempt, s.kind)
		}
		diff(t, s.params, got.Params)
		if !errors.Is(got.Err, ErrInvalidParameter) {
			t.Errorf("skipped draw %d: got error %v", i, got.Err)
		}
	}

	if n := strings.Count(buf.String(), "skipping curve"); n != 2 {
		t.Errorf("got %d skip log lines, want 2:\n%s", n, buf.String())
	}
	if len(src.kinds) != 0 {
		t.Errorf("%d kinds left undrawn", len(src.kinds))
	}
}

func TestBuildEndToEnd(t *testing.T) {
	src := &script{
		kinds:  []Kind{CircleKind, EllipseKind, CircleKind},
		params: []float64{5, 2, 4, 3},
	}
	pop := Build(3, src, nil)
	if n := pop.Curves.Len(); n != 3 {
		t.Fatalf("got %d curves, want 3", n)
	}

	circles := Circles(pop.Curves)
	SortByRadius(circles)
	var got []Curve
	for _, c := range circles.All() {
		got = append(got, c)
	}
	diff(t, []Curve{mustCurve(t, CircleKind, 3), mustCurve(t, CircleKind, 5)}, got, cmpCurve)

	sums, err := Aggregate(circles, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sums.Sequential != 8 {
		t.Errorf("got sequential sum %v, want 8", sums.Sequential)
	}
	if d := sums.Parallel - 8; d <= -Tolerance || d >= Tolerance {
		t.Errorf("got parallel sum %v, want 8", sums.Parallel)
	}
}

func TestBuildAllInvalid(t *testing.T) {
	src := &script{
		kinds:  []Kind{CircleKind, HelixKind, EllipseKind},
		params: []float64{-1, 1, 0, -3, -3},
	}
	pop := Build(3, src, nil)
	if pop.Curves.Len() != 0 {
		t.Fatalf("got %d curves, want 0", pop.Curves.Len())
	}
	if len(pop.Skipped) != 3 {
		t.Fatalf("got %d skipped draws, want 3", len(pop.Skipped))
	}

	circles := Circles(pop.Curves)
	SortByRadius(circles)
	if circles.Len() != 0 {
		t.Fatalf("got %d circles, want 0", circles.Len())
	}
	sums, err := Aggregate(circles, 4)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Sums{}, sums)
}

func TestBuildZero(t *testing.T) {
	pop := Build(0, &script{}, nil)
	if pop.Curves.Len() != 0 || len(pop.Skipped) != 0 {
		t.Errorf("got %d curves and %d skipped draws from zero attempts", pop.Curves.Len(), len(pop.Skipped))
	}
}
