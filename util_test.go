package curve3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative and absolute tolerance of 1e-12.
var approx = cmpopts.EquateApprox(1e-12, 1e-12)

// script is a Sampler that replays fixed draws.
type script struct {
	kinds  []Kind
	params []float64
}

func (s *script) Kind() Kind {
	k := s.kinds[0]
	s.kinds = s.kinds[1:]
	return k
}

func (s *script) Float64() float64 {
	v := s.params[0]
	s.params = s.params[1:]
	return v
}

func mustCurve(t *testing.T, kind Kind, params ...float64) Curve {
	t.Helper()
	c, err := New(kind, params...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// cmpCurve lets cmp look at Curve's unexported fields.
var cmpCurve = cmp.AllowUnexported(Curve{})

var approx9 = cmpopts.EquateApprox(1e-9, 1e-9)
