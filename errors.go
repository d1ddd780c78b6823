package curve3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a curve is constructed with a
	// parameter that isn't strictly positive and finite.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrConsistencyViolation is returned when the sequential and parallel
	// radius sums disagree by more than [Tolerance].
	ErrConsistencyViolation = errors.New("consistency violation")
)

// ParameterError describes a rejected curve parameter.
type ParameterError struct {
	Kind  Kind
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s must be positive, got %g", e.Kind, e.Name, e.Value)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// ConsistencyError reports two radius sums that should have agreed.
type ConsistencyError struct {
	Sequential float64
	Parallel   float64
	Tolerance  float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency violation: sequential sum %g and parallel sum %g differ by %g (tolerance %g)",
		e.Sequential, e.Parallel, e.Sequential-e.Parallel, e.Tolerance)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistencyViolation }
