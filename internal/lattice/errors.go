package lattice

import (
	"errors"
	"fmt"
)

// Domain errors for integration runs.
var (
	// ErrBadDistribution indicates an initial distribution with the wrong
	// length or one that does not sum to 1.
	ErrBadDistribution = errors.New("lattice: invalid initial distribution")

	// ErrBadParams indicates a non-positive box count, rate, dt, or step count.
	ErrBadParams = errors.New("lattice: parameter out of valid bounds")

	// ErrInvalidState indicates NaN or Inf appeared in a column.
	ErrInvalidState = errors.New("lattice: invalid state (NaN or Inf detected)")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
