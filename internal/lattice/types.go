package lattice

import (
	"fmt"
	"math"
)

// Dist is a probability distribution over the boxes of the lattice.
type Dist []float64

func (d Dist) Clone() Dist {
	c := make(Dist, len(d))
	copy(c, d)
	return c
}

// Sum returns the total probability carried by the distribution.
func (d Dist) Sum() float64 {
	s := 0.0
	for _, v := range d {
		s += v
	}
	return s
}

func (d Dist) IsValid() bool {
	for _, v := range d {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Min returns the smallest entry. Negative values indicate an unstable
// parameterization (k*dt too large for the forward-Euler update).
func (d Dist) Min() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxDeviation returns the largest difference between any two entries.
// Zero means the distribution is uniform.
func (d Dist) MaxDeviation() float64 {
	if len(d) == 0 {
		return 0
	}
	lo, hi := d[0], d[0]
	for _, v := range d[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

// Renormalize scales the distribution in place so it sums to 1.
func (d Dist) Renormalize() error {
	s := d.Sum()
	if s <= 0 {
		return fmt.Errorf("renormalize: %w (sum=%g)", ErrBadDistribution, s)
	}
	for i := range d {
		d[i] /= s
	}
	return nil
}

// Field holds the full time history of a run: one distribution column per
// time step. Column 0 is the initial condition.
type Field struct {
	n     int
	steps int
	cols  []Dist
}

func NewField(n, steps int) *Field {
	f := &Field{n: n, steps: steps, cols: make([]Dist, steps)}
	for t := range f.cols {
		f.cols[t] = make(Dist, n)
	}
	return f
}

func (f *Field) N() int     { return f.n }
func (f *Field) Steps() int { return f.steps }

// At returns the probability in box i after t steps.
func (f *Field) At(i, t int) float64 { return f.cols[t][i] }

// Column returns the distribution after t steps. The returned slice is the
// backing storage; callers must not mutate it.
func (f *Field) Column(t int) Dist { return f.cols[t] }

// Last returns the final column.
func (f *Field) Last() Dist { return f.cols[f.steps-1] }

// Fill copies d into column t.
func (f *Field) Fill(t int, d Dist) {
	copy(f.cols[t], d)
}

// Params holds the numerical knobs of a run.
type Params struct {
	N     int     // box count
	K     float64 // hopping rate per direction
	Dt    float64 // time increment
	Steps int     // number of stored columns, including the initial one
}

// Stable reports whether the forward-Euler update keeps probabilities
// non-negative. The per-direction outflow k*dt must stay below 0.5 so an
// interior box cannot lose more than it holds in one step.
func (p Params) Stable() bool {
	return p.K*p.Dt < 0.5
}

func (p Params) Validate() error {
	if p.N < 2 {
		return fmt.Errorf("%w: need at least 2 boxes, got %d", ErrBadParams, p.N)
	}
	if p.K <= 0 {
		return fmt.Errorf("%w: hopping rate must be positive, got %g", ErrBadParams, p.K)
	}
	if p.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrBadParams, p.Dt)
	}
	if p.Steps < 1 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrBadParams, p.Steps)
	}
	return nil
}

// Config is the run configuration handed to the integrator.
type Config struct {
	Params
	ValidateInput bool // reject initial distributions that do not sum to 1
	WarnUnstable  bool // record a warning when k*dt >= 0.5
}

func DefaultConfig(n, steps int) Config {
	return Config{
		Params:        Params{N: n, K: 1.0, Dt: 0.1, Steps: steps},
		ValidateInput: true,
		WarnUnstable:  true,
	}
}

// Metric observes each completed column and reduces the run to one number.
type Metric interface {
	Name() string
	Observe(col Dist, t float64)
	Value() float64
	Reset()
}

// Observer is notified after each column is filled.
type Observer interface {
	OnColumn(col Dist, step int, t float64)
}

// Result is the outcome of an integration run.
type Result struct {
	Field    *Field
	Times    []float64
	Metrics  map[string]float64
	Warnings []string
}
