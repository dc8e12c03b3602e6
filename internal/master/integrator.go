package master

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// massTol is the tolerance for the initial-distribution sum check and is
// also the bound within which total probability is conserved per run.
const massTol = 1e-9

// Step derives next from prev with one master-equation update. Interior
// boxes exchange probability with both neighbors; the edge boxes reflect.
// prev and next must have equal length and must not alias.
func Step(prev, next lattice.Dist, k, dt float64) {
	n := len(prev)
	hop := k * dt

	next[0] = prev[0] + hop*(prev[1]-prev[0])
	for i := 1; i < n-1; i++ {
		next[i] = prev[i] + hop*(prev[i-1]+prev[i+1]-2*prev[i])
	}
	next[n-1] = prev[n-1] + hop*(prev[n-2]-prev[n-1])
}

// Integrator fills a field column by column and reports per-run metrics.
type Integrator struct {
	metrics   []lattice.Metric
	observers []lattice.Observer
}

func New() *Integrator {
	return &Integrator{
		metrics:   make([]lattice.Metric, 0),
		observers: make([]lattice.Observer, 0),
	}
}

func (g *Integrator) AddMetric(m lattice.Metric)     { g.metrics = append(g.metrics, m) }
func (g *Integrator) AddObserver(o lattice.Observer) { g.observers = append(g.observers, o) }

// Run integrates the master equation for cfg.Steps columns starting from
// initial. Column 0 of the returned field is a copy of initial; column t
// is the distribution after t updates.
func (g *Integrator) Run(ctx context.Context, initial lattice.Dist, cfg lattice.Config) (*lattice.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := g.validateInitial(initial, cfg); err != nil {
		return nil, err
	}

	result := &lattice.Result{
		Field:   lattice.NewField(cfg.N, cfg.Steps),
		Times:   make([]float64, cfg.Steps),
		Metrics: make(map[string]float64),
	}

	if cfg.WarnUnstable && !cfg.Stable() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("k*dt = %.4f >= 0.5: forward-Euler update may produce negative probabilities", cfg.K*cfg.Dt))
	}

	for _, m := range g.metrics {
		m.Reset()
	}

	result.Field.Fill(0, initial)
	g.observe(result.Field.Column(0), 0, 0)

	for t := 1; t < cfg.Steps; t++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		prev := result.Field.Column(t - 1)
		next := result.Field.Column(t)
		Step(prev, next, cfg.K, cfg.Dt)

		tm := float64(t) * cfg.Dt
		result.Times[t] = tm

		if !next.IsValid() {
			return result, &lattice.StepError{Step: t, Time: tm, Wrapped: lattice.ErrInvalidState}
		}

		g.observe(next, t, tm)
	}

	for _, m := range g.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (g *Integrator) observe(col lattice.Dist, step int, t float64) {
	for _, m := range g.metrics {
		m.Observe(col, t)
	}
	for _, o := range g.observers {
		o.OnColumn(col, step, t)
	}
}

func (g *Integrator) validateInitial(initial lattice.Dist, cfg lattice.Config) error {
	if len(initial) != cfg.N {
		return fmt.Errorf("%w: length %d does not match box count %d",
			lattice.ErrBadDistribution, len(initial), cfg.N)
	}
	if !initial.IsValid() {
		return fmt.Errorf("initial distribution: %w", lattice.ErrInvalidState)
	}
	if cfg.ValidateInput {
		if s := initial.Sum(); math.Abs(s-1.0) > massTol {
			return fmt.Errorf("%w: sum is %.12f, want 1", lattice.ErrBadDistribution, s)
		}
		if initial.Min() < 0 {
			return fmt.Errorf("%w: negative entry %g", lattice.ErrBadDistribution, initial.Min())
		}
	}
	return nil
}
