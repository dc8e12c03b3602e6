// Package experiment wires a named scenario, the integrator, and the
// default metric set into a single runnable unit shared by the CLI
// commands.
package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/boxdiff/internal/lattice"
	"github.com/san-kum/boxdiff/internal/master"
	"github.com/san-kum/boxdiff/internal/metrics"
	"github.com/san-kum/boxdiff/internal/scenario"
)

type Config struct {
	Scenario string
	Gap      int // bleached window width, frap only
	Lattice  lattice.Config
}

type Experiment struct {
	cfg        Config
	initial    lattice.Dist
	integrator *master.Integrator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the scenario name and attaches metrics. A nil metric
// slice attaches the default set.
func (e *Experiment) Setup(reg *scenario.Registry, ms []lattice.Metric) error {
	build, err := reg.Get(e.cfg.Scenario)
	if err != nil {
		return err
	}

	initial, err := build(e.cfg.Lattice.N, e.cfg.Gap)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", e.cfg.Scenario, err)
	}
	e.initial = initial

	if ms == nil {
		ms = DefaultMetrics()
	}
	e.integrator = master.New()
	for _, m := range ms {
		e.integrator.AddMetric(m)
	}

	return nil
}

func (e *Experiment) Run(ctx context.Context) (*lattice.Result, error) {
	if e.integrator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.integrator.Run(ctx, e.initial, e.cfg.Lattice)
}

// Initial returns the resolved initial distribution. Valid after Setup.
func (e *Experiment) Initial() lattice.Dist {
	return e.initial
}

// Integrator returns the underlying integrator for adding observers.
func (e *Experiment) Integrator() *master.Integrator {
	return e.integrator
}

func DefaultMetrics() []lattice.Metric {
	return []lattice.Metric{
		metrics.NewMassDrift(),
		metrics.NewFlatness(),
		metrics.NewSpreadWidth(),
		metrics.NewNegativity(),
	}
}
