// Package metrics provides per-run observables for diffusion fields.
//
// Each metric implements [lattice.Metric] and is observed once per
// completed column, reducing the run to a single diagnostic number.
package metrics

import (
	"math"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// MassDrift tracks the largest deviation of total probability from the
// initial column's total. Conservation holds to floating-point tolerance
// for any parameterization, stable or not.
type MassDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift() *MassDrift {
	return &MassDrift{name: "mass_drift"}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(col lattice.Dist, t float64) {
	s := col.Sum()
	if m.samples == 0 {
		m.initial = s
	}
	m.samples++

	drift := math.Abs(s - m.initial)
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}
