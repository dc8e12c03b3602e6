package metrics

import "github.com/san-kum/boxdiff/internal/lattice"

// Flatness reports the max deviation between any two entries of the most
// recent column. A recovered FRAP run converges toward zero.
type Flatness struct {
	name string
	last float64
}

func NewFlatness() *Flatness {
	return &Flatness{name: "flatness"}
}

func (f *Flatness) Name() string { return f.name }

func (f *Flatness) Observe(col lattice.Dist, t float64) {
	f.last = col.MaxDeviation()
}

func (f *Flatness) Value() float64 { return f.last }

func (f *Flatness) Reset() { f.last = 0 }
