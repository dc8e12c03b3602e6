package metrics

import (
	"math"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// SpreadWidth reports the standard deviation of the box-index distribution
// in the most recent column. For a spreading point source it grows like
// sqrt(2*k*t) in box units.
type SpreadWidth struct {
	name string
	last float64
}

func NewSpreadWidth() *SpreadWidth {
	return &SpreadWidth{name: "spread_width"}
}

func (w *SpreadWidth) Name() string { return w.name }

func (w *SpreadWidth) Observe(col lattice.Dist, t float64) {
	total := col.Sum()
	if total <= 0 {
		w.last = 0
		return
	}

	mean := 0.0
	for i, p := range col {
		mean += float64(i) * p
	}
	mean /= total

	variance := 0.0
	for i, p := range col {
		d := float64(i) - mean
		variance += d * d * p
	}
	variance /= total

	w.last = math.Sqrt(variance)
}

func (w *SpreadWidth) Value() float64 { return w.last }

func (w *SpreadWidth) Reset() { w.last = 0 }
