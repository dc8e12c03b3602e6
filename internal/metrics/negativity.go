package metrics

import "github.com/san-kum/boxdiff/internal/lattice"

// Negativity counts columns containing at least one negative entry.
// Nonzero values mean the k*dt stability bound was violated; the method
// itself never raises an error for this.
type Negativity struct {
	name       string
	violations int
	samples    int
}

func NewNegativity() *Negativity {
	return &Negativity{name: "negativity"}
}

func (n *Negativity) Name() string { return n.name }

func (n *Negativity) Observe(col lattice.Dist, t float64) {
	n.samples++
	if col.Min() < 0 {
		n.violations++
	}
}

func (n *Negativity) Value() float64 { return float64(n.violations) }

func (n *Negativity) Reset() {
	n.violations = 0
	n.samples = 0
}
