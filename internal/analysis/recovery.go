// Package analysis provides post-run diagnostics for diffusion fields.
//
// The package characterizes completed runs:
//
//   - [RecoveryCurve]: mean probability inside the bleached window per step
//   - [HalfTime]: time for the recovery curve to reach half its final rise
//   - [UniformityCurve]: per-column max deviation, the approach to uniform
//   - [CenterCurve]: center-box probability, the decay of a point source
package analysis

import "github.com/san-kum/boxdiff/internal/lattice"

// RecoveryCurve returns the mean probability in the half-open box range
// [lo, hi) for each column of the field. For a FRAP run this is the
// fluorescence recovery signal.
func RecoveryCurve(f *lattice.Field, lo, hi int) []float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > f.N() {
		hi = f.N()
	}
	if hi <= lo {
		return nil
	}

	curve := make([]float64, f.Steps())
	width := float64(hi - lo)
	for t := range curve {
		s := 0.0
		for i := lo; i < hi; i++ {
			s += f.At(i, t)
		}
		curve[t] = s / width
	}
	return curve
}

// HalfTime returns the time at which curve first crosses the midpoint
// between its initial and final values. Returns -1 when the curve never
// crosses (too few steps, or no net recovery).
func HalfTime(curve []float64, dt float64) float64 {
	if len(curve) < 2 {
		return -1
	}

	first, last := curve[0], curve[len(curve)-1]
	if last == first {
		return -1
	}
	half := first + (last-first)/2

	rising := last > first
	for t, v := range curve {
		if (rising && v >= half) || (!rising && v <= half) {
			return float64(t) * dt
		}
	}
	return -1
}

// UniformityCurve returns each column's max deviation between entries.
func UniformityCurve(f *lattice.Field) []float64 {
	curve := make([]float64, f.Steps())
	for t := range curve {
		curve[t] = f.Column(t).MaxDeviation()
	}
	return curve
}

// CenterCurve returns the center-box probability over time.
func CenterCurve(f *lattice.Field) []float64 {
	c := f.N() / 2
	curve := make([]float64, f.Steps())
	for t := range curve {
		curve[t] = f.At(c, t)
	}
	return curve
}
