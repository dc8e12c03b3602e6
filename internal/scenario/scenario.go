// Package scenario builds the initial distributions for the supported
// experiments: a point source for spreading, a bleached gap for FRAP, and
// a uniform baseline.
package scenario

import (
	"fmt"

	"github.com/san-kum/boxdiff/internal/lattice"
)

// Point places unit mass in the center box. For even n the center rounds
// down, matching integer division on the box index.
func Point(n int) (lattice.Dist, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 boxes, got %d", lattice.ErrBadParams, n)
	}
	d := make(lattice.Dist, n)
	d[n/2] = 1.0
	return d, nil
}

// Uniform spreads the mass evenly over all boxes.
func Uniform(n int) (lattice.Dist, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 boxes, got %d", lattice.ErrBadParams, n)
	}
	d := make(lattice.Dist, n)
	for i := range d {
		d[i] = 1.0 / float64(n)
	}
	return d, nil
}

// FRAP models a photobleached sample: the gap central boxes hold nothing,
// the flanks hold equal mass, renormalized so the total is 1. Recovery of
// the gap under diffusion mimics fluorescence recovery.
func FRAP(n, gap int) (lattice.Dist, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 boxes, got %d", lattice.ErrBadParams, n)
	}
	if gap < 1 || gap >= n {
		return nil, fmt.Errorf("%w: gap must be in [1, %d), got %d", lattice.ErrBadParams, n, gap)
	}

	lo, hi := GapBounds(n, gap)
	d := make(lattice.Dist, n)
	for i := range d {
		if i < lo || i >= hi {
			d[i] = 1.0
		}
	}
	if err := d.Renormalize(); err != nil {
		return nil, err
	}
	return d, nil
}

// GapBounds returns the half-open [lo, hi) index range of the bleached
// window used by FRAP for a given lattice size.
func GapBounds(n, gap int) (lo, hi int) {
	lo = (n - gap) / 2
	return lo, lo + gap
}
