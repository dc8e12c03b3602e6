// Package master implements explicit forward-Euler integration of the
// discrete diffusion master equation on a bounded 1-D lattice.
//
// Each time column of the field is derived entirely from the previous one
// by a local nearest-neighbor update. The two edge boxes use a reflecting
// rule: they lose only the single outward hop term, so no probability ever
// leaves the domain.
//
// The update is numerically valid while k*dt < 0.5; larger steps can drive
// entries negative. Violations are a silent correctness bug of the method,
// not a runtime error; see [lattice.Config].WarnUnstable.
package master
