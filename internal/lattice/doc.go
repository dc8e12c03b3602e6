// Package lattice provides core primitives for discrete diffusion on a
// bounded 1-D lattice of boxes.
//
// The package defines the fundamental types shared by the integrator,
// metrics, storage, and visualization layers:
//
//   - [Dist]: probability distribution over N boxes
//   - [Field]: full (N x steps) time history, one column per step
//   - [Params]: box count, hopping rate, time increment, step count
//   - [Metric]: per-column observation interface
//
// # Example
//
//	initial, _ := scenario.Point(41)
//	integ := master.New()
//	result, _ := integ.Run(ctx, initial, lattice.DefaultConfig(41, 5000))
//
// # Thread Safety
//
// Field columns are written once, in time order, and never mutated after
// being filled. Concurrent reads of completed columns are safe; a Field
// being filled must not be read from another goroutine.
package lattice
