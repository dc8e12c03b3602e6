// Package viz renders diffusion fields for the terminal and for image
// files.
//
//   - [Slices]: evenly spaced time slices as labeled terminal bar charts
//   - [Curve]: asciigraph line plot of a per-step diagnostic
//   - [RenderPNG]: go-chart bar charts of selected slices written to disk
//   - [Model]: bubbletea live view of a running integration
package viz
