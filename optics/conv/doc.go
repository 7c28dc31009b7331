// Package conv combines linear-shift-invariant optical components by
// frequency-domain convolution.
//
// Each component of an imaging chain (an aperture, a sensor pixel
// footprint, an optical low-pass filter, a measured point-spread function)
// is a Signal: a complex 2D signal over a square uniform grid. Convolving
// two components multiplies their spectra. Components with a closed-form
// Fourier transform are analytic and combine exactly, with no grid at all;
// components known only by samples transform numerically. The engine
// dispatches per operand, merges mismatched grids (finer spacing, larger
// extent), aligns both spectra on the merged frequency axis, multiplies,
// and transforms back.
//
// # Usage
//
// Chains read left to right; errors stick to the intermediate values and
// surface at the end:
//
//	psf, _ := conv.FromSamples(measured, grid.Grid{Spacing: 0.5, Samples: 129})
//	pixel, _ := conv.FromAnalytic(pixelFT)
//	olpf, _ := conv.FromAnalytic(olpfFT)
//
//	system := psf.Combine(pixel).Combine(olpf)
//	img, err := system.Render()
//
// Purely analytic chains stay analytic until something demands samples:
//
//	sys := lens.Combine(pixel)                   // still exact, no grid
//	out, err := sys.Materialize(conv.WithGrid(g)) // sampled here
//
// # Numerical health
//
// The convolution of real components is real; both transform round-off and
// spectrum interpolation leave a small imaginary residue on the numeric
// path. The residue is measured on every materialization, reported by
// Residue, and logged through the logging package when it exceeds the
// precision's tolerance. It is never an error.
//
// # Precision
//
// The package is generic over the working sample type. Signal and the
// plain constructors work in float64/complex128; the matching ...32
// constructors work in float32/complex64. Precision is chosen once, at
// construction, and carried by the types from there on.
//
// # Concurrency
//
// Signals are immutable and safe to share. Combining allocates its own
// transform state per call, so any number of combinations may run in
// parallel.
package conv
