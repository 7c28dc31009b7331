package conv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// Errors returned by signal construction and combination.
var (
	// ErrNoGrid reports an operation that needs sampling while nothing pins
	// a complete grid: not the operands, not the options.
	ErrNoGrid = errors.New("conv: no grid information")

	// ErrShapeMismatch reports sample data whose length does not match the
	// declared grid.
	ErrShapeMismatch = errors.New("conv: samples do not match grid")

	// ErrNoSignal reports a signal that carries neither samples nor a
	// transform, such as the zero value.
	ErrNoSignal = errors.New("conv: empty signal")
)

// FTFunc evaluates a closed-form Fourier transform at one frequency point.
// Evaluators are grid-independent and exact; they always compute in full
// precision regardless of the working sample type.
type FTFunc func(fx, fy float64) complex128

// SignalT is one linear-shift-invariant component of an imaging chain: a
// complex 2D signal over a square uniform grid.
//
// A signal carries sampled data, a closed-form frequency response, or both.
// Signals with a closed form are analytic: they combine exactly, without a
// grid, until something forces sampling. Signals without one always carry
// samples. The grid descriptor may be full (sampled signals), a spacing
// hint, or absent entirely (pure analytic signals).
//
// Signals are immutable once constructed; methods return new values, and
// one signal may be used from any number of goroutines.
type SignalT[F algofft.Float, C algofft.Complex] struct {
	samples *field.Complex[C]
	g       grid.Grid
	ft      FTFunc
	residue float64
	err     error
}

// Signal is the float64 specialization of SignalT.
type Signal = SignalT[float64, complex128]

// FromSamplesT wraps real-valued spatial samples, laid out row-major and
// centered per grid.Axis, as a signal. The grid must be full and match the
// data length.
func FromSamplesT[F algofft.Float, C algofft.Complex](samples []F, g grid.Grid) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	r, err := newSampleField(samples, g)
	if err != nil {
		return zero, err
	}
	return SignalT[F, C]{samples: field.Complexify[F, C](r), g: g}, nil
}

// FromSamples wraps float64 spatial samples as a signal.
func FromSamples(samples []float64, g grid.Grid) (Signal, error) {
	return FromSamplesT[float64, complex128](samples, g)
}

// FromSamples32 wraps float32 spatial samples as a signal.
func FromSamples32(samples []float32, g grid.Grid) (SignalT[float32, complex64], error) {
	return FromSamplesT[float32, complex64](samples, g)
}

func newSampleField[F algofft.Float](samples []F, g grid.Grid) (*field.Real[F], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.IsFull() {
		return nil, fmt.Errorf("%w: sampled signals need spacing and samples, got spacing %g with %d samples",
			grid.ErrInvalidGrid, g.Spacing, g.Samples)
	}
	r, err := field.RealOf(samples, g.Samples)
	if err != nil {
		return nil, fmt.Errorf("%w: %d values on a %d-sample grid", ErrShapeMismatch, len(samples), g.Samples)
	}
	return r, nil
}

// FromFieldT wraps an already complex field as a signal. The field is
// copied; the signal does not alias the caller's data.
func FromFieldT[F algofft.Float, C algofft.Complex](f *field.Complex[C], g grid.Grid) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	if err := g.Validate(); err != nil {
		return zero, err
	}
	if !g.IsFull() {
		return zero, fmt.Errorf("%w: sampled signals need spacing and samples, got spacing %g with %d samples",
			grid.ErrInvalidGrid, g.Spacing, g.Samples)
	}
	if f.N != g.Samples {
		return zero, fmt.Errorf("%w: %dx%d field on a %d-sample grid", ErrShapeMismatch, f.N, f.N, g.Samples)
	}
	return SignalT[F, C]{samples: f.Clone(), g: g}, nil
}

// FromField wraps a complex128 field as a signal.
func FromField(f *field.Complex[complex128], g grid.Grid) (Signal, error) {
	return FromFieldT[float64, complex128](f, g)
}

// FromAnalyticT creates a signal from a closed-form frequency response.
// The signal needs no grid; options may attach spacing and sample-count
// hints that participate when a combination is eventually sampled.
func FromAnalyticT[F algofft.Float, C algofft.Complex](ft FTFunc, opts ...Option) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	if ft == nil {
		return zero, fmt.Errorf("%w: nil transform", ErrNoSignal)
	}
	cfg := applyOptions(opts)
	if err := cfg.g.Validate(); err != nil {
		return zero, err
	}
	return SignalT[F, C]{ft: ft, g: cfg.g}, nil
}

// FromAnalytic creates a float64 signal from a closed-form frequency
// response.
func FromAnalytic(ft FTFunc, opts ...Option) (Signal, error) {
	return FromAnalyticT[float64, complex128](ft, opts...)
}

// FromAnalytic32 creates a float32 signal from a closed-form frequency
// response.
func FromAnalytic32(ft FTFunc, opts ...Option) (SignalT[float32, complex64], error) {
	return FromAnalyticT[float32, complex64](ft, opts...)
}

// IsAnalytic reports whether the signal has a closed-form frequency
// response.
func (s SignalT[F, C]) IsAnalytic() bool { return s.ft != nil }

// IsSampled reports whether the signal carries sampled data.
func (s SignalT[F, C]) IsSampled() bool { return s.samples != nil }

// Grid returns the signal's grid descriptor, which may be full, a hint, or
// absent.
func (s SignalT[F, C]) Grid() grid.Grid { return s.g }

// FT returns the closed-form frequency response, or nil for sampled-only
// signals.
func (s SignalT[F, C]) FT() FTFunc { return s.ft }

// Samples returns a copy of the sampled data, or nil for analytic-only
// signals.
func (s SignalT[F, C]) Samples() *field.Complex[C] {
	if s.samples == nil {
		return nil
	}
	return s.samples.Clone()
}

// Residue reports the relative imaginary residue left by the numeric
// combination that produced this signal: max |Im| over peak magnitude.
// Zero for constructed and analytically combined signals.
func (s SignalT[F, C]) Residue() float64 { return s.residue }

// Err returns the error a failed chained combination stored on the signal.
// Terminal operations such as Materialize and Render also surface it.
func (s SignalT[F, C]) Err() error { return s.err }

// check returns the stored chain error, or ErrNoSignal for a signal with no
// content.
func (s SignalT[F, C]) check() error {
	if s.err != nil {
		return s.err
	}
	if s.ft == nil && s.samples == nil {
		return ErrNoSignal
	}
	return nil
}
