// Package mtf measures the modulation transfer function of a point-spread
// function: the magnitude of its frequency response along the two axes,
// normalized to the response at DC.
package mtf

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-optics/optics/conv"
	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
	"github.com/cwbudde/algo-optics/optics/spectral"
)

// ErrZeroDC reports a signal with no response at DC, which cannot be
// normalized.
var ErrZeroDC = errors.New("mtf: zero response at DC")

// Config holds MTF analysis parameters. The zero value analyzes the signal
// on its own grid and normalizes to DC.
type Config struct {
	// Grid regrids the signal before analysis when set. Analytic signals
	// with no pinned grid need one, here or on the signal.
	Grid grid.Grid

	// Quality selects the interpolation used when regridding.
	Quality spectral.Quality

	// Unnormalized keeps the raw response magnitude instead of normalizing
	// to DC.
	Unnormalized bool
}

// Result holds the measured transfer function.
type Result struct {
	// Grid the analysis ran on.
	Grid grid.Grid

	// Freqs is the non-negative frequency axis shared by both cuts, DC
	// first.
	Freqs []float64

	// Tangential is the response magnitude along +fx, Sagittal along +fy.
	Tangential []float64
	Sagittal   []float64

	// MTF50T and MTF50S are the frequencies where each cut first falls to
	// one half, zero when a cut never does within the measured band.
	MTF50T float64
	MTF50S float64

	// Residue is the imaginary residue left by materializing the signal.
	Residue float64
}

// Calculator performs MTF analysis on signals.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a new MTF calculator.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Analyze is a one-shot MTF analysis.
func Analyze(sig conv.Signal, cfg Config) (Result, error) {
	return NewCalculator(cfg).Analyze(sig)
}

// Analyze materializes the signal, transforms it, and cuts the response
// magnitude along both frequency axes.
func (c *Calculator) Analyze(sig conv.Signal) (Result, error) {
	m, err := sig.Materialize(conv.WithGrid(c.cfg.Grid), conv.WithQuality(c.cfg.Quality))
	if err != nil {
		return Result{}, err
	}

	g := m.Grid()
	tr, err := spectral.NewTransformer(g)
	if err != nil {
		return Result{}, err
	}

	spec := field.NewComplex[complex128](g.Samples)
	if err := tr.Forward(spec, m.Samples()); err != nil {
		return Result{}, err
	}

	center := g.Samples / 2
	tangential := cutMagnitude(spec.Row(center)[center:])
	sagittal := cutMagnitude(columnCut(spec, center))

	if !c.cfg.Unnormalized {
		dc := tangential[0]
		if dc == 0 {
			return Result{}, ErrZeroDC
		}
		for i := range tangential {
			tangential[i] /= dc
			sagittal[i] /= dc
		}
	}

	df := g.FreqStep()
	freqs := make([]float64, len(tangential))
	for i := range freqs {
		freqs[i] = float64(i) * df
	}

	return Result{
		Grid:       g,
		Freqs:      freqs,
		Tangential: tangential,
		Sagittal:   sagittal,
		MTF50T:     halfPoint(freqs, tangential),
		MTF50S:     halfPoint(freqs, sagittal),
		Residue:    m.Residue(),
	}, nil
}

// cutMagnitude returns the magnitudes of one spectrum cut.
func cutMagnitude(cut []complex128) []float64 {
	n := len(cut)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range cut {
		re[i], im[i] = real(v), imag(v)
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)

	return out
}

// columnCut gathers the spectrum column from DC upward.
func columnCut(spec *field.Complex[complex128], center int) []complex128 {
	out := make([]complex128, spec.N-center)
	for i := range out {
		out[i] = spec.At(center, center+i)
	}
	return out
}

// halfPoint locates the first fall below half the DC response by linear
// interpolation between bins. Curves that never fall that far return 0.
func halfPoint(freqs, curve []float64) float64 {
	half := 0.5 * curve[0]
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1]
		if prev < half || curve[i] >= half {
			continue
		}

		t := (prev - half) / (prev - curve[i])

		return freqs[i-1] + t*(freqs[i]-freqs[i-1])
	}

	return 0
}
