// Package spectral computes centered, physically scaled 2D Fourier
// transforms of optical fields, and resamples spectra between frequency
// grids.
//
// Sampled fields use the grid package's centered convention: the spatial
// origin sits at index n/2, and so does the DC bin of a spectrum. Forward
// transforms are scaled by the sample cell area dx², which makes the
// discrete spectrum approximate the continuous Fourier transform of the
// underlying field. A closed-form transform evaluated on grid.FreqAxis
// therefore lines up bin-for-bin with the numeric spectrum of its sampled
// counterpart, which is what lets analytic and sampled operands multiply
// directly.
//
// Two transform backends sit behind one interface: power-of-two sizes run
// on precomputed FFT plans, all other sizes on an fftpack-based engine that
// accepts arbitrary lengths. Callers never pick; the size decides.
package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// TransformerT computes centered 2D transforms for one fixed grid.
//
// Forward re-centers the field so the grid center is the transform origin,
// runs the 2D FFT, re-centers the spectrum so DC lands at index n/2, and
// scales by dx². Inverse undoes all of it; Inverse after Forward is the
// identity up to rounding.
//
// A TransformerT reuses internal scratch between calls and is not safe for
// concurrent use. Create one per goroutine.
type TransformerT[C algofft.Complex] struct {
	g   grid.Grid
	eng engine1D[C]
	tmp *field.Complex[C]
	col []C
}

// Transformer is the complex128 specialization of TransformerT.
type Transformer = TransformerT[complex128]

// NewTransformerT creates a transformer bound to the given full grid.
func NewTransformerT[C algofft.Complex](g grid.Grid) (*TransformerT[C], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.IsFull() {
		return nil, fmt.Errorf("%w: transform requires spacing and samples, got spacing %g with %d samples",
			grid.ErrInvalidGrid, g.Spacing, g.Samples)
	}

	eng, err := newEngine1D[C](g.Samples)
	if err != nil {
		return nil, err
	}

	return &TransformerT[C]{
		g:   g,
		eng: eng,
		tmp: field.NewComplex[C](g.Samples),
		col: make([]C, g.Samples),
	}, nil
}

// NewTransformer creates a complex128 transformer bound to the given grid.
func NewTransformer(g grid.Grid) (*Transformer, error) {
	return NewTransformerT[complex128](g)
}

// NewTransformer32 creates a complex64 transformer bound to the given grid.
func NewTransformer32(g grid.Grid) (*TransformerT[complex64], error) {
	return NewTransformerT[complex64](g)
}

// Grid returns the grid the transformer is bound to.
func (t *TransformerT[C]) Grid() grid.Grid { return t.g }

// Forward writes the centered spectrum of src to dst. Samples in src are
// taken as centered per grid.Axis; dst values align with grid.FreqAxis.
// dst and src may be the same field.
func (t *TransformerT[C]) Forward(dst, src *field.Complex[C]) error {
	t.checkShape(dst, src)
	IFFTShift(t.tmp, src)
	if err := t.fft2(t.tmp, t.eng.forward); err != nil {
		return fmt.Errorf("spectral: forward FFT failed: %w", err)
	}
	FFTShift(dst, t.tmp)
	dst.Scale(t.g.Spacing * t.g.Spacing)
	return nil
}

// Inverse writes the centered field whose spectrum is src to dst, undoing
// Forward. dst and src may be the same field.
func (t *TransformerT[C]) Inverse(dst, src *field.Complex[C]) error {
	t.checkShape(dst, src)
	IFFTShift(t.tmp, src)
	if err := t.fft2(t.tmp, t.eng.inverse); err != nil {
		return fmt.Errorf("spectral: inverse FFT failed: %w", err)
	}
	FFTShift(dst, t.tmp)
	dst.Scale(1 / (t.g.Spacing * t.g.Spacing))
	return nil
}

func (t *TransformerT[C]) checkShape(dst, src *field.Complex[C]) {
	n := t.g.Samples
	if src.N != n || dst.N != n {
		panic(fmt.Sprintf("spectral: field size mismatch: src %dx%d, dst %dx%d on %d-sample grid",
			src.N, src.N, dst.N, dst.N, n))
	}
}

// fft2 applies the 1D transform along every row, then every column, in
// place.
func (t *TransformerT[C]) fft2(f *field.Complex[C], tr func(dst, src []C) error) error {
	n := f.N
	for y := 0; y < n; y++ {
		row := f.Row(y)
		if err := tr(row, row); err != nil {
			return err
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			t.col[y] = f.Data[y*n+x]
		}
		if err := tr(t.col, t.col); err != nil {
			return err
		}
		for y := 0; y < n; y++ {
			f.Data[y*n+x] = t.col[y]
		}
	}
	return nil
}
