package conv

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-optics/logging"
	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
	"github.com/cwbudde/algo-optics/optics/spectral"
)

// CombineT convolves two signals and returns the combined system.
//
// Dispatch is per operand: two analytic operands multiply their closed
// forms and stay analytic, exact and grid-free, unless the Sampled option
// forces output samples. As soon as one operand is sampled the combination
// runs numerically: operand spectra are aligned on the merged grid,
// multiplied pointwise, and transformed back. The merged grid takes the
// finer spacing and larger extent of the operands and any option hints.
//
// Combination is commutative and associative up to interpolation error on
// the numeric path.
func CombineT[F algofft.Float, C algofft.Complex](a, b SignalT[F, C], opts ...Option) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	if err := a.check(); err != nil {
		return zero, err
	}
	if err := b.check(); err != nil {
		return zero, err
	}

	cfg := applyOptions(opts)
	target, err := mergeGrids(a.g, b.g, cfg.g)
	if err != nil {
		return zero, err
	}

	if a.IsAnalytic() && b.IsAnalytic() {
		out := SignalT[F, C]{ft: productFT(a.ft, b.ft), g: target}
		if !cfg.sampled {
			return out, nil
		}
		if !target.IsFull() {
			return zero, fmt.Errorf("%w: sampling two analytic signals needs pinned spacing and extent, got spacing %g with %d samples",
				ErrNoGrid, target.Spacing, target.Samples)
		}
		return out.sampleOnto(target, cfg)
	}

	// At least one operand is sampled, so the merged grid is full.
	sa, err := spectrumOn(a, target, cfg.quality)
	if err != nil {
		return zero, err
	}
	sb, err := spectrumOn(b, target, cfg.quality)
	if err != nil {
		return zero, err
	}
	sa.Mul(sb)

	out, res, err := inverseOn[F](sa, target, cfg)
	if err != nil {
		return zero, err
	}
	return SignalT[F, C]{samples: out, g: target, residue: res}, nil
}

// Combine convolves two float64 signals.
func Combine(a, b Signal, opts ...Option) (Signal, error) {
	return CombineT(a, b, opts...)
}

// Combine convolves s with other and returns the combined system. Errors
// stick to the returned value, so chains like a.Combine(b).Combine(c) run
// to the end and the first failure surfaces on the final signal's Err,
// Materialize, or Render.
func (s SignalT[F, C]) Combine(other SignalT[F, C], opts ...Option) SignalT[F, C] {
	out, err := CombineT(s, other, opts...)
	if err != nil {
		return SignalT[F, C]{err: err}
	}
	return out
}

// mergeGrids folds the operands' grids and the caller's override into the
// grid the combination happens on. A count-only override adopts the
// spacing the operands pin.
func mergeGrids(a, b, override grid.Grid) (grid.Grid, error) {
	u, err := grid.Union(a, b)
	if err != nil {
		return grid.Grid{}, err
	}
	if override.Samples > 0 && override.Spacing == 0 {
		if u.Spacing == 0 {
			return grid.Grid{}, fmt.Errorf("%w: sample-count hint without any spacing", ErrNoGrid)
		}
		override.Spacing = u.Spacing
	}
	return grid.Union(u, override)
}

func productFT(a, b FTFunc) FTFunc {
	return func(fx, fy float64) complex128 {
		return a(fx, fy) * b(fx, fy)
	}
}

// sampleFT evaluates a closed form on every frequency bin of the grid.
func sampleFT[C algofft.Complex](ft FTFunc, g grid.Grid) *field.Complex[C] {
	f := field.NewComplex[C](g.Samples)
	freqs := g.FreqAxis()
	for ky, fy := range freqs {
		row := f.Row(ky)
		for kx, fx := range freqs {
			row[kx] = C(ft(fx, fy))
		}
	}
	return f
}

// spectrumOn produces the operand's spectrum aligned with the target grid's
// frequency bins. Analytic operands evaluate their closed form directly on
// the target axis, exactly. Sampled operands transform on their own grid
// and resample, which is where operands on mismatched grids pay their
// interpolation cost.
func spectrumOn[F algofft.Float, C algofft.Complex](s SignalT[F, C], target grid.Grid, q spectral.Quality) (*field.Complex[C], error) {
	if s.IsAnalytic() {
		return sampleFT[C](s.ft, target), nil
	}

	tr, err := spectral.NewTransformerT[C](s.g)
	if err != nil {
		return nil, err
	}
	spec := field.NewComplex[C](s.g.Samples)
	if err := tr.Forward(spec, s.samples); err != nil {
		return nil, err
	}
	return spectral.Resample(spec, s.g, target, q)
}

// sampleOnto samples the signal's closed form on the target grid and
// transforms it to the spatial domain. The result keeps the closed form:
// materializing does not lose analyticity.
func (s SignalT[F, C]) sampleOnto(target grid.Grid, cfg config) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	spec := sampleFT[C](s.ft, target)
	out, res, err := inverseOn[F](spec, target, cfg)
	if err != nil {
		return zero, err
	}
	return SignalT[F, C]{samples: out, g: target, ft: s.ft, residue: res}, nil
}

// inverseOn transforms a spectrum on the target grid back to the spatial
// domain and measures the imaginary residue. A residue above tolerance logs
// a warning but never fails the operation; callers read it off the result.
func inverseOn[F algofft.Float, C algofft.Complex](spec *field.Complex[C], target grid.Grid, cfg config) (*field.Complex[C], float64, error) {
	tr, err := spectral.NewTransformerT[C](target)
	if err != nil {
		return nil, 0, err
	}
	out := field.NewComplex[C](target.Samples)
	if err := tr.Inverse(out, spec); err != nil {
		return nil, 0, err
	}

	res := residueOf(out)
	tol := cfg.tolerance
	if tol == 0 {
		tol = defaultResidueTolerance[C]()
	}
	if res > tol {
		logging.Warn("conv: imaginary residue above tolerance", logging.Fields{
			"residue":   res,
			"tolerance": tol,
			"spacing":   target.Spacing,
			"samples":   target.Samples,
		})
	}
	return out, res, nil
}

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, mag []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n:need], buf
}

// residueOf measures the relative imaginary residue of a nominally real
// field: max |Im| over peak magnitude. An all-zero field has zero residue.
func residueOf[C algofft.Complex](f *field.Complex[C]) float64 {
	n := len(f.Data)
	re, im, mag, buf := getScratch(n)
	defer scratchPool.Put(buf)

	f.Split(re, im)
	vecmath.Magnitude(mag, re, im)
	peak := floats.Max(mag)
	if peak == 0 {
		return 0
	}
	for i, v := range im {
		im[i] = math.Abs(v)
	}
	return floats.Max(im) / peak
}
