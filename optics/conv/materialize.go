package conv

import (
	"fmt"

	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// Materialize returns a signal that carries sampled data, sampling the
// closed form when needed. The grid comes from the signal's own descriptor
// merged with the option hints. An analytic signal with nothing pinning a
// complete grid fails with ErrNoGrid. Sampled signals pass through
// unchanged unless the hints refine their grid, in which case they are
// regridded through the frequency domain.
func (s SignalT[F, C]) Materialize(opts ...Option) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	if err := s.check(); err != nil {
		return zero, err
	}
	cfg := applyOptions(opts)
	target, err := mergeGrids(s.g, grid.Grid{}, cfg.g)
	if err != nil {
		return zero, err
	}

	if s.IsSampled() && target == s.g {
		return s, nil
	}
	if !target.IsFull() {
		return zero, fmt.Errorf("%w: materializing needs pinned spacing and extent, got spacing %g with %d samples",
			ErrNoGrid, target.Spacing, target.Samples)
	}

	if s.IsAnalytic() {
		return s.sampleOnto(target, cfg)
	}

	spec, err := spectrumOn(s, target, cfg.quality)
	if err != nil {
		return zero, err
	}
	out, res, err := inverseOn[F](spec, target, cfg)
	if err != nil {
		return zero, err
	}
	return SignalT[F, C]{samples: out, g: target, residue: res}, nil
}

// Render materializes the signal and returns the real part of its spatial
// samples. The imaginary part is diagnostic, not signal; check Residue when
// it matters.
func (s SignalT[F, C]) Render(opts ...Option) (*field.Real[F], error) {
	m, err := s.Materialize(opts...)
	if err != nil {
		return nil, err
	}
	return field.RealPart[F](m.samples), nil
}
