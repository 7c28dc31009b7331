package conv

import (
	"github.com/cwbudde/algo-optics/optics/grid"
	"github.com/cwbudde/algo-optics/optics/spectral"
)

type config struct {
	g         grid.Grid
	quality   spectral.Quality
	sampled   bool
	tolerance float64
}

// Option configures a combination, materialization, or analytic signal.
type Option func(*config)

// WithSpacing pins the sample spacing of the operation's grid. On analytic
// signals it becomes a hint that participates in later grid merges.
func WithSpacing(spacing float64) Option {
	return func(cfg *config) {
		cfg.g.Spacing = spacing
	}
}

// WithSamples pins the per-axis sample count of the operation's grid.
func WithSamples(samples int) Option {
	return func(cfg *config) {
		cfg.g.Samples = samples
	}
}

// WithGrid pins the operation's grid descriptor in one piece.
func WithGrid(g grid.Grid) Option {
	return func(cfg *config) {
		cfg.g = g
	}
}

// WithQuality selects the interpolation quality used when operand spectra
// are resampled onto the combination grid.
func WithQuality(q spectral.Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// Sampled forces the combination to produce sampled data even when both
// operands are analytic. Combining two analytic signals this way fails with
// ErrNoGrid unless something pins a complete grid.
func Sampled() Option {
	return func(cfg *config) {
		cfg.sampled = true
	}
}

// WithResidueTolerance overrides the relative imaginary-residue threshold
// above which a combination logs a warning. The default depends on the
// working precision.
func WithResidueTolerance(tol float64) Option {
	return func(cfg *config) {
		if tol > 0 {
			cfg.tolerance = tol
		}
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// defaultResidueTolerance returns the residue warning threshold for the
// working precision.
func defaultResidueTolerance[C any]() float64 {
	var z C
	if _, ok := any(z).(complex64); ok {
		return 1e-3
	}
	return 1e-6
}
