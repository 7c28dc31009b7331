// Package grid describes the square uniform sampling grids that optical
// signals live on, and merges the grids of convolution operands.
//
// A grid is fully determined by its sample spacing and sample count; the
// physical extent is their product. Sample coordinates are centered so that
// index n/2 sits at exactly zero:
//
//	x[i] = (i - n/2) * spacing
//
// The matching frequency axis uses the same centering with step
// 1/(spacing*samples), which places the DC bin of a centered spectrum at
// index n/2 as well.
//
// A descriptor with Samples == 0 is a spacing hint: it constrains the
// resolution of a merge without pinning an extent. Analytic signals use
// hints to influence the grid they are eventually sampled on.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid reports a descriptor that cannot describe a physical grid.
var ErrInvalidGrid = errors.New("grid: invalid grid")

// Grid describes a square uniform sampling grid. The zero value carries no
// grid information at all; see IsZero.
type Grid struct {
	// Spacing is the distance between adjacent samples, identical on both
	// axes. Must be positive and finite on any non-zero descriptor.
	Spacing float64

	// Samples is the number of samples per axis. Zero marks a pure spacing
	// hint with no extent.
	Samples int
}

// New returns a validated full grid descriptor.
func New(spacing float64, samples int) (Grid, error) {
	g := Grid{Spacing: spacing, Samples: samples}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	if samples < 1 {
		return Grid{}, fmt.Errorf("%w: samples must be >= 1: %d", ErrInvalidGrid, samples)
	}
	return g, nil
}

// Hint returns a spacing-only descriptor.
func Hint(spacing float64) (Grid, error) {
	g := Grid{Spacing: spacing}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Validate checks the descriptor's fields. The zero value passes: absence of
// a grid is a legal state for analytic signals.
func (g Grid) Validate() error {
	if g.IsZero() {
		return nil
	}
	if g.Spacing <= 0 || math.IsInf(g.Spacing, 0) || math.IsNaN(g.Spacing) {
		return fmt.Errorf("%w: spacing must be > 0 and finite: %g", ErrInvalidGrid, g.Spacing)
	}
	if g.Samples < 0 {
		return fmt.Errorf("%w: samples must be >= 0: %d", ErrInvalidGrid, g.Samples)
	}
	return nil
}

// IsZero reports whether the descriptor carries no information.
func (g Grid) IsZero() bool {
	return g.Spacing == 0 && g.Samples == 0
}

// IsHint reports whether the descriptor constrains spacing but not extent.
func (g Grid) IsHint() bool {
	return g.Spacing > 0 && g.Samples == 0
}

// IsFull reports whether the descriptor pins both spacing and extent.
func (g Grid) IsFull() bool {
	return g.Spacing > 0 && g.Samples > 0
}

// Extent returns the physical side length covered by the grid. The extent is
// exactly Spacing*Samples, not (Samples-1)*Spacing: each sample owns one
// spacing-sized cell.
func (g Grid) Extent() float64 {
	return g.Spacing * float64(g.Samples)
}

// Coord returns the spatial coordinate of sample index i.
func (g Grid) Coord(i int) float64 {
	return float64(i-g.Samples/2) * g.Spacing
}

// Axis returns the centered spatial coordinates of all samples. Index n/2 is
// exactly zero; for odd counts the axis is symmetric about it.
func (g Grid) Axis() []float64 {
	ax := make([]float64, g.Samples)
	half := g.Samples / 2
	for i := range ax {
		ax[i] = float64(i-half) * g.Spacing
	}
	return ax
}

// FreqStep returns the frequency-domain sample spacing, 1/(Spacing*Samples).
func (g Grid) FreqStep() float64 {
	return 1 / (g.Spacing * float64(g.Samples))
}

// Freq returns the frequency coordinate of spectrum index k.
func (g Grid) Freq(k int) float64 {
	return float64(k-g.Samples/2) * g.FreqStep()
}

// FreqAxis returns the centered frequency coordinates matching Axis. The DC
// bin sits at index n/2.
func (g Grid) FreqAxis() []float64 {
	ax := make([]float64, g.Samples)
	half := g.Samples / 2
	df := g.FreqStep()
	for k := range ax {
		ax[k] = float64(k-half) * df
	}
	return ax
}

// Nyquist returns the highest representable frequency, 1/(2*Spacing).
func (g Grid) Nyquist() float64 {
	return 1 / (2 * g.Spacing)
}
