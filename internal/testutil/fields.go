package testutil

import (
	"math"

	"github.com/cwbudde/algo-optics/optics/grid"
)

// GaussianSamples builds a unit-volume isotropic Gaussian, row-major on the
// grid's centered axes.
func GaussianSamples(sigma float64, g grid.Grid) []float64 {
	out := make([]float64, g.Samples*g.Samples)
	norm := 1 / (2 * math.Pi * sigma * sigma)
	for y := range g.Samples {
		cy := g.Coord(y)
		for x := range g.Samples {
			cx := g.Coord(x)
			out[y*g.Samples+x] = norm * math.Exp(-(cx*cx+cy*cy)/(2*sigma*sigma))
		}
	}
	return out
}

// DeltaSamples builds a unit-volume spike at the grid center.
func DeltaSamples(g grid.Grid) []float64 {
	out := make([]float64, g.Samples*g.Samples)
	c := g.Samples / 2
	out[c*g.Samples+c] = 1 / (g.Spacing * g.Spacing)
	return out
}

// ConstantSamples builds a uniformly valued field.
func ConstantSamples(v float64, g grid.Grid) []float64 {
	out := make([]float64, g.Samples*g.Samples)
	for i := range out {
		out[i] = v
	}
	return out
}
