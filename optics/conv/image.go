package conv

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-optics/optics/field"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// ImageOption configures image import.
type ImageOption func(*imageConfig)

type imageConfig struct {
	clip       bool
	clipLo     float64
	clipHi     float64
	unitVolume bool
}

// WithPercentileClip clips pixel values to the [lo, hi] percentile range,
// both in 0..1, before rescaling to full scale. This suppresses hot pixels
// and background offsets in measured spot images.
func WithPercentileClip(lo, hi float64) ImageOption {
	return func(cfg *imageConfig) {
		cfg.clip = true
		cfg.clipLo = lo
		cfg.clipHi = hi
	}
}

// WithUnitVolume rescales the imported samples so the field integrates to
// one over its extent, the usual normalization for a measured point-spread
// function.
func WithUnitVolume() ImageOption {
	return func(cfg *imageConfig) {
		cfg.unitVolume = true
	}
}

// FromImageT converts a decoded image into a sampled signal. plateScale is
// the physical sample spacing one pixel covers. Color images convert to
// luminance, and non-square images crop centered to their shorter side.
// Decoding files stays with the caller; the engine takes pixels only.
func FromImageT[F algofft.Float, C algofft.Complex](img image.Image, plateScale float64, opts ...ImageOption) (SignalT[F, C], error) {
	var zero SignalT[F, C]

	var cfg imageConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.clip && !(cfg.clipLo >= 0 && cfg.clipLo < cfg.clipHi && cfg.clipHi <= 1) {
		return zero, fmt.Errorf("conv: percentile clip range must satisfy 0 <= lo < hi <= 1: %g, %g",
			cfg.clipLo, cfg.clipHi)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	n := w
	if h < n {
		n = h
	}
	if n == 0 {
		return zero, fmt.Errorf("%w: empty image", ErrNoSignal)
	}
	g := grid.Grid{Spacing: plateScale, Samples: n}
	if err := g.Validate(); err != nil {
		return zero, err
	}

	// Centered square crop, converted to luminance in 0..1.
	ox := bounds.Min.X + (w-n)/2
	oy := bounds.Min.Y + (h-n)/2
	vals := make([]float64, n*n)
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				vals[y*n+x] = float64(gray.GrayAt(ox+x, oy+y).Y) / 255
			}
		}
	} else {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				l := color.Gray16Model.Convert(img.At(ox+x, oy+y)).(color.Gray16)
				vals[y*n+x] = float64(l.Y) / 65535
			}
		}
	}

	if cfg.clip {
		clipToPercentiles(vals, cfg.clipLo, cfg.clipHi)
	}
	if cfg.unitVolume {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		if vol := sum * plateScale * plateScale; vol > 0 {
			for i := range vals {
				vals[i] /= vol
			}
		}
	}

	f := field.NewComplex[C](n)
	for i, v := range vals {
		f.Data[i] = C(complex(v, 0))
	}
	return SignalT[F, C]{samples: f, g: g}, nil
}

// FromImage converts a decoded image into a float64 signal.
func FromImage(img image.Image, plateScale float64, opts ...ImageOption) (Signal, error) {
	return FromImageT[float64, complex128](img, plateScale, opts...)
}

// FromImage32 converts a decoded image into a float32 signal.
func FromImage32(img image.Image, plateScale float64, opts ...ImageOption) (SignalT[float32, complex64], error) {
	return FromImageT[float32, complex64](img, plateScale, opts...)
}

// clipToPercentiles clamps vals to its [lo, hi] percentile band and
// rescales the band to 0..1.
func clipToPercentiles(vals []float64, lo, hi float64) {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	lov := stat.Quantile(lo, stat.Empirical, sorted, nil)
	hiv := stat.Quantile(hi, stat.Empirical, sorted, nil)
	if hiv <= lov {
		return
	}
	span := hiv - lov
	for i, v := range vals {
		switch {
		case v <= lov:
			vals[i] = 0
		case v >= hiv:
			vals[i] = 1
		default:
			vals[i] = (v - lov) / span
		}
	}
}
