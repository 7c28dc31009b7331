// Package aperture provides closed-form linear-shift-invariant components
// commonly found in an imaging chain: slits, pinholes, square and pixel
// apertures, birefringent low-pass filters, and Gaussian blurs. Every
// provider is normalized to unit response at DC, so a cascade of components
// preserves overall volume. Providers with a closed form return analytic
// signals; targets without one, such as the Siemens star, sample directly
// onto a grid.
package aperture

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optics/optics/conv"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// Orientation selects the long axis of an anisotropic component.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

// SlitT returns an ideal slit of the given width. A horizontal slit runs
// along the x axis and blurs across y, so its frequency response is a sinc
// over the perpendicular frequency coordinate.
func SlitT[F algofft.Float, C algofft.Complex](width float64, orient Orientation, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("slit width", width); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	ft := func(fx, fy float64) complex128 {
		f := fy
		if orient == OrientationVertical {
			f = fx
		}
		return complex(sinc(width*f), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// Slit returns a float64 slit component.
func Slit(width float64, orient Orientation, opts ...conv.Option) (conv.Signal, error) {
	return SlitT[float64, complex128](width, orient, opts...)
}

// PinholeT returns a circular aperture of the given diameter. Its frequency
// response is the jinc function 2*J1(pi*d*rho)/(pi*d*rho) over radial
// frequency.
func PinholeT[F algofft.Float, C algofft.Complex](diameter float64, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("pinhole diameter", diameter); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	ft := func(fx, fy float64) complex128 {
		return complex(jinc(diameter*math.Hypot(fx, fy)), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// Pinhole returns a float64 pinhole component.
func Pinhole(diameter float64, opts ...conv.Option) (conv.Signal, error) {
	return PinholeT[float64, complex128](diameter, opts...)
}

// SquareT returns a square aperture with the given side length, rotated by
// angle radians: a separable sinc pair in the rotated frame.
func SquareT[F algofft.Float, C algofft.Complex](size, angle float64, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("square size", size); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	cos, sin := math.Cos(angle), math.Sin(angle)
	ft := func(fx, fy float64) complex128 {
		u := fx*cos + fy*sin
		v := fy*cos - fx*sin
		return complex(sinc(size*u)*sinc(size*v), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// Square returns a float64 square aperture.
func Square(size, angle float64, opts ...conv.Option) (conv.Signal, error) {
	return SquareT[float64, complex128](size, angle, opts...)
}

// PixelT returns the aperture of a square sensor pixel with the given
// pitch: sinc(p*fx)*sinc(p*fy).
func PixelT[F algofft.Float, C algofft.Complex](pitch float64, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("pixel pitch", pitch); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	ft := func(fx, fy float64) complex128 {
		return complex(sinc(pitch*fx)*sinc(pitch*fy), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// Pixel returns a float64 pixel aperture.
func Pixel(pitch float64, opts ...conv.Option) (conv.Signal, error) {
	return PixelT[float64, complex128](pitch, opts...)
}

// OLPFT returns a four-spot birefringent optical low-pass filter with the
// given spot separation: cos(pi*p*fx)*cos(pi*p*fy). Its first null sits at
// 1/(2p) on each axis.
func OLPFT[F algofft.Float, C algofft.Complex](separation float64, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("filter separation", separation); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	ft := func(fx, fy float64) complex128 {
		return complex(math.Cos(math.Pi*separation*fx)*math.Cos(math.Pi*separation*fy), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// OLPF returns a float64 optical low-pass filter.
func OLPF(separation float64, opts ...conv.Option) (conv.Signal, error) {
	return OLPFT[float64, complex128](separation, opts...)
}

// GaussianT returns an isotropic Gaussian blur with the given standard
// deviation: exp(-2*pi^2*sigma^2*rho^2).
func GaussianT[F algofft.Float, C algofft.Complex](sigma float64, opts ...conv.Option) (conv.SignalT[F, C], error) {
	if err := validateDimension("gaussian sigma", sigma); err != nil {
		return conv.SignalT[F, C]{}, err
	}

	k := 2 * math.Pi * math.Pi * sigma * sigma
	ft := func(fx, fy float64) complex128 {
		return complex(math.Exp(-k*(fx*fx+fy*fy)), 0)
	}

	return conv.FromAnalyticT[F, C](ft, opts...)
}

// Gaussian returns a float64 Gaussian blur.
func Gaussian(sigma float64, opts ...conv.Option) (conv.Signal, error) {
	return GaussianT[float64, complex128](sigma, opts...)
}

// SiemensStarT returns a sampled sinusoidal star target: the given number
// of sinusoidal spokes inside the radius, zero outside. Star targets have
// no closed-form transform, so a full grid is required up front.
func SiemensStarT[F algofft.Float, C algofft.Complex](spokes int, radius float64, g grid.Grid) (conv.SignalT[F, C], error) {
	var zero conv.SignalT[F, C]

	if err := validateSpokes(spokes); err != nil {
		return zero, err
	}
	if err := validateDimension("star radius", radius); err != nil {
		return zero, err
	}
	if err := g.Validate(); err != nil {
		return zero, err
	}
	if !g.IsFull() {
		return zero, fmt.Errorf("%w: star targets need spacing and samples, got spacing %g with %d samples",
			grid.ErrInvalidGrid, g.Spacing, g.Samples)
	}

	axis := g.Axis()
	data := make([]F, g.Samples*g.Samples)
	n := float64(spokes)
	for yi, y := range axis {
		row := data[yi*g.Samples : (yi+1)*g.Samples]
		for xi, x := range axis {
			if math.Hypot(x, y) > radius {
				continue
			}
			row[xi] = F(0.5 * (1 + math.Cos(n*math.Atan2(y, x))))
		}
	}

	return conv.FromSamplesT[F, C](data, g)
}

// SiemensStar returns a float64 star target.
func SiemensStar(spokes int, radius float64, g grid.Grid) (conv.Signal, error) {
	return SiemensStarT[float64, complex128](spokes, radius, g)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// jinc is the circularly symmetric analogue of sinc, 2*J1(pi*x)/(pi*x).
func jinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return 2 * math.J1(px) / px
}
