package field

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Mul multiplies f pointwise by g in place. This is the frequency-domain
// core of convolution: the product of two aligned spectra.
func (f *Complex[C]) Mul(g *Complex[C]) {
	mustMatch(f.N, g.N)
	for i, v := range g.Data {
		f.Data[i] *= v
	}
}

// Scale multiplies every sample by the real factor s.
func (f *Complex[C]) Scale(s float64) {
	for i, v := range f.Data {
		f.Data[i] = C(complex128(v) * complex(s, 0))
	}
}

// MaxAbs returns the largest sample magnitude.
func (f *Complex[C]) MaxAbs() float64 {
	max := 0.0
	for _, v := range f.Data {
		z := complex128(v)
		if m := math.Hypot(real(z), imag(z)); m > max {
			max = m
		}
	}
	return max
}

// MaxAbsImag returns the largest imaginary-part magnitude. Together with
// MaxAbs it quantifies how far a nominally real field has drifted into the
// imaginary plane.
func (f *Complex[C]) MaxAbsImag() float64 {
	max := 0.0
	for _, v := range f.Data {
		if m := math.Abs(imag(complex128(v))); m > max {
			max = m
		}
	}
	return max
}

// Mul multiplies f pointwise by g in place. float64 fields take the
// vectorized block path.
func (f *Real[F]) Mul(g *Real[F]) {
	mustMatch(f.N, g.N)
	if fd, ok := any(f.Data).([]float64); ok {
		vecmath.MulBlockInPlace(fd, any(g.Data).([]float64))
		return
	}
	for i, v := range g.Data {
		f.Data[i] *= v
	}
}

// Scale multiplies every sample by s.
func (f *Real[F]) Scale(s float64) {
	if fd, ok := any(f.Data).([]float64); ok {
		vecmath.ScaleBlock(fd, fd, s)
		return
	}
	for i := range f.Data {
		f.Data[i] = F(float64(f.Data[i]) * s)
	}
}

// Sum returns the sum of all samples.
func (f *Real[F]) Sum() float64 {
	s := 0.0
	for _, v := range f.Data {
		s += float64(v)
	}
	return s
}

// MaxAbs returns the largest absolute sample value.
func (f *Real[F]) MaxAbs() float64 {
	max := 0.0
	for _, v := range f.Data {
		if m := math.Abs(float64(v)); m > max {
			max = m
		}
	}
	return max
}
