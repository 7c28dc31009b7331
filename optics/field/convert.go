package field

import (
	algofft "github.com/MeKo-Christian/algo-fft"
)

// ToComplex converts a real sample to the paired complex type.
func ToComplex[F algofft.Float, C algofft.Complex](v F) C {
	return C(complex(float64(v), 0))
}

// ToFloat extracts the real part of a complex sample in the paired real type.
func ToFloat[F algofft.Float, C algofft.Complex](v C) F {
	return F(real(complex128(v)))
}

// Complexify lifts a real field into a complex field with zero imaginary
// parts.
func Complexify[F algofft.Float, C algofft.Complex](src *Real[F]) *Complex[C] {
	dst := NewComplex[C](src.N)
	for i, v := range src.Data {
		dst.Data[i] = ToComplex[F, C](v)
	}
	return dst
}

// RealPart extracts the real parts of src into a new real field.
func RealPart[F algofft.Float, C algofft.Complex](src *Complex[C]) *Real[F] {
	dst := NewReal[F](src.N)
	for i, v := range src.Data {
		dst.Data[i] = ToFloat[F, C](v)
	}
	return dst
}

// Split writes the real and imaginary parts of f into re and im as float64,
// whatever the field's precision. Both destinations must hold N*N values.
// The split layout feeds vectorized magnitude and power routines.
func (f *Complex[C]) Split(re, im []float64) {
	if len(re) != len(f.Data) || len(im) != len(f.Data) {
		panic("field: split destination length mismatch")
	}
	for i, v := range f.Data {
		z := complex128(v)
		re[i] = real(z)
		im[i] = imag(z)
	}
}
