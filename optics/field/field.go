// Package field provides flat square 2D sample containers for optical
// signals, generic over numeric precision.
//
// Fields store samples row-major in a single slice, Data[y*N+x], so
// transform code can walk rows and columns without index arithmetic helpers.
// Real and Complex share the precision pairing used throughout the module:
// float64 with complex128, float32 with complex64.
//
// Shape agreement between fields of the same computation is an internal
// invariant; operations on mismatched fields panic rather than return an
// error.
package field

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrSize reports sample data whose length does not match the declared side.
var ErrSize = errors.New("field: data length does not match side length")

// Real holds a square 2D real-valued field.
type Real[F algofft.Float] struct {
	// N is the side length in samples.
	N int

	// Data holds N*N samples in row-major order.
	Data []F
}

// Complex holds a square 2D complex-valued field.
type Complex[C algofft.Complex] struct {
	// N is the side length in samples.
	N int

	// Data holds N*N samples in row-major order.
	Data []C
}

// NewReal returns a zeroed n-by-n real field.
func NewReal[F algofft.Float](n int) *Real[F] {
	return &Real[F]{N: n, Data: make([]F, n*n)}
}

// NewComplex returns a zeroed n-by-n complex field.
func NewComplex[C algofft.Complex](n int) *Complex[C] {
	return &Complex[C]{N: n, Data: make([]C, n*n)}
}

// RealOf wraps existing row-major samples as an n-by-n field without copying.
func RealOf[F algofft.Float](data []F, n int) (*Real[F], error) {
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d samples for side %d", ErrSize, len(data), n)
	}
	return &Real[F]{N: n, Data: data}, nil
}

// ComplexOf wraps existing row-major samples as an n-by-n field without
// copying.
func ComplexOf[C algofft.Complex](data []C, n int) (*Complex[C], error) {
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d samples for side %d", ErrSize, len(data), n)
	}
	return &Complex[C]{N: n, Data: data}, nil
}

// At returns the sample at column x, row y.
func (f *Real[F]) At(x, y int) F { return f.Data[y*f.N+x] }

// Set stores v at column x, row y.
func (f *Real[F]) Set(x, y int, v F) { f.Data[y*f.N+x] = v }

// Row returns the y-th row as a slice view into the field.
func (f *Real[F]) Row(y int) []F { return f.Data[y*f.N : (y+1)*f.N] }

// Clone returns a deep copy.
func (f *Real[F]) Clone() *Real[F] {
	c := &Real[F]{N: f.N, Data: make([]F, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

// At returns the sample at column x, row y.
func (f *Complex[C]) At(x, y int) C { return f.Data[y*f.N+x] }

// Set stores v at column x, row y.
func (f *Complex[C]) Set(x, y int, v C) { f.Data[y*f.N+x] = v }

// Row returns the y-th row as a slice view into the field.
func (f *Complex[C]) Row(y int) []C { return f.Data[y*f.N : (y+1)*f.N] }

// Clone returns a deep copy.
func (f *Complex[C]) Clone() *Complex[C] {
	c := &Complex[C]{N: f.N, Data: make([]C, len(f.Data))}
	copy(c.Data, f.Data)
	return c
}

func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Sprintf("field: dimension mismatch: %dx%d vs %dx%d", a, a, b, b))
	}
}
