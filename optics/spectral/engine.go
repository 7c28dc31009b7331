package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// engine1D computes raw (DC-first) 1D DFTs of one fixed length. forward is
// unnormalized; inverse carries the 1/n factor. Both accept dst == src.
type engine1D[C algofft.Complex] interface {
	forward(dst, src []C) error
	inverse(dst, src []C) error
}

// newEngine1D selects the transform backend for length n. Power-of-two
// lengths run on precomputed FFT plans; every other length, notably the odd
// counts grid reconciliation produces, runs on the fftpack-backed engine,
// which accepts arbitrary n.
func newEngine1D[C algofft.Complex](n int) (engine1D[C], error) {
	if isPowerOf2(n) {
		plan, err := algofft.NewPlanT[C](n)
		if err != nil {
			return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
		}
		return &planEngine[C]{plan: plan}, nil
	}
	return newFourierEngine[C](n), nil
}

// planEngine wraps a power-of-two FFT plan. The plan's inverse is already
// normalized.
type planEngine[C algofft.Complex] struct {
	plan *algofft.Plan[C]
}

func (e *planEngine[C]) forward(dst, src []C) error {
	return e.plan.Forward(dst, src)
}

func (e *planEngine[C]) inverse(dst, src []C) error {
	return e.plan.Inverse(dst, src)
}

// fourierEngine wraps a gonum CmplxFFT, which accepts any length. The
// backing transform works in complex128; narrower sample types convert
// through the scratch buffer. Its raw transforms are unnormalized in both
// directions, so inverse applies the 1/n factor here.
type fourierEngine[C algofft.Complex] struct {
	fft *fourier.CmplxFFT
	buf []complex128
}

func newFourierEngine[C algofft.Complex](n int) *fourierEngine[C] {
	return &fourierEngine[C]{
		fft: fourier.NewCmplxFFT(n),
		buf: make([]complex128, n),
	}
}

func (e *fourierEngine[C]) forward(dst, src []C) error {
	if d, ok := any(dst).([]complex128); ok {
		e.fft.Coefficients(d, any(src).([]complex128))
		return nil
	}
	for i, v := range src {
		e.buf[i] = complex128(v)
	}
	e.fft.Coefficients(e.buf, e.buf)
	for i, v := range e.buf {
		dst[i] = C(v)
	}
	return nil
}

func (e *fourierEngine[C]) inverse(dst, src []C) error {
	n := len(e.buf)
	inv := complex(1/float64(n), 0)
	if d, ok := any(dst).([]complex128); ok {
		e.fft.Sequence(d, any(src).([]complex128))
		for i := range d {
			d[i] *= inv
		}
		return nil
	}
	for i, v := range src {
		e.buf[i] = complex128(v)
	}
	e.fft.Sequence(e.buf, e.buf)
	for i, v := range e.buf {
		dst[i] = C(v * inv)
	}
	return nil
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
