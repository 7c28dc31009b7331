package spectral

import (
	"testing"

	"github.com/cwbudde/algo-optics/optics/field"
)

func indexField(n int) *field.Complex[complex128] {
	f := field.NewComplex[complex128](n)
	for i := range f.Data {
		f.Data[i] = complex(float64(i), 0)
	}
	return f
}

func TestFFTShiftMovesDCToCenter(t *testing.T) {
	for _, n := range []int{4, 5, 8, 9} {
		src := field.NewComplex[complex128](n)
		src.Set(0, 0, 1) // raw DC corner

		dst := field.NewComplex[complex128](n)
		FFTShift(dst, src)

		c := n / 2
		if dst.At(c, c) != 1 {
			t.Errorf("n=%d: center = %v, want 1", n, dst.At(c, c))
		}
		for i, v := range dst.Data {
			if i != c*n+c && v != 0 {
				t.Errorf("n=%d: stray value %v at %d", n, v, i)
			}
		}
	}
}

func TestShiftsAreInverses(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5, 9, 12} {
		src := indexField(n)
		tmp := field.NewComplex[complex128](n)
		out := field.NewComplex[complex128](n)

		FFTShift(tmp, src)
		IFFTShift(out, tmp)
		for i := range src.Data {
			if out.Data[i] != src.Data[i] {
				t.Fatalf("n=%d: ifftshift(fftshift) not identity at %d", n, i)
			}
		}

		IFFTShift(tmp, src)
		FFTShift(out, tmp)
		for i := range src.Data {
			if out.Data[i] != src.Data[i] {
				t.Fatalf("n=%d: fftshift(ifftshift) not identity at %d", n, i)
			}
		}
	}
}

func TestShiftRowLayout(t *testing.T) {
	// n=4: fftshift swaps halves on both axes.
	src := indexField(4)
	dst := field.NewComplex[complex128](4)
	FFTShift(dst, src)

	want := []complex128{
		10, 11, 8, 9,
		14, 15, 12, 13,
		2, 3, 0, 1,
		6, 7, 4, 5,
	}
	for i := range want {
		if dst.Data[i] != want[i] {
			t.Fatalf("data[%d] = %v, want %v", i, dst.Data[i], want[i])
		}
	}
}

func TestShiftInPlacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("in-place shift should panic")
		}
	}()
	f := indexField(4)
	FFTShift(f, f)
}
