package field

import (
	"errors"
	"math"
	"testing"
)

func TestOfValidatesLength(t *testing.T) {
	if _, err := RealOf([]float64{1, 2, 3}, 2); !errors.Is(err, ErrSize) {
		t.Fatalf("RealOf err = %v, want ErrSize", err)
	}
	if _, err := ComplexOf([]complex128{1, 2, 3, 4}, 2); err != nil {
		t.Fatalf("ComplexOf err = %v", err)
	}
}

func TestIndexing(t *testing.T) {
	f := NewReal[float64](3)
	f.Set(2, 1, 7)
	if f.At(2, 1) != 7 {
		t.Fatalf("At(2,1) = %v, want 7", f.At(2, 1))
	}
	if f.Data[1*3+2] != 7 {
		t.Fatal("Set did not land row-major")
	}
	row := f.Row(1)
	if len(row) != 3 || row[2] != 7 {
		t.Fatalf("Row(1) = %v", row)
	}

	// Row is a view, not a copy.
	row[0] = 5
	if f.At(0, 1) != 5 {
		t.Fatal("Row should alias the field")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := NewComplex[complex128](2)
	f.Set(0, 0, 1+2i)
	c := f.Clone()
	c.Set(0, 0, 9)
	if f.At(0, 0) != 1+2i {
		t.Fatal("Clone shares storage with original")
	}
}

func TestComplexifyRoundTrip(t *testing.T) {
	r := NewReal[float64](2)
	copy(r.Data, []float64{1, -2, 3, -4})

	c := Complexify[float64, complex128](r)
	for i, v := range c.Data {
		if imag(v) != 0 {
			t.Fatalf("imag[%d] = %v, want 0", i, imag(v))
		}
	}

	back := RealPart[float64](c)
	for i := range r.Data {
		if back.Data[i] != r.Data[i] {
			t.Fatalf("round trip changed sample %d: %v vs %v", i, back.Data[i], r.Data[i])
		}
	}
}

func TestSplit(t *testing.T) {
	c := NewComplex[complex64](2)
	copy(c.Data, []complex64{1 + 2i, 3 - 4i, 0, -1i})

	re := make([]float64, 4)
	im := make([]float64, 4)
	c.Split(re, im)

	wantRe := []float64{1, 3, 0, 0}
	wantIm := []float64{2, -4, 0, -1}
	for i := range wantRe {
		if re[i] != wantRe[i] || im[i] != wantIm[i] {
			t.Fatalf("Split[%d] = (%v, %v), want (%v, %v)", i, re[i], im[i], wantRe[i], wantIm[i])
		}
	}
}

func TestComplexMul(t *testing.T) {
	a := NewComplex[complex128](2)
	b := NewComplex[complex128](2)
	copy(a.Data, []complex128{1, 2i, 3, 1 + 1i})
	copy(b.Data, []complex128{2, 2, -1i, 1 - 1i})

	a.Mul(b)
	want := []complex128{2, 4i, -3i, 2}
	for i := range want {
		if a.Data[i] != want[i] {
			t.Fatalf("Mul[%d] = %v, want %v", i, a.Data[i], want[i])
		}
	}
}

func TestRealMulMatchesAcrossPrecisions(t *testing.T) {
	a64 := NewReal[float64](2)
	b64 := NewReal[float64](2)
	copy(a64.Data, []float64{1, 2, 3, 4})
	copy(b64.Data, []float64{0.5, -1, 2, 0})

	a32 := NewReal[float32](2)
	b32 := NewReal[float32](2)
	copy(a32.Data, []float32{1, 2, 3, 4})
	copy(b32.Data, []float32{0.5, -1, 2, 0})

	a64.Mul(b64)
	a32.Mul(b32)

	for i := range a64.Data {
		if math.Abs(a64.Data[i]-float64(a32.Data[i])) > 1e-6 {
			t.Fatalf("precision paths diverge at %d: %v vs %v", i, a64.Data[i], a32.Data[i])
		}
	}
}

func TestRealScaleSumMaxAbs(t *testing.T) {
	r := NewReal[float64](2)
	copy(r.Data, []float64{1, -2, 3, -4})

	r.Scale(0.5)
	want := []float64{0.5, -1, 1.5, -2}
	for i := range want {
		if r.Data[i] != want[i] {
			t.Fatalf("Scale[%d] = %v, want %v", i, r.Data[i], want[i])
		}
	}
	if got := r.Sum(); got != -1 {
		t.Fatalf("Sum = %v, want -1", got)
	}
	if got := r.MaxAbs(); got != 2 {
		t.Fatalf("MaxAbs = %v, want 2", got)
	}

	r32 := NewReal[float32](2)
	copy(r32.Data, []float32{1, -2, 3, -4})
	r32.Scale(0.5)
	for i := range want {
		if float64(r32.Data[i]) != want[i] {
			t.Fatalf("float32 Scale[%d] = %v, want %v", i, r32.Data[i], want[i])
		}
	}
}

func TestScaleAndMaxAbs(t *testing.T) {
	c := NewComplex[complex128](2)
	copy(c.Data, []complex128{1 + 1i, -2, 0, 3i})

	c.Scale(0.5)
	if c.Data[1] != -1 {
		t.Fatalf("Scale: got %v, want -1", c.Data[1])
	}
	if got := c.MaxAbs(); math.Abs(got-1.5) > 1e-15 {
		t.Fatalf("MaxAbs = %v, want 1.5", got)
	}
	if got := c.MaxAbsImag(); math.Abs(got-1.5) > 1e-15 {
		t.Fatalf("MaxAbsImag = %v, want 1.5", got)
	}
}

func TestMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Mul on mismatched fields should panic")
		}
	}()
	NewComplex[complex128](2).Mul(NewComplex[complex128](3))
}
