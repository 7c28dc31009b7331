package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-optics/optics/field"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxFieldDiff(t *testing.T) {
	a := field.NewComplex[complex128](2)
	b := field.NewComplex[complex128](2)
	a.Data[3] = complex(0, 0.25)

	d, err := MaxFieldDiff(a, b)
	if err != nil {
		t.Fatalf("MaxFieldDiff error: %v", err)
	}
	if math.Abs(d-0.25) > 1e-15 {
		t.Fatalf("MaxFieldDiff = %v, want 0.25", d)
	}

	if _, err := MaxFieldDiff(a, field.NewComplex[complex128](3)); err == nil {
		t.Fatal("expected error for size mismatch")
	}
}

func TestMaxFieldDiffIdentical(t *testing.T) {
	a := field.NewComplex[complex64](2)
	a.Data[0] = 1 + 2i

	d, err := MaxFieldDiff(a, a)
	if err != nil {
		t.Fatalf("MaxFieldDiff error: %v", err)
	}
	if d != 0 {
		t.Fatalf("MaxFieldDiff = %v, want 0 for identical fields", d)
	}
}
