package testutil

import (
	"fmt"
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optics/optics/field"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFieldNearlyEqual fails t if two complex fields differ in size or
// if any element pair differs by more than eps in magnitude.
func RequireFieldNearlyEqual[C algofft.Complex](t *testing.T, got, want *field.Complex[C], eps float64) {
	t.Helper()
	if got.N != want.N {
		t.Fatalf("size mismatch: got %dx%d, want %dx%d", got.N, got.N, want.N, want.N)
	}
	for i := range got.Data {
		d := complex128(got.Data[i]) - complex128(want.Data[i])
		if diff := math.Hypot(real(d), imag(d)); diff > eps {
			y, x := i/got.N, i%got.N
			t.Fatalf("sample (%d,%d): got %v, want %v (diff %v > eps %v)",
				x, y, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxFieldDiff returns the maximum elementwise magnitude difference between
// two complex fields. Returns an error if the fields differ in size.
func MaxFieldDiff[C algofft.Complex](a, b *field.Complex[C]) (float64, error) {
	if a.N != b.N {
		return 0, fmt.Errorf("size mismatch: %dx%d vs %dx%d", a.N, a.N, b.N, b.N)
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := complex128(a.Data[i]) - complex128(b.Data[i])
		if m := math.Hypot(real(d), imag(d)); m > maxDiff {
			maxDiff = m
		}
	}
	return maxDiff, nil
}
