package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-optics/optics/field"
)

// FFTShift copies src to dst with the zero-frequency sample of a raw
// transform moved from index 0 to the center index n/2, on both axes.
// dst must not alias src.
func FFTShift[C algofft.Complex](dst, src *field.Complex[C]) {
	remap(dst, src, (src.N+1)/2)
}

// IFFTShift copies src to dst with the center sample moved back to index 0,
// on both axes. IFFTShift inverts FFTShift for every size; the two maps
// differ for odd sizes.
// dst must not alias src.
func IFFTShift[C algofft.Complex](dst, src *field.Complex[C]) {
	remap(dst, src, src.N/2)
}

func remap[C algofft.Complex](dst, src *field.Complex[C], off int) {
	n := src.N
	if dst.N != n {
		panic(fmt.Sprintf("spectral: shift size mismatch: %dx%d vs %dx%d", dst.N, dst.N, n, n))
	}
	if len(dst.Data) > 0 && &dst.Data[0] == &src.Data[0] {
		panic("spectral: shift cannot run in place")
	}
	for y := 0; y < n; y++ {
		srow := src.Row((y + off) % n)
		drow := dst.Row(y)
		for x := 0; x < n; x++ {
			drow[x] = srow[(x+off)%n]
		}
	}
}
