package aperture

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-optics/optics/conv"
	"github.com/cwbudde/algo-optics/optics/grid"
)

// First zero of J1(pi*x).
const jincFirstZero = 1.2196698912665045

func TestUnitResponseAtDC(t *testing.T) {
	cases := []struct {
		name string
		make func() (conv.Signal, error)
	}{
		{"slit", func() (conv.Signal, error) { return Slit(2, OrientationHorizontal) }},
		{"pinhole", func() (conv.Signal, error) { return Pinhole(2.2) }},
		{"square", func() (conv.Signal, error) { return Square(3, 0.3) }},
		{"pixel", func() (conv.Signal, error) { return Pixel(4.4) }},
		{"olpf", func() (conv.Signal, error) { return OLPF(4.4) }},
		{"gaussian", func() (conv.Signal, error) { return Gaussian(0.8) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.make()
			if err != nil {
				t.Fatal(err)
			}
			if !s.IsAnalytic() {
				t.Fatal("provider should be analytic")
			}
			if got := s.FT()(0, 0); got != 1 {
				t.Fatalf("FT(0,0) = %v, want 1", got)
			}
		})
	}
}

func TestSlitOrientation(t *testing.T) {
	h, err := Slit(2, OrientationHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Slit(2, OrientationVertical)
	if err != nil {
		t.Fatal(err)
	}

	// A horizontal slit is flat along fx and tapers along fy.
	if got := h.FT()(0.7, 0); got != 1 {
		t.Errorf("horizontal FT(0.7, 0) = %v, want 1", got)
	}
	want := complex(sinc(2*0.25), 0)
	if got := h.FT()(0, 0.25); got != want {
		t.Errorf("horizontal FT(0, 0.25) = %v, want %v", got, want)
	}

	// The vertical slit swaps the axes.
	if got := v.FT()(0, 0.7); got != 1 {
		t.Errorf("vertical FT(0, 0.7) = %v, want 1", got)
	}
	if got := v.FT()(0.25, 0); got != want {
		t.Errorf("vertical FT(0.25, 0) = %v, want %v", got, want)
	}

	// First null at f = 1/width across the slit.
	if got := cmplxAbs(h.FT()(0, 0.5)); got > 1e-12 {
		t.Errorf("|FT| at the first null = %g", got)
	}
}

func TestPinholeFirstZero(t *testing.T) {
	d := 2.2
	p, err := Pinhole(d)
	if err != nil {
		t.Fatal(err)
	}

	rho := jincFirstZero / d
	if got := cmplxAbs(p.FT()(rho, 0)); got > 1e-12 {
		t.Errorf("|FT| at the first zero = %g", got)
	}
	if got := real(p.FT()(rho/2, 0)); got < 0.1 {
		t.Errorf("FT inside the first zero = %g, want well above zero", got)
	}

	// Radially symmetric: same value anywhere on the ring.
	a := p.FT()(0.3, 0.4)
	b := p.FT()(0.5, 0)
	if cmplxAbs(a-b) > 1e-12 {
		t.Errorf("response not radial: %v vs %v", a, b)
	}
}

func TestSquareRotation(t *testing.T) {
	size := 3.0

	t.Run("zero angle matches pixel", func(t *testing.T) {
		sq, err := Square(size, 0)
		if err != nil {
			t.Fatal(err)
		}
		px, err := Pixel(size)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range [][2]float64{{0.1, 0}, {0.2, -0.3}, {0.05, 0.45}} {
			a, b := sq.FT()(p[0], p[1]), px.FT()(p[0], p[1])
			if cmplxAbs(a-b) > 1e-15 {
				t.Errorf("FT(%g, %g): square %v vs pixel %v", p[0], p[1], a, b)
			}
		}
	})

	t.Run("45 degrees aligns with the diagonal", func(t *testing.T) {
		sq, err := Square(size, math.Pi/4)
		if err != nil {
			t.Fatal(err)
		}
		// On the diagonal one rotated coordinate carries everything and the
		// other vanishes.
		f := 0.3
		want := sinc(size * f * math.Sqrt2)
		if got := real(sq.FT()(f, f)); math.Abs(got-want) > 1e-12 {
			t.Errorf("FT(%g, %g) = %g, want %g", f, f, got, want)
		}
	})
}

func TestOLPFNull(t *testing.T) {
	sep := 4.4
	o, err := OLPF(sep)
	if err != nil {
		t.Fatal(err)
	}

	null := 1 / (2 * sep)
	if got := cmplxAbs(o.FT()(null, 0)); got > 1e-12 {
		t.Errorf("|FT| at the first null = %g", got)
	}
	if got := cmplxAbs(o.FT()(0, null)); got > 1e-12 {
		t.Errorf("|FT| at the first null on fy = %g", got)
	}
}

func TestGaussianIsotropy(t *testing.T) {
	g, err := Gaussian(0.5)
	if err != nil {
		t.Fatal(err)
	}

	a := g.FT()(0.6, 0.8)
	b := g.FT()(1, 0)
	if cmplxAbs(a-b) > 1e-12 {
		t.Errorf("response not radial: %v vs %v", a, b)
	}
	if real(g.FT()(0.5, 0)) <= real(g.FT()(1, 0)) {
		t.Error("response should decay with frequency")
	}
}

func TestCrossedSlitsMatchPixel(t *testing.T) {
	h, err := Slit(2, OrientationHorizontal)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Slit(2, OrientationVertical)
	if err != nil {
		t.Fatal(err)
	}
	px, err := Pixel(2)
	if err != nil {
		t.Fatal(err)
	}

	crossed := h.Combine(v)
	if err := crossed.Err(); err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]float64{{0.1, 0.2}, {-0.3, 0.15}, {0.4, -0.4}} {
		a, b := crossed.FT()(p[0], p[1]), px.FT()(p[0], p[1])
		if cmplxAbs(a-b) > 1e-15 {
			t.Errorf("FT(%g, %g): crossed %v vs pixel %v", p[0], p[1], a, b)
		}
	}
}

func TestGridHintsFlowThrough(t *testing.T) {
	p, err := Pixel(4.4, conv.WithSpacing(0.5))
	if err != nil {
		t.Fatal(err)
	}
	g := p.Grid()
	if !g.IsHint() || g.Spacing != 0.5 {
		t.Fatalf("grid = %+v, want 0.5 hint", g)
	}
}

func TestSiemensStar(t *testing.T) {
	g := grid.Grid{Spacing: 0.1, Samples: 65}
	s, err := SiemensStar(8, 2, g)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsSampled() || s.IsAnalytic() {
		t.Fatal("star targets are sampled only")
	}

	out := s.Samples()
	c := g.Samples / 2
	if got := real(out.At(c, c)); got != 1 {
		t.Errorf("center = %g, want 1", got)
	}

	var sum float64
	var inside int
	for y := range g.Samples {
		for x := range g.Samples {
			v := real(out.At(x, y))
			if v < 0 || v > 1 {
				t.Fatalf("sample (%d,%d) = %g outside 0..1", x, y, v)
			}
			r := math.Hypot(g.Coord(x), g.Coord(y))
			if r > 2 {
				if v != 0 {
					t.Fatalf("sample (%d,%d) outside the radius = %g, want 0", x, y, v)
				}
				continue
			}
			sum += v
			inside++
		}
	}

	// Sinusoidal spokes average one half over the disk.
	if mean := sum / float64(inside); math.Abs(mean-0.5) > 0.02 {
		t.Errorf("mean inside the radius = %g, want about 0.5", mean)
	}
}

func TestSiemensStarNeedsFullGrid(t *testing.T) {
	_, err := SiemensStar(8, 2, grid.Grid{Spacing: 0.1})
	if !errors.Is(err, grid.ErrInvalidGrid) {
		t.Fatalf("err = %v, want ErrInvalidGrid", err)
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		err  func() error
	}{
		{"slit width", func() error { _, err := Slit(0, OrientationHorizontal); return err }},
		{"pinhole diameter", func() error { _, err := Pinhole(-1); return err }},
		{"square size", func() error { _, err := Square(math.NaN(), 0); return err }},
		{"pixel pitch", func() error { _, err := Pixel(math.Inf(1)); return err }},
		{"olpf separation", func() error { _, err := OLPF(0); return err }},
		{"gaussian sigma", func() error { _, err := Gaussian(-0.1); return err }},
		{"star spokes", func() error {
			_, err := SiemensStar(0, 2, grid.Grid{Spacing: 0.1, Samples: 33})
			return err
		}},
		{"star radius", func() error {
			_, err := SiemensStar(8, 0, grid.Grid{Spacing: 0.1, Samples: 33})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err() == nil {
				t.Fatal("want an error")
			}
		})
	}
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
