package grid

import (
	"fmt"
	"math"
)

// roundSlack absorbs floating-point noise in the extent/spacing division so
// an exact integer ratio does not gain a spurious extra sample.
const roundSlack = 1e-9

// Union merges whatever grid information two descriptors pin: the finer of
// the pinned spacings and the larger of the pinned extents. Parts neither
// operand pins stay unpinned, so the result may be zero, a hint, or full.
//
// When both spacing and extent are pinned, the sample count becomes
// ceil(extent/spacing), rounded up to the next odd count. Odd counts keep a
// sample at exactly zero on both axes, so symmetric real operands stay
// symmetric after resampling and their spectra stay real. When one operand
// supplies both the finer spacing and the larger extent, its grid already
// is the merge and passes through unchanged, whatever its parity.
func Union(a, b Grid) (Grid, error) {
	if err := a.Validate(); err != nil {
		return Grid{}, err
	}
	if err := b.Validate(); err != nil {
		return Grid{}, err
	}

	spacing := 0.0
	for _, g := range [2]Grid{a, b} {
		if g.Spacing > 0 && (spacing == 0 || g.Spacing < spacing) {
			spacing = g.Spacing
		}
	}

	extent := 0.0
	for _, g := range [2]Grid{a, b} {
		if g.Samples > 0 && g.Extent() > extent {
			extent = g.Extent()
		}
	}

	if extent == 0 {
		return Grid{Spacing: spacing}, nil
	}

	// One operand covering the other needs no merge.
	if a.IsFull() && a.Spacing == spacing && a.Extent() == extent {
		return a, nil
	}
	if b.IsFull() && b.Spacing == spacing && b.Extent() == extent {
		return b, nil
	}

	samples := int(math.Ceil(extent/spacing - roundSlack))
	if samples < 1 {
		samples = 1
	}
	if samples%2 == 0 {
		samples++
	}
	return Grid{Spacing: spacing, Samples: samples}, nil
}

// Reconcile merges the grids of two convolution operands into the full grid
// their combination is computed on. It is Union with completeness required:
// operands that pin no spacing or no extent between them cannot be
// reconciled.
func Reconcile(a, b Grid) (Grid, error) {
	u, err := Union(a, b)
	if err != nil {
		return Grid{}, err
	}
	if !u.IsFull() {
		return Grid{}, fmt.Errorf("%w: operands pin spacing %g and %d samples, need both",
			ErrInvalidGrid, u.Spacing, u.Samples)
	}
	return u, nil
}
