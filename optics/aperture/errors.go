package aperture

import (
	"fmt"
	"math"
)

func validateDimension(name string, v float64) error {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("aperture %s must be positive and finite: %g", name, v)
	}
	return nil
}

func validateSpokes(n int) error {
	if n < 1 {
		return fmt.Errorf("aperture star needs at least one spoke: %d", n)
	}
	return nil
}
