package window

import (
	"fmt"
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}

	return nil
}

func validateKaiser(size int, beta float64) error {
	if err := validateLength(size); err != nil {
		return err
	}

	if beta < 0 {
		return fmt.Errorf("window: kaiser beta must be >= 0: %g", beta)
	}

	if beta > MaxKaiserBeta {
		return fmt.Errorf("window: kaiser beta too large for a stable window: %g", beta)
	}

	return nil
}
