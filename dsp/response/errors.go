package response

import "errors"

var (
	// ErrEmptyCoefficients indicates an empty numerator or denominator.
	ErrEmptyCoefficients = errors.New("response: empty coefficient sequence")

	// ErrZeroDenominator indicates an all-zero denominator, which would
	// divide by zero at every evaluation point.
	ErrZeroDenominator = errors.New("response: denominator is entirely zero")

	// ErrEmptyFilter indicates a cascade or tap sequence with no content.
	ErrEmptyFilter = errors.New("response: empty filter")

	// ErrInvalidGridSize indicates a non-positive response grid size.
	ErrInvalidGridSize = errors.New("response: grid size must be positive")
)

func validateBA(b, a []float64) error {
	if len(b) == 0 || len(a) == 0 {
		return ErrEmptyCoefficients
	}

	for _, c := range a {
		if c != 0 {
			return nil
		}
	}

	return ErrZeroDenominator
}
