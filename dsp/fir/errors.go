package fir

import "errors"

var (
	// ErrInvalidOrder indicates a filter order below the supported minimum.
	ErrInvalidOrder = errors.New("fir: order must be at least 4")

	// ErrOddOrder indicates an odd order where the band type requires a
	// Type I (even order, symmetric) design.
	ErrOddOrder = errors.New("fir: order must be even for this band type")

	// ErrInvalidCutoff indicates a band edge outside the open interval
	// (0, 1) in fractions of the Nyquist frequency.
	ErrInvalidCutoff = errors.New("fir: cutoff must lie in (0, 1)")

	// ErrBandEdgeOrder indicates band edges that are not strictly
	// increasing.
	ErrBandEdgeOrder = errors.New("fir: low cutoff must be below high cutoff")

	// ErrNegativeOrder indicates a negative Hilbert transformer order.
	ErrNegativeOrder = errors.New("fir: order must not be negative")
)

func validateOrder(order int) error {
	if order < 4 {
		return ErrInvalidOrder
	}

	return nil
}

func validateEvenOrder(order int) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	if order%2 != 0 {
		return ErrOddOrder
	}

	return nil
}

func validateCutoff(r float64) error {
	if r <= 0 || r >= 1 {
		return ErrInvalidCutoff
	}

	return nil
}

func validateBand(low, high float64) error {
	if err := validateCutoff(low); err != nil {
		return err
	}

	if err := validateCutoff(high); err != nil {
		return err
	}

	if low >= high {
		return ErrBandEdgeOrder
	}

	return nil
}
