package iir

import (
	"errors"
)

// Invalid-argument errors. Deterministic for the same inputs; they indicate
// a usage error, not an ill-conditioned design.
var (
	ErrInvalidOrder      = errors.New("iir: order must be at least 1")
	ErrInvalidRipple     = errors.New("iir: ripple must be positive")
	ErrInvalidCutoff     = errors.New("iir: invalid critical frequency")
	ErrInvalidBandwidth  = errors.New("iir: invalid bandwidth")
	ErrInvalidSampleRate = errors.New("iir: sample rate must be positive")
	ErrEmptyFilter       = errors.New("iir: filter has no zeros or poles")
	ErrZeroExcess        = errors.New("iir: number of zeros exceeds number of poles")
	ErrCountMismatch     = errors.New("iir: zero count must equal pole count")
	ErrNoPoles           = errors.New("iir: filter must have at least one pole")
	ErrEmptyCoefficients = errors.New("iir: coefficient sequence is empty")
	ErrZeroLeadingCoeff  = errors.New("iir: leading coefficient is zero")
	ErrUnknownBand       = errors.New("iir: unknown band type")
	ErrUnknownPrototype  = errors.New("iir: unknown prototype family")
	ErrFrequencyCount    = errors.New("iir: wrong number of critical frequencies for band")
	ErrFrequencyOrder    = errors.New("iir: low critical frequency must be below high")
)

// ErrUnpairedRoot indicates a numerical degeneracy: the roots of a
// real-coefficient design could not be grouped into conjugate pairs within
// tolerance. It is distinct from the invalid-argument errors because it
// signals an ill-conditioned design rather than bad input.
var ErrUnpairedRoot = errors.New("iir: unable to pair roots into conjugate sections")
