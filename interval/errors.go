package interval

import "errors"

var (
	// ErrZeroPrecision indicates an enclosure was requested at 0 bits of
	// working precision, which cannot represent any value.
	ErrZeroPrecision = errors.New("interval: precision must be at least 1 bit")

	// ErrInvertedBounds indicates an attempt to construct an interval whose
	// lower bound exceeds its upper bound.
	ErrInvertedBounds = errors.New("interval: lower bound exceeds upper bound")

	// ErrNotFinite indicates a native float input that is NaN and therefore
	// has no interval enclosure at any precision.
	ErrNotFinite = errors.New("interval: NaN has no enclosure")
)
