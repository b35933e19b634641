package round

import "errors"

var (
	// ErrDomain indicates the input is infinite, NaN, or complex with a
	// nonzero imaginary part: floor/ceiling is undefined for it. Reported
	// immediately, no refinement is attempted.
	ErrDomain = errors.New("round: floor/ceil undefined for this value")

	// ErrPrecisionExhausted indicates the attempt budget ran out before the
	// interval endpoints agreed. The wrapping error names the bit precision
	// reached, so the caller can retry with an explicitly larger WithBits.
	ErrPrecisionExhausted = errors.New("round: attempt budget exhausted")

	// ErrBadMethod indicates a Method value other than MethodFloor or
	// MethodCeil was passed to Eval.
	ErrBadMethod = errors.New("round: method must be MethodFloor or MethodCeil")

	// ErrBadAttempts indicates a non-positive attempt budget.
	ErrBadAttempts = errors.New("round: Attempts must be positive")

	// ErrNilProvider indicates the enclosure provider was set to nil.
	ErrNilProvider = errors.New("round: Provider must be non-nil")
)
