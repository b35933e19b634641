package core

import "errors"

var (
	// ErrNotEnclosable indicates that a value cannot be bounded by a numeric
	// interval at any precision — typically a symbolic expression that still
	// contains free variables. Callers are expected to recover from this
	// locally (propagate the value unevaluated) rather than treat it as a
	// hard failure.
	ErrNotEnclosable = errors.New("core: value has no numeric enclosure")
)
