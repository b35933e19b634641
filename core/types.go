package core

import (
	"math"
	"math/big"
)

// Floorer is implemented by values that can produce their own exact floor
// without adaptive refinement (exact rationals, decimals, big integers).
//
// Floor must return a freshly allocated *big.Int; the receiver is not
// modified.
type Floorer interface {
	Floor() *big.Int
}

// Ceiler is the ceiling counterpart of Floorer.
//
// Ceil must return a freshly allocated *big.Int; the receiver is not
// modified.
type Ceiler interface {
	Ceil() *big.Int
}

// Encloser is implemented by values that can bound themselves between two
// *big.Float endpoints at a requested working precision.
//
// Enclose must guarantee lo ≤ v ≤ hi for the true value v, with both
// endpoints carrying the requested number of mantissa bits. Endpoints may
// be infinite when no finite bound can be produced at this precision (for
// example, division by an interval containing zero). When the value is not
// numerically convertible at all — it still contains free variables — the
// returned error must wrap ErrNotEnclosable.
//
// Enclose must be deterministic: identical receiver and bits always yield
// identical endpoints.
type Encloser interface {
	Enclose(bits uint) (lo, hi *big.Float, err error)
}

// Simplifier is implemented by enclosable values that additionally support
// full algebraic simplification with radical canonicalization.
//
// FullSimplify returns a new, equivalent value; the receiver is left
// untouched, and applying FullSimplify to the result again must be a no-op
// (idempotence). The adaptive controller invokes it at most once per call,
// to resolve values that are non-obvious exact integers.
type Simplifier interface {
	Encloser
	FullSimplify() Encloser
}

// Vector is a bulk numeric array. Floor and Ceil apply element-wise and
// keep the native float64 type: in the bulk regime values are already
// approximate, so converting to exact integers would promise an exactness
// the data does not have. Non-finite elements pass through under the usual
// IEEE rules (Floor(NaN) = NaN, Floor(±Inf) = ±Inf).
type Vector []float64

// Floor returns a new Vector with math.Floor applied to every element.
// The receiver is not modified.
func (v Vector) Floor() Vector {
	out := make(Vector, len(v)) // same shape as the input
	var i int
	for i = range v {
		out[i] = math.Floor(v[i])
	}
	return out
}

// Ceil returns a new Vector with math.Ceil applied to every element.
// The receiver is not modified.
func (v Vector) Ceil() Vector {
	out := make(Vector, len(v))
	var i int
	for i = range v {
		out[i] = math.Ceil(v[i])
	}
	return out
}

// RatFloor returns ⌊r⌋ as a new *big.Int.
//
// big.Rat keeps its denominator strictly positive, so Euclidean division
// of the numerator by the denominator is exactly floor division.
func RatFloor(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return q
}

// RatCeil returns ⌈r⌉ as a new *big.Int.
func RatCeil(r *big.Rat) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	if m.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
