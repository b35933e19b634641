package interval

import (
	"math/big"
)

// Interval is a guaranteed enclosure [lo, hi] of a real value: the true
// value is provably contained between the two bounds. Intervals are
// produced fresh by a Provider and never mutated afterwards; every method
// returning a *big.Float or a new Interval allocates.
//
// Either bound may be infinite, in which case the interval carries no
// usable information (see Unbounded).
type Interval struct {
	lo *big.Float
	hi *big.Float
}

// New constructs an interval from explicit bounds.
// Returns ErrInvertedBounds if lo > hi.
func New(lo, hi *big.Float) (Interval, error) {
	if lo.Cmp(hi) > 0 {
		return Interval{}, ErrInvertedBounds
	}
	return Interval{lo: lo, hi: hi}, nil
}

// Point constructs the degenerate interval [x, x].
func Point(x *big.Float) Interval {
	return Interval{lo: x, hi: x}
}

// Whole constructs the uninformative interval (−∞, +∞) at the given
// working precision.
func Whole(bits uint) Interval {
	return Interval{
		lo: new(big.Float).SetPrec(bits).SetInf(true),
		hi: new(big.Float).SetPrec(bits).SetInf(false),
	}
}

// Lower returns a copy of the lower bound.
func (iv Interval) Lower() *big.Float {
	return new(big.Float).Copy(iv.lo)
}

// Upper returns a copy of the upper bound.
func (iv Interval) Upper() *big.Float {
	return new(big.Float).Copy(iv.hi)
}

// Unbounded reports whether either bound is infinite, i.e. the enclosure
// could not be bounded and carries no information about the value.
func (iv Interval) Unbounded() bool {
	return iv.lo.IsInf() || iv.hi.IsInf()
}

// AbsDiameter returns the width (upper − lower) of the interval, rounded
// upward so the result is itself an upper bound on the true width.
// The diameter is always ≥ 0; it is +∞ for unbounded intervals.
func (iv Interval) AbsDiameter() *big.Float {
	prec := iv.lo.Prec()
	if p := iv.hi.Prec(); p > prec {
		prec = p
	}
	if prec == 0 {
		prec = 1 // degenerate zero-value endpoints
	}
	if iv.Unbounded() {
		return new(big.Float).SetPrec(prec).SetInf(false)
	}
	return new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf).Sub(iv.hi, iv.lo)
}

// SubInt returns the interval translated down by the exact integer n:
// an enclosure of (x − n) for any x enclosed by iv. The subtraction is
// performed exactly (at sufficient precision), so the diameter is
// preserved bit for bit — this is the guess re-centering primitive of the
// adaptive controller.
func (iv Interval) SubInt(n *big.Int) Interval {
	if n.Sign() == 0 {
		return iv
	}
	prec := subPrec(iv.lo, n)
	if p := subPrec(iv.hi, n); p > prec {
		prec = p
	}
	nf := new(big.Float).SetPrec(prec).SetInt(n)
	return Interval{
		lo: new(big.Float).SetPrec(prec).Sub(iv.lo, nf),
		hi: new(big.Float).SetPrec(prec).Sub(iv.hi, nf),
	}
}

// subPrec returns a mantissa width at which f − n is exact: it spans from
// above the larger of the two leading bits down to f's least significant
// bit (or the units place, whichever is lower).
func subPrec(f *big.Float, n *big.Int) uint {
	hiBit := n.BitLen() + 1 // +1 absorbs a carry out of the subtraction
	if f.IsInf() || f.Sign() == 0 {
		return uint(hiBit)
	}
	ex := f.MantExp(nil)
	if ex+1 > hiBit {
		hiBit = ex + 1
	}
	loBit := ex - int(f.Prec())
	if loBit > 0 {
		loBit = 0
	}
	return uint(hiBit - loBit)
}

// Floor returns ⌊x⌋ of a finite *big.Float as a new exact *big.Int.
func Floor(x *big.Float) *big.Int {
	if x.IsInf() {
		panic("interval: Floor of infinite value")
	}
	n, acc := x.Int(nil)
	// Int truncates toward zero; Above means the truncation landed above x,
	// which happens exactly for negative non-integers.
	if acc == big.Above {
		n.Sub(n, intOne)
	}
	return n
}

// Ceil returns ⌈x⌉ of a finite *big.Float as a new exact *big.Int.
func Ceil(x *big.Float) *big.Int {
	if x.IsInf() {
		panic("interval: Ceil of infinite value")
	}
	n, acc := x.Int(nil)
	if acc == big.Below {
		n.Add(n, intOne)
	}
	return n
}

// intOne is the shared constant 1; never mutated.
var intOne = big.NewInt(1)
