package symexpr

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/exround/core"
)

// ErrNegativeSqrt indicates a square root whose argument is provably
// negative: the expression has no real value, so floor/ceiling is
// undefined for it.
var ErrNegativeSqrt = errors.New("symexpr: square root of a negative value")

// ErrNonPositiveLog indicates a logarithm whose argument is provably ≤ 0.
var ErrNonPositiveLog = errors.New("symexpr: logarithm of a non-positive value")

// guardBits is the extra working precision used when enclosing π and e,
// so that series truncation and rounding noise stay far below one output
// ulp before the final outward padding.
const guardBits = 64

// Enclose implements core.Encloser: it evaluates the expression in
// interval arithmetic at the requested precision and returns rigorous
// bounds lo ≤ e ≤ hi. Every big.Float operation rounds outward (toward
// −∞ for lower bounds, +∞ for upper bounds), so the bounds are proof, not
// estimate.
//
// Division by a sub-interval containing zero yields infinite bounds (an
// uninformative enclosure) rather than an error; free variables report
// core.ErrNotEnclosable.
func (e *Expr) Enclose(bits uint) (lo, hi *big.Float, err error) {
	if bits == 0 {
		bits = 1
	}
	iv, err := e.eval(bits)
	if err != nil {
		return nil, nil, err
	}
	return iv.lo, iv.hi, nil
}

// ival is an internal endpoint pair. Unbounded enclosures are represented
// as (−∞, +∞).
type ival struct {
	lo, hi *big.Float
}

func (iv ival) unbounded() bool {
	return iv.lo.IsInf() || iv.hi.IsInf()
}

// down and up allocate fresh floats with outward rounding modes.
func down(bits uint) *big.Float {
	return new(big.Float).SetPrec(bits).SetMode(big.ToNegativeInf)
}

func up(bits uint) *big.Float {
	return new(big.Float).SetPrec(bits).SetMode(big.ToPositiveInf)
}

// whole is the uninformative enclosure (−∞, +∞).
func whole(bits uint) ival {
	return ival{
		lo: new(big.Float).SetPrec(bits).SetInf(true),
		hi: new(big.Float).SetPrec(bits).SetInf(false),
	}
}

// eval recursively computes the enclosure of e at the given precision.
func (e *Expr) eval(bits uint) (ival, error) {
	switch e.op {
	case opLit:
		return ival{
			lo: down(bits).SetRat(e.rat),
			hi: up(bits).SetRat(e.rat),
		}, nil

	case opVar:
		return ival{}, fmt.Errorf("symexpr: free variable %q: %w", e.name, core.ErrNotEnclosable)

	case opPi:
		return enclosePi(bits), nil

	case opE:
		return encloseE(bits), nil

	case opNeg:
		x, err := e.x.eval(bits)
		if err != nil {
			return ival{}, err
		}
		if x.unbounded() {
			return whole(bits), nil
		}
		// Negation is exact; endpoints swap.
		return ival{
			lo: new(big.Float).SetPrec(bits).Neg(x.hi),
			hi: new(big.Float).SetPrec(bits).Neg(x.lo),
		}, nil

	case opSqrt:
		return e.evalSqrt(bits)

	case opLog:
		return e.evalLog(bits)

	case opAdd:
		x, y, err := e.evalOperands(bits)
		if err != nil {
			return ival{}, err
		}
		if x.unbounded() || y.unbounded() {
			return whole(bits), nil
		}
		return ival{
			lo: down(bits).Add(x.lo, y.lo),
			hi: up(bits).Add(x.hi, y.hi),
		}, nil

	case opSub:
		x, y, err := e.evalOperands(bits)
		if err != nil {
			return ival{}, err
		}
		if x.unbounded() || y.unbounded() {
			return whole(bits), nil
		}
		return ival{
			lo: down(bits).Sub(x.lo, y.hi),
			hi: up(bits).Sub(x.hi, y.lo),
		}, nil

	case opMul:
		x, y, err := e.evalOperands(bits)
		if err != nil {
			return ival{}, err
		}
		return mulIval(x, y, bits), nil

	case opDiv:
		x, y, err := e.evalOperands(bits)
		if err != nil {
			return ival{}, err
		}
		return divIval(x, y, bits), nil

	case opPow:
		x, err := e.x.eval(bits)
		if err != nil {
			return ival{}, err
		}
		return powIval(x, e.n, bits), nil

	default:
		return ival{}, fmt.Errorf("symexpr: cannot enclose op %d", e.op)
	}
}

// evalOperands evaluates both operands of a binary node.
func (e *Expr) evalOperands(bits uint) (ival, ival, error) {
	x, err := e.x.eval(bits)
	if err != nil {
		return ival{}, ival{}, err
	}
	y, err := e.y.eval(bits)
	if err != nil {
		return ival{}, ival{}, err
	}
	return x, y, nil
}

func (e *Expr) evalSqrt(bits uint) (ival, error) {
	x, err := e.x.eval(bits)
	if err != nil {
		return ival{}, err
	}
	if x.unbounded() {
		return whole(bits), nil
	}
	if x.hi.Sign() < 0 {
		return ival{}, fmt.Errorf("%w: %s", ErrNegativeSqrt, e.String())
	}
	l := x.lo
	if l.Sign() < 0 {
		// The true value is real only if it is ≥ 0; clamp the bound.
		l = new(big.Float).SetPrec(bits)
	}
	return ival{
		lo: down(bits).Sqrt(l),
		hi: up(bits).Sqrt(x.hi),
	}, nil
}

func (e *Expr) evalLog(bits uint) (ival, error) {
	x, err := e.x.eval(bits)
	if err != nil {
		return ival{}, err
	}
	if x.unbounded() {
		return whole(bits), nil
	}
	if x.hi.Sign() <= 0 {
		return ival{}, fmt.Errorf("%w: %s", ErrNonPositiveLog, e.String())
	}
	if x.lo.Sign() <= 0 {
		// The argument's enclosure reaches down to (or below) zero, where
		// the logarithm is unbounded; report no information and let the
		// precision escalation separate the argument from zero first.
		return whole(bits), nil
	}
	wp := bits + guardBits
	lo := logApprox(x.lo, wp)
	hi := logApprox(x.hi, wp)
	eps := new(big.Float).SetMantExp(
		new(big.Float).SetInt64(1),
		-(int(bits) + 8),
	)
	// ln is increasing, so the endpoint images bound the image interval.
	return ival{
		lo: down(bits).Sub(lo, eps),
		hi: up(bits).Add(hi, eps),
	}, nil
}

// logApprox computes ln x for x > 0 at working precision wp, with total
// error far below the caller's outward padding: the argument is reduced to
// the mantissa
// m ∈ [0.5, 1) and the exponent, ln x = exp·ln2 + ln m, and ln m is summed
// by the atanh series 2·Σ z^(2k+1)/(2k+1) with z = (m−1)/(m+1) ∈ (−1/3, 0],
// which gains more than three bits per term.
func logApprox(x *big.Float, wp uint) *big.Float {
	mant := new(big.Float).SetPrec(wp)
	exp := x.MantExp(mant)

	one := new(big.Float).SetPrec(wp).SetInt64(1)
	num := new(big.Float).SetPrec(wp).Sub(mant, one)
	den := new(big.Float).SetPrec(wp).Add(mant, one)
	z := new(big.Float).SetPrec(wp).Quo(num, den)

	res := atanhSmall(z, wp)
	res.Add(res, res) // ln m = 2·atanh(z)

	if exp != 0 {
		ln2 := ln2At(wp)
		t := new(big.Float).SetPrec(wp).Mul(ln2, new(big.Float).SetInt64(int64(exp)))
		res.Add(res, t)
	}
	return res
}

// atanhSmall sums atanh(z) = Σ z^(2k+1)/(2k+1) for |z| < 1/2.
func atanhSmall(z *big.Float, wp uint) *big.Float {
	sum := new(big.Float).SetPrec(wp)
	if z.Sign() == 0 {
		return sum
	}
	zsq := new(big.Float).SetPrec(wp).Mul(z, z)
	pow := new(big.Float).SetPrec(wp).Set(z) // z^(2k+1)
	term := new(big.Float).SetPrec(wp)
	kf := new(big.Float).SetPrec(wp)
	var k int64
	for k = 0; ; k++ {
		kf.SetInt64(2*k + 1)
		term.Quo(pow, kf)
		if term.MantExp(nil) <= -int(wp) {
			break
		}
		sum.Add(sum, term)
		pow.Mul(pow, zsq)
	}
	return sum
}

// ln2At computes ln 2 = 2·atanh(1/3) at working precision wp.
func ln2At(wp uint) *big.Float {
	third := new(big.Float).SetPrec(wp).Quo(
		new(big.Float).SetInt64(1),
		new(big.Float).SetInt64(3),
	)
	l := atanhSmall(third, wp)
	return l.Add(l, l)
}

// mulIval multiplies two enclosures: the product interval is spanned by
// the four endpoint products, each computed with outward rounding.
func mulIval(x, y ival, bits uint) ival {
	if x.unbounded() || y.unbounded() {
		return whole(bits)
	}
	lo := minOf(
		down(bits).Mul(x.lo, y.lo),
		down(bits).Mul(x.lo, y.hi),
		down(bits).Mul(x.hi, y.lo),
		down(bits).Mul(x.hi, y.hi),
	)
	hi := maxOf(
		up(bits).Mul(x.lo, y.lo),
		up(bits).Mul(x.lo, y.hi),
		up(bits).Mul(x.hi, y.lo),
		up(bits).Mul(x.hi, y.hi),
	)
	return ival{lo: lo, hi: hi}
}

// divIval divides two enclosures. A denominator interval containing zero
// produces the uninformative enclosure: the caller's precision-escalation
// loop deals with it.
func divIval(x, y ival, bits uint) ival {
	if x.unbounded() || y.unbounded() {
		return whole(bits)
	}
	if y.lo.Sign() <= 0 && y.hi.Sign() >= 0 {
		return whole(bits)
	}
	lo := minOf(
		down(bits).Quo(x.lo, y.lo),
		down(bits).Quo(x.lo, y.hi),
		down(bits).Quo(x.hi, y.lo),
		down(bits).Quo(x.hi, y.hi),
	)
	hi := maxOf(
		up(bits).Quo(x.lo, y.lo),
		up(bits).Quo(x.lo, y.hi),
		up(bits).Quo(x.hi, y.lo),
		up(bits).Quo(x.hi, y.hi),
	)
	return ival{lo: lo, hi: hi}
}

// powIval raises an enclosure to an exact integer power by
// square-and-multiply over interval products. Negative exponents go
// through the reciprocal.
func powIval(x ival, n int64, bits uint) ival {
	if n == 0 {
		one := new(big.Float).SetPrec(bits).SetInt64(1)
		return ival{lo: one, hi: new(big.Float).SetPrec(bits).SetInt64(1)}
	}
	if n < 0 {
		p := powIval(x, -n, bits)
		one := ival{
			lo: new(big.Float).SetPrec(bits).SetInt64(1),
			hi: new(big.Float).SetPrec(bits).SetInt64(1),
		}
		return divIval(one, p, bits)
	}
	if x.unbounded() {
		return whole(bits)
	}
	// Square-and-multiply; repeated interval products may overestimate for
	// even powers of sign-mixed intervals, but remain valid enclosures.
	acc := ival{
		lo: new(big.Float).SetPrec(bits).SetInt64(1),
		hi: new(big.Float).SetPrec(bits).SetInt64(1),
	}
	base := x
	var k int64
	for k = n; k > 0; k >>= 1 {
		if k&1 == 1 {
			acc = mulIval(acc, base, bits)
		}
		if k > 1 {
			base = mulIval(base, base, bits)
		}
	}
	return acc
}

// minOf returns the smallest of the given floats.
func minOf(fs ...*big.Float) *big.Float {
	m := fs[0]
	var i int
	for i = 1; i < len(fs); i++ {
		if fs[i].Cmp(m) < 0 {
			m = fs[i]
		}
	}
	return m
}

// maxOf returns the largest of the given floats.
func maxOf(fs ...*big.Float) *big.Float {
	m := fs[0]
	var i int
	for i = 1; i < len(fs); i++ {
		if fs[i].Cmp(m) > 0 {
			m = fs[i]
		}
	}
	return m
}

// enclosePi encloses π via Machin's formula,
// π = 16·atan(1/5) − 4·atan(1/239), computed with guard bits and padded
// outward by more than the combined truncation and rounding error.
func enclosePi(bits uint) ival {
	wp := bits + guardBits
	a5 := atanInv(5, wp)
	a239 := atanInv(239, wp)
	pi := new(big.Float).SetPrec(wp)
	t16 := new(big.Float).SetPrec(wp).Mul(new(big.Float).SetInt64(16), a5)
	t4 := new(big.Float).SetPrec(wp).Mul(new(big.Float).SetInt64(4), a239)
	pi.Sub(t16, t4)
	return padOut(pi, bits)
}

// encloseE encloses e via the exponential series Σ 1/k!.
func encloseE(bits uint) ival {
	wp := bits + guardBits
	sum := new(big.Float).SetPrec(wp).SetInt64(1) // k = 0 term
	term := new(big.Float).SetPrec(wp).SetInt64(1)
	kf := new(big.Float).SetPrec(wp)
	var k int64
	for k = 1; ; k++ {
		kf.SetInt64(k)
		term.Quo(term, kf)
		if term.MantExp(nil) <= -int(wp) {
			break
		}
		sum.Add(sum, term)
	}
	return padOut(sum, bits)
}

// atanInv computes atan(1/n) at working precision wp by the alternating
// Taylor series; the truncation error is below the first omitted term.
func atanInv(n int64, wp uint) *big.Float {
	sum := new(big.Float).SetPrec(wp)
	nsq := new(big.Int).Mul(big.NewInt(n), big.NewInt(n))
	pow := big.NewInt(n) // n^(2k+1)
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	term := new(big.Float).SetPrec(wp)
	denom := new(big.Float).SetPrec(wp)
	scratch := new(big.Int)
	var k int64
	for k = 0; ; k++ {
		scratch.Mul(pow, big.NewInt(2*k+1))
		denom.SetInt(scratch)
		term.Quo(one, denom)
		if term.MantExp(nil) <= -int(wp) {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		pow.Mul(pow, nsq)
	}
	return sum
}

// padOut widens a guard-precision approximation into a rigorous enclosure
// at the output precision: the accumulated series and rounding error is
// far below 2^-(bits+8), so padding by that amount on both sides is
// sound, and the resulting diameter still scales as 2^-bits.
func padOut(x *big.Float, bits uint) ival {
	eps := new(big.Float).SetMantExp(
		new(big.Float).SetInt64(1),
		-(int(bits) + 8),
	)
	return ival{
		lo: down(bits).Sub(x, eps),
		hi: up(bits).Add(x, eps),
	}
}
