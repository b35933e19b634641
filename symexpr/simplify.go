package symexpr

import (
	"math/big"

	"github.com/katalvlaran/exround/core"
)

// FullSimplify implements core.Simplifier: exact constant folding plus
// radical canonicalization. The receiver is left untouched and the result
// is a fixed point (simplifying it again changes nothing).
//
// This is the collaborator the adaptive controller calls at most once per
// floor/ceiling computation, to unmask values that are non-obvious exact
// integers (√2·√2, nested rational arithmetic, …) which pure precision
// escalation can never resolve.
func (e *Expr) FullSimplify() core.Encloser {
	return e.Simplify()
}

// Simplify returns a canonicalized copy of the expression. Applied rules:
//
//   - exact rational folding of +, −, ×, ÷, negation and integer powers
//   - identities x+0, x−0, x·1, x·0, x/1, x⁰, x¹
//   - x − x → 0 for structurally equal operands
//   - radicals: √a·√a → a (via √a·√b → √(ab)), (√a)²ᵏ → aᵏ,
//     and √(p²/q²) → p/q for perfect-square rationals
//   - logarithms: ln 1 → 0, ln e → 1
//
// Simplify never evaluates numerically and never loses exactness.
func (e *Expr) Simplify() *Expr {
	switch e.op {
	case opLit, opVar, opPi, opE:
		return e

	case opNeg:
		x := e.x.Simplify()
		if x.op == opLit {
			return &Expr{op: opLit, rat: new(big.Rat).Neg(x.rat)}
		}
		if x.op == opNeg { // −(−y) → y
			return x.x
		}
		return &Expr{op: opNeg, x: x}

	case opSqrt:
		return simplifySqrt(e.x.Simplify())

	case opLog:
		x := e.x.Simplify()
		if isOne(x) {
			return N(0)
		}
		if x.op == opE {
			return N(1)
		}
		return &Expr{op: opLog, x: x}

	case opAdd:
		x, y := e.x.Simplify(), e.y.Simplify()
		if x.op == opLit && y.op == opLit {
			return &Expr{op: opLit, rat: new(big.Rat).Add(x.rat, y.rat)}
		}
		if isZero(x) {
			return y
		}
		if isZero(y) {
			return x
		}
		return &Expr{op: opAdd, x: x, y: y}

	case opSub:
		x, y := e.x.Simplify(), e.y.Simplify()
		if x.op == opLit && y.op == opLit {
			return &Expr{op: opLit, rat: new(big.Rat).Sub(x.rat, y.rat)}
		}
		if isZero(y) {
			return x
		}
		if equal(x, y) {
			return N(0)
		}
		return &Expr{op: opSub, x: x, y: y}

	case opMul:
		x, y := e.x.Simplify(), e.y.Simplify()
		if x.op == opLit && y.op == opLit {
			return &Expr{op: opLit, rat: new(big.Rat).Mul(x.rat, y.rat)}
		}
		if isZero(x) || isZero(y) {
			return N(0)
		}
		if isOne(x) {
			return y
		}
		if isOne(y) {
			return x
		}
		if x.op == opSqrt && y.op == opSqrt {
			// √a·√b → √(ab); folds √a·√a all the way to a.
			return simplifySqrt((&Expr{op: opMul, x: x.x, y: y.x}).Simplify())
		}
		return &Expr{op: opMul, x: x, y: y}

	case opDiv:
		x, y := e.x.Simplify(), e.y.Simplify()
		if x.op == opLit && y.op == opLit && y.rat.Sign() != 0 {
			return &Expr{op: opLit, rat: new(big.Rat).Quo(x.rat, y.rat)}
		}
		if isOne(y) {
			return x
		}
		return &Expr{op: opDiv, x: x, y: y}

	case opPow:
		x := e.x.Simplify()
		if e.n == 0 {
			return N(1)
		}
		if e.n == 1 {
			return x
		}
		if x.op == opLit {
			if r, ok := ratPow(x.rat, e.n); ok {
				return &Expr{op: opLit, rat: r}
			}
			return &Expr{op: opPow, x: x, n: e.n}
		}
		if x.op == opSqrt && e.n%2 == 0 {
			// (√a)²ᵏ → aᵏ
			return (&Expr{op: opPow, x: x.x, n: e.n / 2}).Simplify()
		}
		return &Expr{op: opPow, x: x, n: e.n}

	default:
		return e
	}
}

// simplifySqrt canonicalizes √x for an already-simplified operand.
func simplifySqrt(x *Expr) *Expr {
	if x.op == opLit && x.rat.Sign() >= 0 {
		if r, ok := ratSqrt(x.rat); ok {
			return &Expr{op: opLit, rat: r}
		}
	}
	if x.op == opPow && x.n%2 == 0 && x.n > 0 {
		// √(a²ᵏ) = |a|ᵏ; only safe without the absolute value when the
		// inner power is itself even or the operand is a nonneg literal.
		if x.n%4 == 0 || (x.x.op == opLit && x.x.rat.Sign() >= 0) {
			return (&Expr{op: opPow, x: x.x, n: x.n / 2}).Simplify()
		}
	}
	return &Expr{op: opSqrt, x: x}
}

func isZero(e *Expr) bool { return e.op == opLit && e.rat.Sign() == 0 }

func isOne(e *Expr) bool {
	return e.op == opLit && e.rat.Cmp(ratOne) == 0
}

var ratOne = big.NewRat(1, 1)

// ratPow computes r^n exactly. Reports ok=false for 0 raised to a
// negative power.
func ratPow(r *big.Rat, n int64) (*big.Rat, bool) {
	if n < 0 {
		if r.Sign() == 0 {
			return nil, false
		}
		inv, _ := ratPow(r, -n)
		return inv.Inv(inv), true
	}
	out := big.NewRat(1, 1)
	base := new(big.Rat).Set(r)
	var k int64
	for k = n; k > 0; k >>= 1 {
		if k&1 == 1 {
			out.Mul(out, base)
		}
		if k > 1 {
			base.Mul(base, base)
		}
	}
	return out, true
}

// ratSqrt returns the exact square root of a nonnegative rational, when
// both numerator and denominator are perfect squares.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	num, ok := intSqrt(r.Num())
	if !ok {
		return nil, false
	}
	den, ok := intSqrt(r.Denom())
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

// intSqrt returns √n when n is a perfect square.
func intSqrt(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	s := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(s, s).Cmp(n) != 0 {
		return nil, false
	}
	return s, true
}
