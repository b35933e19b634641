package symexpr

import (
	"fmt"
	"math/big"
)

// opKind discriminates the node types of an expression tree.
type opKind int

const (
	opLit  opKind = iota // exact rational literal
	opVar                // free variable
	opPi                 // the constant π
	opE                  // the constant e
	opNeg                // -x
	opSqrt               // √x
	opLog                // ln x
	opAdd                // x + y
	opSub                // x − y
	opMul                // x × y
	opDiv                // x ÷ y
	opPow                // x^n, n an exact machine integer
)

// Expr is an immutable exact symbolic expression. Construct values with
// N, Q, FromRat, FromInt, Sym, Pi, E and combine them with Add, Sub, Mul,
// Div, Neg, Sqrt, Log and Pow. A nil *Expr is never valid.
//
// Expr implements core.Encloser and core.Simplifier; it deliberately does
// not implement core.Floorer/core.Ceiler, so symbolic values always take
// the adaptive refinement path.
type Expr struct {
	op   opKind
	rat  *big.Rat // opLit only; treated as read-only after construction
	name string   // opVar only
	x, y *Expr    // operands (y only for binary ops)
	n    int64    // opPow exponent
}

// N returns the exact integer literal n.
func N(n int64) *Expr {
	return &Expr{op: opLit, rat: new(big.Rat).SetInt64(n)}
}

// Q returns the exact rational literal p/q. Panics if q == 0.
func Q(p, q int64) *Expr {
	if q == 0 {
		panic("symexpr: rational literal with zero denominator")
	}
	return &Expr{op: opLit, rat: big.NewRat(p, q)}
}

// FromRat returns an exact literal holding a copy of r.
func FromRat(r *big.Rat) *Expr {
	return &Expr{op: opLit, rat: new(big.Rat).Set(r)}
}

// FromInt returns an exact literal holding a copy of n.
func FromInt(n *big.Int) *Expr {
	return &Expr{op: opLit, rat: new(big.Rat).SetInt(n)}
}

// Sym returns a free variable. Enclosing an expression that still contains
// a free variable fails with core.ErrNotEnclosable.
func Sym(name string) *Expr {
	return &Expr{op: opVar, name: name}
}

// Pi returns the constant π.
func Pi() *Expr { return &Expr{op: opPi} }

// E returns the constant e.
func E() *Expr { return &Expr{op: opE} }

// Neg returns −x.
func Neg(x *Expr) *Expr { return &Expr{op: opNeg, x: x} }

// Sqrt returns √x.
func Sqrt(x *Expr) *Expr { return &Expr{op: opSqrt, x: x} }

// Log returns the natural logarithm ln x.
func Log(x *Expr) *Expr { return &Expr{op: opLog, x: x} }

// Add returns x + y.
func Add(x, y *Expr) *Expr { return &Expr{op: opAdd, x: x, y: y} }

// Sub returns x − y.
func Sub(x, y *Expr) *Expr { return &Expr{op: opSub, x: x, y: y} }

// Mul returns x × y.
func Mul(x, y *Expr) *Expr { return &Expr{op: opMul, x: x, y: y} }

// Div returns x ÷ y.
func Div(x, y *Expr) *Expr { return &Expr{op: opDiv, x: x, y: y} }

// Pow returns x raised to the exact integer power n (n may be negative).
func Pow(x *Expr, n int64) *Expr { return &Expr{op: opPow, x: x, n: n} }

// Rat reports whether e is a plain rational literal, and if so returns a
// copy of its exact value.
func (e *Expr) Rat() (*big.Rat, bool) {
	if e.op != opLit {
		return nil, false
	}
	return new(big.Rat).Set(e.rat), true
}

// String renders the expression in plain infix notation.
func (e *Expr) String() string {
	switch e.op {
	case opLit:
		return e.rat.RatString()
	case opVar:
		return e.name
	case opPi:
		return "pi"
	case opE:
		return "e"
	case opNeg:
		return "-(" + e.x.String() + ")"
	case opSqrt:
		return "sqrt(" + e.x.String() + ")"
	case opLog:
		return "log(" + e.x.String() + ")"
	case opAdd:
		return "(" + e.x.String() + " + " + e.y.String() + ")"
	case opSub:
		return "(" + e.x.String() + " - " + e.y.String() + ")"
	case opMul:
		return "(" + e.x.String() + " * " + e.y.String() + ")"
	case opDiv:
		return "(" + e.x.String() + " / " + e.y.String() + ")"
	case opPow:
		return fmt.Sprintf("(%s)^%d", e.x.String(), e.n)
	default:
		return fmt.Sprintf("<bad op %d>", e.op)
	}
}

// equal reports structural equality of two expression trees.
// Used by simplification (x − x → 0); it is a syntactic check, not a
// semantic one.
func equal(a, b *Expr) bool {
	if a.op != b.op {
		return false
	}
	switch a.op {
	case opLit:
		return a.rat.Cmp(b.rat) == 0
	case opVar:
		return a.name == b.name
	case opPi, opE:
		return true
	case opNeg, opSqrt, opLog:
		return equal(a.x, b.x)
	case opPow:
		return a.n == b.n && equal(a.x, b.x)
	default: // binary
		return equal(a.x, b.x) && equal(a.y, b.y)
	}
}
