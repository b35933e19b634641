// Package symexpr_test verifies expression construction, rendering and
// the simplification rules.
package symexpr_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/exround/symexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestString renders a few representative trees.
func TestString(t *testing.T) {
	assert.Equal(t, "1/3", symexpr.Q(1, 3).String())
	assert.Equal(t, "-7", symexpr.N(-7).String())
	assert.Equal(t, "pi", symexpr.Pi().String())
	assert.Equal(t, "(sqrt(2) * sqrt(2))",
		symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(2))).String())
	assert.Equal(t, "(x + 1)", symexpr.Add(symexpr.Sym("x"), symexpr.N(1)).String())
	assert.Equal(t, "(10)^50", symexpr.Pow(symexpr.N(10), 50).String())
}

// TestQ_PanicsOnZeroDenominator documents the literal precondition.
func TestQ_PanicsOnZeroDenominator(t *testing.T) {
	assert.Panics(t, func() { symexpr.Q(1, 0) })
}

// ratOf extracts the exact rational of a literal result, failing the test
// otherwise.
func ratOf(t *testing.T, e *symexpr.Expr) *big.Rat {
	t.Helper()
	r, ok := e.Rat()
	require.True(t, ok, "expected a rational literal, got %s", e)
	return r
}

// TestSimplify_ConstantFolding checks exact rational folding through all
// arithmetic nodes.
func TestSimplify_ConstantFolding(t *testing.T) {
	// (1/3) * 3 → 1
	e := symexpr.Mul(symexpr.Q(1, 3), symexpr.N(3)).Simplify()
	assert.Zero(t, ratOf(t, e).Cmp(big.NewRat(1, 1)))

	// 10^50 + 2^-50 folds into a single exact rational.
	sum := symexpr.Add(
		symexpr.Pow(symexpr.N(10), 50),
		symexpr.Pow(symexpr.N(2), -50),
	).Simplify()
	r := ratOf(t, sum)
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 50)))
	assert.True(t, scaled.IsInt(), "10^50 + 2^-50 scaled by 2^50 is integral")

	// (2/3 - 1/6) / (1/2) → 1
	q := symexpr.Div(symexpr.Sub(symexpr.Q(2, 3), symexpr.Q(1, 6)), symexpr.Q(1, 2)).Simplify()
	assert.Zero(t, ratOf(t, q).Cmp(big.NewRat(1, 1)))
}

// TestSimplify_Radicals checks radical canonicalization: the rules that
// unmask non-obvious exact integers.
func TestSimplify_Radicals(t *testing.T) {
	two := symexpr.N(2)

	// √2 · √2 → 2
	e := symexpr.Mul(symexpr.Sqrt(two), symexpr.Sqrt(two)).Simplify()
	assert.Zero(t, ratOf(t, e).Cmp(big.NewRat(2, 1)))

	// √(9/4) → 3/2
	e = symexpr.Sqrt(symexpr.Q(9, 4)).Simplify()
	assert.Zero(t, ratOf(t, e).Cmp(big.NewRat(3, 2)))

	// (√5)⁴ → 25
	e = symexpr.Pow(symexpr.Sqrt(symexpr.N(5)), 4).Simplify()
	assert.Zero(t, ratOf(t, e).Cmp(big.NewRat(25, 1)))

	// √2 · √3 stays irrational, as √6
	e = symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(3))).Simplify()
	assert.Equal(t, "sqrt(6)", e.String())

	// √2·√3·√5 − √30 → 0 (nested radical product cancels)
	e = symexpr.Sub(
		symexpr.Mul(symexpr.Sqrt(symexpr.N(2)),
			symexpr.Mul(symexpr.Sqrt(symexpr.N(3)), symexpr.Sqrt(symexpr.N(5)))),
		symexpr.Sqrt(symexpr.N(30)),
	).Simplify()
	assert.Zero(t, ratOf(t, e).Cmp(new(big.Rat)))
}

// TestSimplify_Identities checks the algebraic identity rules.
func TestSimplify_Identities(t *testing.T) {
	x := symexpr.Sym("x")

	assert.Equal(t, "x", symexpr.Add(x, symexpr.N(0)).Simplify().String())
	assert.Equal(t, "x", symexpr.Mul(symexpr.N(1), x).Simplify().String())
	assert.Equal(t, "0", symexpr.Mul(x, symexpr.N(0)).Simplify().String())
	assert.Equal(t, "x", symexpr.Div(x, symexpr.N(1)).Simplify().String())
	assert.Equal(t, "0", symexpr.Sub(x, x).Simplify().String(), "x - x cancels structurally")
	assert.Equal(t, "x", symexpr.Neg(symexpr.Neg(x)).Simplify().String(), "double negation")
	assert.Equal(t, "1", symexpr.Pow(x, 0).Simplify().String())
	assert.Equal(t, "x", symexpr.Pow(x, 1).Simplify().String())
}

// TestSimplify_Idempotent verifies the Simplifier contract: simplifying a
// simplified expression changes nothing.
func TestSimplify_Idempotent(t *testing.T) {
	exprs := []*symexpr.Expr{
		symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(3))),
		symexpr.Add(symexpr.Pi(), symexpr.Q(1, 2)),
		symexpr.Div(symexpr.Sym("x"), symexpr.Sqrt(symexpr.N(7))),
		symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(2))),
	}
	var e *symexpr.Expr
	for _, e = range exprs {
		once := e.Simplify()
		twice := once.Simplify()
		assert.Equal(t, once.String(), twice.String(), "simplify must be idempotent on %s", e)
	}
}

// TestSimplify_DoesNotMutate verifies that the receiver tree is unchanged.
func TestSimplify_DoesNotMutate(t *testing.T) {
	e := symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(2)))
	before := e.String()
	_ = e.Simplify()
	assert.Equal(t, before, e.String(), "receiver must be left untouched")
}

// TestSimplify_Logarithms checks the exact logarithm rules.
func TestSimplify_Logarithms(t *testing.T) {
	assert.Equal(t, "0", symexpr.Log(symexpr.N(1)).Simplify().String(), "ln 1")
	assert.Equal(t, "1", symexpr.Log(symexpr.E()).Simplify().String(), "ln e")
	assert.Equal(t, "log(2)", symexpr.Log(symexpr.N(2)).Simplify().String(),
		"irrational logarithms stay symbolic")
	assert.Equal(t, "0",
		symexpr.Sub(symexpr.Log(symexpr.N(5)), symexpr.Log(symexpr.N(5))).Simplify().String(),
		"structural cancellation applies through log")
}
