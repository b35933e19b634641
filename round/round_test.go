// Package round_test verifies the fast-path dispatcher, the option and
// error surface, and the basic floor/ceiling properties.
package round_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/exround/core"
	"github.com/katalvlaran/exround/round"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustInt requires an exact integer result from a finished computation.
func mustInt(t *testing.T, res round.Result, err error) *big.Int {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, round.KindInt, res.Kind, "expected an integer result")
	require.NotNil(t, res.Int)
	return res.Int
}

// mustFloor computes ⌊x⌋ and requires an exact integer result.
func mustFloor(t *testing.T, x any, opts ...round.Option) *big.Int {
	t.Helper()
	res, err := round.Floor(x, opts...)
	return mustInt(t, res, err)
}

// mustCeil computes ⌈x⌉ and requires an exact integer result.
func mustCeil(t *testing.T, x any, opts ...round.Option) *big.Int {
	t.Helper()
	res, err := round.Ceil(x, opts...)
	return mustInt(t, res, err)
}

// TestFloorCeil_MachineInts verifies that every native integer kind is
// returned unchanged: for all integers n, floor(n) == ceil(n) == n.
func TestFloorCeil_MachineInts(t *testing.T) {
	inputs := []any{
		int(-3), int8(-3), int16(-3), int32(-3), int64(-3),
		uint(3), uint8(3), uint16(3), uint32(3), uint64(3),
	}
	var in any
	for _, in = range inputs {
		f := mustFloor(t, in)
		c := mustCeil(t, in)
		require.Zero(t, f.Cmp(c), "floor(n) == ceil(n) for integer %T %v", in, in)
		require.Equal(t, int64(3), new(big.Int).Abs(f).Int64(), "|n| preserved for %T", in)
	}
}

// TestFloorCeil_Floats verifies the native float path on both signs.
func TestFloorCeil_Floats(t *testing.T) {
	cases := []struct {
		in          float64
		floor, ceil int64
	}{
		{2.7, 2, 3},
		{-2.7, -3, -2},
		{5, 5, 5},
		{-0.5, -1, 0},
	}
	var c struct {
		in          float64
		floor, ceil int64
	}
	for _, c = range cases {
		require.Equal(t, c.floor, mustFloor(t, c.in).Int64(), "floor(%v)", c.in)
		require.Equal(t, c.ceil, mustCeil(t, c.in).Int64(), "ceil(%v)", c.in)
		require.Equal(t, c.floor, mustFloor(t, float32(c.in)).Int64(), "floor(float32 %v)", c.in)
	}
}

// TestFloorCeil_DomainErrors verifies the DomainError taxonomy: infinity
// and NaN are rejected immediately, never looped on.
func TestFloorCeil_DomainErrors(t *testing.T) {
	_, err := round.Ceil(math.Inf(1))
	assert.ErrorIs(t, err, round.ErrDomain, "ceil(+Inf)")

	_, err = round.Floor(math.NaN())
	assert.ErrorIs(t, err, round.ErrDomain, "floor(NaN)")

	_, err = round.Floor(math.Inf(-1))
	assert.ErrorIs(t, err, round.ErrDomain, "floor(-Inf)")

	inf := new(big.Float).SetInf(false)
	_, err = round.Floor(inf)
	assert.ErrorIs(t, err, round.ErrDomain, "floor(big.Float +Inf)")
}

// TestFloorCeil_Complex verifies that a zero imaginary part degrades to
// the real path and a nonzero one is a domain error.
func TestFloorCeil_Complex(t *testing.T) {
	require.Equal(t, int64(2), mustFloor(t, complex(2.7, 0)).Int64())
	require.Equal(t, int64(3), mustCeil(t, complex64(complex(2.7, 0))).Int64())

	_, err := round.Floor(complex(1, 1))
	assert.ErrorIs(t, err, round.ErrDomain, "nonzero imaginary part")
}

// TestFloorCeil_BigKinds verifies the exact arithmetic fast paths.
func TestFloorCeil_BigKinds(t *testing.T) {
	// *big.Int comes back equal, as a fresh value.
	n := big.NewInt(41)
	f := mustFloor(t, n)
	assert.Zero(t, f.Cmp(n))
	f.Add(f, big.NewInt(1))
	assert.Equal(t, int64(41), n.Int64(), "result must not alias the input")

	// *big.Rat rounds exactly.
	assert.Equal(t, int64(3), mustFloor(t, big.NewRat(7, 2)).Int64())
	assert.Equal(t, int64(4), mustCeil(t, big.NewRat(7, 2)).Int64())
	assert.Equal(t, int64(-4), mustFloor(t, big.NewRat(-7, 2)).Int64())

	// *big.Float rounds exactly.
	assert.Equal(t, int64(-3), mustFloor(t, big.NewFloat(-2.25)).Int64())
	assert.Equal(t, int64(-2), mustCeil(t, big.NewFloat(-2.25)).Int64())
}

// TestFloorCeil_CapabilityDispatch verifies that a value exposing its own
// exact floor/ceiling is delegated to before any other handling.
func TestFloorCeil_CapabilityDispatch(t *testing.T) {
	d, err := core.ParseDecimal("5.7")
	require.NoError(t, err)

	assert.Equal(t, int64(5), mustFloor(t, d).Int64())
	assert.Equal(t, int64(6), mustCeil(t, d).Int64())

	neg, err := core.ParseDecimal("-5.7")
	require.NoError(t, err)
	assert.Equal(t, int64(-6), mustFloor(t, neg).Int64())
	assert.Equal(t, int64(-5), mustCeil(t, neg).Int64())
}

// TestFloorCeil_Vector verifies the bulk path: element-wise rounding that
// stays in native float64 and preserves shape.
func TestFloorCeil_Vector(t *testing.T) {
	v := core.Vector{1.5, -1.5, 3}

	res, err := round.Floor(v)
	require.NoError(t, err)
	require.Equal(t, round.KindVector, res.Kind)
	assert.Equal(t, core.Vector{1, -2, 3}, res.Vec)
	assert.Nil(t, res.Int, "bulk results are not converted to exact integers")

	res, err = round.Ceil(v)
	require.NoError(t, err)
	assert.Equal(t, core.Vector{2, -1, 3}, res.Vec)
}

// TestEval_BadMethod rejects out-of-range method values.
func TestEval_BadMethod(t *testing.T) {
	_, err := round.Eval(1, round.Method(42))
	assert.ErrorIs(t, err, round.ErrBadMethod)
}

// TestOptions_Validation verifies the option-surface sentinels.
func TestOptions_Validation(t *testing.T) {
	_, err := round.Floor(1.5, round.WithAttempts(0))
	assert.ErrorIs(t, err, round.ErrBadAttempts)

	_, err = round.Floor(1.5, round.WithAttempts(-1))
	assert.ErrorIs(t, err, round.ErrBadAttempts)

	_, err = round.Floor(1.5, round.WithProvider(nil))
	assert.ErrorIs(t, err, round.ErrNilProvider)
}

// TestIdempotence verifies floor(floor(x)) == floor(x).
func TestIdempotence(t *testing.T) {
	f := mustFloor(t, big.NewRat(22, 7))
	ff := mustFloor(t, f)
	assert.Zero(t, f.Cmp(ff), "floor is idempotent")
}
