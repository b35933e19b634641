package interval_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/exround/core"
	"github.com/katalvlaran/exround/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProvider_ZeroPrecision rejects enclosures at 0 bits.
func TestProvider_ZeroPrecision(t *testing.T) {
	p := interval.NewBigFloatProvider()
	_, err := p.Enclose(big.NewRat(1, 3), 0)
	assert.ErrorIs(t, err, interval.ErrZeroPrecision)
}

// TestProvider_Rat verifies outward rounding of a non-representable
// rational: the true value must lie strictly inside, and the diameter
// must shrink as 2^(-bits).
func TestProvider_Rat(t *testing.T) {
	p := interval.NewBigFloatProvider()
	third := big.NewRat(1, 3)

	iv, err := p.Enclose(third, 64)
	require.NoError(t, err)

	exact := new(big.Float).SetPrec(256).SetRat(third)
	assert.True(t, iv.Lower().Cmp(exact) < 0, "lower bound strictly below 1/3")
	assert.True(t, iv.Upper().Cmp(exact) > 0, "upper bound strictly above 1/3")

	d, _ := iv.AbsDiameter().Float64()
	assert.Less(t, d, math.Pow(2, -60), "diameter ~ one ulp at 64 bits")
	assert.Greater(t, d, 0.0, "1/3 is not exactly representable")
}

// TestProvider_ExactPoints checks that integers and floats enclose to
// zero-diameter point intervals.
func TestProvider_ExactPoints(t *testing.T) {
	p := interval.NewBigFloatProvider()
	var inputs = []any{
		big.NewInt(42),
		new(big.Int).Lsh(big.NewInt(1), 300), // 2^300, wider than the requested bits
		42,
		int64(-7),
		uint64(7),
		3.5,
		float32(1.25),
		big.NewFloat(2.75),
	}
	var in any
	for _, in = range inputs {
		iv, err := p.Enclose(in, 32)
		require.NoError(t, err, "enclose %T", in)
		d, _ := iv.AbsDiameter().Float64()
		require.Equal(t, 0.0, d, "%T (%v) must enclose exactly", in, in)
	}
}

// TestProvider_NotEnclosable verifies the recovery contract: a value with
// no numeric meaning reports an error wrapping core.ErrNotEnclosable.
func TestProvider_NotEnclosable(t *testing.T) {
	p := interval.NewBigFloatProvider()
	_, err := p.Enclose("definitely not a number", 32)
	assert.ErrorIs(t, err, core.ErrNotEnclosable)
}

// TestProvider_NaN rejects NaN floats: there is no enclosure of NaN at
// any precision.
func TestProvider_NaN(t *testing.T) {
	p := interval.NewBigFloatProvider()
	_, err := p.Enclose(math.NaN(), 32)
	assert.ErrorIs(t, err, interval.ErrNotFinite)
}

// encloser is a test double exercising the core.Encloser branch.
type encloser struct{}

func (encloser) Enclose(bits uint) (*big.Float, *big.Float, error) {
	lo := new(big.Float).SetPrec(bits).SetInt64(1)
	hi := new(big.Float).SetPrec(bits).SetInt64(2)
	return lo, hi, nil
}

// TestProvider_EncloserDelegation verifies that values exposing
// core.Encloser bound themselves.
func TestProvider_EncloserDelegation(t *testing.T) {
	p := interval.NewBigFloatProvider()
	iv, err := p.Enclose(encloser{}, 32)
	require.NoError(t, err)

	lo, _ := iv.Lower().Float64()
	hi, _ := iv.Upper().Float64()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.0, hi)
}

// TestProvider_Deterministic verifies that identical input and bits yield
// identical bounds across calls.
func TestProvider_Deterministic(t *testing.T) {
	p := interval.NewBigFloatProvider()
	r := big.NewRat(22, 7)

	a, err := p.Enclose(r, 96)
	require.NoError(t, err)
	b, err := p.Enclose(r, 96)
	require.NoError(t, err)

	assert.Zero(t, a.Lower().Cmp(b.Lower()), "lower bounds identical")
	assert.Zero(t, a.Upper().Cmp(b.Upper()), "upper bounds identical")
}
