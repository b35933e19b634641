package interval

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/exround/core"
)

// Provider produces a numeric enclosure of a value at a requested bit
// precision. Implementations must be deterministic (identical value and
// bits always yield identical bounds) and must return a fresh Interval on
// every call.
//
// When the value is not numerically convertible at all, the returned error
// must wrap core.ErrNotEnclosable so callers can recover by leaving the
// value unevaluated.
type Provider interface {
	Enclose(x any, bits uint) (Interval, error)
}

// BigFloatProvider is the bundled Provider, backed by math/big.Float with
// outward (directed) rounding:
//
//   - values exposing core.Encloser bound themselves;
//   - *big.Rat is rounded toward −∞ / +∞ for the lower / upper bound;
//   - *big.Int, *big.Float, machine ints and finite float64 are exact
//     point intervals.
//
// BigFloatProvider is stateless and safe for concurrent use.
type BigFloatProvider struct{}

// NewBigFloatProvider returns the bundled enclosure provider.
func NewBigFloatProvider() BigFloatProvider { return BigFloatProvider{} }

// Enclose implements Provider.
func (BigFloatProvider) Enclose(x any, bits uint) (Interval, error) {
	if bits == 0 {
		return Interval{}, ErrZeroPrecision
	}
	switch v := x.(type) {
	case core.Encloser:
		lo, hi, err := v.Enclose(bits)
		if err != nil {
			return Interval{}, err
		}
		return New(lo, hi)
	case *big.Rat:
		lo := new(big.Float).SetPrec(bits).SetMode(big.ToNegativeInf).SetRat(v)
		hi := new(big.Float).SetPrec(bits).SetMode(big.ToPositiveInf).SetRat(v)
		return Interval{lo: lo, hi: hi}, nil
	case *big.Int:
		return Point(exactIntFloat(v, bits)), nil
	case *big.Float:
		return Point(new(big.Float).Copy(v)), nil
	case float64:
		return encloseFloat64(v, bits)
	case float32:
		return encloseFloat64(float64(v), bits)
	case int:
		return Point(exactIntFloat(big.NewInt(int64(v)), bits)), nil
	case int64:
		return Point(exactIntFloat(big.NewInt(v), bits)), nil
	case uint64:
		return Point(exactIntFloat(new(big.Int).SetUint64(v), bits)), nil
	default:
		return Interval{}, fmt.Errorf("interval: cannot enclose %T: %w", x, core.ErrNotEnclosable)
	}
}

// encloseFloat64 builds the exact point interval of a finite float64.
func encloseFloat64(f float64, bits uint) (Interval, error) {
	if math.IsNaN(f) {
		return Interval{}, ErrNotFinite
	}
	prec := bits
	if prec < 53 {
		prec = 53 // keep the float64 value exact
	}
	p := new(big.Float).SetPrec(prec)
	if math.IsInf(f, 0) {
		p.SetInf(math.Signbit(f))
	} else {
		p.SetFloat64(f)
	}
	return Point(p), nil
}

// exactIntFloat converts n to a *big.Float without rounding.
func exactIntFloat(n *big.Int, bits uint) *big.Float {
	prec := bits
	if bl := uint(n.BitLen()); bl > prec {
		prec = bl
	}
	if prec == 0 {
		prec = 1
	}
	return new(big.Float).SetPrec(prec).SetInt(n)
}
