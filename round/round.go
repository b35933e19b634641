package round

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/exround/core"
	"github.com/katalvlaran/exround/interval"
)

// Floor computes ⌊x⌋ exactly. See Eval for the accepted input kinds,
// result shapes and failure modes.
//
// Example:
//
//	res, err := round.Floor(symexpr.Pi()) // res.Int == 3
func Floor(x any, opts ...Option) (Result, error) {
	return Eval(x, MethodFloor, opts...)
}

// Ceil computes ⌈x⌉ exactly. See Eval for the accepted input kinds,
// result shapes and failure modes.
func Ceil(x any, opts ...Option) (Result, error) {
	return Eval(x, MethodCeil, opts...)
}

// Eval computes floor(x) or ceil(x) for an arbitrary value.
//
// Accepted inputs, in dispatch order:
//
//  1. Values exposing their own exact rounding (core.Floorer/core.Ceiler,
//     e.g. core.Decimal) — delegated to directly.
//  2. Machine integers — already integral, returned as exact *big.Int.
//  3. Machine floats and complex — native rounding; ±∞, NaN and nonzero
//     imaginary parts report ErrDomain.
//  4. *big.Int, *big.Rat, *big.Float — exact arithmetic rounding.
//  5. core.Vector and []float64 — element-wise native rounding, Result.Vec.
//  6. Anything else — the adaptive precision controller, driven by
//     Options.Provider. Values it cannot enclose at all come back as
//     KindUnresolved; a budget exhausted before convergence reports
//     ErrPrecisionExhausted (retry with a larger WithBits).
//
// Eval is deterministic: identical input and options always produce the
// identical result.
func Eval(x any, m Method, opts ...Option) (Result, error) {
	if m != MethodFloor && m != MethodCeil {
		return Result{}, ErrBadMethod
	}

	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Attempts <= 0 {
		return Result{}, ErrBadAttempts
	}
	if cfg.Provider == nil {
		return Result{}, ErrNilProvider
	}

	// 2) Fast paths: values that resolve without adaptive refinement.
	if res, done, err := fastPath(x, m); done || err != nil {
		return res, err
	}

	// 3) The adaptive precision controller.
	return adaptive(x, m, cfg)
}

// fastPath attempts to resolve x without refinement. done reports whether
// the value was handled here.
func fastPath(x any, m Method) (res Result, done bool, err error) {
	// Capability dispatch first: the value may know its own exact answer.
	if m == MethodFloor {
		if f, ok := x.(core.Floorer); ok {
			return Result{Kind: KindInt, Int: f.Floor()}, true, nil
		}
	} else {
		if c, ok := x.(core.Ceiler); ok {
			return Result{Kind: KindInt, Int: c.Ceil()}, true, nil
		}
	}

	switch v := x.(type) {
	case int:
		return intResult(big.NewInt(int64(v))), true, nil
	case int8:
		return intResult(big.NewInt(int64(v))), true, nil
	case int16:
		return intResult(big.NewInt(int64(v))), true, nil
	case int32:
		return intResult(big.NewInt(int64(v))), true, nil
	case int64:
		return intResult(big.NewInt(v)), true, nil
	case uint:
		return intResult(new(big.Int).SetUint64(uint64(v))), true, nil
	case uint8:
		return intResult(big.NewInt(int64(v))), true, nil
	case uint16:
		return intResult(big.NewInt(int64(v))), true, nil
	case uint32:
		return intResult(big.NewInt(int64(v))), true, nil
	case uint64:
		return intResult(new(big.Int).SetUint64(v)), true, nil

	case float32:
		res, err = floatResult(float64(v), m)
		return res, true, err
	case float64:
		res, err = floatResult(v, m)
		return res, true, err

	case complex64:
		res, err = complexResult(complex128(v), m)
		return res, true, err
	case complex128:
		res, err = complexResult(v, m)
		return res, true, err

	case *big.Int:
		return intResult(new(big.Int).Set(v)), true, nil
	case *big.Rat:
		if m == MethodFloor {
			return intResult(core.RatFloor(v)), true, nil
		}
		return intResult(core.RatCeil(v)), true, nil
	case *big.Float:
		if v.IsInf() {
			return Result{}, true, domainErr(m, v)
		}
		return intResult(m.round(v)), true, nil

	case core.Vector:
		if m == MethodFloor {
			return Result{Kind: KindVector, Vec: v.Floor()}, true, nil
		}
		return Result{Kind: KindVector, Vec: v.Ceil()}, true, nil

	case []float64:
		vec := core.Vector(v)
		if m == MethodFloor {
			return Result{Kind: KindVector, Vec: vec.Floor()}, true, nil
		}
		return Result{Kind: KindVector, Vec: vec.Ceil()}, true, nil
	}

	return Result{}, false, nil
}

// adaptive is the iterative core: enclose the value in a numeric interval
// and hope the interval has a unique floor/ceiling. There are two reasons
// why that can fail:
//
//  1. The expression is complicated and simply needs more bits.
//  2. The expression is a non-obvious exact integer. Adding bits can never
//     help then: an interval around an exact integer has no unique
//     floor/ceiling no matter how tight it gets.
//
// Case 1 is handled by escalating precision (×4 when the enclosure is
// unbounded, +32+log₂(diameter) when it is bounded but wider than 1,
// doubling otherwise). Case 2 is handled by re-centering on a running
// exact integer guess and by a single algebraic simplification pass once
// the diameter drops below SimplifyDiameter. The attempt budget bounds the
// loop; exhausting it is the one true failure mode.
func adaptive(x any, m Method, cfg Options) (Result, error) {
	// An exact integer close to x. Subtracting it before reading the
	// enclosure endpoints keeps the residual near zero, which is what lets
	// values within 2⁻ᵏ of an integer converge instead of oscillating.
	guess := new(big.Int)

	// The target precision is not used immediately; it only decides when
	// the grace attempts stop.
	bits := InitialPrecision
	attempts := cfg.Attempts

	// Simplification applies only to values that support it, once.
	simp, canSimplify := x.(core.Simplifier)

	var (
		iv       interval.Interval
		err      error
		a, b     *big.Int
		lastBits uint // precision of the most recent enclosure, for reporting
	)
	for attempts > 0 {
		attempts--
		if attempts == 0 && bits < cfg.Bits {
			// One more attempt as long as the precision is below the
			// caller's explicit target.
			attempts = 1
		}

		lastBits = bits
		iv, err = cfg.Provider.Enclose(x, bits)
		if err != nil {
			if errors.Is(err, core.ErrNotEnclosable) {
				// No numerical enclosure at all: the value still contains
				// free symbols. Leave it unevaluated.
				return Result{Kind: KindUnresolved, Value: x}, nil
			}
			return Result{}, err
		}
		iv = iv.SubInt(guess)

		if iv.Unbounded() {
			// The enclosure carries no information; only much more
			// precision can help.
			bits *= UnboundedGrowthFactor
			continue
		}
		diam := iv.AbsDiameter()
		fdiam, _ := diam.Float64()
		if fdiam >= WideDiameter {
			// Aim the next diameter at about 2⁻³², assuming it scales as
			// 2^(−bits).
			if l := log2Floor(diam); l > 0 {
				bits += WideGrowthBase + uint(l)
			} else {
				bits += WideGrowthBase
			}
			continue
		}

		// The interval is sub-unit: if both endpoints round to the same
		// integer, that is the answer.
		a = m.round(iv.Lower())
		b = m.round(iv.Upper())
		if a.Cmp(b) == 0 {
			return intResult(a.Add(a, guess)), nil
		}

		// Since diam < 1, exactly one integer lies strictly inside the
		// interval: ⌈lower⌉ = ⌊upper⌋. Fold it into the guess so the next
		// residual sits near zero.
		if m == MethodFloor {
			guess.Add(guess, b)
		} else {
			guess.Add(guess, a)
		}

		if canSimplify && fdiam <= SimplifyDiameter {
			// Refinement has stalled a hair away from an integer: the value
			// may be a non-obvious exact integer. Simplify once and retry
			// at the same precision.
			x = simp.FullSimplify()
			canSimplify = false
			continue
		}

		bits *= RefineGrowthFactor
	}

	return Result{}, fmt.Errorf("round: cannot compute %s(%v) using %d bits of precision: %w",
		m, x, lastBits, ErrPrecisionExhausted)
}

func intResult(n *big.Int) Result {
	return Result{Kind: KindInt, Int: n}
}

func floatResult(f float64, m Method) (Result, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Result{}, domainErr(m, f)
	}
	r := math.Floor(f)
	if m == MethodCeil {
		r = math.Ceil(f)
	}
	// r is integral and exactly representable; the conversion is exact.
	n, _ := big.NewFloat(r).Int(nil)
	return intResult(n), nil
}

func complexResult(c complex128, m Method) (Result, error) {
	if imag(c) != 0 {
		return Result{}, fmt.Errorf("round: calling %s() on complex value %v with nonzero imaginary part: %w", m, c, ErrDomain)
	}
	return floatResult(real(c), m)
}

func domainErr(m Method, v any) error {
	return fmt.Errorf("round: calling %s() on infinity or NaN (%v): %w", m, v, ErrDomain)
}

// log2Floor returns ⌊log₂ d⌋ for a finite d ≥ 1.
func log2Floor(d *big.Float) int {
	// MantExp normalizes to mant ∈ [0.5, 1), so d ∈ [2^(exp−1), 2^exp).
	return d.MantExp(nil) - 1
}
