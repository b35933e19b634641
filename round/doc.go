// Package round computes exact floors and ceilings of arbitrary
// real-valued quantities, including unevaluated symbolic expressions with
// no closed-form decimal value.
//
// 🚀 What makes floor/ceil hard?
//
//	For a machine float, ⌊x⌋ is one instruction. For a value like
//	√2·√2 − 10⁻⁵⁰ it is a genuine numerical-engineering problem: naive
//	evaluation at any fixed precision produces an interval straddling an
//	integer, and both endpoints round to different answers forever.
//	round resolves this with three cooperating ideas:
//	  • adaptive precision — re-enclose the value at escalating bit
//	    precision until the enclosure pins down a unique integer
//	  • guess re-centering — maintain a running exact integer guess and
//	    work on the residual (x − guess), defeating the catastrophic
//	    cancellation that appears near exact integers
//	  • one simplification pass — when refinement stalls within 10⁻⁶ of
//	    an integer, ask the value to algebraically simplify itself once,
//	    unmasking non-obvious exact integers
//	A bounded attempt budget turns the remaining pathological cases into
//	an explicit PrecisionExhausted failure instead of an infinite loop.
//
// ✨ Key features:
//   - Fast paths: machine ints, floats, complex, big.Int/Rat/Float,
//     bulk core.Vector, and any value exposing its own Floor/Ceil
//   - Exact *big.Int results — never a rounded float
//   - Pluggable enclosure Provider (defaults to interval.BigFloatProvider)
//   - Explicit error taxonomy: ErrDomain for ±∞/NaN, ErrPrecisionExhausted
//     naming the spent bit budget so callers can retry with WithBits
//   - Unresolved propagation: values with free variables come back
//     unevaluated rather than as an error
//
// ⚙️ Usage:
//
//	res, err := round.Floor(x)                    // default budget
//	res, err = round.Ceil(x, round.WithBits(10000)) // explicit target
//	switch {
//	case err != nil:                     // ErrDomain or ErrPrecisionExhausted
//	case res.Kind == round.KindInt:      // res.Int holds the exact answer
//	case res.Kind == round.KindVector:   // res.Vec, element-wise native floor
//	case res.Kind == round.KindUnresolved: // res.Value still has free symbols
//	}
//
// Each call is purely sequential and keeps all state local, so any number
// of independent calls may run concurrently without locking.
//
// Complexity: one iteration costs one enclosure at the current precision;
// precision at most doubles (or grows ×4 on uninformative enclosures), and
// the attempt budget (default 5, plus a grace attempt while below an
// explicit bit target) bounds the number of iterations.
package round
