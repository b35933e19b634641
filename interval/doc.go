// Package interval provides real interval arithmetic enclosures over
// math/big.Float, the numeric backbone of exround's adaptive floor/ceiling
// controller.
//
// 🚀 What is an interval enclosure?
//
//	A pair [lo, hi] of arbitrary-precision floats guaranteed to contain
//	the true value of a quantity, produced at a requested bit precision.
//	The derived absolute diameter (hi − lo) measures how much information
//	the enclosure carries:
//	  • diameter < 1  — at most one integer can lie inside, so the floor
//	    and ceiling of the endpoints can pin the answer down
//	  • diameter ≥ 1  — too wide, more precision is needed
//	  • unbounded     — no information at all (e.g. division by an
//	    interval containing zero); precision must escalate aggressively
//
// ✨ Key pieces:
//   - Interval — immutable lower/upper bound pair with AbsDiameter,
//     Unbounded, and exact integer translation (guess re-centering)
//   - Provider — the enclosure contract consumed by the controller
//   - BigFloatProvider — the bundled Provider: encloses anything exposing
//     core.Encloser, plus exact big.Rat / big.Int / big.Float and native
//     machine numbers, with outward (directed) rounding
//   - Floor / Ceil — endpoint rounding from *big.Float to exact *big.Int
//
// ⚙️ Usage:
//
//	p := interval.NewBigFloatProvider()
//	iv, err := p.Enclose(new(big.Rat).SetFrac64(1, 3), 64)
//	lo, hi := iv.Lower(), iv.Upper()   // 1/3 rounded down / up at 64 bits
//	d := iv.AbsDiameter()              // ~2⁻⁶⁴
//
// Intervals are produced fresh on every Enclose call and never mutated;
// read the endpoints, take their floor/ceiling, and discard.
package interval
