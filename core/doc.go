// Package core defines the numeric value model shared by every exround
// subpackage: the capability interfaces a value may expose, the bulk Vector
// type, and the exact Decimal adapter.
//
// The surrounding problem is open-ended: a "number" handed to floor/ceil
// may be a machine int, a float, an arbitrary-precision rational, an exact
// decimal, or an unevaluated symbolic expression. Rather than a closed type
// hierarchy, core models this with small optional capability interfaces,
// queried at dispatch time:
//
//   - Floorer / Ceiler — the value knows its own exact floor/ceiling
//     (exact rationals, decimals, big integers). Dispatch delegates to it
//     and never runs the adaptive algorithm.
//   - Encloser — the value can bound itself between two *big.Float
//     endpoints at a requested bit precision. This is the only capability
//     the adaptive controller requires.
//   - Simplifier — the value supports full algebraic simplification with
//     radical canonicalization, used at most once per floor/ceil call to
//     resolve values that are non-obvious exact integers.
//
// A value implementing none of these (and not a native numeric kind) is
// not numerically resolvable; enclosure attempts report ErrNotEnclosable
// and callers propagate the value unevaluated.
//
// Concrete types provided here:
//
//   - Vector  — bulk []float64 with element-wise Floor/Ceil that stay in
//     native float precision (no exactness guarantees in that regime)
//   - Decimal — adapter over github.com/govalues/decimal exposing exact
//     Floorer/Ceiler capabilities
package core
