// Package exround computes exact floors and ceilings of real-valued
// quantities — from plain machine numbers to unevaluated symbolic
// expressions with no closed-form decimal value.
//
// 🚀 What is exround?
//
//	A library that answers one question reliably: what is ⌊x⌋ / ⌈x⌉?
//	Even when x is irrational, astronomically large, or sits within
//	2⁻⁵⁰ of an exact integer, exround resolves it by:
//		• Fast paths for machine ints, floats, complex and bulk vectors
//		• Capability dispatch for values that know their own floor/ceil
//		• Adaptive interval refinement with escalating bit precision
//		• Integer guess re-centering to defeat catastrophic cancellation
//		• A single opportunistic algebraic simplification pass
//		• A bounded attempt budget that fails loudly instead of looping
//
// ✨ Why choose exround?
//
//   - Exact answers – results are *big.Int, never a rounded float
//   - Honest failure – near-integer pathologies report PrecisionExhausted
//     with the bit budget, instead of returning a wrong integer
//   - Pure Go arithmetic core – math/big intervals, no cgo
//   - Extensible – plug in your own enclosure Provider or numeric types
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — numeric value model: capability interfaces, Vector, Decimal
//	interval/ — real interval arithmetic over math/big.Float enclosures
//	symexpr/  — minimal exact symbolic expressions (π, e, √, ln, rationals)
//	round/    — the adaptive-precision floor/ceiling controller
//
// Quick example:
//
//	x := symexpr.Mul(symexpr.Sqrt(symexpr.N(2)), symexpr.Sqrt(symexpr.N(2)))
//	res, err := round.Floor(x) // resolves √2·√2 = 2 via simplification
//
//	go get github.com/katalvlaran/exround/round
package exround
