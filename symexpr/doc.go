// Package symexpr provides minimal exact symbolic expressions — just
// enough surface to feed exround's adaptive floor/ceiling controller with
// values that have no closed-form decimal representation.
//
// 🚀 What can an expression be?
//
//	Exact rational literals, the constants π and e, free variables, and
//	the operations +, −, ×, ÷, negation, integer powers, square roots and
//	natural logarithms, composed into an immutable tree:
//
//	  x := symexpr.Add(
//	      symexpr.Pow(symexpr.N(10), 50),
//	      symexpr.Pow(symexpr.N(2), -50),
//	  ) // 10⁵⁰ + 2⁻⁵⁰ — exactly, no float in sight
//
// ✨ Capabilities (consumed by exround/round via exround/core):
//
//   - Enclose(bits) — rigorous interval evaluation: every node is
//     computed with outward-directed big.Float rounding, so the true
//     value is provably inside [lo, hi]. Division by an interval
//     containing zero yields an unbounded enclosure rather than a panic;
//     expressions with free variables report core.ErrNotEnclosable.
//   - FullSimplify — exact constant folding plus radical
//     canonicalization (√a·√a → a, √(p²/q²) → p/q, (√a)²ᵏ → aᵏ).
//     Idempotent, never mutates the receiver. This is what lets the
//     controller recognize non-obvious exact integers such as √2·√2.
//
// Expressions are immutable after construction and safe for concurrent
// use. π and e are enclosed on demand by Machin's formula and the
// exponential series with generous guard bits, so enclosure diameters
// scale as 2⁻ᵇⁱᵗˢ — the assumption the controller's escalation heuristic
// is tuned for.
//
// symexpr is deliberately not a computer-algebra system: no parsing, no
// differentiation, no general rewriting. Only the floor/ceiling
// collaborator contracts are implemented.
package symexpr
