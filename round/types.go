package round

import (
	"math/big"

	"github.com/katalvlaran/exround/core"
	"github.com/katalvlaran/exround/interval"
)

// Method selects which rounding question is being asked.
type Method int

const (
	// MethodFloor computes ⌊x⌋, the largest integer ≤ x.
	MethodFloor Method = iota

	// MethodCeil computes ⌈x⌉, the smallest integer ≥ x.
	MethodCeil
)

// String renders the method name as used in error messages.
func (m Method) String() string {
	if m == MethodCeil {
		return "ceil"
	}
	return "floor"
}

// round applies the method to a finite interval endpoint.
func (m Method) round(f *big.Float) *big.Int {
	if m == MethodCeil {
		return interval.Ceil(f)
	}
	return interval.Floor(f)
}

// Tuning constants of the adaptive controller. They are behavioral
// contracts, not implementation details: the escalation schedule decides
// which near-integer inputs converge within the attempt budget, so keep
// them auditable and change them only deliberately.
const (
	// InitialPrecision is the bit precision of the first enclosure.
	InitialPrecision uint = 32

	// DefaultAttempts is the default attempt budget: how many
	// precision-escalation rounds are permitted before giving up.
	DefaultAttempts = 5

	// WideDiameter is the diameter threshold above which an enclosure is
	// too wide to contain at most one integer.
	WideDiameter = 1.0

	// SimplifyDiameter is the diameter below which a stalled refinement
	// triggers the single algebraic simplification pass.
	SimplifyDiameter = 1e-6

	// UnboundedGrowthFactor multiplies the precision when an enclosure
	// reports an infinite diameter: the value is in a regime (e.g.
	// catastrophic cancellation) where only much more precision helps.
	UnboundedGrowthFactor = 4

	// WideGrowthBase is the additive base of the diameter-proportional
	// escalation: precision grows by WideGrowthBase + log₂(diameter),
	// aiming the next diameter at roughly 2⁻³² assuming the diameter
	// scales as 2^(−precision).
	WideGrowthBase = 32

	// RefineGrowthFactor doubles the precision between refinement rounds
	// once the enclosure is already sub-unit.
	RefineGrowthFactor = 2
)

// Options configures one floor/ceiling computation.
//
// Bits     – explicit target precision in bits. 0 (the default) means "no
// explicit target, use the escalation heuristics only". While the current
// precision is below a non-zero target, the controller grants a grace
// attempt whenever the budget would run out, so the target is honored at
// least once.
//
// Attempts – the attempt budget. Must be positive; default DefaultAttempts.
//
// Provider – the interval enclosure provider driving refinement. Must be
// non-nil; default interval.BigFloatProvider.
type Options struct {
	Bits     uint
	Attempts int
	Provider interval.Provider
}

// Option is a functional option for configuring Floor, Ceil or Eval.
type Option func(*Options)

// WithBits sets an explicit target precision in bits. Use it to retry a
// computation that failed with ErrPrecisionExhausted.
func WithBits(bits uint) Option {
	return func(o *Options) { o.Bits = bits }
}

// WithAttempts overrides the attempt budget. Values ≤ 0 cause
// ErrBadAttempts at call time.
func WithAttempts(n int) Option {
	return func(o *Options) { o.Attempts = n }
}

// WithProvider substitutes the interval enclosure provider. A nil
// provider causes ErrNilProvider at call time.
func WithProvider(p interval.Provider) Option {
	return func(o *Options) { o.Provider = p }
}

// DefaultOptions returns the options used when no Option overrides are
// supplied: no explicit bit target, DefaultAttempts rounds, and the
// bundled big.Float provider.
func DefaultOptions() Options {
	return Options{
		Bits:     0,
		Attempts: DefaultAttempts,
		Provider: interval.NewBigFloatProvider(),
	}
}

// ResultKind tells which of the Result fields is meaningful.
type ResultKind int

const (
	// KindInt — the computation resolved to the exact integer Result.Int.
	KindInt ResultKind = iota

	// KindVector — a bulk input was rounded element-wise into Result.Vec,
	// staying in native float64 (no exactness guarantees in that regime).
	KindVector

	// KindUnresolved — the input could not be enclosed numerically at all
	// (it still contains free symbolic variables); Result.Value carries it
	// unevaluated, to be resolved when concrete values are substituted.
	KindUnresolved
)

// Result is the outcome of a floor/ceiling computation. Exactly one of
// Int, Vec or Value is set, according to Kind.
type Result struct {
	Kind  ResultKind
	Int   *big.Int    // exact answer, Kind == KindInt
	Vec   core.Vector // element-wise answer, Kind == KindVector
	Value any         // unevaluated input, Kind == KindUnresolved
}
