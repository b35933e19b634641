package core

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

// Decimal wraps an exact github.com/govalues/decimal value and exposes the
// Floorer / Ceiler capabilities, so floor/ceil dispatch resolves it on the
// fast path without adaptive refinement: a decimal already has an exact,
// fully-known representation.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal wraps an existing decimal value.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

// ParseDecimal parses s (e.g. "-12.345") into a Decimal.
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("core: parse decimal %q: %w", s, err)
	}
	return Decimal{d: d}, nil
}

// Floor returns ⌊d⌋ as a new exact *big.Int.
func (x Decimal) Floor() *big.Int {
	return decimalToInt(x.d.Floor(0))
}

// Ceil returns ⌈d⌉ as a new exact *big.Int.
func (x Decimal) Ceil() *big.Int {
	return decimalToInt(x.d.Ceil(0))
}

// Unwrap returns the underlying decimal value.
func (x Decimal) Unwrap() decimal.Decimal { return x.d }

// String renders the decimal exactly.
func (x Decimal) String() string { return x.d.String() }

// decimalToInt converts a decimal already rounded to scale 0 into *big.Int.
func decimalToInt(d decimal.Decimal) *big.Int {
	n, ok := new(big.Int).SetString(d.String(), 10)
	if !ok {
		// A scale-0 decimal always renders as a plain integer literal.
		panic(fmt.Sprintf("core: non-integral rendering %q of scale-0 decimal", d.String()))
	}
	return n
}
