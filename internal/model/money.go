package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmountExponent bounds the decimal exponent accepted by ParseAmount.
// Rescaling a decimal allocates 10^|exp|, so an unbounded exponent such as
// "1e400000000" would stall any later Round or StringFixed call.
const MaxAmountExponent = 28

// ErrAmountOutOfRange is returned for a number whose exponent exceeds MaxAmountExponent.
var ErrAmountOutOfRange = errors.New("amount out of range")

// ParseAmount parses a stored monetary value. Scientific notation is
// accepted, since older snapshots may contain it, but only within
// MaxAmountExponent.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if exp := d.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountOutOfRange, s)
	}
	return d, nil
}
