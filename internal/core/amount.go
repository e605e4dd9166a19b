// Package core provides the ledger domain types: transaction records,
// amount parsing, and date normalization.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a free-form decimal amount string.
//
// Sign is not constrained: amounts are non-negative by convention only, and
// the convention is not enforced here. Returns ErrInvalidAmount for empty or
// unparseable input.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two decimal places, the form
// used by the export format.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
