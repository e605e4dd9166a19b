package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// IncomeCategory marks a record as income rather than expense. Matching
	// is case-insensitive; this is a file-format convention, not a type.
	IncomeCategory = "Income"
)

type (
	// Record is a single transaction entry. Date holds the canonical ISO
	// form (YYYY-MM-DD) once normalized; a lenient import may leave other
	// text in it.
	Record struct {
		Date     string
		Name     string
		Category string
		Amount   decimal.Decimal
	}
)

var (
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNotFound      = errors.New("record not found")
	ErrNoGoal        = errors.New("savings goal not set")
)

// DefaultCategories seeds the category choices offered to a front end.
var DefaultCategories = []string{"Food", "Travel", "Bills", "Shopping", IncomeCategory, "Other"}

// amountTolerance bounds amount equality for structural matching.
var amountTolerance = decimal.New(1, -9)

func (r Record) Validate() error {
	if _, err := NormalizeDate(r.Date); err != nil {
		return err
	}
	if len(strings.TrimSpace(r.Name)) == 0 {
		return ErrEmptyName
	}
	if len(strings.TrimSpace(r.Category)) == 0 {
		return ErrEmptyCategory
	}
	return nil
}

// Equal reports structural equality: exact date, name and category strings,
// amount within tolerance. Records have no identity key, so this is the only
// way to match one for deletion.
func (r Record) Equal(o Record) bool {
	if r.Date != o.Date || r.Name != o.Name || r.Category != o.Category {
		return false
	}
	return r.Amount.Sub(o.Amount).Abs().Cmp(amountTolerance) <= 0
}

// IsIncome reports whether the record counts as income under the category
// convention.
func (r Record) IsIncome() bool {
	return strings.EqualFold(strings.TrimSpace(r.Category), IncomeCategory)
}
