package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// MonthAmount is an expense total for one YYYY-MM bucket.
type MonthAmount struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
}

// Totals summarizes a set of records.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}
