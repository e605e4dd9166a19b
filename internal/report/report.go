// Package report computes derived views of the ledger: totals, goal
// progress, category and month breakdowns, and filtered subsequences.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"registro/internal/core"
)

var hundred = decimal.NewFromInt(100)

// Totals sums amounts over records. Income is any record whose category
// matches the income convention; everything else counts as expense. The
// result does not depend on record order.
func Totals(records []core.Record) core.Totals {
	var t core.Totals
	for _, r := range records {
		if r.IsIncome() {
			t.Income = t.Income.Add(r.Amount)
		} else {
			t.Expense = t.Expense.Add(r.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// GoalProgress returns the balance as a percentage of the goal. ok is false
// when no goal is set (zero or negative). The result is not clamped: it can
// be negative or exceed 100.
func GoalProgress(balance, goal decimal.Decimal) (progress decimal.Decimal, ok bool) {
	if goal.Sign() <= 0 {
		return decimal.Decimal{}, false
	}
	return balance.Div(goal).Mul(hundred), true
}

// ByCategory groups amounts by exact category string, as typed. Groups come
// back in order of first appearance.
func ByCategory(records []core.Record) []core.CategoryAmount {
	index := make(map[string]int)
	var out []core.CategoryAmount
	for _, r := range records {
		i, seen := index[r.Category]
		if !seen {
			i = len(out)
			index[r.Category] = i
			out = append(out, core.CategoryAmount{Name: r.Category})
		}
		out[i].Amount = out[i].Amount.Add(r.Amount)
	}
	return out
}

// ByMonth buckets expense amounts by YYYY-MM, excluding income records and
// records whose date cannot be parsed. Buckets come back sorted by key,
// which is chronological for ISO keys.
func ByMonth(records []core.Record) []core.MonthAmount {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.IsIncome() {
			continue
		}
		key, ok := core.MonthKey(r.Date)
		if !ok {
			continue
		}
		sums[key] = sums[key].Add(r.Amount)
	}
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]core.MonthAmount, len(keys))
	for i, k := range keys {
		out[i] = core.MonthAmount{Month: k, Amount: sums[k]}
	}
	return out
}

// Query restricts a filtered view. A zero Month or Year and an empty
// Category mean no constraint on that axis.
type Query struct {
	Month    int
	Year     int
	Category string // case-insensitive substring of the record category
}

// Filter returns the records matching q, preserving ledger order. Records
// whose date cannot be parsed are excluded from every filtered view.
func Filter(records []core.Record, q Query) []core.Record {
	needle := strings.ToLower(strings.TrimSpace(q.Category))
	out := make([]core.Record, 0, len(records))
	for _, r := range records {
		year, month, ok := core.DateParts(r.Date)
		if !ok {
			continue
		}
		if q.Month != 0 && month != q.Month {
			continue
		}
		if q.Year != 0 && year != q.Year {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Category), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}
