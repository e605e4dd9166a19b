package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"registro/internal/core"
)

func rec(date, name, category, amount string) core.Record {
	return core.Record{
		Date:     date,
		Name:     name,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func sampleLedger() []core.Record {
	return []core.Record{
		rec("2024-01-15", "Rent", "Housing", "1200.00"),
		rec("2024-01-01", "Income", "Income", "50000.00"),
	}
}

func TestTotals(t *testing.T) {
	got := Totals(sampleLedger())

	if !got.Income.Equal(decimal.RequireFromString("50000")) {
		t.Fatalf("income: expected 50000, got %s", got.Income)
	}
	if !got.Expense.Equal(decimal.RequireFromString("1200")) {
		t.Fatalf("expense: expected 1200, got %s", got.Expense)
	}
	if !got.Balance.Equal(decimal.RequireFromString("48800")) {
		t.Fatalf("balance: expected 48800, got %s", got.Balance)
	}
}

func TestTotalsReorderInvariant(t *testing.T) {
	forward := sampleLedger()
	reversed := []core.Record{forward[1], forward[0]}

	a, b := Totals(forward), Totals(reversed)
	if !a.Income.Equal(b.Income) || !a.Expense.Equal(b.Expense) || !a.Balance.Equal(b.Balance) {
		t.Fatalf("totals should not depend on order: %+v vs %+v", a, b)
	}
}

func TestTotalsIncomeMatchIsCaseInsensitive(t *testing.T) {
	got := Totals([]core.Record{rec("2024-01-01", "Salary", "income", "100")})
	if !got.Income.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("expected lowercase income category to count as income, got %+v", got)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		goal    string
		want    string
		ok      bool
	}{
		{"exact goal", "48800", "48800", "100", true},
		{"half way", "50", "100", "50", true},
		{"over goal", "150", "100", "150", true},
		{"negative balance", "-50", "100", "-50", true},
		{"no goal", "100", "0", "", false},
		{"negative goal", "100", "-1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GoalProgress(decimal.RequireFromString(tt.balance), decimal.RequireFromString(tt.goal))
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s%%, got %s%%", tt.want, got)
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	records := []core.Record{
		rec("2024-01-15", "Rent", "Housing", "1200"),
		rec("2024-01-16", "Coffee", "Food", "3"),
		rec("2024-01-17", "Deposit", "Housing", "800"),
		rec("2024-01-18", "lunch", "food", "12"), // distinct group: grouping is case-sensitive
	}

	got := ByCategory(records)
	if len(got) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Housing" || got[1].Name != "Food" || got[2].Name != "food" {
		t.Fatalf("groups should keep first-appearance order: %+v", got)
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("2000")) {
		t.Fatalf("Housing: expected 2000, got %s", got[0].Amount)
	}
}

func TestByMonth(t *testing.T) {
	records := []core.Record{
		rec("2024-02-10", "Bus", "Travel", "2.50"),
		rec("2024-01-15", "Rent", "Housing", "1200"),
		rec("2024-01-01", "Income", "Income", "50000"), // income excluded
		rec("2024-01-20", "Coffee", "Food", "3"),
		{Date: "not-a-date", Name: "Mystery", Category: "Other", Amount: decimal.RequireFromString("10")},
	}

	got := ByMonth(records)
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d: %+v", len(got), got)
	}
	if got[0].Month != "2024-01" || got[1].Month != "2024-02" {
		t.Fatalf("buckets should be sorted by key: %+v", got)
	}
	if !got[0].Amount.Equal(decimal.RequireFromString("1203")) {
		t.Fatalf("2024-01: expected 1203, got %s", got[0].Amount)
	}
}

func TestFilterNoPredicates(t *testing.T) {
	records := sampleLedger()

	got := Filter(records, Query{})
	if len(got) != len(records) {
		t.Fatalf("expected full ledger, got %d records", len(got))
	}
	for i := range records {
		if !got[i].Equal(records[i]) {
			t.Fatalf("order changed at %d: %+v", i, got[i])
		}
	}
}

func TestFilterPredicates(t *testing.T) {
	records := []core.Record{
		rec("2024-01-15", "Rent", "Housing", "1200"),
		rec("2024-01-01", "Income", "Income", "50000"),
		rec("2023-01-10", "Old rent", "Housing", "1100"),
		rec("2024-02-02", "Hotel", "Travel", "300"),
	}

	tests := []struct {
		name  string
		q     Query
		names []string
	}{
		{"month and year and substring", Query{Month: 1, Year: 2024, Category: "hous"}, []string{"Rent"}},
		{"year only", Query{Year: 2023}, []string{"Old rent"}},
		{"month only", Query{Month: 1}, []string{"Rent", "Income", "Old rent"}},
		{"substring case-insensitive", Query{Category: "HOUS"}, []string{"Rent", "Old rent"}},
		{"no match", Query{Month: 3, Year: 2024}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.q)
			if len(got) != len(tt.names) {
				t.Fatalf("expected %d records, got %d: %+v", len(tt.names), len(got), got)
			}
			for i, name := range tt.names {
				if got[i].Name != name {
					t.Fatalf("expected %q at %d, got %q", name, i, got[i].Name)
				}
			}
		})
	}
}

func TestFilterExcludesUnparseableDates(t *testing.T) {
	records := []core.Record{
		rec("2024-01-15", "Rent", "Housing", "1200"),
		{Date: "not-a-date", Name: "Mystery", Category: "Other", Amount: decimal.RequireFromString("10")},
	}

	got := Filter(records, Query{})
	if len(got) != 1 || got[0].Name != "Rent" {
		t.Fatalf("records with unparseable dates should be excluded: %+v", got)
	}
}
