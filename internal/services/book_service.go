// Package services exposes the ledger operations a presentation layer
// consumes: add, delete, filter, aggregate, load and save. A front end calls
// these and renders the results; nothing here renders anything.
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"registro/internal/codec"
	"registro/internal/core"
	"registro/internal/ledger"
	applog "registro/internal/log"
	"registro/internal/report"
)

// BookService owns the ledger handle and the savings goal behind the
// boundary operations. Filtered views come back as fresh values; callers
// hold no shared state.
type BookService struct {
	store      *ledger.Store
	categories []string
}

func NewBookService(store *ledger.Store) *BookService {
	return &BookService{
		store:      store,
		categories: core.DefaultCategories,
	}
}

// WithCategories overrides the category list offered to front ends.
func (s *BookService) WithCategories(categories []string) *BookService {
	if len(categories) > 0 {
		s.categories = categories
	}
	return s
}

// Categories returns the category choices for a front end.
func (s *BookService) Categories() []string {
	return append([]string(nil), s.categories...)
}

// AddRecord validates and appends one transaction. An empty date defaults to
// today. No partial add: the ledger is untouched on any failure.
func (s *BookService) AddRecord(ctx context.Context, date, name, category, amountText string) (core.Record, error) {
	if strings.TrimSpace(date) == "" {
		date = core.Today()
	}
	iso, err := core.NormalizeDate(date)
	if err != nil {
		return core.Record{}, err
	}
	amount, err := core.ParseAmount(amountText)
	if err != nil {
		return core.Record{}, err
	}

	rec := core.Record{Date: iso, Name: name, Category: category, Amount: amount}
	if err := s.store.Add(rec); err != nil {
		return core.Record{}, err
	}

	slog.InfoContext(ctx, "Record added",
		applog.FieldDate, rec.Date,
		applog.FieldName, rec.Name,
		applog.FieldCategory, rec.Category,
		applog.FieldAmount, rec.Amount.String())

	return rec, nil
}

// AddIncome records an income entry dated today.
func (s *BookService) AddIncome(ctx context.Context, amountText string) (core.Record, error) {
	return s.AddRecord(ctx, core.Today(), core.IncomeCategory, core.IncomeCategory, amountText)
}

// DeleteRecord removes the first record structurally equal to rec. Returns
// core.ErrNotFound when no record matches; the ledger is left unchanged.
func (s *BookService) DeleteRecord(ctx context.Context, rec core.Record) error {
	if err := s.store.Delete(rec); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Record deleted",
		applog.FieldDate, rec.Date,
		applog.FieldName, rec.Name,
		applog.FieldCategory, rec.Category)

	return nil
}

// LoadFromFile parses path in full and then replaces the ledger contents.
// A failed read leaves the ledger untouched. A file that reads successfully
// but yields no valid rows still replaces the ledger with an empty one.
func (s *BookService) LoadFromFile(ctx context.Context, path string) (int, error) {
	records, err := codec.Load(path)
	if err != nil {
		slog.ErrorContext(ctx, "Import failed",
			applog.FieldPath, path, applog.FieldError, err)
		return 0, err
	}

	s.store.ReplaceAll(records)

	slog.InfoContext(ctx, "Ledger loaded",
		applog.FieldPath, path, applog.FieldRecords, len(records))

	return len(records), nil
}

// SaveToFile writes records to path. A nil slice means the full ledger; pass
// a filtered view to export a subset. In-memory state is never touched.
func (s *BookService) SaveToFile(ctx context.Context, path string, records []core.Record) error {
	if records == nil {
		records = s.store.Snapshot()
	}
	if err := codec.Save(path, records); err != nil {
		slog.ErrorContext(ctx, "Export failed",
			applog.FieldPath, path, applog.FieldError, err)
		return err
	}

	slog.InfoContext(ctx, "Ledger saved",
		applog.FieldPath, path, applog.FieldRecords, len(records))

	return nil
}

// ApplyFilter returns the records matching q in ledger order.
func (s *BookService) ApplyFilter(ctx context.Context, q report.Query) []core.Record {
	view := report.Filter(s.store.Snapshot(), q)

	slog.DebugContext(ctx, "Filter applied",
		applog.FieldMonth, q.Month,
		applog.FieldYear, q.Year,
		applog.FieldCategory, q.Category,
		applog.FieldRecords, len(view))

	return view
}

// ComputeTotals sums income and expenses over the whole ledger.
func (s *BookService) ComputeTotals(ctx context.Context) core.Totals {
	return report.Totals(s.store.Snapshot())
}

// ComputeCategoryBreakdown groups amounts by category. A nil slice means the
// full ledger; pass a filtered view to break down a subset.
func (s *BookService) ComputeCategoryBreakdown(ctx context.Context, records []core.Record) []core.CategoryAmount {
	if records == nil {
		records = s.store.Snapshot()
	}
	return report.ByCategory(records)
}

// ComputeMonthlyTrend buckets expense totals by month over the whole ledger.
func (s *BookService) ComputeMonthlyTrend(ctx context.Context) []core.MonthAmount {
	return report.ByMonth(s.store.Snapshot())
}

// SetGoal updates the savings goal from user text. Zero clears the goal;
// negative or unparseable values are rejected.
func (s *BookService) SetGoal(ctx context.Context, amountText string) error {
	goal, err := core.ParseAmount(amountText)
	if err != nil {
		return err
	}
	if goal.Sign() < 0 {
		return core.ErrInvalidAmount
	}

	s.store.SetGoal(goal)
	slog.InfoContext(ctx, "Savings goal set", applog.FieldGoal, goal.String())
	return nil
}

// GoalProgress returns the current balance as a percentage of the goal, or
// core.ErrNoGoal when no goal is set. The percentage is not clamped.
func (s *BookService) GoalProgress(ctx context.Context) (decimal.Decimal, error) {
	totals := report.Totals(s.store.Snapshot())
	progress, ok := report.GoalProgress(totals.Balance, s.store.Goal())
	if !ok {
		return decimal.Decimal{}, core.ErrNoGoal
	}
	return progress, nil
}

// Snapshot returns a copy of the full ledger in order.
func (s *BookService) Snapshot(ctx context.Context) []core.Record {
	return s.store.Snapshot()
}
