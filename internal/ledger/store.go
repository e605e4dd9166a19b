// Package ledger holds the in-memory transaction ledger. The Store is the
// single owned handle passed to whichever component needs the ledger; derived
// views are returned as fresh values, never kept as shared state.
package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"registro/internal/core"
)

// Store is an ordered sequence of records plus the savings goal scalar.
// Insertion order is preserved and duplicates are legal.
type Store struct {
	mu      sync.Mutex
	records []core.Record
	goal    decimal.Decimal
}

func New() *Store {
	return &Store{}
}

// NewWithRecords seeds a store with an initial ledger.
func NewWithRecords(records []core.Record) *Store {
	s := New()
	s.ReplaceAll(records)
	return s
}

// Add validates and appends the record. Nothing is appended on a validation
// failure.
func (s *Store) Add(r core.Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

// Delete removes the first record structurally equal to match, scanning from
// the head. Returns core.ErrNotFound when nothing matches.
func (s *Store) Delete(match core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.Equal(match) {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}

// ReplaceAll swaps the entire ledger contents in one step.
func (s *Store) ReplaceAll(records []core.Record) {
	cp := append([]core.Record(nil), records...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cp
}

// Snapshot returns a copy of the current contents in ledger order.
func (s *Store) Snapshot() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.records...)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// SetGoal sets the savings goal. Zero clears it.
func (s *Store) SetGoal(goal decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goal = goal
}

// Goal returns the savings goal; zero or negative means unset.
func (s *Store) Goal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}
