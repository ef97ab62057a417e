package barcodes

import (
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/common"
)

// Store is the ordered, newest-first collection of scanned records.
// No two records share a code. Store is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []Record
	now     func() time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Insert prepends a fresh record for code. A code already present is
// rejected with accepted=false and the store is left unchanged.
func (s *Store) Insert(code string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(code) >= 0 {
		return Record{}, false
	}

	r := Record{Code: code, Timestamp: FormatTimestamp(s.now())}
	s.records = slices.Insert(s.records, 0, r)
	return r, true
}

// DeleteAt removes the record at index in the unfiltered order.
func (s *Store) DeleteAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return common.ErrInvalidIndex
	}
	s.records = slices.Delete(s.records, index, index+1)
	return nil
}

// DeleteMany removes every listed position. Indices are validated up front;
// if any is out of range nothing is removed. Removal runs from the highest
// index down so earlier removals never shift positions still pending.
func (s *Store) DeleteMany(indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unique := slices.Clone(indices)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	for _, i := range unique {
		if i < 0 || i >= len(s.records) {
			return common.ErrInvalidIndex
		}
	}

	for j := len(unique) - 1; j >= 0; j-- {
		i := unique[j]
		s.records = slices.Delete(s.records, i, i+1)
	}
	return nil
}

// DeleteCode removes the record carrying code and reports whether it existed.
func (s *Store) DeleteCode(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(code)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// Clear empties the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// ReplaceAll overwrites the store with records, keeping their order.
// Should the incoming list repeat a code, the first occurrence wins.
func (s *Store) ReplaceAll(records []Record) {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.Code]; dup {
			continue
		}
		seen[r.Code] = struct{}{}
		out = append(out, r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = out
}

// Records returns a copy of the current ordered records.
func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Contains reports whether code is already recorded.
func (s *Store) Contains(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(code) >= 0
}

func (s *Store) indexOf(code string) int {
	return slices.IndexFunc(s.records, func(r Record) bool { return r.Code == code })
}
