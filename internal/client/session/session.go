package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/client/services"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
)

var (
	ErrUnknownGroup = errors.New("unknown group")
	ErrUnknownTab   = errors.New("unknown tab")
)

// Outcome is the result of a scan.
type Outcome int

const (
	// OutcomeIgnored means the code failed the validity filter.
	OutcomeIgnored Outcome = iota
	OutcomeSaved
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "ignored"
	}
}

type Session struct {
	store  *barcodes.Store
	sync   *services.SyncService
	cache  *services.ViewStateCache
	logger logging.Logger

	mu         sync.Mutex
	view       services.ViewState
	generation uint64
	scanning   bool
}

func New(store *barcodes.Store, sync *services.SyncService, cache *services.ViewStateCache, logger logging.Logger) *Session {
	return &Session{
		store:  store,
		sync:   sync,
		cache:  cache,
		logger: logger.With("module", "session"),
		view:   services.ViewState{Tab: services.TabScan},
	}
}

// Start restores the cached view and performs the initial pull. A failed
// pull is logged and leaves the list empty.
func (s *Session) Start(ctx context.Context) {
	vs, err := s.cache.Restore(ctx)
	if err != nil {
		s.logger.Warn(ctx, "view state not restored", "error", err)
	}
	if _, ok := barcodes.CategoryByName(vs.Group); !ok {
		vs.Group = ""
	}

	s.mu.Lock()
	s.view = vs
	s.mu.Unlock()

	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "initial load failed", "error", err)
	}
}

// Scan records code. Only valid codes are considered; a code already in
// the list is reported as a duplicate and nothing changes.
func (s *Session) Scan(ctx context.Context, code string) Outcome {
	code = strings.TrimSpace(code)
	if !barcodes.Valid(code) {
		return OutcomeIgnored
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Insert(code)
	if !ok {
		return OutcomeDuplicate
	}
	s.logger.Debug(ctx, "scanned", "code", rec.Code, "category", barcodes.Classify(rec.Code).Name)
	s.commitLocked()
	return OutcomeSaved
}

// DeleteAt removes the record at index of the full list.
func (s *Session) DeleteAt(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteAt(index); err != nil {
		return err
	}
	s.commitLocked()
	return nil
}

// DeleteMany removes every record at indices; nothing changes if any index
// is out of range.
func (s *Session) DeleteMany(indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteMany(indices); err != nil {
		return err
	}
	s.commitLocked()
	return nil
}

// DeleteCode removes the record with code and reports whether it existed.
func (s *Session) DeleteCode(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteCode(code) {
		return false
	}
	s.commitLocked()
	return true
}

// DeleteCodes removes every listed code that is still present and returns
// how many were removed. The removal is one mutation and one push.
func (s *Session) DeleteCodes(codes []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range codes {
		if s.store.DeleteCode(c) {
			n++
		}
	}
	if n > 0 {
		s.commitLocked()
	}
	return n
}

// Clear empties the list.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Clear()
	s.commitLocked()
}

// commitLocked marks a local mutation and queues the new snapshot. The
// caller holds s.mu so snapshots are queued in mutation order.
func (s *Session) commitLocked() {
	s.generation++
	s.sync.Push(s.store.Records())
}

// Refresh pulls the shared list and replaces the local one. It reports
// false when the pull was not applied: a local change was not yet written
// to storage when the pull started, or the local list changed while the
// pull was in flight. Either way the pulled list predates local state.
func (s *Session) Refresh(ctx context.Context) (bool, error) {
	applied, _, err := s.refresh(ctx)
	return applied, err
}

// refresh is Refresh that also reports whether the applied list differs
// from the local one.
func (s *Session) refresh(ctx context.Context) (applied, changed bool, err error) {
	s.mu.Lock()
	gen := s.generation
	if !s.sync.Settled() {
		if s.sync.State() == services.StateIdle {
			// the last write failed; write the local list again
			s.sync.Push(s.store.Records())
		}
		s.mu.Unlock()
		s.logger.Debug(ctx, "pull skipped, local changes not yet stored")
		return false, false, nil
	}
	s.mu.Unlock()

	records, err := s.sync.Pull(ctx)
	if err != nil {
		return false, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		s.logger.Debug(ctx, "stale pull discarded")
		return false, false, nil
	}
	before := s.store.Records()
	s.store.ReplaceAll(records)
	return true, !slices.Equal(before, s.store.Records()), nil
}

// SetScanning marks whether a continuous scan is in progress.
func (s *Session) SetScanning(on bool) {
	s.mu.Lock()
	s.scanning = on
	s.mu.Unlock()
}

// View returns the current view state.
func (s *Session) View() services.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// OpenGroup drills into a category and clears the search.
func (s *Session) OpenGroup(ctx context.Context, name string) error {
	cat, ok := barcodes.CategoryByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}

	s.mu.Lock()
	s.view.Tab = services.TabList
	s.view.Group = cat.Name
	s.view.Search = ""
	s.mu.Unlock()

	s.persist(ctx, s.cache.SetTab(ctx, services.TabList))
	s.persist(ctx, s.cache.SetGroup(ctx, cat.Name))
	s.persist(ctx, s.cache.SetSearch(ctx, ""))
	return nil
}

// Back returns to the group overview of the list tab.
func (s *Session) Back(ctx context.Context) {
	s.mu.Lock()
	s.view = services.ViewState{Tab: services.TabList}
	s.mu.Unlock()

	s.persist(ctx, s.cache.SetGroup(ctx, ""))
	s.persist(ctx, s.cache.SetSearch(ctx, ""))
	s.persist(ctx, s.cache.SetTab(ctx, services.TabList))
}

// ResetView returns to the scan tab and forgets the cached view.
func (s *Session) ResetView(ctx context.Context) {
	s.mu.Lock()
	s.view = services.ViewState{Tab: services.TabScan}
	s.mu.Unlock()

	s.persist(ctx, s.cache.Reset(ctx))
}

// SetSearch sets the search term, trimmed. An empty term ends the search.
func (s *Session) SetSearch(ctx context.Context, term string) {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	s.view.Search = term
	s.mu.Unlock()

	s.persist(ctx, s.cache.SetSearch(ctx, term))
}

// SwitchTab activates the scan or list tab.
func (s *Session) SwitchTab(ctx context.Context, tab string) error {
	if tab != services.TabScan && tab != services.TabList {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}

	s.mu.Lock()
	s.view.Tab = tab
	s.mu.Unlock()

	s.persist(ctx, s.cache.SetTab(ctx, tab))
	return nil
}

// Flush waits for queued writes.
func (s *Session) Flush(ctx context.Context) error {
	return s.sync.Flush(ctx)
}

// SyncState reports whether a write is in flight.
func (s *Session) SyncState() services.SyncState {
	return s.sync.State()
}

func (s *Session) persist(ctx context.Context, err error) {
	if err != nil {
		s.logger.Warn(ctx, "view state not saved", "error", err)
	}
}

// RecordAt returns the record at index of the full list.
func (s *Session) RecordAt(index int) (barcodes.Record, bool) {
	records := s.store.Records()
	if index < 0 || index >= len(records) {
		return barcodes.Record{}, false
	}
	return records[index], true
}
