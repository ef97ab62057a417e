package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
)

// ListStorage is where the shared list lives: a remote transport or the
// local database.
type ListStorage interface {
	Load(ctx context.Context) ([]barcodes.Record, error)
	Save(ctx context.Context, records []barcodes.Record) error
	Clear(ctx context.Context) error
}

type SyncState int

const (
	StateIdle SyncState = iota
	StateSyncing
)

func (s SyncState) String() string {
	if s == StateSyncing {
		return "syncing"
	}
	return "idle"
}

// SyncService pushes full-list snapshots to storage and pulls the list back.
//
// Writes go through a queue with at most one write in flight. Snapshots
// pushed while a write is running replace each other, so only the latest
// one is written next (last push wins). Failed writes are logged and
// dropped; the local list is never rolled back.
//
// Every push gets a sequence number. A successful write acknowledges the
// sequence of the snapshot it carried, so Settled tells whether storage
// holds the latest pushed snapshot.
type SyncService struct {
	storage ListStorage
	logger  logging.Logger
	timeout time.Duration

	mu         sync.Mutex
	pending    []barcodes.Record
	pendingSeq uint64
	hasPending bool
	waiters    []chan error
	running    bool
	idle       chan struct{}
	pushed     uint64
	acked      uint64
}

func NewSyncService(storage ListStorage, logger logging.Logger, timeout time.Duration) *SyncService {
	idle := make(chan struct{})
	close(idle)
	return &SyncService{
		storage: storage,
		logger:  logger.With("module", "sync"),
		timeout: timeout,
		idle:    idle,
	}
}

// Push enqueues a snapshot of records. The returned channel receives the
// result of the write that covered this snapshot (it or a newer one) and is
// then closed. Callers may ignore it.
func (s *SyncService) Push(records []barcodes.Record) <-chan error {
	done := make(chan error, 1)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushed++
	s.pending = slices.Clone(records)
	s.pendingSeq = s.pushed
	s.hasPending = true
	s.waiters = append(s.waiters, done)

	if !s.running {
		s.running = true
		s.idle = make(chan struct{})
		go s.drain()
	}

	return done
}

func (s *SyncService) drain() {
	for {
		s.mu.Lock()
		if !s.hasPending {
			s.running = false
			close(s.idle)
			s.mu.Unlock()
			return
		}
		snapshot, seq, waiters := s.pending, s.pendingSeq, s.waiters
		s.pending, s.waiters, s.hasPending = nil, nil, false
		s.mu.Unlock()

		err := s.write(snapshot)
		if err == nil {
			s.mu.Lock()
			if seq > s.acked {
				s.acked = seq
			}
			s.mu.Unlock()
		}
		for _, w := range waiters {
			w <- err
			close(w)
		}
	}
}

func (s *SyncService) write(records []barcodes.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	var err error
	if len(records) == 0 {
		err = s.storage.Clear(ctx)
	} else {
		err = s.storage.Save(ctx, records)
	}

	if err != nil {
		s.logger.Error(ctx, "push failed", "records", len(records), "error", err)
		return fmt.Errorf("push: %w", err)
	}
	s.logger.Debug(ctx, "list pushed", "records", len(records))
	return nil
}

// Pull fetches the whole list from storage.
func (s *SyncService) Pull(ctx context.Context) ([]barcodes.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	records, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "pull failed", "error", err)
		return nil, fmt.Errorf("pull: %w", err)
	}
	return records, nil
}

// Flush blocks until no write is queued or in flight.
func (s *SyncService) Flush(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settled reports whether no write is queued or in flight and the latest
// pushed snapshot was written successfully. Only then does a pull reflect
// every local change.
func (s *SyncService) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.running && s.acked == s.pushed
}

func (s *SyncService) State() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return StateSyncing
	}
	return StateIdle
}
