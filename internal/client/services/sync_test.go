package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu      sync.Mutex
	saved   [][]barcodes.Record
	clears  int
	saveErr error

	started chan struct{}
	release chan struct{}

	loadResp []barcodes.Record
	loadErr  error
}

func (f *fakeStorage) Load(ctx context.Context) ([]barcodes.Record, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeStorage) Save(ctx context.Context, records []barcodes.Record) error {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, records)
	return f.saveErr
}

func (f *fakeStorage) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	return nil
}

func (f *fakeStorage) savedCodes() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, snap := range f.saved {
		var codes []string
		for _, r := range snap {
			codes = append(codes, r.Code)
		}
		out = append(out, codes)
	}
	return out
}

func list(codes ...string) []barcodes.Record {
	out := make([]barcodes.Record, 0, len(codes))
	for _, c := range codes {
		out = append(out, barcodes.Record{Code: c, Timestamp: "t"})
	}
	return out
}

func wait(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("push did not complete")
		return nil
	}
}

func TestPush_WritesSnapshot(t *testing.T) {
	st := &fakeStorage{}
	s := NewSyncService(st, logging.Discard(), time.Second)

	require.NoError(t, wait(t, s.Push(list("AAA", "BBB"))))
	assert.Equal(t, [][]string{{"AAA", "BBB"}}, st.savedCodes())
}

func TestPush_SnapshotIsCopied(t *testing.T) {
	st := &fakeStorage{release: make(chan struct{}), started: make(chan struct{}, 1)}
	s := NewSyncService(st, logging.Discard(), time.Second)

	records := list("AAA")
	done := s.Push(records)
	<-st.started
	records[0].Code = "ZZZ"
	close(st.release)

	require.NoError(t, wait(t, done))
	assert.Equal(t, [][]string{{"AAA"}}, st.savedCodes())
}

func TestPush_CoalescesWhileWriteInFlight(t *testing.T) {
	st := &fakeStorage{started: make(chan struct{}, 4), release: make(chan struct{})}
	s := NewSyncService(st, logging.Discard(), time.Second)

	first := s.Push(list("A11"))
	<-st.started
	assert.Equal(t, StateSyncing, s.State())

	second := s.Push(list("B22", "A11"))
	third := s.Push(list("C33", "B22", "A11"))
	close(st.release)

	require.NoError(t, wait(t, first))
	require.NoError(t, wait(t, second))
	require.NoError(t, wait(t, third))

	assert.Equal(t, [][]string{{"A11"}, {"C33", "B22", "A11"}}, st.savedCodes())

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, StateIdle, s.State())
}

func TestPush_EmptySnapshotClears(t *testing.T) {
	st := &fakeStorage{}
	s := NewSyncService(st, logging.Discard(), time.Second)

	require.NoError(t, wait(t, s.Push(nil)))
	assert.Equal(t, 1, st.clears)
	assert.Empty(t, st.savedCodes())
}

func TestPush_ErrorIsReported(t *testing.T) {
	boom := errors.New("boom")
	st := &fakeStorage{saveErr: boom}
	s := NewSyncService(st, logging.Discard(), time.Second)

	err := wait(t, s.Push(list("AAA")))
	require.ErrorIs(t, err, boom)

	// the queue keeps working after a failure
	st.mu.Lock()
	st.saveErr = nil
	st.mu.Unlock()
	require.NoError(t, wait(t, s.Push(list("BBB"))))
}

func TestFlush(t *testing.T) {
	st := &fakeStorage{started: make(chan struct{}, 1), release: make(chan struct{})}
	s := NewSyncService(st, logging.Discard(), time.Second)

	require.NoError(t, s.Flush(context.Background()), "idle service flushes immediately")

	s.Push(list("AAA"))
	<-st.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.Flush(ctx), context.DeadlineExceeded)

	close(st.release)
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, StateIdle, s.State())
}

func TestPull(t *testing.T) {
	st := &fakeStorage{loadResp: list("FM1")}
	s := NewSyncService(st, logging.Discard(), time.Second)

	got, err := s.Pull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list("FM1"), got)

	st.loadErr = errors.New("offline")
	_, err = s.Pull(context.Background())
	require.ErrorContains(t, err, "pull: offline")
}

func TestSyncState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "syncing", StateSyncing.String())
}

func TestSettled_TracksAcknowledgedPushes(t *testing.T) {
	st := &fakeStorage{started: make(chan struct{}, 2), release: make(chan struct{})}
	s := NewSyncService(st, logging.Discard(), time.Second)
	assert.True(t, s.Settled(), "nothing pushed yet")

	done := s.Push(list("AAA"))
	<-st.started
	assert.False(t, s.Settled(), "write in flight")

	close(st.release)
	require.NoError(t, wait(t, done))
	require.NoError(t, s.Flush(context.Background()))
	assert.True(t, s.Settled())

	st.mu.Lock()
	st.saveErr = errors.New("offline")
	st.mu.Unlock()
	require.Error(t, wait(t, s.Push(list("BBB", "AAA"))))
	require.NoError(t, s.Flush(context.Background()))
	assert.False(t, s.Settled(), "failed write leaves the snapshot unacknowledged")

	st.mu.Lock()
	st.saveErr = nil
	st.mu.Unlock()
	require.NoError(t, wait(t, s.Push(list("BBB", "AAA"))))
	require.NoError(t, s.Flush(context.Background()))
	assert.True(t, s.Settled())
}
