package scanner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, codes <-chan string, errs <-chan error) ([]string, error) {
	t.Helper()
	var got []string
	for c := range codes {
		got = append(got, c)
	}
	return got, <-errs
}

func TestAdapter_FiltersAndTrims(t *testing.T) {
	in := strings.NewReader("FM123\n\n  VL456  \nab\n12.34\r\n36999\r\n")
	got, err := collect(t, NewAdapter(in).Run(context.Background()))

	require.NoError(t, err)
	assert.Equal(t, []string{"FM123", "VL456", "36999"}, got)
}

func TestAdapter_StopWord(t *testing.T) {
	in := strings.NewReader("FM123\nDONE\nVL456\n")
	got, err := collect(t, NewAdapter(in, WithStopWord("done")).Run(context.Background()))

	require.NoError(t, err)
	assert.Equal(t, []string{"FM123"}, got)
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestAdapter_ReadError(t *testing.T) {
	boom := errors.New("device gone")
	_, err := collect(t, NewAdapter(failingReader{err: boom}).Run(context.Background()))
	require.ErrorIs(t, err, boom)
}

func TestAdapter_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	codes, errs := NewAdapter(pr).Run(ctx)

	go func() { _, _ = io.WriteString(pw, "FM111\nFM222\n") }()
	assert.Equal(t, "FM111", <-codes)

	cancel()
	_ = pw.Close()
	for range codes {
	}
	assert.NoError(t, <-errs)
}

func TestAdapter_LineAfterCancelIsDiscarded(t *testing.T) {
	pr, pw := io.Pipe()

	ctx, cancel := context.WithCancel(context.Background())
	codes, errs := NewAdapter(pr).Run(ctx)

	// the goroutine is blocked reading when ctx is cancelled
	cancel()
	go func() { _, _ = io.WriteString(pw, "FM333\n") }()

	got, err := collect(t, codes, errs)
	assert.Empty(t, got)
	assert.NoError(t, err)
	_ = pw.Close()
}

func TestFeedback(t *testing.T) {
	var buf bytes.Buffer
	fb := NewFeedback(&buf)

	fb.Saved()
	assert.Equal(t, "\a", buf.String())

	buf.Reset()
	fb.Duplicate()
	assert.Equal(t, "\a\a\a", buf.String())
}

func TestAdapter_SharedReaderKeepsRemainder(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("FM123\ndone\nlist\n"))
	got, err := collect(t, NewAdapter(br, WithStopWord("done")).Run(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, []string{"FM123"}, got)

	rest, err := br.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "list\n", rest)
}

func TestAdapter_LastLineWithoutNewline(t *testing.T) {
	got, err := collect(t, NewAdapter(strings.NewReader("FM123\nVL999")).Run(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, []string{"FM123", "VL999"}, got)
}
