// Package scanner turns a stream of decoded barcode text into codes.
//
// Handheld and keyboard-wedge scanners type the decoded value followed by
// Enter, so the adapter reads line by line. Decoding pixels is not done
// here.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
)

// Adapter emits valid codes read from an io.Reader.
type Adapter struct {
	r    io.Reader
	stop string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithStopWord ends the stream when a line equals word (case-insensitive).
func WithStopWord(word string) Option {
	return func(a *Adapter) { a.stop = word }
}

func NewAdapter(r io.Reader, opts ...Option) *Adapter {
	a := &Adapter{r: r}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run reads until EOF, the stop word or ctx cancellation. When the reader
// is a *bufio.Reader it is read in place, one line at a time, so the caller
// can keep using it after the stop word. Codes failing
// barcodes.Valid and empty lines are dropped. The codes channel is closed
// when Run ends; a read error other than EOF is sent once on errs.
//
// A read in progress is not interrupted by ctx: after cancellation the
// reading goroutine ends as soon as the pending line (or EOF) arrives, and
// that line is discarded. Close the reader to end it sooner.
func (a *Adapter) Run(ctx context.Context) (<-chan string, <-chan error) {
	codes := make(chan string)
	errs := make(chan error, 1)

	br, ok := a.r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(a.r)
	}

	go func() {
		defer close(codes)
		defer close(errs)

		for {
			raw, err := br.ReadString('\n')
			if ctx.Err() != nil {
				return
			}
			line := strings.TrimSpace(raw)

			if line != "" {
				if a.stop != "" && strings.EqualFold(line, a.stop) {
					return
				}
				if barcodes.Valid(line) {
					select {
					case codes <- line:
					case <-ctx.Done():
						return
					}
				}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					errs <- err
				}
				return
			}
		}
	}()

	return codes, errs
}
