package scanner

import (
	"io"
	"strings"
)

const bell = "\a"

// Feedback writes audible cues to a terminal.
type Feedback struct {
	w io.Writer
}

func NewFeedback(w io.Writer) *Feedback {
	return &Feedback{w: w}
}

// Saved rings once.
func (f *Feedback) Saved() {
	_, _ = io.WriteString(f.w, bell)
}

// Duplicate rings three times.
func (f *Feedback) Duplicate() {
	_, _ = io.WriteString(f.w, strings.Repeat(bell, 3))
}
