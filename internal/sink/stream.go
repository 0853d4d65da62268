package sink

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// Stream writes rendered text to an io.Writer through a buffer.
// Write errors are sticky inside the buffer and surface from Flush.
type Stream struct {
	w *bufio.Writer
}

// NewStream creates a Stream over w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: bufio.NewWriter(w)}
}

// Write appends text and returns its display width.
func (s *Stream) Write(text string) int {
	_, _ = s.w.WriteString(text) //nolint:errcheck // sticky in bufio, surfaced by Flush
	return runewidth.StringWidth(text)
}

// Newline terminates the current physical line.
func (s *Stream) Newline() {
	_ = s.w.WriteByte('\n') //nolint:errcheck
}

// Flush drains the buffer and reports the first write error.
func (s *Stream) Flush() error {
	return s.w.Flush()
}

// Close flushes. The writer's lifetime belongs to the caller.
func (s *Stream) Close() error {
	return s.w.Flush()
}
