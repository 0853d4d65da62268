package sink

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
)

// File owns an output file for the duration of a rendering pass.
// Close is idempotent, so a deferred Close releases the file on every exit
// path, including a panic raised mid-render.
type File struct {
	f      *os.File
	buf    *bufio.Writer
	closed bool
}

// NewFile creates (or truncates) the file at path and returns a sink owning it.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &File{f: f, buf: bufio.NewWriter(f)}, nil
}

// Write appends text and returns its display width.
func (s *File) Write(text string) int {
	_, _ = s.buf.WriteString(text) //nolint:errcheck // sticky in bufio, surfaced by Flush
	return runewidth.StringWidth(text)
}

// Newline terminates the current physical line.
func (s *File) Newline() {
	_ = s.buf.WriteByte('\n') //nolint:errcheck
}

// Flush drains the buffer and reports the first write error.
func (s *File) Flush() error {
	return s.buf.Flush()
}

// Close flushes and releases the file exactly once.
func (s *File) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	flushErr := s.buf.Flush()
	closeErr := s.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// Name returns the path the sink writes to.
func (s *File) Name() string {
	return s.f.Name()
}
