package sink

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"stacklens/internal/frag"
)

// Multi fans rendered output out to multiple sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a Multi that forwards to all provided sinks in order.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write forwards text to every sink.
func (m *Multi) Write(text string) int {
	return m.forward(text, func(s Sink) int {
		return s.Write(text)
	})
}

// WriteFragment forwards a classified fragment, downgrading to plain text
// for sinks without kind awareness.
func (m *Multi) WriteFragment(f frag.Fragment) int {
	return m.forward(f.Text, func(s Sink) int {
		if fw, ok := s.(FragmentWriter); ok {
			return fw.WriteFragment(f)
		}
		return s.Write(f.Text)
	})
}

// forward visits every sink and verifies they account the same width.
// Disagreement is a programming-contract defect.
func (m *Multi) forward(text string, emit func(Sink) int) int {
	if len(m.sinks) == 0 {
		return runewidth.StringWidth(text)
	}
	width := emit(m.sinks[0])
	for _, s := range m.sinks[1:] {
		if w := emit(s); w != width {
			panic(fmt.Sprintf("sink width mismatch: %d vs %d for %q", w, width, text))
		}
	}
	return width
}

// Newline terminates the current physical line on every sink.
func (m *Multi) Newline() {
	for _, s := range m.sinks {
		s.Newline()
	}
}

// Flush flushes all underlying sinks.
func (m *Multi) Flush() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all underlying sinks.
func (m *Multi) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
