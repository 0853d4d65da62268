package sink

import "stacklens/internal/frag"

// Sink is the destination for rendered report text.
type Sink interface {
	// Write appends text to the current physical line and returns the
	// display width accounted for it.
	Write(text string) int

	// Newline terminates the current physical line.
	Newline()

	// Flush ensures all buffered output is written.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// FragmentWriter is an optional sink capability for kind-aware output.
// Renderers type-assert it and fall back to plain Write when absent.
type FragmentWriter interface {
	WriteFragment(f frag.Fragment) int
}
