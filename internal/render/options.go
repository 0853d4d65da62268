package render

// DefaultMaxWidth is the nominal box width when Options leave it unset.
const DefaultMaxWidth = 100

// Options configures report rendering.
type Options struct {
	// MaxWidth is the nominal box width in display cells; <= 0 selects
	// DefaultMaxWidth.
	MaxWidth int
	// RawFrames additionally emits each group's unparsed frame text.
	RawFrames bool
}
