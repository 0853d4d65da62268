package sink

import (
	"bufio"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"stacklens/internal/frag"
)

// palette maps fragment kinds to their terminal styles.
// Kinds not listed render unstyled.
var palette = map[frag.Kind]*color.Color{
	frag.Border:           color.New(color.FgHiBlack),
	frag.Separator:        color.New(color.FgHiBlack),
	frag.Header:           color.New(color.FgHiWhite, color.Bold),
	frag.StackFrame:       color.New(color.FgHiWhite, color.Bold),
	frag.ExceptionType:    color.New(color.FgRed, color.Bold),
	frag.ExceptionMessage: color.New(color.FgYellow),
	frag.Namespace:        color.New(color.FgHiBlack),
	frag.TypeName:         color.New(color.FgCyan),
	frag.MethodName:       color.New(color.FgGreen),
	frag.ArgumentModifier: color.New(color.FgBlue, color.Bold),
}

// Color writes rendered fragments with per-kind terminal styles.
// Styling never changes accounted widths: escape sequences are zero-width.
type Color struct {
	w *bufio.Writer
}

// NewColor creates a Color sink over w.
func NewColor(w io.Writer) *Color {
	return &Color{w: bufio.NewWriter(w)}
}

// Write appends unstyled text and returns its display width.
func (c *Color) Write(text string) int {
	_, _ = c.w.WriteString(text) //nolint:errcheck // sticky in bufio, surfaced by Flush
	return runewidth.StringWidth(text)
}

// WriteFragment appends text styled by its kind.
func (c *Color) WriteFragment(f frag.Fragment) int {
	if style, ok := palette[f.Kind]; ok {
		_, _ = c.w.WriteString(style.Sprint(f.Text)) //nolint:errcheck
	} else {
		_, _ = c.w.WriteString(f.Text) //nolint:errcheck
	}
	return runewidth.StringWidth(f.Text)
}

// Newline terminates the current physical line.
func (c *Color) Newline() {
	_ = c.w.WriteByte('\n') //nolint:errcheck
}

// Flush drains the buffer and reports the first write error.
func (c *Color) Flush() error {
	return c.w.Flush()
}

// Close flushes. The writer's lifetime belongs to the caller.
func (c *Color) Close() error {
	return c.w.Flush()
}
