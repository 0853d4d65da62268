package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"stacklens/internal/frag"
	"stacklens/internal/sink"
)

const (
	openBorder  = "| "
	contBorder  = "|    "
	closeBorder = " |"
)

// LineRenderer lays logical lines into bordered physical lines on one sink.
type LineRenderer struct {
	out      sink.Sink
	fw       sink.FragmentWriter
	maxWidth int
}

// NewLineRenderer creates a renderer writing boxes of maxWidth cells to out.
func NewLineRenderer(out sink.Sink, maxWidth int) *LineRenderer {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	fw, _ := out.(sink.FragmentWriter)
	return &LineRenderer{out: out, fw: fw, maxWidth: maxWidth}
}

// MaxWidth returns the nominal box width.
func (r *LineRenderer) MaxWidth() int {
	return r.maxWidth
}

// WriteLine renders one logical line as one or more bordered physical lines.
// The line must hold at least one fragment.
func (r *LineRenderer) WriteLine(line frag.Line) {
	if len(line) == 0 {
		panic("render: empty logical line")
	}
	current := r.emit(frag.Fragment{Kind: frag.Border, Text: openBorder})
	for _, f := range line {
		// Перенос только когда на строке уже есть содержимое после рамки
		if current+runewidth.StringWidth(f.Text)+2 > r.maxWidth && current != 2 {
			r.closePhysical(current)
			current = r.emit(frag.Fragment{Kind: frag.Border, Text: contBorder})
		}
		current += r.emit(f)
	}
	r.closePhysical(current)
}

// WriteSeparator emits one horizontal separator row, flush with the boxes.
func (r *LineRenderer) WriteSeparator() {
	r.emit(frag.Fragment{Kind: frag.Border, Text: strings.Repeat("-", r.maxWidth+2)})
	r.out.Newline()
}

// closePhysical pads the open physical line to maxWidth and closes its border.
func (r *LineRenderer) closePhysical(current int) {
	if pad := r.maxWidth - current; pad > 0 {
		r.emit(frag.Fragment{Kind: frag.Border, Text: strings.Repeat(" ", pad)})
	}
	r.emit(frag.Fragment{Kind: frag.Border, Text: closeBorder})
	r.out.Newline()
}

// emit forwards one fragment, kind-aware when the sink supports it, and
// returns the width the sink accounted.
func (r *LineRenderer) emit(f frag.Fragment) int {
	if r.fw != nil {
		return r.fw.WriteFragment(f)
	}
	return r.out.Write(f.Text)
}
