package render

import (
	"fmt"
	"strconv"

	"stacklens/internal/analyze"
	"stacklens/internal/frag"
	"stacklens/internal/sink"
)

// rawFramesLabel opens the raw-frame block of a group.
const rawFramesLabel = "Raw stack frames:"

type reportRenderer struct {
	line *LineRenderer
	opts Options
}

// Report renders the full grouped report to out and flushes it. Groups render
// in input order; the pass owns out exclusively until it returns.
func Report(out sink.Sink, pt *analyze.ParallelThreads, opts Options) error {
	r := &reportRenderer{line: NewLineRenderer(out, opts.MaxWidth), opts: opts}

	r.overview(pt)
	for i := range pt.Groups {
		r.group(&pt.Groups[i])
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

func (r *reportRenderer) overview(pt *analyze.ParallelThreads) {
	r.line.WriteSeparator()
	r.line.WriteLine(frag.Line{
		{Kind: frag.Text, Text: fmt.Sprintf("Thread count: %d ", pt.ThreadCount)},
		{Kind: frag.Text, Text: fmt.Sprintf(" Unique stack traces: %d", len(pt.Groups))},
	})
	r.line.WriteSeparator()
}

func (r *reportRenderer) group(g *analyze.ThreadGroup) {
	r.line.WriteSeparator()
	r.line.WriteLine(frag.Line{{Kind: frag.Header, Text: g.Header}})
	r.line.WriteSeparator()

	r.extraInfo(g)

	for _, fr := range g.Info.Frames {
		r.line.WriteLine(FrameLine(fr))
	}

	if r.opts.RawFrames && len(g.Info.RawFrames) > 0 {
		r.line.WriteSeparator()
		r.line.WriteLine(frag.Line{{Kind: frag.StackFrame, Text: rawFramesLabel}})
		for _, raw := range g.Info.RawFrames {
			r.line.WriteLine(NameLine(raw, frag.TypeName))
		}
	}

	r.line.WriteSeparator()
}

// extraInfo emits the exception/lock line. When neither applies it emits
// nothing at all, not an empty box.
func (r *reportRenderer) extraInfo(g *analyze.ThreadGroup) {
	var line frag.Line
	if g.Kind == analyze.GroupSingle && g.Info.Exception != nil {
		line = append(line, frag.Fragment{Kind: frag.ExceptionType, Text: g.Info.Exception.TypeName})
		if g.Info.Exception.Message != "" {
			line = append(line,
				frag.Fragment{Kind: frag.Separator, Text: ": "},
				frag.Fragment{Kind: frag.ExceptionMessage, Text: g.Info.Exception.Message},
			)
		}
	}
	if g.Info.LockCount > 0 {
		line = append(line,
			frag.Fragment{Kind: frag.Text, Text: "LockCount"},
			frag.Fragment{Kind: frag.Separator, Text: ": "},
			frag.Fragment{Kind: frag.Text, Text: strconv.FormatUint(uint64(g.Info.LockCount), 10)},
		)
	}
	if len(line) == 0 {
		return
	}
	r.line.WriteLine(line)
	r.line.WriteSeparator()
}
