// Package observ provides lightweight phase timing for CLI runs.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records one completed, timed phase of a run.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer collects phase durations for a single run.
type Timer struct {
	phases []Phase
}

// NewTimer creates an empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a phase and returns the callback completing it.
func (t *Timer) Begin(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, Phase{Name: name, Dur: time.Since(start), Note: note})
	}
}

// Phases returns the completed phases in completion order.
func (t *Timer) Phases() []Phase { return t.phases }

// Summary returns a human-readable listing of all completed phases.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		fmt.Fprintf(&sb, "  %-10s %7.2f ms", p.Name, toMillis(p.Dur))
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-10s %7.2f ms\n", "total", toMillis(total))
	return sb.String()
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
