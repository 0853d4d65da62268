package observ_test

import (
	"strings"
	"testing"

	"stacklens/internal/observ"
)

func TestTimer_PhasesAndSummary(t *testing.T) {
	timer := observ.NewTimer()

	done := timer.Begin("load")
	done("12 threads")
	done = timer.Begin("render")
	done("")

	phases := timer.Phases()
	if len(phases) != 2 {
		t.Fatalf("Expected 2 phases, got %d", len(phases))
	}
	if phases[0].Name != "load" || phases[0].Note != "12 threads" {
		t.Errorf("phase 0 = %+v", phases[0])
	}
	if phases[1].Name != "render" {
		t.Errorf("phase 1 = %+v", phases[1])
	}

	summary := timer.Summary()
	for _, want := range []string{"timings:", "load", "12 threads", "render", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary() missing %q:\n%s", want, summary)
		}
	}
}

func TestTimer_EmptySummary(t *testing.T) {
	summary := observ.NewTimer().Summary()
	if !strings.Contains(summary, "total") {
		t.Errorf("Summary() missing total line:\n%s", summary)
	}
}
