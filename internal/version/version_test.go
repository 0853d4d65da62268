package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// Три компоненты семвера разделены точками даже с цветовыми кодами
	if strings.Count(Version, ".") != 2 {
		t.Errorf("Version %q should contain two dots", Version)
	}
}

func TestVersion_BuildMetadataOverride(t *testing.T) {
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	// Имитируем ldflags времени сборки
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2024-01-15T10:30:00Z")
	}
}
