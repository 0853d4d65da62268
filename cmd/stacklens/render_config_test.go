package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, data string) {
	t.Helper()
	path := filepath.Join(dir, "stacklens.toml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write stacklens.toml: %v", err)
	}
}

func TestLoadRenderSettings(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `# report defaults
[render]
max_width = 72
color = "off"
`)

	settings, found, err := loadRenderSettings(root)
	if err != nil {
		t.Fatalf("loadRenderSettings: %v", err)
	}
	if !found {
		t.Fatalf("expected config to be found")
	}
	if !settings.HasMaxWidth || settings.MaxWidth != 72 {
		t.Fatalf("MaxWidth = (%v, %d), want (true, 72)", settings.HasMaxWidth, settings.MaxWidth)
	}
	if !settings.HasColor || settings.Color != "off" {
		t.Fatalf("Color = (%v, %q), want (true, off)", settings.HasColor, settings.Color)
	}
	// raw_frames не задан, поэтому не должен считаться определённым
	if settings.HasRawFrames {
		t.Fatalf("expected raw_frames to be undefined")
	}
}

func TestLoadRenderSettings_WalkUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `[render]
raw_frames = true
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	settings, found, err := loadRenderSettings(nested)
	if err != nil {
		t.Fatalf("loadRenderSettings: %v", err)
	}
	if !found {
		t.Fatalf("expected config in ancestor directory to be found")
	}
	if !settings.HasRawFrames || !settings.RawFrames {
		t.Fatalf("RawFrames = (%v, %v), want (true, true)", settings.HasRawFrames, settings.RawFrames)
	}
}

func TestLoadRenderSettings_Missing(t *testing.T) {
	root := t.TempDir()

	_, found, err := loadRenderSettings(root)
	if err != nil {
		t.Fatalf("loadRenderSettings: %v", err)
	}
	if found {
		t.Fatalf("expected no config in empty tree")
	}
}

func TestLoadRenderSettings_Malformed(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `[render
max_width = 72
`)

	_, found, err := loadRenderSettings(root)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !found {
		t.Fatalf("malformed config should still count as found")
	}
}
