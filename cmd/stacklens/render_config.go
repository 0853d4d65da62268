package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type renderConfig struct {
	Render renderSection `toml:"render"`
}

type renderSection struct {
	MaxWidth  int    `toml:"max_width"`
	RawFrames bool   `toml:"raw_frames"`
	Color     string `toml:"color"`
}

// renderSettings хранит значения из stacklens.toml вместе с признаком,
// был ли ключ задан явно. Незаданные ключи не перекрывают дефолты.
type renderSettings struct {
	MaxWidth     int
	HasMaxWidth  bool
	RawFrames    bool
	HasRawFrames bool
	Color        string
	HasColor     bool
}

func findStacklensToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "stacklens.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadRenderSettings(startDir string) (renderSettings, bool, error) {
	configPath, ok, err := findStacklensToml(startDir)
	if err != nil || !ok {
		return renderSettings{}, ok, err
	}
	var cfg renderConfig
	meta, err := toml.DecodeFile(configPath, &cfg)
	if err != nil {
		return renderSettings{}, true, fmt.Errorf("%s: failed to parse TOML: %w", configPath, err)
	}
	settings := renderSettings{
		MaxWidth:     cfg.Render.MaxWidth,
		HasMaxWidth:  meta.IsDefined("render", "max_width"),
		RawFrames:    cfg.Render.RawFrames,
		HasRawFrames: meta.IsDefined("render", "raw_frames"),
		Color:        cfg.Render.Color,
		HasColor:     meta.IsDefined("render", "color"),
	}
	return settings, true, nil
}
