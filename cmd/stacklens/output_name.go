package main

import (
	"path/filepath"
	"strings"
)

// outputNameFromPath строит имя файла отчёта рядом со снимком:
// snap.json превращается в snap.stacks.txt.
func outputNameFromPath(snapshotPath string) string {
	return strings.TrimSuffix(snapshotPath, filepath.Ext(snapshotPath)) + ".stacks.txt"
}
