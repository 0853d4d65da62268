package main

import (
	"path/filepath"
	"testing"
)

func TestOutputNameFromPath(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"snap.json", "snap.stacks.txt"},
		{filepath.Join("dumps", "snap.json"), filepath.Join("dumps", "snap.stacks.txt")},
		{"snap", "snap.stacks.txt"},
		{"snap.v2.json", "snap.v2.stacks.txt"},
	}
	for _, tc := range cases {
		got := outputNameFromPath(tc.input)
		if got != tc.want {
			t.Fatalf("outputNameFromPath(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
