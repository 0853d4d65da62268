package snapshot

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sanitize collapses line breaks to spaces, trims, and normalizes to NFC so
// one snapshot string always occupies one report row with a stable width.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	return norm.NFC.String(s)
}
