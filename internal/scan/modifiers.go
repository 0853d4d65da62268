package scan

var modifiers = map[string]struct{}{
	"ref":    {},
	"out":    {},
	"in":     {},
	"params": {},
}

// IsModifier reports whether s is a parameter-passing modifier keyword.
// Matching is exact and case-sensitive: only lowercase forms are recognized.
func IsModifier(s string) bool {
	_, ok := modifiers[s]
	return ok
}
