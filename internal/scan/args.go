package scan

// ArgPiece is one output of Arguments: a separator, a modifier keyword, or a
// maximal run of other characters.
type ArgPiece struct {
	Text      string
	Modifier  bool
	Separator bool
}

// Arguments splits a raw argument-list string (parentheses already stripped)
// into classified pieces. Beyond the shared separator set, each maximal space
// run is one separator piece, so modifier keywords stand alone and can match
// the modifier table exactly. Modifiers are never separators.
func Arguments(input string) []ArgPiece {
	var pieces []ArgPiece
	start := 0
	emitRun := func(end int) {
		if end <= start {
			return
		}
		text := input[start:end]
		pieces = append(pieces, ArgPiece{Text: text, Modifier: IsModifier(text)})
	}
	for i := 0; i < len(input); i++ {
		switch {
		case isSeparator(input[i]):
			emitRun(i)
			pieces = append(pieces, ArgPiece{Text: input[i : i+1], Separator: true})
			start = i + 1
		case input[i] == ' ':
			emitRun(i)
			j := i + 1
			for j < len(input) && input[j] == ' ' {
				j++
			}
			pieces = append(pieces, ArgPiece{Text: input[i:j], Separator: true})
			start = j
			i = j - 1
		}
	}
	emitRun(len(input))
	return pieces
}
