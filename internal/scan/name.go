package scan

// Piece is one output of Name: either a single separator character or a
// maximal run of non-separator characters.
type Piece struct {
	Text      string
	Separator bool
}

func isSeparator(b byte) bool {
	switch b {
	case '.', '<', '>', ',':
		return true
	default:
		return false
	}
}

// Name splits a qualified name into alternating run/separator pieces.
// An input without separators yields a single piece; an empty input yields none.
func Name(input string) []Piece {
	var pieces []Piece
	start := 0
	for i := 0; i < len(input); i++ {
		if !isSeparator(input[i]) {
			continue
		}
		if i > start {
			pieces = append(pieces, Piece{Text: input[start:i]})
		}
		pieces = append(pieces, Piece{Text: input[i : i+1], Separator: true})
		start = i + 1
	}
	if start < len(input) {
		pieces = append(pieces, Piece{Text: input[start:]})
	}
	return pieces
}
