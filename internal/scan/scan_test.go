package scan_test

import (
	"fmt"
	"strings"
	"testing"

	"stacklens/internal/scan"
)

func piecesToString(pieces []scan.Piece) string {
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = fmt.Sprintf("%q(sep=%v)", p.Text, p.Separator)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectName проверяет последовательность pieces и их флаги
func expectName(t *testing.T, input string, texts []string, separators []bool) {
	t.Helper()
	pieces := scan.Name(input)
	if len(pieces) != len(texts) {
		t.Fatalf("Expected %d pieces, got %d\nInput: %q\nPieces: %v",
			len(texts), len(pieces), input, piecesToString(pieces))
	}
	for i, p := range pieces {
		if p.Text != texts[i] {
			t.Errorf("Piece %d: expected text %q, got %q", i, texts[i], p.Text)
		}
		if p.Separator != separators[i] {
			t.Errorf("Piece %d (%q): expected separator=%v, got %v", i, p.Text, separators[i], p.Separator)
		}
	}
}

func TestName_QualifiedGeneric(t *testing.T) {
	expectName(t, "System.Collections.Generic.List`1",
		[]string{"System", ".", "Collections", ".", "Generic", ".", "List`1"},
		[]bool{false, true, false, true, false, true, false})
}

func TestName_NoSeparators(t *testing.T) {
	expectName(t, "RunWorker", []string{"RunWorker"}, []bool{false})
}

func TestName_Empty(t *testing.T) {
	if pieces := scan.Name(""); len(pieces) != 0 {
		t.Errorf("Expected no pieces for empty input, got %v", piecesToString(pieces))
	}
}

func TestName_GenericBrackets(t *testing.T) {
	expectName(t, "Dictionary<String,Int32>",
		[]string{"Dictionary", "<", "String", ",", "Int32", ">"},
		[]bool{false, true, false, true, false, true})
}

func TestName_AdjacentSeparators(t *testing.T) {
	// между соседними разделителями нет пустых pieces
	expectName(t, "..", []string{".", "."}, []bool{true, true})
	expectName(t, "<>", []string{"<", ">"}, []bool{true, true})
}

func TestName_LeadingTrailingSeparators(t *testing.T) {
	expectName(t, ".Wait.", []string{".", "Wait", "."}, []bool{true, false, true})
}

func TestName_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"System.Threading.Monitor",
		"List`1",
		"Dictionary<String,List<Int32>>",
		"...",
		"a.b<c,d>.e",
		"no separators at all",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var sb strings.Builder
			for _, p := range scan.Name(input) {
				sb.WriteString(p.Text)
			}
			if sb.String() != input {
				t.Errorf("Round-trip mismatch: got %q, want %q", sb.String(), input)
			}
		})
	}
}

func argPiecesToString(pieces []scan.ArgPiece) string {
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = fmt.Sprintf("%q(mod=%v,sep=%v)", p.Text, p.Modifier, p.Separator)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectArguments(t *testing.T, input string, want []scan.ArgPiece) {
	t.Helper()
	pieces := scan.Arguments(input)
	if len(pieces) != len(want) {
		t.Fatalf("Expected %d pieces, got %d\nInput: %q\nPieces: %v",
			len(want), len(pieces), input, argPiecesToString(pieces))
	}
	for i, p := range pieces {
		if p != want[i] {
			t.Errorf("Piece %d: expected %+v, got %+v", i, want[i], p)
		}
	}
}

func TestArguments_TypeList(t *testing.T) {
	expectArguments(t, "Object, Int32", []scan.ArgPiece{
		{Text: "Object"},
		{Text: ",", Separator: true},
		{Text: " ", Separator: true},
		{Text: "Int32"},
	})
}

func TestArguments_Modifiers(t *testing.T) {
	// Модификаторы регистрозависимые: только строчные распознаются
	tests := []struct {
		input    string
		modifier bool
	}{
		{"ref", true},
		{"out", true},
		{"in", true},
		{"params", true},
		{"Ref", false},
		{"OUT", false},
		{"inout", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pieces := scan.Arguments(tt.input)
			if len(pieces) != 1 {
				t.Fatalf("Expected 1 piece, got %v", argPiecesToString(pieces))
			}
			if pieces[0].Modifier != tt.modifier {
				t.Errorf("Expected modifier=%v, got %v", tt.modifier, pieces[0].Modifier)
			}
			if pieces[0].Separator {
				t.Errorf("Modifier piece must not be a separator")
			}
		})
	}
}

func TestArguments_RefQualifiedType(t *testing.T) {
	expectArguments(t, "ref System.String", []scan.ArgPiece{
		{Text: "ref", Modifier: true},
		{Text: " ", Separator: true},
		{Text: "System"},
		{Text: ".", Separator: true},
		{Text: "String"},
	})
}

func TestArguments_MultipleSpacesOnePiece(t *testing.T) {
	expectArguments(t, "out  Int32", []scan.ArgPiece{
		{Text: "out", Modifier: true},
		{Text: "  ", Separator: true},
		{Text: "Int32"},
	})
}

func TestArguments_Empty(t *testing.T) {
	if pieces := scan.Arguments(""); len(pieces) != 0 {
		t.Errorf("Expected no pieces for empty input, got %v", argPiecesToString(pieces))
	}
}

func TestArguments_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Object, Int32",
		"ref Dictionary<String,Int32>, out Boolean",
		"params Object[]",
		"  leading and trailing  ",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var sb strings.Builder
			for _, p := range scan.Arguments(input) {
				sb.WriteString(p.Text)
			}
			if sb.String() != input {
				t.Errorf("Round-trip mismatch: got %q, want %q", sb.String(), input)
			}
		})
	}
}
