package render

import (
	"stacklens/internal/frag"
	"stacklens/internal/scan"
	"stacklens/internal/snapshot"
)

// NameLine tokenizes a qualified name; separator pieces become Separator
// fragments, runs carry the given kind.
func NameLine(name string, kind frag.Kind) frag.Line {
	pieces := scan.Name(name)
	line := make(frag.Line, 0, len(pieces))
	for _, p := range pieces {
		k := kind
		if p.Separator {
			k = frag.Separator
		}
		line = append(line, frag.Fragment{Kind: k, Text: p.Text})
	}
	return line
}

// ArgumentsLine tokenizes a raw argument-list string into Argument,
// ArgumentModifier, and Separator fragments.
func ArgumentsLine(args string) frag.Line {
	pieces := scan.Arguments(args)
	line := make(frag.Line, 0, len(pieces))
	for _, p := range pieces {
		k := frag.Argument
		switch {
		case p.Separator:
			k = frag.Separator
		case p.Modifier:
			k = frag.ArgumentModifier
		}
		line = append(line, frag.Fragment{Kind: k, Text: p.Text})
	}
	return line
}

// FrameLine builds the logical line for one parsed stack frame:
// Type.Method(Arguments), each part classified.
func FrameLine(fr snapshot.Frame) frag.Line {
	line := NameLine(fr.TypeName, frag.TypeName)
	line = append(line, frag.Fragment{Kind: frag.Separator, Text: "."})
	line = append(line, NameLine(fr.Method, frag.MethodName)...)
	line = append(line, frag.Fragment{Kind: frag.Separator, Text: "("})
	line = append(line, ArgumentsLine(fr.Arguments)...)
	line = append(line, frag.Fragment{Kind: frag.Separator, Text: ")"})
	return line
}
