package frag

import "strings"

// Fragment is an immutable classified run of text, the indivisible unit of layout.
type Fragment struct {
	Kind Kind
	Text string
}

// Line is an ordered fragment sequence forming one logical row before wrapping.
type Line []Fragment

// Join returns the concatenated text of all fragments in order.
func (l Line) Join() string {
	var sb strings.Builder
	for _, f := range l {
		sb.WriteString(f.Text)
	}
	return sb.String()
}
