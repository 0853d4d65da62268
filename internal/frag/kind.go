package frag

// Kind represents the category of a rendered fragment.
type Kind uint8

const (
	// Border represents box borders, padding, and separator rows.
	Border Kind = iota
	// Header represents a group header line.
	Header
	// ExceptionType represents the type name of a captured exception.
	ExceptionType
	// ExceptionMessage represents the message of a captured exception.
	ExceptionMessage
	// StackFrame represents frame-level label text.
	StackFrame
	// Namespace represents a namespace segment of a qualified name.
	Namespace
	// TypeName represents a type segment of a qualified name.
	TypeName
	// MethodName represents a method segment of a qualified name.
	MethodName
	// Separator represents punctuation between segments ('.', '<', '>', ',').
	Separator
	// Text represents plain report text.
	Text
	// Argument represents a parameter type in an argument list.
	Argument
	// ArgumentModifier represents a parameter-passing keyword ("ref", "out", ...).
	ArgumentModifier
)

func (k Kind) String() string {
	switch k {
	case Border:
		return "border"
	case Header:
		return "header"
	case ExceptionType:
		return "exception-type"
	case ExceptionMessage:
		return "exception-message"
	case StackFrame:
		return "stack-frame"
	case Namespace:
		return "namespace"
	case TypeName:
		return "type-name"
	case MethodName:
		return "method-name"
	case Separator:
		return "separator"
	case Text:
		return "text"
	case Argument:
		return "argument"
	case ArgumentModifier:
		return "argument-modifier"
	}
	return "unknown"
}
