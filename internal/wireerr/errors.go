// Package wireerr defines the closed error taxonomy shared by every core
// package: lexical, structural, schema, coercion, builder, and consistency
// failures. Each carries a Kind so callers can branch on category instead
// of matching message text.
package wireerr

import "fmt"

// Kind classifies a core error so callers can branch on intent rather than
// on message text.
type Kind int

const (
	// Lexical indicates an invalid byte or escape sequence encountered by
	// the parser in a given state.
	Lexical Kind = iota
	// Structural indicates truncated input, a missing node name, or a
	// misplaced '=', '"', or '[' token.
	Structural
	// Schema indicates an unknown node type, unknown property, disallowed
	// array, or a subnode/scalar mismatch against the declared kind.
	Schema
	// Coercion indicates a declared value kind failed to interpret a raw
	// string.
	Coercion
	// Builder indicates a class-specific rejection from SetProperty,
	// PushArrayElement, or Finish.
	Builder
	// Consistency indicates the reverser found a typed value whose variant
	// disagrees with the class's declared kind.
	Consistency
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Structural:
		return "structural"
	case Schema:
		return "schema"
	case Coercion:
		return "coercion"
	case Builder:
		return "builder"
	case Consistency:
		return "consistency"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed core error with an optional wrapped cause and the
// enclosing node name it occurred in.
type Error struct {
	Kind Kind
	Node string // enclosing node name, "" if unknown
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := e.Kind.String()
	if e.Node != "" {
		prefix = fmt.Sprintf("%s[%s]", prefix, e.Node)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an Error with no enclosing node context.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf constructs an Error from a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// In attaches an enclosing node name to an Error, returning a new value.
func In(node string, err *Error) *Error {
	if err == nil {
		return nil
	}
	cp := *err
	cp.Node = node
	return &cp
}

// Wrap constructs an Error that wraps an underlying cause.
func Wrap(kind Kind, node, msg string, cause error) *Error {
	return &Error{Kind: kind, Node: node, Msg: msg, Err: cause}
}
