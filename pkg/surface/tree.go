package surface

import "github.com/wireconf/wireconf/internal/wireerr"

// Identifier is a non-empty run of identifier bytes: ASCII alphanumeric,
// one of "_-:?@./#&", or any byte in 0x80..=0xFF. Identifiers compare
// bytewise.
type Identifier string

// NewIdentifier validates s against the identifier byte set shared by
// node names, property keys, and bareword values.
func NewIdentifier(s string) (Identifier, error) {
	if len(s) == 0 {
		return "", wireerr.New(wireerr.Structural, "identifier must be non-empty")
	}
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return "", wireerr.Newf(wireerr.Structural, "invalid identifier byte %q at offset %d", s[i], i)
		}
	}
	return Identifier(s), nil
}

// isIdentByte duplicates internal/lex.IsIdentByte to avoid an import
// cycle concern for such a small predicate; both must be kept in sync.
// No test compares the two copies directly.
func isIdentByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= 0x80:
		return true
	}
	switch b {
	case '_', '-', ':', '?', '@', '.', '/', '#', '&':
		return true
	}
	return false
}

// Value is either a String or a Subnode. It is a closed sum type: the
// only implementations are Str and Sub, both declared in this package.
type Value interface {
	isValue()
}

// Str is a string surface value.
type Str string

func (Str) isValue() {}

// Sub is a nested surface node value.
type Sub struct {
	Node *Node
}

func (Sub) isValue() {}

// Property is one (key, value) pair of a node, in source order.
type Property struct {
	Key   Identifier
	Value Value
}

// Node is the untyped syntactic representation of one bracketed element:
// a name, an ordered sequence of properties, and an ordered array of
// positional values.
type Node struct {
	Name       Identifier
	Properties []Property
	Array      []Value
}

// New constructs an empty node with the given name.
func New(name Identifier) *Node {
	return &Node{Name: name}
}

// SetProperty appends a property. Duplicate keys are preserved verbatim;
// rejecting or merging duplicates is a builder/registrar decision, not a
// surface-tree one.
func (n *Node) SetProperty(key Identifier, v Value) {
	n.Properties = append(n.Properties, Property{Key: key, Value: v})
}

// PushArray appends a positional array element.
func (n *Node) PushArray(v Value) {
	n.Array = append(n.Array, v)
}

// Equal reports whether n and o are structurally identical: same name,
// same properties in the same order, same array in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name {
		return false
	}
	if len(n.Properties) != len(o.Properties) || len(n.Array) != len(o.Array) {
		return false
	}
	for i := range n.Properties {
		if n.Properties[i].Key != o.Properties[i].Key {
			return false
		}
		if !valueEqual(n.Properties[i].Value, o.Properties[i].Value) {
			return false
		}
	}
	for i := range n.Array {
		if !valueEqual(n.Array[i], o.Array[i]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Sub:
		bv, ok := b.(Sub)
		return ok && av.Node.Equal(bv.Node)
	default:
		return false
	}
}
