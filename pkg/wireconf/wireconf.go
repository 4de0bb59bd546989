package wireconf

import (
	"github.com/wireconf/wireconf/internal/parser"
	"github.com/wireconf/wireconf/internal/wireerr"
	"github.com/wireconf/wireconf/pkg/arena"
	"github.com/wireconf/wireconf/pkg/builder"
	"github.com/wireconf/wireconf/pkg/printer"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/reverser"
	"github.com/wireconf/wireconf/pkg/surface"
	"github.com/wireconf/wireconf/pkg/values"
)

// Core types, re-exported so callers only need one import.
type (
	Node            = surface.Node
	Value           = surface.Value
	Str             = surface.Str
	Sub             = surface.Sub
	Property        = surface.Property
	Identifier      = surface.Identifier
	NodeID          = arena.NodeID
	Arena           = arena.Arena
	ClassRegistrar  = registry.ClassRegistrar
	ClassDescriptor = registry.ClassDescriptor
	NodeBuilder     = registry.NodeBuilder
	PropertyInfo    = registry.PropertyInfo
	Kind            = values.Kind
	TypedValue      = values.TypedValue
	Error           = wireerr.Error
	ErrorKind       = wireerr.Kind
	ClassSpec       = registry.ClassSpec
)

// Value kind constants, re-exported.
const (
	Stringy    = values.Stringy
	Enummy     = values.Enummy
	Numbery    = values.Numbery
	Floaty     = values.Floaty
	Booly      = values.Booly
	SockAddr   = values.SockAddr
	IPAddr     = values.IPAddr
	PortNumber = values.PortNumber
	Path       = values.Path
	URI        = values.URI
	Duration   = values.Duration
	ChildNode  = values.ChildNode
)

// Error kind constants, re-exported.
const (
	LexicalError     = wireerr.Lexical
	StructuralError  = wireerr.Structural
	SchemaError      = wireerr.Schema
	CoercionError    = wireerr.Coercion
	BuilderError     = wireerr.Builder
	ConsistencyError = wireerr.Consistency
)

// NewArena constructs the reference in-memory arena.
func NewArena() *arena.Slab { return arena.New() }

// NewStaticRegistry constructs the reference in-memory class registrar.
func NewStaticRegistry(specs ...registry.ClassSpec) (*registry.Static, error) {
	return registry.NewStatic(specs...)
}

// Parse parses exactly one node from data and reports an error if
// trailing bytes remain after its matching ']'.
func Parse(data []byte) (*Node, error) {
	n, consumed, err := parser.ParseNode(data)
	if err != nil {
		return nil, err
	}
	if consumed != len(data) {
		return nil, wireerr.Newf(wireerr.Structural, "unexpected trailing data after offset %d", consumed)
	}
	return n, nil
}

// Build resolves n against reg and inserts the typed result into ar.
func Build(n *Node, reg ClassRegistrar, ar Arena) (NodeID, error) {
	return builder.Build(n, reg, ar)
}

// Reverse reconstructs a surface node for the typed node at id.
func Reverse(id NodeID, ar Arena) (*Node, error) {
	return reverser.Reverse(id, ar)
}

// Print renders n in canonical surface syntax.
func Print(n *Node) string {
	return printer.Print(n)
}
