package registry

import "github.com/wireconf/wireconf/pkg/values"

// PropertyInfo describes one property a class declares: its name, a
// short help string for documentation/CLI purposes, and its value kind.
type PropertyInfo struct {
	Name string
	Help string
	Kind values.Kind
}

// Node is the typed-node contract the arena stores and the reverser
// inspects: its class, its set properties, and its array elements, in
// the order the builder that produced it decided (the reverser itself
// only relies on the class's declared property order).
type Node interface {
	Class() ClassDescriptor
	Property(name string) (values.TypedValue, bool)
	Array() []values.TypedValue
}

// ClassDescriptor exposes one registered node kind: its official name,
// its declared properties, its optional array element kind, and a
// factory for a fresh NodeBuilder.
type ClassDescriptor interface {
	Name() string
	Properties() []PropertyInfo
	// ArrayType reports the declared array element kind, if the class
	// supports a positional array at all.
	ArrayType() (values.Kind, bool)
	NewBuilder() NodeBuilder
}

// NodeBuilder accumulates property and array values for one node under
// construction, then finalizes it.
type NodeBuilder interface {
	SetProperty(name string, v values.TypedValue) error
	PushArrayElement(v values.TypedValue) error
	Finish() (Node, error)
}

// ClassRegistrar enumerates classes by name. Implementations must be
// safe to consult concurrently with any parse/build/reverse call — the
// core treats it as read-only shared state.
type ClassRegistrar interface {
	Lookup(name string) (ClassDescriptor, bool)
}
