package registry

import (
	"github.com/wireconf/wireconf/internal/wireerr"
	"github.com/wireconf/wireconf/pkg/values"
)

// ClassSpec declaratively describes one class for Static: its name, its
// declared properties, its optional array element kind, and its
// duplicate-property policy — duplicate handling is a class-level
// decision, not one the core legislates.
type ClassSpec struct {
	Name       string
	Properties []PropertyInfo
	// ArrayType is nil when the class does not support a positional
	// array; every node built against it must then have an empty array.
	ArrayType *values.Kind
	// RejectDuplicateProperties, when true, makes a second SetProperty
	// call for an already-set property name a BuilderError. When false,
	// the last assignment wins.
	RejectDuplicateProperties bool
}

// Static is a small in-memory ClassRegistrar built from a fixed set of
// ClassSpecs. It is the reference registrar used by this repository's
// tests and CLI demo — production registrars wrapping
// concrete endpoint drivers are out of scope for this package.
type Static struct {
	classes map[string]ClassDescriptor
}

// NewStatic builds a Static registrar from specs, rejecting duplicate or
// unnamed classes.
func NewStatic(specs ...ClassSpec) (*Static, error) {
	s := &Static{classes: make(map[string]ClassDescriptor, len(specs))}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, wireerr.New(wireerr.Schema, "class spec missing a name")
		}
		if _, exists := s.classes[spec.Name]; exists {
			return nil, wireerr.Newf(wireerr.Schema, "duplicate class name %q", spec.Name)
		}
		propIndex := make(map[string]values.Kind, len(spec.Properties))
		for _, p := range spec.Properties {
			propIndex[p.Name] = p.Kind
		}
		s.classes[spec.Name] = &genericClass{spec: spec, propIndex: propIndex}
	}
	return s, nil
}

// Lookup implements ClassRegistrar.
func (s *Static) Lookup(name string) (ClassDescriptor, bool) {
	c, ok := s.classes[name]
	return c, ok
}

// genericClass is the ClassDescriptor for one ClassSpec.
type genericClass struct {
	spec      ClassSpec
	propIndex map[string]values.Kind
}

func (c *genericClass) Name() string { return c.spec.Name }

func (c *genericClass) Properties() []PropertyInfo { return c.spec.Properties }

func (c *genericClass) ArrayType() (values.Kind, bool) {
	if c.spec.ArrayType == nil {
		return 0, false
	}
	return *c.spec.ArrayType, true
}

func (c *genericClass) NewBuilder() NodeBuilder {
	return &genericBuilder{class: c, props: make(map[string]values.TypedValue)}
}

// genericBuilder is the NodeBuilder for a genericClass.
type genericBuilder struct {
	class *genericClass
	props map[string]values.TypedValue
	array []values.TypedValue
}

func (b *genericBuilder) SetProperty(name string, v values.TypedValue) error {
	kind, declared := b.class.propIndex[name]
	if !declared {
		return wireerr.Newf(wireerr.Schema, "property %q of node type %q not found", name, b.class.Name())
	}
	if v.Kind() != kind {
		return wireerr.Newf(wireerr.Schema, "property %q of node type %q expects kind %v, got %v",
			name, b.class.Name(), kind, v.Kind())
	}
	if _, exists := b.props[name]; exists && b.class.spec.RejectDuplicateProperties {
		return wireerr.Newf(wireerr.Builder, "duplicate property %q rejected by node type %q", name, b.class.Name())
	}
	b.props[name] = v
	return nil
}

func (b *genericBuilder) PushArrayElement(v values.TypedValue) error {
	kind, supported := b.class.ArrayType()
	if !supported {
		return wireerr.Newf(wireerr.Schema, "node type %q does not support an array", b.class.Name())
	}
	if v.Kind() != kind {
		return wireerr.Newf(wireerr.Schema, "array element of node type %q expects kind %v, got %v",
			b.class.Name(), kind, v.Kind())
	}
	b.array = append(b.array, v)
	return nil
}

func (b *genericBuilder) Finish() (Node, error) {
	return &genericNode{class: b.class, props: b.props, array: b.array}, nil
}

// genericNode is the registry.Node produced by genericBuilder.Finish.
type genericNode struct {
	class *genericClass
	props map[string]values.TypedValue
	array []values.TypedValue
}

func (n *genericNode) Class() ClassDescriptor { return n.class }

func (n *genericNode) Property(name string) (values.TypedValue, bool) {
	v, ok := n.props[name]
	return v, ok
}

func (n *genericNode) Array() []values.TypedValue { return n.array }
