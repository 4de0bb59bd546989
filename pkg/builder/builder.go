package builder

import (
	"github.com/wireconf/wireconf/internal/wireerr"
	"github.com/wireconf/wireconf/pkg/arena"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/surface"
	"github.com/wireconf/wireconf/pkg/values"
)

// Build resolves n's class in reg, type-checks and sets its properties
// and array elements in source order, recursively builds any ChildNode
// subnodes first, and inserts the finished node into ar.
func Build(n *surface.Node, reg registry.ClassRegistrar, ar arena.Arena) (arena.NodeID, error) {
	class, ok := reg.Lookup(string(n.Name))
	if !ok {
		return 0, wireerr.Newf(wireerr.Schema, "node type %q not found", string(n.Name))
	}

	kinds := make(map[string]values.Kind, len(class.Properties()))
	for _, p := range class.Properties() {
		kinds[p.Name] = p.Kind
	}

	b := class.NewBuilder()

	for _, prop := range n.Properties {
		key := string(prop.Key)
		kind, declared := kinds[key]
		if !declared {
			return 0, wireerr.In(string(n.Name), wireerr.Newf(wireerr.Schema, "property %q of node type %q not found", key, string(n.Name)))
		}

		typed, err := valueToTyped(prop.Value, kind, reg, ar, string(n.Name), key)
		if err != nil {
			return 0, err
		}
		if err := b.SetProperty(key, typed); err != nil {
			return 0, annotate(err, string(n.Name), key)
		}
	}

	arrayKind, hasArray := class.ArrayType()
	if !hasArray && len(n.Array) > 0 {
		return 0, wireerr.In(string(n.Name), wireerr.Newf(wireerr.Schema, "node type %q does not support an array", string(n.Name)))
	}
	for _, v := range n.Array {
		typed, err := valueToTyped(v, arrayKind, reg, ar, string(n.Name), "")
		if err != nil {
			return 0, err
		}
		if err := b.PushArrayElement(typed); err != nil {
			return 0, annotate(err, string(n.Name), "")
		}
	}

	node, err := b.Finish()
	if err != nil {
		return 0, annotate(err, string(n.Name), "")
	}
	return ar.Insert(node), nil
}

// valueToTyped dispatches one surface value against its declared kind:
// ChildNode recurses into Build, every other kind goes through
// values.Interpret on the value's string form.
func valueToTyped(v surface.Value, kind values.Kind, reg registry.ClassRegistrar, ar arena.Arena, nodeName, propName string) (values.TypedValue, error) {
	sub, isSub := v.(surface.Sub)
	if kind == values.ChildNode {
		if !isSub {
			return nil, wireerr.In(nodeName, wireerr.Newf(wireerr.Schema, "property %q expects a subnode, got a string", propName))
		}
		childID, err := Build(sub.Node, reg, ar)
		if err != nil {
			return nil, err
		}
		return values.VChildNode{ID: childID}, nil
	}
	if isSub {
		return nil, wireerr.In(nodeName, wireerr.Newf(wireerr.Schema, "property %q of kind %v does not accept a subnode", propName, kind))
	}
	raw := string(v.(surface.Str))
	typed, err := values.Interpret(kind, raw)
	if err != nil {
		return nil, annotate(err, nodeName, propName)
	}
	return typed, nil
}

// annotate attaches node/property context to any error Build encounters,
// whether it originates in values.Interpret (Kind Coercion, no context
// yet) or in a registrar's builder (Kind Builder, already carrying a
// message).
func annotate(err error, nodeName, propName string) error {
	if we, ok := err.(*wireerr.Error); ok {
		cp := *we
		cp.Node = nodeName
		if propName != "" {
			cp.Msg = "property " + propName + ": " + cp.Msg
		}
		return &cp
	}
	return wireerr.In(nodeName, wireerr.Wrap(wireerr.Builder, nodeName, "property "+propName, err))
}
