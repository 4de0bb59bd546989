package reverser

import (
	"github.com/wireconf/wireconf/internal/wireerr"
	"github.com/wireconf/wireconf/pkg/arena"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/surface"
	"github.com/wireconf/wireconf/pkg/values"
)

// Reverse reconstructs a surface.Node for the typed node stored at id,
// walking its class's declared property order and its stored array.
func Reverse(id arena.NodeID, ar arena.Arena) (*surface.Node, error) {
	raw, ok := ar.Get(id)
	if !ok {
		return nil, wireerr.Newf(wireerr.Consistency, "node id %d not present in arena", uint32(id))
	}
	node, ok := raw.(registry.Node)
	if !ok {
		return nil, wireerr.Newf(wireerr.Consistency, "arena node %d does not implement registry.Node", uint32(id))
	}

	class := node.Class()
	name, err := surface.NewIdentifier(class.Name())
	if err != nil {
		return nil, wireerr.Newf(wireerr.Consistency, "class %q has an invalid name", class.Name())
	}
	out := surface.New(name)

	for _, info := range class.Properties() {
		typed, has := node.Property(info.Name)
		if !has {
			continue
		}
		key, err := surface.NewIdentifier(info.Name)
		if err != nil {
			return nil, wireerr.Newf(wireerr.Consistency, "property %q has an invalid name", info.Name)
		}
		v, err := toSurfaceValue(typed, info.Kind, ar, class.Name(), info.Name)
		if err != nil {
			return nil, err
		}
		out.SetProperty(key, v)
	}

	arrayKind, hasArray := class.ArrayType()
	for _, typed := range node.Array() {
		if !hasArray {
			return nil, wireerr.Newf(wireerr.Consistency, "node type %q has array elements but declares no array type", class.Name())
		}
		v, err := toSurfaceValue(typed, arrayKind, ar, class.Name(), "")
		if err != nil {
			return nil, err
		}
		out.PushArray(v)
	}

	return out, nil
}

// toSurfaceValue converts one typed value back to its surface form,
// failing with a ConsistencyError if its variant disagrees with the
// class's declared kind.
func toSurfaceValue(typed values.TypedValue, declared values.Kind, ar arena.Arena, nodeName, propName string) (surface.Value, error) {
	if typed.Kind() != declared {
		return nil, wireerr.In(nodeName, wireerr.Newf(wireerr.Consistency,
			"inconsistent property value: %q declared %v, stored value is %v", propName, declared, typed.Kind()))
	}
	if declared == values.ChildNode {
		child, ok := typed.(values.VChildNode)
		if !ok {
			return nil, wireerr.In(nodeName, wireerr.Newf(wireerr.Consistency, "property %q declared ChildNode but value is %T", propName, typed))
		}
		sub, err := Reverse(child.ID, ar)
		if err != nil {
			return nil, err
		}
		return surface.Sub{Node: sub}, nil
	}
	s, err := values.Format(typed)
	if err != nil {
		return nil, wireerr.In(nodeName, wireerr.Wrap(wireerr.Consistency, nodeName, "property "+propName, err))
	}
	return surface.Str(s), nil
}
