package cliutil

import (
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/values"
)

// DemoRegistry builds the small class registrar wireconfctl exercises by
// default: a couple of endpoint-flavored classes loosely modeled on the
// kind of pipeline this surface syntax was designed to describe, without
// implementing any actual endpoint driver.
//
// allow restricts the registry to the named classes; an empty allow
// registers all of them. It is populated from Config.Classes so that a
// wireconfctl.yaml can narrow which demo classes a deployment exposes.
func DemoRegistry(allow []string) (*registry.Static, error) {
	childArray := values.ChildNode
	all := []registry.ClassSpec{
		{
			Name: "tcp",
			Properties: []registry.PropertyInfo{
				{Name: "host", Help: "IPv4 or IPv6 literal to connect or bind to", Kind: values.IPAddr},
				{Name: "port", Help: "TCP port number", Kind: values.PortNumber},
			},
			RejectDuplicateProperties: true,
		},
		{
			Name: "file",
			Properties: []registry.PropertyInfo{
				{Name: "path", Help: "filesystem path, taken as a plain string in this registry", Kind: values.Stringy},
				{Name: "append", Help: "open for append instead of truncate", Kind: values.Booly},
			},
			RejectDuplicateProperties: true,
		},
		{
			Name: "ws-c",
			Properties: []registry.PropertyInfo{
				{Name: "url", Help: "websocket URL, passed through verbatim", Kind: values.Stringy},
			},
			ArrayType:                 &childArray,
			RejectDuplicateProperties: true,
		},
	}

	if len(allow) == 0 {
		return registry.NewStatic(all...)
	}
	keep := make(map[string]bool, len(allow))
	for _, name := range allow {
		keep[name] = true
	}
	specs := make([]registry.ClassSpec, 0, len(all))
	for _, spec := range all {
		if keep[spec.Name] {
			specs = append(specs, spec)
		}
	}
	return registry.NewStatic(specs...)
}
