package builder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireconf/wireconf/internal/parser"
	"github.com/wireconf/wireconf/pkg/arena"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/surface"
	"github.com/wireconf/wireconf/pkg/values"
)

func demoRegistry(t *testing.T) *registry.Static {
	t.Helper()
	childKind := values.ChildNode
	reg, err := registry.NewStatic(
		registry.ClassSpec{
			Name: "tcp",
			Properties: []registry.PropertyInfo{
				{Name: "host", Kind: values.IPAddr},
				{Name: "port", Kind: values.PortNumber},
			},
			RejectDuplicateProperties: true,
		},
		registry.ClassSpec{
			Name: "ws-c",
			Properties: []registry.PropertyInfo{
				{Name: "child", Kind: values.ChildNode},
			},
			ArrayType: &childKind,
		},
		registry.ClassSpec{
			Name: "c",
			Properties: []registry.PropertyInfo{
				{Name: "kind", Kind: values.Numbery},
			},
		},
	)
	require.NoError(t, err)
	return reg
}

func parseOrFatal(t *testing.T, src string) *surface.Node {
	t.Helper()
	n, consumed, err := parser.ParseNode([]byte(src))
	require.NoError(t, err)
	require.Equal(t, len(src), consumed)
	return n
}

func TestBuildScenario1(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[tcp host=127.0.0.1 port=80]")

	id, err := Build(n, reg, ar)
	require.NoError(t, err)

	raw, ok := ar.Get(id)
	require.True(t, ok)
	typed := raw.(registry.Node)

	host, ok := typed.Property("host")
	require.True(t, ok)
	require.Equal(t, values.IPAddr, host.Kind())

	port, ok := typed.Property("port")
	require.True(t, ok)
	require.Equal(t, values.VPort(80), port)
}

func TestBuildScenario2NestedChild(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[ws-c [tcp host=127.0.0.1 port=1]]")

	id, err := Build(n, reg, ar)
	require.NoError(t, err, "ws-c declares array_type ChildNode, so a positional subnode builds")

	raw, ok := ar.Get(id)
	require.True(t, ok)
	parent := raw.(registry.Node)
	require.Len(t, parent.Array(), 1)
	require.Equal(t, values.ChildNode, parent.Array()[0].Kind())
}

func TestBuildUnknownNodeType(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[nope]")
	_, err := Build(n, reg, ar)
	require.Error(t, err)
}

func TestBuildUnknownProperty(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[tcp bogus=1]")
	_, err := Build(n, reg, ar)
	require.Error(t, err)
}

func TestBuildDuplicatePropertyRejectedByClass(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[tcp port=1 port=2]")
	_, err := Build(n, reg, ar)
	require.Error(t, err)
}

func TestBuildCoercionError(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[c kind=abc]")
	_, err := Build(n, reg, ar)
	require.Error(t, err)
}

func TestBuildChildNodeInsertedBeforeParent(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	n := parseOrFatal(t, "[ws-c child=[tcp host=127.0.0.1 port=1]]")

	id, err := Build(n, reg, ar)
	require.NoError(t, err)

	parentRaw, ok := ar.Get(id)
	require.True(t, ok)
	parentNode := parentRaw.(registry.Node)
	childVal, ok := parentNode.Property("child")
	require.True(t, ok)
	child := childVal.(values.VChildNode)
	require.Less(t, uint32(child.ID), uint32(id), "child must be inserted before parent")
}
