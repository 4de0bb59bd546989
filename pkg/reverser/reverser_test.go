package reverser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireconf/wireconf/internal/parser"
	"github.com/wireconf/wireconf/pkg/arena"
	"github.com/wireconf/wireconf/pkg/builder"
	"github.com/wireconf/wireconf/pkg/printer"
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
		},
		registry.ClassSpec{
			Name:      "ws-c",
			ArrayType: &childKind,
		},
	)
	require.NoError(t, err)
	return reg
}

func buildFromSource(t *testing.T, reg registry.ClassRegistrar, ar arena.Arena, src string) arena.NodeID {
	t.Helper()
	n, consumed, err := parser.ParseNode([]byte(src))
	require.NoError(t, err)
	require.Equal(t, len(src), consumed)
	id, err := builder.Build(n, reg, ar)
	require.NoError(t, err)
	return id
}

func TestReverseScalarProperties(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	id := buildFromSource(t, reg, ar, "[tcp host=127.0.0.1 port=80]")

	reversed, err := Reverse(id, ar)
	require.NoError(t, err)
	require.Equal(t, "tcp", string(reversed.Name))
	require.Equal(t, "[tcp host=127.0.0.1 port=80]", printer.Print(reversed))
}

func TestReverseDeclaredPropertyOrderNotSurfaceOrder(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	// Surface order is port, host; class declares host, port.
	id := buildFromSource(t, reg, ar, "[tcp port=80 host=127.0.0.1]")

	reversed, err := Reverse(id, ar)
	require.NoError(t, err)
	require.Equal(t, "host", string(reversed.Properties[0].Key))
	require.Equal(t, "port", string(reversed.Properties[1].Key))
}

func TestReverseRecursesIntoChildNodes(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	id := buildFromSource(t, reg, ar, "[ws-c [tcp host=127.0.0.1 port=1]]")

	reversed, err := Reverse(id, ar)
	require.NoError(t, err)
	require.Len(t, reversed.Array, 1)
	_, ok := reversed.Array[0].(surface.Sub)
	require.True(t, ok)
	require.Equal(t, "[ws-c [tcp host=127.0.0.1 port=1]]", printer.Print(reversed))
}

func TestReverseBuildPrintRoundTrip(t *testing.T) {
	reg := demoRegistry(t)
	ar := arena.New()
	id := buildFromSource(t, reg, ar, "[tcp port=80 host=127.0.0.1]")

	reversed, err := Reverse(id, ar)
	require.NoError(t, err)

	printed := printer.Print(reversed)
	reparsed, consumed, err := parser.ParseNode([]byte(printed))
	require.NoError(t, err)
	require.Equal(t, len(printed), consumed)

	id2, err := builder.Build(reparsed, reg, ar)
	require.NoError(t, err)

	raw1, _ := ar.Get(id)
	raw2, _ := ar.Get(id2)
	n1 := raw1.(registry.Node)
	n2 := raw2.(registry.Node)

	host1, _ := n1.Property("host")
	host2, _ := n2.Property("host")
	require.Equal(t, host1, host2)
}
