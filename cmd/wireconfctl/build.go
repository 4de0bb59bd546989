package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireconf/wireconf/internal/cliutil"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/values"
	"github.com/wireconf/wireconf/pkg/wireconf"
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Parse a file and build it against the built-in demo registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		n, err := wireconf.Parse(data)
		if err != nil {
			printError("%v\n", err)
			return err
		}

		reg, err := cliutil.DemoRegistry(loadedConfig().Classes)
		if err != nil {
			return err
		}
		ar := wireconf.NewArena()

		id, err := wireconf.Build(n, reg, ar)
		if err != nil {
			printError("%v\n", err)
			return err
		}
		cliutil.L.Info("built node", "name", string(n.Name), "id", uint32(id))

		raw, _ := ar.Get(id)
		typed := raw.(registry.Node)
		if jsonOut {
			return json.NewEncoder(os.Stdout).Encode(summarize(typed))
		}
		printInfo("built %s as node %d\n", typed.Class().Name(), uint32(id))
		return nil
	},
}

func summarize(n registry.Node) map[string]any {
	out := map[string]any{"class": n.Class().Name()}
	props := map[string]string{}
	for _, info := range n.Class().Properties() {
		v, ok := n.Property(info.Name)
		if !ok {
			continue
		}
		props[info.Name] = formatForSummary(v)
	}
	out["properties"] = props
	if arr := n.Array(); len(arr) > 0 {
		elems := make([]string, len(arr))
		for i, v := range arr {
			elems[i] = formatForSummary(v)
		}
		out["array"] = elems
	}
	return out
}

func formatForSummary(v values.TypedValue) string {
	if child, ok := v.(values.VChildNode); ok {
		return fmt.Sprintf("<node %d>", uint32(child.ID))
	}
	s, err := values.Format(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
