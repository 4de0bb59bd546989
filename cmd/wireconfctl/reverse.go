package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wireconf/wireconf/internal/cliutil"
	"github.com/wireconf/wireconf/pkg/wireconf"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <file>",
	Short: "Parse, build, and reverse a file, printing the reconstructed surface form",
	Long: `reverse builds the file against the built-in demo registry and
immediately reverses the typed result back into surface syntax, without
re-parsing it. Property order in the output follows the class's
declared order, not the input file's order; use "roundtrip" instead to
also verify the reversed form re-parses and re-builds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		reg, err := cliutil.DemoRegistry(loadedConfig().Classes)
		if err != nil {
			return err
		}
		ar := wireconf.NewArena()

		n, err := wireconf.Parse(data)
		if err != nil {
			printError("parse: %v\n", err)
			return err
		}
		id, err := wireconf.Build(n, reg, ar)
		if err != nil {
			printError("build: %v\n", err)
			return err
		}
		reversed, err := wireconf.Reverse(id, ar)
		if err != nil {
			printError("reverse: %v\n", err)
			return err
		}

		cliutil.L.Info("reversed node", "name", string(n.Name))
		printInfo("%s\n", wireconf.Print(reversed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)
}
