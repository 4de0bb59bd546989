package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wireconf/wireconf/internal/cliutil"
	"github.com/wireconf/wireconf/pkg/wireconf"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file>",
	Short: "Parse, build, reverse, and print a file, proving build(reverse(build(x))) holds",
	Args:  cobra.ExactArgs(1),
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

		printed := wireconf.Print(reversed)
		reparsed, err := wireconf.Parse([]byte(printed))
		if err != nil {
			printError("re-parse: %v\n", err)
			return err
		}
		if _, err := wireconf.Build(reparsed, reg, ar); err != nil {
			printError("re-build: %v\n", err)
			return err
		}

		cliutil.L.Info("roundtrip ok", "name", string(n.Name))
		printInfo("%s\n", printed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}
