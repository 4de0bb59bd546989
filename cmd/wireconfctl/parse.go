package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wireconf/wireconf/internal/cliutil"
	"github.com/wireconf/wireconf/pkg/wireconf"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its canonical surface form",
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
		cliutil.L.Debug("parsed node", "name", string(n.Name))
		printInfo("%s\n", wireconf.Print(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
