package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/wireconf/wireconf/internal/cliutil"
	"github.com/wireconf/wireconf/pkg/registry"
	"github.com/wireconf/wireconf/pkg/wireconf"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Parse and build every listed file, reporting all failures together",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := cliutil.DemoRegistry(loadedConfig().Classes)
		if err != nil {
			return err
		}

		var combined error
		ok := 0
		for _, path := range args {
			if err := validateOne(path, reg); err != nil {
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", path, err))
				continue
			}
			ok++
		}

		cliutil.L.Info("validate finished", "total", len(args), "ok", ok)
		if combined != nil {
			printError("%v\n", combined)
			return combined
		}
		printInfo("%d file(s) valid\n", ok)
		return nil
	},
}

func validateOne(path string, reg *registry.Static) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := wireconf.Parse(data)
	if err != nil {
		return err
	}
	ar := wireconf.NewArena()
	_, err = wireconf.Build(n, reg, ar)
	return err
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
