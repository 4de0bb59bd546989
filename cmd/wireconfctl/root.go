package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireconf/wireconf/internal/cliutil"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	logFile    string
	configPath string

	// config is the parsed --config file, loaded once in
	// PersistentPreRunE; subcommands read it via loadedConfig.
	config cliutil.Config
)

var rootCmd = &cobra.Command{
	Use:   "wireconfctl",
	Short: "Parse, build, and reverse bracketed pipeline configuration",
	Long: `wireconfctl exercises the wireconf core: it parses the bracketed
surface syntax described by the project, optionally builds it against a
small built-in set of demo node classes, and can reverse a typed tree
back into canonical surface syntax.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliutil.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", configPath, err)
		}
		config = cfg

		enabled := logFile != "" || cfg.Log.Enabled
		file := logFile
		if file == "" {
			file = cfg.Log.File
		}
		return cliutil.Init(cliutil.LoggerOptions{
			Enabled: enabled,
			LogFile: file,
			Level:   levelFor(verbose),
		})
	},
}

// loadedConfig returns the parsed --config file. Its Classes field is the
// allowlist DemoRegistry honors, narrowing the built-in demo classes when
// the config file declares one.
func loadedConfig() cliutil.Config {
	return config
}

func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file (disabled if empty)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to wireconfctl's YAML config file")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.wireconfctl.yaml"
}

func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
