// Package cliutil holds small pieces of CLI-process plumbing shared by
// cmd/wireconfctl's subcommands: logging setup, config-file loading, and
// the demo class registry. It builds on pkg/registry and pkg/values but is
// never imported by the core packages — the core only ever consumes a
// ClassRegistrar.
package cliutil

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger, discarding all output until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// LoggerOptions configures Init.
type LoggerOptions struct {
	Enabled bool       // if false, all logging is discarded
	LogFile string     // path to append JSON log lines to; required when Enabled
	Level   slog.Level // minimum log level, default LevelInfo
}

// Init configures the global logger. wireconfctl calls it once from the
// root command's PersistentPreRunE, before any subcommand runs.
func Init(opts LoggerOptions) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}
