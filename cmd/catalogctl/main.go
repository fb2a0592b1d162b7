// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl is the operator CLI of the Grandline catalog.
//
// It reads the same environment as the API server and offers:
//
//	catalogctl migrate up|down|version
//	catalogctl user create --username nami --password ... [--role admin]
//	catalogctl token issue --user-id 1 --username nami [--role editor] [--ttl 1h]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grandline/internal/platform/config"
	"github.com/taibuivan/grandline/internal/platform/constants"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// environment carries what every subcommand needs once flags are parsed.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
}

// load reads the configuration lazily so that flag errors surface first.
func load(cmd *cobra.Command, verbose bool) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose || cfg.Debug {
		level = slog.LevelDebug
	}

	var sink io.Writer = cmd.ErrOrStderr()
	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName+"ctl"))

	return &environment{cfg: cfg, logger: logger}, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Operator tooling for the Grandline catalog",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	loader := func(cmd *cobra.Command) (*environment, error) { return load(cmd, verbose) }

	root.AddCommand(newMigrateCmd(loader))
	root.AddCommand(newUserCmd(loader))
	root.AddCommand(newTokenCmd(loader))
	return root
}

// loadFunc resolves the environment of a running subcommand.
type loadFunc func(cmd *cobra.Command) (*environment, error)
