// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grandline/internal/platform/migration"
)

func newMigrateCmd(load loadFunc) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the catalog schema",
	}

	// withRunner opens the runner on MIGRATION_PATH and closes it after fn.
	withRunner := func(cmd *cobra.Command, fn func(*migration.Runner) error) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		runner, err := migration.Open(env.cfg.DatabaseURL, env.cfg.MigrationPath, env.logger)
		if err != nil {
			return err
		}
		defer runner.Close()

		return fn(runner)
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, (*migration.Runner).Up)
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			return withRunner(cmd, func(runner *migration.Runner) error { return runner.Down(steps) })
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, func(runner *migration.Runner) error {
				current, dirty, err := runner.Version()
				if err != nil {
					return err
				}
				if dirty {
					fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty)\n", current)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			})
		},
	}

	migrate.AddCommand(up, down, version)
	return migrate
}
