// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grandline/internal/platform/constants"
	pgstore "github.com/taibuivan/grandline/internal/platform/postgres"
	"github.com/taibuivan/grandline/internal/users/auth"
)

// passwordEnv lets scripts pass the password without exposing it in argv.
const passwordEnv = "GRANDLINE_PASSWORD"

func newUserCmd(load loadFunc) *cobra.Command {
	user := &cobra.Command{
		Use:   "user",
		Short: "Manage operator accounts",
	}

	var input auth.CreateUserInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an operator account",
		Long: `Create stores a new operator account with a bcrypt hashed password.

The password is read from --password or, when omitted, from $` + passwordEnv + `.

Example:
  catalogctl user create --username nami --password 'clima-tact' --role admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input.Password == "" {
				input.Password = os.Getenv(passwordEnv)
			}

			env, err := load(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.StartupTimeout)
			defer cancel()

			pool, err := pgstore.NewPool(ctx, env.cfg.DatabaseURL, env.logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Account creation never signs tokens.
			service := auth.NewService(auth.NewPostgresUserRepository(pool), nil, env.cfg.AccessTokenTTL, env.logger)

			created, err := service.CreateUser(ctx, input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", created.ID, created.Username, created.Role)
			return nil
		},
	}
	create.Flags().StringVar(&input.Username, "username", "", "login name (required)")
	create.Flags().StringVar(&input.Password, "password", "", "password, 8 to 72 bytes (default $"+passwordEnv+")")
	create.Flags().StringVar(&input.Role, "role", auth.RoleEditor, "editor or admin")
	_ = create.MarkFlagRequired("username")

	user.AddCommand(create)
	return user
}
