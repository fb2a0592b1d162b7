// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/grandline/internal/platform/sec"
	"github.com/taibuivan/grandline/internal/users/auth"
)

func newTokenCmd(load loadFunc) *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Issue access tokens",
	}

	var (
		userID   int
		username string
		role     string
		ttl      time.Duration
	)

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign an access token for scripts and smoke tests",
		Long: `Issue signs a token with JWT_PRIVATE_KEY_PATH without touching the database.

Example:
  catalogctl token issue --user-id 1 --username nami --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID < 1 {
				return fmt.Errorf("--user-id must be positive, got %d", userID)
			}
			if !slices.Contains(auth.Roles, role) {
				return fmt.Errorf("--role must be one of %v, got %q", auth.Roles, role)
			}

			env, err := load(cmd)
			if err != nil {
				return err
			}
			if env.cfg.JWTPrivKeyPath == "" {
				return errors.New("JWT_PRIVATE_KEY_PATH is required to sign tokens")
			}
			if ttl <= 0 {
				ttl = env.cfg.AccessTokenTTL
			}

			tokens, err := sec.LoadTokenService(env.cfg.JWTPrivKeyPath, env.cfg.JWTPubKeyPath, env.cfg.JWTIssuer)
			if err != nil {
				return err
			}

			signed, err := tokens.GenerateAccessToken(userID, username, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}
	issue.Flags().IntVar(&userID, "user-id", 0, "operator account id (required)")
	issue.Flags().StringVar(&username, "username", "", "operator login name (required)")
	issue.Flags().StringVar(&role, "role", auth.RoleEditor, "editor or admin")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default ACCESS_TOKEN_TTL)")
	_ = issue.MarkFlagRequired("user-id")
	_ = issue.MarkFlagRequired("username")

	token.AddCommand(issue)
	return token
}
