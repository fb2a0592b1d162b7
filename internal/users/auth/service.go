// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/constants"
	"github.com/taibuivan/grandline/internal/platform/sec"
	"github.com/taibuivan/grandline/internal/platform/validate"
	"github.com/taibuivan/grandline/pkg/sanitize"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given operator.
	GenerateAccessToken(userID int, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements operator authentication use cases.
type Service struct {
	users     UserRepository
	tokens    TokenProvider
	accessTTL time.Duration
	logger    *slog.Logger
}

// NewService constructs a new [Service].
func NewService(users UserRepository, tokens TokenProvider, accessTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:     users,
		tokens:    tokens,
		accessTTL: accessTTL,
		logger:    logger,
	}
}

// decoyHash is compared against when the username is unknown, so both failure
// paths spend the same bcrypt time.
var decoyHash = sync.OnceValue(func() string {
	hash, err := sec.HashPassword("grandline-decoy-password")
	if err != nil {
		panic(err)
	}
	return hash
})

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginSession is the payload of a successful login.
type LoginSession struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

/*
Login validates operator credentials and issues an access token.

Description: Looks the operator up by username, compares the bcrypt hash and
signs a token carrying the id, username and role.

Returns:
  - *LoginSession: Token and operator profile
  - err: INVALID_CREDENTIALS (401) for any unknown username or wrong password
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	username := sanitize.Text(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// 1. Resolve the account; an unknown username still pays for a comparison
	user, err := service.users.FindByUsername(ctx, username)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		_, _ = sec.ComparePassword(input.Password, decoyHash())
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	// 2. Verify the password
	matches, err := sec.ComparePassword(input.Password, user.PasswordHash)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_compare_failed: %w", err))
	}
	if !matches {
		service.logger.Warn("login_failed", slog.Int("user_id", user.ID))
		return nil, invalidCredentials()
	}

	// 3. Issue the access token
	token, err := service.tokens.GenerateAccessToken(user.ID, user.Username, user.Role, service.accessTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	service.logger.Info("login_succeeded", slog.Int("user_id", user.ID))

	return &LoginSession{
		AccessToken: token,
		TokenType:   constants.AuthScheme,
		ExpiresIn:   int(service.accessTTL.Seconds()),
		User:        user,
	}, nil
}

// Me returns the operator behind verified claims.
func (service *Service) Me(ctx context.Context, claims *sec.AuthClaims) (*User, error) {
	return service.users.FindByID(ctx, claims.UserID)
}

// # Account Management

// CreateUserInput holds the data of a new operator account.
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// CreateUser validates, hashes and stores a new operator account.
func (service *Service) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	input.Username = sanitize.Text(input.Username)
	if input.Role == "" {
		input.Role = RoleEditor
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Custom(FieldPassword, len(input.Password) < PasswordMinLength,
			fmt.Sprintf("Password must be at least %d characters", PasswordMinLength)).
		Custom(FieldPassword, len(input.Password) > PasswordMaxLength,
			fmt.Sprintf("Password must be at most %d bytes", PasswordMaxLength)).
		OneOf(FieldRole, input.Role, Roles...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	_, err := service.users.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, usernameTaken()
	case !apperr.HasCode(err, apperr.CodeNotFound):
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user, err := service.users.Create(ctx, input.Username, hash, input.Role)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_created", slog.Int("user_id", user.ID), slog.String("role", user.Role))
	return user, nil
}

func invalidCredentials() *apperr.AppError {
	return apperr.Unauthorized(apperr.CodeInvalidLogin, "Invalid username or password")
}
