// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines persistence operations for operator accounts.
type UserRepository interface {
	// FindByUsername returns NOT_FOUND when no account has the exact username.
	FindByUsername(ctx context.Context, username string) (*User, error)

	FindByID(ctx context.Context, id int) (*User, error)

	// Create stores a new account; a taken username is a USERNAME_TAKEN conflict.
	Create(ctx context.Context, username, passwordHash, role string) (*User, error)
}
