// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/dberr"
	"github.com/taibuivan/grandline/internal/platform/postgres"
)

// usernameConstraint is the unique constraint on users.username.
const usernameConstraint = "users_username_key"

// PostgresUserRepository implements [UserRepository] using PostgreSQL.
type PostgresUserRepository struct {
	db postgres.Querier
}

// NewPostgresUserRepository constructs a new [PostgresUserRepository].
func NewPostgresUserRepository(db postgres.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = schema.Qualified("", []string{
	schema.Users.ID, schema.Users.Username, schema.Users.PasswordHash,
	schema.Users.Role, schema.Users.CreatedAt, schema.Users.UpdatedAt,
})

func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.Users.Table, schema.Users.Username)
	user, err := scanUser(repository.db.QueryRow(ctx, query, username))
	return user, wrap(err, "find_user_by_username")
}

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.Users.Table, schema.Users.ID)
	user, err := scanUser(repository.db.QueryRow(ctx, query, id))
	return user, wrap(err, "find_user_by_id")
}

func (repository *PostgresUserRepository) Create(ctx context.Context, username, passwordHash, role string) (*User, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, schema.Users.Table, schema.Users.Username, schema.Users.PasswordHash, schema.Users.Role, userColumns)

	user, err := scanUser(repository.db.QueryRow(ctx, query, username, passwordHash, role))
	if dberr.IsConstraint(err, usernameConstraint) {
		return nil, usernameTaken()
	}
	return user, wrap(err, "insert_user")
}

func wrap(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("User")
	}
	return dberr.Wrap(err, action)
}

func usernameTaken() *apperr.AppError {
	return apperr.Conflict(CodeUsernameTaken, "Username is already taken")
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}
	return user, nil
}
