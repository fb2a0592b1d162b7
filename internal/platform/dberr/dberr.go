// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Mapping
//
//   - pgx.ErrNoRows          → NOT_FOUND
//   - unique_violation       → DUPLICATE_NAME
//   - foreign_key_violation  → HAS_ASSOCIATIONS on delete, INVALID_<FIELD> on write (see WrapWrite)
//   - anything else          → INTERNAL_ERROR (cause kept for logs)
//
// The service layer checks names and dependents before writing. These
// mappings catch the writes that race past those checks, so a concurrent
// duplicate still surfaces with the same reason code instead of a 500.
package dberr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/grandline/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// action names the failed statement (e.g. "insert_race") and is kept in the cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return &apperr.AppError{
				Code:       apperr.CodeDuplicateName,
				Message:    "A record with this name already exists",
				HTTPStatus: http.StatusConflict,
				Cause:      fmt.Errorf("%s: %w", action, err),
			}
		case pgerrcode.ForeignKeyViolation:
			return &apperr.AppError{
				Code:       apperr.CodeHasAssociations,
				Message:    "The record is still referenced by other records",
				HTTPStatus: http.StatusConflict,
				Cause:      fmt.Errorf("%s: %w", action, err),
			}
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// WrapWrite is [Wrap] for INSERT and UPDATE statements on table.
//
// A foreign key violation there means a referenced row disappeared after the
// guard resolved it, so it is reported as INVALID_<FIELD> (400) like the guard
// would, not as a blocked delete. The field comes from the default constraint
// name "<table>_<column>_fkey".
func WrapWrite(err error, table, action string) error {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) || pgError.Code != pgerrcode.ForeignKeyViolation {
		return Wrap(err, action)
	}

	field := referenceField(table, pgError.ConstraintName)
	invalid := apperr.Field(field, fmt.Sprintf("%s references a record that does not exist", field))
	invalid.Cause = fmt.Errorf("%s: %w", action, err)
	return invalid
}

func referenceField(table, constraint string) string {
	trimmed, hasTable := strings.CutPrefix(constraint, table+"_")
	column, hasSuffix := strings.CutSuffix(trimmed, "_fkey")
	if !hasTable || !hasSuffix || column == "" {
		return "reference"
	}
	return column
}

// IsConstraint reports whether err is a Postgres violation of the named constraint.
//
// Stores use it to translate a specific unique index (for example the one-fruit-per-user
// index) into a domain reason code of their own.
func IsConstraint(err error, constraint string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.ConstraintName == constraint
}
