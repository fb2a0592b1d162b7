// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

// Querier is the subset of [pgxpool.Pool] (and [pgx.Tx]) used by the stores.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Transactor is a [Querier] that can also open transactions (see pgx.BeginFunc).
type Transactor interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// # List Queries

// Clauses holds the parameterized tail of a list query.
//
// Usage:
//
//	clauses := postgres.BuildList(spec, "c", "name", "epithet")
//	count := "SELECT count(*) FROM characters c" + clauses.Where
//	page  := "SELECT ... FROM characters c" + clauses.Where + clauses.Order + clauses.Page
//	rows, err := db.Query(ctx, page, clauses.PageArgs()...)
type Clauses struct {
	// Where is empty or starts with " WHERE ".
	Where string
	// Order is " ORDER BY ..." with a tie-breaker on id for stable pages.
	Order string
	// Page is " LIMIT $n OFFSET $m".
	Page string
	// Args are the bind arguments of Where.
	Args []any

	limit  int
	offset int
}

// PageArgs returns the bind arguments of the full paged statement.
func (clauses Clauses) PageArgs() []any {
	args := make([]any, 0, len(clauses.Args)+2)
	args = append(args, clauses.Args...)
	return append(args, clauses.limit, clauses.offset)
}

// BuildList translates a [listquery.Spec] into SQL clauses on the table aliased as alias.
//
// Filter and sort columns come from the family's allow-list, never from the request.
func BuildList(spec listquery.Spec, alias string, searchColumns ...string) Clauses {
	var conditions []string
	var args []any

	for _, filter := range spec.Filters {
		args = append(args, filter.Value)
		conditions = append(conditions, fmt.Sprintf("%s %s $%d", qualify(alias, filter.Column), filter.Operator, len(args)))
	}

	if spec.Search != "" && len(searchColumns) > 0 {
		args = append(args, "%"+EscapeLike(spec.Search)+"%")
		matches := make([]string, 0, len(searchColumns))
		for _, column := range searchColumns {
			matches = append(matches, fmt.Sprintf("%s ILIKE $%d", qualify(alias, column), len(args)))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	clauses := Clauses{Args: args, limit: spec.Limit, offset: spec.Offset()}

	if len(conditions) > 0 {
		clauses.Where = " WHERE " + strings.Join(conditions, " AND ")
	}

	direction := listquery.Ascending
	if spec.SortOrder == listquery.Descending {
		direction = listquery.Descending
	}

	sortColumn := spec.SortBy
	if sortColumn == "" {
		sortColumn = "id"
	}

	clauses.Order = fmt.Sprintf(" ORDER BY %s %s NULLS LAST", qualify(alias, sortColumn), direction)
	if sortColumn != "id" {
		clauses.Order += fmt.Sprintf(", %s ASC", qualify(alias, "id"))
	}

	clauses.Page = fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return clauses
}

// EscapeLike escapes the LIKE wildcards in a user supplied search fragment.
func EscapeLike(fragment string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(fragment)
}

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// # Partial Updates

// Assignments collects the SET list of a partial UPDATE.
//
// Only fields present in the request are added, which keeps omitted columns untouched.
type Assignments struct {
	columns []string
	args    []any
}

// Set adds "column = value". A nil value clears the column.
func (assignments *Assignments) Set(column string, value any) {
	assignments.columns = append(assignments.columns, column)
	assignments.args = append(assignments.args, value)
}

// Assign adds column when field was supplied; an explicit null clears the column.
func Assign[T any](assignments *Assignments, column string, field optional.Field[T]) {
	if field.Provided() {
		assignments.Set(column, field.Ptr())
	}
}

// Len returns the number of assigned columns.
func (assignments *Assignments) Len() int {
	return len(assignments.columns)
}

// Statement renders the UPDATE of row id in table, bumping updated_at.
func (assignments *Assignments) Statement(table, idColumn string, id int) (string, []any) {
	parts := make([]string, 0, len(assignments.columns)+1)
	for i, column := range assignments.columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", column, i+1))
	}
	parts = append(parts, "updated_at = NOW()")

	args := make([]any, 0, len(assignments.args)+1)
	args = append(args, assignments.args...)
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(parts, ", "), idColumn, len(args))
	return query, args
}

// Insert renders an INSERT of the assigned columns into table.
// Columns left out fall back to their database defaults.
func (assignments *Assignments) Insert(table string) (string, []any) {
	placeholders := make([]string, len(assignments.columns))
	for i := range assignments.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(assignments.columns, ", "), strings.Join(placeholders, ", "))
	return query, append([]any(nil), assignments.args...)
}
