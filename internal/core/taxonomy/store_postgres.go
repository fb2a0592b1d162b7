// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/dberr"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/internal/platform/postgres"
)

// PostgresRepository stores one kind in its own table.
type PostgresRepository struct {
	db   postgres.Querier
	kind Kind
}

func NewPostgresRepository(db postgres.Querier, kind Kind) *PostgresRepository {
	return &PostgresRepository{db: db, kind: kind}
}

func (repository *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]*Type, int, error) {
	table := repository.kind.Table
	clauses := postgres.BuildList(spec, "", table.Name)

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, table.Table, clauses.Where)
	if err := repository.db.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_"+table.Table)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s%s%s`,
		schema.Qualified("", table.Columns()), table.Table, clauses.Where, clauses.Order, clauses.Page)

	rows, err := repository.db.Query(ctx, query, clauses.PageArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+table.Table)
	}
	defer rows.Close()

	types := make([]*Type, 0, spec.Limit)
	for rows.Next() {
		row, err := scanType(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_"+table.Table)
		}
		types = append(types, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+table.Table)
	}

	return types, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Type, error) {
	table := repository.kind.Table
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Qualified("", table.Columns()), table.Table, table.ID)

	row, err := scanType(repository.db.QueryRow(ctx, query, id))
	return row, repository.wrap(err, "get_"+table.Table)
}

func (repository *PostgresRepository) Create(ctx context.Context, input CreateInput) (*Type, error) {
	table := repository.kind.Table
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s
	`, table.Table, table.Name, table.Description, schema.Qualified("", table.Columns()))

	row, err := scanType(repository.db.QueryRow(ctx, query, input.Name, input.Description))
	return row, repository.wrap(err, "insert_"+table.Table)
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) (*Type, error) {
	table := repository.kind.Table

	var assignments postgres.Assignments
	if input.Name.Provided() {
		assignments.Set(table.Name, input.Name.Value())
	}
	if input.Description.Provided() {
		assignments.Set(table.Description, input.Description.Ptr())
	}

	statement, args := assignments.Statement(table.Table, table.ID, id)
	query := statement + " RETURNING " + schema.Qualified("", table.Columns())

	row, err := scanType(repository.db.QueryRow(ctx, query, args...))
	return row, repository.wrap(err, "update_"+table.Table)
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	table := repository.kind.Table
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+table.Table)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(repository.kind.Name)
	}
	return nil
}

// wrap names the kind in NOT_FOUND instead of the generic "Resource".
func (repository *PostgresRepository) wrap(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(repository.kind.Name)
	}
	return dberr.Wrap(err, action)
}

func scanType(row pgx.Row) (*Type, error) {
	t := &Type{}
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}
