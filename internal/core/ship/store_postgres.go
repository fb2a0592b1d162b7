// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ship

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

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var shipColumns = schema.Qualified("", schema.Ships.Columns())

func (repository *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]*Ship, int, error) {
	clauses := postgres.BuildList(spec, "", schema.Ships.Name)

	var total int
	countQuery := `SELECT count(*) FROM ` + schema.Ships.Table + clauses.Where
	if err := repository.db.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_ships")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s%s%s%s`, shipColumns, schema.Ships.Table, clauses.Where, clauses.Order, clauses.Page)
	rows, err := repository.db.Query(ctx, query, clauses.PageArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_ships")
	}
	defer rows.Close()

	ships := make([]*Ship, 0, spec.Limit)
	for rows.Next() {
		ship, err := scanShip(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_ship")
		}
		ships = append(ships, ship)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_ships")
	}

	return ships, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Ship, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, shipColumns, schema.Ships.Table)
	ship, err := scanShip(repository.db.QueryRow(ctx, query, id))
	return ship, wrap(err, "get_ship")
}

func (repository *PostgresRepository) Create(ctx context.Context, input Input) (*Ship, error) {
	query, args := assignments(input).Insert(schema.Ships.Table)
	ship, err := scanShip(repository.db.QueryRow(ctx, query+" RETURNING "+shipColumns, args...))
	return ship, wrap(err, "insert_ship")
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, input Input) (*Ship, error) {
	query, args := assignments(input).Statement(schema.Ships.Table, schema.Ships.ID, id)
	ship, err := scanShip(repository.db.QueryRow(ctx, query+" RETURNING "+shipColumns, args...))
	return ship, wrap(err, "update_ship")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := repository.db.Exec(ctx, `DELETE FROM `+schema.Ships.Table+` WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_ship")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(Family.Name)
	}
	return nil
}

func wrap(err error, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(Family.Name)
	}
	return dberr.Wrap(err, action)
}

func assignments(input Input) *postgres.Assignments {
	columns := schema.Ships
	assignments := &postgres.Assignments{}

	postgres.Assign(assignments, columns.Name, input.Name)
	postgres.Assign(assignments, columns.ShipType, input.ShipType)
	postgres.Assign(assignments, columns.Status, input.Status)
	postgres.Assign(assignments, columns.Description, input.Description)
	postgres.Assign(assignments, columns.ImageURL, input.ImageURL)

	return assignments
}

func scanShip(row pgx.Row) (*Ship, error) {
	s := &Ship{}
	if err := row.Scan(&s.ID, &s.Name, &s.ShipType, &s.Status, &s.Description, &s.ImageURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}
