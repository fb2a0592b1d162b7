// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package devilfruit

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/grandline/internal/core/catalog"
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

var selectFruit = fmt.Sprintf(`
	SELECT %s, ft.name, u.name
	FROM %s f
	LEFT JOIN %s ft ON ft.id = f.%s
	LEFT JOIN %s u ON u.id = f.%s`,
	schema.Qualified("f", schema.DevilFruits.Columns()),
	schema.DevilFruits.Table,
	schema.FruitTypes.Table, schema.DevilFruits.TypeID,
	schema.Characters.Table, schema.DevilFruits.CurrentUserID,
)

func (repository *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]*DevilFruit, int, error) {
	clauses := postgres.BuildList(spec, "f", schema.DevilFruits.Name)

	var total int
	countQuery := `SELECT count(*) FROM ` + schema.DevilFruits.Table + ` f` + clauses.Where
	if err := repository.db.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_devil_fruits")
	}

	rows, err := repository.db.Query(ctx, selectFruit+clauses.Where+clauses.Order+clauses.Page, clauses.PageArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_devil_fruits")
	}
	defer rows.Close()

	fruits := make([]*DevilFruit, 0, spec.Limit)
	for rows.Next() {
		fruit, err := scanFruit(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_devil_fruit")
		}
		fruits = append(fruits, fruit)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_devil_fruits")
	}

	return fruits, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*DevilFruit, error) {
	fruit, err := scanFruit(repository.db.QueryRow(ctx, selectFruit+` WHERE f.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(Family.Name)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_devil_fruit")
	}
	return fruit, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, input Input) (*DevilFruit, error) {
	query, args := assignments(input).Insert(schema.DevilFruits.Table)

	var id int
	if err := repository.db.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return nil, wrap(err, "insert_devil_fruit")
	}
	return repository.Get(ctx, id)
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, input Input) (*DevilFruit, error) {
	query, args := assignments(input).Statement(schema.DevilFruits.Table, schema.DevilFruits.ID, id)

	tag, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "update_devil_fruit")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound(Family.Name)
	}
	return repository.Get(ctx, id)
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := repository.db.Exec(ctx, `DELETE FROM `+schema.DevilFruits.Table+` WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_devil_fruit")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(Family.Name)
	}
	return nil
}

// wrap reports a lost race on the current user as the same conflict the service returns.
// A vanished type or character becomes INVALID_<FIELD>.
func wrap(err error, action string) error {
	if dberr.IsConstraint(err, currentUserConstraint) {
		return fruitAlreadyAssigned()
	}
	return dberr.WrapWrite(err, schema.DevilFruits.Table, action)
}

func assignments(input Input) *postgres.Assignments {
	columns := schema.DevilFruits
	assignments := &postgres.Assignments{}

	postgres.Assign(assignments, columns.Name, input.Name)
	postgres.Assign(assignments, columns.TypeID, input.TypeID)
	postgres.Assign(assignments, columns.CurrentUserID, input.CurrentUserID)
	switch {
	case input.PreviousUsers.IsNull():
		assignments.Set(columns.PreviousUsers, []int{})
	case input.PreviousUsers.HasValue():
		assignments.Set(columns.PreviousUsers, input.PreviousUsers.Value())
	}
	postgres.Assign(assignments, columns.Description, input.Description)
	postgres.Assign(assignments, columns.ImageURL, input.ImageURL)

	return assignments
}

func scanFruit(row pgx.Row) (*DevilFruit, error) {
	f := &DevilFruit{}
	var typeName, userName *string

	err := row.Scan(
		&f.ID, &f.Name, &f.TypeID, &f.CurrentUserID, &f.PreviousUsers,
		&f.Description, &f.ImageURL, &f.CreatedAt, &f.UpdatedAt,
		&typeName, &userName,
	)
	if err != nil {
		return nil, err
	}

	f.Type = catalog.NewRef(&f.TypeID, typeName)
	f.CurrentUser = catalog.NewRef(f.CurrentUserID, userName)
	if f.PreviousUsers == nil {
		f.PreviousUsers = []int{}
	}
	return f, nil
}
