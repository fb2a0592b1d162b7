// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organization

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

var selectOrganization = fmt.Sprintf(`
	SELECT %s, ot.name, l.name, s.name
	FROM %s o
	LEFT JOIN %s ot ON ot.id = o.%s
	LEFT JOIN %s l ON l.id = o.%s
	LEFT JOIN %s s ON s.id = o.%s`,
	schema.Qualified("o", schema.Organizations.Columns()),
	schema.Organizations.Table,
	schema.OrganizationTypes.Table, schema.Organizations.OrganizationTypeID,
	schema.Characters.Table, schema.Organizations.LeaderID,
	schema.Ships.Table, schema.Organizations.ShipID,
)

func (repository *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]*Organization, int, error) {
	clauses := postgres.BuildList(spec, "o", schema.Organizations.Name)

	var total int
	countQuery := `SELECT count(*) FROM ` + schema.Organizations.Table + ` o` + clauses.Where
	if err := repository.db.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_organizations")
	}

	rows, err := repository.db.Query(ctx, selectOrganization+clauses.Where+clauses.Order+clauses.Page, clauses.PageArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_organizations")
	}
	defer rows.Close()

	organizations := make([]*Organization, 0, spec.Limit)
	for rows.Next() {
		organization, err := scanOrganization(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_organization")
		}
		organizations = append(organizations, organization)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_organizations")
	}

	return organizations, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Organization, error) {
	organization, err := scanOrganization(repository.db.QueryRow(ctx, selectOrganization+` WHERE o.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(Family.Name)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_organization")
	}
	return organization, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, input Input) (*Organization, error) {
	query, args := assignments(input).Insert(schema.Organizations.Table)

	var id int
	if err := repository.db.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return nil, dberr.WrapWrite(err, schema.Organizations.Table, "insert_organization")
	}
	return repository.Get(ctx, id)
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, input Input) (*Organization, error) {
	query, args := assignments(input).Statement(schema.Organizations.Table, schema.Organizations.ID, id)

	tag, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, dberr.WrapWrite(err, schema.Organizations.Table, "update_organization")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound(Family.Name)
	}
	return repository.Get(ctx, id)
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := repository.db.Exec(ctx, `DELETE FROM `+schema.Organizations.Table+` WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_organization")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(Family.Name)
	}
	return nil
}

// # Members

func (repository *PostgresRepository) ListMembers(ctx context.Context, organizationID int) ([]*Member, error) {
	table := schema.OrganizationMembers
	query := fmt.Sprintf(`
		SELECT m.%s, c.id, c.name, m.%s, m.%s, m.%s
		FROM %s m
		JOIN %s c ON c.id = m.%s
		WHERE m.%s = $1
		ORDER BY m.%s, c.name
	`, table.OrganizationID, table.Role, table.IsCurrent, table.JoinedAt,
		table.Table, schema.Characters.Table, table.CharacterID, table.OrganizationID, table.JoinedAt)

	rows, err := repository.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_organization_members")
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		member := &Member{Character: &catalog.Ref{}}
		if err := rows.Scan(&member.OrganizationID, &member.Character.ID, &member.Character.Name, &member.Role, &member.IsCurrent, &member.JoinedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_organization_member")
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_organization_members")
	}
	return members, nil
}

func (repository *PostgresRepository) UpsertMember(ctx context.Context, organizationID, characterID int, role *string, isCurrent bool) error {
	table := schema.OrganizationMembers
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%[2]s, %[3]s)
		DO UPDATE SET %[4]s = EXCLUDED.%[4]s, %[5]s = EXCLUDED.%[5]s
	`, table.Table, table.OrganizationID, table.CharacterID, table.Role, table.IsCurrent)

	_, err := repository.db.Exec(ctx, query, organizationID, characterID, role, isCurrent)
	return dberr.WrapWrite(err, table.Table, "upsert_organization_member")
}

func (repository *PostgresRepository) DeleteMember(ctx context.Context, organizationID, characterID int) error {
	table := schema.OrganizationMembers
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, table.Table, table.OrganizationID, table.CharacterID)

	tag, err := repository.db.Exec(ctx, query, organizationID, characterID)
	if err != nil {
		return dberr.Wrap(err, "delete_organization_member")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Membership")
	}
	return nil
}

// # Helpers

func assignments(input Input) *postgres.Assignments {
	columns := schema.Organizations
	assignments := &postgres.Assignments{}

	postgres.Assign(assignments, columns.Name, input.Name)
	postgres.Assign(assignments, columns.OrganizationTypeID, input.OrganizationTypeID)
	postgres.Assign(assignments, columns.LeaderID, input.LeaderID)
	postgres.Assign(assignments, columns.ShipID, input.ShipID)
	postgres.Assign(assignments, columns.TotalBounty, input.TotalBounty)
	postgres.Assign(assignments, columns.Status, input.Status)
	postgres.Assign(assignments, columns.Base, input.Base)
	postgres.Assign(assignments, columns.Description, input.Description)

	return assignments
}

func scanOrganization(row pgx.Row) (*Organization, error) {
	o := &Organization{}
	var typeName, leaderName, shipName *string

	err := row.Scan(
		&o.ID, &o.Name, &o.OrganizationTypeID, &o.LeaderID, &o.ShipID, &o.TotalBounty,
		&o.Status, &o.Base, &o.Description, &o.CreatedAt, &o.UpdatedAt,
		&typeName, &leaderName, &shipName,
	)
	if err != nil {
		return nil, err
	}

	o.OrganizationType = catalog.NewRef(&o.OrganizationTypeID, typeName)
	o.Leader = catalog.NewRef(o.LeaderID, leaderName)
	o.Ship = catalog.NewRef(o.ShipID, shipName)
	return o, nil
}
