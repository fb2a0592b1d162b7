// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

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

// PostgresRepository implements [Repository].
type PostgresRepository struct {
	db postgres.Transactor
}

func NewPostgresRepository(db postgres.Transactor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectCharacter reads characters c with their race r and type ct.
var selectCharacter = fmt.Sprintf(`
	SELECT %s, r.name, ct.name
	FROM %s c
	LEFT JOIN %s r ON r.id = c.%s
	LEFT JOIN %s ct ON ct.id = c.%s`,
	schema.Qualified("c", schema.Characters.Columns()),
	schema.Characters.Table,
	schema.Races.Table, schema.Characters.RaceID,
	schema.CharacterTypes.Table, schema.Characters.CharacterTypeID,
)

func (repository *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]*Character, int, error) {
	clauses := postgres.BuildList(spec, "c", schema.Characters.Name, schema.Characters.Epithet)

	var total int
	countQuery := `SELECT count(*) FROM ` + schema.Characters.Table + ` c` + clauses.Where
	if err := repository.db.QueryRow(ctx, countQuery, clauses.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_characters")
	}

	rows, err := repository.db.Query(ctx, selectCharacter+clauses.Where+clauses.Order+clauses.Page, clauses.PageArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_characters")
	}
	defer rows.Close()

	characters := make([]*Character, 0, spec.Limit)
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_character")
		}
		characters = append(characters, character)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_characters")
	}

	return characters, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Character, error) {
	character, err := scanCharacter(repository.db.QueryRow(ctx, selectCharacter+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(Family.Name)
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_character")
	}
	return character, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, input Input) (*Character, error) {
	query, args := assignments(input).Insert(schema.Characters.Table)

	var id int
	if err := repository.db.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return nil, dberr.WrapWrite(err, schema.Characters.Table, "insert_character")
	}
	return repository.Get(ctx, id)
}

func (repository *PostgresRepository) Update(ctx context.Context, id int, input Input) (*Character, error) {
	query, args := assignments(input).Statement(schema.Characters.Table, schema.Characters.ID, id)

	tag, err := repository.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, dberr.WrapWrite(err, schema.Characters.Table, "update_character")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperr.NotFound(Family.Name)
	}
	return repository.Get(ctx, id)
}

// Delete scrubs the character from every fruit history and removes it in one transaction.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	err := pgx.BeginFunc(ctx, repository.db, func(tx pgx.Tx) error {
		scrub := fmt.Sprintf(`UPDATE %[1]s SET %[2]s = array_remove(%[2]s, $1), updated_at = NOW() WHERE $1 = ANY(%[2]s)`,
			schema.DevilFruits.Table, schema.DevilFruits.PreviousUsers)
		if _, err := tx.Exec(ctx, scrub, id); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM `+schema.Characters.Table+` WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(Family.Name)
		}
		return nil
	})

	return dberr.Wrap(err, "delete_character")
}

// # Haki

func (repository *PostgresRepository) ListHaki(ctx context.Context, characterID int) ([]*HakiMastery, error) {
	table := schema.CharacterHaki
	query := fmt.Sprintf(`
		SELECT ch.%s, h.id, h.name, ch.%s, ch.%s
		FROM %s ch
		JOIN %s h ON h.id = ch.%s
		WHERE ch.%s = $1
		ORDER BY h.name
	`, table.CharacterID, table.MasteryLevel, table.IsCurrent, table.Table, schema.HakiTypes.Table, table.HakiTypeID, table.CharacterID)

	rows, err := repository.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_character_haki")
	}
	defer rows.Close()

	masteries := []*HakiMastery{}
	for rows.Next() {
		mastery := &HakiMastery{HakiType: &catalog.Ref{}}
		if err := rows.Scan(&mastery.CharacterID, &mastery.HakiType.ID, &mastery.HakiType.Name, &mastery.MasteryLevel, &mastery.IsCurrent); err != nil {
			return nil, dberr.Wrap(err, "scan_character_haki")
		}
		masteries = append(masteries, mastery)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_character_haki")
	}
	return masteries, nil
}

func (repository *PostgresRepository) UpsertHaki(ctx context.Context, characterID, hakiTypeID int, level string, isCurrent bool) error {
	table := schema.CharacterHaki
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%[2]s, %[3]s)
		DO UPDATE SET %[4]s = EXCLUDED.%[4]s, %[5]s = EXCLUDED.%[5]s
	`, table.Table, table.CharacterID, table.HakiTypeID, table.MasteryLevel, table.IsCurrent)

	_, err := repository.db.Exec(ctx, query, characterID, hakiTypeID, level, isCurrent)
	return dberr.WrapWrite(err, table.Table, "upsert_character_haki")
}

func (repository *PostgresRepository) DeleteHaki(ctx context.Context, characterID, hakiTypeID int) error {
	table := schema.CharacterHaki
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, table.Table, table.CharacterID, table.HakiTypeID)

	tag, err := repository.db.Exec(ctx, query, characterID, hakiTypeID)
	if err != nil {
		return dberr.Wrap(err, "delete_character_haki")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Haki mastery")
	}
	return nil
}

// # Helpers

func assignments(input Input) *postgres.Assignments {
	columns := schema.Characters
	assignments := &postgres.Assignments{}

	postgres.Assign(assignments, columns.Name, input.Name)
	postgres.Assign(assignments, columns.Epithet, input.Epithet)
	postgres.Assign(assignments, columns.RaceID, input.RaceID)
	postgres.Assign(assignments, columns.CharacterTypeID, input.CharacterTypeID)
	postgres.Assign(assignments, columns.Bounty, input.Bounty)
	postgres.Assign(assignments, columns.Age, input.Age)
	postgres.Assign(assignments, columns.Height, input.Height)
	postgres.Assign(assignments, columns.Origin, input.Origin)
	postgres.Assign(assignments, columns.IsAlive, input.IsAlive)
	postgres.Assign(assignments, columns.Description, input.Description)
	postgres.Assign(assignments, columns.ImageURL, input.ImageURL)

	return assignments
}

func scanCharacter(row pgx.Row) (*Character, error) {
	c := &Character{}
	var raceName, typeName *string

	err := row.Scan(
		&c.ID, &c.Name, &c.Epithet, &c.RaceID, &c.CharacterTypeID, &c.Bounty, &c.Age, &c.Height,
		&c.Origin, &c.IsAlive, &c.Description, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
		&raceName, &typeName,
	)
	if err != nil {
		return nil, err
	}

	c.Race = catalog.NewRef(c.RaceID, raceName)
	c.CharacterType = catalog.NewRef(c.CharacterTypeID, typeName)
	return c, nil
}
