// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package integrity

import (
	"context"
	"fmt"

	"github.com/taibuivan/grandline/internal/platform/dberr"
	"github.com/taibuivan/grandline/internal/platform/postgres"
)

// PostgresStore implements [Store] with plain existence and count queries.
type PostgresStore struct {
	db postgres.Querier
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(db postgres.Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

// Exists implements [Store].
func (store *PostgresStore) Exists(ctx context.Context, table string, id int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)

	var exists bool
	if err := store.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "exists_"+table)
	}
	return exists, nil
}

// Taken implements [Store].
func (store *PostgresStore) Taken(ctx context.Context, table, column string, value any, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND id <> $2)`, table, column)

	var taken bool
	if err := store.db.QueryRow(ctx, query, value, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "taken_"+table+"_"+column)
	}
	return taken, nil
}

// Count implements [Store].
func (store *PostgresStore) Count(ctx context.Context, table, column string, id int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, table, column)

	var count int
	if err := store.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_"+table+"_"+column)
	}
	return count, nil
}
