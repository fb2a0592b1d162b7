// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package integrity guards catalog mutations against broken invariants.

Before a row is read, renamed or deleted, the catalog services ask the [Guard]:

  - EnsureExists: the row is there (NOT_FOUND otherwise).
  - EnsureNameAvailable: no other row of the family has the exact same name (DUPLICATE_NAME).
  - EnsureNoDependents: no row in any referencing table points at it (HAS_ASSOCIATIONS + count).
  - EnsureReference: a foreign key supplied in a payload resolves (INVALID_<FIELD>).

Dependents are counted explicitly instead of waiting for a foreign key error,
so the client always gets a stable reason code and the exact count, and no
delete statement is issued while dependents exist.

# Concurrency

The checks are "check then act": a concurrent writer can slip in between a
check and the write that follows it. The unique and foreign key constraints of
the schema are the storage-level backstop for that window (see dberr).
*/
package integrity

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/grandline/internal/platform/apperr"
)

// # Descriptors

// Dependent is a table column that references a family's primary key.
type Dependent struct {
	Table  string
	Column string
	// Label is the plural noun used in messages ("devil fruits").
	Label string
}

// Family describes one catalog family to the guard.
type Family struct {
	// Name is the singular, capitalized noun used in messages ("Fruit type").
	Name       string
	Table      string
	Dependents []Dependent
}

// # Store

// Store is the persistence contract needed by the guard.
//
// Table and column arguments always come from [Family] descriptors, never from requests.
type Store interface {
	// Exists reports whether table has a row with the given id.
	Exists(ctx context.Context, table string, id int) (bool, error)

	// Taken reports whether another row (id != excludeID) has column = value.
	// An excludeID of 0 excludes nothing.
	Taken(ctx context.Context, table, column string, value any, excludeID int) (bool, error)

	// Count returns the number of rows in table with column = id.
	Count(ctx context.Context, table, column string, id int) (int, error)
}

// # Guard

// Guard runs integrity checks against a [Store].
type Guard struct {
	store Store
}

// NewGuard creates a Guard backed by store.
func NewGuard(store Store) *Guard {
	return &Guard{store: store}
}

// EnsureExists returns NOT_FOUND if family has no row with id.
func (guard *Guard) EnsureExists(ctx context.Context, family Family, id int) error {
	exists, err := guard.store.Exists(ctx, family.Table, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(family.Name)
	}
	return nil
}

// EnsureNameAvailable returns DUPLICATE_NAME if another row of family is named exactly name.
//
// The comparison is case-sensitive; excludeID is the row being renamed (0 on create).
func (guard *Guard) EnsureNameAvailable(ctx context.Context, family Family, name string, excludeID int) error {
	taken, err := guard.store.Taken(ctx, family.Table, "name", name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.DuplicateName(family.Name)
	}
	return nil
}

// EnsureUnique returns conflict if another row of family already has column = value.
func (guard *Guard) EnsureUnique(ctx context.Context, family Family, column string, value any, excludeID int, conflict *apperr.AppError) error {
	taken, err := guard.store.Taken(ctx, family.Table, column, value, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return conflict
	}
	return nil
}

// EnsureNoDependents returns HAS_ASSOCIATIONS with the total count if any dependent row exists.
func (guard *Guard) EnsureNoDependents(ctx context.Context, family Family, id int) error {
	total := 0
	var labels, breakdown []string

	for _, dependent := range family.Dependents {
		count, err := guard.store.Count(ctx, dependent.Table, dependent.Column, id)
		if err != nil {
			return err
		}
		if count > 0 {
			total += count
			labels = append(labels, dependent.Label)
			breakdown = append(breakdown, fmt.Sprintf("%d %s", count, dependent.Label))
		}
	}

	switch len(labels) {
	case 0:
		return nil
	case 1:
		return apperr.HasAssociations(family.Name, total, labels[0])
	default:
		return apperr.HasAssociations(family.Name, total, "records ("+strings.Join(breakdown, ", ")+")")
	}
}

// EnsureReference returns INVALID_<FIELD> if a referenced row of family does not exist.
func (guard *Guard) EnsureReference(ctx context.Context, family Family, field string, id int) error {
	exists, err := guard.store.Exists(ctx, family.Table, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Field(field, fmt.Sprintf("%s with ID %d does not exist", family.Name, id))
	}
	return nil
}
