// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package taxonomy implements the five catalog type families.

Fruit types, races, character types, organization types and haki types share
one row shape ({id, name, description}) and one set of rules. A [Kind]
descriptor carries everything that differs between them: URL segment, labels,
table and the tables that reference it.

# Rules

  - name is required, trimmed, unique (case-sensitive) and at most 50 characters.
  - description is optional, at most 1000 characters; blank is stored as NULL.
  - A type cannot be deleted while any row references it.
*/
package taxonomy

import (
	"time"

	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

// # Descriptors

// Kind describes one type family.
type Kind struct {
	// Slug is the URL segment under /api ("fruit-types").
	Slug string
	// Name is the singular label used in messages ("Fruit type").
	Name string
	// Event prefixes log events ("fruit_type_created").
	Event      string
	Table      schema.TaxonomyTable
	Dependents []integrity.Dependent
}

// Family returns the integrity descriptor of the kind.
func (kind Kind) Family() integrity.Family {
	return integrity.Family{Name: kind.Name, Table: kind.Table.Table, Dependents: kind.Dependents}
}

var (
	FruitTypes = Kind{
		Slug: "fruit-types", Name: "Fruit type", Event: "fruit_type", Table: schema.FruitTypes,
		Dependents: []integrity.Dependent{
			{Table: schema.DevilFruits.Table, Column: schema.DevilFruits.TypeID, Label: "devil fruits"},
		},
	}

	Races = Kind{
		Slug: "races", Name: "Race", Event: "race", Table: schema.Races,
		Dependents: []integrity.Dependent{
			{Table: schema.Characters.Table, Column: schema.Characters.RaceID, Label: "characters"},
		},
	}

	CharacterTypes = Kind{
		Slug: "character-types", Name: "Character type", Event: "character_type", Table: schema.CharacterTypes,
		Dependents: []integrity.Dependent{
			{Table: schema.Characters.Table, Column: schema.Characters.CharacterTypeID, Label: "characters"},
		},
	}

	OrganizationTypes = Kind{
		Slug: "organization-types", Name: "Organization type", Event: "organization_type", Table: schema.OrganizationTypes,
		Dependents: []integrity.Dependent{
			{Table: schema.Organizations.Table, Column: schema.Organizations.OrganizationTypeID, Label: "organizations"},
		},
	}

	HakiTypes = Kind{
		Slug: "haki-types", Name: "Haki type", Event: "haki_type", Table: schema.HakiTypes,
		Dependents: []integrity.Dependent{
			{Table: schema.CharacterHaki.Table, Column: schema.CharacterHaki.HakiTypeID, Label: "haki masteries"},
		},
	}

	// Kinds lists every type family in route registration order.
	Kinds = []Kind{FruitTypes, Races, CharacterTypes, OrganizationTypes, HakiTypes}
)

// # Entity

// Type is one row of a type family.
type Type struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput is the body of POST /api/<kind>.
type CreateInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateInput is the body of PUT /api/<kind>/{id}. Omitted fields are left untouched.
type UpdateInput struct {
	Name        optional.Field[string] `json:"name"`
	Description optional.Field[string] `json:"description"`
}

// Empty reports whether no field was supplied.
func (input UpdateInput) Empty() bool {
	return !input.Name.Provided() && !input.Description.Provided()
}

// # Rules

const (
	FieldName        = "name"
	FieldDescription = "description"

	NameMaxLength        = 50
	DescriptionMaxLength = 1000
)

// ListConfig is shared by every kind: search on name, no extra filters.
var ListConfig = listquery.Config{
	Sortable: []string{"name", "id", "created_at", "updated_at"},
}
