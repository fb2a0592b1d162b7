// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package character implements the character catalog and its haki masteries.

A character optionally references a race and a character type. Devil fruits,
organizations (as leader), memberships and haki masteries reference it, and
any of them blocks its deletion.
*/
package character

import (
	"time"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

// Character is a person of the catalog.
type Character struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Epithet         *string      `json:"epithet"`
	RaceID          *int         `json:"race_id"`
	Race            *catalog.Ref `json:"race"`
	CharacterTypeID *int         `json:"character_type_id"`
	CharacterType   *catalog.Ref `json:"character_type"`
	Bounty          *int64       `json:"bounty"`
	Age             *int         `json:"age"`
	Height          *int         `json:"height"`
	Origin          *string      `json:"origin"`
	IsAlive         bool         `json:"is_alive"`
	Description     *string      `json:"description"`
	ImageURL        *string      `json:"image_url"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// Input is the body of both POST and PUT.
//
// On create, omitted fields take their defaults (is_alive = true). On update,
// omitted fields are left untouched and null clears a nullable column.
type Input struct {
	Name            optional.Field[string] `json:"name"`
	Epithet         optional.Field[string] `json:"epithet"`
	RaceID          optional.Field[int]    `json:"race_id"`
	CharacterTypeID optional.Field[int]    `json:"character_type_id"`
	Bounty          optional.Field[int64]  `json:"bounty"`
	Age             optional.Field[int]    `json:"age"`
	Height          optional.Field[int]    `json:"height"`
	Origin          optional.Field[string] `json:"origin"`
	IsAlive         optional.Field[bool]   `json:"is_alive"`
	Description     optional.Field[string] `json:"description"`
	ImageURL        optional.Field[string] `json:"image_url"`
}

// Empty reports whether no field was supplied.
func (input Input) Empty() bool {
	return !input.Name.Provided() &&
		!input.Epithet.Provided() &&
		!input.RaceID.Provided() &&
		!input.CharacterTypeID.Provided() &&
		!input.Bounty.Provided() &&
		!input.Age.Provided() &&
		!input.Height.Provided() &&
		!input.Origin.Provided() &&
		!input.IsAlive.Provided() &&
		!input.Description.Provided() &&
		!input.ImageURL.Provided()
}

// Global field names for validation
const (
	FieldName            = "name"
	FieldEpithet         = "epithet"
	FieldRaceID          = "race_id"
	FieldCharacterTypeID = "character_type_id"
	FieldBounty          = "bounty"
	FieldAge             = "age"
	FieldHeight          = "height"
	FieldOrigin          = "origin"
	FieldIsAlive         = "is_alive"
	FieldDescription     = "description"
	FieldImageURL        = "image_url"
)

const (
	NameMaxLength        = 100
	EpithetMaxLength     = 100
	OriginMaxLength      = 100
	DescriptionMaxLength = 2000
	MaxAge               = 1000
	MaxHeight            = 1000
)

// CodeInvalidBountyRange is returned when min_bounty exceeds max_bounty.
const CodeInvalidBountyRange = "INVALID_BOUNTY_RANGE"

// Family describes characters to the integrity guard.
var Family = integrity.Family{
	Name:  "Character",
	Table: schema.Characters.Table,
	Dependents: []integrity.Dependent{
		{Table: schema.DevilFruits.Table, Column: schema.DevilFruits.CurrentUserID, Label: "devil fruits"},
		{Table: schema.Organizations.Table, Column: schema.Organizations.LeaderID, Label: "led organizations"},
		{Table: schema.OrganizationMembers.Table, Column: schema.OrganizationMembers.CharacterID, Label: "organization memberships"},
		{Table: schema.CharacterHaki.Table, Column: schema.CharacterHaki.CharacterID, Label: "haki masteries"},
	},
}

// ListConfig is the list contract of GET /api/characters.
var ListConfig = listquery.Config{
	Sortable:  []string{"name", "id", "bounty", "age", "height", "created_at"},
	IDFilters: []string{schema.Characters.RaceID, schema.Characters.CharacterTypeID},
	Ranges: []listquery.Range{
		{MinParam: "min_bounty", MaxParam: "max_bounty", Column: schema.Characters.Bounty, Code: CodeInvalidBountyRange},
	},
	Flags: []string{schema.Characters.IsAlive},
}
