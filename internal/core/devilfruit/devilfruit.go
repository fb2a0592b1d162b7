// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package devilfruit implements the devil fruit catalog.
package devilfruit

import (
	"time"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

type DevilFruit struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	TypeID        int          `json:"type_id"`
	Type          *catalog.Ref `json:"type"`
	CurrentUserID *int         `json:"current_user_id"`
	CurrentUser   *catalog.Ref `json:"current_user"`
	// PreviousUsers are character ids, oldest first.
	PreviousUsers []int     `json:"previous_users"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Input is the body of both POST and PUT. A null previous_users empties the history.
type Input struct {
	Name          optional.Field[string] `json:"name"`
	TypeID        optional.Field[int]    `json:"type_id"`
	CurrentUserID optional.Field[int]    `json:"current_user_id"`
	PreviousUsers optional.Field[[]int]  `json:"previous_users"`
	Description   optional.Field[string] `json:"description"`
	ImageURL      optional.Field[string] `json:"image_url"`
}

func (input Input) Empty() bool {
	return !input.Name.Provided() &&
		!input.TypeID.Provided() &&
		!input.CurrentUserID.Provided() &&
		!input.PreviousUsers.Provided() &&
		!input.Description.Provided() &&
		!input.ImageURL.Provided()
}

const (
	FieldName          = "name"
	FieldTypeID        = "type_id"
	FieldCurrentUserID = "current_user_id"
	FieldPreviousUsers = "previous_users"
	FieldDescription   = "description"
	FieldImageURL      = "image_url"
)

const (
	NameMaxLength        = 100
	DescriptionMaxLength = 2000
)

// CodeFruitAlreadyAssigned is returned when a character would hold two fruits.
const CodeFruitAlreadyAssigned = "FRUIT_ALREADY_ASSIGNED"

// currentUserConstraint backs the one-fruit-per-character rule in storage.
const currentUserConstraint = "devil_fruits_current_user_id_key"

func fruitAlreadyAssigned() *apperr.AppError {
	return apperr.Conflict(CodeFruitAlreadyAssigned, "This character already has a devil fruit")
}

// Family describes devil fruits to the integrity guard. Nothing references them.
var Family = integrity.Family{
	Name:  "Devil fruit",
	Table: schema.DevilFruits.Table,
}

var ListConfig = listquery.Config{
	Sortable:  []string{"name", "id", "created_at"},
	IDFilters: []string{schema.DevilFruits.TypeID, schema.DevilFruits.CurrentUserID},
}
