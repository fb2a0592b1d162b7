// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ship implements the ship catalog.
package ship

import (
	"time"

	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

type Ship struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ShipType    *string   `json:"ship_type"`
	Status      string    `json:"status"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Input struct {
	Name        optional.Field[string] `json:"name"`
	ShipType    optional.Field[string] `json:"ship_type"`
	Status      optional.Field[string] `json:"status"`
	Description optional.Field[string] `json:"description"`
	ImageURL    optional.Field[string] `json:"image_url"`
}

func (input Input) Empty() bool {
	return !input.Name.Provided() &&
		!input.ShipType.Provided() &&
		!input.Status.Provided() &&
		!input.Description.Provided() &&
		!input.ImageURL.Provided()
}

// Ship statuses
const (
	StatusActive    = "active"
	StatusDestroyed = "destroyed"
	StatusRetired   = "retired"
)

var Statuses = []string{StatusActive, StatusDestroyed, StatusRetired}

const (
	FieldName        = "name"
	FieldShipType    = "ship_type"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

const (
	NameMaxLength        = 100
	ShipTypeMaxLength    = 50
	DescriptionMaxLength = 2000
)

// Family describes ships to the integrity guard.
var Family = integrity.Family{
	Name:  "Ship",
	Table: schema.Ships.Table,
	Dependents: []integrity.Dependent{
		{Table: schema.Organizations.Table, Column: schema.Organizations.ShipID, Label: "organizations"},
	},
}

var ListConfig = listquery.Config{
	Sortable: []string{"name", "id", "created_at"},
	Enums: []listquery.Enum{
		{Param: schema.Ships.Status, Allowed: Statuses},
	},
}
