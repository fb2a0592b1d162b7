// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package organization implements crews, navies and other organizations, and
their memberships.

An organization has a type and optionally a leader and a ship. Its members
are characters linked through organization_members; a member row blocks the
deletion of both the organization and the character.
*/
package organization

import (
	"time"

	"github.com/taibuivan/grandline/internal/core/catalog"
	"github.com/taibuivan/grandline/internal/platform/database/schema"
	"github.com/taibuivan/grandline/internal/platform/integrity"
	"github.com/taibuivan/grandline/internal/platform/listquery"
	"github.com/taibuivan/grandline/pkg/optional"
)

type Organization struct {
	ID                 int          `json:"id"`
	Name               string       `json:"name"`
	OrganizationTypeID int          `json:"organization_type_id"`
	OrganizationType   *catalog.Ref `json:"organization_type"`
	LeaderID           *int         `json:"leader_id"`
	Leader             *catalog.Ref `json:"leader"`
	ShipID             *int         `json:"ship_id"`
	Ship               *catalog.Ref `json:"ship"`
	TotalBounty        int64        `json:"total_bounty"`
	Status             string       `json:"status"`
	Base               *string      `json:"base"`
	Description        *string      `json:"description"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type Input struct {
	Name               optional.Field[string] `json:"name"`
	OrganizationTypeID optional.Field[int]    `json:"organization_type_id"`
	LeaderID           optional.Field[int]    `json:"leader_id"`
	ShipID             optional.Field[int]    `json:"ship_id"`
	TotalBounty        optional.Field[int64]  `json:"total_bounty"`
	Status             optional.Field[string] `json:"status"`
	Base               optional.Field[string] `json:"base"`
	Description        optional.Field[string] `json:"description"`
}

func (input Input) Empty() bool {
	return !input.Name.Provided() &&
		!input.OrganizationTypeID.Provided() &&
		!input.LeaderID.Provided() &&
		!input.ShipID.Provided() &&
		!input.TotalBounty.Provided() &&
		!input.Status.Provided() &&
		!input.Base.Provided() &&
		!input.Description.Provided()
}

// Organization statuses
const (
	StatusActive    = "active"
	StatusDisbanded = "disbanded"
	StatusDestroyed = "destroyed"
)

var Statuses = []string{StatusActive, StatusDisbanded, StatusDestroyed}

const (
	FieldName               = "name"
	FieldOrganizationTypeID = "organization_type_id"
	FieldLeaderID           = "leader_id"
	FieldShipID             = "ship_id"
	FieldTotalBounty        = "total_bounty"
	FieldStatus             = "status"
	FieldBase               = "base"
	FieldDescription        = "description"
	FieldRole               = "role"
)

const (
	NameMaxLength        = 100
	BaseMaxLength        = 100
	DescriptionMaxLength = 2000
	RoleMaxLength        = 50
)

const CodeInvalidBountyRange = "INVALID_BOUNTY_RANGE"

var Family = integrity.Family{
	Name:  "Organization",
	Table: schema.Organizations.Table,
	Dependents: []integrity.Dependent{
		{Table: schema.OrganizationMembers.Table, Column: schema.OrganizationMembers.OrganizationID, Label: "members"},
	},
}

var ListConfig = listquery.Config{
	Sortable:  []string{"name", "id", "total_bounty", "created_at"},
	IDFilters: []string{schema.Organizations.OrganizationTypeID},
	Ranges: []listquery.Range{
		{MinParam: "min_bounty", MaxParam: "max_bounty", Column: schema.Organizations.TotalBounty, Code: CodeInvalidBountyRange},
	},
	Enums: []listquery.Enum{
		{Param: schema.Organizations.Status, Allowed: Statuses},
	},
}

// # Members

// Member is a character's membership in an organization.
type Member struct {
	OrganizationID int          `json:"organization_id"`
	Character      *catalog.Ref `json:"character"`
	Role           *string      `json:"role"`
	IsCurrent      bool         `json:"is_current"`
	JoinedAt       time.Time    `json:"joined_at"`
}

// MemberInput is the body of PUT /api/organizations/{id}/members/{characterId}.
type MemberInput struct {
	Role      *string `json:"role"`
	IsCurrent *bool   `json:"is_current"`
}
