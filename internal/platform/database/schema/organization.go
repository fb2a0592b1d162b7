// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// OrganizationTable represents the 'organizations' table
type OrganizationTable struct {
	Table              string
	ID                 string
	Name               string
	OrganizationTypeID string
	LeaderID           string
	ShipID             string
	TotalBounty        string
	Status             string
	Base               string
	Description        string
	CreatedAt          string
	UpdatedAt          string
}

// Organizations is the schema definition for organizations
var Organizations = OrganizationTable{
	Table:              "organizations",
	ID:                 "id",
	Name:               "name",
	OrganizationTypeID: "organization_type_id",
	LeaderID:           "leader_id",
	ShipID:             "ship_id",
	TotalBounty:        "total_bounty",
	Status:             "status",
	Base:               "base",
	Description:        "description",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
}

func (t OrganizationTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.OrganizationTypeID, t.LeaderID, t.ShipID, t.TotalBounty,
		t.Status, t.Base, t.Description, t.CreatedAt, t.UpdatedAt,
	}
}

// OrganizationMemberTable represents the 'organization_members' link table
type OrganizationMemberTable struct {
	Table          string
	OrganizationID string
	CharacterID    string
	Role           string
	IsCurrent      string
	JoinedAt       string
}

// OrganizationMembers is the schema definition for organization_members
var OrganizationMembers = OrganizationMemberTable{
	Table:          "organization_members",
	OrganizationID: "organization_id",
	CharacterID:    "character_id",
	Role:           "role",
	IsCurrent:      "is_current",
	JoinedAt:       "joined_at",
}
