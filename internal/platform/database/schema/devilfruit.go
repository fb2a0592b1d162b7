// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// DevilFruitTable represents the 'devil_fruits' table
type DevilFruitTable struct {
	Table         string
	ID            string
	Name          string
	TypeID        string
	CurrentUserID string
	PreviousUsers string
	Description   string
	ImageURL      string
	CreatedAt     string
	UpdatedAt     string
}

// DevilFruits is the schema definition for devil_fruits
var DevilFruits = DevilFruitTable{
	Table:         "devil_fruits",
	ID:            "id",
	Name:          "name",
	TypeID:        "type_id",
	CurrentUserID: "current_user_id",
	PreviousUsers: "previous_users",
	Description:   "description",
	ImageURL:      "image_url",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t DevilFruitTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.TypeID, t.CurrentUserID, t.PreviousUsers,
		t.Description, t.ImageURL, t.CreatedAt, t.UpdatedAt,
	}
}
