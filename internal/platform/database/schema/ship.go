// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ShipTable represents the 'ships' table
type ShipTable struct {
	Table       string
	ID          string
	Name        string
	ShipType    string
	Status      string
	Description string
	ImageURL    string
	CreatedAt   string
	UpdatedAt   string
}

// Ships is the schema definition for ships
var Ships = ShipTable{
	Table:       "ships",
	ID:          "id",
	Name:        "name",
	ShipType:    "ship_type",
	Status:      "status",
	Description: "description",
	ImageURL:    "image_url",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t ShipTable) Columns() []string {
	return []string{t.ID, t.Name, t.ShipType, t.Status, t.Description, t.ImageURL, t.CreatedAt, t.UpdatedAt}
}
