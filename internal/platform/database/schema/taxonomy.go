// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// TaxonomyTable is the shape shared by the five type tables.
type TaxonomyTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

func taxonomy(table string) TaxonomyTable {
	return TaxonomyTable{
		Table:       table,
		ID:          "id",
		Name:        "name",
		Description: "description",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	}
}

var (
	FruitTypes        = taxonomy("fruit_types")
	Races             = taxonomy("races")
	CharacterTypes    = taxonomy("character_types")
	OrganizationTypes = taxonomy("organization_types")
	HakiTypes         = taxonomy("haki_types")
)

func (t TaxonomyTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.CreatedAt, t.UpdatedAt}
}
