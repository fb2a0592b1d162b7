// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CharacterTable represents the 'characters' table
type CharacterTable struct {
	Table           string
	ID              string
	Name            string
	Epithet         string
	RaceID          string
	CharacterTypeID string
	Bounty          string
	Age             string
	Height          string
	Origin          string
	IsAlive         string
	Description     string
	ImageURL        string
	CreatedAt       string
	UpdatedAt       string
}

// Characters is the schema definition for characters
var Characters = CharacterTable{
	Table:           "characters",
	ID:              "id",
	Name:            "name",
	Epithet:         "epithet",
	RaceID:          "race_id",
	CharacterTypeID: "character_type_id",
	Bounty:          "bounty",
	Age:             "age",
	Height:          "height",
	Origin:          "origin",
	IsAlive:         "is_alive",
	Description:     "description",
	ImageURL:        "image_url",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

func (t CharacterTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Epithet, t.RaceID, t.CharacterTypeID, t.Bounty, t.Age, t.Height,
		t.Origin, t.IsAlive, t.Description, t.ImageURL, t.CreatedAt, t.UpdatedAt,
	}
}

// CharacterHakiTable represents the 'character_haki' link table
type CharacterHakiTable struct {
	Table        string
	CharacterID  string
	HakiTypeID   string
	MasteryLevel string
	IsCurrent    string
}

// CharacterHaki is the schema definition for character_haki
var CharacterHaki = CharacterHakiTable{
	Table:        "character_haki",
	CharacterID:  "character_id",
	HakiTypeID:   "haki_type_id",
	MasteryLevel: "mastery_level",
	IsCurrent:    "is_current",
}
