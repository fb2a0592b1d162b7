// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

import "github.com/taibuivan/grandline/internal/core/catalog"

// Mastery levels of a haki.
const (
	MasteryBasic    = "basic"
	MasteryAdvanced = "advanced"
	MasteryMaster   = "master"
)

// MasteryLevels lists the accepted mastery_level values.
var MasteryLevels = []string{MasteryBasic, MasteryAdvanced, MasteryMaster}

// HakiMastery links a character to a haki type.
type HakiMastery struct {
	CharacterID  int          `json:"character_id"`
	HakiType     *catalog.Ref `json:"haki_type"`
	MasteryLevel string       `json:"mastery_level"`
	IsCurrent    bool         `json:"is_current"`
}

// HakiInput is the body of PUT /api/characters/{id}/haki/{hakiTypeId}.
type HakiInput struct {
	MasteryLevel *string `json:"mastery_level"`
	IsCurrent    *bool   `json:"is_current"`
}

const FieldMasteryLevel = "mastery_level"
