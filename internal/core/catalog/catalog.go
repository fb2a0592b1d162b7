// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the small pieces shared by every catalog family:
embedded references, the delete confirmation and text cleaning for partial
updates.
*/
package catalog

import (
	"github.com/taibuivan/grandline/pkg/optional"
	"github.com/taibuivan/grandline/pkg/sanitize"
)

// Ref is a referenced row embedded in a response ({"id": 3, "name": "Zoan"}).
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewRef builds a Ref from the nullable columns of a LEFT JOIN.
func NewRef(id *int, name *string) *Ref {
	if id == nil {
		return nil
	}
	ref := &Ref{ID: *id}
	if name != nil {
		ref.Name = *name
	}
	return ref
}

// Deleted is the payload of a successful delete.
//
// Dependents is always 0: a row with dependents is never deleted.
type Deleted struct {
	ID         int `json:"id"`
	Dependents int `json:"dependents"`
}

// CleanText normalizes a supplied optional text field.
//
// Whitespace-only values become an explicit null so they clear the column.
func CleanText(field optional.Field[string]) optional.Field[string] {
	if !field.HasValue() {
		return field
	}
	if cleaned := sanitize.Text(field.Value()); cleaned != "" {
		return optional.Of(cleaned)
	}
	return optional.Null[string]()
}

// CleanName normalizes a supplied required text field. Null stays null so
// validation can reject it.
func CleanName(field optional.Field[string]) optional.Field[string] {
	if !field.HasValue() {
		return field
	}
	return optional.Of(sanitize.Text(field.Value()))
}
