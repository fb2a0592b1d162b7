// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grandline/internal/platform/apperr"
)

/*
TestDuplicateName verifies the conflict message for every family label.
*/
func TestDuplicateName(t *testing.T) {
	tests := []struct {
		resource string
		want     string
	}{
		{"Organization type", "Organization type name already exists"},
		{"Organization", "Organization name already exists"},
		{"Character", "Character name already exists"},
		{"Devil fruit", "Devil fruit name already exists"},
		{"Ship", "Ship name already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			err := apperr.DuplicateName(tt.resource)

			assert.Equal(t, apperr.CodeDuplicateName, err.Code)
			assert.Equal(t, http.StatusConflict, err.HTTPStatus)
			assert.Equal(t, tt.want, err.Message)
		})
	}
}

/*
TestField verifies the derived INVALID_<FIELD> code and its single detail.
*/
func TestField(t *testing.T) {
	err := apperr.Field("race_id", "Race with ID 7 does not exist")

	assert.Equal(t, "INVALID_RACE_ID", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, []apperr.FieldError{{Field: "race_id", Code: "INVALID_RACE_ID", Message: "Race with ID 7 does not exist"}}, err.Details)
}
