// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/pkg/optional"
)

type patch struct {
	Name   optional.Field[string] `json:"name"`
	Bounty optional.Field[int64]  `json:"bounty"`
	RaceID optional.Field[int]    `json:"race_id"`
}

/*
TestField_TriState verifies that absent, null and valued keys are told apart.
*/
func TestField_TriState(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"bounty": 3000000000, "race_id": null}`), &p))

	// 1. Absent
	assert.False(t, p.Name.Provided())
	assert.False(t, p.Name.IsNull())
	assert.Nil(t, p.Name.Ptr())

	// 2. Value
	assert.True(t, p.Bounty.HasValue())
	assert.Equal(t, int64(3000000000), p.Bounty.Value())

	// 3. Null
	assert.True(t, p.RaceID.Provided())
	assert.True(t, p.RaceID.IsNull())
	assert.False(t, p.RaceID.HasValue())
}

/*
TestField_TypeMismatch verifies that a wrongly typed value is a decode error.
*/
func TestField_TypeMismatch(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"bounty": "lots"}`), &p)
	assert.Error(t, err)
}

/*
TestField_Constructors verifies the helpers used by tests and services.
*/
func TestField_Constructors(t *testing.T) {
	assert.True(t, optional.Of("Zoro").HasValue())
	assert.True(t, optional.Null[string]().IsNull())
	assert.False(t, optional.Field[string]{}.Provided())
}
