// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listquery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/listquery"
)

var characterConfig = listquery.Config{
	Sortable:  []string{"name", "id", "bounty"},
	IDFilters: []string{"race_id"},
	Ranges: []listquery.Range{
		{MinParam: "min_bounty", MaxParam: "max_bounty", Column: "bounty", Code: "INVALID_BOUNTY_RANGE"},
	},
	Enums: []listquery.Enum{{Param: "status", Allowed: []string{"active", "retired"}}},
	Flags: []string{"is_alive"},
}

func translate(t *testing.T, raw string) (listquery.Spec, error) {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return listquery.Translate(values, characterConfig)
}

/*
TestTranslate_Defaults verifies the values used when nothing is supplied.
*/
func TestTranslate_Defaults(t *testing.T) {
	spec, err := translate(t, "")
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
	assert.Equal(t, "name", spec.SortBy)
	assert.Equal(t, listquery.Ascending, spec.SortOrder)
	assert.Empty(t, spec.Search)
	assert.Empty(t, spec.Filters)
	assert.Equal(t, 0, spec.Offset())
}

/*
TestTranslate_Pagination covers the page and limit boundaries.
*/
func TestTranslate_Pagination(t *testing.T) {
	tests := []struct {
		query   string
		wantErr bool
	}{
		{"limit=100", false},
		{"limit=1", false},
		{"limit=101", true},
		{"limit=0", true},
		{"limit=ten", true},
		{"page=0", true},
		{"page=-2", true},
		{"page=1.5", true},
		{"page=3&limit=25", false},
		{"page=", true},
		{"limit=%20", true},
		{"page=%20%202", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := translate(t, tt.query)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeInvalidPagination))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestTranslate_Sort verifies the allow-list and direction normalization.
*/
func TestTranslate_Sort(t *testing.T) {
	spec, err := translate(t, "sortBy=bounty&sortOrder=desc")
	require.NoError(t, err)
	assert.Equal(t, "bounty", spec.SortBy)
	assert.Equal(t, listquery.Descending, spec.SortOrder)

	spec, err = translate(t, "sortOrder=Asc")
	require.NoError(t, err)
	assert.Equal(t, listquery.Ascending, spec.SortOrder)

	_, err = translate(t, "sortBy=password_hash")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidSort))

	_, err = translate(t, "sortBy=name%3BDROP%20TABLE%20characters")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidSort))

	_, err = translate(t, "sortOrder=sideways")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidSort))

	// Present but blank is rejected, never read as the default
	_, err = translate(t, "sortBy=")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidSort))

	_, err = translate(t, "sortOrder=%20")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidSort))
}

/*
TestTranslate_Range verifies numeric bounds and the min <= max rule.
*/
func TestTranslate_Range(t *testing.T) {
	spec, err := translate(t, "min_bounty=500&max_bounty=1000")
	require.NoError(t, err)
	assert.Equal(t, []listquery.Filter{
		{Column: "bounty", Operator: listquery.AtLeast, Value: int64(500)},
		{Column: "bounty", Operator: listquery.AtMost, Value: int64(1000)},
	}, spec.Filters)

	_, err = translate(t, "min_bounty=1000&max_bounty=500")
	assert.True(t, apperr.HasCode(err, "INVALID_BOUNTY_RANGE"))

	_, err = translate(t, "min_bounty=-1")
	assert.True(t, apperr.HasCode(err, "INVALID_MIN_BOUNTY"))

	_, err = translate(t, "max_bounty=lots")
	assert.True(t, apperr.HasCode(err, "INVALID_MAX_BOUNTY"))

	// Equal bounds are a valid, narrow range
	_, err = translate(t, "min_bounty=7&max_bounty=7")
	assert.NoError(t, err)
}

/*
TestTranslate_Filters verifies id, enum and flag filters.
*/
func TestTranslate_Filters(t *testing.T) {
	spec, err := translate(t, "race_id=4&status=retired&is_alive=false&search=%20straw%20")
	require.NoError(t, err)

	assert.Equal(t, "straw", spec.Search)
	assert.Contains(t, spec.Filters, listquery.Filter{Column: "race_id", Operator: listquery.Equal, Value: 4})
	assert.Contains(t, spec.Filters, listquery.Filter{Column: "status", Operator: listquery.Equal, Value: "retired"})
	assert.Contains(t, spec.Filters, listquery.Filter{Column: "is_alive", Operator: listquery.Equal, Value: false})

	_, err = translate(t, "race_id=0")
	assert.True(t, apperr.HasCode(err, "INVALID_RACE_ID"))

	_, err = translate(t, "status=sunk")
	assert.True(t, apperr.HasCode(err, "INVALID_STATUS"))

	_, err = translate(t, "is_alive=maybe")
	assert.True(t, apperr.HasCode(err, "INVALID_IS_ALIVE"))

	_, err = translate(t, "race_id=")
	assert.True(t, apperr.HasCode(err, "INVALID_RACE_ID"))

	_, err = translate(t, "min_bounty=")
	assert.True(t, apperr.HasCode(err, "INVALID_MIN_BOUNTY"))

	// An empty search matches everything
	spec, err = translate(t, "search=")
	require.NoError(t, err)
	assert.Empty(t, spec.Search)
}
