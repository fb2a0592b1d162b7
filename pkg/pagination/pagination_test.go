// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grandline/pkg/pagination"
)

/*
TestParams_Offset verifies the OFFSET derivation.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

/*
TestNewMeta verifies total page rounding and navigation flags.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		params    pagination.Params
		total     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"empty", pagination.Params{Page: 1, Limit: 10}, 0, 0, false, false},
		{"exact_fit", pagination.Params{Page: 1, Limit: 10}, 10, 1, false, false},
		{"partial_last_page", pagination.Params{Page: 2, Limit: 10}, 25, 3, true, true},
		{"last_page", pagination.Params{Page: 3, Limit: 10}, 25, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.params, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantNext, meta.HasNext)
			assert.Equal(t, tt.wantPrev, meta.HasPrev)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
