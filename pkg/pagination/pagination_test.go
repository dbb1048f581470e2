// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hientensai/blogapi/pkg/pagination"
)

/*
TestFromRequest checks query parsing and clamping of page/limit values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/posts", 1, 12},
		{"explicit", "/posts?page=3&limit=20", 3, 20},
		{"zero_page", "/posts?page=0", 1, 12},
		{"negative_page", "/posts?page=-5", 1, 12},
		{"zero_limit", "/posts?limit=0", 1, 12},
		{"over_max_limit", "/posts?limit=500", 1, 12},
		{"max_limit_allowed", "/posts?limit=100", 1, 100},
		{"non_numeric", "/posts?page=abc&limit=xyz", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the offset arithmetic, including out-of-range pages.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: -2, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
}

/*
TestNewMeta checks the total-pages ceiling division.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		total     int
		wantPages int
	}{
		{"exact_division", 10, 100, 10},
		{"remainder_rounds_up", 10, 101, 11},
		{"empty", 10, 0, 0},
		{"zero_limit", 0, 50, 0},
		{"single_partial_page", 10, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}
