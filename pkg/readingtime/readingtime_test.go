// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

package readingtime_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hientensai/blogapi/pkg/readingtime"
)

/*
TestEstimate checks the word-count arithmetic: 200 words per minute,
rounded up, floor of one minute, markup excluded.
*/
func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 1},
		{"whitespace_only", "   \n\t  ", 1},
		{"markup_only", "<p></p><div class=\"x\"></div>", 1},
		{"short_text", "just a few words here", 1},
		{"exactly_two_hundred", strings.Repeat("word ", 200), 1},
		{"two_hundred_and_one", strings.Repeat("word ", 201), 2},
		{"four_hundred", strings.Repeat("word ", 400), 2},
		{"four_hundred_and_one", strings.Repeat("word ", 401), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readingtime.Estimate(tt.content))
		})
	}
}

/*
TestEstimate_StripsMarkup verifies that tags are excluded but their text
content still counts.
*/
func TestEstimate_StripsMarkup(t *testing.T) {
	plain := strings.Repeat("word ", 250)
	wrapped := "<article><p>" + plain + "</p></article>"

	assert.Equal(t, readingtime.Estimate(plain), readingtime.Estimate(wrapped))
	assert.Equal(t, 2, readingtime.Estimate(wrapped))
}
