// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hientensai/blogapi/pkg/slug"
)

/*
TestIsBlank checks the blank-slug predicate used to filter unlinkable rows.
*/
func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs_newlines", "\t\n", true},
		{"plain", "a", false},
		{"padded", " a ", false},
		{"hyphenated", "du-lich-ha-noi", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.IsBlank(tt.input))
		})
	}
}
