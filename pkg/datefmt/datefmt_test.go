// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hientensai/blogapi/pkg/datefmt"
)

/*
TestLong checks locale-specific long-form rendering and the Vietnamese
fallback for unknown locales.
*/
func TestLong(t *testing.T) {
	date := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{"vietnamese", "vi-VN", "15 tháng 3, 2024"},
		{"vietnamese_base", "vi", "15 tháng 3, 2024"},
		{"english", "en-US", "March 15, 2024"},
		{"english_base", "en", "March 15, 2024"},
		{"unknown_falls_back", "zz-ZZ", "15 tháng 3, 2024"},
		{"garbage_falls_back", "!!!", "15 tháng 3, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datefmt.Long(date, tt.locale))
		})
	}
}

/*
TestLong_SingleDigitDay verifies that days and months are not zero-padded.
*/
func TestLong_SingleDigitDay(t *testing.T) {
	date := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2 tháng 1, 2023", datefmt.Long(date, "vi-VN"))
	assert.Equal(t, "January 2, 2023", datefmt.Long(date, "en-US"))
}
