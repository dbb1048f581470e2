// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

// Package readingtime estimates how long a post takes to read.
package readingtime

import (
	"regexp"
	"strings"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// htmlTag matches any markup tag so that HTML does not count toward the
// word total.
var htmlTag = regexp.MustCompile(`<[^>]*>`)

// Estimate returns the reading time of an HTML fragment in whole minutes.
//
// Markup is stripped before counting, words are whitespace-separated, and
// the result is rounded up with a floor of one minute.
func Estimate(content string) int {
	text := htmlTag.ReplaceAllString(content, "")
	words := strings.Fields(text)

	minutes := (len(words) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
