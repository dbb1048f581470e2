// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

// Package datefmt renders calendar dates in a long, locale-specific form
// (day, full month name, year) for display alongside post metadata.
package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// supported lists the locales the blog renders dates for. The first entry
// is the fallback when matching fails.
var supported = []language.Tag{
	language.Vietnamese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// englishMonths holds full month names for the English long form.
var englishMonths = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Long formats t as a long-form calendar date for the given BCP 47 locale.
//
// Vietnamese dates read "15 tháng 3, 2024"; English dates read
// "March 15, 2024". Unrecognized locales fall back to Vietnamese, matching
// the site's primary audience.
func Long(t time.Time, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = supported[0]
	}

	matched, _, _ := matcher.Match(tag)
	base, _ := matched.Base()

	switch base.String() {
	case "en":
		return fmt.Sprintf("%s %d, %d", englishMonths[t.Month()-1], t.Day(), t.Year())
	default:
		return fmt.Sprintf("%d tháng %d, %d", t.Day(), int(t.Month()), t.Year())
	}
}
