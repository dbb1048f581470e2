// Copyright (c) 2026 Hientensai. All rights reserved.
// Author: hien@hientensai.com

// Package slug holds predicates over the stored URL slugs that address
// every content entity (e.g., "du-lich-ha-noi"). Slugs are authored
// upstream; this API only consumes them.
package slug

import "strings"

// IsBlank reports whether s is empty or whitespace-only. Rows with blank
// slugs cannot be addressed and are filtered from slug-linked listings.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
