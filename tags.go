// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import "strings"

// ParseTags converts a tag list to Tag values.
//
// Accepted tag forms:
//   - "save"
//   - " Save "
//   - "save,config"
//
// Empty values and duplicates are skipped. Returned tags are lower-case and
// preserve input order.
func ParseTags(values []string) []Tag {
	tags := make([]Tag, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = asciiLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}

			tags = mergeUnique(tags, Tag(part))
		}
	}

	return tags
}

// hasAnyTag reports whether have shares at least one tag with want.
// An empty want matches everything.
func hasAnyTag(have, want []Tag) bool {
	if len(want) == 0 {
		return true
	}

	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}

	return false
}
