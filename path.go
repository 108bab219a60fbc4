// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// soleOS returns the single OS shared by all tags, or OSUnknown when tags are
// empty, name no OS, or disagree.
func soleOS(tags []OS) OS {
	found := OSUnknown
	for _, tag := range tags {
		if tag == OSUnknown {
			return OSUnknown
		}

		if found != OSUnknown && found != tag {
			return OSUnknown
		}

		found = tag
	}

	return found
}
