// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

// MergeManifests merges manifests in order. A game present in several inputs
// takes the entry from the last one.
func MergeManifests(manifests ...Manifest) Manifest {
	total := 0
	for _, m := range manifests {
		total += len(m)
	}

	out := make(Manifest, total)
	for _, m := range manifests {
		for name, game := range m {
			out[name] = game
		}
	}

	return out
}

// mergeUnique appends values not yet present in dst, preserving order.
func mergeUnique[T comparable](dst []T, values ...T) []T {
	for _, v := range values {
		dup := false
		for _, have := range dst {
			if have == v {
				dup = true
				break
			}
		}

		if !dup {
			dst = append(dst, v)
		}
	}

	return dst
}
