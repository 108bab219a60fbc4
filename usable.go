// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"strings"
	"unicode"
)

// broadPaths are present whether or not a game is installed.
// Entries are stored lower-case; matching is case-insensitive.
var broadPaths = lowerAll(
	PlaceholderBase+"/"+PlaceholderStoreUserID, // <storeUserId> behaves like "*"
	PlaceholderHome+"/Documents",
	PlaceholderHome+"/Saved Games",
	PlaceholderHome+"/AppData",
	PlaceholderHome+"/AppData/Local",
	PlaceholderHome+"/AppData/Local/Packages",
	PlaceholderHome+"/AppData/LocalLow",
	PlaceholderHome+"/AppData/Roaming",
	PlaceholderHome+"/Documents/My Games",
	PlaceholderHome+"/Library/Application Support",
	PlaceholderHome+"/Library/Application Support/UserData",
	PlaceholderHome+"/Library/Preferences",
	PlaceholderHome+"/.renpy",
	PlaceholderHome+"/.renpy/persistent",
	PlaceholderHome+"/Library",
	PlaceholderHome+"/Library/RenPy",
	PlaceholderHome+"/Telltale Games",
	PlaceholderRoot+"/config",
	PlaceholderWinAppData+"/MMFApplications",
	PlaceholderWinAppData+"/RenPy",
	PlaceholderWinAppData+"/RenPy/persistent",
	PlaceholderWinDir+"/win.ini",
	PlaceholderWinDir+"/SysWOW64",
	PlaceholderWinDocuments+"/My Games",
	PlaceholderWinDocuments+"/Telltale Games",
	PlaceholderXDGConfig+"/unity3d",
	PlaceholderXDGData+"/unity3d",
	"C:/Program Files",
	"C:/Program Files (x86)",
)

// broadSuffixes extend a broad path without making it specific.
var broadSuffixes = lowerAll(
	"/*",
	"/"+PlaceholderStoreUserID,
	"/savesdir",
)

// Usable reports whether a normalized path is specific enough to back up.
//
// A path is usable when it is non-empty, has no unresolved "{{" template,
// is not relative to an unknown directory, is not too broad and contains no
// control or format characters.
func Usable(path string) bool {
	return Classify(path) == ReasonNone
}

// TooBroad reports whether a normalized path would match unrelated data or
// whole-system directories.
func TooBroad(path string) bool {
	return tooBroadReason(path) != ReasonNone
}

// Classify returns the first usability condition the path fails,
// or ReasonNone when the path is usable.
func Classify(path string) Reason {
	switch {
	case path == "":
		return ReasonEmpty
	case strings.Contains(path, "{{"):
		return ReasonTemplate
	case strings.HasPrefix(path, "./"), strings.HasPrefix(path, "../"):
		return ReasonRelative
	}

	if reason := tooBroadReason(path); reason != ReasonNone {
		return reason
	}

	if hasUnprintable(path) {
		return ReasonUnprintable
	}

	return ReasonNone
}

// tooBroadReason applies the too-broad checks in order, first hit wins.
func tooBroadReason(path string) Reason {
	if isPlaceholder(path) {
		return ReasonPlaceholder
	}

	for _, item := range wildcardAvoidingPlaceholders {
		if strings.HasPrefix(path, item+"/*") || strings.HasPrefix(path, item+"/"+PlaceholderStoreUserID) {
			return ReasonWildcardRoot
		}
	}

	if isBroadPath(strings.ToLower(path)) {
		return ReasonBlacklisted
	}

	if isDriveLetter(path) {
		return ReasonDriveLetter
	}

	// Byte offset: ':' is ASCII and never part of a multi-byte sequence.
	if len(path) > 2 && strings.IndexByte(path[2:], ':') >= 0 {
		return ReasonColon
	}

	if path == "/" {
		return ReasonRoot
	}

	if strings.HasPrefix(path, "*") {
		return ReasonLeadingWildcard
	}

	return ReasonNone
}

// isBroadPath matches lower-cased path against broadPaths exactly or with one
// of broadSuffixes following.
func isBroadPath(lower string) bool {
	for _, item := range broadPaths {
		rest, ok := strings.CutPrefix(lower, item)
		if !ok {
			continue
		}

		if rest == "" {
			return true
		}

		for _, suffix := range broadSuffixes {
			if strings.HasPrefix(rest, suffix) {
				return true
			}
		}
	}

	return false
}

// isDriveLetter reports whether path is exactly one ASCII letter and a colon.
func isDriveLetter(path string) bool {
	if len(path) != 2 || path[1] != ':' {
		return false
	}

	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}

// hasUnprintable reports whether s contains Unicode Cc or Cf characters.
func hasUnprintable(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.In(r, unicode.Cc, unicode.Cf)
	})
}

// lowerAll returns lower-cased copies of items.
func lowerAll(items ...string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.ToLower(item)
	}

	return out
}
