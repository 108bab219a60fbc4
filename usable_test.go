// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import "testing"

func TestUsable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		reason Reason
	}{
		{"<home>/Library/Application Support/MyGame/save.dat", ReasonNone},
		{"<base>/saves", ReasonNone},
		{"<winDocuments>/My Games/Skyrim", ReasonNone},
		{"<home>/Documents/MyGame", ReasonNone},
		{"C:/Games/Foo", ReasonNone},
		{"/opt/game/save", ReasonNone},
		{"<home>/.local/share/game/*.sav", ReasonNone},

		{"", ReasonEmpty},
		{"{{installDir}}/saves", ReasonTemplate},
		{"<base>/{{p|save}}", ReasonTemplate},
		{"./saves", ReasonRelative},
		{"../saves", ReasonRelative},

		{"<home>", ReasonPlaceholder},
		{"<storeUserId>", ReasonPlaceholder},
		{"<home>/*", ReasonWildcardRoot},
		{"<home>/*.sav", ReasonWildcardRoot},
		{"<winAppData>/<storeUserId>", ReasonWildcardRoot},
		{"<xdgConfig>/*/saves", ReasonWildcardRoot},

		{"<home>/Documents", ReasonBlacklisted},
		{"<HOME>/documents", ReasonBlacklisted},
		{"<home>/DOCUMENTS", ReasonBlacklisted},
		{"<home>/Documents/*", ReasonBlacklisted},
		{"<home>/Documents/<storeUserId>", ReasonBlacklisted},
		{"<home>/Documents/savesdir", ReasonBlacklisted},
		{"<home>/AppData/LocalLow", ReasonBlacklisted},
		{"<base>/<storeUserId>", ReasonBlacklisted},
		{"<base>/<storeUserId>/*", ReasonBlacklisted},
		{"<base>/<storeUserId>/saves", ReasonNone},
		{"<winDir>/win.ini", ReasonBlacklisted},
		{"<xdgData>/unity3d/*", ReasonBlacklisted},
		{"c:/program files (x86)", ReasonBlacklisted},
		{"C:/Program Files/*", ReasonBlacklisted},

		{"C:", ReasonDriveLetter},
		{"z:", ReasonDriveLetter},
		{"C:/Games/a:b", ReasonColon},
		{"<home>/foo:bar", ReasonColon},
		{"/", ReasonRoot},
		{"*", ReasonLeadingWildcard},
		{"*/saves", ReasonLeadingWildcard},

		{"<home>/saves\u0007", ReasonUnprintable},
		{"<home>/saves\u200b", ReasonUnprintable},
		{"<home>/sa\tves", ReasonUnprintable},
	}

	for _, tc := range tests {
		got := Classify(tc.path)
		if got != tc.reason {
			t.Fatalf("Classify(%q)=%q, want %q", tc.path, got, tc.reason)
		}

		want := tc.reason == ReasonNone
		if got := Usable(tc.path); got != want {
			t.Fatalf("Usable(%q)=%v, want %v", tc.path, got, want)
		}
	}
}

func TestUsableRejectsBarePlaceholders(t *testing.T) {
	t.Parallel()

	for _, p := range Placeholders() {
		if Usable(p) {
			t.Fatalf("Usable(%q) must be false", p)
		}

		if !TooBroad(p) {
			t.Fatalf("TooBroad(%q) must be true", p)
		}
	}
}

func TestUsableBlacklistCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, item := range broadPaths {
		if Usable(item) {
			t.Fatalf("Usable(%q) must be false", item)
		}
	}

	for _, p := range []string{"<home>/Saved Games", "<home>/saved games", "<HOME>/SAVED GAMES"} {
		if Usable(p) {
			t.Fatalf("Usable(%q) must be false", p)
		}
	}
}

func TestTooBroadSpecificPaths(t *testing.T) {
	t.Parallel()

	for _, p := range []string{
		"<home>/Documents/My Games/Game",
		"<home>/Saved Games/Game",
		"<winAppData>/RenPy/game-123",
		"C:/Program Files/Game",
		"<root>/configs",
	} {
		if TooBroad(p) {
			t.Fatalf("TooBroad(%q) must be false", p)
		}
	}
}

func TestTooBroadColonByteOffset(t *testing.T) {
	t.Parallel()

	// "é" takes two bytes, so the colon sits at byte offset 2.
	if !TooBroad("é:") {
		t.Fatalf("colon after multi-byte prefix must be too broad")
	}

	if TooBroad("D:/Games") {
		t.Fatalf("drive letter colon must be allowed")
	}
}

func TestWildcardAvoidingSubset(t *testing.T) {
	t.Parallel()

	all := make(map[string]bool)
	for _, p := range Placeholders() {
		all[p] = true
	}

	for _, p := range WildcardAvoidingPlaceholders() {
		if !all[p] {
			t.Fatalf("%q is not in the vocabulary", p)
		}
	}

	if TooBroad("<base>/*.sav") {
		t.Fatalf("<base> must not avoid wildcards")
	}
}
