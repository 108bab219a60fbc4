// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		os   OS
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \t ", want: ""},
		{name: "trim", in: "  foo/bar  ", want: "foo/bar"},
		{name: "trailing separators", in: `foo/bar/\/`, want: "foo/bar"},
		{name: "backslashes", in: `C:\Games\Foo`, want: "C:/Games/Foo"},
		{name: "home alone", in: "~", want: "<home>"},
		{name: "home prefix", in: "~/Saved Games", want: "<home>/Saved Games"},
		{name: "home backslash", in: `~\foo`, want: "<home>/foo"},
		{name: "tilde inside", in: "foo/~/bar", want: "foo/~/bar"},
		{name: "tilde name", in: "~foo/bar", want: "~foo/bar"},
		{name: "double slash", in: "a//b///c", want: "a/b/c"},
		{name: "star after char", in: "a**/b", want: "a*/b"},
		{name: "star before char", in: "a/**b", want: "a/*b"},
		{name: "star segment kept", in: "a/**/b", want: "a/**/b"},
		{name: "trailing star", in: "foo/bar/*", want: "foo/bar"},
		{name: "trailing stars", in: "foo/bar/*/*/*", want: "foo/bar"},
		{name: "lone star", in: "*", want: "*"},
		{name: "trailing dot", in: "foo/.", want: "foo"},
		{name: "inner dot", in: "foo/./bar", want: "foo/bar"},
		{name: "inner dots overlapping", in: "foo/././bar", want: "foo/bar"},
		{name: "blank segment", in: "foo/ /bar", want: "foo/bar"},
		{name: "blank segments overlapping", in: "foo/ / /bar", want: "foo/bar"},
		{name: "unicode blank segment", in: "foo/\u00a0\u3000/bar", want: "foo/bar"},
		{name: "blank before trailing star", in: "foo/ /*", want: "foo"},
		{name: "appdata", in: "%APPDATA%/Game", want: "<winAppData>/Game"},
		{name: "appdata mixed case", in: "%AppData%/Game", want: "<winAppData>/Game"},
		{name: "roaming", in: "%USERPROFILE%/AppData/Roaming/Game", want: "<winAppData>/Game"},
		{name: "roaming lower", in: `%userprofile%\appdata\roaming\Game`, want: "<winAppData>/Game"},
		{name: "localappdata", in: "%LOCALAPPDATA%/Game", want: "<winLocalAppData>/Game"},
		{name: "local via profile", in: "%USERPROFILE%/AppData/Local/Game", want: "<winLocalAppData>/Game"},
		{name: "userprofile", in: "%USERPROFILE%/Game", want: "<home>/Game"},
		{name: "userprofile documents", in: "%USERPROFILE%/Documents/Game", want: "<home>/Documents/Game"},
		{name: "userprofile documents windows", in: "%USERPROFILE%/Documents/Game", os: OSWindows, want: "<winDocuments>/Game"},
		{name: "documents windows", in: "~/Documents/Game", os: OSWindows, want: "<winDocuments>/Game"},
		{name: "documents linux", in: "~/Documents/Game", os: OSLinux, want: "<home>/Documents/Game"},
		{name: "documents windows case", in: "<HOME>/documents/Game", os: OSWindows, want: "<winDocuments>/Game"},
		{name: "documents not leading", in: "x/<home>/Documents", os: OSWindows, want: "x/<home>/Documents"},
		{name: "steam64", in: "<base>/{64BitSteamID}/save", want: "<base>/<storeUserId>/save"},
		{name: "steam3", in: "<base>/{Steam3AccountID}/save", want: "<base>/<storeUserId>/save"},
		{name: "steam token case sensitive", in: "<base>/{64bitsteamid}", want: "<base>/{64bitsteamid}"},
		{name: "combined", in: ` %appdata%\\Game\\*\\ `, want: "<winAppData>/Game"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Normalize(tc.in, tc.os)
			if got != tc.want {
				t.Fatalf("Normalize(%q, %v)=%q, want %q", tc.in, tc.os, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"~",
		"~/",
		"x/ /*",
		"x/ / / /y",
		"a\\\\b//c",
		"foo/**/bar",
		"a***b***",
		"***",
		"/*/*",
		"foo/./././.",
		"  %USERPROFILE%/Documents/My Games/ ",
		"%userprofile%/AppData/Local/",
		"~/Documents",
		"{64BitSteamID}/{Steam3AccountID}",
		"C:\\Program Files (x86)\\Game\\*",
		"\t<home>/\u2003/saves\\",
	}

	for _, in := range inputs {
		for _, os := range []OS{OSUnknown, OSWindows, OSLinux, OSMac} {
			once := Normalize(in, os)
			twice := Normalize(once, os)
			if once != twice {
				t.Fatalf("Normalize not idempotent for %q (%v): once=%q twice=%q", in, os, once, twice)
			}
		}
	}
}

func TestNormalizeSeparators(t *testing.T) {
	t.Parallel()

	if got, want := Normalize(`a\\b//c`, OSUnknown), Normalize("a/b/c", OSUnknown); got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
}

func TestNormalizeHomeExpansion(t *testing.T) {
	t.Parallel()

	got := Normalize("~/Saved Games", OSUnknown)
	if !strings.HasPrefix(got, PlaceholderHome) || !strings.HasSuffix(got, "/Saved Games") {
		t.Fatalf("got=%q", got)
	}
}

func TestNormalizeWildcardCollapse(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"foo/**/bar", "foo***/bar", "foo/***bar", "a**b**c"} {
		got := Normalize(in, OSUnknown)
		if strings.Contains(got, "**") && !strings.Contains(got, "/**/") {
			t.Fatalf("Normalize(%q)=%q has redundant star run", in, got)
		}
	}

	if got := Normalize("foo/**/bar", OSUnknown); got != "foo/**/bar" {
		t.Fatalf("standalone ** segment must be kept, got=%q", got)
	}

	if got, want := Normalize("foo/bar/*/*", OSUnknown), Normalize("foo/bar", OSUnknown); got != want {
		t.Fatalf("got=%q, want %q", got, want)
	}
}

func TestNormalizeEnvCaseInsensitive(t *testing.T) {
	t.Parallel()

	a := Normalize("%AppData%/Game", OSUnknown)
	b := Normalize("%appdata%/Game", OSUnknown)
	if a != b {
		t.Fatalf("%q != %q", a, b)
	}

	if !strings.HasPrefix(a, PlaceholderWinAppData) {
		t.Fatalf("got=%q, want %s prefix", a, PlaceholderWinAppData)
	}
}

func TestRewriteRuleApplyRepeats(t *testing.T) {
	t.Parallel()

	rule := rewriteRules[6]
	if got := rule.apply("a/ / / /b"); got != "a/b" {
		t.Fatalf("apply=%q, want a/b", got)
	}
}
