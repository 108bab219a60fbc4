// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"regexp"
	"strings"
)

// rewriteRule is one ordered pattern -> replacement step of the normalizer.
type rewriteRule struct {
	// re is compiled once at package init and only read afterwards.
	re *regexp.Regexp
	// replacement is expanded by regexp.ReplaceAllString ("${1}" refers to groups).
	replacement string
}

// apply rewrites every match and repeats until the rule no longer matches its
// own output, so overlapping runs like "/ / /" collapse fully.
func (r rewriteRule) apply(s string) string {
	for {
		next := r.re.ReplaceAllString(s, r.replacement)
		if next == s {
			return s
		}

		s = next
	}
}

// whitespaceClass matches Unicode White_Space, which is wider than RE2 "\s".
const whitespaceClass = `[\s\v\x{85}\p{Z}]`

// rewriteRules run in this exact order; later rules expect earlier cleanup.
var rewriteRules = [...]rewriteRule{
	{regexp.MustCompile(`/{2,}`), "/"},
	{regexp.MustCompile(`([^/*])\*{2,}`), "${1}*"},
	{regexp.MustCompile(`\*{2,}([^/*])`), "*${1}"},
	{regexp.MustCompile(`(/\*)+$`), ""},
	{regexp.MustCompile(`/\.$`), ""},
	{regexp.MustCompile(`/\./`), "/"},
	{regexp.MustCompile(`/` + whitespaceClass + `+/`), "/"},
	{regexp.MustCompile(`(?i)%appdata%`), PlaceholderWinAppData},
	{regexp.MustCompile(`(?i)%userprofile%/AppData/Roaming`), PlaceholderWinAppData},
	{regexp.MustCompile(`(?i)%localappdata%`), PlaceholderWinLocalAppData},
	{regexp.MustCompile(`(?i)%userprofile%/AppData/Local/`), PlaceholderWinLocalAppData + "/"},
	{regexp.MustCompile(`(?i)%userprofile%`), PlaceholderHome},
	{regexp.MustCompile(`(?i)%userprofile%/Documents`), PlaceholderWinDocuments},
}

// windowsRewriteRules only run when the target OS is Windows: "<home>" alone
// is ambiguous between platforms.
var windowsRewriteRules = [...]rewriteRule{
	{regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(PlaceholderHome) + `/Documents`), PlaceholderWinDocuments},
}

// storeUserIDTokens are literal vendor account id tokens.
var storeUserIDTokens = [...]string{
	"{64BitSteamID}",
	"{Steam3AccountID}",
}

// Normalize rewrites a raw path pattern into canonical placeholder form.
//
// Pipeline:
//   - trim whitespace and trailing separators, convert "\" to "/"
//   - expand a leading "~" to <home>
//   - collapse slashes, redundant "**", trailing "/*", dot and blank segments
//   - substitute Windows environment variables with placeholders
//   - on Windows, map "<home>/Documents" to <winDocuments>
//   - substitute Steam account id tokens with <storeUserId>
//
// The pipeline is repeated until the output is stable, which makes Normalize
// idempotent even when one step exposes input for an earlier one
// (for example "x/ /*" only becomes "x" after a second trim).
// Normalize never fails and is safe for concurrent use.
func Normalize(path string, os OS) string {
	for {
		next := normalizeOnce(path, os)
		if next == path {
			return next
		}

		path = next
	}
}

// normalizeOnce runs every pipeline step exactly once.
func normalizeOnce(path string, os OS) string {
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, `/\`)
	if strings.Contains(path, `\`) {
		path = strings.ReplaceAll(path, `\`, `/`)
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		path = PlaceholderHome + path[1:]
	}

	for _, rule := range rewriteRules {
		path = rule.apply(path)
	}

	if os == OSWindows {
		for _, rule := range windowsRewriteRules {
			path = rule.apply(path)
		}
	}

	for _, token := range storeUserIDTokens {
		path = strings.ReplaceAll(path, token, PlaceholderStoreUserID)
	}

	return path
}
