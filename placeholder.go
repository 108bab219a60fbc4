// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

// Placeholder tokens substituted verbatim into normalized paths.
const (
	// PlaceholderRoot is a store library root directory.
	PlaceholderRoot = "<root>"
	// PlaceholderGame is the game install directory name.
	PlaceholderGame = "<game>"
	// PlaceholderBase is the full game install directory (root + game).
	PlaceholderBase = "<base>"
	// PlaceholderHome is the user home directory.
	PlaceholderHome = "<home>"
	// PlaceholderStoreUserID is a store-specific account identifier.
	PlaceholderStoreUserID = "<storeUserId>"
	// PlaceholderOSUserName is the operating system account name.
	PlaceholderOSUserName = "<osUserName>"
	// PlaceholderWinAppData is the Windows roaming application data directory.
	PlaceholderWinAppData = "<winAppData>"
	// PlaceholderWinLocalAppData is the Windows local application data directory.
	PlaceholderWinLocalAppData = "<winLocalAppData>"
	// PlaceholderWinLocalAppDataLow is the Windows LocalLow application data directory.
	PlaceholderWinLocalAppDataLow = "<winLocalAppDataLow>"
	// PlaceholderWinDocuments is the Windows documents directory.
	PlaceholderWinDocuments = "<winDocuments>"
	// PlaceholderWinPublic is the Windows public user directory.
	PlaceholderWinPublic = "<winPublic>"
	// PlaceholderWinProgramData is the Windows ProgramData directory.
	PlaceholderWinProgramData = "<winProgramData>"
	// PlaceholderWinDir is the Windows system directory.
	PlaceholderWinDir = "<winDir>"
	// PlaceholderXDGData is the XDG data directory.
	PlaceholderXDGData = "<xdgData>"
	// PlaceholderXDGConfig is the XDG config directory.
	PlaceholderXDGConfig = "<xdgConfig>"
)

// allPlaceholders is the closed placeholder vocabulary.
var allPlaceholders = [...]string{
	PlaceholderRoot,
	PlaceholderGame,
	PlaceholderBase,
	PlaceholderHome,
	PlaceholderStoreUserID,
	PlaceholderOSUserName,
	PlaceholderWinAppData,
	PlaceholderWinLocalAppData,
	PlaceholderWinLocalAppDataLow,
	PlaceholderWinDocuments,
	PlaceholderWinPublic,
	PlaceholderWinProgramData,
	PlaceholderWinDir,
	PlaceholderXDGData,
	PlaceholderXDGConfig,
}

// wildcardAvoidingPlaceholders are roots under which a bare wildcard or
// store user id still matches unrelated data.
var wildcardAvoidingPlaceholders = [...]string{
	PlaceholderRoot,
	PlaceholderHome,
	PlaceholderWinAppData,
	PlaceholderWinLocalAppData,
	PlaceholderWinLocalAppDataLow,
	PlaceholderWinDocuments,
	PlaceholderWinPublic,
	PlaceholderWinProgramData,
	PlaceholderWinDir,
	PlaceholderXDGData,
	PlaceholderXDGConfig,
}

// Placeholders returns a copy of the full placeholder vocabulary.
func Placeholders() []string {
	out := make([]string, len(allPlaceholders))
	copy(out, allPlaceholders[:])
	return out
}

// WildcardAvoidingPlaceholders returns a copy of placeholders that must not be
// directly followed by a wildcard or store user id segment.
func WildcardAvoidingPlaceholders() []string {
	out := make([]string, len(wildcardAvoidingPlaceholders))
	copy(out, wildcardAvoidingPlaceholders[:])
	return out
}

// isPlaceholder reports whether s is exactly one vocabulary token.
func isPlaceholder(s string) bool {
	for _, item := range allPlaceholders {
		if s == item {
			return true
		}
	}

	return false
}
