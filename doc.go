// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

/*
Package savepaths canonicalizes game save path patterns into a placeholder form
and decides whether a canonical path is specific enough to back up.

Paths come from a community maintained database and mix separators, home
shorthand, Windows environment variables, redundant wildcards and vendor
account tokens. Normalize rewrites all of them into one form built from a
closed placeholder vocabulary (`<home>`, `<winAppData>`, `<storeUserId>`, ...).
Usable rejects canonical paths that would match unrelated data: bare
placeholders, well-known system directories, drive roots, relative or
unresolved template paths and paths with control characters.

Basic flow:
  - normalize raw path for the target OS (`Normalize`)
  - ask whether result can be backed up (`Usable` / `TooBroad`)
  - inspect the failed condition (`Classify`)

For batches:
  - parse raw path lists (`ParsePaths` / `LoadPathsFile`)
  - check them with one target OS (`NewChecker` / `Checker.CheckAll`)
  - load YAML manifests (`LoadManifestFiles`) and clean them (`Manifest.Sanitize`)

Normalize and Usable do no I/O, hold no mutable state and are safe for
concurrent use. Normalize is idempotent.
*/
package savepaths
