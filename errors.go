// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import "errors"

// Sentinel errors for savepaths operations.
//
// Normalize, Usable, TooBroad and Classify never fail; these errors belong to
// the parsing and loading helpers around them.
var (
	// ErrInvalidOS indicates an unsupported operating system tag.
	ErrInvalidOS = errors.New("invalid os")
	// ErrInvalidManifest indicates malformed manifest input.
	ErrInvalidManifest = errors.New("invalid manifest")
)
