// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePaths parses a raw path list from reader, one path per line.
//
// Semantics:
// - blank lines and comments are ignored
// - "\#" escapes a leading comment token
// - paths are returned raw; call Normalize to canonicalize them
func ParsePaths(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	paths := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		paths = append(paths, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan paths: %w", err)
	}

	return paths, nil
}

// ParsePathsString parses a raw path list from string input.
func ParsePathsString(src string) ([]string, error) {
	return ParsePaths(strings.NewReader(src))
}
