// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// LoadPathsFile reads and parses a raw path list from a file.
func LoadPathsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open paths file: %w", err)
	}
	defer func() { _ = f.Close() }()

	paths, err := ParsePaths(f)
	if err != nil {
		return nil, fmt.Errorf("parse paths file: %w", err)
	}

	return paths, nil
}

// LoadPathsFiles reads and concatenates path lists from files in the given order.
func LoadPathsFiles(paths ...string) ([]string, error) {
	out := make([]string, 0, len(paths)*8)
	for _, path := range paths {
		items, err := LoadPathsFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, items...)
	}

	return out, nil
}

// LoadManifestFile reads and parses a YAML manifest file.
func LoadManifestFile(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("parse manifest file %s: %w", path, err)
	}

	return m, nil
}

// LoadManifestFiles reads manifest files concurrently and merges them in the
// given order, so later files override games from earlier ones.
//
// workers limits concurrent reads; values below 1 mean one reader per file.
func LoadManifestFiles(ctx context.Context, workers int, paths ...string) (Manifest, error) {
	loaded := make([]Manifest, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, err := LoadManifestFile(path)
			if err != nil {
				return err
			}

			loaded[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return MergeManifests(loaded...), nil
}
