// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Manifest maps game names to their save data description.
type Manifest map[string]Game

// Game describes where one game keeps its data.
type Game struct {
	// Files maps path patterns to constraints.
	Files map[string]FileConstraint `json:"files,omitempty" yaml:"files,omitempty"`
	// Registry maps Windows registry keys to constraints. Keys are not normalized.
	Registry map[string]FileConstraint `json:"registry,omitempty" yaml:"registry,omitempty"`
	// InstallDir lists known install directory names.
	InstallDir map[string]struct{} `json:"installDir,omitempty" yaml:"installDir,omitempty"`
	// Alias names another game entry this one redirects to.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
	// Steam holds Steam store metadata.
	Steam *StoreInfo `json:"steam,omitempty" yaml:"steam,omitempty"`
	// Gog holds GOG store metadata.
	Gog *StoreInfo `json:"gog,omitempty" yaml:"gog,omitempty"`
}

// StoreInfo is store specific game metadata.
type StoreInfo struct {
	ID uint64 `json:"id,omitempty" yaml:"id,omitempty"`
}

// Tag classifies the kind of data behind a path.
type Tag string

const (
	// TagSave marks save data.
	TagSave Tag = "save"
	// TagConfig marks configuration data.
	TagConfig Tag = "config"
)

// Store is a game store name such as "steam" or "gog".
type Store string

// FileConstraint describes when and what a manifest path applies to.
type FileConstraint struct {
	// Tags classify the data.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
	// When lists alternative conditions; empty means always.
	When []When `json:"when,omitempty" yaml:"when,omitempty"`
}

// When is one condition of a manifest path.
type When struct {
	OS    OS    `json:"os,omitempty" yaml:"os,omitempty"`
	Store Store `json:"store,omitempty" yaml:"store,omitempty"`
}

// SanitizeOptions controls Manifest.Sanitize.
type SanitizeOptions struct {
	// DefaultOS is used for paths whose constraints do not name one OS.
	DefaultOS OS `json:"default_os,omitempty" yaml:"default_os,omitempty"`
	// KeepUnusable keeps unusable paths in the output; they are still reported.
	KeepUnusable bool `json:"keep_unusable,omitempty" yaml:"keep_unusable,omitempty"`
	// Tags keeps only paths carrying at least one of these tags. Empty keeps all.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Dropped is one manifest path rejected by the usability check.
type Dropped struct {
	Game       string `json:"game" yaml:"game"`
	Raw        string `json:"raw" yaml:"raw"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Reason     Reason `json:"reason" yaml:"reason"`
}

// SanitizeReport summarizes one Manifest.Sanitize run.
type SanitizeReport struct {
	// Games is the number of processed games.
	Games int `json:"games" yaml:"games"`
	// Paths is the number of processed file paths.
	Paths int `json:"paths" yaml:"paths"`
	// Rewritten counts paths whose normalized form differs from the raw one.
	Rewritten int `json:"rewritten" yaml:"rewritten"`
	// Merged counts paths folded into another path with the same normalized form.
	Merged int `json:"merged" yaml:"merged"`
	// Skipped counts paths removed by the tag filter.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Dropped lists unusable paths in game then path order.
	Dropped []Dropped `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

// ParseManifest decodes a YAML manifest from reader. Empty input yields an
// empty manifest.
func ParseManifest(r io.Reader) (Manifest, error) {
	m := Manifest{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, nil
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if _, ok := m[""]; ok {
		return nil, fmt.Errorf("%w: empty game name", ErrInvalidManifest)
	}

	return m, nil
}

// WriteManifest encodes manifest as YAML with sorted keys.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close manifest encoder: %w", err)
	}

	return nil
}

// Sanitize normalizes every file path and drops unusable ones.
//
// Each path is normalized with the single OS its constraints name, falling
// back to opts.DefaultOS. Paths that collapse to the same normalized form are
// merged by uniting their tags and conditions. Paths without one of
// opts.Tags are skipped before normalization. Games are visited in sorted
// name order so the report is deterministic. The receiver is not modified.
func (m Manifest) Sanitize(opts SanitizeOptions) (Manifest, SanitizeReport) {
	out := make(Manifest, len(m))
	report := SanitizeReport{Games: len(m)}

	for _, name := range slices.Sorted(maps.Keys(m)) {
		game := m[name]
		if len(game.Files) == 0 {
			out[name] = game
			continue
		}

		files := make(map[string]FileConstraint, len(game.Files))
		for _, raw := range slices.Sorted(maps.Keys(game.Files)) {
			constraint := game.Files[raw]
			report.Paths++

			if !hasAnyTag(constraint.Tags, opts.Tags) {
				report.Skipped++
				continue
			}

			normalized := Normalize(raw, constraint.os(opts.DefaultOS))
			if normalized != raw {
				report.Rewritten++
			}

			if reason := Classify(normalized); reason != ReasonNone {
				report.Dropped = append(report.Dropped, Dropped{
					Game:       name,
					Raw:        raw,
					Normalized: normalized,
					Reason:     reason,
				})

				if !opts.KeepUnusable {
					continue
				}
			}

			if existing, ok := files[normalized]; ok {
				report.Merged++
				constraint = existing.merge(constraint)
			}

			files[normalized] = constraint
		}

		game.Files = files
		out[name] = game
	}

	return out, report
}

// os returns the single OS named by every condition, or fallback.
func (c FileConstraint) os(fallback OS) OS {
	tags := make([]OS, 0, len(c.When))
	for _, w := range c.When {
		tags = append(tags, w.OS)
	}

	if found := soleOS(tags); found != OSUnknown {
		return found
	}

	return fallback
}

// merge unites two constraints. An unconditional side keeps the result unconditional.
func (c FileConstraint) merge(other FileConstraint) FileConstraint {
	out := FileConstraint{
		Tags: mergeUnique(slices.Clone(c.Tags), other.Tags...),
	}

	if len(c.When) > 0 && len(other.When) > 0 {
		out.When = mergeUnique(slices.Clone(c.When), other.When...)
	}

	return out
}
