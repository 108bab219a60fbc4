// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

import (
	"fmt"
	"strings"
)

// OS is a target operating system tag.
type OS uint8

const (
	// OSUnknown means the target operating system is not known.
	OSUnknown OS = iota
	// OSWindows is Microsoft Windows.
	OSWindows
	// OSLinux is Linux.
	OSLinux
	// OSMac is macOS.
	OSMac
	// OSDos is MS-DOS.
	OSDos
)

var osNames = [...]string{
	OSUnknown: "",
	OSWindows: "windows",
	OSLinux:   "linux",
	OSMac:     "mac",
	OSDos:     "dos",
}

// ParseOS parses an OS tag case-insensitively. Empty input yields OSUnknown.
func ParseOS(s string) (OS, error) {
	s = asciiLower(strings.TrimSpace(s))
	for i, name := range osNames {
		if s == name {
			return OS(i), nil
		}
	}

	return OSUnknown, fmt.Errorf("%w: %q", ErrInvalidOS, s)
}

// String returns the lower-case tag name, empty for OSUnknown.
func (o OS) String() string {
	if int(o) < len(osNames) {
		return osNames[o]
	}

	return fmt.Sprintf("os(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o OS) MarshalText() ([]byte, error) {
	if int(o) >= len(osNames) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOS, uint8(o))
	}

	return []byte(osNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OS) UnmarshalText(text []byte) error {
	parsed, err := ParseOS(string(text))
	if err != nil {
		return err
	}

	*o = parsed
	return nil
}

// Reason explains why a normalized path is not usable.
type Reason uint8

const (
	// ReasonNone means the path is usable.
	ReasonNone Reason = iota
	// ReasonEmpty means the path is empty.
	ReasonEmpty
	// ReasonTemplate means the path still contains an unresolved "{{" template.
	ReasonTemplate
	// ReasonRelative means the path starts with "./" or "../".
	ReasonRelative
	// ReasonPlaceholder means the path is a bare placeholder.
	ReasonPlaceholder
	// ReasonWildcardRoot means a wildcard or store user id directly follows a broad root.
	ReasonWildcardRoot
	// ReasonBlacklisted means the path is a known universally-present directory.
	ReasonBlacklisted
	// ReasonDriveLetter means the path is a bare drive letter such as "C:".
	ReasonDriveLetter
	// ReasonColon means the path has a colon outside the drive letter position.
	ReasonColon
	// ReasonRoot means the path is the filesystem root "/".
	ReasonRoot
	// ReasonLeadingWildcard means the path starts with "*".
	ReasonLeadingWildcard
	// ReasonUnprintable means the path contains control or format characters.
	ReasonUnprintable
)

var reasonNames = [...]string{
	ReasonNone:            "",
	ReasonEmpty:           "empty",
	ReasonTemplate:        "unresolved template",
	ReasonRelative:        "relative path",
	ReasonPlaceholder:     "bare placeholder",
	ReasonWildcardRoot:    "wildcard under broad root",
	ReasonBlacklisted:     "too broad",
	ReasonDriveLetter:     "bare drive letter",
	ReasonColon:           "misplaced colon",
	ReasonRoot:            "filesystem root",
	ReasonLeadingWildcard: "leading wildcard",
	ReasonUnprintable:     "unprintable characters",
}

// String returns a short human readable description, empty for ReasonNone.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}

	return fmt.Sprintf("reason(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(text []byte) error {
	for i, name := range reasonNames {
		if string(text) == name {
			*r = Reason(i)
			return nil
		}
	}

	return fmt.Errorf("unknown reason %q", text)
}

// CheckerOptions controls Checker behavior.
type CheckerOptions struct {
	// OS is the target operating system used for normalization.
	OS OS `json:"os,omitempty" yaml:"os,omitempty"`
}

// CheckResult is a normalization and usability outcome for one raw path.
type CheckResult struct {
	// Raw is the input path.
	Raw string `json:"raw" yaml:"raw"`
	// Normalized is the canonical placeholder form of Raw.
	Normalized string `json:"normalized" yaml:"normalized"`
	// Usable reports whether Normalized is specific enough to back up.
	Usable bool `json:"usable" yaml:"usable"`
	// Reason is the first failed usability condition, ReasonNone when usable.
	Reason Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
}
