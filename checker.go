// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/savepaths

package savepaths

// Checker normalizes raw paths and classifies the result for one target OS.
// It holds no mutable state and is safe for concurrent use.
type Checker struct {
	os OS
}

// NewChecker creates a checker.
func NewChecker(opts CheckerOptions) *Checker {
	return &Checker{os: opts.OS}
}

// Check normalizes one raw path and reports whether the result is usable.
func (c *Checker) Check(raw string) CheckResult {
	normalized := Normalize(raw, c.os)
	reason := Classify(normalized)

	return CheckResult{
		Raw:        raw,
		Normalized: normalized,
		Usable:     reason == ReasonNone,
		Reason:     reason,
	}
}

// CheckAll checks raw paths preserving input order.
func (c *Checker) CheckAll(raws []string) []CheckResult {
	out := make([]CheckResult, 0, len(raws))
	for _, raw := range raws {
		out = append(out, c.Check(raw))
	}

	return out
}

// Usable reports whether raw normalizes to a usable path.
func (c *Checker) Usable(raw string) bool {
	return c.Check(raw).Usable
}

// Filter returns normalized usable paths in input order without duplicates.
func (c *Checker) Filter(raws []string) []string {
	seen := make(map[string]struct{}, len(raws))
	out := make([]string, 0, len(raws))
	for _, raw := range raws {
		res := c.Check(raw)
		if !res.Usable {
			continue
		}

		if _, ok := seen[res.Normalized]; ok {
			continue
		}

		seen[res.Normalized] = struct{}{}
		out = append(out, res.Normalized)
	}

	return out
}
