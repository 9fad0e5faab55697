// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

// MergeSpecs merges pattern spec slices preserving input order.
func MergeSpecs(specSets ...[]PatternSpec) []PatternSpec {
	total := 0
	for _, set := range specSets {
		total += len(set)
	}

	out := make([]PatternSpec, 0, total)
	for _, set := range specSets {
		out = append(out, set...)
	}

	return out
}
