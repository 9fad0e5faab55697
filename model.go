// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

// PatternSpec is one raw pattern string plus its provenance.
//
// Built-in patterns come from engine defaults and are exempt from
// PATTERN_UNMATCHED reporting; user-supplied patterns are not.
type PatternSpec struct {
	// Pattern is the raw pattern text, including any "!" prefix.
	Pattern string `json:"pattern" yaml:"pattern"`
	// BuiltIn marks patterns sourced from built-in defaults.
	BuiltIn bool `json:"built_in,omitempty" yaml:"built_in,omitempty"`
}

// UserPatterns wraps raw pattern strings as user-supplied specs.
func UserPatterns(patterns ...string) []PatternSpec {
	specs := make([]PatternSpec, 0, len(patterns))
	for _, p := range patterns {
		specs = append(specs, PatternSpec{Pattern: p})
	}

	return specs
}

// BuiltInPatterns wraps raw pattern strings as built-in default specs.
func BuiltInPatterns(patterns ...string) []PatternSpec {
	specs := make([]PatternSpec, 0, len(patterns))
	for _, p := range patterns {
		specs = append(specs, PatternSpec{Pattern: p, BuiltIn: true})
	}

	return specs
}

// Candidate is one filesystem entry considered for scoping.
type Candidate struct {
	// Path is the canonical root-relative path of the entry.
	Path CanonicalPath `json:"path" yaml:"path"`
	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir,omitempty" yaml:"is_dir,omitempty"`
}

// Decision is the scope verdict for one candidate.
type Decision struct {
	// Included reports the final eligibility state.
	Included bool `json:"included" yaml:"included"`
	// Matched reports whether at least one pattern matched.
	Matched bool `json:"matched" yaml:"matched"`
	// Rule is the last pattern that determined the state, nil when the
	// baseline decided.
	Rule *Pattern `json:"-" yaml:"-"`
}
