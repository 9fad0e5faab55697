// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

// ScopeConfig holds the compiled, ordered include and exclude pattern lists.
//
// Includes are unordered for correctness (any match suffices); excludes are
// an ordered fold where the last matching rule wins.
type ScopeConfig struct {
	// Includes are the compiled include patterns, never negated.
	Includes []*Pattern
	// Excludes are the compiled exclude patterns in evaluation order.
	Excludes []*Pattern
}

// NewScopeConfig compiles raw pattern specs into a scope configuration.
//
// All configuration errors surface here, before any filesystem traversal:
// a negated include, an empty or malformed pattern.
func NewScopeConfig(includes, excludes []PatternSpec) (*ScopeConfig, error) {
	cfg := &ScopeConfig{
		Includes: make([]*Pattern, 0, len(includes)),
		Excludes: make([]*Pattern, 0, len(excludes)),
	}

	for _, spec := range includes {
		p, err := CompileInclude(spec)
		if err != nil {
			return nil, err
		}

		cfg.Includes = append(cfg.Includes, p)
	}

	for _, spec := range excludes {
		p, err := CompileExclude(spec)
		if err != nil {
			return nil, err
		}

		cfg.Excludes = append(cfg.Excludes, p)
	}

	return cfg, nil
}

// Decide returns the scope verdict for one candidate.
//
// Algorithm, in order:
//  1. baseline: included when the include list is empty, excluded otherwise
//  2. include pass: any matching include pattern includes the candidate
//  3. exclude pass: excludes are folded in list order, a matching plain
//     pattern excludes, a matching "!" pattern re-includes; later rules
//     unconditionally override earlier ones
func (c *ScopeConfig) Decide(cand Candidate) Decision {
	return c.decide(cand, nil)
}

// decide is Decide plus per-pattern hit accounting for unmatched reporting.
//
// Every include pattern is tested even after the first match so hit counts
// stay complete; the recorded rule is still the first matching include.
func (c *ScopeConfig) decide(cand Candidate, hits *hitSet) Decision {
	res := Decision{Included: len(c.Includes) == 0}

	for i, p := range c.Includes {
		if !p.Matches(cand) {
			continue
		}

		if hits != nil {
			hits.includes[i] = true
		}

		if !res.Matched {
			res.Matched = true
			res.Rule = p
		}

		res.Included = true
	}

	for i, p := range c.Excludes {
		if !p.Matches(cand) {
			continue
		}

		if hits != nil {
			hits.excludes[i] = true
		}

		res.Included = p.Negated()
		res.Matched = true
		res.Rule = p
	}

	return res
}

// hitSet tracks which patterns matched at least one candidate during a run.
//
// Parallel evaluation gives every worker its own hitSet and merges them
// after the workers join, so no shared state is written from worker contexts.
type hitSet struct {
	includes []bool
	excludes []bool
}

// newHitSet allocates a zeroed hit set shaped like the configuration.
func newHitSet(c *ScopeConfig) *hitSet {
	return &hitSet{
		includes: make([]bool, len(c.Includes)),
		excludes: make([]bool, len(c.Excludes)),
	}
}

// merge folds another hit set into this one.
func (h *hitSet) merge(other *hitSet) {
	for i, hit := range other.includes {
		if hit {
			h.includes[i] = true
		}
	}

	for i, hit := range other.excludes {
		if hit {
			h.excludes[i] = true
		}
	}
}

// unmatchedWarnings reports user-supplied patterns with zero hits, in merged
// includes-then-excludes order.
func (c *ScopeConfig) unmatchedWarnings(root string, hits *hitSet) []Warning {
	var warnings []Warning

	for i, p := range c.Includes {
		if !p.BuiltIn() && !hits.includes[i] {
			warnings = append(warnings, unmatchedWarning(root, p))
		}
	}

	for i, p := range c.Excludes {
		if !p.BuiltIn() && !hits.excludes[i] {
			warnings = append(warnings, unmatchedWarning(root, p))
		}
	}

	return warnings
}
