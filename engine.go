// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Options controls engine behavior.
type Options struct {
	// Parallelism is the worker count for scope evaluation. Values below 2
	// keep the run fully synchronous. Parallel runs produce the same ordered
	// output as synchronous runs: results are re-sequenced after the workers
	// join.
	Parallelism int `json:"parallelism,omitempty" yaml:"parallelism,omitempty"`
}

// Engine runs discovery and scope evaluation against one root directory.
type Engine struct {
	root        string
	config      *ScopeConfig
	parallelism int
}

// Result is the ordered output of one scoping run.
type Result struct {
	// Eligible is the sorted list of files passing scope evaluation: the only
	// file list downstream consumers are permitted to scan.
	Eligible []CanonicalPath `json:"eligible" yaml:"eligible"`
	// Warnings are the structured diagnostics in emission order.
	Warnings []Warning `json:"warnings" yaml:"warnings"`
}

// NewEngine validates the root, compiles the pattern lists and returns a
// ready engine. All ConfigError cases surface here, before any traversal.
func NewEngine(root string, includes, excludes []PatternSpec, opts Options) (*Engine, error) {
	config, err := NewScopeConfig(includes, excludes)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	fi, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}

	return &Engine{
		root:        absRoot,
		config:      config,
		parallelism: opts.Parallelism,
	}, nil
}

// Root returns the absolute root directory all scoping is relative to.
func (e *Engine) Root() string {
	return e.root
}

// Run discovers candidates, applies the scope configuration and returns the
// ordered eligible list plus all warnings in emission order.
//
// Cancelling ctx stops discovery at the traversal boundary; candidates found
// up to that point still produce a valid partial result, not an error.
func (e *Engine) Run(ctx context.Context, inputs ...string) *Result {
	candidates, warnings := Discover(ctx, e.root, inputs)

	hits := newHitSet(e.config)

	var eligible []CanonicalPath
	if e.parallelism > 1 && len(candidates) > 1 {
		eligible = e.evaluateParallel(candidates, hits)
	} else {
		for _, cand := range candidates {
			if e.config.decide(cand, hits).Included {
				eligible = append(eligible, cand.Path)
			}
		}
	}

	// Unmatched-pattern advisories come last, after every candidate has been
	// evaluated, in merged includes-then-excludes order.
	warnings = append(warnings, e.config.unmatchedWarnings(e.root, hits)...)

	return &Result{
		Eligible: eligible,
		Warnings: warnings,
	}
}

// evaluateParallel evaluates candidates with a bounded worker pool.
//
// Each worker owns a contiguous candidate chunk and a private hit set;
// verdicts are written by index and hit sets merged after the join, so the
// output order is identical to the synchronous path.
func (e *Engine) evaluateParallel(candidates []Candidate, hits *hitSet) []CanonicalPath {
	included := make([]bool, len(candidates))
	workerHits := make([]*hitSet, e.parallelism)

	var g errgroup.Group
	chunk := (len(candidates) + e.parallelism - 1) / e.parallelism

	for w := 0; w < e.parallelism; w++ {
		start := w * chunk
		if start >= len(candidates) {
			break
		}

		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}

		local := newHitSet(e.config)
		workerHits[w] = local

		g.Go(func() error {
			for i := start; i < end; i++ {
				included[i] = e.config.decide(candidates[i], local).Included
			}

			return nil
		})
	}

	// Workers never fail; the group is used for the join only.
	_ = g.Wait()

	for _, local := range workerHits {
		if local != nil {
			hits.merge(local)
		}
	}

	eligible := make([]CanonicalPath, 0, len(candidates))
	for i, cand := range candidates {
		if included[i] {
			eligible = append(eligible, cand.Path)
		}
	}

	return eligible
}
