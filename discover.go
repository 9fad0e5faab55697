// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Discover enumerates the candidate set for one scoping run.
//
// Without explicit inputs the whole root is walked recursively. With inputs,
// each one is canonicalized independently; a failing input produces a warning
// and the remaining inputs are still processed. Inputs resolving to a
// directory are walked like a sub-root.
//
// Symbolic links are never followed: a symlinked child is skipped with a
// SYMLINK_SKIPPED warning before any descent.
//
// The returned candidates are sorted lexicographically by canonical path.
// Warnings keep their encounter order. Cancelling ctx stops the traversal;
// candidates discovered up to that point are returned as valid partial data.
func Discover(ctx context.Context, root string, inputs []string) ([]Candidate, []Warning) {
	var candidates []Candidate
	collector := &Collector{}

	if len(inputs) == 0 {
		candidates = walkTree(ctx, root, root, candidates, collector)
	} else {
		for _, input := range inputs {
			if ctx != nil && ctx.Err() != nil {
				break
			}

			candidates = discoverInput(ctx, root, input, candidates, collector)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return sortCanonical(candidates[i].Path, candidates[j].Path)
	})

	return candidates, collector.Warnings()
}

// discoverInput canonicalizes one explicit input and expands directories.
func discoverInput(ctx context.Context, root, input string, candidates []Candidate, collector *Collector) []Candidate {
	canonical, err := Canonicalize(root, input)
	if err != nil {
		if skip, ok := err.(*SkipError); ok {
			collector.Add(skip.Warning())
		}

		return candidates
	}

	full := root
	if canonical != "" {
		full = filepath.Join(root, filepath.FromSlash(string(canonical)))
	}

	fi, statErr := os.Lstat(full)
	if statErr != nil || !fi.IsDir() {
		return append(candidates, Candidate{Path: canonical})
	}

	return walkTree(ctx, root, full, candidates, collector)
}

// walkTree walks one directory subtree collecting file candidates.
func walkTree(ctx context.Context, root, start string, candidates []Candidate, collector *Collector) []Candidate {
	_ = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if ctx != nil && ctx.Err() != nil {
			return fs.SkipAll
		}

		if err != nil {
			// Unreadable entries are skipped; traversal never aborts on one
			// bad entry.
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			collector.Add(symlinkWarning(root, path))
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		candidates = append(candidates, Candidate{Path: CanonicalPath(filepath.ToSlash(rel))})
		return nil
	})

	return candidates
}

// symlinkWarning builds the skip warning for one symlinked walk entry.
func symlinkWarning(root, path string) Warning {
	return Warning{
		Code:         WarnSymlinkSkipped,
		Severity:     severityWarning,
		Message:      fmt.Sprintf("%v: %s", ErrSymlinkSkipped, path),
		Action:       ActionSkipped,
		Root:         root,
		PathInput:    path,
		PathResolved: resolvePathOrAbs(path),
	}
}
