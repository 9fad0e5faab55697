// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"fmt"
	"os"
)

// LoadPatternFile reads and parses pattern specs from a file.
func LoadPatternFile(path string) ([]PatternSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer func() { _ = f.Close() }()

	specs, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse pattern file: %w", err)
	}

	return specs, nil
}

// LoadPatternFiles reads and merges pattern specs from files in the given order.
//
// Returned specs preserve file order and pattern order inside each file.
func LoadPatternFiles(paths ...string) ([]PatternSpec, error) {
	out := make([]PatternSpec, 0, len(paths)*8)
	for _, path := range paths {
		specs, err := LoadPatternFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, specs...)
	}

	return out, nil
}
