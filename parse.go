// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePatterns parses an exclude pattern list from gitignore-style text.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "!" keeps its meaning and stays part of the pattern text
// - "\#" and "\!" escape leading comment/negation tokens
//
// Returned specs are user-supplied and preserve input order; compilation and
// validation happen later in NewScopeConfig.
func ParsePatterns(r io.Reader) ([]PatternSpec, error) {
	s := bufio.NewScanner(r)
	specs := make([]PatternSpec, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			continue
		}

		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) || strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		specs = append(specs, PatternSpec{Pattern: line})
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return specs, nil
}

// ParsePatternsString parses patterns from string input.
func ParsePatternsString(src string) ([]PatternSpec, error) {
	return ParsePatterns(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
