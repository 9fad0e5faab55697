// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import "strings"

// CanonicalPath is a root-relative, slash-separated, normalized path string.
//
// The empty value denotes the root itself. Two canonical paths are equal iff
// their string forms are equal.
type CanonicalPath string

// String returns the canonical string form.
func (p CanonicalPath) String() string {
	return string(p)
}

// Segments splits the canonical path into its segment sequence.
func (p CanonicalPath) Segments() []string {
	if p == "" {
		return nil
	}

	return strings.Split(string(p), "/")
}

// Base returns the final path segment.
func (p CanonicalPath) Base() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}

	return s
}

// Dir returns the canonical path of the parent directory, "" at root level.
func (p CanonicalPath) Dir() CanonicalPath {
	s := string(p)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return CanonicalPath(s[:i])
	}

	return ""
}

// sortCanonical reports whether a orders before b in byte order.
func sortCanonical(a, b CanonicalPath) bool {
	return a < b
}
