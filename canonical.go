// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SkipError is the non-fatal failure tier of Canonicalize: the input cannot
// be scoped safely and must be skipped with a warning.
type SkipError struct {
	// Code is the warning code this skip converts to.
	Code WarningCode
	// Root is the scoping root the input was validated against.
	Root string
	// PathInput is the original pre-resolution input string.
	PathInput string
	// PathResolved is the best-effort resolved path, empty when unobtainable.
	PathResolved string
	// err is the underlying sentinel error.
	err error
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	return fmt.Sprintf("%v: %s", e.err, e.PathInput)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *SkipError) Unwrap() error {
	return e.err
}

// Warning converts the skip into its structured warning form.
func (e *SkipError) Warning() Warning {
	return Warning{
		Code:         e.Code,
		Severity:     severityWarning,
		Message:      e.Error(),
		Action:       ActionSkipped,
		Root:         e.Root,
		PathInput:    e.PathInput,
		PathResolved: e.PathResolved,
	}
}

// Canonicalize converts input into a canonical root-relative path.
//
// Relative inputs are resolved against root, absolute inputs are used as-is.
// The call fails with a SkipError when the resolved path is not a descendant
// of root, or when any path component from root down to the input itself is
// a symbolic link. The symlink check inspects link status level by level and
// never follows links.
func Canonicalize(root, input string) (CanonicalPath, error) {
	abs := input
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	} else {
		abs = filepath.Clean(abs)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || !relWithinRoot(rel) {
		return "", &SkipError{
			Code:         WarnPathOutsideRoot,
			Root:         root,
			PathInput:    input,
			PathResolved: abs,
			err:          ErrPathOutsideRoot,
		}
	}

	if rel == "." {
		return "", nil
	}

	canonical := filepath.ToSlash(rel)

	// Walk from root down to the input itself so a safe leaf behind a
	// symlinked ancestor is still rejected.
	current := root
	for _, segment := range strings.Split(canonical, "/") {
		current = filepath.Join(current, segment)

		fi, err := os.Lstat(current)
		if err != nil {
			// A nonexistent tail cannot be a link.
			break
		}

		if fi.Mode()&os.ModeSymlink != 0 {
			return "", &SkipError{
				Code:         WarnSymlinkSkipped,
				Root:         root,
				PathInput:    input,
				PathResolved: resolvePathOrAbs(current),
				err:          ErrSymlinkSkipped,
			}
		}
	}

	return CanonicalPath(canonical), nil
}

// relWithinRoot reports whether a filepath.Rel result stays under the root.
func relWithinRoot(rel string) bool {
	if rel == ".." {
		return false
	}

	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// resolvePathOrAbs resolves symlinks and falls back to the lexical absolute
// path when resolution fails. Best-effort only: callers use the result for
// diagnostics, never for decisions.
func resolvePathOrAbs(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved
	}

	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return path
	}

	return abs
}
