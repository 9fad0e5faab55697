// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"errors"
	"fmt"
)

// Sentinel errors for pathscope operations.
var (
	// ErrInvalidPattern indicates malformed or unsupported pattern syntax.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNegatedInclude indicates a "!" pattern inside an include list.
	ErrNegatedInclude = errors.New("negated pattern not allowed in includes")
	// ErrInvalidEnvList indicates an environment pattern list that is not an
	// array of strings.
	ErrInvalidEnvList = errors.New("invalid environment pattern list")
	// ErrPathOutsideRoot indicates an input path that escapes the scoping root.
	ErrPathOutsideRoot = errors.New("path is outside root")
	// ErrSymlinkSkipped indicates a symbolic link on the input path chain.
	ErrSymlinkSkipped = errors.New("symbolic link skipped")
	// ErrNotDirectory indicates a scoping root that is not a directory.
	ErrNotDirectory = errors.New("root is not a directory")
)

// ConfigError is the fatal error tier: invalid configuration detected before
// any filesystem traversal begins.
type ConfigError struct {
	// Source names the offending list or input ("includes", "excludes", env
	// variable name, pattern file path).
	Source string
	// Pattern is the offending raw pattern, empty for non-pattern errors.
	Pattern string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}

	return fmt.Sprintf("%s: pattern %q: %v", e.Source, e.Pattern, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configError wraps a sentinel into a ConfigError with source context.
func configError(source, pattern string, err error) *ConfigError {
	return &ConfigError{
		Source:  source,
		Pattern: pattern,
		Err:     err,
	}
}
