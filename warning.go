// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import "fmt"

// WarningCode identifies one structured warning kind.
type WarningCode string

// Warning codes emitted by discovery and scope evaluation.
const (
	// WarnPathOutsideRoot reports an input that escapes the scoping root.
	WarnPathOutsideRoot WarningCode = "PATH_OUTSIDE_ROOT"
	// WarnSymlinkSkipped reports a symbolic link on an input path chain.
	WarnSymlinkSkipped WarningCode = "SYMLINK_SKIPPED"
	// WarnPatternUnmatched reports a user-supplied pattern with zero matches.
	WarnPatternUnmatched WarningCode = "PATTERN_UNMATCHED"
)

// Warning action values.
const (
	// ActionSkipped marks warnings whose input was dropped from the run.
	ActionSkipped = "skipped"
	// ActionInfo marks purely advisory warnings.
	ActionInfo = "info"
)

// severityWarning is the only severity the engine emits.
const severityWarning = "warning"

// Warning is one immutable structured diagnostic, ordered by emission.
type Warning struct {
	// Code identifies the warning kind.
	Code WarningCode `json:"code" yaml:"code"`
	// Severity is always "warning".
	Severity string `json:"severity" yaml:"severity"`
	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
	// Action is "skipped" for safety warnings and "info" for advisories.
	Action string `json:"action" yaml:"action"`
	// Root is the scoping root the warning belongs to.
	Root string `json:"root" yaml:"root"`
	// PathInput is the original pre-resolution input path when applicable.
	PathInput string `json:"path_input,omitempty" yaml:"path_input,omitempty"`
	// PathResolved is the best-effort resolved path when obtainable.
	PathResolved string `json:"path_resolved,omitempty" yaml:"path_resolved,omitempty"`
	// Pattern is the raw pattern text for pattern-related warnings.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Collector accumulates warnings in emission order.
type Collector struct {
	warnings []Warning
}

// Add appends one warning preserving emission order.
func (c *Collector) Add(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the accumulated warnings in emission order.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// unmatchedWarning builds the advisory warning for one unmatched pattern.
func unmatchedWarning(root string, p *Pattern) Warning {
	return Warning{
		Code:     WarnPatternUnmatched,
		Severity: severityWarning,
		Message:  fmt.Sprintf("pattern %q matched no candidates", p.String()),
		Action:   ActionInfo,
		Root:     root,
		Pattern:  p.String(),
	}
}
