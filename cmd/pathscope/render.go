// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/woozymasta/pathscope"
)

// renderWarnings prints warnings to w in emission order.
//
// Safety skips render in yellow, advisories in cyan; colors are dropped
// entirely when colorize is false (piped output, --no-color).
func renderWarnings(w io.Writer, warnings []pathscope.Warning, colorize bool) {
	if len(warnings) == 0 {
		return
	}

	skipped := color.New(color.FgYellow).SprintFunc()
	info := color.New(color.FgCyan).SprintFunc()
	if !colorize {
		skipped = fmt.Sprint
		info = fmt.Sprint
	}

	for _, warning := range warnings {
		label := skipped(string(warning.Code))
		if warning.Action == pathscope.ActionInfo {
			label = info(string(warning.Code))
		}

		fmt.Fprintf(w, "%s: %s\n", label, warning.Message)
	}
}
