// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/woozymasta/pathscope"
	"github.com/woozymasta/pathscope/internal/manifest"
)

var manifestFlag string

var scanCmd = &cobra.Command{
	Use:   "scan [inputs...]",
	Short: "Resolve and print the eligible file set",
	Long: `Scan discovers candidate files under the root (or the explicit inputs),
applies the include/exclude scope and prints eligible paths to stdout,
one per line. Warnings go to stderr in emission order.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&manifestFlag, manifestFlagName, "", "write a YAML run manifest to this path")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	res := engine.Run(cmd.Context(), args...)
	slog.Debug("scan finished",
		"root", engine.Root(),
		"eligible", len(res.Eligible),
		"warnings", len(res.Warnings))

	for _, path := range res.Eligible {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	renderWarnings(cmd.ErrOrStderr(), res.Warnings, colorEnabled())

	if manifestFlag != "" {
		if err := manifest.Write(manifestFlag, engine.Root(), res); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	return nil
}

// buildEngine resolves configuration and constructs the scoping engine.
//
// Any ConfigError aborts here, before discovery starts.
func buildEngine(cmd *cobra.Command) (*pathscope.Engine, error) {
	includes, excludes, err := resolveScopeLists(
		cmd.Flags().Changed(includeFlagName),
		cmd.Flags().Changed(excludeFlagName),
	)
	if err != nil {
		return nil, err
	}

	return pathscope.NewEngine(rootDirFlag, includes, excludes, pathscope.Options{
		Parallelism: parallelFlag,
	})
}

// colorEnabled reports whether stderr rendering may use colors.
func colorEnabled() bool {
	if noColorFlag {
		return false
	}

	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
