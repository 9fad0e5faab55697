// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// rootDirFlag is the scoping root; defaults to the working directory.
	rootDirFlag string
	// includePatterns and excludePatterns are the highest-precedence sources
	// in the per-list replacement chain.
	includePatterns []string
	excludePatterns []string
	// extFlag expands to "*.ext" include patterns appended after resolution.
	extFlag []string
	// patternsFileFlag names a gitignore-style exclude pattern file.
	patternsFileFlag string
	// parallelFlag is the evaluation worker count.
	parallelFlag int
	// logFileFlag overrides the rotating log destination.
	logFileFlag string
	// verboseFlag switches the log level to debug.
	verboseFlag bool
	// noColorFlag disables colored warning rendering.
	noColorFlag bool
)

const rootLongDescription = `Pathscope selects the exact set of files under a root directory that a
downstream analysis pipeline must process, using ordered include/exclude
pattern lists.

Pattern syntax follows gitignore conventions: "/" anchors to the root,
a trailing "/" matches directories and their contents, "!" re-includes
inside the exclude list, "*"/"?"/"[...]" match within one segment and
"**" matches across segments.

Precedence per list, highest non-empty source wins wholesale:
flag > PATHSCOPE_INCLUDE / PATHSCOPE_EXCLUDE (JSON arrays) > config file
> built-in defaults.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathscope",
		Short: "File scoping engine for analysis pipelines",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)
	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&rootDirFlag, rootFlagName, "r", ".", "root directory all scoping is relative to")
	cmd.PersistentFlags().StringArrayVarP(&includePatterns, includeFlagName, "i", nil, "include pattern (can be repeated)")
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude pattern (can be repeated)")
	cmd.PersistentFlags().StringSliceVar(&extFlag, extFlagName, nil, "file extensions to include (shorthand for *.ext)")
	cmd.PersistentFlags().StringVar(&patternsFileFlag, patternsFileFlagName, "", "gitignore-style exclude pattern file")
	cmd.PersistentFlags().IntVar(&parallelFlag, parallelFlagName, viper.GetInt(parallelKey), "scope evaluation worker count")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "rotating log file path")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColorFlag, noColorFlagName, false, "disable colored warning output")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
