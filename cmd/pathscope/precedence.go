// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/woozymasta/pathscope"
)

// resolvePatternList resolves one pattern list through the precedence chain:
// CLI flag > environment JSON array > config file > defaults.
//
// The highest-precedence provided source replaces lower sources wholesale;
// an explicitly empty provided list still replaces. Only the defaults are
// built-in and exempt from PATTERN_UNMATCHED reporting.
func resolvePatternList(flagProvided bool, flagValues []string, envVar, configKey string, defaults []pathscope.PatternSpec) ([]pathscope.PatternSpec, error) {
	if flagProvided {
		return pathscope.UserPatterns(flagValues...), nil
	}

	if raw, ok := os.LookupEnv(envVar); ok {
		list, err := pathscope.DecodeEnvPatterns(envVar, raw)
		if err != nil {
			return nil, err
		}

		if list != nil {
			return pathscope.UserPatterns(list...), nil
		}
	}

	if viper.IsSet(configKey) {
		return pathscope.UserPatterns(viper.GetStringSlice(configKey)...), nil
	}

	return defaults, nil
}

// resolveScopeLists resolves both lists plus the extension and pattern-file
// supplements.
func resolveScopeLists(includeProvided, excludeProvided bool) (includes, excludes []pathscope.PatternSpec, err error) {
	includes, err = resolvePatternList(includeProvided, includePatterns, envIncludeVar, includeConfigKey, nil)
	if err != nil {
		return nil, nil, err
	}

	excludes, err = resolvePatternList(excludeProvided, excludePatterns, envExcludeVar, excludeConfigKey, defaultExcludes())
	if err != nil {
		return nil, nil, err
	}

	if len(extFlag) > 0 {
		includes = pathscope.MergeSpecs(includes, pathscope.ExtensionPatterns(extFlag))
	}

	if patternsFileFlag != "" {
		fileSpecs, loadErr := pathscope.LoadPatternFile(patternsFileFlag)
		if loadErr != nil {
			return nil, nil, loadErr
		}

		excludes = pathscope.MergeSpecs(excludes, fileSpecs)
	}

	return includes, excludes, nil
}
