// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"encoding/json"
	"fmt"
)

// ParseEnvList validates an already-decoded environment value as an ordered
// pattern string list.
//
// Accepted shapes are []string and []any with string elements only. Any
// other shape is a ConfigError naming the source variable.
func ParseEnvList(source string, value any) ([]string, error) {
	switch list := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, elem := range list {
			s, ok := elem.(string)
			if !ok {
				return nil, configError(source, fmt.Sprintf("element %d", i), ErrInvalidEnvList)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, configError(source, "", ErrInvalidEnvList)
	}
}

// DecodeEnvPatterns decodes a raw environment variable value holding a JSON
// array of pattern strings.
//
// An empty value decodes to a nil list; a set-but-empty array is returned as
// an empty non-nil list so callers can distinguish "provided empty" from
// "not provided".
func DecodeEnvPatterns(source, raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, configError(source, raw, ErrInvalidEnvList)
	}

	if value == nil {
		// JSON null counts as "not provided".
		return nil, nil
	}

	list, err := ParseEnvList(source, value)
	if err != nil {
		return nil, err
	}

	if list == nil {
		list = []string{}
	}

	return list, nil
}
