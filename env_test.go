// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseEnvList(t *testing.T) {
	t.Parallel()

	got, err := ParseEnvList("PATHSCOPE_INCLUDE", []any{"src/**", "docs/**"})
	if err != nil {
		t.Fatalf("ParseEnvList: %v", err)
	}

	if !reflect.DeepEqual(got, []string{"src/**", "docs/**"}) {
		t.Fatalf("got %v", got)
	}
}

func TestParseEnvListRejectsNonString(t *testing.T) {
	t.Parallel()

	_, err := ParseEnvList("PATHSCOPE_INCLUDE", []any{"src/**", 42})
	if !errors.Is(err, ErrInvalidEnvList) {
		t.Fatalf("err=%v, want ErrInvalidEnvList", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Source != "PATHSCOPE_INCLUDE" {
		t.Fatalf("config error must name the source variable: %+v", cfgErr)
	}

	if _, err := ParseEnvList("X", "not-a-list"); !errors.Is(err, ErrInvalidEnvList) {
		t.Fatalf("non-list value must be rejected")
	}
}

func TestDecodeEnvPatterns(t *testing.T) {
	t.Parallel()

	got, err := DecodeEnvPatterns("X", `["a/**","!b"]`)
	if err != nil {
		t.Fatalf("DecodeEnvPatterns: %v", err)
	}

	if !reflect.DeepEqual(got, []string{"a/**", "!b"}) {
		t.Fatalf("got %v", got)
	}

	// An explicitly empty array still counts as "provided".
	got, err = DecodeEnvPatterns("X", `[]`)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty array must decode to empty non-nil list: %v %v", got, err)
	}

	if got, err := DecodeEnvPatterns("X", ""); err != nil || got != nil {
		t.Fatalf("unset value must decode to nil: %v %v", got, err)
	}

	if _, err := DecodeEnvPatterns("X", `{"a":1}`); !errors.Is(err, ErrInvalidEnvList) {
		t.Fatalf("non-array JSON must be rejected")
	}

	if _, err := DecodeEnvPatterns("X", `not json`); !errors.Is(err, ErrInvalidEnvList) {
		t.Fatalf("invalid JSON must be rejected")
	}
}
