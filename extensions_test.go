// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import "testing"

func TestExtensionPatterns(t *testing.T) {
	t.Parallel()

	got := ExtensionPatterns([]string{
		"go",
		".PY",
		"*.JSON",
		" ..cfg  ",
		"",
		"   ",
	})

	want := []string{"*.go", "*.py", "*.json", "*.cfg"}
	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i].Pattern != want[i] || got[i].BuiltIn {
			t.Fatalf("spec[%d]=%+v, want user pattern %q", i, got[i], want[i])
		}
	}
}

func TestExtensionPatterns_Empty(t *testing.T) {
	t.Parallel()

	got := ExtensionPatterns(nil)
	if len(got) != 0 {
		t.Fatalf("len(got)=%d, want 0", len(got))
	}
}
