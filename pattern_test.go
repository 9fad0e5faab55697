// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"errors"
	"testing"
)

// mustExclude compiles one exclude pattern or fails the test.
func mustExclude(t *testing.T, pattern string) *Pattern {
	t.Helper()

	p, err := CompileExclude(PatternSpec{Pattern: pattern})
	if err != nil {
		t.Fatalf("CompileExclude(%q): %v", pattern, err)
	}

	return p
}

func file(path string) Candidate {
	return Candidate{Path: CanonicalPath(path)}
}

func dir(path string) Candidate {
	return Candidate{Path: CanonicalPath(path), IsDir: true}
}

func TestCompileClassification(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "!/build/**/")
	if !p.Negated() || !p.Anchored() || !p.DirOnly() {
		t.Fatalf("unexpected flags: negated=%v anchored=%v dirOnly=%v", p.Negated(), p.Anchored(), p.DirOnly())
	}

	if p.String() != "!/build/**/" {
		t.Fatalf("String()=%q, want raw source", p.String())
	}
}

func TestCompileRejectsNegatedInclude(t *testing.T) {
	t.Parallel()

	_, err := CompileInclude(PatternSpec{Pattern: "!src/**"})
	if !errors.Is(err, ErrNegatedInclude) {
		t.Fatalf("err=%v, want ErrNegatedInclude", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Source != "includes" || cfgErr.Pattern != "!src/**" {
		t.Fatalf("unexpected config error: %+v", cfgErr)
	}
}

func TestCompileRejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"", "/", "!", "a//b", "//"} {
		if _, err := CompileExclude(PatternSpec{Pattern: pattern}); !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("CompileExclude(%q) err=%v, want ErrInvalidPattern", pattern, err)
		}
	}
}

func TestMatchFloatingLiteralSelectsSubtree(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "foo")
	if !p.Matches(file("foo/bar/baz.py")) {
		t.Fatalf("foo must match foo/bar/baz.py")
	}

	if !p.Matches(file("a/foo/baz.py")) {
		t.Fatalf("foo must match at any segment boundary")
	}

	if !p.Matches(file("a/b/foo")) {
		t.Fatalf("foo must match its own leaf")
	}

	if p.Matches(file("a/foobar/baz.py")) {
		t.Fatalf("foo must not match partial segment foobar")
	}
}

func TestMatchAnchoredLiteral(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "/foo")
	if !p.Matches(file("foo/bar/baz.py")) {
		t.Fatalf("/foo must match first-segment directory and descendants")
	}

	if p.Matches(file("a/foo/baz.py")) {
		t.Fatalf("/foo must not match at non-zero boundary")
	}
}

func TestMatchWildcardBasenameOnly(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "*.tmp")
	if !p.Matches(file("a/b/x.tmp")) {
		t.Fatalf("*.tmp must match basename at any depth")
	}

	if p.Matches(file("x.tmp/inner.txt")) {
		t.Fatalf("*.tmp must never match intermediate directory segments")
	}

	anchored := mustExclude(t, "/*.tmp")
	if !anchored.Matches(file("x.tmp")) {
		t.Fatalf("/*.tmp must match root-level basename")
	}

	if anchored.Matches(file("a/x.tmp")) {
		t.Fatalf("/*.tmp must not match below root level")
	}
}

func TestMatchDirectoryOnly(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "build/")
	if !p.Matches(file("src/build/out.json")) {
		t.Fatalf("build/ must match descendant files")
	}

	if !p.Matches(dir("src/build")) {
		t.Fatalf("build/ must match a directory entry")
	}

	if p.Matches(file("src/build")) {
		t.Fatalf("build/ must never match a same-named file leaf")
	}
}

func TestMatchRecursive(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "/src/**")
	if !p.Matches(file("src")) {
		t.Fatalf("/src/** must match src itself with zero extra segments")
	}

	if !p.Matches(file("src/a/b/c.go")) {
		t.Fatalf("/src/** must match any depth under src")
	}

	if p.Matches(file("other/src/a.go")) {
		t.Fatalf("/src/** must stay anchored")
	}

	floating := mustExclude(t, "foo/**")
	if !floating.Matches(file("mods/foo/a.paa")) {
		t.Fatalf("foo/** must float to any boundary")
	}

	middle := mustExclude(t, "a/**/z.txt")
	if !middle.Matches(file("a/z.txt")) {
		t.Fatalf("a/**/z.txt must allow ** to consume zero segments")
	}

	if !middle.Matches(file("a/b/c/z.txt")) {
		t.Fatalf("a/**/z.txt must allow ** to consume several segments")
	}

	if middle.Matches(file("a/b/c/x.txt")) {
		t.Fatalf("a/**/z.txt must still require the tail")
	}
}

func TestMatchMultiSegmentExact(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "scripts/module_010/*.c")
	if !p.Matches(file("scripts/module_010/main.c")) {
		t.Fatalf("multi-segment pattern must match at boundary 0")
	}

	if !p.Matches(file("addons/scripts/module_010/main.c")) {
		t.Fatalf("floating multi-segment pattern must match at later boundary")
	}

	if p.Matches(file("scripts/module_010/sub/main.c")) {
		t.Fatalf("multi-segment pattern without ** must not recurse implicitly")
	}
}

func TestMatchCharClass(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "file[0-2].txt")
	if !p.Matches(file("file1.txt")) {
		t.Fatalf("file1.txt must match char class")
	}

	if p.Matches(file("file9.txt")) {
		t.Fatalf("file9.txt must not match char class")
	}

	neg := mustExclude(t, "file[!0-2].txt")
	if !neg.Matches(file("file9.txt")) || neg.Matches(file("file1.txt")) {
		t.Fatalf("negated char class mismatch")
	}
}

func TestMatchBackslashIsLiteral(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, `a\b.txt`)
	if !p.Matches(file(`a\b.txt`)) {
		t.Fatalf(`backslash must match character-for-character`)
	}

	if p.Matches(file("a/b.txt")) {
		t.Fatalf("backslash must not act as a separator")
	}
}

func TestMatchCaseSensitive(t *testing.T) {
	t.Parallel()

	p := mustExclude(t, "Build")
	if p.Matches(file("build/x.txt")) {
		t.Fatalf("matching must be byte-exact and case-sensitive")
	}
}
