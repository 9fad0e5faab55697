// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

/*
Package pathscope selects the exact set of files under a root directory that a
downstream pipeline is allowed to process, using ordered include/exclude
pattern lists with gitignore-flavored syntax.

The engine guarantees that the selection never escapes the declared root and
never follows symbolic links. Every skipped input is reported as a structured
Warning in deterministic emission order, and the eligible file list is always
sorted by canonical path.

Basic flow:
  - describe pattern lists (`UserPatterns` / `BuiltInPatterns`)
  - compile them into a scope (`NewScopeConfig`)
  - build an engine for a root directory (`NewEngine`)
  - run discovery and scoping (`Engine.Run`)

Lower-level pieces are exported for callers that bring their own traversal:
`Canonicalize` turns arbitrary paths into root-relative canonical form,
`Pattern.Matches` evaluates one compiled pattern, and `ScopeConfig.Decide`
applies the full include/exclude fold to one candidate.

Pattern syntax:
  - "/" anchors a pattern to the root, a trailing "/" makes it directory-only
  - "!" negates an exclude pattern (re-includes previously excluded paths)
  - "*", "?" and "[...]" match within one path segment
  - "**" matches zero or more whole segments
  - a bare name selects every path containing that segment
*/
package pathscope
