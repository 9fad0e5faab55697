// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"regexp"
	"strings"
)

// segmentKind classifies one compiled pattern segment.
type segmentKind uint8

const (
	// segLiteral matches one candidate segment byte-for-byte.
	segLiteral segmentKind = iota
	// segWildcard matches one candidate segment with "*", "?" and "[...]".
	segWildcard
	// segRecursive ("**") matches zero or more whole candidate segments.
	segRecursive
)

// segment is one compiled segment matcher.
type segment struct {
	// kind selects the matching strategy.
	kind segmentKind
	// text is the raw segment source.
	text string
	// re matches wildcard segments containing char classes; nil otherwise.
	re *regexp.Regexp
}

// Pattern is an immutable compiled representation of one pattern string.
//
// Classification (anchored, directory-only, negated, segment kinds) is
// computed once at compile time; Matches never re-parses the source.
type Pattern struct {
	raw      string
	segments []segment
	negated  bool
	anchored bool
	dirOnly  bool
	builtIn  bool
}

// String returns the original raw pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// Negated reports whether the pattern re-includes on match (excludes only).
func (p *Pattern) Negated() bool {
	return p.negated
}

// Anchored reports whether matching starts at candidate segment 0 only.
func (p *Pattern) Anchored() bool {
	return p.anchored
}

// DirOnly reports whether the pattern matches directories and their
// descendant files only.
func (p *Pattern) DirOnly() bool {
	return p.dirOnly
}

// BuiltIn reports whether the pattern came from built-in defaults.
func (p *Pattern) BuiltIn() bool {
	return p.builtIn
}

// CompileInclude compiles one include-list pattern. Negation is a
// configuration error here, not a runtime condition.
func CompileInclude(spec PatternSpec) (*Pattern, error) {
	return compilePattern("includes", spec, false)
}

// CompileExclude compiles one exclude-list pattern, allowing "!" negation.
func CompileExclude(spec PatternSpec) (*Pattern, error) {
	return compilePattern("excludes", spec, true)
}

// compilePattern parses one raw pattern into its compiled immutable form.
//
// The slash is the only separator token; a backslash carries no special
// meaning and matches itself.
func compilePattern(source string, spec PatternSpec, allowNegation bool) (*Pattern, error) {
	raw := spec.Pattern

	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, configError(source, raw, ErrInvalidPattern)
	}

	p := &Pattern{
		raw:     raw,
		builtIn: spec.BuiltIn,
	}

	if strings.HasPrefix(text, "!") {
		if !allowNegation {
			return nil, configError(source, raw, ErrNegatedInclude)
		}

		p.negated = true
		text = text[1:]
	}

	p.anchored = strings.HasPrefix(text, "/")
	text = strings.TrimPrefix(text, "/")

	p.dirOnly = strings.HasSuffix(text, "/")
	text = strings.TrimSuffix(text, "/")

	if text == "" {
		return nil, configError(source, raw, ErrInvalidPattern)
	}

	for _, part := range strings.Split(text, "/") {
		if part == "" {
			return nil, configError(source, raw, ErrInvalidPattern)
		}

		seg, err := compileSegment(part)
		if err != nil {
			return nil, configError(source, raw, err)
		}

		p.segments = append(p.segments, seg)
	}

	return p, nil
}

// compileSegment compiles one slash-delimited pattern segment.
func compileSegment(text string) (segment, error) {
	if text == "**" {
		return segment{kind: segRecursive, text: text}, nil
	}

	if !segmentHasGlobMeta(text) {
		return segment{kind: segLiteral, text: text}, nil
	}

	if !segmentHasCharClass(text) {
		return segment{kind: segWildcard, text: text}, nil
	}

	re, err := regexp.Compile("^" + globToRegexSegment(text) + "$")
	if err != nil {
		return segment{}, ErrInvalidPattern
	}

	return segment{kind: segWildcard, text: text, re: re}, nil
}

// Matches reports whether the compiled pattern matches the candidate.
//
// Floating patterns are attempted at every segment boundary; anchored
// patterns only at segment 0. Directory-only patterns match a directory
// entry and every descendant file of that directory, never a same-named
// file leaf.
func (p *Pattern) Matches(c Candidate) bool {
	segs := c.Path.Segments()
	if len(segs) == 0 {
		return false
	}

	if len(p.segments) == 1 && p.segments[0].kind != segRecursive {
		if p.segments[0].kind == segLiteral {
			return p.matchSingleLiteral(segs, c.IsDir)
		}

		return p.matchSingleWildcard(segs, c.IsDir)
	}

	if p.anchored {
		return p.matchFrom(0, 0, segs, c.IsDir)
	}

	for boundary := range segs {
		if p.matchFrom(0, boundary, segs, c.IsDir) {
			return true
		}
	}

	return false
}

// matchSingleLiteral matches a one-segment literal pattern.
//
// A bare name selects an entire subtree: the pattern matches when any
// candidate segment equals it (floating) or the first segment does
// (anchored).
func (p *Pattern) matchSingleLiteral(segs []string, isDir bool) bool {
	limit := len(segs)
	if p.anchored {
		limit = 1
	}

	for i := 0; i < limit; i++ {
		if segs[i] != p.segments[0].text {
			continue
		}

		if !p.dirOnly {
			return true
		}

		// Directory-only: the matched segment must be a directory, which is
		// every non-final segment, or the final one for directory candidates.
		if i < len(segs)-1 || isDir {
			return true
		}
	}

	return false
}

// matchSingleWildcard matches a one-segment wildcard pattern.
//
// Plain wildcard patterns match the basename only; directory-only wildcard
// patterns match any directory segment instead.
func (p *Pattern) matchSingleWildcard(segs []string, isDir bool) bool {
	seg := p.segments[0]

	if p.dirOnly {
		limit := len(segs)
		if p.anchored {
			limit = 1
		}

		for i := 0; i < limit; i++ {
			if !matchSegment(seg, segs[i]) {
				continue
			}

			if i < len(segs)-1 || isDir {
				return true
			}
		}

		return false
	}

	if p.anchored && len(segs) != 1 {
		return false
	}

	return matchSegment(seg, segs[len(segs)-1])
}

// matchFrom matches pattern tokens against segs starting at boundary si.
//
// "**" consumes zero or more segments via bounded backtracking; recursion
// depth is bounded by path depth.
func (p *Pattern) matchFrom(pi, si int, segs []string, isDir bool) bool {
	if pi == len(p.segments) {
		if p.dirOnly {
			// Remaining segments are descendants of the matched directory.
			return si < len(segs) || isDir
		}

		return si == len(segs)
	}

	seg := p.segments[pi]
	if seg.kind == segRecursive {
		for k := si; k <= len(segs); k++ {
			if p.matchFrom(pi+1, k, segs, isDir) {
				return true
			}
		}

		return false
	}

	if si >= len(segs) || !matchSegment(seg, segs[si]) {
		return false
	}

	return p.matchFrom(pi+1, si+1, segs, isDir)
}

// matchSegment matches one compiled segment against one candidate segment.
func matchSegment(seg segment, text string) bool {
	switch seg.kind {
	case segLiteral:
		return seg.text == text
	case segRecursive:
		return true
	default:
		if seg.re != nil {
			return seg.re.MatchString(text)
		}

		return matchSimpleWildcard(seg.text, text)
	}
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one segment.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack pattern to token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}

// segmentHasGlobMeta reports whether segment contains supported glob meta.
func segmentHasGlobMeta(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '*', '?':
			return true
		case '[':
			if findCharClassEnd(text, i) >= 0 {
				return true
			}
		}
	}

	return false
}

// segmentHasCharClass reports whether segment contains at least one valid "[...]" class.
func segmentHasCharClass(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}

		if findCharClassEnd(text, i) >= 0 {
			return true
		}
	}

	return false
}

// globToRegexSegment converts a glob segment pattern to a regex body.
func globToRegexSegment(pat string) string {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		if next, ok := appendCharClassRegex(pat, i, &b); ok {
			i = next
			continue
		}

		c := pat[i]
		switch c {
		case '*':
			// "**" inside a segment degrades to "*": separators never match here.
			if i+1 < len(pat) && pat[i+1] == '*' {
				i++
			}
			b.WriteString(`[^/]*`)
		case '?':
			b.WriteString(`[^/]`)
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	return b.String()
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as regex class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return start, false
	}

	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pat[idx] == '!' {
		// Glob-style class negation "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pat[idx] == '^' {
		// Literal leading '^' must be escaped in regex char class.
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pat[idx] == ']' {
		// Leading ']' is treated as literal in both glob and regex classes.
		b.WriteByte(']')
		idx++
	}

	for ; idx < end; idx++ {
		if pat[idx] == '\\' {
			b.WriteString(`\\`)
			continue
		}

		b.WriteByte(pat[idx])
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}
