// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package pathscope

import (
	"fmt"
	"testing"
)

const (
	benchPatternCount = 64
	benchPathCount    = 512
)

var (
	benchDecisionSink Decision
	benchBoolSink     bool
)

// buildBenchmarkSpecs produces a mixed exclude list exercising every
// compiled segment kind.
func buildBenchmarkSpecs(n int) []PatternSpec {
	specs := make([]PatternSpec, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			specs = append(specs, PatternSpec{Pattern: fmt.Sprintf("dir%03d/", i)})
		case 1:
			specs = append(specs, PatternSpec{Pattern: fmt.Sprintf("*.ext%03d", i)})
		case 2:
			specs = append(specs, PatternSpec{Pattern: fmt.Sprintf("/mod%03d/**", i)})
		default:
			specs = append(specs, PatternSpec{Pattern: fmt.Sprintf("!keep%03d.txt", i)})
		}
	}

	return specs
}

// benchmarkCandidates produces deterministic nested candidate paths.
func benchmarkCandidates(n int) []Candidate {
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Candidate{
			Path: CanonicalPath(fmt.Sprintf("mod%03d/sub/dir%03d/file%03d.ext%03d", i%32, i%16, i, i%8)),
		})
	}

	return out
}

func BenchmarkNewScopeConfig(b *testing.B) {
	specs := buildBenchmarkSpecs(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg, err := NewScopeConfig(nil, specs)
		if err != nil {
			b.Fatal(err)
		}

		if cfg == nil {
			b.Fatal("nil config")
		}
	}
}

func BenchmarkScopeDecide(b *testing.B) {
	cfg, err := NewScopeConfig(nil, buildBenchmarkSpecs(benchPatternCount))
	if err != nil {
		b.Fatal(err)
	}

	candidates := benchmarkCandidates(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDecisionSink = cfg.Decide(candidates[i%len(candidates)])
	}
}

func BenchmarkPatternMatchesRecursive(b *testing.B) {
	p, err := CompileExclude(PatternSpec{Pattern: "a/**/z.txt"})
	if err != nil {
		b.Fatal(err)
	}

	cand := Candidate{Path: "a/b/c/d/e/f/z.txt"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = p.Matches(cand)
	}
}
