// Package highlight segments text into plain and matched spans for a list of skills.
package highlight

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textscan"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Pattern builds a single case-insensitive whole-word alternation over skills. Longer
// skills come first so "Machine Learning" wins over "Learning" at the same position.
// Empty skills are ignored; nil is returned when nothing remains.
func Pattern(skills []string) *regexp.Regexp {
	sorted := make([]string, 0, len(skills))
	for _, s := range skills {
		if s != "" {
			sorted = append(sorted, s)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	quoted := make([]string, len(sorted))
	for i, s := range sorted {
		quoted[i] = textscan.QuoteFold(s)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

// Highlight splits text into alternating plain and matched spans. Concatenating the span
// contents always reproduces text exactly. Matched spans keep the casing found in text.
func Highlight(text string, skills []string) []types.TextSpan {
	if text == "" {
		return []types.TextSpan{}
	}

	re := Pattern(skills)
	if re == nil {
		return []types.TextSpan{{Content: text}}
	}

	matches := textscan.Find(re, text)
	gaps := textscan.Gaps(text, matches)

	out := make([]types.TextSpan, 0, len(matches)*2+1)
	for i, m := range matches {
		if gaps[i] != "" {
			out = append(out, types.TextSpan{Content: gaps[i]})
		}
		out = append(out, types.TextSpan{Content: m.Text, IsMatch: true})
	}
	if tail := gaps[len(matches)]; tail != "" {
		out = append(out, types.TextSpan{Content: tail})
	}
	return out
}

// Matched returns the contents of the matched spans, in text order.
func Matched(spans []types.TextSpan) []string {
	out := make([]string, 0)
	for _, s := range spans {
		if s.IsMatch {
			out = append(out, s.Content)
		}
	}
	return out
}
