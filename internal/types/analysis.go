// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisResult is the outcome of comparing one resume against one job description.
// It is built fresh for every analysis and never mutated afterwards.
type AnalysisResult struct {
	MatchScore  int      `json:"match_score"`
	KeySkills   []string `json:"key_skills"`
	Suggestions []string `json:"suggestions"`
}

// TextSpan is a contiguous run of the original text, tagged when it is a matched skill.
type TextSpan struct {
	Content string `json:"content"`
	IsMatch bool   `json:"is_match"`
}

// JoinSpans concatenates span contents, reconstructing the highlighted text.
func JoinSpans(spans []TextSpan) string {
	n := 0
	for _, s := range spans {
		n += len(s.Content)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Content...)
	}
	return string(buf)
}

// SkillCategory is one named group of the skill dictionary.
type SkillCategory struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}
