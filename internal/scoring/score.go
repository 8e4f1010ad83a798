// Package scoring compares resume skills against job skills.
package scoring

import (
	"math"
	"strings"
)

// Matches reports whether two skills overlap: either one, lower-cased, contains the other.
// It is a plain substring test with no word boundaries, so "SQL" matches "MySQL".
func Matches(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// matchesAny reports whether skill overlaps any entry of others.
func matchesAny(skill string, others []string) bool {
	for _, o := range others {
		if Matches(skill, o) {
			return true
		}
	}
	return false
}

// MatchingSkills returns the resume skills that overlap at least one job skill, in resume order.
func MatchingSkills(jobSkills, resumeSkills []string) []string {
	out := make([]string, 0, len(resumeSkills))
	for _, s := range resumeSkills {
		if matchesAny(s, jobSkills) {
			out = append(out, s)
		}
	}
	return out
}

// MissingSkills returns the job skills no resume skill overlaps, in job order.
func MissingSkills(jobSkills, resumeSkills []string) []string {
	out := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if !matchesAny(s, resumeSkills) {
			out = append(out, s)
		}
	}
	return out
}

// Score returns the share of job skills covered by matching resume skills as a percentage
// in [0, 100], rounded half up. It is 0 when there are no job skills.
func Score(jobSkills, resumeSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}
	matching := len(MatchingSkills(jobSkills, resumeSkills))
	pct := float64(matching) / float64(len(jobSkills)) * 100
	return min(int(math.Floor(pct+0.5)), 100)
}
