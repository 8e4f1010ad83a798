// Package suggestions produces improvement tips for a resume measured against a job description.
package suggestions

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/textscan"
)

const (
	// MinWords and MaxWords bound a resume of reasonable length.
	MinWords = 300
	MaxWords = 700

	// maxMissingListed is how many missing skills are named before "and others".
	maxMissingListed = 5
)

// Suggestion texts.
const (
	MsgBrief       = "Your resume seems brief. Consider adding more details about your experience."
	MsgLong        = "Your resume is quite long. Consider making it more concise for better readability."
	MsgActionVerbs = "Use strong action verbs at the beginning of your achievement statements."
	MsgMetrics     = "Add specific numbers and metrics to quantify your achievements."
	MsgSections    = "Ensure your resume includes standard sections (Education, Experience, Skills) for ATS compatibility."
	MsgWellAligned = "Your resume is well-aligned with the job description."

	missingSkillsPrefix = "Highlight these key skills: "
)

// BonusTips is the pool the fallback tip is drawn from.
var BonusTips = []string{
	"Consider customizing your summary to specifically address the job requirements.",
	"Tailor your cover letter to complement your resume and address specific job requirements.",
	"Research the company culture to further refine your application materials.",
}

// ActionVerbs are matched as literal, case-sensitive substrings.
var ActionVerbs = []string{"Led", "Managed", "Created", "Developed", "Implemented", "Achieved", "Improved"}

var (
	metricsPattern  = regexp.MustCompile(`\d+%|\$\d+|\d+ (?:people|users|customers|clients)`)
	sectionsPattern = regexp.MustCompile(strings.Join([]string{
		textscan.QuoteFold("education"),
		textscan.QuoteFold("experience"),
		textscan.QuoteFold("skills"),
		textscan.QuoteFold("projects"),
	}, "|"))
)

// Picker chooses an index in [0, n). It is the only source of non-determinism in
// suggestion generation.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// Pick calls f(n).
func (f PickerFunc) Pick(n int) int { return f(n) }

// RandomPicker picks uniformly at random.
var RandomPicker Picker = PickerFunc(rand.IntN)

// Generator produces suggestions.
type Generator struct {
	picker Picker
}

// NewGenerator creates a Generator. A nil picker selects RandomPicker.
func NewGenerator(picker Picker) *Generator {
	if picker == nil {
		picker = RandomPicker
	}
	return &Generator{picker: picker}
}

// Generate evaluates each rule in order and returns at least one suggestion.
// jobDescription is accepted for symmetry with the analysis inputs; no rule reads it.
func (g *Generator) Generate(resume, jobDescription string, jobSkills, resumeSkills []string) []string {
	out := make([]string, 0, 6)

	if missing := scoring.MissingSkills(jobSkills, resumeSkills); len(missing) > 0 {
		out = append(out, missingSkillsMessage(missing))
	}

	switch words := textscan.CountTokens(resume); {
	case words < MinWords:
		out = append(out, MsgBrief)
	case words > MaxWords:
		out = append(out, MsgLong)
	}

	if !HasActionVerb(resume) {
		out = append(out, MsgActionVerbs)
	}

	if !HasMetrics(resume) {
		out = append(out, MsgMetrics)
	}

	if !HasSections(resume) {
		out = append(out, MsgSections)
	}

	if len(out) == 0 {
		out = append(out, MsgWellAligned, BonusTips[g.pick(len(BonusTips))])
	}
	return out
}

// pick guards against pickers returning out-of-range indexes.
func (g *Generator) pick(n int) int {
	i := g.picker.Pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

func missingSkillsMessage(missing []string) string {
	listed := missing[:min(len(missing), maxMissingListed)]
	msg := missingSkillsPrefix + strings.Join(listed, ", ")
	if len(missing) > maxMissingListed {
		msg += ", and others"
	}
	return msg
}

// HasActionVerb reports whether any of ActionVerbs appears in text.
func HasActionVerb(text string) bool {
	for _, v := range ActionVerbs {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}

// HasMetrics reports whether text quantifies anything: a percentage, a dollar amount,
// or a count of people, users, customers or clients.
func HasMetrics(text string) bool {
	return metricsPattern.MatchString(text)
}

// HasSections reports whether text names a standard resume section.
func HasSections(text string) bool {
	return sectionsPattern.MatchString(text)
}
