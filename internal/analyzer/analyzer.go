// Package analyzer compares a resume with a job description: it extracts skills from both,
// scores their overlap and generates improvement suggestions.
package analyzer

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/textscan"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MsgMissingInput is the only suggestion returned when either input is blank.
const MsgMissingInput = "Please provide both resume and job description"

// Analyzer runs the extract, score and suggest steps. It holds no per-call state and is
// safe for concurrent use.
type Analyzer struct {
	extractor *skills.Extractor
	generator *suggestions.Generator
}

// New creates an Analyzer. A nil dictionary selects the embedded one and a nil picker
// selects a random bonus tip.
func New(dict *skills.Dictionary, picker suggestions.Picker) *Analyzer {
	return &Analyzer{
		extractor: skills.NewExtractor(dict),
		generator: suggestions.NewGenerator(picker),
	}
}

// Default returns an Analyzer over the embedded dictionary.
func Default() *Analyzer {
	return New(nil, nil)
}

// Dictionary returns the dictionary used for extraction.
func (a *Analyzer) Dictionary() *skills.Dictionary {
	return a.extractor.Dictionary()
}

// Report is an AnalysisResult together with the intermediate skill lists.
type Report struct {
	types.AnalysisResult
	JobSkills      []string `json:"job_skills"`
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

// Analyze compares resume with jobDescription. KeySkills holds the skills found in the
// resume.
func (a *Analyzer) Analyze(resume, jobDescription string) types.AnalysisResult {
	return a.Inspect(resume, jobDescription).AnalysisResult
}

// Inspect is Analyze that also reports the job skills and how they relate to the resume.
func (a *Analyzer) Inspect(resume, jobDescription string) Report {
	if isBlank(resume) || isBlank(jobDescription) {
		return Report{
			AnalysisResult: types.AnalysisResult{
				MatchScore:  0,
				KeySkills:   []string{},
				Suggestions: []string{MsgMissingInput},
			},
			JobSkills:      []string{},
			MatchingSkills: []string{},
			MissingSkills:  []string{},
		}
	}

	jobSkills := a.extractor.Extract(jobDescription)
	resumeSkills := a.extractor.Extract(resume)

	return Report{
		AnalysisResult: types.AnalysisResult{
			MatchScore:  scoring.Score(jobSkills, resumeSkills),
			KeySkills:   resumeSkills,
			Suggestions: a.generator.Generate(resume, jobDescription, jobSkills, resumeSkills),
		},
		JobSkills:      jobSkills,
		MatchingSkills: scoring.MatchingSkills(jobSkills, resumeSkills),
		MissingSkills:  scoring.MissingSkills(jobSkills, resumeSkills),
	}
}

// Analyze runs the default analyzer.
func Analyze(resume, jobDescription string) types.AnalysisResult {
	return Default().Analyze(resume, jobDescription)
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, textscan.IsSpace) == ""
}
