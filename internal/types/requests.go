package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxDocumentChars bounds a single resume or job description accepted over the API.
const MaxDocumentChars = 100000

// AnalyzeRequest is the body of POST /analyze.
// Blank documents are accepted; the analyzer answers them with its own sentinel result.
type AnalyzeRequest struct {
	Resume         string `json:"resume" validate:"max=100000"`
	JobDescription string `json:"job_description" validate:"max=100000"`
}

// AnalyzeResponse wraps an AnalysisResult with presentation fields.
type AnalyzeResponse struct {
	AnalysisID string `json:"analysis_id"`
	AnalysisResult
	MatchLevel   string `json:"match_level"`
	MatchMessage string `json:"match_message"`
	Summary      string `json:"summary"`
}

// HighlightRequest is the body of POST /highlight.
type HighlightRequest struct {
	Text   string   `json:"text" validate:"max=100000"`
	Skills []string `json:"skills" validate:"max=200,dive,max=200"`
}

// HighlightResponse carries the spans of a highlighted document.
type HighlightResponse struct {
	Spans []TextSpan `json:"spans"`
}

// SkillsResponse lists the skill dictionary by category.
type SkillsResponse struct {
	Categories []SkillCategory `json:"categories"`
	Total      int             `json:"total"`
}

// validate reports fields by their JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the HighlightRequest using the validator.
func (r *HighlightRequest) Validate() error {
	return validate.Struct(r)
}
