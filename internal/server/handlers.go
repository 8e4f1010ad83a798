package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxBodyBytes bounds request bodies. Two documents at the character limit fit with room
// for JSON escaping.
const maxBodyBytes = 8 << 20

// handleAnalyze scores a resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	result := s.analyzer.Analyze(req.Resume, req.JobDescription)
	level := analyzer.LevelFor(result.MatchScore)

	resp := types.AnalyzeResponse{
		AnalysisID:     uuid.New().String(),
		AnalysisResult: result,
		MatchLevel:     level.Label,
		MatchMessage:   level.Message,
		Summary:        analyzer.Summary(result.MatchScore),
	}

	log := logger.Ctx(r.Context())
	if err := schemas.ValidateAnalysis(resp); err != nil {
		log.Error().Err(err).Msg("analysis failed schema validation")
		s.errorFromErr(w, err)
		return
	}

	log.Debug().
		Str("analysis_id", resp.AnalysisID).
		Int("match_score", resp.MatchScore).
		Int("key_skills", len(resp.KeySkills)).
		Msg("analysis completed")

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHighlight splits text into matched and unmatched spans.
func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var req types.HighlightRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.HighlightResponse{
		Spans: highlight.Highlight(req.Text, req.Skills),
	})
}

// handleSkills lists the skill dictionary.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	dict := s.analyzer.Dictionary()
	s.jsonResponse(w, http.StatusOK, types.SkillsResponse{
		Categories: dict.Categories(),
		Total:      dict.Len(),
	})
}

// validatable is implemented by request bodies.
type validatable interface {
	Validate() error
}

// decode reads a JSON body into req and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, req validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return &ErrBadRequest{Message: "Invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return newValidationError(err)
	}
	return nil
}

// errorFromErr writes err with the status HTTPStatus assigns it. Server-side failures are
// reported without internal detail.
func (s *Server) errorFromErr(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
