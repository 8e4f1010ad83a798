package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, rl *ratelimit.Config) *Server {
	t.Helper()
	if rl == nil {
		rl = &ratelimit.Config{Enabled: false}
	}
	s := New(Config{
		RateLimit: rl,
		Analyzer:  analyzer.New(nil, suggestions.PickerFunc(func(int) int { return 0 })),
	})
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, w))
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/analyze",
		`{"resume":"React, TypeScript, Communication","job_description":"React, TypeScript, AWS"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[types.AnalyzeResponse](t, w)
	assert.NotEmpty(t, resp.AnalysisID)
	assert.Equal(t, 67, resp.MatchScore)
	assert.Equal(t, []string{"TypeScript", "React", "Communication"}, resp.KeySkills)
	assert.Equal(t, "Highlight these key skills: AWS", resp.Suggestions[0])
	assert.Equal(t, "Good Match", resp.MatchLevel)
	assert.Equal(t, "Your resume needs some adjustments.", resp.MatchMessage)
	assert.Equal(t, "Match score: 67%. We've identified some improvements.", resp.Summary)
}

func TestAnalyzeEndpoint_LogsCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { logger.Init(logger.Config{Level: "error", Output: io.Discard}) })

	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"resume":"Go","job_description":"Go"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", "req-abc")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	messages := map[string]map[string]any{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		messages[entry["message"].(string)] = entry
	}

	require.Contains(t, messages, "analysis completed")
	require.Contains(t, messages, "request completed")
	assert.Equal(t, "req-abc", messages["analysis completed"]["request_id"])
	assert.Equal(t, "req-abc", messages["request completed"]["request_id"])
	assert.NotEmpty(t, messages["analysis completed"]["analysis_id"])
}

func TestAnalyzeEndpoint_UniqueIDs(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"resume":"Go","job_description":"Go"}`

	first := decodeBody[types.AnalyzeResponse](t, doRequest(s, http.MethodPost, "/analyze", body))
	second := decodeBody[types.AnalyzeResponse](t, doRequest(s, http.MethodPost, "/analyze", body))

	assert.NotEqual(t, first.AnalysisID, second.AnalysisID)
}

func TestAnalyzeEndpoint_BlankInputIsNotAnError(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/analyze", `{"resume":"   ","job_description":"React"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[types.AnalyzeResponse](t, w)
	assert.Equal(t, 0, resp.MatchScore)
	assert.Empty(t, resp.KeySkills)
	assert.Equal(t, []string{analyzer.MsgMissingInput}, resp.Suggestions)
	assert.Equal(t, "No Match", resp.MatchLevel)

	// key_skills is an empty array, not null.
	assert.Contains(t, w.Body.String(), `"key_skills":[]`)
}

func TestAnalyzeEndpoint_BadRequests(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed JSON",
			body:       `{"resume":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "unknown field",
			body:       `{"resume":"Go","job":"Go"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "oversized resume",
			body:       `{"resume":"` + strings.Repeat("a", types.MaxDocumentChars+1) + `","job_description":"Go"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "validation error: resume - must be at most 100000 characters",
		},
		{
			name:       "body too large",
			body:       `{"resume":"` + strings.Repeat("a", maxBodyBytes) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  "too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(s, http.MethodPost, "/analyze", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, decodeBody[map[string]string](t, w)["error"], tt.wantError)
		})
	}
}

func TestHighlightEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/highlight", `{"text":"I know react and Go.","skills":["React","Go"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeBody[types.HighlightResponse](t, w)
	assert.Equal(t, []types.TextSpan{
		{Content: "I know "},
		{Content: "react", IsMatch: true},
		{Content: " and "},
		{Content: "Go", IsMatch: true},
		{Content: "."},
	}, resp.Spans)
	assert.Equal(t, "I know react and Go.", types.JoinSpans(resp.Spans))
}

func TestHighlightEndpoint_EmptyText(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodPost, "/highlight", `{"text":"","skills":["Go"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"spans":[]`)
}

func TestSkillsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/skills", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[types.SkillsResponse](t, w)
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, []string{"technical", "soft", "business"},
		[]string{resp.Categories[0].Name, resp.Categories[1].Name, resp.Categories[2].Name})
	assert.Equal(t, skills.Default().Len(), resp.Total)
}

func TestSkillsEndpoint_CustomDictionary(t *testing.T) {
	dict, err := skills.ParseDictionary([]byte("categories:\n  - name: infra\n    skills: [Terraform]\n"))
	require.NoError(t, err)

	s := New(Config{RateLimit: &ratelimit.Config{}, Analyzer: analyzer.New(dict, nil)})
	defer s.rateLimiter.Stop()

	resp := decodeBody[types.SkillsResponse](t, doRequest(s, http.MethodGet, "/skills", ""))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, []string{"Terraform"}, resp.Categories[0].Skills)
}

func TestRouting_NotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", decodeBody[map[string]string](t, w)["error"])

	w = doRequest(s, http.MethodGet, "/analyze", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORS(t *testing.T) {
	s := New(Config{
		AllowedOrigins: []string{"https://app.example.com"},
		RateLimit:      &ratelimit.Config{},
	})
	defer s.rateLimiter.Stop()

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, &ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/analyze", Method: http.MethodPost, Limit: 2, Window: time.Minute},
		},
	})
	body := `{"resume":"Go","job_description":"Go"}`

	for i := 0; i < 2; i++ {
		w := doRequest(s, http.MethodPost, "/analyze", body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := doRequest(s, http.MethodPost, "/analyze", body)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", w.Header().Get("Retry-After"))

	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, "rate_limit_exceeded", resp["error"])
	assert.EqualValues(t, 30, resp["retry_after"])

	// Other endpoints and health checks are unaffected.
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/skills", "").Code)
	health := doRequest(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Empty(t, health.Header().Get("X-RateLimit-Limit"))
}

func TestRecoverer(t *testing.T) {
	s := newTestServer(t, nil)
	s.analyzer = nil

	w := doRequest(s, http.MethodGet, "/skills", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", s.extractClientID(req))

	req.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", s.extractClientID(req))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s := New(Config{Port: port, RateLimit: &ratelimit.Config{}, ShutdownTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
