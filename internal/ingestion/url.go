package ingestion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// URLOptions configures FromURL.
type URLOptions struct {
	// UseBrowser enables headless rendering when the fetched page yields too little text.
	UseBrowser bool
	// Renderer overrides fetch.BrowserRenderer.
	Renderer fetch.Renderer
	// Fetch overrides fetch.DefaultOptions.
	Fetch *fetch.Options
}

// FromURL fetches a job posting and returns its cleaned text.
// Platform detection picks content and noise selectors for known job boards. With
// UseBrowser set, pages shorter than fetch.MinContentLength are re-rendered headlessly;
// a failed render keeps the HTTP content.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (string, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	logger := log.With().Str("url", urlStr).Str("platform", string(platform)).Logger()

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	logger.Debug().Int("bytes", len(result.HTML)).Msg("fetched job posting")

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	logger.Debug().Int("chars", len(text)).Msg("extracted text")

	rendered := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		logger.Debug().Int("min_chars", fetch.MinContentLength).Msg("content too short, rendering in browser")

		render := opts.Renderer
		if render == nil {
			render = fetch.BrowserRenderer
		}
		if browserHTML, renderErr := render(ctx, urlStr); renderErr != nil {
			logger.Warn().Err(renderErr).Msg("browser rendering failed, using HTTP content")
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr != nil {
			logger.Warn().Err(extractErr).Msg("browser content extraction failed, using HTTP content")
		} else if len(strings.TrimSpace(browserText)) > len(strings.TrimSpace(text)) {
			text = browserText
			rendered = true
			logger.Debug().Int("chars", len(text)).Msg("browser extracted text")
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w from %s", ErrEmptyInput, urlStr)
	}

	metadata := NewMetadata(cleaned, urlStr, FormatURL)
	metadata.Platform = string(platform)
	metadata.Rendered = rendered
	return cleaned, metadata, nil
}
