// Package ingestion turns resume and job description sources (files and URLs) into plain text.
package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// Format identifies how a document is decoded.
type Format string

const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatURL  Format = "url"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrEmptyInput is returned when a source yields no text at all.
	ErrEmptyInput = errors.New("no text could be extracted")
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".md", ".text":
		return FormatText, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadDocument reads a resume or job description from disk.
// Plain text is returned unchanged; PDF, DOCX and HTML are converted to text and cleaned.
func ReadDocument(path string) (string, *Metadata, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text, err := Decode(data, format)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return text, NewMetadata(text, path, format), nil
}

// Decode converts raw document bytes of the given format to text.
func Decode(data []byte, format Format) (string, error) {
	switch format {
	case FormatText:
		return string(data), nil
	case FormatPDF:
		text, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case FormatDOCX:
		text, err := extractDocxText(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	case FormatHTML:
		text, err := fetch.ExtractMainText(string(data), fetch.DefaultTextSelectors())
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns the document.xml body; keep paragraph breaks and drop the markup.
	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllStringFunc(content, func(m string) string {
		if m == "<w:tab/>" {
			return "\t"
		}
		return "\n"
	})
	return html.UnescapeString(xmlTag.ReplaceAllString(content, "")), nil
}
