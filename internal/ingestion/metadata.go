package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/textscan"
)

// Metadata describes one ingested document.
type Metadata struct {
	Source    string `json:"source"`             // File path or URL
	Format    string `json:"format"`             // text, pdf, docx, html or url
	Platform  string `json:"platform,omitempty"` // Detected job board platform (URLs only)
	Hash      string `json:"hash"`               // SHA256 hex digest of the extracted text
	Chars     int    `json:"chars"`
	Words     int    `json:"words"`     // Whitespace-delimited tokens, as counted for suggestions
	Timestamp string `json:"timestamp"` // RFC3339 format
	Rendered  bool   `json:"rendered,omitempty"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, source string, format Format) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    string(format),
		Hash:      computeHash(content),
		Chars:     utf8.RuneCountInString(content),
		Words:     textscan.CountTokens(content),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
