// Package schemas holds the JSON Schemas for every document the analyzer emits.
package schemas

import "embed"

// Files contains every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Schema file names.
const (
	AnalysisResult = "analysis_result.schema.json"
	Highlight      = "highlight.schema.json"
	Dictionary     = "dictionary.schema.json"
)
