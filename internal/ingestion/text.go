package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	extraBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text extracted from PDF, DOCX or HTML while preserving structure:
// line endings become LF, runs of spaces collapse, bullet and heading lines keep their
// markers, and no more than one blank line separates blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := extraBlanks.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	// Headings and bullets keep their markers; only the spacing inside is normalized.
	if strings.HasPrefix(trimmed, "#") || isBulletLine(trimmed) {
		marker, rest, _ := strings.Cut(trimmed, " ")
		return marker + " " + innerSpace.ReplaceAllString(strings.TrimSpace(rest), " ")
	}

	return innerSpace.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	for _, marker := range []string{"- ", "* ", "• ", "· ", "⁃ "} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
