package skills

import (
	"regexp"
	"unicode/utf16"

	"github.com/jonathan/resume-analyzer/internal/textscan"
)

const (
	// MaxSkills caps the extracted list.
	MaxSkills = 20
	// maxBulletSkills caps how many bullet segments are considered.
	maxBulletSkills = 15
	// maxBulletChars excludes bullet segments that read like sentences rather than skills.
	// Length is measured in UTF-16 code units.
	maxBulletChars = 50
)

// bulletPattern matches a bullet marker followed by whitespace.
var bulletPattern = regexp.MustCompile(`[•·⁃-]` + textscan.SpaceClass + `+`)

// Extractor finds skill phrases in free text using a Dictionary.
type Extractor struct {
	dict *Dictionary
}

// NewExtractor creates an Extractor. A nil dictionary selects Default().
func NewExtractor(dict *Dictionary) *Extractor {
	if dict == nil {
		dict = Default()
	}
	return &Extractor{dict: dict}
}

// Dictionary returns the dictionary the extractor matches against.
func (e *Extractor) Dictionary() *Dictionary {
	return e.dict
}

// Extract returns dictionary matches (in dictionary order) followed by short bullet-point
// phrases, with exact duplicates removed and the list capped at MaxSkills.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	combined := append(e.dictionaryMatches(text), bulletSkills(text)...)
	return dedupe(combined, MaxSkills)
}

// Extract runs the default extractor.
func Extract(text string) []string {
	return NewExtractor(nil).Extract(text)
}

func (e *Extractor) dictionaryMatches(text string) []string {
	found := make([]string, 0)
	for _, p := range e.dict.phrases {
		if p.pattern.MatchString(text) {
			found = append(found, p.name)
		}
	}
	return found
}

// bulletSkills returns the trimmed text after each bullet marker. Text before the
// first marker is preamble and never a skill.
func bulletSkills(text string) []string {
	segments := textscan.Split(bulletPattern, text)[1:]

	out := make([]string, 0, maxBulletSkills)
	for _, seg := range segments {
		seg = textscan.TrimSpace(seg)
		n := utf16Len(seg)
		if n == 0 || n >= maxBulletChars {
			continue
		}
		out = append(out, seg)
		if len(out) == maxBulletSkills {
			break
		}
	}
	return out
}

// utf16Len returns the number of UTF-16 code units needed to encode s. Characters outside
// the Basic Multilingual Plane, such as most emoji, count as two.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// dedupe keeps the first occurrence of each exact string, up to limit entries.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}
