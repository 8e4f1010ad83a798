// Package textscan records regular-expression match spans over a string and derives the
// unmatched gaps between them, so callers never depend on split-with-capture behavior.
package textscan

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpaceClass is a regexp character class for the whitespace set recognized by the
// browser-side analyzer (ASCII whitespace plus the Unicode space separators and BOM).
const SpaceClass = `[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`

// Span is a single match: byte offsets into the scanned string and the matched text.
type Span struct {
	Start int
	End   int
	Text  string
}

// Find returns every non-overlapping match of re in text, leftmost first.
func Find(re *regexp.Regexp, text string) []Span {
	if re == nil || text == "" {
		return nil
	}
	locs := re.FindAllStringIndex(text, -1)
	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, Span{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]})
	}
	return spans
}

// Gaps returns the text between spans. The result always has len(spans)+1 entries,
// including empty gaps before, between, and after matches.
func Gaps(text string, spans []Span) []string {
	gaps := make([]string, 0, len(spans)+1)
	prev := 0
	for _, s := range spans {
		gaps = append(gaps, text[prev:s.Start])
		prev = s.End
	}
	return append(gaps, text[prev:])
}

// Split splits text around every match of re.
func Split(re *regexp.Regexp, text string) []string {
	return Gaps(text, Find(re, text))
}

// IsSpace reports whether r belongs to SpaceClass.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// TrimSpace trims SpaceClass characters from both ends of s.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// CountTokens counts the pieces produced by splitting s on runs of whitespace.
// Leading or trailing whitespace yields an empty piece, which is counted; this keeps the
// count identical to a plain split rather than a field count.
func CountTokens(s string) int {
	count := 1
	inSpace := false
	for _, r := range s {
		if IsSpace(r) {
			if !inSpace {
				count++
				inSpace = true
			}
			continue
		}
		inSpace = false
	}
	return count
}

// QuoteFold returns a pattern matching s literally, with each letter also matching the
// runes that share its upper-case form. A non-ASCII rune never folds onto an ASCII letter,
// so the Kelvin sign does not match "k" and the long s does not match "s".
func QuoteFold(s string) string {
	var sb strings.Builder
	for _, r := range s {
		set := foldSet(r)
		if len(set) == 1 {
			sb.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		sb.WriteByte('[')
		for _, f := range set {
			sb.WriteRune(f)
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// foldSet returns r followed by the other members of its case-folding orbit that share
// its canonical form.
func foldSet(r rune) []rune {
	set := []rune{r}
	want := canonical(r)
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if canonical(f) == want {
			set = append(set, f)
		}
	}
	return set
}

func canonical(r rune) rune {
	u := unicode.ToUpper(r)
	if r >= utf8.RuneSelf && u < utf8.RuneSelf {
		return r
	}
	return u
}
