package textscan

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_RecordsSpans(t *testing.T) {
	re := regexp.MustCompile(`(?i)\bgo\b`)
	spans := Find(re, "Go and go, not gopher")

	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 2, Text: "Go"}, spans[0])
	assert.Equal(t, Span{Start: 7, End: 9, Text: "go"}, spans[1])
}

func TestFind_EmptyInputs(t *testing.T) {
	assert.Empty(t, Find(regexp.MustCompile(`x`), ""))
	assert.Empty(t, Find(nil, "text"))
}

func TestGaps_IncludesEmptyGaps(t *testing.T) {
	re := regexp.MustCompile(`ab`)
	text := "ababxab"
	gaps := Gaps(text, Find(re, text))

	assert.Equal(t, []string{"", "", "x", ""}, gaps)
}

func TestGaps_NoMatches(t *testing.T) {
	assert.Equal(t, []string{"plain"}, Gaps("plain", nil))
}

func TestGapsAndSpans_Reconstruct(t *testing.T) {
	re := regexp.MustCompile(`[•·⁃-]` + SpaceClass + `+`)
	text := "Intro\n• Go\n- Docker\n· SQL"
	spans := Find(re, text)
	gaps := Gaps(text, spans)

	var sb strings.Builder
	for i, g := range gaps {
		sb.WriteString(g)
		if i < len(spans) {
			sb.WriteString(spans[i].Text)
		}
	}
	assert.Equal(t, text, sb.String())
	assert.Equal(t, []string{"Intro\n", "Go\n", "Docker\n", "SQL"}, gaps)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split(regexp.MustCompile(`,`), "a,b,c"))
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\u00A0', '\u2003', '\u3000', '\uFEFF'} {
		assert.True(t, IsSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '-', '•', '\u0085'} {
		assert.False(t, IsSpace(r), "%U", r)
	}
}

func TestTrimSpace(t *testing.T) {
	assert.Equal(t, "Go", TrimSpace("  Go \n"))
}

func TestCountTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"single word", "resume", 1},
		{"two words", "hello world", 2},
		{"collapsed runs", "hello  \n\t world", 2},
		{"leading whitespace counts an empty piece", "  hello", 2},
		{"trailing whitespace counts an empty piece", "hello ", 2},
		{"empty string", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountTokens(tt.in))
		})
	}
}

func TestQuoteFold(t *testing.T) {
	assert.Equal(t, `[Gg][oO]`, QuoteFold("Go"))
	assert.Equal(t, `[Cc]\+\+`, QuoteFold("C++"))
	assert.Equal(t, `[Nn][oO][dD][eE]\.[jJ][sS]`, QuoteFold("Node.js"))
}

func TestQuoteFold_Matching(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		text   string
		want   bool
	}{
		{"upper case", "Kubernetes", "KUBERNETES", true},
		{"lower case", "Kubernetes", "kubernetes", true},
		{"kelvin sign is not k", "Kubernetes", "\u212Aubernetes", false},
		{"long s is not s", "skills", "\u017Fkills", false},
		{"dotless i is not i", "Git", "G\u0131t", false},
		{"non-ASCII letters fold", "\u00e9cole", "\u00c9COLE", true},
		{"metacharacters are literal", "C++", "Cxx", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(`^` + QuoteFold(tt.phrase) + `$`)
			assert.Equal(t, tt.want, re.MatchString(tt.text))
		})
	}
}
