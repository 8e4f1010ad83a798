package suggestions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordsResume builds a resume of exactly n whitespace-separated words that passes every
// content rule (action verb, metrics, sections).
func wordsResume(n int) string {
	base := []string{"Experience", "Led", "team", "grew", "revenue", "15%"}
	words := make([]string, 0, n)
	words = append(words, base...)
	for len(words) < n {
		words = append(words, "word")
	}
	return strings.Join(words[:n], " ")
}

func fixedPicker(i int) Picker {
	return PickerFunc(func(int) int { return i })
}

func TestGenerate_LengthThresholds(t *testing.T) {
	g := NewGenerator(fixedPicker(0))
	tests := []struct {
		name      string
		words     int
		wantBrief bool
		wantLong  bool
	}{
		{"299 words is brief", 299, true, false},
		{"300 words is fine", 300, false, false},
		{"700 words is fine", 700, false, false},
		{"701 words is long", 701, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Generate(wordsResume(tt.words), "", nil, nil)
			assert.Equal(t, tt.wantBrief, contains(got, MsgBrief))
			assert.Equal(t, tt.wantLong, contains(got, MsgLong))
		})
	}
}

func TestGenerate_ActionVerbSuppressedByLed(t *testing.T) {
	got := NewGenerator(nil).Generate("Led the team to ship a new platform", "", nil, nil)
	assert.NotContains(t, got, MsgActionVerbs)
}

func TestGenerate_ActionVerbIsCaseSensitive(t *testing.T) {
	got := NewGenerator(nil).Generate("led the team", "", nil, nil)
	assert.Contains(t, got, MsgActionVerbs)
}

func TestGenerate_MetricsSuppressedByPercentage(t *testing.T) {
	got := NewGenerator(nil).Generate("increased conversion by 15%", "", nil, nil)
	assert.NotContains(t, got, MsgMetrics)
}

func TestHasMetrics(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"increased conversion by 15%", true},
		{"saved $200 per month", true},
		{"served 5000 users daily", true},
		{"managed 12 people", true},
		{"supported 40 clients", true},
		{"won 3 customers", true},
		{"managed 12 People", false},
		{"a dozen users", false},
		{"no numbers here", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMetrics(tt.text))
		})
	}
}

func TestHasSections(t *testing.T) {
	assert.True(t, HasSections("EDUCATION\nBSc"))
	assert.True(t, HasSections("work experience"))
	assert.True(t, HasSections("Side Projects"))
	assert.False(t, HasSections("nothing relevant"))
	assert.False(t, HasSections("\u017Fkills"))
	assert.False(t, HasSections("S\u212Aills"))
}

func TestGenerate_MissingSkills(t *testing.T) {
	g := NewGenerator(nil)

	got := g.Generate("", "", []string{"AWS", "React"}, []string{"react"})
	require.NotEmpty(t, got)
	assert.Equal(t, "Highlight these key skills: AWS", got[0])
}

func TestGenerate_MissingSkillsAndOthers(t *testing.T) {
	job := []string{"A1", "B2", "C3", "D4", "E5", "F6", "G7"}
	got := NewGenerator(nil).Generate("", "", job, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "Highlight these key skills: A1, B2, C3, D4, E5, and others", got[0])
}

func TestGenerate_ExactlyFiveMissingHasNoSuffix(t *testing.T) {
	job := []string{"A1", "B2", "C3", "D4", "E5"}
	got := NewGenerator(nil).Generate("", "", job, nil)

	assert.Equal(t, "Highlight these key skills: A1, B2, C3, D4, E5", got[0])
}

func TestGenerate_RuleOrder(t *testing.T) {
	got := NewGenerator(nil).Generate("short", "", []string{"Go"}, nil)

	assert.Equal(t, []string{
		"Highlight these key skills: Go",
		MsgBrief,
		MsgActionVerbs,
		MsgMetrics,
		MsgSections,
	}, got)
}

func TestGenerate_FallbackUsesPicker(t *testing.T) {
	resume := wordsResume(400)
	for i, tip := range BonusTips {
		got := NewGenerator(fixedPicker(i)).Generate(resume, "", []string{"Go"}, []string{"Go"})
		assert.Equal(t, []string{MsgWellAligned, tip}, got)
	}
}

func TestGenerate_FallbackOutOfRangePicker(t *testing.T) {
	got := NewGenerator(fixedPicker(99)).Generate(wordsResume(400), "", nil, nil)
	assert.Equal(t, []string{MsgWellAligned, BonusTips[0]}, got)
}

func TestGenerate_FallbackRandomDrawIsFromPool(t *testing.T) {
	got := NewGenerator(nil).Generate(wordsResume(400), "", nil, nil)

	require.Len(t, got, 2)
	assert.Equal(t, MsgWellAligned, got[0])
	assert.Contains(t, BonusTips, got[1])
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
