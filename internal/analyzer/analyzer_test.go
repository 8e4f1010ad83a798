package analyzer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggestions"
)

func firstTip() suggestions.Picker {
	return suggestions.PickerFunc(func(int) int { return 0 })
}

func TestAnalyze_EndToEnd(t *testing.T) {
	a := New(nil, firstTip())

	result := a.Analyze("React, TypeScript, Communication", "React, TypeScript, AWS")

	assert.Equal(t, 67, result.MatchScore)
	assert.Equal(t, []string{"TypeScript", "React", "Communication"}, result.KeySkills)
	assert.Equal(t, []string{
		"Highlight these key skills: AWS",
		suggestions.MsgBrief,
		suggestions.MsgActionVerbs,
		suggestions.MsgMetrics,
		suggestions.MsgSections,
	}, result.Suggestions)
}

func TestInspect_ReportsSkillLists(t *testing.T) {
	report := Default().Inspect("React, TypeScript, Communication", "React, TypeScript, AWS")

	assert.Equal(t, []string{"TypeScript", "React", "AWS"}, report.JobSkills)
	assert.Equal(t, []string{"TypeScript", "React"}, report.MatchingSkills)
	assert.Equal(t, []string{"AWS"}, report.MissingSkills)
	assert.Equal(t, 67, report.MatchScore)
}

func TestAnalyze_BlankInput(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		job    string
	}{
		{"empty resume", "", "React developer"},
		{"empty job", "React developer", ""},
		{"both empty", "", ""},
		{"whitespace resume", " \n\t ", "React developer"},
		{"non-breaking space job", "React developer", "\u00a0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.resume, tt.job)

			assert.Equal(t, 0, result.MatchScore)
			require.NotNil(t, result.KeySkills)
			assert.Empty(t, result.KeySkills)
			assert.Equal(t, []string{MsgMissingInput}, result.Suggestions)
		})
	}
}

func TestAnalyze_NoJobSkillsScoresZero(t *testing.T) {
	result := Analyze("React developer", "We are hiring someone great")

	assert.Equal(t, 0, result.MatchScore)
	assert.Equal(t, []string{"React"}, result.KeySkills)
	assert.NotEmpty(t, result.Suggestions)
}

func TestAnalyze_CustomDictionary(t *testing.T) {
	dict, err := skills.ParseDictionary([]byte("categories:\n  - name: infra\n    skills: [Terraform, Ansible]\n"))
	require.NoError(t, err)

	result := New(dict, firstTip()).Analyze("Terraform and Ansible", "Terraform")

	assert.Equal(t, 100, result.MatchScore)
	assert.Equal(t, []string{"Terraform", "Ansible"}, result.KeySkills)
	assert.Same(t, dict, New(dict, nil).Dictionary())
}

func TestAnalyze_SampleDocuments(t *testing.T) {
	result := New(nil, firstTip()).Analyze(SampleResume, SampleJob)

	assert.Greater(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 100)
	assert.Len(t, result.KeySkills, skills.MaxSkills)
	assert.Equal(t, "JavaScript", result.KeySkills[0])
	assert.Contains(t, result.KeySkills, "React")
	assert.NotContains(t, result.Suggestions, suggestions.MsgActionVerbs)
	assert.NotContains(t, result.Suggestions, suggestions.MsgMetrics)
	assert.NotContains(t, result.Suggestions, suggestions.MsgSections)
}

func TestAnalyze_ConcurrentUse(t *testing.T) {
	a := Default()
	want := a.Analyze("React, TypeScript, Communication", "React, TypeScript, AWS").MatchScore

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := a.Analyze("React, TypeScript, Communication", "React, TypeScript, AWS")
			assert.Equal(t, want, got.MatchScore)
		}()
	}
	wg.Wait()
}
