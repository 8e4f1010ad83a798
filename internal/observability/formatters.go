// Package observability provides formatted terminal output for analysis results.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the number of cells in the score bar
	barWidth = 40
)

const (
	ansiHighlight = "\x1b[1;32m"
	ansiReset     = "\x1b[0m"
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithColor enables ANSI highlighting of matched skills.
func (p *Printer) WithColor(enabled bool) *Printer {
	p.color = enabled
	return p
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// wrap breaks s into lines of at most width runes on spaces. The first line starts with
// prefix and continuation lines are indented to line up with it.
func wrap(s string, width int, prefix string) []string {
	indent := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	var lines []string
	line, empty := prefix, true
	for _, word := range strings.Fields(s) {
		if !empty && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line)
			line = indent
		}
		line += " " + word
		empty = false
	}
	return append(lines, line)
}

// scoreBar renders score (0-100) as a fixed-width bar.
func scoreBar(score int) string {
	filled := max(0, min(score, 100)) * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// PrintAnalysis outputs the score, key skills and suggestions of an analysis.
func (p *Printer) PrintAnalysis(result types.AnalysisResult) {
	level := analyzer.LevelFor(result.MatchScore)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d%%  %s\n", result.MatchScore, level.Label))
	sb.WriteString(scoreBar(result.MatchScore) + "\n")
	sb.WriteString(level.Message)
	p.printBox("MATCH SCORE", sb.String())

	sb.Reset()
	if len(result.KeySkills) == 0 {
		sb.WriteString("No key skills detected.")
	}
	for i, s := range result.KeySkills {
		sb.WriteString("• " + s)
		if i < len(result.KeySkills)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("KEY SKILLS (%d)", len(result.KeySkills)), sb.String())

	var lines []string
	for i, s := range result.Suggestions {
		lines = append(lines, wrap(s, boxWidth-4, fmt.Sprintf("%d.", i+1))...)
	}
	p.printBox("SUGGESTIONS", strings.Join(lines, "\n"))
}

// PrintSkillGap outputs which job skills the resume covers and which it misses.
func (p *Printer) PrintSkillGap(report analyzer.Report) {
	if len(report.JobSkills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job skills: %d  matched: %d  missing: %d\n\n",
		len(report.JobSkills), len(report.MatchingSkills), len(report.MissingSkills)))

	if len(report.MatchingSkills) > 0 {
		sb.WriteString("Matched:\n")
		for _, s := range report.MatchingSkills {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}

	if len(report.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(report.MissingSkills), maxItemsToShow)
		for _, s := range report.MissingSkills[:count] {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", s))
		}
		if len(report.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetadata outputs where a document came from and how large it is.
func (p *Printer) PrintMetadata(label string, meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("Format:   %s\n", meta.Format))
	if meta.Platform != "" {
		sb.WriteString(fmt.Sprintf("Platform: %s\n", meta.Platform))
	}
	if meta.Rendered {
		sb.WriteString("Rendered: headless browser\n")
	}
	sb.WriteString(fmt.Sprintf("Size:     %d chars, %d words\n", meta.Chars, meta.Words))
	sb.WriteString(fmt.Sprintf("SHA256:   %s", meta.Hash))

	p.printBox(strings.ToUpper(label), sb.String())
}

// PrintHighlighted outputs text with matched spans marked, either with ANSI color or
// with square brackets.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHighlighted(title string, spans []types.TextSpan) {
	fmt.Fprintf(p.out, "── %s %s\n", title, strings.Repeat("─", max(0, boxWidth-4-utf8.RuneCountInString(title))))

	var sb strings.Builder
	for _, s := range spans {
		switch {
		case !s.IsMatch:
			sb.WriteString(s.Content)
		case p.color:
			sb.WriteString(ansiHighlight + s.Content + ansiReset)
		default:
			sb.WriteString("[" + s.Content + "]")
		}
	}
	fmt.Fprintln(p.out, strings.TrimRight(sb.String(), "\n"))
	fmt.Fprintln(p.out)
}

// PrintSkills outputs the skill dictionary grouped by category.
func (p *Printer) PrintSkills(categories []types.SkillCategory) {
	var sb strings.Builder
	total := 0
	for i, c := range categories {
		total += len(c.Skills)
		sb.WriteString(fmt.Sprintf("%s (%d)\n", strings.ToUpper(c.Name), len(c.Skills)))
		for _, line := range wrap(strings.Join(c.Skills, ", "), boxWidth-4, "") {
			sb.WriteString(line + "\n")
		}
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("SKILL DICTIONARY (%d)", total), strings.TrimSuffix(sb.String(), "\n"))
}
