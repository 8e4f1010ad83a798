package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

type analyzeOptions struct {
	*rootOptions

	resume     string
	job        string
	jobURL     string
	format     string
	dictionary string
	useBrowser bool
	verbose    bool
	highlight  bool
	example    bool
	noColor    bool
}

// analyzeOutput is the JSON document printed by analyze --format json.
type analyzeOutput struct {
	analyzer.Report
	MatchLevel   string `json:"match_level"`
	MatchMessage string `json:"match_message"`
	Summary      string `json:"summary"`

	// Inputs is set with --verbose.
	Inputs *analyzeInputs `json:"inputs,omitempty"`
}

// analyzeInputs holds the metadata of both inputs as emitted by Metadata.ToJSON.
type analyzeInputs struct {
	Resume json.RawMessage `json:"resume"`
	Job    json.RawMessage `json:"job"`
}

// document is one loaded input with where it came from.
type document struct {
	text string
	meta *ingestion.Metadata
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description",
		Long: `Extract skills from a resume and a job description, compute a match score and print
improvement suggestions.

The resume may be plain text, Markdown, PDF, DOCX or HTML. The job description is read from
--job or fetched from --job-url. Use --example to run against the bundled sample documents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.resume, "resume", "r", "", "Path to resume file")
	f.StringVarP(&opts.job, "job", "j", "", "Path to job description file")
	f.StringVarP(&opts.jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	f.StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	f.StringVar(&opts.dictionary, "dictionary", "", "Path to an alternate skill dictionary (YAML)")
	f.BoolVar(&opts.useBrowser, "browser", false, "Render job pages in a headless browser when the fetched text is too short")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print input details and the skill gap")
	f.BoolVar(&opts.highlight, "highlight", false, "Print both documents with key skills highlighted")
	f.BoolVar(&opts.example, "example", false, "Analyze the bundled sample resume and job description")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored highlighting")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions) error {
	cfg := &opts.cfg
	flags := cmd.Flags()
	if flags.Changed("resume") {
		cfg.Resume = opts.resume
	}
	if flags.Changed("job") {
		cfg.Job = opts.job
		if !flags.Changed("job-url") {
			cfg.JobURL = ""
		}
	}
	if flags.Changed("job-url") {
		cfg.JobURL = opts.jobURL
		if !flags.Changed("job") {
			cfg.Job = ""
		}
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("dictionary") {
		cfg.Dictionary = opts.dictionary
	}
	if flags.Changed("browser") {
		cfg.UseBrowser = opts.useBrowser
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if !opts.example {
		if cfg.Resume == "" {
			return fmt.Errorf("--resume must be provided")
		}
		if cfg.Job == "" && cfg.JobURL == "" {
			return fmt.Errorf("either --job or --job-url must be provided")
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dict, err := opts.loadDictionary()
	if err != nil {
		return err
	}

	var resume, job document
	if opts.example {
		resume = exampleDocument("example:resume", analyzer.SampleResume)
		job = exampleDocument("example:job", analyzer.SampleJob)
	} else {
		resume, job, err = loadInputs(cmd.Context(), opts)
		if err != nil {
			return err
		}
	}

	report := analyzer.New(dict, nil).Inspect(resume.text, job.text)
	logger.Info().
		Int("match_score", report.MatchScore).
		Int("key_skills", len(report.KeySkills)).
		Int("job_skills", len(report.JobSkills)).
		Msg("analysis completed")

	out := cmd.OutOrStdout()
	if cfg.Format == "json" {
		var inputs *analyzeInputs
		if cfg.Verbose {
			if inputs, err = inputMetadata(resume, job); err != nil {
				return err
			}
		}
		return writeAnalysisJSON(out, report, inputs)
	}

	p := observability.NewPrinter(out).WithColor(!opts.noColor && isTerminal(out))
	if cfg.Verbose {
		p.PrintMetadata("Resume", resume.meta)
		p.PrintMetadata("Job description", job.meta)
	}
	p.PrintAnalysis(report.AnalysisResult)
	if cfg.Verbose {
		p.PrintSkillGap(report)
	}
	if opts.highlight {
		p.PrintHighlighted("RESUME", highlight.Highlight(resume.text, report.KeySkills))
		p.PrintHighlighted("JOB DESCRIPTION", highlight.Highlight(job.text, report.KeySkills))
	}
	fmt.Fprintln(out, analyzer.Summary(report.MatchScore))
	return nil
}

// loadInputs reads the resume and the job description concurrently.
func loadInputs(ctx context.Context, opts *analyzeOptions) (resume, job document, err error) {
	cfg := opts.cfg
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, meta, err := ingestion.ReadDocument(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		logger.Debug().Str("path", cfg.Resume).Int("chars", meta.Chars).Msg("loaded resume")
		resume = document{text: text, meta: meta}
		return nil
	})

	g.Go(func() error {
		if cfg.JobURL != "" {
			text, meta, err := ingestion.FromURL(ctx, cfg.JobURL, ingestion.URLOptions{UseBrowser: cfg.UseBrowser})
			if err != nil {
				return fmt.Errorf("failed to fetch job posting: %w", err)
			}
			logger.Debug().Str("url", cfg.JobURL).Int("chars", meta.Chars).Bool("rendered", meta.Rendered).Msg("fetched job posting")
			job = document{text: text, meta: meta}
			return nil
		}

		text, meta, err := ingestion.ReadDocument(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		logger.Debug().Str("path", cfg.Job).Int("chars", meta.Chars).Msg("loaded job description")
		job = document{text: text, meta: meta}
		return nil
	})

	if err := g.Wait(); err != nil {
		return document{}, document{}, err
	}
	return resume, job, nil
}

func exampleDocument(source, text string) document {
	return document{text: text, meta: ingestion.NewMetadata(text, source, ingestion.FormatText)}
}

func inputMetadata(resume, job document) (*analyzeInputs, error) {
	resumeJSON, err := resume.meta.ToJSON()
	if err != nil {
		return nil, err
	}
	jobJSON, err := job.meta.ToJSON()
	if err != nil {
		return nil, err
	}
	return &analyzeInputs{Resume: resumeJSON, Job: jobJSON}, nil
}

// writeAnalysisJSON checks the report against the analysis schema before printing it.
func writeAnalysisJSON(w io.Writer, report analyzer.Report, inputs *analyzeInputs) error {
	level := analyzer.LevelFor(report.MatchScore)
	doc := analyzeOutput{
		Report:       report,
		MatchLevel:   level.Label,
		MatchMessage: level.Message,
		Summary:      analyzer.Summary(report.MatchScore),
		Inputs:       inputs,
	}

	if err := schemas.ValidateAnalysis(doc); err != nil {
		return fmt.Errorf("analysis output failed schema validation: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// isTerminal reports whether w is a terminal, so ANSI color is only written where it renders.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
