package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/highlight"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

type highlightOptions struct {
	*rootOptions

	in      string
	skills  []string
	format  string
	noColor bool
}

func newHighlightCmd(root *rootOptions) *cobra.Command {
	opts := &highlightOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "highlight",
		Short: "Mark skill mentions in a document",
		Long: `Print a document with every whole-word, case-insensitive mention of the given skills marked.
Without --skills, the skills extracted from the document itself are highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHighlight(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.in, "in", "i", "", "Path to the document to highlight (required)")
	cmd.Flags().StringSliceVarP(&opts.skills, "skills", "s", nil, "Comma-separated skills to highlight")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored highlighting")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runHighlight(cmd *cobra.Command, opts *highlightOptions) error {
	if cmd.Flags().Changed("format") {
		opts.cfg.Format = opts.format
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	text, _, err := ingestion.ReadDocument(opts.in)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	terms := opts.skills
	if len(terms) == 0 {
		dict, err := opts.loadDictionary()
		if err != nil {
			return err
		}
		terms = skills.NewExtractor(dict).Extract(text)
	}

	spans := highlight.Highlight(text, terms)
	out := cmd.OutOrStdout()

	if opts.cfg.Format == "json" {
		resp := types.HighlightResponse{Spans: spans}
		if err := schemas.ValidateValue(schemafiles.Highlight, resp); err != nil {
			return fmt.Errorf("highlight output failed schema validation: %w", err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	p := observability.NewPrinter(out).WithColor(!opts.noColor && isTerminal(out))
	p.PrintHighlighted(fmt.Sprintf("%s (%d matched)", opts.in, len(highlight.Matched(spans))), spans)
	return nil
}
