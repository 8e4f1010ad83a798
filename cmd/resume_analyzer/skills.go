package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
	schemafiles "github.com/jonathan/resume-analyzer/schemas"
)

type skillsOptions struct {
	*rootOptions

	dictionary string
	format     string
}

func newSkillsCmd(root *rootOptions) *cobra.Command {
	opts := &skillsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Print the skill dictionary",
		Long:  "Print the skills the analyzer recognizes, grouped by category, in dictionary order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSkills(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dictionary, "dictionary", "", "Path to an alternate skill dictionary (YAML)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")

	return cmd
}

func runSkills(cmd *cobra.Command, opts *skillsOptions) error {
	if cmd.Flags().Changed("dictionary") {
		opts.cfg.Dictionary = opts.dictionary
	}
	if cmd.Flags().Changed("format") {
		opts.cfg.Format = opts.format
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	dict, err := opts.loadDictionary()
	if err != nil {
		return err
	}
	if dict == nil {
		dict = skills.Default()
	}

	out := cmd.OutOrStdout()
	if opts.cfg.Format == "json" {
		resp := types.SkillsResponse{Categories: dict.Categories(), Total: dict.Len()}
		if err := schemas.ValidateValue(schemafiles.Dictionary, resp); err != nil {
			return fmt.Errorf("dictionary output failed schema validation: %w", err)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	observability.NewPrinter(out).PrintSkills(dict.Categories())
	return nil
}
