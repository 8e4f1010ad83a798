package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

// rootOptions holds the persistent flags and the config file they point at.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "resume_analyzer",
		Short: "Compare a resume with a job description",
		Long: `resume_analyzer extracts skills from a resume and a job description, scores how well
they match and suggests improvements.

Configuration can be loaded from a JSON file using --config. Command-line flags override config file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "pretty", "Log format: pretty or json")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newHighlightCmd(opts),
		newSkillsCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// init loads the config file, applies flag overrides for logging and starts the logger.
// Subcommands validate the merged config once their own flags are applied.
func (o *rootOptions) init(cmd *cobra.Command) error {
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		o.cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		o.cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		o.cfg.LogFormat = o.logFormat
	}
	o.cfg = o.cfg.MergeWithDefaults(config.Config{
		LogLevel:  o.logLevel,
		LogFormat: o.logFormat,
		Format:    "text",
	})

	logger.Init(logger.Config{
		Level:  o.cfg.LogLevel,
		Format: o.cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

// loadDictionary loads the configured dictionary, or returns nil for the embedded one.
func (o *rootOptions) loadDictionary() (*skills.Dictionary, error) {
	if o.cfg.Dictionary == "" {
		return nil, nil
	}
	dict, err := skills.LoadDictionary(o.cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	logger.Debug().Str("path", o.cfg.Dictionary).Int("skills", dict.Len()).Msg("loaded dictionary")
	return dict, nil
}
