package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server"
)

type serveOptions struct {
	*rootOptions

	port       int
	dictionary string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server that exposes the analyzer as REST endpoints:
POST /analyze, POST /highlight, GET /skills and GET /health.

PORT, CORS_ALLOWED_ORIGINS, SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT_* are read from the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.port, "port", "p", 8080, "Port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&opts.dictionary, "dictionary", "", "Path to an alternate skill dictionary (YAML)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	if cmd.Flags().Changed("dictionary") {
		opts.cfg.Dictionary = opts.dictionary
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	srvCfg, err := config.NewServerConfig()
	if err != nil {
		return err
	}
	switch {
	case cmd.Flags().Changed("port"):
		err = srvCfg.SetPort(opts.port)
	case opts.cfg.Port != 0:
		err = srvCfg.SetPort(opts.cfg.Port)
	}
	if err != nil {
		return err
	}

	dict, err := opts.loadDictionary()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:            srvCfg.Port,
		AllowedOrigins:  srvCfg.AllowedOrigins,
		ShutdownTimeout: srvCfg.ShutdownTimeout,
		Analyzer:        analyzer.New(dict, nil),
	})
	return srv.Start()
}
