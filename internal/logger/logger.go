// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the global logger. Init replaces it.
var Logger = log.Logger

// Config controls level, format and destination of log output.
type Config struct {
	Level        string `json:"level"`
	Format       string `json:"format"` // json or pretty
	TimeFormat   string `json:"time_format"`
	ReportCaller bool   `json:"report_caller"`

	// Output defaults to stderr so command output on stdout stays machine-readable.
	Output io.Writer `json:"-"`
}

// Init installs a logger built from cfg as both Logger and zerolog's global logger.
// An unknown level falls back to info.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}

	Logger = ctx.Logger()
	log.Logger = Logger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info-level event.
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn-level event.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error-level event.
func Error() *zerolog.Event { return Logger.Error() }

// Ctx returns the logger stored in ctx, or a disabled logger when there is none.
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores a child of the global logger carrying fields in ctx.
func WithContext(ctx context.Context, fields map[string]any) context.Context {
	l := Logger.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}
