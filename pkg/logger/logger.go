// Package logger builds the process-wide slog.Logger. Output goes to stdout
// as JSON (or text for local development) and, when a DSN is configured,
// warnings and errors are fanned out to Sentry as well. The resulting logger
// is passed to components explicitly; nothing in this repository logs
// through a package-level global.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Config selects the log output format and level, and optionally enables
// Sentry forwarding.
type Config struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`   // debug, info, warn, error
	Format      string `env:"LOG_FORMAT" envDefault:"json"`  // json or text
	SentryDSN   string `env:"SENTRY_DSN"`                    // empty disables Sentry
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// New creates a logger from the given config.
// If the Sentry DSN is empty or Sentry initialization fails, the logger
// degrades to stdout only.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	if cfg.SentryDSN == "" {
		return slog.New(handler)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(handler)
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(handler, sentryHandler))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
