// Package logger configures the application's logging and observability.
//
// It uses zerolog for structured logging and optionally integrates with
// New Relic, forwarding logs and enriching them with trace metadata.
package logger

import (
	"io"
	"os"

	"github.com/clinilab/clinilab/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from the observability config.
//
// Format "console" gives a human-friendly writer for local work; anything
// else emits JSON. When a New Relic application is available and log
// forwarding is enabled, log lines are decorated and shipped through the
// agent's zerolog writer.
func New(cfg *config.Config, svc *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if svc != nil && svc.GetApplication() != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(out, svc.GetApplication())
		out = &w
	}

	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a copy of logger carrying the transaction's
// trace and span ids so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	md := txn.GetTraceMetadata()
	return logger.With().
		Str("trace.id", md.TraceID).
		Str("span.id", md.SpanID).
		Logger()
}
