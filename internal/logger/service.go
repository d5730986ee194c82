package logger

import (
	"github.com/clinilab/clinilab/internal/config"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService owns the New Relic application instance.
//
// When no license key is configured the service still exists but holds a
// nil application, and every consumer degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes New Relic from config.
//
// A missing license key is not an error: the service runs without APM.
// A bad key is logged and startup continues for the same reason.
func NewLoggerService(cfg *config.Config, logger *zerolog.Logger) *LoggerService {
	nr := cfg.Observability.NewRelic
	if nr.LicenseKey == "" {
		return &LoggerService{}
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
	}
	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(zerolog.NewConsoleWriter()))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize New Relic, continuing without APM")
		return &LoggerService{}
	}

	return &LoggerService{nrApp: app}
}

// GetApplication returns the New Relic application, or nil when APM is
// not configured.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}
