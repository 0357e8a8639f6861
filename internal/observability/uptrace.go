package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/futstats/fixture-insights/internal/config"
	"github.com/futstats/fixture-insights/internal/platform/logging"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.Telemetry.Enabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return func(context.Context) error { return nil }, nil
	}
	if strings.TrimSpace(cfg.Telemetry.DSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return func(context.Context) error { return nil }, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.Telemetry.DSN),
		uptrace.WithServiceName(cfg.App.ServiceName),
		uptrace.WithServiceVersion(cfg.App.Version),
		uptrace.WithDeploymentEnvironment(string(cfg.App.Env)),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.App.ServiceName,
		"service_version", cfg.App.Version,
		"environment", cfg.App.Env,
	)

	return uptrace.Shutdown, nil
}
