package observability

import (
	"log/slog"

	"github.com/grafana/pyroscope-go"

	"github.com/futstats/fixture-insights/internal/config"
)

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *slog.Logger) (func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if !cfg.Profiling.Enabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.App.ServiceName,
		ServerAddress:   cfg.Profiling.ServerAddress,
		Tags: map[string]string{
			"env":     string(cfg.App.Env),
			"service": cfg.App.ServiceName,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.Profiling.ServerAddress,
		"application", cfg.App.ServiceName,
	)

	return profiler.Stop, nil
}
