package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

type Environment string

const (
	EnvDev   Environment = "dev"
	EnvStage Environment = "stage"
	EnvProd  Environment = "prod"
)

type Config struct {
	App       App
	Dataset   Dataset
	Cache     Cache
	Database  Database
	Snapshot  Snapshot
	Rebuild   Rebuild
	Telemetry Telemetry
	Profiling Profiling
}

type App struct {
	Env                Environment
	ServiceName        string
	Version            string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           zapcore.Level
	CORSAllowedOrigins []string
	InternalJobToken   string
}

type Dataset struct {
	// Dir holds one results CSV per competition.
	Dir string
	// GoalscorersFile is optional; relative paths resolve against Dir.
	GoalscorersFile string
}

type Cache struct {
	Enabled bool
	TTL     time.Duration
}

type Database struct {
	Enabled bool
	URL     string
}

type Snapshot struct {
	Enabled                 bool
	BaseURL                 string
	Token                   string
	Timeout                 time.Duration
	MaxRetries              int
	CircuitFailureThreshold int
	CircuitOpenTimeout      time.Duration
	CircuitHalfOpenMaxCalls int
}

type Rebuild struct {
	MaxWorkers int
}

type Telemetry struct {
	Enabled bool
	DSN     string
}

type Profiling struct {
	Enabled       bool
	ServerAddress string
}

// Load reads the full configuration from the environment. Every key has
// a dev-friendly default so a bare `go run ./cmd/api` works against a
// local dataset directory.
func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", string(EnvDev)))
	if err != nil {
		return Config{}, err
	}
	logLevel, err := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	readTimeout, err := getEnvAsDuration("APP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("APP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := getEnvAsDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	snapshotTimeout, err := getEnvAsDuration("SNAPSHOT_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	circuitOpenTimeout, err := getEnvAsDuration("SNAPSHOT_CIRCUIT_OPEN_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	maxRetries, err := getEnvAsInt("SNAPSHOT_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, err
	}
	failureThreshold, err := getEnvAsInt("SNAPSHOT_CIRCUIT_FAILURE_THRESHOLD", 5)
	if err != nil {
		return Config{}, err
	}
	halfOpenMaxCalls, err := getEnvAsInt("SNAPSHOT_CIRCUIT_HALF_OPEN_MAX_CALLS", 2)
	if err != nil {
		return Config{}, err
	}
	rebuildWorkers, err := getEnvAsInt("REBUILD_MAX_WORKERS", 2)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: App{
			Env:                appEnv,
			ServiceName:        getEnv("APP_SERVICE_NAME", "fixture-insights"),
			Version:            getEnv("APP_VERSION", "dev"),
			HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
			ReadTimeout:        readTimeout,
			WriteTimeout:       writeTimeout,
			LogLevel:           logLevel,
			CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			InternalJobToken:   getEnv("INTERNAL_JOB_TOKEN", ""),
		},
		Dataset: Dataset{
			Dir:             getEnv("DATASET_DIR", "./data"),
			GoalscorersFile: getEnv("GOALSCORERS_FILE", ""),
		},
		Cache: Cache{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			TTL:     cacheTTL,
		},
		Database: Database{
			Enabled: getEnvAsBool("DB_ENABLED", false),
			URL:     getEnv("DB_URL", ""),
		},
		Snapshot: Snapshot{
			Enabled:                 getEnvAsBool("SNAPSHOT_ENABLED", false),
			BaseURL:                 getEnv("SNAPSHOT_BASE_URL", ""),
			Token:                   getEnv("SNAPSHOT_TOKEN", ""),
			Timeout:                 snapshotTimeout,
			MaxRetries:              maxRetries,
			CircuitFailureThreshold: failureThreshold,
			CircuitOpenTimeout:      circuitOpenTimeout,
			CircuitHalfOpenMaxCalls: halfOpenMaxCalls,
		},
		Rebuild: Rebuild{
			MaxWorkers: rebuildWorkers,
		},
		Telemetry: Telemetry{
			Enabled: getEnvAsBool("UPTRACE_ENABLED", false),
			DSN:     getEnv("UPTRACE_DSN", ""),
		},
		Profiling: Profiling{
			Enabled:       getEnvAsBool("PYROSCOPE_ENABLED", false),
			ServerAddress: getEnv("PYROSCOPE_SERVER_ADDRESS", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Dataset.Dir) == "" {
		return fmt.Errorf("DATASET_DIR must not be empty")
	}
	if c.Database.Enabled && strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("DB_URL is required when DB_ENABLED=true")
	}
	if c.Snapshot.Enabled && strings.TrimSpace(c.Snapshot.BaseURL) == "" {
		return fmt.Errorf("SNAPSHOT_BASE_URL is required when SNAPSHOT_ENABLED=true")
	}
	if c.Telemetry.Enabled && strings.TrimSpace(c.Telemetry.DSN) == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.Profiling.Enabled && strings.TrimSpace(c.Profiling.ServerAddress) == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	return nil
}

func parseAppEnv(value string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case EnvDev:
		return EnvDev, nil
	case EnvStage:
		return EnvStage, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", fmt.Errorf("parse APP_ENV: unknown environment %q", value)
	}
}

func parseLogLevel(value string) (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
