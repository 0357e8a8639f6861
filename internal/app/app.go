package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/futstats/fixture-insights/external/snapshots"
	"github.com/futstats/fixture-insights/internal/config"
	"github.com/futstats/fixture-insights/internal/infrastructure/repository/memory"
	"github.com/futstats/fixture-insights/internal/infrastructure/repository/postgres"
	"github.com/futstats/fixture-insights/internal/interfaces/httpapi"
	"github.com/futstats/fixture-insights/internal/platform/cache"
	"github.com/futstats/fixture-insights/internal/platform/logging"
	"github.com/futstats/fixture-insights/internal/platform/resilience"
	"github.com/futstats/fixture-insights/internal/usecase"
)

// App bundles the HTTP server with the dataset service so the entry
// point can run the initial load before accepting traffic.
type App struct {
	Server  *http.Server
	Dataset *usecase.DatasetService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger, requestLogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if requestLogger == nil {
		requestLogger = slog.Default()
	}

	competitionRepo := memory.NewCompetitionRepository()
	fixtureRepo := memory.NewFixtureRepository()
	goalRepo := memory.NewGoalRepository()

	var store *cache.Store
	if cfg.Cache.Enabled {
		store = cache.NewStore(cfg.Cache.TTL)
	}

	fixtureSvc := usecase.NewFixtureService(competitionRepo, fixtureRepo)
	summarySvc := usecase.NewSummaryService(competitionRepo, fixtureRepo, store)
	standingsSvc := usecase.NewStandingsService(competitionRepo, fixtureRepo, store)
	matchupSvc := usecase.NewMatchupService(competitionRepo, fixtureRepo)
	performanceSvc := usecase.NewPerformanceService(competitionRepo, fixtureRepo)
	goalsSvc := usecase.NewGoalsService(competitionRepo, fixtureRepo, goalRepo)

	var rebuildSvc *usecase.RebuildService
	if store != nil {
		rebuildSvc = usecase.NewRebuildService(summarySvc, standingsSvc, store, cfg.Rebuild.MaxWorkers)
	}

	var snapshotClient usecase.SnapshotFetcher
	if cfg.Snapshot.Enabled {
		snapshotClient = snapshots.NewClient(snapshots.ClientConfig{
			BaseURL:    cfg.Snapshot.BaseURL,
			Token:      cfg.Snapshot.Token,
			Timeout:    cfg.Snapshot.Timeout,
			MaxRetries: cfg.Snapshot.MaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          true,
				FailureThreshold: cfg.Snapshot.CircuitFailureThreshold,
				OpenTimeout:      cfg.Snapshot.CircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.Snapshot.CircuitHalfOpenMaxCalls,
			},
		})
	}

	var (
		db      *sqlx.DB
		archive usecase.FixtureArchiver
	)
	if cfg.Database.Enabled {
		conn, err := sqlx.Open("postgres", cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = conn
		archive = postgres.NewFixtureArchive(conn)
	}

	datasetSvc := usecase.NewDatasetService(
		cfg.Dataset.Dir,
		cfg.Dataset.GoalscorersFile,
		competitionRepo,
		fixtureRepo,
		goalRepo,
		snapshotClient,
		archive,
		rebuildSvc,
		logger,
	)

	handler := httpapi.NewHandler(
		fixtureSvc, summarySvc, standingsSvc,
		matchupSvc, performanceSvc, goalsSvc,
		datasetSvc, requestLogger,
	)
	router := httpapi.NewRouter(handler, requestLogger, cfg.App.CORSAllowedOrigins, cfg.App.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:  server,
		Dataset: datasetSvc,
		db:      db,
	}, nil
}

func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
