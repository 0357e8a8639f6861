package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/futstats/fixture-insights/internal/dataset"
	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/goal"
	"github.com/futstats/fixture-insights/internal/platform/logging"
)

// SnapshotFetcher pulls a results file from the remote snapshot store.
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, name string) ([]byte, error)
}

// FixtureArchiver persists loaded fixtures outside the in-memory
// repositories. Archive failures do not fail a reload.
type FixtureArchiver interface {
	Archive(ctx context.Context, competitionID string, fixtures []fixture.Fixture) error
}

type DatasetService struct {
	loader          dataset.Loader
	datasetDir      string
	goalscorersFile string
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
	goalRepo        goal.Repository
	snapshots       SnapshotFetcher
	archive         FixtureArchiver
	rebuild         *RebuildService
	logger          *logging.Logger
}

func NewDatasetService(
	datasetDir string,
	goalscorersFile string,
	competitionRepo competition.Repository,
	fixtureRepo fixture.Repository,
	goalRepo goal.Repository,
	snapshots SnapshotFetcher,
	archive FixtureArchiver,
	rebuild *RebuildService,
	logger *logging.Logger,
) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		datasetDir:      datasetDir,
		goalscorersFile: goalscorersFile,
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
		goalRepo:        goalRepo,
		snapshots:       snapshots,
		archive:         archive,
		rebuild:         rebuild,
		logger:          logger,
	}
}

type ReloadResult struct {
	Competitions int            `json:"competitions"`
	Fixtures     int            `json:"fixtures"`
	Resolved     int            `json:"resolved"`
	Goals        int            `json:"goals"`
	Rebuilt      *RebuildResult `json:"rebuilt,omitempty"`
	DurationMs   int64          `json:"duration_ms"`
}

// Reload re-scans the dataset directory and replaces every repository's
// contents. One malformed file fails the whole reload so the previous
// snapshot of the data stays live.
func (s *DatasetService) Reload(ctx context.Context) (ReloadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Reload")
	defer span.End()

	start := time.Now()

	sources, err := s.loader.Sources(s.datasetDir)
	if err != nil {
		return ReloadResult{}, err
	}

	goalscorersBase := filepath.Base(s.goalscorersFile)
	var (
		result    ReloadResult
		loaded    []dataset.Dataset
		fixtureBy = make(map[string]string)
	)
	for _, source := range sources {
		if s.goalscorersFile != "" && filepath.Base(source) == goalscorersBase {
			continue
		}
		ds, err := s.loader.LoadFixtures(source)
		if err != nil {
			return ReloadResult{}, err
		}
		loaded = append(loaded, ds)
		result.Competitions++
		result.Fixtures += len(ds.Fixtures)
		result.Resolved += ds.ResolvedCount()
		for _, fx := range ds.Fixtures {
			fixtureBy[fixtureKey(fx.MatchDate, fx.HomeTeam, fx.AwayTeam)] = ds.Competition.ID
		}
	}
	if len(loaded) == 0 {
		return ReloadResult{}, fmt.Errorf("%w: no result files in %s", dataset.ErrSourceNotFound, s.datasetDir)
	}

	goalsByCompetition, goalCount, err := s.loadGoals(fixtureBy)
	if err != nil {
		return ReloadResult{}, err
	}
	result.Goals = goalCount

	competitionIDs := make([]string, 0, len(loaded))
	for _, ds := range loaded {
		if err := s.fixtureRepo.ReplaceCompetition(ctx, ds.Competition.ID, ds.Fixtures); err != nil {
			return ReloadResult{}, fmt.Errorf("replace fixtures competition=%s: %w", ds.Competition.ID, err)
		}
		if s.goalRepo != nil {
			if err := s.goalRepo.ReplaceCompetition(ctx, ds.Competition.ID, goalsByCompetition[ds.Competition.ID]); err != nil {
				return ReloadResult{}, fmt.Errorf("replace goals competition=%s: %w", ds.Competition.ID, err)
			}
		}
		if err := s.competitionRepo.Upsert(ctx, ds.Competition); err != nil {
			return ReloadResult{}, fmt.Errorf("upsert competition=%s: %w", ds.Competition.ID, err)
		}
		if s.archive != nil {
			if err := s.archive.Archive(ctx, ds.Competition.ID, ds.Fixtures); err != nil {
				s.logger.WarnContext(ctx, "fixture archive write failed", "competition", ds.Competition.ID, "error", err)
			}
		}
		competitionIDs = append(competitionIDs, ds.Competition.ID)
	}

	if s.rebuild != nil {
		rebuilt, err := s.rebuild.Warm(ctx, competitionIDs)
		if err != nil {
			return ReloadResult{}, fmt.Errorf("rebuild aggregates: %w", err)
		}
		result.Rebuilt = &rebuilt
	}

	result.DurationMs = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "datasets reloaded",
		"competitions", result.Competitions,
		"fixtures", result.Fixtures,
		"resolved", result.Resolved,
		"goals", result.Goals,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

// loadGoals reads the optional goalscorers file and attaches each event
// to the competition whose fixture it belongs to. Events that match no
// loaded fixture are dropped.
func (s *DatasetService) loadGoals(fixtureBy map[string]string) (map[string][]goal.Goal, int, error) {
	if s.goalscorersFile == "" {
		return nil, 0, nil
	}
	path := s.goalscorersFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.datasetDir, path)
	}
	if _, err := os.Stat(path); err != nil {
		// The goalscorers file is optional; interval queries report
		// the gap instead.
		return nil, 0, nil
	}

	goals, err := s.loader.LoadGoalscorers(path, "")
	if err != nil {
		return nil, 0, err
	}

	byCompetition := make(map[string][]goal.Goal)
	matched := 0
	for _, g := range goals {
		competitionID, ok := fixtureBy[fixtureKey(g.MatchDate, g.HomeTeam, g.AwayTeam)]
		if !ok {
			continue
		}
		g.CompetitionID = competitionID
		byCompetition[competitionID] = append(byCompetition[competitionID], g)
		matched++
	}
	if dropped := len(goals) - matched; dropped > 0 {
		s.logger.Warn("goalscorer rows without a loaded fixture were skipped", "skipped", dropped)
	}
	return byCompetition, matched, nil
}

// Snapshot pulls one results file from the snapshot store into the
// dataset directory, then reloads everything.
func (s *DatasetService) Snapshot(ctx context.Context, name string) (ReloadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Snapshot")
	defer span.End()

	if s.snapshots == nil {
		return ReloadResult{}, fmt.Errorf("%w: snapshot store is disabled (SNAPSHOT_ENABLED=false)", ErrDependencyUnavailable)
	}
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || !strings.EqualFold(filepath.Ext(name), ".csv") {
		return ReloadResult{}, fmt.Errorf("%w: snapshot name must be a .csv file name", ErrInvalidInput)
	}

	data, err := s.snapshots.FetchSnapshot(ctx, name)
	if err != nil {
		return ReloadResult{}, fmt.Errorf("%w: fetch snapshot %s: %v", ErrDependencyUnavailable, name, err)
	}
	if err := os.WriteFile(filepath.Join(s.datasetDir, name), data, 0o644); err != nil {
		return ReloadResult{}, fmt.Errorf("write snapshot %s: %w", name, err)
	}

	s.logger.InfoContext(ctx, "snapshot stored", "file", name, "bytes", len(data))
	return s.Reload(ctx)
}

func fixtureKey(date time.Time, homeTeam, awayTeam string) string {
	return date.Format("2006-01-02") + "|" + fixture.NormalizeTeam(homeTeam) + "|" + fixture.NormalizeTeam(awayTeam)
}
