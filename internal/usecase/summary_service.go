package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/summary"
	"github.com/futstats/fixture-insights/internal/platform/cache"
)

type SummaryService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
	cache           *cache.Store
}

func NewSummaryService(competitionRepo competition.Repository, fixtureRepo fixture.Repository, store *cache.Store) *SummaryService {
	return &SummaryService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
		cache:           store,
	}
}

type SummarizeOptions struct {
	SortBy     string
	Descending bool
}

// Summarize aggregates a competition's fixtures into one row per group.
// Rows come out in first-appearance order unless a sort column is given.
func (s *SummaryService) Summarize(ctx context.Context, competitionID string, key summary.GroupKey, opts SummarizeOptions) ([]summary.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Summarize")
	defer span.End()

	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return nil, err
	}
	if _, ok := summary.ParseGroupKey(string(key)); !ok {
		return nil, fmt.Errorf("%w: unsupported group key %q", ErrInvalidInput, key)
	}
	sortBy := strings.ToLower(strings.TrimSpace(opts.SortBy))
	if sortBy != "" && !validSummarySort(sortBy) {
		return nil, fmt.Errorf("%w: unsupported sort column %q", ErrInvalidInput, opts.SortBy)
	}

	rows, err := s.loadRows(ctx, competitionID, key)
	if err != nil {
		return nil, err
	}

	if sortBy != "" {
		sortSummaryRows(rows, sortBy, opts.Descending)
	}
	return rows, nil
}

func (s *SummaryService) loadRows(ctx context.Context, competitionID string, key summary.GroupKey) ([]summary.Row, error) {
	load := func(ctx context.Context) (any, error) {
		fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by competition: %w", err)
		}
		return BuildSummary(fixtures, key), nil
	}

	var (
		value any
		err   error
	)
	if s.cache != nil {
		value, err = s.cache.GetOrLoad(ctx, summaryCacheKey(competitionID, key), load)
	} else {
		value, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}

	cached, ok := value.([]summary.Row)
	if !ok {
		return nil, fmt.Errorf("unexpected summary cache entry for competition=%s", competitionID)
	}

	// Callers may sort in place.
	rows := make([]summary.Row, len(cached))
	copy(rows, cached)
	return rows, nil
}

func summaryCacheKey(competitionID string, key summary.GroupKey) string {
	return fmt.Sprintf("summary:%s:%s", competitionID, key)
}

// BuildSummary folds fixtures into per-group rows. It is a pure function
// of its inputs: same fixtures and key always produce the same rows, in
// first-appearance order. Grouping by team credits each resolved fixture
// to both participants; the other keys partition the fixture list.
func BuildSummary(fixtures []fixture.Fixture, key summary.GroupKey) []summary.Row {
	index := make(map[string]int)
	var rows []summary.Row

	rowIdx := func(group string) int {
		if idx, ok := index[group]; ok {
			return idx
		}
		rows = append(rows, summary.Row{Group: group})
		index[group] = len(rows) - 1
		return len(rows) - 1
	}

	credit := func(row *summary.Row, scored, conceded int) {
		row.Resolved++
		row.GoalsFor += scored
		row.GoalsAgainst += conceded
		switch {
		case scored > conceded:
			row.Wins++
		case scored < conceded:
			row.Losses++
		default:
			row.Draws++
		}
	}

	for _, fx := range fixtures {
		switch key {
		case summary.GroupByTeam:
			// Resolve both indices before taking pointers; the
			// second lookup can grow rows and move its backing
			// array.
			hi := rowIdx(fx.HomeTeam)
			ai := rowIdx(fx.AwayTeam)
			home, away := &rows[hi], &rows[ai]
			home.Played++
			away.Played++
			if fx.Resolved() {
				credit(home, *fx.HomeScore, *fx.AwayScore)
				credit(away, *fx.AwayScore, *fx.HomeScore)
			}
		case summary.GroupByStage:
			row := &rows[rowIdx(fx.Stage)]
			row.Played++
			if fx.Resolved() {
				// Stage rows count results from the home side.
				credit(row, *fx.HomeScore, *fx.AwayScore)
			}
		default:
			row := &rows[rowIdx(fx.HomeTeam)]
			row.Played++
			if fx.Resolved() {
				credit(row, *fx.HomeScore, *fx.AwayScore)
			}
		}
	}

	for idx := range rows {
		fillRates(&rows[idx])
	}
	return rows
}

// fillRates leaves rates nil for groups without resolved fixtures so a
// missing rate is distinguishable from a zero one.
func fillRates(row *summary.Row) {
	if row.Resolved == 0 {
		return
	}
	total := float64(row.Resolved)
	winRate := float64(row.Wins) / total
	drawRate := float64(row.Draws) / total
	lossRate := float64(row.Losses) / total
	row.WinRate = &winRate
	row.DrawRate = &drawRate
	row.LossRate = &lossRate
}

func validSummarySort(column string) bool {
	switch column {
	case "group", "played", "resolved", "wins", "draws", "losses", "goals_for", "goals_against", "win_rate":
		return true
	default:
		return false
	}
}

func sortSummaryRows(rows []summary.Row, column string, descending bool) {
	less := func(a, b summary.Row) bool {
		switch column {
		case "group":
			return a.Group < b.Group
		case "played":
			return a.Played < b.Played
		case "resolved":
			return a.Resolved < b.Resolved
		case "wins":
			return a.Wins < b.Wins
		case "draws":
			return a.Draws < b.Draws
		case "losses":
			return a.Losses < b.Losses
		case "goals_for":
			return a.GoalsFor < b.GoalsFor
		case "goals_against":
			return a.GoalsAgainst < b.GoalsAgainst
		case "win_rate":
			return rateOrBelowZero(a.WinRate) < rateOrBelowZero(b.WinRate)
		default:
			return false
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// rateOrBelowZero makes nil rates sort below every real rate.
func rateOrBelowZero(rate *float64) float64 {
	if rate == nil {
		return -1
	}
	return *rate
}
