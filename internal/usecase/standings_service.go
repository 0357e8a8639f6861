package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/standings"
	"github.com/futstats/fixture-insights/internal/platform/cache"
)

type StandingsService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
	cache           *cache.Store
}

func NewStandingsService(competitionRepo competition.Repository, fixtureRepo fixture.Repository, store *cache.Store) *StandingsService {
	return &StandingsService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
		cache:           store,
	}
}

// Table builds a 3-1-0 points table from a competition's resolved
// fixtures. Unplayed fixtures contribute nothing.
func (s *StandingsService) Table(ctx context.Context, competitionID string) ([]standings.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return nil, err
	}

	load := func(ctx context.Context) (any, error) {
		fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by competition: %w", err)
		}
		return BuildStandings(fixtures), nil
	}

	var value any
	if s.cache != nil {
		value, err = s.cache.GetOrLoad(ctx, "standings:"+competitionID, load)
	} else {
		value, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}

	table, ok := value.([]standings.Standing)
	if !ok {
		return nil, fmt.Errorf("unexpected standings cache entry for competition=%s", competitionID)
	}

	out := make([]standings.Standing, len(table))
	copy(out, table)
	return out, nil
}

// BuildStandings ranks teams by points, goal difference, goals for and
// finally name.
func BuildStandings(fixtures []fixture.Fixture) []standings.Standing {
	index := make(map[string]int)
	var table []standings.Standing

	rowIdx := func(team string) int {
		if idx, ok := index[team]; ok {
			return idx
		}
		table = append(table, standings.Standing{Team: team})
		index[team] = len(table) - 1
		return len(table) - 1
	}

	for _, fx := range fixtures {
		if !fx.Resolved() {
			continue
		}
		// Resolve both indices before taking pointers; the second
		// lookup can grow the table and move its backing array.
		hi := rowIdx(fx.HomeTeam)
		ai := rowIdx(fx.AwayTeam)
		home, away := &table[hi], &table[ai]

		home.Played++
		home.GoalsFor += *fx.HomeScore
		home.GoalsAgainst += *fx.AwayScore
		away.Played++
		away.GoalsFor += *fx.AwayScore
		away.GoalsAgainst += *fx.HomeScore

		switch fx.Outcome() {
		case fixture.OutcomeHomeWin:
			home.Won++
			home.Points += 3
			away.Lost++
		case fixture.OutcomeAwayWin:
			away.Won++
			away.Points += 3
			home.Lost++
		default:
			home.Draw++
			home.Points++
			away.Draw++
			away.Points++
		}
	}

	for idx := range table {
		table[idx].GoalDifference = table[idx].GoalsFor - table[idx].GoalsAgainst
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	for idx := range table {
		table[idx].Position = idx + 1
	}
	return table
}
