package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/infrastructure/repository/memory"
)

func ip(v int) *int { return &v }

func fx(date, stage, home, away string, homeScore, awayScore *int) fixture.Fixture {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return fixture.Fixture{
		CompetitionID: "copa-2024",
		MatchDate:     parsed,
		Stage:         stage,
		HomeTeam:      home,
		AwayTeam:      away,
		HomeScore:     homeScore,
		AwayScore:     awayScore,
	}
}

// Three fixtures: A beat B, A drew C, B against C is still unplayed.
func workedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		fx("2024-06-01", "Group A", "Argentina", "Bolivia", ip(2), ip(1)),
		fx("2024-06-02", "Group A", "Argentina", "Chile", ip(0), ip(0)),
		fx("2024-06-03", "Group A", "Bolivia", "Chile", nil, nil),
	}
}

func seedRepos(t *testing.T, fixtures []fixture.Fixture) (*memory.CompetitionRepository, *memory.FixtureRepository) {
	t.Helper()

	ctx := context.Background()
	competitionRepo := memory.NewCompetitionRepository()
	fixtureRepo := memory.NewFixtureRepository()

	if err := fixtureRepo.ReplaceCompetition(ctx, "copa-2024", fixtures); err != nil {
		t.Fatalf("seed fixtures: %v", err)
	}
	resolved := 0
	for _, f := range fixtures {
		if f.Resolved() {
			resolved++
		}
	}
	err := competitionRepo.Upsert(ctx, competition.Competition{
		ID:       "copa-2024",
		Name:     "Copa 2024",
		LoadedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		Fixtures: len(fixtures),
		Resolved: resolved,
	})
	if err != nil {
		t.Fatalf("seed competition: %v", err)
	}
	return competitionRepo, fixtureRepo
}
