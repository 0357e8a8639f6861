package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

func performanceFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		fx("2024-06-01", "Group A", "Argentina", "Chile", ip(2), ip(0)),
		fx("2024-06-05", "Group A", "Peru", "Argentina", ip(1), ip(1)),
		fx("2024-06-10", "Group A", "Argentina", "Bolivia", ip(0), ip(1)),
		fx("2024-06-15", "Semi", "Chile", "Argentina", ip(0), ip(3)),
		fx("2024-06-20", "Final", "Argentina", "Peru", nil, nil),
	}
}

func TestTeamPerformanceSplits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, performanceFixtures())
	service := NewPerformanceService(competitionRepo, fixtureRepo)

	result, err := service.TeamPerformance(ctx, "copa-2024", "Argentina", PerformanceOptions{})
	if err != nil {
		t.Fatalf("TeamPerformance: %v", err)
	}

	// The unplayed final is excluded everywhere.
	if result.Matches != 4 || result.Wins != 2 || result.Draws != 1 || result.Losses != 1 {
		t.Fatalf("overall = %+v", result)
	}
	if result.GoalsFor != 6 || result.GoalsAgainst != 2 {
		t.Fatalf("goals = %d-%d", result.GoalsFor, result.GoalsAgainst)
	}
	if result.Home.Matches != 2 || result.Home.Wins != 1 || result.Home.Losses != 1 {
		t.Fatalf("home split = %+v", result.Home)
	}
	if result.Away.Matches != 2 || result.Away.Wins != 1 || result.Away.Draws != 1 {
		t.Fatalf("away split = %+v", result.Away)
	}
	if result.WinRate == nil || *result.WinRate != 0.5 {
		t.Fatalf("win rate = %v", result.WinRate)
	}
}

func TestTeamPerformanceStageFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, performanceFixtures())
	service := NewPerformanceService(competitionRepo, fixtureRepo)

	result, err := service.TeamPerformance(ctx, "copa-2024", "Argentina", PerformanceOptions{Stage: "semi"})
	if err != nil {
		t.Fatalf("TeamPerformance: %v", err)
	}
	if result.Matches != 1 || result.Wins != 1 {
		t.Fatalf("stage filtered = %+v", result)
	}
}

func TestTeamPerformanceLastN(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, performanceFixtures())
	service := NewPerformanceService(competitionRepo, fixtureRepo)

	// The two most recent resolved matches are the semi win and the
	// Bolivia loss.
	result, err := service.TeamPerformance(ctx, "copa-2024", "Argentina", PerformanceOptions{LastN: 2})
	if err != nil {
		t.Fatalf("TeamPerformance: %v", err)
	}
	if result.Matches != 2 || result.Wins != 1 || result.Losses != 1 {
		t.Fatalf("last 2 = %+v", result)
	}

	if _, err := service.TeamPerformance(ctx, "copa-2024", "Argentina", PerformanceOptions{LastN: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative lastN err = %v", err)
	}
}

func TestTeamPerformanceUnknownTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, performanceFixtures())
	service := NewPerformanceService(competitionRepo, fixtureRepo)

	result, err := service.TeamPerformance(ctx, "copa-2024", "Uruguay", PerformanceOptions{})
	if err != nil {
		t.Fatalf("TeamPerformance: %v", err)
	}
	if result.Matches != 0 || result.WinRate != nil {
		t.Fatalf("unknown team must yield empty tally, got %+v", result)
	}

	if _, err := service.TeamPerformance(ctx, "copa-2024", " ", PerformanceOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank team err = %v", err)
	}
}

func TestScoringRate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, performanceFixtures())
	service := NewPerformanceService(competitionRepo, fixtureRepo)

	result, err := service.ScoringRate(ctx, "copa-2024", "Argentina", 0)
	if err != nil {
		t.Fatalf("ScoringRate: %v", err)
	}
	// Argentina failed to score only against Bolivia.
	if result.Matches != 4 || result.Scored != 3 {
		t.Fatalf("scoring rate = %+v", result)
	}
	if result.Rate == nil || *result.Rate != 0.75 {
		t.Fatalf("rate = %v", result.Rate)
	}
}
