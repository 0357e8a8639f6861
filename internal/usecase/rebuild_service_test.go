package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/futstats/fixture-insights/internal/platform/cache"
)

func TestWarmRebuildsAllAggregates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, workedFixtures())
	store := cache.NewStore(time.Minute)

	summarySvc := NewSummaryService(competitionRepo, fixtureRepo, store)
	standingsSvc := NewStandingsService(competitionRepo, fixtureRepo, store)
	service := NewRebuildService(summarySvc, standingsSvc, store, 2)

	result, err := service.Warm(ctx, []string{"copa-2024"})
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}

	// Three summary group keys plus one standings table.
	if result.Tasks != 4 || result.SuccessCount != 4 || result.FailedCount != 0 {
		t.Fatalf("result = %+v", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("worker count = %d", result.WorkerCount)
	}

	for _, key := range []string{
		"summary:copa-2024:home_team",
		"summary:copa-2024:team",
		"summary:copa-2024:stage",
		"standings:copa-2024",
	} {
		if _, ok := store.Get(ctx, key); !ok {
			t.Fatalf("cache entry %q not warmed", key)
		}
	}
}

func TestWarmReportsFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, workedFixtures())
	store := cache.NewStore(time.Minute)

	summarySvc := NewSummaryService(competitionRepo, fixtureRepo, store)
	standingsSvc := NewStandingsService(competitionRepo, fixtureRepo, store)
	service := NewRebuildService(summarySvc, standingsSvc, store, 8)

	result, err := service.Warm(ctx, []string{"copa-2024", "ghost"})
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}

	if result.Tasks != 8 || result.SuccessCount != 4 || result.FailedCount != 4 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.Failures) != 4 {
		t.Fatalf("failures = %v", result.Failures)
	}
	// Workers are capped by the task count.
	if result.WorkerCount != 8 {
		t.Fatalf("worker count = %d", result.WorkerCount)
	}
}

func TestWarmNothingToDo(t *testing.T) {
	t.Parallel()

	competitionRepo, fixtureRepo := seedRepos(t, workedFixtures())
	store := cache.NewStore(time.Minute)

	summarySvc := NewSummaryService(competitionRepo, fixtureRepo, store)
	standingsSvc := NewStandingsService(competitionRepo, fixtureRepo, store)
	service := NewRebuildService(summarySvc, standingsSvc, store, 2)

	result, err := service.Warm(context.Background(), nil)
	if err != nil {
		t.Fatalf("Warm: %v", err)
	}
	if result.Tasks != 0 || result.SuccessCount != 0 {
		t.Fatalf("result = %+v", result)
	}
}
