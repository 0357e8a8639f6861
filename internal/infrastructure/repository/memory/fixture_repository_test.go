package memory

import (
	"context"
	"testing"

	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

func TestFixtureRepositoryReplaceAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFixtureRepository()

	fixtures := []fixture.Fixture{
		{CompetitionID: "copa", HomeTeam: "Argentina", AwayTeam: "Chile"},
		{CompetitionID: "copa", HomeTeam: "Peru", AwayTeam: "Brazil"},
	}
	if err := repo.ReplaceCompetition(ctx, "copa", fixtures); err != nil {
		t.Fatalf("ReplaceCompetition: %v", err)
	}

	listed, err := repo.ListByCompetition(ctx, "copa")
	if err != nil {
		t.Fatalf("ListByCompetition: %v", err)
	}
	if len(listed) != 2 || listed[0].HomeTeam != "Argentina" {
		t.Fatalf("unexpected fixtures %+v", listed)
	}

	// The returned slice must be detached from the store.
	listed[0].HomeTeam = "Mutated"
	again, _ := repo.ListByCompetition(ctx, "copa")
	if again[0].HomeTeam != "Argentina" {
		t.Fatalf("list must copy stored fixtures")
	}

	if err := repo.ReplaceCompetition(ctx, "copa", fixtures[:1]); err != nil {
		t.Fatalf("ReplaceCompetition: %v", err)
	}
	shrunk, _ := repo.ListByCompetition(ctx, "copa")
	if len(shrunk) != 1 {
		t.Fatalf("replace must drop stale rows, got %d", len(shrunk))
	}

	empty, err := repo.ListByCompetition(ctx, "unknown")
	if err != nil || len(empty) != 0 {
		t.Fatalf("unknown competition = %v, %v", empty, err)
	}
}
