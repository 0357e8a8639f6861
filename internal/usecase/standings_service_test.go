package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

func TestBuildStandingsRanking(t *testing.T) {
	t.Parallel()

	table := BuildStandings(workedFixtures())

	if len(table) != 3 {
		t.Fatalf("expected 3 teams, got %d", len(table))
	}
	if table[0].Team != "Argentina" || table[0].Points != 4 {
		t.Fatalf("leader = %+v", table[0])
	}
	if table[0].Position != 1 || table[2].Position != 3 {
		t.Fatalf("positions = %d..%d", table[0].Position, table[2].Position)
	}
	if table[1].Team != "Chile" || table[1].Points != 1 {
		t.Fatalf("runner up = %+v", table[1])
	}
	if table[2].Team != "Bolivia" || table[2].Points != 0 {
		t.Fatalf("bottom = %+v", table[2])
	}
	// The unplayed Bolivia vs Chile fixture contributes nothing.
	if table[2].Played != 1 {
		t.Fatalf("Bolivia played = %d, want 1", table[2].Played)
	}
}

func TestBuildStandingsKeepsHomeResultsWhileTableGrows(t *testing.T) {
	t.Parallel()

	// Every away team is new, so the table grows on each fixture while
	// the home side's row keeps collecting results.
	fixtures := []fixture.Fixture{
		fx("2024-06-01", "Group A", "Argentina", "Bolivia", ip(2), ip(0)),
		fx("2024-06-02", "Group A", "Argentina", "Chile", ip(1), ip(1)),
		fx("2024-06-03", "Group A", "Argentina", "Peru", ip(3), ip(1)),
		fx("2024-06-04", "Group A", "Argentina", "Uruguay", ip(1), ip(0)),
		fx("2024-06-05", "Group A", "Argentina", "Ecuador", ip(0), ip(2)),
	}

	table := BuildStandings(fixtures)

	if len(table) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(table))
	}
	if table[0].Team != "Argentina" {
		t.Fatalf("leader = %+v", table[0])
	}
	argentina := table[0]
	if argentina.Played != 5 || argentina.Won != 3 || argentina.Draw != 1 || argentina.Lost != 1 {
		t.Fatalf("Argentina record = %+v", argentina)
	}
	if argentina.Points != 10 {
		t.Fatalf("Argentina points = %d, want 10", argentina.Points)
	}
	if argentina.GoalsFor != 7 || argentina.GoalsAgainst != 4 {
		t.Fatalf("Argentina goals = %d-%d", argentina.GoalsFor, argentina.GoalsAgainst)
	}

	// Four decisive results and one draw across the table.
	points := 0
	for _, row := range table {
		points += row.Points
	}
	if points != 4*3+2 {
		t.Fatalf("points sum = %d, want 14", points)
	}
}

func TestBuildStandingsNameTieBreak(t *testing.T) {
	t.Parallel()

	// One 1-1 draw leaves both teams with identical points, goal
	// difference and goals; the name decides the order.
	table := BuildStandings([]fixture.Fixture{
		fx("2024-06-01", "Group B", "Zambia", "Angola", ip(1), ip(1)),
	})

	if len(table) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(table))
	}
	if table[0].Team != "Angola" || table[1].Team != "Zambia" {
		t.Fatalf("tie break order = %s, %s", table[0].Team, table[1].Team)
	}
}

func TestStandingsTableUnknownCompetition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	competitionRepo, fixtureRepo := seedRepos(t, workedFixtures())
	service := NewStandingsService(competitionRepo, fixtureRepo, nil)

	if _, err := service.Table(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing competition err = %v", err)
	}

	table, err := service.Table(ctx, "copa-2024")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("table size = %d", len(table))
	}
}
