package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFixturesKeepsUnplayedRows(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "copa-america-2024.csv", `date,tournament,home_team,away_team,home_score,away_score
2024-06-20,Group A,Argentina,Canada,2,0
2024-06-21,Group A,Peru,Chile,0,0
2024-07-14,Final,Argentina,Colombia,,
`)

	var loader Loader
	ds, err := loader.LoadFixtures(path)
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}

	if got := len(ds.Fixtures); got != 3 {
		t.Fatalf("expected 3 fixtures, got %d", got)
	}
	if got := ds.ResolvedCount(); got != 2 {
		t.Fatalf("expected 2 resolved fixtures, got %d", got)
	}
	if ds.Fixtures[2].Resolved() {
		t.Fatalf("final should be unplayed")
	}
	if ds.Competition.ID != "copa-america-2024" {
		t.Fatalf("unexpected competition id %q", ds.Competition.ID)
	}
	if ds.Competition.Fixtures != 3 || ds.Competition.Resolved != 2 {
		t.Fatalf("unexpected competition counts %+v", ds.Competition)
	}
}

func TestLoadFixturesMissingScoreColumn(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "results.csv", `date,tournament,home_team,away_team,away_score
2024-06-20,Group A,Argentina,Canada,0
`)

	var loader Loader
	if _, err := loader.LoadFixtures(path); !errors.Is(err, ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestLoadFixturesSourceMissing(t *testing.T) {
	t.Parallel()

	var loader Loader
	if _, err := loader.LoadFixtures(filepath.Join(t.TempDir(), "nope.csv")); !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadFixturesBadDate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "results.csv", `date,tournament,home_team,away_team,home_score,away_score
20 June 2024,Group A,Argentina,Canada,2,0
`)

	var loader Loader
	if _, err := loader.LoadFixtures(path); !errors.Is(err, ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestLoadFixturesRaggedRow(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "results.csv", `date,tournament,home_team,away_team,home_score,away_score
2024-06-20,Group A,Argentina,Canada,2
`)

	var loader Loader
	if _, err := loader.LoadFixtures(path); !errors.Is(err, ErrDataFormat) {
		t.Fatalf("expected ErrDataFormat, got %v", err)
	}
}

func TestLoadFixturesPlaceholderScoreIsUnplayed(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "results.csv", `date,tournament,home_team,away_team,home_score,away_score
2024-06-20,Group A,Argentina,Canada,TBD,TBD
2024-06-21,Group A,Peru,Chile,1,
`)

	var loader Loader
	ds, err := loader.LoadFixtures(path)
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	if ds.ResolvedCount() != 0 {
		t.Fatalf("expected no resolved fixtures, got %d", ds.ResolvedCount())
	}
	if ds.Fixtures[1].HomeScore != nil {
		t.Fatalf("half-scored row must be fully unplayed")
	}
}

func TestLoadFixturesOptionalColumns(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "results.csv", `date,tournament,home_team,away_team,home_score,away_score,city,country,neutral
2024-06-20,Group A,Argentina,Canada,2,0,Atlanta,USA,true
`)

	var loader Loader
	ds, err := loader.LoadFixtures(path)
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	fx := ds.Fixtures[0]
	if fx.City != "Atlanta" || fx.Country != "USA" || !fx.Neutral {
		t.Fatalf("optional columns not preserved: %+v", fx)
	}
}

func TestLoadGoalscorers(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "goalscorers.csv", `date,home_team,away_team,team,scorer,minute,own_goal,penalty
2024-06-20,Argentina,Canada,Argentina,Julian Alvarez,49,0,0
2024-06-20,Argentina,Canada,Argentina,Lautaro Martinez,88,0,0
2024-06-21,Peru,Chile,Peru,Unknown,,0,0
`)

	var loader Loader
	goals, err := loader.LoadGoalscorers(path, "copa-america-2024")
	if err != nil {
		t.Fatalf("LoadGoalscorers: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}
	if goals[0].Minute == nil || *goals[0].Minute != 49 {
		t.Fatalf("unexpected minute %+v", goals[0].Minute)
	}
	if goals[2].Minute != nil {
		t.Fatalf("blank minute must stay nil")
	}
	if goals[0].CompetitionID != "copa-america-2024" {
		t.Fatalf("unexpected competition id %q", goals[0].CompetitionID)
	}
}

func TestSourcesListsOnlyCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var loader Loader
	paths, err := loader.Sources(dir)
	if err != nil {
		t.Fatalf("Sources: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 sources, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.csv" || filepath.Base(paths[1]) != "b.csv" {
		t.Fatalf("sources not sorted: %v", paths)
	}

	if _, err := loader.Sources(filepath.Join(dir, "missing")); !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}
