package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/goal"
)

const dateLayout = "2006-01-02"

var fixtureColumns = []string{"date", "tournament", "home_team", "away_team", "home_score", "away_score"}
var goalColumns = []string{"date", "home_team", "away_team", "team", "scorer", "minute"}

// Dataset is one loaded results file: the competition it describes plus
// its fixtures in file order. Never mutated after load.
type Dataset struct {
	Competition competition.Competition
	Fixtures    []fixture.Fixture
}

// ResolvedCount returns the number of fixtures with a final score.
func (d Dataset) ResolvedCount() int {
	n := 0
	for _, f := range d.Fixtures {
		if f.Resolved() {
			n++
		}
	}
	return n
}

// Loader reads results and goalscorers CSV files into domain values.
type Loader struct{}

// LoadFixtures parses one results file. Rows without scores are kept as
// unplayed fixtures; a missing required column, a row with the wrong
// cell count or an unparseable date fails the whole load.
func (l Loader) LoadFixtures(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Dataset{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	competitionID := competition.SlugFromFile(base)
	fixtures, err := l.parseFixtures(f, competitionID)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", base, err)
	}

	ds := Dataset{
		Competition: competition.Competition{
			ID:         competitionID,
			Name:       strings.TrimSuffix(base, filepath.Ext(base)),
			SourceFile: base,
			LoadedAt:   time.Now().UTC(),
			Fixtures:   len(fixtures),
		},
		Fixtures: fixtures,
	}
	ds.Competition.Resolved = ds.ResolvedCount()
	return ds, nil
}

func (l Loader) parseFixtures(r io.Reader, competitionID string) ([]fixture.Fixture, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: empty file", ErrDataFormat)
	}
	cols, err := indexColumns(header, fixtureColumns)
	if err != nil {
		return nil, err
	}

	var fixtures []fixture.Fixture
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, row, err)
		}

		matchDate, err := time.Parse(dateLayout, strings.TrimSpace(record[cols["date"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid date %q", ErrDataFormat, row, record[cols["date"]])
		}

		homeTeam := fixture.NormalizeTeam(record[cols["home_team"]])
		awayTeam := fixture.NormalizeTeam(record[cols["away_team"]])
		if homeTeam == "" || awayTeam == "" {
			return nil, fmt.Errorf("%w: row %d: home_team and away_team are required", ErrDataFormat, row)
		}

		homeScore, err := parseScore(record[cols["home_score"]], row)
		if err != nil {
			return nil, err
		}
		awayScore, err := parseScore(record[cols["away_score"]], row)
		if err != nil {
			return nil, err
		}
		if homeScore == nil || awayScore == nil {
			// A single present score is not a playable result.
			homeScore, awayScore = nil, nil
		}

		fx := fixture.Fixture{
			CompetitionID: competitionID,
			MatchDate:     matchDate,
			Stage:         strings.TrimSpace(record[cols["tournament"]]),
			HomeTeam:      homeTeam,
			AwayTeam:      awayTeam,
			HomeScore:     homeScore,
			AwayScore:     awayScore,
		}
		if idx, ok := cols["city"]; ok {
			fx.City = strings.TrimSpace(record[idx])
		}
		if idx, ok := cols["country"]; ok {
			fx.Country = strings.TrimSpace(record[idx])
		}
		if idx, ok := cols["neutral"]; ok {
			fx.Neutral = parseFlag(record[idx])
		}
		fixtures = append(fixtures, fx)
	}

	return fixtures, nil
}

// LoadGoalscorers parses a goalscorers file for one competition. Rows
// without a usable minute are kept with a nil minute and excluded from
// interval buckets downstream.
func (l Loader) LoadGoalscorers(path, competitionID string) ([]goal.Goal, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	goals, err := l.parseGoalscorers(f, competitionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return goals, nil
}

func (l Loader) parseGoalscorers(r io.Reader, competitionID string) ([]goal.Goal, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: empty file", ErrDataFormat)
	}
	cols, err := indexColumns(header, goalColumns)
	if err != nil {
		return nil, err
	}

	var goals []goal.Goal
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, row, err)
		}

		matchDate, err := time.Parse(dateLayout, strings.TrimSpace(record[cols["date"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid date %q", ErrDataFormat, row, record[cols["date"]])
		}

		g := goal.Goal{
			CompetitionID: competitionID,
			MatchDate:     matchDate,
			HomeTeam:      fixture.NormalizeTeam(record[cols["home_team"]]),
			AwayTeam:      fixture.NormalizeTeam(record[cols["away_team"]]),
			Team:          fixture.NormalizeTeam(record[cols["team"]]),
			Scorer:        strings.TrimSpace(record[cols["scorer"]]),
		}
		if minute, convErr := strconv.Atoi(strings.TrimSpace(record[cols["minute"]])); convErr == nil && minute >= 0 {
			g.Minute = &minute
		}
		if idx, ok := cols["own_goal"]; ok {
			g.OwnGoal = parseFlag(record[idx])
		}
		if idx, ok := cols["penalty"]; ok {
			g.Penalty = parseFlag(record[idx])
		}
		goals = append(goals, g)
	}

	return goals, nil
}

// Sources lists the result files in a dataset directory, sorted by name.
func (l Loader) Sources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, dir)
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func indexColumns(header, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrDataFormat, name)
		}
	}
	return cols, nil
}

func parseScore(raw string, row int) (*int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	score, err := strconv.Atoi(value)
	if err != nil {
		// Placeholder markers like "-" or "TBD" mean the match has not
		// been played yet.
		return nil, nil
	}
	if score < 0 {
		return nil, fmt.Errorf("%w: row %d: negative score %q", ErrDataFormat, row, raw)
	}
	return &score, nil
}

func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y":
		return true
	default:
		return false
	}
}
