package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

// FixtureArchive persists loaded fixtures so past snapshots survive
// service restarts. The in-memory repositories stay authoritative; the
// archive is written after each reload and read only by offline tools.
type FixtureArchive struct {
	db *sqlx.DB
}

func NewFixtureArchive(db *sqlx.DB) *FixtureArchive {
	return &FixtureArchive{db: db}
}

type fixtureRow struct {
	CompetitionID string    `db:"competition_id"`
	MatchDate     time.Time `db:"match_date"`
	Stage         string    `db:"stage"`
	HomeTeam      string    `db:"home_team"`
	AwayTeam      string    `db:"away_team"`
	HomeScore     *int      `db:"home_score"`
	AwayScore     *int      `db:"away_score"`
	City          string    `db:"city"`
	Country       string    `db:"country"`
	Neutral       bool      `db:"neutral"`
	Position      int       `db:"position"`
}

const deleteFixturesSQL = `DELETE FROM fixture_archive WHERE competition_id = $1`

const insertFixtureSQL = `
INSERT INTO fixture_archive (
	competition_id, match_date, stage, home_team, away_team,
	home_score, away_score, city, country, neutral, position
) VALUES (
	:competition_id, :match_date, :stage, :home_team, :away_team,
	:home_score, :away_score, :city, :country, :neutral, :position
)`

const listFixturesSQL = `
SELECT competition_id, match_date, stage, home_team, away_team,
       home_score, away_score, city, country, neutral, position
  FROM fixture_archive
 WHERE competition_id = $1
 ORDER BY position`

func (r *FixtureArchive) Archive(ctx context.Context, competitionID string, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteFixturesSQL, competitionID); err != nil {
		return fmt.Errorf("clear archive competition=%s: %w", competitionID, err)
	}

	rows := make([]fixtureRow, 0, len(fixtures))
	for idx, fx := range fixtures {
		rows = append(rows, fixtureRow{
			CompetitionID: competitionID,
			MatchDate:     fx.MatchDate,
			Stage:         fx.Stage,
			HomeTeam:      fx.HomeTeam,
			AwayTeam:      fx.AwayTeam,
			HomeScore:     fx.HomeScore,
			AwayScore:     fx.AwayScore,
			City:          fx.City,
			Country:       fx.Country,
			Neutral:       fx.Neutral,
			Position:      idx,
		})
	}
	if len(rows) > 0 {
		if _, err := tx.NamedExecContext(ctx, insertFixtureSQL, rows); err != nil {
			return fmt.Errorf("insert archive rows competition=%s: %w", competitionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive tx: %w", err)
	}
	return nil
}

func (r *FixtureArchive) ListByCompetition(ctx context.Context, competitionID string) ([]fixture.Fixture, error) {
	var rows []fixtureRow
	if err := r.db.SelectContext(ctx, &rows, listFixturesSQL, competitionID); err != nil {
		return nil, fmt.Errorf("select archive competition=%s: %w", competitionID, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixture.Fixture{
			CompetitionID: row.CompetitionID,
			MatchDate:     row.MatchDate,
			Stage:         row.Stage,
			HomeTeam:      row.HomeTeam,
			AwayTeam:      row.AwayTeam,
			HomeScore:     row.HomeScore,
			AwayScore:     row.AwayScore,
			City:          row.City,
			Country:       row.Country,
			Neutral:       row.Neutral,
		})
	}
	return out, nil
}
