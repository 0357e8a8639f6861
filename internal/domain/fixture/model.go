package fixture

import (
	"strings"
	"time"
)

const (
	OutcomeHomeWin = "HOME_WIN"
	OutcomeAwayWin = "AWAY_WIN"
	OutcomeDraw    = "DRAW"
)

// Fixture is one row of a results file: a match that is either played
// (both scores recorded) or still scheduled (no scores yet).
type Fixture struct {
	CompetitionID string
	MatchDate     time.Time
	Stage         string
	HomeTeam      string
	AwayTeam      string
	HomeScore     *int
	AwayScore     *int
	City          string
	Country       string
	Neutral       bool
}

// Resolved reports whether the fixture has a final score.
func (f Fixture) Resolved() bool {
	return f.HomeScore != nil && f.AwayScore != nil
}

// Outcome returns the result seen from the home side. Empty for
// unresolved fixtures.
func (f Fixture) Outcome() string {
	if !f.Resolved() {
		return ""
	}
	switch {
	case *f.HomeScore > *f.AwayScore:
		return OutcomeHomeWin
	case *f.HomeScore < *f.AwayScore:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// TotalGoals returns the combined score, or 0 for unresolved fixtures.
func (f Fixture) TotalGoals() int {
	if !f.Resolved() {
		return 0
	}
	return *f.HomeScore + *f.AwayScore
}

// Winner returns the winning team name, empty on draws and unresolved
// fixtures.
func (f Fixture) Winner() string {
	switch f.Outcome() {
	case OutcomeHomeWin:
		return f.HomeTeam
	case OutcomeAwayWin:
		return f.AwayTeam
	default:
		return ""
	}
}

// Involves reports whether the given team plays in this fixture.
func (f Fixture) Involves(team string) bool {
	team = NormalizeTeam(team)
	return NormalizeTeam(f.HomeTeam) == team || NormalizeTeam(f.AwayTeam) == team
}

// GoalsBy returns the goals scored and conceded by the given team.
// ok is false when the team did not play or the fixture is unresolved.
func (f Fixture) GoalsBy(team string) (scored, conceded int, ok bool) {
	if !f.Resolved() || !f.Involves(team) {
		return 0, 0, false
	}
	if NormalizeTeam(f.HomeTeam) == NormalizeTeam(team) {
		return *f.HomeScore, *f.AwayScore, true
	}
	return *f.AwayScore, *f.HomeScore, true
}

func NormalizeTeam(value string) string {
	return strings.TrimSpace(value)
}
