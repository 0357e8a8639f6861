package goal

import "time"

// Goal is one scorer event from a goalscorers file.
type Goal struct {
	CompetitionID string
	MatchDate     time.Time
	HomeTeam      string
	AwayTeam      string
	Team          string
	Scorer        string
	Minute        *int
	OwnGoal       bool
	Penalty       bool
}
