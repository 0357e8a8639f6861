package summary

// GroupKey names the fixture attribute summary rows are grouped on.
type GroupKey string

const (
	GroupByHomeTeam GroupKey = "home_team"
	GroupByTeam     GroupKey = "team"
	GroupByStage    GroupKey = "stage"
)

// ParseGroupKey validates a raw group key value.
func ParseGroupKey(value string) (GroupKey, bool) {
	switch GroupKey(value) {
	case GroupByHomeTeam, GroupByTeam, GroupByStage:
		return GroupKey(value), true
	default:
		return "", false
	}
}

// Partitions reports whether the key assigns each fixture to exactly
// one group. Grouping by team credits a fixture to both participants.
func (k GroupKey) Partitions() bool {
	return k != GroupByTeam
}

// Row is one aggregated group of fixtures. Rate fields are nil when the
// group has no resolved fixtures; they are never zero-filled or NaN.
type Row struct {
	Group        string   `json:"group"`
	Played       int      `json:"played"`
	Resolved     int      `json:"resolved"`
	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	GoalsFor     int      `json:"goalsFor"`
	GoalsAgainst int      `json:"goalsAgainst"`
	WinRate      *float64 `json:"winRate"`
	DrawRate     *float64 `json:"drawRate"`
	LossRate     *float64 `json:"lossRate"`
}
