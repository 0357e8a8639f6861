package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/futstats/fixture-insights/internal/domain/standings"
	"github.com/futstats/fixture-insights/internal/domain/summary"
)

// SummaryCSV writes summary rows in their given order. Undefined rates
// export as empty cells so a zero-resolved group is distinguishable
// from a group that lost everything.
func SummaryCSV(rows []summary.Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"group", "played", "resolved", "wins", "draws", "losses",
		"goals_for", "goals_against", "win_rate", "draw_rate", "loss_rate",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write summary header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Group,
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Resolved),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			rateCell(row.WinRate),
			rateCell(row.DrawRate),
			rateCell(row.LossRate),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write summary row %s: %w", row.Group, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush summary csv: %w", err)
	}
	return buf.Bytes(), nil
}

// StandingsCSV writes a ranked table.
func StandingsCSV(table []standings.Standing) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"position", "team", "played", "won", "draw", "lost",
		"goals_for", "goals_against", "goal_difference", "points",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write standings header: %w", err)
	}
	for _, s := range table {
		record := []string{
			strconv.Itoa(s.Position),
			s.Team,
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Draw),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
			strconv.Itoa(s.GoalDifference),
			strconv.Itoa(s.Points),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write standings row %s: %w", s.Team, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush standings csv: %w", err)
	}
	return buf.Bytes(), nil
}

func rateCell(rate *float64) string {
	if rate == nil {
		return ""
	}
	return strconv.FormatFloat(*rate, 'f', 4, 64)
}
