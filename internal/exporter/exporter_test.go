package exporter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/futstats/fixture-insights/internal/domain/standings"
	"github.com/futstats/fixture-insights/internal/domain/summary"
)

func rate(v float64) *float64 { return &v }

func TestSummaryCSV(t *testing.T) {
	t.Parallel()

	rows := []summary.Row{
		{Group: "Argentina", Played: 2, Resolved: 2, Wins: 1, Draws: 1,
			GoalsFor: 2, GoalsAgainst: 1,
			WinRate: rate(0.5), DrawRate: rate(0.5), LossRate: rate(0)},
		{Group: "Brazil", Played: 1, Resolved: 0},
	}

	data, err := SummaryCSV(rows)
	if err != nil {
		t.Fatalf("SummaryCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reparse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("record count = %d, want header + 2 rows", len(records))
	}
	if records[1][0] != "Argentina" || records[1][8] != "0.5000" {
		t.Fatalf("unexpected played row %v", records[1])
	}
	// Undefined rates must be empty, not "0".
	if records[2][8] != "" || records[2][9] != "" || records[2][10] != "" {
		t.Fatalf("unresolved group must export empty rate cells, got %v", records[2])
	}
}

func TestStandingsCSV(t *testing.T) {
	t.Parallel()

	table := []standings.Standing{
		{Position: 1, Team: "Argentina", Played: 2, Won: 1, Draw: 1,
			GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 4},
	}

	data, err := StandingsCSV(table)
	if err != nil {
		t.Fatalf("StandingsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reparse csv: %v", err)
	}
	if len(records) != 2 || records[1][1] != "Argentina" || records[1][9] != "4" {
		t.Fatalf("unexpected standings export %v", records)
	}
}
