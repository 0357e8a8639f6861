package fixture

import "testing"

func intPtr(v int) *int { return &v }

func TestOutcome(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		fx   Fixture
		want string
	}{
		{"home win", Fixture{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(2), AwayScore: intPtr(1)}, OutcomeHomeWin},
		{"away win", Fixture{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(0), AwayScore: intPtr(3)}, OutcomeAwayWin},
		{"draw", Fixture{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(1), AwayScore: intPtr(1)}, OutcomeDraw},
		{"unplayed", Fixture{HomeTeam: "A", AwayTeam: "B"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.fx.Outcome(); got != tc.want {
				t.Fatalf("Outcome() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGoalsBy(t *testing.T) {
	t.Parallel()

	fx := Fixture{HomeTeam: "Argentina", AwayTeam: "Chile", HomeScore: intPtr(2), AwayScore: intPtr(1)}

	scored, conceded, ok := fx.GoalsBy("Chile")
	if !ok || scored != 1 || conceded != 2 {
		t.Fatalf("GoalsBy(Chile) = %d/%d ok=%t", scored, conceded, ok)
	}
	if _, _, ok := fx.GoalsBy("Peru"); ok {
		t.Fatalf("team outside the fixture must not resolve")
	}

	unplayed := Fixture{HomeTeam: "Argentina", AwayTeam: "Chile"}
	if _, _, ok := unplayed.GoalsBy("Argentina"); ok {
		t.Fatalf("unresolved fixture must not resolve goals")
	}
}

func TestWinner(t *testing.T) {
	t.Parallel()

	fx := Fixture{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(0), AwayScore: intPtr(1)}
	if got := fx.Winner(); got != "B" {
		t.Fatalf("Winner() = %q", got)
	}
	draw := Fixture{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(1), AwayScore: intPtr(1)}
	if got := draw.Winner(); got != "" {
		t.Fatalf("draw winner must be empty, got %q", got)
	}
}
