package usecase

import (
	"context"
	"fmt"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

type MatchupService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
}

func NewMatchupService(competitionRepo competition.Repository, fixtureRepo fixture.Repository) *MatchupService {
	return &MatchupService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
	}
}

type HeadToHead struct {
	TeamA    string   `json:"teamA"`
	TeamB    string   `json:"teamB"`
	Matches  int      `json:"matches"`
	WinsA    int      `json:"winsA"`
	WinsB    int      `json:"winsB"`
	Draws    int      `json:"draws"`
	GoalsA   int      `json:"goalsA"`
	GoalsB   int      `json:"goalsB"`
	WinRateA *float64 `json:"winRateA"`
	WinRateB *float64 `json:"winRateB"`
	DrawRate *float64 `json:"drawRate"`
}

// HeadToHead tallies resolved meetings between two teams regardless of
// which side hosted.
func (s *MatchupService) HeadToHead(ctx context.Context, competitionID, teamA, teamB string) (HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.HeadToHead")
	defer span.End()

	teamA, teamB, fixtures, err := s.loadMatchup(ctx, competitionID, teamA, teamB)
	if err != nil {
		return HeadToHead{}, err
	}

	out := HeadToHead{TeamA: teamA, TeamB: teamB}
	for _, fx := range fixtures {
		scoredA, scoredB, ok := pairScores(fx, teamA, teamB)
		if !ok {
			continue
		}
		out.Matches++
		out.GoalsA += scoredA
		out.GoalsB += scoredB
		switch {
		case scoredA > scoredB:
			out.WinsA++
		case scoredA < scoredB:
			out.WinsB++
		default:
			out.Draws++
		}
	}

	if out.Matches > 0 {
		total := float64(out.Matches)
		rateA := float64(out.WinsA) / total
		rateB := float64(out.WinsB) / total
		rateDraw := float64(out.Draws) / total
		out.WinRateA = &rateA
		out.WinRateB = &rateB
		out.DrawRate = &rateDraw
	}
	return out, nil
}

type GoalScenarios struct {
	TeamA             string   `json:"teamA"`
	TeamB             string   `json:"teamB"`
	Matches           int      `json:"matches"`
	BothScored        int      `json:"bothScored"`
	NeitherScored     int      `json:"neitherScored"`
	OnlyA             int      `json:"onlyA"`
	OnlyB             int      `json:"onlyB"`
	BothScoredRate    *float64 `json:"bothScoredRate"`
	NeitherScoredRate *float64 `json:"neitherScoredRate"`
	OnlyARate         *float64 `json:"onlyARate"`
	OnlyBRate         *float64 `json:"onlyBRate"`
}

// GoalScenarios splits resolved meetings into both-scored, neither and
// one-sided scoring outcomes.
func (s *MatchupService) GoalScenarios(ctx context.Context, competitionID, teamA, teamB string) (GoalScenarios, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GoalScenarios")
	defer span.End()

	teamA, teamB, fixtures, err := s.loadMatchup(ctx, competitionID, teamA, teamB)
	if err != nil {
		return GoalScenarios{}, err
	}

	out := GoalScenarios{TeamA: teamA, TeamB: teamB}
	for _, fx := range fixtures {
		scoredA, scoredB, ok := pairScores(fx, teamA, teamB)
		if !ok {
			continue
		}
		out.Matches++
		switch {
		case scoredA > 0 && scoredB > 0:
			out.BothScored++
		case scoredA == 0 && scoredB == 0:
			out.NeitherScored++
		case scoredA > 0:
			out.OnlyA++
		default:
			out.OnlyB++
		}
	}

	if out.Matches > 0 {
		total := float64(out.Matches)
		both := float64(out.BothScored) / total
		neither := float64(out.NeitherScored) / total
		onlyA := float64(out.OnlyA) / total
		onlyB := float64(out.OnlyB) / total
		out.BothScoredRate = &both
		out.NeitherScoredRate = &neither
		out.OnlyARate = &onlyA
		out.OnlyBRate = &onlyB
	}
	return out, nil
}

func (s *MatchupService) loadMatchup(ctx context.Context, competitionID, teamA, teamB string) (string, string, []fixture.Fixture, error) {
	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return "", "", nil, err
	}
	teamA = fixture.NormalizeTeam(teamA)
	teamB = fixture.NormalizeTeam(teamB)
	if teamA == "" || teamB == "" {
		return "", "", nil, fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}
	if teamA == teamB {
		return "", "", nil, fmt.Errorf("%w: teams must differ", ErrInvalidInput)
	}

	fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return "", "", nil, fmt.Errorf("list fixtures by competition: %w", err)
	}
	return teamA, teamB, fixtures, nil
}

// pairScores resolves a fixture between exactly the two given teams into
// (goals by A, goals by B).
func pairScores(fx fixture.Fixture, teamA, teamB string) (int, int, bool) {
	if !fx.Resolved() || !fx.Involves(teamA) || !fx.Involves(teamB) {
		return 0, 0, false
	}
	scoredA, _, _ := fx.GoalsBy(teamA)
	scoredB, _, _ := fx.GoalsBy(teamB)
	return scoredA, scoredB, true
}
