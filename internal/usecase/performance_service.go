package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

type PerformanceService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
}

func NewPerformanceService(competitionRepo competition.Repository, fixtureRepo fixture.Repository) *PerformanceService {
	return &PerformanceService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
	}
}

type PerformanceOptions struct {
	Stage string
	LastN int
}

type VenueSplit struct {
	Matches int `json:"matches"`
	Wins    int `json:"wins"`
	Draws   int `json:"draws"`
	Losses  int `json:"losses"`
}

type TeamPerformance struct {
	Team         string     `json:"team"`
	Stage        string     `json:"stage,omitempty"`
	Matches      int        `json:"matches"`
	Wins         int        `json:"wins"`
	Draws        int        `json:"draws"`
	Losses       int        `json:"losses"`
	GoalsFor     int        `json:"goalsFor"`
	GoalsAgainst int        `json:"goalsAgainst"`
	Home         VenueSplit `json:"home"`
	Away         VenueSplit `json:"away"`
	WinRate      *float64   `json:"winRate"`
}

// TeamPerformance tallies one team's resolved matches, optionally
// narrowed to a stage and to the most recent N matches by date.
func (s *PerformanceService) TeamPerformance(ctx context.Context, competitionID, team string, opts PerformanceOptions) (TeamPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.TeamPerformance")
	defer span.End()

	team, matches, err := s.teamMatches(ctx, competitionID, team, opts)
	if err != nil {
		return TeamPerformance{}, err
	}

	out := TeamPerformance{Team: team, Stage: strings.TrimSpace(opts.Stage)}
	for _, fx := range matches {
		scored, conceded, _ := fx.GoalsBy(team)
		out.Matches++
		out.GoalsFor += scored
		out.GoalsAgainst += conceded

		split := &out.Away
		if fixture.NormalizeTeam(fx.HomeTeam) == team {
			split = &out.Home
		}
		split.Matches++
		switch {
		case scored > conceded:
			out.Wins++
			split.Wins++
		case scored < conceded:
			out.Losses++
			split.Losses++
		default:
			out.Draws++
			split.Draws++
		}
	}

	if out.Matches > 0 {
		rate := float64(out.Wins) / float64(out.Matches)
		out.WinRate = &rate
	}
	return out, nil
}

type ScoringRate struct {
	Team    string   `json:"team"`
	Matches int      `json:"matches"`
	Scored  int      `json:"scored"`
	Rate    *float64 `json:"rate"`
}

// ScoringRate reports the share of a team's resolved matches in which it
// scored at least once.
func (s *PerformanceService) ScoringRate(ctx context.Context, competitionID, team string, lastN int) (ScoringRate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PerformanceService.ScoringRate")
	defer span.End()

	team, matches, err := s.teamMatches(ctx, competitionID, team, PerformanceOptions{LastN: lastN})
	if err != nil {
		return ScoringRate{}, err
	}

	out := ScoringRate{Team: team, Matches: len(matches)}
	for _, fx := range matches {
		if scored, _, _ := fx.GoalsBy(team); scored > 0 {
			out.Scored++
		}
	}
	if out.Matches > 0 {
		rate := float64(out.Scored) / float64(out.Matches)
		out.Rate = &rate
	}
	return out, nil
}

// teamMatches returns the team's resolved matches, newest first, after
// stage and last-N filters.
func (s *PerformanceService) teamMatches(ctx context.Context, competitionID, team string, opts PerformanceOptions) (string, []fixture.Fixture, error) {
	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return "", nil, err
	}
	team = fixture.NormalizeTeam(team)
	if team == "" {
		return "", nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if opts.LastN < 0 {
		return "", nil, fmt.Errorf("%w: last must be >= 0", ErrInvalidInput)
	}
	stage := strings.TrimSpace(opts.Stage)

	fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return "", nil, fmt.Errorf("list fixtures by competition: %w", err)
	}

	var matches []fixture.Fixture
	for _, fx := range fixtures {
		if !fx.Resolved() || !fx.Involves(team) {
			continue
		}
		if stage != "" && !strings.EqualFold(fx.Stage, stage) {
			continue
		}
		matches = append(matches, fx)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate.After(matches[j].MatchDate)
	})
	if opts.LastN > 0 && len(matches) > opts.LastN {
		matches = matches[:opts.LastN]
	}
	return team, matches, nil
}
