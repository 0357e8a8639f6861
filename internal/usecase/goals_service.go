package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/goal"
)

type GoalsService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
	goalRepo        goal.Repository
}

func NewGoalsService(competitionRepo competition.Repository, fixtureRepo fixture.Repository, goalRepo goal.Repository) *GoalsService {
	return &GoalsService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
		goalRepo:        goalRepo,
	}
}

type DistributionOptions struct {
	Stage string
	Team  string
}

type GoalBucket struct {
	Label   string   `json:"label"`
	Matches int      `json:"matches"`
	Share   *float64 `json:"share"`
}

type GoalDistribution struct {
	Matches int          `json:"matches"`
	Buckets []GoalBucket `json:"buckets"`
}

var totalGoalLabels = []string{"0", "1", "2", "3", "4+"}

// Distribution buckets resolved matches by combined goals: 0, 1, 2, 3
// and 4 or more.
func (s *GoalsService) Distribution(ctx context.Context, competitionID string, opts DistributionOptions) (GoalDistribution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalsService.Distribution")
	defer span.End()

	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return GoalDistribution{}, err
	}
	stage := strings.TrimSpace(opts.Stage)
	team := fixture.NormalizeTeam(opts.Team)

	fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return GoalDistribution{}, fmt.Errorf("list fixtures by competition: %w", err)
	}

	counts := make([]int, len(totalGoalLabels))
	matches := 0
	for _, fx := range fixtures {
		if !fx.Resolved() {
			continue
		}
		if stage != "" && !strings.EqualFold(fx.Stage, stage) {
			continue
		}
		if team != "" && !fx.Involves(team) {
			continue
		}
		matches++
		bucket := fx.TotalGoals()
		if bucket >= len(counts) {
			bucket = len(counts) - 1
		}
		counts[bucket]++
	}

	out := GoalDistribution{Matches: matches, Buckets: make([]GoalBucket, len(counts))}
	for idx, count := range counts {
		b := GoalBucket{Label: totalGoalLabels[idx], Matches: count}
		if matches > 0 {
			share := float64(count) / float64(matches)
			b.Share = &share
		}
		out.Buckets[idx] = b
	}
	return out, nil
}

type IntervalBucket struct {
	Label string   `json:"label"`
	Goals int      `json:"goals"`
	Share *float64 `json:"share"`
}

type GoalIntervals struct {
	Goals   int              `json:"goals"`
	Buckets []IntervalBucket `json:"buckets"`
}

// Minute buckets follow the usual broadcast split of a 90 minute match.
var intervalBounds = []struct {
	label    string
	from, to int
}{
	{"0-15", 0, 15},
	{"16-30", 16, 30},
	{"31-45", 31, 45},
	{"46-60", 46, 60},
	{"61-75", 61, 75},
	{"76-90", 76, 90},
}

// Intervals buckets scorer events by match minute. Events without a
// minute, or outside regulation time, are left out of every bucket.
func (s *GoalsService) Intervals(ctx context.Context, competitionID, team string) (GoalIntervals, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GoalsService.Intervals")
	defer span.End()

	competitionID, err := requireCompetition(ctx, s.competitionRepo, competitionID)
	if err != nil {
		return GoalIntervals{}, err
	}
	if s.goalRepo == nil {
		return GoalIntervals{}, fmt.Errorf("%w: no goalscorers data loaded", ErrDependencyUnavailable)
	}
	team = fixture.NormalizeTeam(team)

	goals, err := s.goalRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return GoalIntervals{}, fmt.Errorf("list goals by competition: %w", err)
	}

	counts := make([]int, len(intervalBounds))
	total := 0
	for _, g := range goals {
		if g.Minute == nil {
			continue
		}
		if team != "" && !strings.EqualFold(fixture.NormalizeTeam(g.Team), team) {
			continue
		}
		minute := *g.Minute
		for idx, bound := range intervalBounds {
			if minute >= bound.from && minute <= bound.to {
				counts[idx]++
				total++
				break
			}
		}
	}

	out := GoalIntervals{Goals: total, Buckets: make([]IntervalBucket, len(counts))}
	for idx, count := range counts {
		b := IntervalBucket{Label: intervalBounds[idx].label, Goals: count}
		if total > 0 {
			share := float64(count) / float64(total)
			b.Share = &share
		}
		out.Buckets[idx] = b
	}
	return out, nil
}
