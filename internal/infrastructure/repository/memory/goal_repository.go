package memory

import (
	"context"
	"sync"

	"github.com/futstats/fixture-insights/internal/domain/goal"
)

type GoalRepository struct {
	mu    sync.RWMutex
	goals map[string][]goal.Goal
}

func NewGoalRepository() *GoalRepository {
	return &GoalRepository{
		goals: make(map[string][]goal.Goal),
	}
}

func (r *GoalRepository) ListByCompetition(_ context.Context, competitionID string) ([]goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.goals[competitionID]
	out := make([]goal.Goal, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *GoalRepository) ReplaceCompetition(_ context.Context, competitionID string, goals []goal.Goal) error {
	stored := make([]goal.Goal, len(goals))
	copy(stored, goals)

	r.mu.Lock()
	r.goals[competitionID] = stored
	r.mu.Unlock()
	return nil
}
