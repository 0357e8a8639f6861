package memory

import (
	"context"
	"sync"

	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

// FixtureRepository keeps each competition's fixtures in load order.
type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures map[string][]fixture.Fixture
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{
		fixtures: make(map[string][]fixture.Fixture),
	}
}

func (r *FixtureRepository) ListByCompetition(_ context.Context, competitionID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.fixtures[competitionID]
	out := make([]fixture.Fixture, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *FixtureRepository) ReplaceCompetition(_ context.Context, competitionID string, fixtures []fixture.Fixture) error {
	stored := make([]fixture.Fixture, len(fixtures))
	copy(stored, fixtures)

	r.mu.Lock()
	r.fixtures[competitionID] = stored
	r.mu.Unlock()
	return nil
}
