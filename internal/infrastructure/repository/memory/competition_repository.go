package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/futstats/fixture-insights/internal/domain/competition"
)

type CompetitionRepository struct {
	mu           sync.RWMutex
	competitions map[string]competition.Competition
}

func NewCompetitionRepository() *CompetitionRepository {
	return &CompetitionRepository{
		competitions: make(map[string]competition.Competition),
	}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.competitions))
	for _, comp := range r.competitions {
		out = append(out, comp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comp, ok := r.competitions[id]
	return comp, ok, nil
}

func (r *CompetitionRepository) Upsert(_ context.Context, comp competition.Competition) error {
	r.mu.Lock()
	r.competitions[comp.ID] = comp
	r.mu.Unlock()
	return nil
}
