package goal

import "context"

// Repository exposes goal event read and reload operations.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Goal, error)
	ReplaceCompetition(ctx context.Context, competitionID string, goals []Goal) error
}
