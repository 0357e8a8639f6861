package fixture

import "context"

// Repository exposes fixture read and reload operations.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Fixture, error)
	ReplaceCompetition(ctx context.Context, competitionID string, fixtures []Fixture) error
}
