package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/futstats/fixture-insights/internal/domain/competition"
)

// requireCompetition validates the id and confirms the competition is
// loaded before any aggregation runs against it.
func requireCompetition(ctx context.Context, repo competition.Repository, competitionID string) (string, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return "", fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	_, exists, err := repo.GetByID(ctx, competitionID)
	if err != nil {
		return "", fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return competitionID, nil
}
