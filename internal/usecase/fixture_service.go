package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
)

type FixtureService struct {
	competitionRepo competition.Repository
	fixtureRepo     fixture.Repository
}

func NewFixtureService(competitionRepo competition.Repository, fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{
		competitionRepo: competitionRepo,
		fixtureRepo:     fixtureRepo,
	}
}

func (s *FixtureService) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListCompetitions")
	defer span.End()

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *FixtureService) ListByCompetition(ctx context.Context, competitionID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByCompetition")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	fixtures, err := s.fixtureRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by competition: %w", err)
	}

	return fixtures, nil
}
