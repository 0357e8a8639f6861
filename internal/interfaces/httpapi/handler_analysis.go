package httpapi

import (
	"net/http"
	"strings"

	"github.com/futstats/fixture-insights/internal/usecase"
)

type matchupQuery struct {
	TeamA string `validate:"required"`
	TeamB string `validate:"required"`
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	query := matchupQuery{
		TeamA: strings.TrimSpace(r.URL.Query().Get("team_a")),
		TeamB: strings.TrimSpace(r.URL.Query().Get("team_b")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchupService.HeadToHead(ctx, competitionID, query.TeamA, query.TeamB)
	if err != nil {
		h.logger.WarnContext(ctx, "head to head failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetGoalScenarios(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalScenarios")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	query := matchupQuery{
		TeamA: strings.TrimSpace(r.URL.Query().Get("team_a")),
		TeamB: strings.TrimSpace(r.URL.Query().Get("team_b")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchupService.GoalScenarios(ctx, competitionID, query.TeamA, query.TeamB)
	if err != nil {
		h.logger.WarnContext(ctx, "goal scenarios failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPerformance")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	team := r.PathValue("team")
	lastN, err := lastNFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.performanceService.TeamPerformance(ctx, competitionID, team, usecase.PerformanceOptions{
		Stage: strings.TrimSpace(r.URL.Query().Get("stage")),
		LastN: lastN,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "team performance failed", "competition_id", competitionID, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetScoringRate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoringRate")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	team := r.PathValue("team")
	lastN, err := lastNFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.performanceService.ScoringRate(ctx, competitionID, team, lastN)
	if err != nil {
		h.logger.WarnContext(ctx, "scoring rate failed", "competition_id", competitionID, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetGoalDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalDistribution")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	result, err := h.goalsService.Distribution(ctx, competitionID, usecase.DistributionOptions{
		Stage: strings.TrimSpace(r.URL.Query().Get("stage")),
		Team:  strings.TrimSpace(r.URL.Query().Get("team")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "goal distribution failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) GetGoalIntervals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGoalIntervals")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	team := strings.TrimSpace(r.URL.Query().Get("team"))
	result, err := h.goalsService.Intervals(ctx, competitionID, team)
	if err != nil {
		h.logger.WarnContext(ctx, "goal intervals failed", "competition_id", competitionID, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
