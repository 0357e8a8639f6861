package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/futstats/fixture-insights/internal/domain/competition"
	"github.com/futstats/fixture-insights/internal/domain/fixture"
	"github.com/futstats/fixture-insights/internal/domain/summary"
	"github.com/futstats/fixture-insights/internal/exporter"
	"github.com/futstats/fixture-insights/internal/render"
	"github.com/futstats/fixture-insights/internal/usecase"
)

type Handler struct {
	fixtureService     *usecase.FixtureService
	summaryService     *usecase.SummaryService
	standingsService   *usecase.StandingsService
	matchupService     *usecase.MatchupService
	performanceService *usecase.PerformanceService
	goalsService       *usecase.GoalsService
	datasetService     *usecase.DatasetService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	summaryService *usecase.SummaryService,
	standingsService *usecase.StandingsService,
	matchupService *usecase.MatchupService,
	performanceService *usecase.PerformanceService,
	goalsService *usecase.GoalsService,
	datasetService *usecase.DatasetService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		fixtureService:     fixtureService,
		summaryService:     summaryService,
		standingsService:   standingsService,
		matchupService:     matchupService,
		performanceService: performanceService,
		goalsService:       goalsService,
		datasetService:     datasetService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	competitions, err := h.fixtureService.ListCompetitions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]competitionDTO, 0, len(competitions))
	for _, c := range competitions {
		items = append(items, competitionToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListFixturesByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByCompetition")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	fixtures, err := h.fixtureService.ListByCompetition(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	key, err := groupKeyFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.summaryService.Summarize(ctx, competitionID, key, usecase.SummarizeOptions{
		SortBy:     strings.TrimSpace(r.URL.Query().Get("sort_by")),
		Descending: strings.EqualFold(r.URL.Query().Get("order"), "desc"),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "summarize failed", "competition_id", competitionID, "group_by", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetSummaryChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummaryChart")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	key, err := groupKeyFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	kindValue := r.URL.Query().Get("kind")
	if strings.TrimSpace(kindValue) == "" {
		kindValue = string(render.ChartBar)
	}

	rows, err := h.summaryService.Summarize(ctx, competitionID, key, usecase.SummarizeOptions{})
	if err != nil {
		h.logger.WarnContext(ctx, "summarize for chart failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	title := fmt.Sprintf("%s by %s", competitionID, key)
	artifact, err := render.Summary(rows, render.ChartKind(strings.ToLower(strings.TrimSpace(kindValue))), title)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}

func (h *Handler) ExportSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSummary")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	key, err := groupKeyFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.summaryService.Summarize(ctx, competitionID, key, usecase.SummarizeOptions{})
	if err != nil {
		h.logger.WarnContext(ctx, "summarize for export failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	data, err := exporter.SummaryCSV(rows)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("%s-summary-%s.csv", competitionID, key), data)
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	table, err := h.standingsService.Table(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "standings failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, table)
}

func (h *Handler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandings")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	table, err := h.standingsService.Table(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "standings for export failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	data, err := exporter.StandingsCSV(table)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeCSV(w, fmt.Sprintf("%s-standings.csv", competitionID), data)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func groupKeyFromQuery(r *http.Request) (summary.GroupKey, error) {
	value := r.URL.Query().Get("group_by")
	if strings.TrimSpace(value) == "" {
		return summary.GroupByHomeTeam, nil
	}
	key, ok := summary.ParseGroupKey(value)
	if !ok {
		return "", fmt.Errorf("%w: unknown group key %q", usecase.ErrInvalidInput, value)
	}
	return key, nil
}

func lastNFromQuery(r *http.Request) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get("last"))
	if value == "" {
		return 0, nil
	}
	lastN, err := strconv.Atoi(value)
	if err != nil || lastN < 0 {
		return 0, fmt.Errorf("%w: last must be a non-negative integer", usecase.ErrInvalidInput)
	}
	return lastN, nil
}

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type competitionDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Season   string `json:"season,omitempty"`
	Fixtures int    `json:"fixtures"`
	Resolved int    `json:"resolved"`
	LoadedAt string `json:"loadedAt"`
}

type fixtureDTO struct {
	MatchDate string `json:"matchDate"`
	Stage     string `json:"stage,omitempty"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	Neutral   bool   `json:"neutral"`
	Resolved  bool   `json:"resolved"`
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{
		ID:       v.ID,
		Name:     v.Name,
		Season:   v.Season,
		Fixtures: v.Fixtures,
		Resolved: v.Resolved,
		LoadedAt: v.LoadedAt.UTC().Format(time.RFC3339),
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		MatchDate: v.MatchDate.Format("2006-01-02"),
		Stage:     v.Stage,
		HomeTeam:  v.HomeTeam,
		AwayTeam:  v.AwayTeam,
		HomeScore: v.HomeScore,
		AwayScore: v.AwayScore,
		City:      v.City,
		Country:   v.Country,
		Neutral:   v.Neutral,
		Resolved:  v.Resolved(),
	}
}
