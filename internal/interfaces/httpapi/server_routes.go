package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/fixtures", handler.ListFixturesByCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/summary", handler.GetSummary)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/summary/chart", handler.GetSummaryChart)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/summary/export", handler.ExportSummary)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/standings/export", handler.ExportStandings)
}

func registerAnalysisRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions/{competitionID}/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/goal-scenarios", handler.GetGoalScenarios)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/teams/{team}/performance", handler.GetTeamPerformance)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/teams/{team}/scoring-rate", handler.GetScoringRate)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/goals/distribution", handler.GetGoalDistribution)
	mux.HandleFunc("GET /v1/competitions/{competitionID}/goals/intervals", handler.GetGoalIntervals)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/reload", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReloadJob)))
	mux.Handle("POST /v1/internal/jobs/snapshot", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSnapshotJob)))
}
