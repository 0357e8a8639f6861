package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/futstats/fixture-insights/internal/usecase"
)

func (h *Handler) RunReloadJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReloadJob")
	defer span.End()

	result, err := h.datasetService.Reload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type snapshotJobRequest struct {
	File string `json:"file" validate:"required"`
}

func (h *Handler) RunSnapshotJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSnapshotJob")
	defer span.End()

	var req snapshotJobRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.datasetService.Snapshot(ctx, req.File)
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot job failed", "file", req.File, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
