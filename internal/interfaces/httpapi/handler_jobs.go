package httpapi

import "net/http"

// RunAggregateJob aggregates every pool. It is meant for a scheduler, not for participants.
func (h *Handler) RunAggregateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAggregateJob")
	defer span.End()

	result, err := h.pencaService.AggregateAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "run aggregate job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "run aggregate job completed",
		"success", result.SuccessCount,
		"skipped", result.SkippedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, aggregateAllToDTO(result))
}
