package handlers

import (
	"log-tail-service/internal/api/dto"
	"log-tail-service/internal/platform/obs"
	"log-tail-service/internal/ports"
	"net/http"

	"go.uber.org/zap"
)

// OutputsHandler serves the most recent records of the configured log.
type OutputsHandler struct {
	Reader ports.TailReader
	Logger *zap.Logger
}

func (h *OutputsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, issue := parseLimit(r.URL.Query())
	if issue != nil {
		writeValidationError(w, r, h.Logger, *issue)
		return
	}

	items, err := h.Reader.ReadTail(r.Context(), limit)
	if err != nil {
		h.Logger.Error("read tail failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.Int("limit", limit),
			zap.Error(err),
		)
		writeError(w, r, h.Logger, http.StatusInternalServerError, "internal server error")
		return
	}
	if items == nil {
		items = []string{}
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.OutputsResponse{
		Count: len(items),
		Items: items,
	})
}
