package handlers

import (
	"encoding/json"
	"log-tail-service/internal/api/dto"
	"log-tail-service/internal/platform/obs"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode failed",
			zap.String("req_id", obs.RequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, msg string) {
	writeJSON(w, r, logger, status, map[string]string{"error": msg})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, issue dto.ValidationIssue) {
	writeJSON(w, r, logger, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
		Detail: []dto.ValidationIssue{issue},
	})
}
