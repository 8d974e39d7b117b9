package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// FallbackHandler answers requests that match no route.
type FallbackHandler struct {
	Logger *zap.Logger
}

func (h *FallbackHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, h.Logger, http.StatusNotFound, "not found")
}

func (h *FallbackHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, r, h.Logger, http.StatusMethodNotAllowed, "method not allowed")
}
