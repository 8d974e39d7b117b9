package api

import (
	"log-tail-service/internal/api/handlers"
	"log-tail-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the TailReader port, never the concrete file adapter.
func NewRouter(reader ports.TailReader, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	health := &handlers.HealthHandler{Logger: logger}
	outputs := &handlers.OutputsHandler{Reader: reader, Logger: logger}
	fallback := &handlers.FallbackHandler{Logger: logger}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(fallback.NotFound)
	r.MethodNotAllowed(fallback.MethodNotAllowed)

	r.Get("/health", health.Health)
	r.Get("/outputs", outputs.List)

	return r
}
