package http

import (
	"net/http"
	"time"
)

// RootHandler serves the health check endpoint
type RootHandler struct{}

// NewRootHandler creates a new RootHandler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// RegisterRoutes registers the health check route
func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HandleHealth)
}

// HandleHealth reports that the API is up
func (h *RootHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
