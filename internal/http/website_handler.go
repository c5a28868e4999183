package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

// WebsiteHandler serves the contractor website endpoints
type WebsiteHandler struct {
	service domain.WebsiteService
	logger  logger.Logger
}

// NewWebsiteHandler creates a new WebsiteHandler
func NewWebsiteHandler(service domain.WebsiteService, logger logger.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the website REST routes
func (h *WebsiteHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/websites", h.HandleUpsert)
	mux.HandleFunc("GET /api/websites", h.HandleList)
	mux.HandleFunc("GET /api/websites/{id}", h.HandleGet)
	mux.HandleFunc("DELETE /api/websites/{id}", h.HandleDelete)
	mux.HandleFunc("DELETE /api/websites", h.HandleDeleteAll)
}

// HandleUpsert creates or replaces a website record. Repeated posts with the
// same id overwrite the stored content but keep the original creation time.
func (h *WebsiteHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertWebsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	website, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to save website")
		WriteJSONError(w, "Failed to save website", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"website": website,
	})
}

// HandleList returns every website, newest first
func (h *WebsiteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	websites, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list websites")
		WriteJSONError(w, "Failed to list websites", http.StatusInternalServerError)
		return
	}

	if websites == nil {
		websites = []*domain.Website{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"websites": websites,
	})
}

// HandleGet returns a single website by id
func (h *WebsiteHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	website, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		var notFound *domain.ErrWebsiteNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Website not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("website_id", id).WithField("error", err.Error()).Error("Failed to get website")
		WriteJSONError(w, "Failed to get website", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"website": website,
	})
}

// HandleDelete removes a single website by id
func (h *WebsiteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		var notFound *domain.ErrWebsiteNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Website not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("website_id", id).WithField("error", err.Error()).Error("Failed to delete website")
		WriteJSONError(w, "Failed to delete website", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Website deleted",
	})
}

// HandleDeleteAll removes every website and reports how many went away
func (h *WebsiteHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete all websites")
		WriteJSONError(w, "Failed to delete all websites", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d websites", count),
		"deletedCount": count,
	})
}
