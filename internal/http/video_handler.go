package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

// VideoHandler serves the personalized video endpoints
type VideoHandler struct {
	service domain.VideoService
	logger  logger.Logger
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(service domain.VideoService, logger logger.Logger) *VideoHandler {
	return &VideoHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the video REST routes
func (h *VideoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/repliq/compose-video", h.HandleCompose)
	mux.HandleFunc("POST /api/repliq/videos", h.HandleCreate)
	mux.HandleFunc("GET /api/repliq/videos", h.HandleList)
	mux.HandleFunc("GET /api/repliq/videos/{id}", h.HandleGet)
	mux.HandleFunc("DELETE /api/repliq/videos/{id}", h.HandleDelete)
	mux.HandleFunc("DELETE /api/repliq/videos", h.HandleDeleteAll)
}

// HandleCompose forwards the intro recording to the composition service and
// persists the resulting video. The composed payload is returned so the
// caller can preview immediately without a second fetch.
func (h *VideoHandler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	var req domain.ComposeVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	video, err := h.service.ComposeAndSave(r.Context(), &req, nil)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}

		var composeErr *domain.ErrCompositionFailed
		if errors.As(err, &composeErr) {
			h.logger.WithField("status_code", composeErr.StatusCode).Error("Composition service rejected the request")
			body := map[string]interface{}{
				"error": "Video composition failed",
			}
			if composeErr.Details != "" {
				body["details"] = composeErr.Details
			}
			writeJSON(w, http.StatusBadGateway, body)
			return
		}

		h.logger.WithField("error", err.Error()).Error("Failed to compose video")
		WriteJSONError(w, "Failed to compose video", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"composedVideoData": video.ComposedVideoData,
	})
}

// HandleCreate persists a video that was composed elsewhere
func (h *VideoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	video, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var validationErr domain.ValidationError
		if errors.As(err, &validationErr) {
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to save video")
		WriteJSONError(w, "Failed to save video", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"video":   video,
	})
}

// HandleList returns every video, newest first, without composed payloads
func (h *VideoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	videos, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list videos")
		WriteJSONError(w, "Failed to list videos", http.StatusInternalServerError)
		return
	}

	if videos == nil {
		videos = []*domain.Video{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"videos":  videos,
	})
}

// HandleGet returns a single video including its composed payload
func (h *VideoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	video, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		var notFound *domain.ErrVideoNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Video not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("video_id", id).WithField("error", err.Error()).Error("Failed to get video")
		WriteJSONError(w, "Failed to get video", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"video":   video,
	})
}

// HandleDelete removes a single video by id
func (h *VideoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		var notFound *domain.ErrVideoNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Video not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("video_id", id).WithField("error", err.Error()).Error("Failed to delete video")
		WriteJSONError(w, "Failed to delete video", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Video deleted",
	})
}

// HandleDeleteAll removes every video and reports how many went away
func (h *VideoHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to delete all videos")
		WriteJSONError(w, "Failed to delete all videos", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d videos", count),
		"deletedCount": count,
	})
}
