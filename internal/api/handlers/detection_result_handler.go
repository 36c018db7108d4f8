package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
)

const defaultDetectionResultLimit = 30

// DetectionResultService defines the detection result operations used by the handler.
type DetectionResultService interface {
	Create(ctx context.Context, result *entities.DetectionResult) error
	List(ctx context.Context, filter repositories.DetectionResultFilter) ([]*entities.DetectionResult, error)
	GetByID(ctx context.Context, id string) (*entities.DetectionResult, error)
	Delete(ctx context.Context, id string) error
}

// DetectionResultHandler handles detection result requests.
type DetectionResultHandler struct {
	service DetectionResultService
}

// NewDetectionResultHandler creates a new detection result handler.
func NewDetectionResultHandler(service DetectionResultService) *DetectionResultHandler {
	return &DetectionResultHandler{service: service}
}

// ListDetectionResults handles GET /api/detection-results
func (h *DetectionResultHandler) ListDetectionResults(w http.ResponseWriter, r *http.Request) {
	filter := repositories.DetectionResultFilter{
		UserID: r.URL.Query().Get("user_id"),
		Limit:  defaultDetectionResultLimit,
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if parsed, err := strconv.Atoi(offset); err == nil && parsed > 0 {
			filter.Offset = parsed
		}
	}

	results, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err, "failed to list detection results")
		return
	}
	if results == nil {
		results = []*entities.DetectionResult{}
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// GetDetectionResult handles GET /api/detection-results/{id}
func (h *DetectionResultHandler) GetDetectionResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "detection result ID is required")
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get detection result")
		return
	}

	respondWithData(w, http.StatusOK, result)
}

// CreateDetectionResult handles POST /api/detection-results
func (h *DetectionResultHandler) CreateDetectionResult(w http.ResponseWriter, r *http.Request) {
	var result entities.DetectionResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &result); err != nil {
		respondWithAppError(w, err, "failed to create detection result")
		return
	}

	respondWithData(w, http.StatusCreated, result)
}

// DeleteDetectionResult handles DELETE /api/detection-results/{id}
func (h *DetectionResultHandler) DeleteDetectionResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "detection result ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to delete detection result")
		return
	}

	respondWithData(w, http.StatusOK, map[string]string{"id": id})
}
