package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
)

// TreatmentService defines the treatment operations used by the handler.
type TreatmentService interface {
	Create(ctx context.Context, treatment *entities.Treatment) error
	List(ctx context.Context, filter repositories.TreatmentFilter) ([]*entities.Treatment, error)
	GetByID(ctx context.Context, id string) (*entities.Treatment, error)
	Update(ctx context.Context, treatment *entities.Treatment) error
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

// TreatmentHandler handles treatment catalog requests.
type TreatmentHandler struct {
	service TreatmentService
}

// NewTreatmentHandler creates a new treatment handler.
func NewTreatmentHandler(service TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{service: service}
}

// ListTreatments handles GET /api/treatments
func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	filter := repositories.TreatmentFilter{
		Disease: r.URL.Query().Get("disease"),
	}

	if approved := r.URL.Query().Get("approved"); approved != "" {
		if parsed, err := strconv.ParseBool(approved); err == nil {
			filter.Approved = &parsed
		}
	}

	treatments, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err, "failed to list treatments")
		return
	}
	if treatments == nil {
		treatments = []*entities.Treatment{}
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}

// GetTreatment handles GET /api/treatments/{id}
func (h *TreatmentHandler) GetTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment ID is required")
		return
	}

	treatment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get treatment")
		return
	}

	respondWithData(w, http.StatusOK, treatment)
}

// CreateTreatment handles POST /api/treatments
func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var treatment entities.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &treatment); err != nil {
		respondWithAppError(w, err, "failed to create treatment")
		return
	}

	respondWithData(w, http.StatusCreated, treatment)
}

type treatmentPatchRequest struct {
	Disease         *string `json:"disease"`
	Name            *string `json:"name"`
	ApplicationRate *string `json:"application_rate"`
	Frequency       *string `json:"frequency"`
	Notes           *string `json:"notes"`
	Approved        *bool   `json:"approved"`
}

func (p *treatmentPatchRequest) onlyApproved() bool {
	return p.Approved != nil &&
		p.Disease == nil && p.Name == nil && p.ApplicationRate == nil &&
		p.Frequency == nil && p.Notes == nil
}

// PatchTreatment handles PATCH /api/treatments/{id}.
// A body containing only the approved flag is treated as a toggle; any other
// combination is a partial update applied to the stored record.
func (h *TreatmentHandler) PatchTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment ID is required")
		return
	}

	var patch treatmentPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if patch.onlyApproved() {
		if err := h.service.SetApproved(r.Context(), id, *patch.Approved); err != nil {
			respondWithAppError(w, err, "failed to update treatment")
			return
		}
		respondWithData(w, http.StatusOK, map[string]interface{}{
			"id":       id,
			"approved": *patch.Approved,
		})
		return
	}

	treatment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get treatment")
		return
	}

	if patch.Disease != nil {
		treatment.Disease = *patch.Disease
	}
	if patch.Name != nil {
		treatment.Name = *patch.Name
	}
	if patch.ApplicationRate != nil {
		treatment.ApplicationRate = *patch.ApplicationRate
	}
	if patch.Frequency != nil {
		treatment.Frequency = *patch.Frequency
	}
	if patch.Notes != nil {
		treatment.Notes = *patch.Notes
	}
	if patch.Approved != nil {
		treatment.Approved = *patch.Approved
	}

	if err := h.service.Update(r.Context(), treatment); err != nil {
		respondWithAppError(w, err, "failed to update treatment")
		return
	}

	respondWithData(w, http.StatusOK, treatment)
}

// DeleteTreatment handles DELETE /api/treatments/{id}
func (h *TreatmentHandler) DeleteTreatment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "treatment ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to delete treatment")
		return
	}

	respondWithData(w, http.StatusOK, map[string]string{"id": id})
}
