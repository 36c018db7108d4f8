package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/api/handlers"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

type stubTreatmentService struct {
	treatments  map[string]*entities.Treatment
	updated     []*entities.Treatment
	setApproved map[string]bool
}

func newStubTreatmentService() *stubTreatmentService {
	return &stubTreatmentService{
		treatments:  map[string]*entities.Treatment{},
		setApproved: map[string]bool{},
	}
}

func (s *stubTreatmentService) Create(ctx context.Context, treatment *entities.Treatment) error {
	treatment.ID = "treatment-1"
	s.treatments[treatment.ID] = treatment
	return nil
}

func (s *stubTreatmentService) List(ctx context.Context, filter repositories.TreatmentFilter) ([]*entities.Treatment, error) {
	var out []*entities.Treatment
	for _, treatment := range s.treatments {
		out = append(out, treatment)
	}
	return out, nil
}

func (s *stubTreatmentService) GetByID(ctx context.Context, id string) (*entities.Treatment, error) {
	treatment, ok := s.treatments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("treatment not found")
	}
	copied := *treatment
	return &copied, nil
}

func (s *stubTreatmentService) Update(ctx context.Context, treatment *entities.Treatment) error {
	s.updated = append(s.updated, treatment)
	s.treatments[treatment.ID] = treatment
	return nil
}

func (s *stubTreatmentService) SetApproved(ctx context.Context, id string, approved bool) error {
	s.setApproved[id] = approved
	return nil
}

func (s *stubTreatmentService) Delete(ctx context.Context, id string) error {
	return nil
}

func TestTreatmentHandler_Patch_ApprovedOnlyUsesToggle(t *testing.T) {
	service := newStubTreatmentService()
	handler := handlers.NewTreatmentHandler(service)

	req := httptest.NewRequest("PATCH", "/api/treatments/treatment-1", strings.NewReader(`{"approved":true}`))
	req.SetPathValue("id", "treatment-1")
	w := httptest.NewRecorder()

	handler.PatchTreatment(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"treatment-1": true}, service.setApproved)
	assert.Empty(t, service.updated)
}

func TestTreatmentHandler_Patch_MergesPartialFields(t *testing.T) {
	service := newStubTreatmentService()
	service.treatments["treatment-1"] = &entities.Treatment{
		ID:              "treatment-1",
		Disease:         "BROWN_SPOT",
		Name:            "Mancozeb",
		ApplicationRate: "2g/L",
		Frequency:       "weekly",
	}
	handler := handlers.NewTreatmentHandler(service)

	req := httptest.NewRequest("PATCH", "/api/treatments/treatment-1", strings.NewReader(`{"frequency":"biweekly","notes":"rotate actives"}`))
	req.SetPathValue("id", "treatment-1")
	w := httptest.NewRecorder()

	handler.PatchTreatment(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.Len(t, service.updated, 1) {
		assert.Equal(t, "biweekly", service.updated[0].Frequency)
		assert.Equal(t, "rotate actives", service.updated[0].Notes)
		// Untouched fields survive the merge.
		assert.Equal(t, "Mancozeb", service.updated[0].Name)
		assert.Equal(t, "2g/L", service.updated[0].ApplicationRate)
	}
	assert.Empty(t, service.setApproved)
}

func TestTreatmentHandler_Patch_NotFound(t *testing.T) {
	service := newStubTreatmentService()
	handler := handlers.NewTreatmentHandler(service)

	req := httptest.NewRequest("PATCH", "/api/treatments/missing", strings.NewReader(`{"name":"New"}`))
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.PatchTreatment(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTreatmentHandler_List_EmptyIsArray(t *testing.T) {
	service := newStubTreatmentService()
	handler := handlers.NewTreatmentHandler(service)

	req := httptest.NewRequest("GET", "/api/treatments", nil)
	w := httptest.NewRecorder()

	handler.ListTreatments(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Treatments []entities.Treatment `json:"treatments"`
			Count      int                  `json:"count"`
		} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.NotNil(t, response.Data.Treatments)
	assert.Zero(t, response.Data.Count)
}
