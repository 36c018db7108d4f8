package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// TreatmentService handles the curated treatment catalog.
type TreatmentService struct {
	repo repositories.TreatmentRepository
}

// NewTreatmentService creates a new treatment service.
func NewTreatmentService(repo repositories.TreatmentRepository) *TreatmentService {
	return &TreatmentService{repo: repo}
}

// Create stores a treatment.
func (s *TreatmentService) Create(ctx context.Context, treatment *entities.Treatment) error {
	if treatment.Disease == "" {
		return apperrors.NewValidationError("disease is required")
	}
	if treatment.Name == "" {
		return apperrors.NewValidationError("name is required")
	}

	now := time.Now().UTC()
	if treatment.ID == "" {
		treatment.ID = uuid.New().String()
	}
	if treatment.CreatedAt.IsZero() {
		treatment.CreatedAt = now
	}
	treatment.UpdatedAt = now

	return s.repo.Create(ctx, treatment)
}

// List retrieves treatments.
func (s *TreatmentService) List(ctx context.Context, filter repositories.TreatmentFilter) ([]*entities.Treatment, error) {
	return s.repo.List(ctx, filter)
}

// GetByID retrieves one treatment.
func (s *TreatmentService) GetByID(ctx context.Context, id string) (*entities.Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces a treatment.
func (s *TreatmentService) Update(ctx context.Context, treatment *entities.Treatment) error {
	if treatment.ID == "" {
		return apperrors.NewValidationError("id is required")
	}
	if treatment.Disease == "" {
		return apperrors.NewValidationError("disease is required")
	}
	if treatment.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	return s.repo.Update(ctx, treatment)
}

// SetApproved toggles the approved flag.
func (s *TreatmentService) SetApproved(ctx context.Context, id string, approved bool) error {
	return s.repo.SetApproved(ctx, id, approved)
}

// Delete removes a treatment.
func (s *TreatmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
