package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// DetectionResultService handles persisted scan results.
type DetectionResultService struct {
	repo repositories.DetectionResultRepository
}

// NewDetectionResultService creates a new detection result service.
func NewDetectionResultService(repo repositories.DetectionResultRepository) *DetectionResultService {
	return &DetectionResultService{repo: repo}
}

// Create stores a detection result.
func (s *DetectionResultService) Create(ctx context.Context, result *entities.DetectionResult) error {
	if result.UserID == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if result.Disease == "" {
		return apperrors.NewValidationError("disease is required")
	}

	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	if result.Symptoms == nil {
		result.Symptoms = []string{}
	}
	if result.Causes == nil {
		result.Causes = []string{}
	}
	if result.Prevention == nil {
		result.Prevention = []string{}
	}
	if result.Medicines == nil {
		result.Medicines = []entities.Medicine{}
	}

	return s.repo.Create(ctx, result)
}

// List retrieves detection results for an optional owner.
func (s *DetectionResultService) List(ctx context.Context, filter repositories.DetectionResultFilter) ([]*entities.DetectionResult, error) {
	return s.repo.List(ctx, filter)
}

// GetByID retrieves one detection result.
func (s *DetectionResultService) GetByID(ctx context.Context, id string) (*entities.DetectionResult, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a detection result.
func (s *DetectionResultService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
