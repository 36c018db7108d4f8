package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// WeatherAlertService handles weather alert management.
type WeatherAlertService struct {
	repo repositories.WeatherAlertRepository
}

// NewWeatherAlertService creates a new weather alert service.
func NewWeatherAlertService(repo repositories.WeatherAlertRepository) *WeatherAlertService {
	return &WeatherAlertService{repo: repo}
}

// Create stores a weather alert.
func (s *WeatherAlertService) Create(ctx context.Context, alert *entities.WeatherAlert) error {
	if alert.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if alert.Message == "" {
		return apperrors.NewValidationError("message is required")
	}
	if alert.Severity == "" {
		return apperrors.NewValidationError("severity is required")
	}

	now := time.Now().UTC()
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	if alert.StartsAt.IsZero() {
		alert.StartsAt = now
	}
	if alert.EndsAt.IsZero() {
		alert.EndsAt = alert.StartsAt.Add(24 * time.Hour)
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = now
	}
	alert.UpdatedAt = now

	return s.repo.Create(ctx, alert)
}

// List retrieves weather alerts.
func (s *WeatherAlertService) List(ctx context.Context, filter repositories.WeatherAlertFilter) ([]*entities.WeatherAlert, error) {
	return s.repo.List(ctx, filter)
}

// GetByID retrieves one weather alert.
func (s *WeatherAlertService) GetByID(ctx context.Context, id string) (*entities.WeatherAlert, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces a weather alert.
func (s *WeatherAlertService) Update(ctx context.Context, alert *entities.WeatherAlert) error {
	if alert.ID == "" {
		return apperrors.NewValidationError("id is required")
	}
	if alert.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if alert.Message == "" {
		return apperrors.NewValidationError("message is required")
	}
	return s.repo.Update(ctx, alert)
}

// SetActive toggles the active flag.
func (s *WeatherAlertService) SetActive(ctx context.Context, id string, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Delete removes a weather alert.
func (s *WeatherAlertService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
