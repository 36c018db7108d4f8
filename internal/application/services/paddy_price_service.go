package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// PaddyPriceService handles market price quotes.
type PaddyPriceService struct {
	repo repositories.PaddyPriceRepository
}

// NewPaddyPriceService creates a new paddy price service.
func NewPaddyPriceService(repo repositories.PaddyPriceRepository) *PaddyPriceService {
	return &PaddyPriceService{repo: repo}
}

// Create stores a price quote.
func (s *PaddyPriceService) Create(ctx context.Context, price *entities.PaddyPrice) error {
	if price.Variety == "" {
		return apperrors.NewValidationError("variety is required")
	}
	if price.Region == "" {
		return apperrors.NewValidationError("region is required")
	}
	if price.PricePerKg <= 0 {
		return apperrors.NewValidationError("price_per_kg must be positive")
	}

	now := time.Now().UTC()
	if price.ID == "" {
		price.ID = uuid.New().String()
	}
	if price.Currency == "" {
		price.Currency = "LKR"
	}
	if price.EffectiveDate.IsZero() {
		price.EffectiveDate = now
	}
	if price.CreatedAt.IsZero() {
		price.CreatedAt = now
	}
	price.UpdatedAt = now

	return s.repo.Create(ctx, price)
}

// List retrieves price quotes.
func (s *PaddyPriceService) List(ctx context.Context, filter repositories.PaddyPriceFilter) ([]*entities.PaddyPrice, error) {
	return s.repo.List(ctx, filter)
}

// GetByID retrieves one price quote.
func (s *PaddyPriceService) GetByID(ctx context.Context, id string) (*entities.PaddyPrice, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces a price quote.
func (s *PaddyPriceService) Update(ctx context.Context, price *entities.PaddyPrice) error {
	if price.ID == "" {
		return apperrors.NewValidationError("id is required")
	}
	if price.Variety == "" {
		return apperrors.NewValidationError("variety is required")
	}
	if price.PricePerKg <= 0 {
		return apperrors.NewValidationError("price_per_kg must be positive")
	}
	return s.repo.Update(ctx, price)
}

// Delete removes a price quote.
func (s *PaddyPriceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
