package repositories

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
)

// DetectionResultFilter narrows detection result listings.
type DetectionResultFilter struct {
	UserID string
	Limit  int
	Offset int
}

// DetectionResultRepository defines the interface for detection result operations.
type DetectionResultRepository interface {
	List(ctx context.Context, filter DetectionResultFilter) ([]*entities.DetectionResult, error)
	GetByID(ctx context.Context, id string) (*entities.DetectionResult, error)
	Create(ctx context.Context, result *entities.DetectionResult) error
	Delete(ctx context.Context, id string) error
}
