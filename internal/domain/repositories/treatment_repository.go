package repositories

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
)

// TreatmentFilter narrows treatment listings.
type TreatmentFilter struct {
	Disease  string
	Approved *bool
}

// TreatmentRepository defines the interface for treatment operations.
type TreatmentRepository interface {
	List(ctx context.Context, filter TreatmentFilter) ([]*entities.Treatment, error)
	GetByID(ctx context.Context, id string) (*entities.Treatment, error)
	Create(ctx context.Context, treatment *entities.Treatment) error
	Update(ctx context.Context, treatment *entities.Treatment) error
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}
