package repositories

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
)

// PaddyPriceFilter narrows paddy price listings.
type PaddyPriceFilter struct {
	Variety string
	Region  string
}

// PaddyPriceRepository defines the interface for paddy price operations.
type PaddyPriceRepository interface {
	List(ctx context.Context, filter PaddyPriceFilter) ([]*entities.PaddyPrice, error)
	GetByID(ctx context.Context, id string) (*entities.PaddyPrice, error)
	Create(ctx context.Context, price *entities.PaddyPrice) error
	Update(ctx context.Context, price *entities.PaddyPrice) error
	Delete(ctx context.Context, id string) error
}
