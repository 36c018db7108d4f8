package repositories

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
)

// WeatherAlertFilter narrows weather alert listings.
type WeatherAlertFilter struct {
	Active *bool
	Region string
}

// WeatherAlertRepository defines the interface for weather alert operations.
type WeatherAlertRepository interface {
	List(ctx context.Context, filter WeatherAlertFilter) ([]*entities.WeatherAlert, error)
	GetByID(ctx context.Context, id string) (*entities.WeatherAlert, error)
	Create(ctx context.Context, alert *entities.WeatherAlert) error
	Update(ctx context.Context, alert *entities.WeatherAlert) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
