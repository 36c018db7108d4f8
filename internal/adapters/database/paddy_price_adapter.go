package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// PaddyPriceAdapter implements PaddyPriceRepository
type PaddyPriceAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPaddyPriceAdapter creates a new paddy price adapter
func NewPaddyPriceAdapter(client *postgres.Client) repositories.PaddyPriceRepository {
	return &PaddyPriceAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a paddy price quote
func (a *PaddyPriceAdapter) Create(ctx context.Context, price *entities.PaddyPrice) error {
	record := goqu.Record{
		"id":             price.ID,
		"variety":        price.Variety,
		"region":         price.Region,
		"price_per_kg":   price.PricePerKg,
		"currency":       price.Currency,
		"effective_date": price.EffectiveDate,
		"created_at":     price.CreatedAt,
		"updated_at":     price.UpdatedAt,
	}

	query, args, err := a.db.Insert("paddy_prices").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create paddy price", err)
	}

	return nil
}

// GetByID retrieves a paddy price by ID
func (a *PaddyPriceAdapter) GetByID(ctx context.Context, id string) (*entities.PaddyPrice, error) {
	query, args, err := a.db.Select(
		"id", "variety", "region", "price_per_kg", "currency",
		"effective_date", "created_at", "updated_at",
	).From("paddy_prices").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	price := &entities.PaddyPrice{}
	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&price.ID,
		&price.Variety,
		&price.Region,
		&price.PricePerKg,
		&price.Currency,
		&price.EffectiveDate,
		&price.CreatedAt,
		&price.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("paddy price with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get paddy price", err)
	}

	return price, nil
}

// List retrieves paddy prices, optionally filtered by variety and region
func (a *PaddyPriceAdapter) List(ctx context.Context, filter repositories.PaddyPriceFilter) ([]*entities.PaddyPrice, error) {
	ds := a.db.Select(
		"id", "variety", "region", "price_per_kg", "currency",
		"effective_date", "created_at", "updated_at",
	).From("paddy_prices")

	if filter.Variety != "" {
		ds = ds.Where(goqu.Ex{"variety": filter.Variety})
	}
	if filter.Region != "" {
		ds = ds.Where(goqu.Ex{"region": filter.Region})
	}

	ds = ds.Order(goqu.I("effective_date").Desc())

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list paddy prices", err)
	}
	defer rows.Close()

	var prices []*entities.PaddyPrice
	for rows.Next() {
		price := &entities.PaddyPrice{}
		err := rows.Scan(
			&price.ID,
			&price.Variety,
			&price.Region,
			&price.PricePerKg,
			&price.Currency,
			&price.EffectiveDate,
			&price.CreatedAt,
			&price.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan paddy price", err)
		}
		prices = append(prices, price)
	}

	return prices, nil
}

// Update updates a paddy price
func (a *PaddyPriceAdapter) Update(ctx context.Context, price *entities.PaddyPrice) error {
	price.UpdatedAt = time.Now().UTC()

	record := goqu.Record{
		"variety":        price.Variety,
		"region":         price.Region,
		"price_per_kg":   price.PricePerKg,
		"currency":       price.Currency,
		"effective_date": price.EffectiveDate,
		"updated_at":     price.UpdatedAt,
	}

	query, args, err := a.db.Update("paddy_prices").
		Set(record).
		Where(goqu.Ex{"id": price.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update paddy price", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("paddy price with id %s not found", price.ID))
	}

	return nil
}

// Delete removes a paddy price
func (a *PaddyPriceAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("paddy_prices").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete paddy price", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("paddy price with id %s not found", id))
	}

	return nil
}
