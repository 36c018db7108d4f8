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

// WeatherAlertAdapter implements WeatherAlertRepository
type WeatherAlertAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewWeatherAlertAdapter creates a new weather alert adapter
func NewWeatherAlertAdapter(client *postgres.Client) repositories.WeatherAlertRepository {
	return &WeatherAlertAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a weather alert
func (a *WeatherAlertAdapter) Create(ctx context.Context, alert *entities.WeatherAlert) error {
	record := goqu.Record{
		"id":         alert.ID,
		"title":      alert.Title,
		"message":    alert.Message,
		"severity":   alert.Severity,
		"region":     sql.NullString{String: alert.Region, Valid: alert.Region != ""},
		"active":     alert.Active,
		"starts_at":  alert.StartsAt,
		"ends_at":    alert.EndsAt,
		"created_at": alert.CreatedAt,
		"updated_at": alert.UpdatedAt,
	}

	query, args, err := a.db.Insert("weather_alerts").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create weather alert", err)
	}

	return nil
}

// GetByID retrieves a weather alert by ID
func (a *WeatherAlertAdapter) GetByID(ctx context.Context, id string) (*entities.WeatherAlert, error) {
	query, args, err := a.db.Select(
		"id", "title", "message", "severity", "region", "active",
		"starts_at", "ends_at", "created_at", "updated_at",
	).From("weather_alerts").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	alert := &entities.WeatherAlert{}
	var region sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&alert.ID,
		&alert.Title,
		&alert.Message,
		&alert.Severity,
		&region,
		&alert.Active,
		&alert.StartsAt,
		&alert.EndsAt,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("weather alert with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get weather alert", err)
	}

	alert.Region = region.String
	return alert, nil
}

// List retrieves weather alerts, optionally filtered by active flag and region
func (a *WeatherAlertAdapter) List(ctx context.Context, filter repositories.WeatherAlertFilter) ([]*entities.WeatherAlert, error) {
	ds := a.db.Select(
		"id", "title", "message", "severity", "region", "active",
		"starts_at", "ends_at", "created_at", "updated_at",
	).From("weather_alerts")

	if filter.Active != nil {
		ds = ds.Where(goqu.Ex{"active": *filter.Active})
	}
	if filter.Region != "" {
		ds = ds.Where(goqu.Ex{"region": filter.Region})
	}

	ds = ds.Order(goqu.I("starts_at").Desc())

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list weather alerts", err)
	}
	defer rows.Close()

	var alerts []*entities.WeatherAlert
	for rows.Next() {
		alert := &entities.WeatherAlert{}
		var region sql.NullString

		err := rows.Scan(
			&alert.ID,
			&alert.Title,
			&alert.Message,
			&alert.Severity,
			&region,
			&alert.Active,
			&alert.StartsAt,
			&alert.EndsAt,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan weather alert", err)
		}

		alert.Region = region.String
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// Update updates a weather alert
func (a *WeatherAlertAdapter) Update(ctx context.Context, alert *entities.WeatherAlert) error {
	alert.UpdatedAt = time.Now().UTC()

	record := goqu.Record{
		"title":      alert.Title,
		"message":    alert.Message,
		"severity":   alert.Severity,
		"region":     sql.NullString{String: alert.Region, Valid: alert.Region != ""},
		"active":     alert.Active,
		"starts_at":  alert.StartsAt,
		"ends_at":    alert.EndsAt,
		"updated_at": alert.UpdatedAt,
	}

	query, args, err := a.db.Update("weather_alerts").
		Set(record).
		Where(goqu.Ex{"id": alert.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update weather alert", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("weather alert with id %s not found", alert.ID))
	}

	return nil
}

// SetActive toggles the active flag on a weather alert
func (a *WeatherAlertAdapter) SetActive(ctx context.Context, id string, active bool) error {
	query, args, err := a.db.Update("weather_alerts").
		Set(goqu.Record{
			"active":     active,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update weather alert", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("weather alert with id %s not found", id))
	}

	return nil
}

// Delete removes a weather alert
func (a *WeatherAlertAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("weather_alerts").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete weather alert", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("weather alert with id %s not found", id))
	}

	return nil
}
