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

// TreatmentAdapter implements TreatmentRepository
type TreatmentAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewTreatmentAdapter creates a new treatment adapter
func NewTreatmentAdapter(client *postgres.Client) repositories.TreatmentRepository {
	return &TreatmentAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a treatment
func (a *TreatmentAdapter) Create(ctx context.Context, treatment *entities.Treatment) error {
	record := goqu.Record{
		"id":               treatment.ID,
		"disease":          treatment.Disease,
		"name":             treatment.Name,
		"application_rate": treatment.ApplicationRate,
		"frequency":        treatment.Frequency,
		"notes":            sql.NullString{String: treatment.Notes, Valid: treatment.Notes != ""},
		"approved":         treatment.Approved,
		"created_at":       treatment.CreatedAt,
		"updated_at":       treatment.UpdatedAt,
	}

	query, args, err := a.db.Insert("treatments").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create treatment", err)
	}

	return nil
}

// GetByID retrieves a treatment by ID
func (a *TreatmentAdapter) GetByID(ctx context.Context, id string) (*entities.Treatment, error) {
	query, args, err := a.db.Select(
		"id", "disease", "name", "application_rate", "frequency",
		"notes", "approved", "created_at", "updated_at",
	).From("treatments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	treatment := &entities.Treatment{}
	var notes sql.NullString

	err = a.client.DB().QueryRowContext(ctx, query, args...).Scan(
		&treatment.ID,
		&treatment.Disease,
		&treatment.Name,
		&treatment.ApplicationRate,
		&treatment.Frequency,
		&notes,
		&treatment.Approved,
		&treatment.CreatedAt,
		&treatment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get treatment", err)
	}

	treatment.Notes = notes.String
	return treatment, nil
}

// List retrieves treatments, optionally filtered by disease and approval
func (a *TreatmentAdapter) List(ctx context.Context, filter repositories.TreatmentFilter) ([]*entities.Treatment, error) {
	ds := a.db.Select(
		"id", "disease", "name", "application_rate", "frequency",
		"notes", "approved", "created_at", "updated_at",
	).From("treatments")

	if filter.Disease != "" {
		ds = ds.Where(goqu.Ex{"disease": filter.Disease})
	}
	if filter.Approved != nil {
		ds = ds.Where(goqu.Ex{"approved": *filter.Approved})
	}

	ds = ds.Order(goqu.I("name").Asc())

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list treatments", err)
	}
	defer rows.Close()

	var treatments []*entities.Treatment
	for rows.Next() {
		treatment := &entities.Treatment{}
		var notes sql.NullString

		err := rows.Scan(
			&treatment.ID,
			&treatment.Disease,
			&treatment.Name,
			&treatment.ApplicationRate,
			&treatment.Frequency,
			&notes,
			&treatment.Approved,
			&treatment.CreatedAt,
			&treatment.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan treatment", err)
		}

		treatment.Notes = notes.String
		treatments = append(treatments, treatment)
	}

	return treatments, nil
}

// Update updates a treatment
func (a *TreatmentAdapter) Update(ctx context.Context, treatment *entities.Treatment) error {
	treatment.UpdatedAt = time.Now().UTC()

	record := goqu.Record{
		"disease":          treatment.Disease,
		"name":             treatment.Name,
		"application_rate": treatment.ApplicationRate,
		"frequency":        treatment.Frequency,
		"notes":            sql.NullString{String: treatment.Notes, Valid: treatment.Notes != ""},
		"approved":         treatment.Approved,
		"updated_at":       treatment.UpdatedAt,
	}

	query, args, err := a.db.Update("treatments").
		Set(record).
		Where(goqu.Ex{"id": treatment.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update treatment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", treatment.ID))
	}

	return nil
}

// SetApproved toggles the approved flag on a treatment
func (a *TreatmentAdapter) SetApproved(ctx context.Context, id string, approved bool) error {
	query, args, err := a.db.Update("treatments").
		Set(goqu.Record{
			"approved":   approved,
			"updated_at": time.Now().UTC(),
		}).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update treatment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", id))
	}

	return nil
}

// Delete removes a treatment
func (a *TreatmentAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("treatments").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete treatment", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("treatment with id %s not found", id))
	}

	return nil
}
