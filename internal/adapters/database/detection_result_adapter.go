package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	"github.com/weguard/weguard-backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// DetectionResultAdapter implements DetectionResultRepository
type DetectionResultAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewDetectionResultAdapter creates a new detection result adapter
func NewDetectionResultAdapter(client *postgres.Client) repositories.DetectionResultRepository {
	return &DetectionResultAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a detection result. Creation is never deduplicated: an
// identical payload produces a new document.
func (a *DetectionResultAdapter) Create(ctx context.Context, result *entities.DetectionResult) error {
	medicines, err := json.Marshal(result.Medicines)
	if err != nil {
		return apperrors.NewInternalError("failed to encode medicines", err)
	}

	record := goqu.Record{
		"id":          result.ID,
		"user_id":     result.UserID,
		"disease":     result.Disease,
		"confidence":  result.Confidence,
		"healthy":     result.Healthy,
		"description": sql.NullString{String: result.Description, Valid: result.Description != ""},
		"symptoms":    pq.Array(result.Symptoms),
		"causes":      pq.Array(result.Causes),
		"prevention":  pq.Array(result.Prevention),
		"medicines":   medicines,
		"image_url":   sql.NullString{String: result.ImageURL, Valid: result.ImageURL != ""},
		"created_at":  result.CreatedAt,
	}

	query, args, err := a.db.Insert("detection_results").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create detection result", err)
	}

	return nil
}

// GetByID retrieves a detection result by ID
func (a *DetectionResultAdapter) GetByID(ctx context.Context, id string) (*entities.DetectionResult, error) {
	query, args, err := a.db.Select(
		"id", "user_id", "disease", "confidence", "healthy", "description",
		"symptoms", "causes", "prevention", "medicines", "image_url", "created_at",
	).From("detection_results").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	result, err := scanDetectionResult(a.client.DB().QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("detection result with id %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get detection result", err)
	}

	return result, nil
}

// List retrieves detection results, optionally filtered by owner
func (a *DetectionResultAdapter) List(ctx context.Context, filter repositories.DetectionResultFilter) ([]*entities.DetectionResult, error) {
	ds := a.db.Select(
		"id", "user_id", "disease", "confidence", "healthy", "description",
		"symptoms", "causes", "prevention", "medicines", "image_url", "created_at",
	).From("detection_results")

	if filter.UserID != "" {
		ds = ds.Where(goqu.Ex{"user_id": filter.UserID})
	}

	ds = ds.Order(goqu.I("created_at").Desc())

	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list detection results", err)
	}
	defer rows.Close()

	var results []*entities.DetectionResult
	for rows.Next() {
		result, err := scanDetectionResult(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan detection result", err)
		}
		results = append(results, result)
	}

	return results, nil
}

// Delete removes a detection result
func (a *DetectionResultAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("detection_results").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete detection result", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("detection result with id %s not found", id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDetectionResult(row rowScanner) (*entities.DetectionResult, error) {
	result := &entities.DetectionResult{}
	var description, imageURL sql.NullString
	var symptoms, causes, prevention pq.StringArray
	var medicines []byte

	err := row.Scan(
		&result.ID,
		&result.UserID,
		&result.Disease,
		&result.Confidence,
		&result.Healthy,
		&description,
		&symptoms,
		&causes,
		&prevention,
		&medicines,
		&imageURL,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.Description = description.String
	result.ImageURL = imageURL.String
	result.Symptoms = symptoms
	result.Causes = causes
	result.Prevention = prevention

	if len(medicines) > 0 {
		if err := json.Unmarshal(medicines, &result.Medicines); err != nil {
			return nil, err
		}
	}

	return result, nil
}
