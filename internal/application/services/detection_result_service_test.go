package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

type stubDetectionResultRepo struct {
	created []*entities.DetectionResult
	stored  map[string]*entities.DetectionResult
}

func newStubDetectionResultRepo() *stubDetectionResultRepo {
	return &stubDetectionResultRepo{stored: map[string]*entities.DetectionResult{}}
}

func (s *stubDetectionResultRepo) Create(ctx context.Context, result *entities.DetectionResult) error {
	s.created = append(s.created, result)
	s.stored[result.ID] = result
	return nil
}

func (s *stubDetectionResultRepo) List(ctx context.Context, filter repositories.DetectionResultFilter) ([]*entities.DetectionResult, error) {
	return s.created, nil
}

func (s *stubDetectionResultRepo) GetByID(ctx context.Context, id string) (*entities.DetectionResult, error) {
	result, ok := s.stored[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("detection result not found")
	}
	return result, nil
}

func (s *stubDetectionResultRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.stored[id]; !ok {
		return apperrors.NewNotFoundError("detection result not found")
	}
	delete(s.stored, id)
	return nil
}

func TestDetectionResultService_Create_AssignsIDAndDefaults(t *testing.T) {
	repo := newStubDetectionResultRepo()
	service := services.NewDetectionResultService(repo)

	result := &entities.DetectionResult{UserID: "user-1", Disease: "BROWN_SPOT"}
	err := service.Create(context.Background(), result)

	assert.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.NotNil(t, result.Symptoms)
	assert.NotNil(t, result.Causes)
	assert.NotNil(t, result.Prevention)
	assert.NotNil(t, result.Medicines)
}

func TestDetectionResultService_Create_NeverDeduplicates(t *testing.T) {
	repo := newStubDetectionResultRepo()
	service := services.NewDetectionResultService(repo)

	first := &entities.DetectionResult{UserID: "user-1", Disease: "BROWN_SPOT", Confidence: 95.3}
	second := &entities.DetectionResult{UserID: "user-1", Disease: "BROWN_SPOT", Confidence: 95.3}

	assert.NoError(t, service.Create(context.Background(), first))
	assert.NoError(t, service.Create(context.Background(), second))

	assert.Len(t, repo.created, 2)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDetectionResultService_Create_Validation(t *testing.T) {
	repo := newStubDetectionResultRepo()
	service := services.NewDetectionResultService(repo)

	err := service.Create(context.Background(), &entities.DetectionResult{Disease: "BLAST"})
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	err = service.Create(context.Background(), &entities.DetectionResult{UserID: "user-1"})
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	assert.Empty(t, repo.created)
}
