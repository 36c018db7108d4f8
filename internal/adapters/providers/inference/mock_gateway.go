package inference

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/providers"
)

// MockGateway returns canned inference results for local development.
type MockGateway struct{}

// NewMockGateway creates a mock inference gateway.
func NewMockGateway() providers.InferenceProvider {
	return &MockGateway{}
}

// Classify always reports a healthy crop.
func (m *MockGateway) Classify(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
	return &entities.PredictionOutcome{Label: "normal", Confidence: 0.99}, nil
}

// FetchDiseaseProfile returns placeholder metadata.
func (m *MockGateway) FetchDiseaseProfile(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
	return &entities.DiseaseProfile{
		Description: "Mock disease profile for " + label,
		Symptoms:    []string{"Mock symptom"},
		CausedBy:    "Mock agent",
		Prevention:  []string{"Mock prevention"},
	}, nil
}

// FetchTreatmentCatalog returns a placeholder medicine list.
func (m *MockGateway) FetchTreatmentCatalog(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
	return &entities.TreatmentCatalog{
		Medicines: []entities.Medicine{
			{Name: "Mock fungicide", ApplicationRate: "1ml/L", Frequency: "Weekly"},
		},
	}, nil
}
