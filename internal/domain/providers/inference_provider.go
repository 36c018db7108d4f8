package providers

import (
	"context"

	"github.com/weguard/weguard-backend/internal/domain/entities"
)

// InferenceProvider is the boundary to the external disease-prediction service.
type InferenceProvider interface {
	// Classify sends an image to the predictor and returns its label and confidence.
	Classify(ctx context.Context, image []byte) (*entities.PredictionOutcome, error)

	// FetchDiseaseProfile looks up descriptive metadata for a disease label.
	FetchDiseaseProfile(ctx context.Context, label string) (*entities.DiseaseProfile, error)

	// FetchTreatmentCatalog looks up recommended medicines for a disease label.
	FetchTreatmentCatalog(ctx context.Context, label string) (*entities.TreatmentCatalog, error)
}
