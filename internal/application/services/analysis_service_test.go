package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/entities"
)

type stubGateway struct {
	classifyFn func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error)
	profileFn  func(ctx context.Context, label string) (*entities.DiseaseProfile, error)
	catalogFn  func(ctx context.Context, label string) (*entities.TreatmentCatalog, error)

	profileCalls atomic.Int32
	catalogCalls atomic.Int32
}

func (s *stubGateway) Classify(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
	return s.classifyFn(ctx, image)
}

func (s *stubGateway) FetchDiseaseProfile(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
	s.profileCalls.Add(1)
	return s.profileFn(ctx, label)
}

func (s *stubGateway) FetchTreatmentCatalog(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
	s.catalogCalls.Add(1)
	return s.catalogFn(ctx, label)
}

func TestAnalysisService_Analyze_MergesEnrichment(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return &entities.PredictionOutcome{Label: "brown_spot", Confidence: 0.953}, nil
		},
		profileFn: func(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
			assert.Equal(t, "brown_spot", label)
			return &entities.DiseaseProfile{
				Description: "Fungal spots on leaves",
				Symptoms:    []string{"brown lesions"},
				CausedBy:    "Bipolaris oryzae",
				Prevention:  []string{"balanced fertilization"},
			}, nil
		},
		catalogFn: func(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
			assert.Equal(t, "brown_spot", label)
			return &entities.TreatmentCatalog{
				Medicines: []entities.Medicine{
					{Name: "Mancozeb", ApplicationRate: "2g/L", Frequency: "weekly"},
				},
			}, nil
		},
	}

	service := services.NewAnalysisService(gateway)
	result, err := service.Analyze(context.Background(), []byte("img"))

	assert.NoError(t, err)
	assert.Equal(t, "BROWN_SPOT", result.Disease)
	assert.Equal(t, 95.3, result.Confidence)
	assert.False(t, result.Healthy)
	assert.Equal(t, "Fungal spots on leaves", result.Description)
	assert.Equal(t, []string{"Bipolaris oryzae"}, result.Causes)
	assert.Equal(t, []string{"brown lesions"}, result.Symptoms)
	assert.Len(t, result.Medicines, 1)
	assert.Equal(t, int32(1), gateway.profileCalls.Load())
	assert.Equal(t, int32(1), gateway.catalogCalls.Load())
}

func TestAnalysisService_Analyze_ConfidenceRounding(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0.95, 95.0},
		{0.953, 95.3},
		{0.95349, 95.35},
		{1.0, 100.0},
	}

	for _, tc := range cases {
		gateway := &stubGateway{
			classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
				return &entities.PredictionOutcome{Label: "normal", Confidence: tc.raw}, nil
			},
		}
		service := services.NewAnalysisService(gateway)

		result, err := service.Analyze(context.Background(), []byte("img"))

		assert.NoError(t, err)
		assert.Equal(t, tc.want, result.Confidence)
	}
}

func TestAnalysisService_Analyze_HealthySkipsEnrichment(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return &entities.PredictionOutcome{Label: "Normal", Confidence: 0.99}, nil
		},
	}

	service := services.NewAnalysisService(gateway)
	result, err := service.Analyze(context.Background(), []byte("img"))

	assert.NoError(t, err)
	assert.True(t, result.Healthy)
	assert.Equal(t, "NORMAL", result.Disease)
	assert.Empty(t, result.Symptoms)
	assert.Empty(t, result.Medicines)
	assert.Equal(t, int32(0), gateway.profileCalls.Load())
	assert.Equal(t, int32(0), gateway.catalogCalls.Load())
}

func TestAnalysisService_Analyze_ClassificationFailure(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return nil, errors.New("upstream down")
		},
	}

	service := services.NewAnalysisService(gateway)
	result, err := service.Analyze(context.Background(), []byte("img"))

	assert.Nil(t, result)
	var analysisErr *services.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, services.StageClassification, analysisErr.Stage)
	assert.Equal(t, int32(0), gateway.profileCalls.Load())
	assert.Equal(t, int32(0), gateway.catalogCalls.Load())
}

func TestAnalysisService_Analyze_EmptyLabelFailsClassification(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return &entities.PredictionOutcome{Label: "  ", Confidence: 0.4}, nil
		},
	}

	service := services.NewAnalysisService(gateway)
	_, err := service.Analyze(context.Background(), []byte("img"))

	var analysisErr *services.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, services.StageClassification, analysisErr.Stage)
	assert.Equal(t, int32(0), gateway.profileCalls.Load())
}

func TestAnalysisService_Analyze_EmptyImageFailsClassification(t *testing.T) {
	service := services.NewAnalysisService(&stubGateway{})

	_, err := service.Analyze(context.Background(), nil)

	var analysisErr *services.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, services.StageClassification, analysisErr.Stage)
}

func TestAnalysisService_Analyze_EnrichmentFailure(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return &entities.PredictionOutcome{Label: "blast", Confidence: 0.8}, nil
		},
		profileFn: func(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
			return nil, errors.New("lookup failed")
		},
		catalogFn: func(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	service := services.NewAnalysisService(gateway)
	result, err := service.Analyze(context.Background(), []byte("img"))

	assert.Nil(t, result)
	var analysisErr *services.AnalysisError
	assert.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, services.StageEnrichment, analysisErr.Stage)
}

func TestAnalysisService_Analyze_DefaultsAbsentLists(t *testing.T) {
	gateway := &stubGateway{
		classifyFn: func(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
			return &entities.PredictionOutcome{Label: "tungro", Confidence: 0.71}, nil
		},
		profileFn: func(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
			return &entities.DiseaseProfile{Description: "Viral disease"}, nil
		},
		catalogFn: func(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
			return &entities.TreatmentCatalog{}, nil
		},
	}

	service := services.NewAnalysisService(gateway)
	result, err := service.Analyze(context.Background(), []byte("img"))

	assert.NoError(t, err)
	assert.NotNil(t, result.Symptoms)
	assert.Empty(t, result.Symptoms)
	assert.NotNil(t, result.Causes)
	assert.Empty(t, result.Causes)
	assert.NotNil(t, result.Prevention)
	assert.NotNil(t, result.Medicines)
}

func TestFailedAnalysisResult_Shape(t *testing.T) {
	fallback := entities.FailedAnalysisResult()

	assert.Equal(t, "Analysis Failed", fallback.Disease)
	assert.Zero(t, fallback.Confidence)
	assert.False(t, fallback.Healthy)
	assert.Empty(t, fallback.Symptoms)
	assert.Empty(t, fallback.Causes)
	assert.Empty(t, fallback.Prevention)
	assert.Empty(t, fallback.Medicines)
}
