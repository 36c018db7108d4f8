package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/providers"
)

// AnalysisStage identifies the pipeline stage where analysis failed.
type AnalysisStage string

const (
	// StageClassification covers the initial predictor call.
	StageClassification AnalysisStage = "classification"

	// StageEnrichment covers the profile/catalog lookups.
	StageEnrichment AnalysisStage = "enrichment"
)

// AnalysisError reports a failed analysis and the stage that caused it.
type AnalysisError struct {
	Stage AnalysisStage
	Err   error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Stage, e.Err)
}

// Unwrap implements the unwrap interface.
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

const healthyLabel = "normal"

// AnalysisService orchestrates one scan analysis: classify the image, then
// enrich the label with a disease profile and a treatment catalog, then merge
// into a single normalized result.
type AnalysisService struct {
	gateway providers.InferenceProvider
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(gateway providers.InferenceProvider) *AnalysisService {
	return &AnalysisService{gateway: gateway}
}

// Analyze runs the full pipeline for one image.
//
// The classification stage runs first; enrichment is never attempted without
// a label. The two enrichment lookups run concurrently and fail fast: the
// first error cancels the sibling via the group context, and no partial data
// is exposed to the caller.
func (s *AnalysisService) Analyze(ctx context.Context, image []byte) (*entities.AnalysisResult, error) {
	if len(image) == 0 {
		return nil, &AnalysisError{Stage: StageClassification, Err: errors.New("image payload is empty")}
	}

	outcome, err := s.gateway.Classify(ctx, image)
	if err != nil {
		return nil, &AnalysisError{Stage: StageClassification, Err: err}
	}
	if strings.TrimSpace(outcome.Label) == "" {
		return nil, &AnalysisError{Stage: StageClassification, Err: errors.New("classifier returned no label")}
	}

	if strings.EqualFold(strings.TrimSpace(outcome.Label), healthyLabel) {
		return healthyResult(outcome), nil
	}

	var profile *entities.DiseaseProfile
	var catalog *entities.TreatmentCatalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.gateway.FetchDiseaseProfile(gctx, outcome.Label)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		c, err := s.gateway.FetchTreatmentCatalog(gctx, outcome.Label)
		if err != nil {
			return err
		}
		catalog = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, &AnalysisError{Stage: StageEnrichment, Err: err}
	}

	return mergeResult(outcome, profile, catalog), nil
}

func healthyResult(outcome *entities.PredictionOutcome) *entities.AnalysisResult {
	return &entities.AnalysisResult{
		Disease:    strings.ToUpper(strings.TrimSpace(outcome.Label)),
		Confidence: confidencePercent(outcome.Confidence),
		Healthy:    true,
		Symptoms:   []string{},
		Causes:     []string{},
		Prevention: []string{},
		Medicines:  []entities.Medicine{},
	}
}

func mergeResult(outcome *entities.PredictionOutcome, profile *entities.DiseaseProfile, catalog *entities.TreatmentCatalog) *entities.AnalysisResult {
	result := &entities.AnalysisResult{
		Disease:     strings.ToUpper(strings.TrimSpace(outcome.Label)),
		Confidence:  confidencePercent(outcome.Confidence),
		Healthy:     false,
		Description: profile.Description,
		Symptoms:    profile.Symptoms,
		Causes:      []string{},
		Prevention:  profile.Prevention,
		Medicines:   catalog.Medicines,
	}

	if profile.CausedBy != "" {
		result.Causes = []string{profile.CausedBy}
	}
	if result.Symptoms == nil {
		result.Symptoms = []string{}
	}
	if result.Prevention == nil {
		result.Prevention = []string{}
	}
	if result.Medicines == nil {
		result.Medicines = []entities.Medicine{}
	}

	return result
}

// confidencePercent converts a raw 0.0-1.0 confidence into a percentage
// rounded to two decimals.
func confidencePercent(confidence float64) float64 {
	return math.Round(confidence*100*100) / 100
}
