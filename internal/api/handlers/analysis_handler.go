package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/infrastructure/observability"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

// Uploaded scan images are capped well above typical phone camera output.
const maxScanImageBytes = 10 << 20

// Analyzer runs the scan analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte) (*entities.AnalysisResult, error)
}

// AnalysisHandler handles crop scan analysis requests.
type AnalysisHandler struct {
	analyzer Analyzer
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// AnalyzeScan handles POST /api/analysis
func (h *AnalysisHandler) AnalyzeScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxScanImageBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "failed to read image")
		return
	}
	if len(image) == 0 {
		respondWithError(w, http.StatusBadRequest, "image file is empty")
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), image)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		var analysisErr *services.AnalysisError
		if errors.As(err, &analysisErr) {
			logger.Error().Err(err).Str("stage", string(analysisErr.Stage)).Msg("scan analysis failed")
		} else {
			logger.Error().Err(err).Msg("scan analysis failed")
		}
		// The classification outcome is discarded on enrichment failure; the
		// client receives the generic failure record, never partial data.
		respondWithJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "analysis failed",
			"data":    entities.FailedAnalysisResult(),
		})
		return
	}

	respondWithData(w, http.StatusOK, result)
}

// Helper functions shared by all handlers in this package.

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithData(w http.ResponseWriter, statusCode int, data interface{}) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// respondWithAppError maps typed application errors to HTTP statuses.
func respondWithAppError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusInternalServerError, fallback)
		default:
			respondWithError(w, http.StatusInternalServerError, fallback)
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, fallback)
}
