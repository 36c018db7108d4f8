package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/api/handlers"
	"github.com/weguard/weguard-backend/internal/application/services"
	"github.com/weguard/weguard-backend/internal/domain/entities"
)

type stubAnalyzer struct {
	result *entities.AnalysisResult
	err    error
	images [][]byte
}

func (s *stubAnalyzer) Analyze(ctx context.Context, image []byte) (*entities.AnalysisResult, error) {
	s.images = append(s.images, image)
	return s.result, s.err
}

func newScanRequest(t *testing.T, field string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "leaf.jpg")
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/analysis", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAnalysisHandler_AnalyzeScan_Success(t *testing.T) {
	analyzer := &stubAnalyzer{
		result: &entities.AnalysisResult{
			Disease:    "BROWN_SPOT",
			Confidence: 95.3,
			Symptoms:   []string{"brown lesions"},
			Causes:     []string{"Bipolaris oryzae"},
			Prevention: []string{},
			Medicines:  []entities.Medicine{},
		},
	}
	handler := handlers.NewAnalysisHandler(analyzer)

	w := httptest.NewRecorder()
	handler.AnalyzeScan(w, newScanRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, analyzer.images, 1)
	assert.Equal(t, []byte("jpeg-bytes"), analyzer.images[0])

	var response struct {
		Success bool                    `json:"success"`
		Data    entities.AnalysisResult `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "BROWN_SPOT", response.Data.Disease)
	assert.Equal(t, 95.3, response.Data.Confidence)
}

func TestAnalysisHandler_AnalyzeScan_MissingFile(t *testing.T) {
	analyzer := &stubAnalyzer{}
	handler := handlers.NewAnalysisHandler(analyzer)

	w := httptest.NewRecorder()
	handler.AnalyzeScan(w, newScanRequest(t, "wrong_field", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, analyzer.images)
}

func TestAnalysisHandler_AnalyzeScan_FailureReturnsFallback(t *testing.T) {
	analyzer := &stubAnalyzer{
		err: &services.AnalysisError{Stage: services.StageEnrichment, Err: errors.New("lookup failed")},
	}
	handler := handlers.NewAnalysisHandler(analyzer)

	w := httptest.NewRecorder()
	handler.AnalyzeScan(w, newScanRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response struct {
		Success bool                    `json:"success"`
		Error   string                  `json:"error"`
		Data    entities.AnalysisResult `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
	assert.Equal(t, "Analysis Failed", response.Data.Disease)
	assert.Zero(t, response.Data.Confidence)
	assert.Empty(t, response.Data.Medicines)
}
