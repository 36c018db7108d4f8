package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/providers"
	"github.com/weguard/weguard-backend/pkg/config"
)

const (
	defaultClassifyTimeout   = 30 * time.Second
	defaultEnrichmentTimeout = 10 * time.Second
)

// HTTPGateway implements the InferenceProvider against the external
// disease-prediction HTTP service. Calls are single-shot: no retries,
// a failed call aborts the caller's aggregation.
type HTTPGateway struct {
	baseURL        string
	classifyClient *http.Client
	lookupClient   *http.Client
}

// NewHTTPGateway creates a new inference gateway.
func NewHTTPGateway(cfg *config.InferenceConfig) providers.InferenceProvider {
	classifyTimeout := defaultClassifyTimeout
	if cfg.ClassifyTimeoutSecs > 0 {
		classifyTimeout = time.Duration(cfg.ClassifyTimeoutSecs) * time.Second
	}
	enrichmentTimeout := defaultEnrichmentTimeout
	if cfg.EnrichmentTimeoutSecs > 0 {
		enrichmentTimeout = time.Duration(cfg.EnrichmentTimeoutSecs) * time.Second
	}

	return &HTTPGateway{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		classifyClient: &http.Client{Timeout: classifyTimeout},
		lookupClient:   &http.Client{Timeout: enrichmentTimeout},
	}
}

// NewHTTPGatewayWithOptions allows overriding the HTTP clients (used for tests).
func NewHTTPGatewayWithOptions(cfg *config.InferenceConfig, classifyClient, lookupClient *http.Client) providers.InferenceProvider {
	gateway := NewHTTPGateway(cfg).(*HTTPGateway)
	if classifyClient != nil {
		gateway.classifyClient = classifyClient
	}
	if lookupClient != nil {
		gateway.lookupClient = lookupClient
	}
	return gateway
}

type predictResponse struct {
	PredictedClass *string  `json:"predicted_class"`
	Confidence     *float64 `json:"confidence"`
}

type diseaseInfoResponse struct {
	Info *entities.DiseaseProfile `json:"info"`
}

type medicinesResponse struct {
	RecommendedMedicines []entities.Medicine `json:"recommended_medicines"`
}

// Classify sends a multipart image upload to the predictor.
func (g *HTTPGateway) Classify(ctx context.Context, image []byte) (*entities.PredictionOutcome, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "classify", Err: err}
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "classify", Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "classify", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/predict", body)
	if err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "classify", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := g.classifyClient.Do(req)
	if err != nil {
		return nil, transportError("classify", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "classify", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "classify", Err: err}
	}
	if payload.PredictedClass == nil || payload.Confidence == nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "classify", Err: errors.New("missing predicted_class or confidence")}
	}

	return &entities.PredictionOutcome{
		Label:      *payload.PredictedClass,
		Confidence: *payload.Confidence,
	}, nil
}

// FetchDiseaseProfile looks up disease metadata by URL-encoded label.
func (g *HTTPGateway) FetchDiseaseProfile(ctx context.Context, label string) (*entities.DiseaseProfile, error) {
	endpoint := g.baseURL + "/disease-info/" + url.PathEscape(label)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "disease-info", Err: err}
	}

	resp, err := g.lookupClient.Do(req)
	if err != nil {
		return nil, transportError("disease-info", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "disease-info", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload diseaseInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "disease-info", Err: err}
	}
	if payload.Info == nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "disease-info", Err: errors.New("missing info object")}
	}

	return payload.Info, nil
}

// FetchTreatmentCatalog looks up recommended medicines with the label as a query parameter.
func (g *HTTPGateway) FetchTreatmentCatalog(ctx context.Context, label string) (*entities.TreatmentCatalog, error) {
	params := url.Values{}
	params.Set("name", label)
	endpoint := g.baseURL + "/disease-medicines?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "disease-medicines", Err: err}
	}

	resp, err := g.lookupClient.Do(req)
	if err != nil {
		return nil, transportError("disease-medicines", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{Kind: ErrorKindHTTP, Op: "disease-medicines", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload medicinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "disease-medicines", Err: err}
	}
	if payload.RecommendedMedicines == nil {
		return nil, &GatewayError{Kind: ErrorKindMalformed, Op: "disease-medicines", Err: errors.New("missing recommended_medicines")}
	}

	return &entities.TreatmentCatalog{Medicines: payload.RecommendedMedicines}, nil
}

func transportError(op string, err error) *GatewayError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &GatewayError{Kind: ErrorKindTimeout, Op: op, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GatewayError{Kind: ErrorKindTimeout, Op: op, Err: err}
	}
	return &GatewayError{Kind: ErrorKindHTTP, Op: op, Err: err}
}
