package inference_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/adapters/providers/inference"
	"github.com/weguard/weguard-backend/pkg/config"
)

func newTestGateway(serverURL string) *inference.HTTPGateway {
	cfg := &config.InferenceConfig{BaseURL: serverURL}
	return inference.NewHTTPGateway(cfg).(*inference.HTTPGateway)
}

func TestHTTPGateway_Classify_Success(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")

		err := r.ParseMultipartForm(1 << 20)
		assert.NoError(t, err)
		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "image.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predicted_class":"brown_spot","confidence":0.87}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	outcome, err := gateway.Classify(context.Background(), []byte("fake-image"))

	assert.NoError(t, err)
	assert.Equal(t, "brown_spot", outcome.Label)
	assert.Equal(t, 0.87, outcome.Confidence)
	assert.Contains(t, gotContentType, "multipart/form-data")
}

func TestHTTPGateway_Classify_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	_, err := gateway.Classify(context.Background(), []byte("fake-image"))

	var gatewayErr *inference.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, inference.ErrorKindHTTP, gatewayErr.Kind)
}

func TestHTTPGateway_Classify_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	_, err := gateway.Classify(context.Background(), []byte("fake-image"))

	var gatewayErr *inference.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, inference.ErrorKindMalformed, gatewayErr.Kind)
}

func TestHTTPGateway_Classify_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"predicted_class":"normal","confidence":0.9}`))
	}))
	defer server.Close()

	cfg := &config.InferenceConfig{BaseURL: server.URL}
	gateway := inference.NewHTTPGatewayWithOptions(cfg, &http.Client{Timeout: 20 * time.Millisecond}, nil)

	_, err := gateway.Classify(context.Background(), []byte("fake-image"))

	var gatewayErr *inference.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, inference.ErrorKindTimeout, gatewayErr.Kind)
}

func TestHTTPGateway_FetchDiseaseProfile_EncodesLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/disease-info/bacterial%20leaf%20blight", r.URL.EscapedPath())
		w.Write([]byte(`{"info":{"description":"Bacterial disease","symptoms":["wilting"],"caused_by":"Xanthomonas oryzae","prevention":["resistant varieties"]}}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	profile, err := gateway.FetchDiseaseProfile(context.Background(), "bacterial leaf blight")

	assert.NoError(t, err)
	assert.Equal(t, "Bacterial disease", profile.Description)
	assert.Equal(t, "Xanthomonas oryzae", profile.CausedBy)
	assert.Equal(t, []string{"wilting"}, profile.Symptoms)
}

func TestHTTPGateway_FetchDiseaseProfile_MissingInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	_, err := gateway.FetchDiseaseProfile(context.Background(), "blast")

	var gatewayErr *inference.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, inference.ErrorKindMalformed, gatewayErr.Kind)
}

func TestHTTPGateway_FetchTreatmentCatalog_QueryParameter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/disease-medicines", r.URL.Path)
		assert.Equal(t, "leaf smut", r.URL.Query().Get("name"))
		w.Write([]byte(`{"recommended_medicines":[{"name":"Propiconazole","application_rate":"1ml/L","frequency":"biweekly"}]}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	catalog, err := gateway.FetchTreatmentCatalog(context.Background(), "leaf smut")

	assert.NoError(t, err)
	assert.Len(t, catalog.Medicines, 1)
	assert.Equal(t, "Propiconazole", catalog.Medicines[0].Name)
}

func TestHTTPGateway_FetchTreatmentCatalog_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)
	_, err := gateway.FetchTreatmentCatalog(context.Background(), "blast")

	var gatewayErr *inference.GatewayError
	assert.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, inference.ErrorKindHTTP, gatewayErr.Kind)
}
