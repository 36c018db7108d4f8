package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_InferenceConfig(t *testing.T) {
	os.Setenv("INFERENCE_BASE_URL", "http://predictor:8000")
	os.Setenv("INFERENCE_CLASSIFY_TIMEOUT_SECONDS", "45")
	defer func() {
		os.Unsetenv("INFERENCE_BASE_URL")
		os.Unsetenv("INFERENCE_CLASSIFY_TIMEOUT_SECONDS")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://predictor:8000", cfg.Inference.BaseURL)
	assert.Equal(t, 45, cfg.Inference.ClassifyTimeoutSecs)
	assert.Equal(t, 10, cfg.Inference.EnrichmentTimeoutSecs)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("INFERENCE_BASE_URL")
	os.Unsetenv("GEMINI_MODEL")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Inference.BaseURL)
	assert.Equal(t, 30, cfg.Inference.ClassifyTimeoutSecs)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_AllowedOriginsList(t *testing.T) {
	os.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")
	defer os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "weguard",
		Password: "secret",
		Database: "weguard",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=weguard password=secret dbname=weguard sslmode=disable", cfg.DatabaseDSN())
}
