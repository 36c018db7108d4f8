package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weguard/weguard-backend/internal/api/handlers"
	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
	apperrors "github.com/weguard/weguard-backend/pkg/errors"
)

type stubWeatherAlertService struct {
	alerts    []*entities.WeatherAlert
	created   []*entities.WeatherAlert
	setActive map[string]bool
	filter    repositories.WeatherAlertFilter
}

func newStubWeatherAlertService() *stubWeatherAlertService {
	return &stubWeatherAlertService{setActive: map[string]bool{}}
}

func (s *stubWeatherAlertService) Create(ctx context.Context, alert *entities.WeatherAlert) error {
	if alert.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	alert.ID = "alert-1"
	s.created = append(s.created, alert)
	return nil
}

func (s *stubWeatherAlertService) List(ctx context.Context, filter repositories.WeatherAlertFilter) ([]*entities.WeatherAlert, error) {
	s.filter = filter
	return s.alerts, nil
}

func (s *stubWeatherAlertService) GetByID(ctx context.Context, id string) (*entities.WeatherAlert, error) {
	for _, alert := range s.alerts {
		if alert.ID == id {
			return alert, nil
		}
	}
	return nil, apperrors.NewNotFoundError("weather alert not found")
}

func (s *stubWeatherAlertService) Update(ctx context.Context, alert *entities.WeatherAlert) error {
	return nil
}

func (s *stubWeatherAlertService) SetActive(ctx context.Context, id string, active bool) error {
	s.setActive[id] = active
	return nil
}

func (s *stubWeatherAlertService) Delete(ctx context.Context, id string) error {
	return nil
}

func TestWeatherAlertHandler_List_ParsesFilter(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	req := httptest.NewRequest("GET", "/api/weather-alerts?active=true&region=Ampara", nil)
	w := httptest.NewRecorder()

	handler.ListWeatherAlerts(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ampara", service.filter.Region)
	if assert.NotNil(t, service.filter.Active) {
		assert.True(t, *service.filter.Active)
	}
}

func TestWeatherAlertHandler_Create_Success(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	body := `{"title":"Heavy rainfall","message":"Flooding expected","severity":"high","region":"Ampara"}`
	req := httptest.NewRequest("POST", "/api/weather-alerts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateWeatherAlert(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, service.created, 1)
}

func TestWeatherAlertHandler_Create_ValidationError(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	req := httptest.NewRequest("POST", "/api/weather-alerts", strings.NewReader(`{"message":"no title"}`))
	w := httptest.NewRecorder()

	handler.CreateWeatherAlert(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.False(t, response.Success)
	assert.Equal(t, "title is required", response.Error)
}

func TestWeatherAlertHandler_Get_NotFound(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	req := httptest.NewRequest("GET", "/api/weather-alerts/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetWeatherAlert(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWeatherAlertHandler_Toggle_RequiresActiveFlag(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	req := httptest.NewRequest("PATCH", "/api/weather-alerts/alert-1", strings.NewReader(`{}`))
	req.SetPathValue("id", "alert-1")
	w := httptest.NewRecorder()

	handler.ToggleWeatherAlert(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.setActive)
}

func TestWeatherAlertHandler_Toggle_Success(t *testing.T) {
	service := newStubWeatherAlertService()
	handler := handlers.NewWeatherAlertHandler(service)

	req := httptest.NewRequest("PATCH", "/api/weather-alerts/alert-1", strings.NewReader(`{"active":false}`))
	req.SetPathValue("id", "alert-1")
	w := httptest.NewRecorder()

	handler.ToggleWeatherAlert(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"alert-1": false}, service.setActive)
}
