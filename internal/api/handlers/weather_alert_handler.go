package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
)

// WeatherAlertService defines the alert operations used by the handler.
type WeatherAlertService interface {
	Create(ctx context.Context, alert *entities.WeatherAlert) error
	List(ctx context.Context, filter repositories.WeatherAlertFilter) ([]*entities.WeatherAlert, error)
	GetByID(ctx context.Context, id string) (*entities.WeatherAlert, error)
	Update(ctx context.Context, alert *entities.WeatherAlert) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// WeatherAlertHandler handles weather alert requests.
type WeatherAlertHandler struct {
	service WeatherAlertService
}

// NewWeatherAlertHandler creates a new weather alert handler.
func NewWeatherAlertHandler(service WeatherAlertService) *WeatherAlertHandler {
	return &WeatherAlertHandler{service: service}
}

// ListWeatherAlerts handles GET /api/weather-alerts
func (h *WeatherAlertHandler) ListWeatherAlerts(w http.ResponseWriter, r *http.Request) {
	filter := repositories.WeatherAlertFilter{
		Region: r.URL.Query().Get("region"),
	}

	if active := r.URL.Query().Get("active"); active != "" {
		if parsed, err := strconv.ParseBool(active); err == nil {
			filter.Active = &parsed
		}
	}

	alerts, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err, "failed to list weather alerts")
		return
	}
	if alerts == nil {
		alerts = []*entities.WeatherAlert{}
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"count":  len(alerts),
	})
}

// GetWeatherAlert handles GET /api/weather-alerts/{id}
func (h *WeatherAlertHandler) GetWeatherAlert(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "weather alert ID is required")
		return
	}

	alert, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get weather alert")
		return
	}

	respondWithData(w, http.StatusOK, alert)
}

// CreateWeatherAlert handles POST /api/weather-alerts
func (h *WeatherAlertHandler) CreateWeatherAlert(w http.ResponseWriter, r *http.Request) {
	var alert entities.WeatherAlert
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &alert); err != nil {
		respondWithAppError(w, err, "failed to create weather alert")
		return
	}

	respondWithData(w, http.StatusCreated, alert)
}

// UpdateWeatherAlert handles PUT /api/weather-alerts/{id}
func (h *WeatherAlertHandler) UpdateWeatherAlert(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "weather alert ID is required")
		return
	}

	var alert entities.WeatherAlert
	if err := json.NewDecoder(r.Body).Decode(&alert); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	alert.ID = id

	if err := h.service.Update(r.Context(), &alert); err != nil {
		respondWithAppError(w, err, "failed to update weather alert")
		return
	}

	respondWithData(w, http.StatusOK, alert)
}

type toggleActiveRequest struct {
	Active *bool `json:"active"`
}

// ToggleWeatherAlert handles PATCH /api/weather-alerts/{id}
func (h *WeatherAlertHandler) ToggleWeatherAlert(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "weather alert ID is required")
		return
	}

	var payload toggleActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.Active == nil {
		respondWithError(w, http.StatusBadRequest, "active is required")
		return
	}

	if err := h.service.SetActive(r.Context(), id, *payload.Active); err != nil {
		respondWithAppError(w, err, "failed to update weather alert")
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"id":     id,
		"active": *payload.Active,
	})
}

// DeleteWeatherAlert handles DELETE /api/weather-alerts/{id}
func (h *WeatherAlertHandler) DeleteWeatherAlert(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "weather alert ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to delete weather alert")
		return
	}

	respondWithData(w, http.StatusOK, map[string]string{"id": id})
}
