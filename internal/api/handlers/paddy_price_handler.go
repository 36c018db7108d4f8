package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/weguard/weguard-backend/internal/domain/entities"
	"github.com/weguard/weguard-backend/internal/domain/repositories"
)

// PaddyPriceService defines the price operations used by the handler.
type PaddyPriceService interface {
	Create(ctx context.Context, price *entities.PaddyPrice) error
	List(ctx context.Context, filter repositories.PaddyPriceFilter) ([]*entities.PaddyPrice, error)
	GetByID(ctx context.Context, id string) (*entities.PaddyPrice, error)
	Update(ctx context.Context, price *entities.PaddyPrice) error
	Delete(ctx context.Context, id string) error
}

// PaddyPriceHandler handles market price requests.
type PaddyPriceHandler struct {
	service PaddyPriceService
}

// NewPaddyPriceHandler creates a new paddy price handler.
func NewPaddyPriceHandler(service PaddyPriceService) *PaddyPriceHandler {
	return &PaddyPriceHandler{service: service}
}

// ListPaddyPrices handles GET /api/paddy-prices
func (h *PaddyPriceHandler) ListPaddyPrices(w http.ResponseWriter, r *http.Request) {
	filter := repositories.PaddyPriceFilter{
		Variety: r.URL.Query().Get("variety"),
		Region:  r.URL.Query().Get("region"),
	}

	prices, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, err, "failed to list paddy prices")
		return
	}
	if prices == nil {
		prices = []*entities.PaddyPrice{}
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"prices": prices,
		"count":  len(prices),
	})
}

// GetPaddyPrice handles GET /api/paddy-prices/{id}
func (h *PaddyPriceHandler) GetPaddyPrice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "paddy price ID is required")
		return
	}

	price, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err, "failed to get paddy price")
		return
	}

	respondWithData(w, http.StatusOK, price)
}

// CreatePaddyPrice handles POST /api/paddy-prices
func (h *PaddyPriceHandler) CreatePaddyPrice(w http.ResponseWriter, r *http.Request) {
	var price entities.PaddyPrice
	if err := json.NewDecoder(r.Body).Decode(&price); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.Create(r.Context(), &price); err != nil {
		respondWithAppError(w, err, "failed to create paddy price")
		return
	}

	respondWithData(w, http.StatusCreated, price)
}

// UpdatePaddyPrice handles PUT /api/paddy-prices/{id}
func (h *PaddyPriceHandler) UpdatePaddyPrice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "paddy price ID is required")
		return
	}

	var price entities.PaddyPrice
	if err := json.NewDecoder(r.Body).Decode(&price); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	price.ID = id

	if err := h.service.Update(r.Context(), &price); err != nil {
		respondWithAppError(w, err, "failed to update paddy price")
		return
	}

	respondWithData(w, http.StatusOK, price)
}

// DeletePaddyPrice handles DELETE /api/paddy-prices/{id}
func (h *PaddyPriceHandler) DeletePaddyPrice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "paddy price ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondWithAppError(w, err, "failed to delete paddy price")
		return
	}

	respondWithData(w, http.StatusOK, map[string]string{"id": id})
}
