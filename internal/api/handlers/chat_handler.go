package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/weguard/weguard-backend/internal/domain/providers"
	"github.com/weguard/weguard-backend/internal/infrastructure/observability"
)

// ChatHandler relays advisory questions to the generative-language API.
type ChatHandler struct {
	provider providers.ChatProvider
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(provider providers.ChatProvider) *ChatHandler {
	return &ChatHandler{provider: provider}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Upstream status and body are logged server-side only; the client
	// receives a single opaque failure message.
	text, err := h.provider.Relay(r.Context(), payload.Message)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("chat relay failed")
		respondWithError(w, http.StatusInternalServerError, "failed to get response from assistant")
		return
	}

	respondWithData(w, http.StatusOK, map[string]string{"response": text})
}
