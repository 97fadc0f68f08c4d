package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/services"
)

// ChatHandler exposes the chat pipeline to the widget.
type ChatHandler struct {
	service services.ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger.Named("chat-handler")}
}

// RegisterRoutes registers the chat routes on the given mux. Both paths
// serve the same pipeline; /chat exists for older widget embeds.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.Chat)
	mux.HandleFunc("POST /api/chat", h.Chat)
}

// Chat handles POST /chat and POST /api/chat requests.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req services.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, reply); err != nil {
		h.logger.Error("Failed to encode chat response", zap.Error(err))
	}
}

func (h *ChatHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "restaurant slug not found")
	case errors.Is(err, apperrors.ErrStoreNotConfigured):
		_ = ErrorResponse(w, http.StatusInternalServerError, "store not configured")
	case errors.Is(err, apperrors.ErrUpstream):
		h.logger.Error("chat pipeline upstream failure", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "upstream service failure")
	default:
		h.logger.Error("chat pipeline failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
