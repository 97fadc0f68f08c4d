package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// WinePairingHandler serves raw pairing lookups. Unlike the chat tool, the
// response carries the row untouched; no notes truncation, no rendering.
type WinePairingHandler struct {
	repo   repositories.WinePairingRepository
	logger *zap.Logger
}

// NewWinePairingHandler creates a new WinePairingHandler.
func NewWinePairingHandler(repo repositories.WinePairingRepository, logger *zap.Logger) *WinePairingHandler {
	return &WinePairingHandler{repo: repo, logger: logger.Named("wine-pairing-handler")}
}

// RegisterRoutes registers the wine pairing route on the given mux.
func (h *WinePairingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/wine-pairing", h.Lookup)
}

// Lookup handles POST /api/wine-pairing requests.
func (h *WinePairingHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dish string `json:"dish"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "Missing dish name")
		return
	}
	if strings.TrimSpace(req.Dish) == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "Missing dish name")
		return
	}

	pairing, err := h.repo.Lookup(r.Context(), req.Dish)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "no pairing found")
			return
		}
		h.logger.Error("pairing lookup failed", zap.String("dish", req.Dish), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}

	response := map[string]string{
		"dish":  pairing.Dish,
		"wine":  pairing.Wine,
		"notes": pairing.Notes,
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode pairing response", zap.Error(err))
	}
}
