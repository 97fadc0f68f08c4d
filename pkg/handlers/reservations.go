package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// ReservationRequest is the POST /api/reservations body.
type ReservationRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PartySize    int    `json:"party_size"`
	RequestedAt  string `json:"requested_at"`
	Notes        string `json:"notes"`
}

// ReservationHandler accepts reservation requests from the widget. This is
// the only write endpoint; it uses the privileged pool when one is
// configured.
type ReservationHandler struct {
	repo   repositories.ReservationRepository
	logger *zap.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(repo repositories.ReservationRepository, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{repo: repo, logger: logger.Named("reservation-handler")}
}

// RegisterRoutes registers the reservation route on the given mux.
func (h *ReservationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/reservations", h.Create)
}

// Create handles POST /api/reservations requests.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing restaurant_id")
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "missing restaurant_id")
		return
	}

	reservation := &models.Reservation{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PartySize:    req.PartySize,
		RequestedAt:  req.RequestedAt,
		Notes:        req.Notes,
	}

	if err := h.repo.Create(r.Context(), reservation); err != nil {
		if errors.Is(err, apperrors.ErrStoreNotConfigured) {
			_ = ErrorResponse(w, http.StatusInternalServerError, "store not configured")
			return
		}
		h.logger.Error("reservation create failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "store failure")
		return
	}

	if err := WriteJSON(w, http.StatusCreated, reservation); err != nil {
		h.logger.Error("Failed to encode reservation response", zap.Error(err))
	}
}
