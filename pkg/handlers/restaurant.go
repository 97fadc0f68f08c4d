package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
	"github.com/tandem-ai/tandem-engine/pkg/services"
)

// RestaurantHandler serves restaurant record lookups for the widget header.
type RestaurantHandler struct {
	resolver services.RestaurantResolver
	repo     repositories.RestaurantRepository
	logger   *zap.Logger
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(resolver services.RestaurantResolver, repo repositories.RestaurantRepository, logger *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{resolver: resolver, repo: repo, logger: logger.Named("restaurant-handler")}
}

// RegisterRoutes registers the restaurant route on the given mux.
func (h *RestaurantHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/restaurant", h.Get)
}

// Get handles GET /api/restaurant?id= requests. The id parameter accepts a
// UUID, slug, or domain; ?restaurant= is an accepted alias.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("id")
	if ref == "" {
		ref = r.URL.Query().Get("restaurant")
	}
	if ref == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "restaurant id or slug required")
		return
	}

	id, err := h.resolver.Resolve(r.Context(), ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "restaurant slug not found")
			return
		}
		h.logger.Error("slug resolution failed", zap.String("ref", ref), zap.Error(err))
		_ = ErrorResponse(w, http.StatusInternalServerError, "slug resolution failed")
		return
	}

	restaurant, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			_ = ErrorResponse(w, http.StatusNotFound, "restaurant not found")
			return
		}
		h.logger.Error("restaurant fetch failed", zap.String("id", id), zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "store failure")
		return
	}

	if err := WriteJSON(w, http.StatusOK, restaurant); err != nil {
		h.logger.Error("Failed to encode restaurant response", zap.Error(err))
	}
}
