package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
	"github.com/tandem-ai/tandem-engine/pkg/services"
)

// MenuHandler serves menus with nested items.
type MenuHandler struct {
	resolver services.RestaurantResolver
	repo     repositories.MenuRepository
	logger   *zap.Logger
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(resolver services.RestaurantResolver, repo repositories.MenuRepository, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{resolver: resolver, repo: repo, logger: logger.Named("menu-handler")}
}

// RegisterRoutes registers the menu route on the given mux.
func (h *MenuHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/menus", h.List)
}

// List handles GET /api/menus requests. Without a ?restaurant= filter every
// menu is returned.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		menus []models.Menu
		err   error
	)

	if ref := r.URL.Query().Get("restaurant"); ref != "" {
		var id string
		id, err = h.resolver.Resolve(r.Context(), ref)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				_ = ErrorResponse(w, http.StatusNotFound, "restaurant slug not found")
				return
			}
			h.logger.Error("slug resolution failed", zap.String("ref", ref), zap.Error(err))
			_ = ErrorResponse(w, http.StatusInternalServerError, "slug resolution failed")
			return
		}
		menus, err = h.repo.ListByRestaurant(r.Context(), id)
	} else {
		menus, err = h.repo.ListAll(r.Context())
	}

	if err != nil {
		h.logger.Error("menu fetch failed", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "store failure")
		return
	}
	if menus == nil {
		menus = []models.Menu{}
	}

	if err := WriteJSON(w, http.StatusOK, menus); err != nil {
		h.logger.Error("Failed to encode menu response", zap.Error(err))
	}
}
