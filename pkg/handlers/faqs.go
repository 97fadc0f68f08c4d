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

// FaqHandler serves the FAQ list for a restaurant.
type FaqHandler struct {
	resolver services.RestaurantResolver
	repo     repositories.FaqRepository
	logger   *zap.Logger
}

// NewFaqHandler creates a new FaqHandler.
func NewFaqHandler(resolver services.RestaurantResolver, repo repositories.FaqRepository, logger *zap.Logger) *FaqHandler {
	return &FaqHandler{resolver: resolver, repo: repo, logger: logger.Named("faq-handler")}
}

// RegisterRoutes registers the FAQ route on the given mux.
func (h *FaqHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/faqs", h.List)
}

// List handles GET /api/faqs?restaurant= requests; ?id= is an accepted alias.
func (h *FaqHandler) List(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("restaurant")
	if ref == "" {
		ref = r.URL.Query().Get("id")
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

	faqs, err := h.repo.ListByRestaurant(r.Context(), id)
	if err != nil {
		h.logger.Error("faq fetch failed", zap.String("id", id), zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadGateway, "store failure")
		return
	}
	if faqs == nil {
		faqs = []models.Faq{}
	}

	if err := WriteJSON(w, http.StatusOK, faqs); err != nil {
		h.logger.Error("Failed to encode faq response", zap.Error(err))
	}
}
