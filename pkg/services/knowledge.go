package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// KnowledgeFetcher gathers everything the prompt assembler needs about a
// restaurant in one call.
type KnowledgeFetcher interface {
	// Fetch loads the restaurant record, its menus with nested items, its
	// FAQs, and its contact settings. The four reads run concurrently.
	// A missing restaurant is apperrors.ErrNotFound; menu and FAQ read
	// failures are apperrors.ErrUpstream. Contact-settings failures are
	// swallowed since the section is optional enrichment.
	Fetch(ctx context.Context, restaurantID string) (*models.Knowledge, error)
}

type knowledgeFetcher struct {
	restaurantRepo repositories.RestaurantRepository
	menuRepo       repositories.MenuRepository
	faqRepo        repositories.FaqRepository
	logger         *zap.Logger
}

// NewKnowledgeFetcher creates a fetcher over the given repositories.
func NewKnowledgeFetcher(
	restaurantRepo repositories.RestaurantRepository,
	menuRepo repositories.MenuRepository,
	faqRepo repositories.FaqRepository,
	logger *zap.Logger,
) KnowledgeFetcher {
	return &knowledgeFetcher{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		faqRepo:        faqRepo,
		logger:         logger.Named("knowledge"),
	}
}

var _ KnowledgeFetcher = (*knowledgeFetcher)(nil)

func (f *knowledgeFetcher) Fetch(ctx context.Context, restaurantID string) (*models.Knowledge, error) {
	var (
		wg sync.WaitGroup

		restaurant    *models.Restaurant
		restaurantErr error
		menus         []models.Menu
		menusErr      error
		faqs          []models.Faq
		faqsErr       error
		settings      *models.ContactSettings
		settingsErr   error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		restaurant, restaurantErr = f.restaurantRepo.GetByID(ctx, restaurantID)
	}()
	go func() {
		defer wg.Done()
		menus, menusErr = f.menuRepo.ListByRestaurant(ctx, restaurantID)
	}()
	go func() {
		defer wg.Done()
		faqs, faqsErr = f.faqRepo.ListByRestaurant(ctx, restaurantID)
	}()
	go func() {
		defer wg.Done()
		settings, settingsErr = f.restaurantRepo.GetContactSettings(ctx, restaurantID)
	}()
	wg.Wait()

	if restaurantErr != nil {
		if errors.Is(restaurantErr, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: restaurant fetch: %v", apperrors.ErrUpstream, restaurantErr)
	}
	if menusErr != nil {
		return nil, fmt.Errorf("%w: menu fetch: %v", apperrors.ErrUpstream, menusErr)
	}
	if faqsErr != nil {
		return nil, fmt.Errorf("%w: faq fetch: %v", apperrors.ErrUpstream, faqsErr)
	}
	if settingsErr != nil {
		// Optional enrichment, never fatal.
		f.logger.Debug("contact settings fetch failed",
			zap.String("restaurant_id", restaurantID),
			zap.Error(settingsErr))
		settings = nil
	}

	return &models.Knowledge{
		Restaurant:      restaurant,
		Menus:           menus,
		Faqs:            faqs,
		ContactSettings: settings,
	}, nil
}
