package services

import (
	"context"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

// Function-field mocks shared by the service tests. Unset fields fall back
// to empty results.

type mockRestaurantRepo struct {
	getByIDFunc            func(ctx context.Context, id string) (*models.Restaurant, error)
	findIDBySlugFunc       func(ctx context.Context, slug string) (string, bool, error)
	findIDByDomainFunc     func(ctx context.Context, domain string) (string, bool, error)
	findIDByNameLikeFunc   func(ctx context.Context, candidate string) (string, bool, error)
	getContactSettingsFunc func(ctx context.Context, restaurantID string) (*models.ContactSettings, error)

	slugCalls   int
	domainCalls int
	nameCalls   int
}

var _ repositories.RestaurantRepository = (*mockRestaurantRepo)(nil)

func (m *mockRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockRestaurantRepo) FindIDBySlug(ctx context.Context, slug string) (string, bool, error) {
	m.slugCalls++
	if m.findIDBySlugFunc != nil {
		return m.findIDBySlugFunc(ctx, slug)
	}
	return "", false, nil
}

func (m *mockRestaurantRepo) FindIDByDomain(ctx context.Context, domain string) (string, bool, error) {
	m.domainCalls++
	if m.findIDByDomainFunc != nil {
		return m.findIDByDomainFunc(ctx, domain)
	}
	return "", false, nil
}

func (m *mockRestaurantRepo) FindIDByNameLike(ctx context.Context, candidate string) (string, bool, error) {
	m.nameCalls++
	if m.findIDByNameLikeFunc != nil {
		return m.findIDByNameLikeFunc(ctx, candidate)
	}
	return "", false, nil
}

func (m *mockRestaurantRepo) GetContactSettings(ctx context.Context, restaurantID string) (*models.ContactSettings, error) {
	if m.getContactSettingsFunc != nil {
		return m.getContactSettingsFunc(ctx, restaurantID)
	}
	return nil, nil
}

type mockMenuRepo struct {
	listByRestaurantFunc func(ctx context.Context, restaurantID string) ([]models.Menu, error)
	listAllFunc          func(ctx context.Context) ([]models.Menu, error)
}

var _ repositories.MenuRepository = (*mockMenuRepo)(nil)

func (m *mockMenuRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	if m.listByRestaurantFunc != nil {
		return m.listByRestaurantFunc(ctx, restaurantID)
	}
	return nil, nil
}

func (m *mockMenuRepo) ListAll(ctx context.Context) ([]models.Menu, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

type mockFaqRepo struct {
	listByRestaurantFunc func(ctx context.Context, restaurantID string) ([]models.Faq, error)
}

var _ repositories.FaqRepository = (*mockFaqRepo)(nil)

func (m *mockFaqRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Faq, error) {
	if m.listByRestaurantFunc != nil {
		return m.listByRestaurantFunc(ctx, restaurantID)
	}
	return nil, nil
}

type mockPairingRepo struct {
	lookupFunc  func(ctx context.Context, dish string) (*models.WinePairing, error)
	lookupCalls int
}

var _ repositories.WinePairingRepository = (*mockPairingRepo)(nil)

func (m *mockPairingRepo) Lookup(ctx context.Context, dish string) (*models.WinePairing, error) {
	m.lookupCalls++
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, dish)
	}
	return nil, apperrors.ErrNotFound
}
