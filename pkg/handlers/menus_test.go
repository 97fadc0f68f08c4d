package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/models"
)

type mockMenuRepo struct {
	listByRestaurantFunc func(ctx context.Context, restaurantID string) ([]models.Menu, error)
	listAllFunc          func(ctx context.Context) ([]models.Menu, error)
}

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

func TestMenus_ListAll(t *testing.T) {
	repo := &mockMenuRepo{
		listAllFunc: func(_ context.Context) ([]models.Menu, error) {
			return []models.Menu{
				{Title: "Small Plates", Items: []models.MenuItem{{Name: "Crab Dip"}}},
			}, nil
		},
	}
	handler := NewMenuHandler(passthroughResolver(), repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/menus", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var menus []models.Menu
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menus))
	require.Len(t, menus, 1)
	assert.Equal(t, "Crab Dip", menus[0].Items[0].Name)
}

func TestMenus_FilteredByRestaurant(t *testing.T) {
	repo := &mockMenuRepo{
		listByRestaurantFunc: func(_ context.Context, id string) ([]models.Menu, error) {
			assert.Equal(t, "a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11", id)
			return []models.Menu{{Title: "Entrees"}}, nil
		},
	}
	handler := NewMenuHandler(passthroughResolver(), repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/menus?restaurant=windmill-creek", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Entrees")
}

func TestMenus_StoreFailure(t *testing.T) {
	repo := &mockMenuRepo{
		listAllFunc: func(_ context.Context) ([]models.Menu, error) {
			return nil, assert.AnError
		},
	}
	handler := NewMenuHandler(passthroughResolver(), repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/menus", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"store failure"}`, rec.Body.String())
}
