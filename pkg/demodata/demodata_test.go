package demodata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
)

func TestNew_ParsesEmbeddedDataset(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	restaurant, err := store.Restaurants().GetByID(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "Windmill Creek Vineyard & Winery", restaurant.Name)
	assert.Equal(t, "Windmill Creek", restaurant.ShortName)

	menus, err := store.Menus().ListByRestaurant(context.Background(), restaurant.ID.String())
	require.NoError(t, err)
	require.NotEmpty(t, menus)
	assert.NotEmpty(t, menus[0].Items)

	faqs, err := store.Faqs().ListByRestaurant(context.Background(), restaurant.ID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, faqs)

	settings, err := store.Restaurants().GetContactSettings(context.Background(), restaurant.ID.String())
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
}

func TestRestaurantStore_NoIdentifierMatches(t *testing.T) {
	store, err := New()
	require.NoError(t, err)

	_, found, err := store.Restaurants().FindIDBySlug(context.Background(), "windmill-creek")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Restaurants().FindIDByDomain(context.Background(), "windmillcreekvineyard.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPairingStore_Lookup(t *testing.T) {
	store, err := New()
	require.NoError(t, err)
	pairings := store.Pairings()

	pairing, err := pairings.Lookup(context.Background(), "Blackened Swordfish")
	require.NoError(t, err)
	assert.Equal(t, "Chambourcin", pairing.Wine)

	pairing, err = pairings.Lookup(context.Background(), "swordfish")
	require.NoError(t, err)
	assert.Equal(t, "Chambourcin", pairing.Wine)

	_, err = pairings.Lookup(context.Background(), "lobster roll")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = pairings.Lookup(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
