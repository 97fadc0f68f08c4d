package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/models"
	"github.com/tandem-ai/tandem-engine/pkg/repositories"
)

type mockReservationRepo struct {
	createFunc func(ctx context.Context, reservation *models.Reservation) error
}

func (m *mockReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, reservation)
	}
	return nil
}

func postReservation(handler *ReservationHandler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	handler.Create(rec, req)
	return rec
}

func TestReservations_Create(t *testing.T) {
	repo := &mockReservationRepo{
		createFunc: func(_ context.Context, reservation *models.Reservation) error {
			assert.Equal(t, "a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11", reservation.RestaurantID.String())
			assert.Equal(t, 4, reservation.PartySize)
			return nil
		},
	}
	handler := NewReservationHandler(repo, zap.NewNop())

	rec := postReservation(handler, `{"restaurant_id":"a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11","name":"Sam","party_size":4}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sam", resp.Name)
}

func TestReservations_MissingRestaurantID(t *testing.T) {
	handler := NewReservationHandler(&mockReservationRepo{}, zap.NewNop())

	for _, body := range []string{`{}`, `{"restaurant_id":"not-a-uuid"}`, `bad json`} {
		rec := postReservation(handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"missing restaurant_id"}`, rec.Body.String())
	}
}

func TestReservations_UnconfiguredStore(t *testing.T) {
	handler := NewReservationHandler(repositories.NewUnconfiguredReservationRepository(), zap.NewNop())

	rec := postReservation(handler, `{"restaurant_id":"a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"store not configured"}`, rec.Body.String())
}

func TestReservations_StoreFailure(t *testing.T) {
	repo := &mockReservationRepo{
		createFunc: func(_ context.Context, _ *models.Reservation) error {
			return assert.AnError
		},
	}
	handler := NewReservationHandler(repo, zap.NewNop())

	rec := postReservation(handler, `{"restaurant_id":"a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"store failure"}`, rec.Body.String())
}
