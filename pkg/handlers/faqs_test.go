package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/models"
)

type mockFaqRepo struct {
	listFunc func(ctx context.Context, restaurantID string) ([]models.Faq, error)
}

func (m *mockFaqRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Faq, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, restaurantID)
	}
	return nil, nil
}

func TestFaqs_List(t *testing.T) {
	repo := &mockFaqRepo{
		listFunc: func(_ context.Context, id string) ([]models.Faq, error) {
			assert.Equal(t, "a7c1f6de-3a42-4c0a-9d6b-0f5f8f4d2b11", id)
			return []models.Faq{{Question: "What are your hours?", Answer: "11am-9pm"}}, nil
		},
	}
	handler := NewFaqHandler(passthroughResolver(), repo, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/faqs?restaurant=windmill-creek", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "What are your hours?")
}

func TestFaqs_EmptyListIsJSONArray(t *testing.T) {
	handler := NewFaqHandler(passthroughResolver(), &mockFaqRepo{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/faqs?restaurant=windmill-creek", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFaqs_MissingReference(t *testing.T) {
	handler := NewFaqHandler(passthroughResolver(), &mockFaqRepo{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"restaurant id or slug required"}`, rec.Body.String())
}

func TestFaqs_SlugNotFound(t *testing.T) {
	handler := NewFaqHandler(passthroughResolver(), &mockFaqRepo{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/faqs?restaurant=nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"restaurant slug not found"}`, rec.Body.String())
}
