package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

type mockPairingRepo struct {
	lookupFunc func(ctx context.Context, dish string) (*models.WinePairing, error)
}

func (m *mockPairingRepo) Lookup(ctx context.Context, dish string) (*models.WinePairing, error) {
	if m.lookupFunc != nil {
		return m.lookupFunc(ctx, dish)
	}
	return nil, apperrors.ErrNotFound
}

func postPairing(handler *WinePairingHandler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wine-pairing", strings.NewReader(body))
	handler.Lookup(rec, req)
	return rec
}

func TestWinePairing_RawPassThrough(t *testing.T) {
	repo := &mockPairingRepo{
		lookupFunc: func(_ context.Context, dish string) (*models.WinePairing, error) {
			assert.Equal(t, "Blackened Swordfish", dish)
			return &models.WinePairing{
				Dish:  "Blackened Swordfish",
				Wine:  "Chambourcin",
				Notes: "cherry, pepper, oak",
				Style: "a smooth red",
			}, nil
		},
	}
	handler := NewWinePairingHandler(repo, zap.NewNop())

	rec := postPairing(handler, `{"dish":"Blackened Swordfish"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Notes are verbatim; truncation happens only in the chat rendering.
	assert.JSONEq(t, `{"dish":"Blackened Swordfish","wine":"Chambourcin","notes":"cherry, pepper, oak"}`, rec.Body.String())
}

func TestWinePairing_MissingDish(t *testing.T) {
	handler := NewWinePairingHandler(&mockPairingRepo{}, zap.NewNop())

	for _, body := range []string{`{}`, `{"dish":"  "}`, `oops`} {
		rec := postPairing(handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing dish name"}`, rec.Body.String())
	}
}

func TestWinePairing_NotFound(t *testing.T) {
	handler := NewWinePairingHandler(&mockPairingRepo{}, zap.NewNop())

	rec := postPairing(handler, `{"dish":"Crab Dip"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no pairing found"}`, rec.Body.String())
}

func TestWinePairing_StoreFailure(t *testing.T) {
	repo := &mockPairingRepo{
		lookupFunc: func(_ context.Context, _ string) (*models.WinePairing, error) {
			return nil, assert.AnError
		},
	}
	handler := NewWinePairingHandler(repo, zap.NewNop())

	rec := postPairing(handler, `{"dish":"Crab Dip"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
