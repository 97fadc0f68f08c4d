package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/database"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// WinePairingRepository calls the store's get_wine_pairing stored function.
type WinePairingRepository interface {
	// Lookup returns the pairing row for a free-text dish name, or
	// apperrors.ErrNotFound when the function yields no row.
	Lookup(ctx context.Context, dish string) (*models.WinePairing, error)
}

type winePairingRepository struct {
	db *database.DB
}

// NewWinePairingRepository creates a new WinePairingRepository backed by the store.
func NewWinePairingRepository(db *database.DB) WinePairingRepository {
	return &winePairingRepository{db: db}
}

var _ WinePairingRepository = (*winePairingRepository)(nil)

func (r *winePairingRepository) Lookup(ctx context.Context, dish string) (*models.WinePairing, error) {
	query := `SELECT dish, wine, COALESCE(notes, ''), COALESCE(style, '')
		FROM get_wine_pairing($1)`

	var p models.WinePairing
	err := r.db.QueryRow(ctx, query, dish).Scan(&p.Dish, &p.Wine, &p.Notes, &p.Style)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up wine pairing: %w", err)
	}

	return &p, nil
}
