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

// RestaurantRepository provides read access to restaurant records and the
// alternate-identifier lookups used by the resolver.
type RestaurantRepository interface {
	// GetByID fetches a restaurant by canonical identifier. Returns
	// apperrors.ErrNotFound when no row exists.
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)

	// FindIDBySlug returns the canonical id for an exact slug match.
	FindIDBySlug(ctx context.Context, slug string) (string, bool, error)

	// FindIDByDomain returns the canonical id for an exact domain match.
	FindIDByDomain(ctx context.Context, domain string) (string, bool, error)

	// FindIDByNameLike returns the first canonical id whose name contains
	// the candidate, case-insensitively.
	FindIDByNameLike(ctx context.Context, candidate string) (string, bool, error)

	// GetContactSettings fetches the optional contact-fallback policy.
	// Returns apperrors.ErrNotFound when none is stored.
	GetContactSettings(ctx context.Context, restaurantID string) (*models.ContactSettings, error)
}

type restaurantRepository struct {
	db *database.DB
}

// NewRestaurantRepository creates a new RestaurantRepository backed by the store.
func NewRestaurantRepository(db *database.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

var _ RestaurantRepository = (*restaurantRepository)(nil)

const restaurantColumns = `id, name, COALESCE(short_name, ''), COALESCE(slug, ''), COALESCE(domain, ''),
		COALESCE(description, ''), COALESCE(phone, ''), COALESCE(hours, ''), created_at, updated_at`

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1::uuid`

	var rest models.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rest.ID, &rest.Name, &rest.ShortName, &rest.Slug, &rest.Domain,
		&rest.Description, &rest.Phone, &rest.Hours, &rest.CreatedAt, &rest.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return &rest, nil
}

func (r *restaurantRepository) FindIDBySlug(ctx context.Context, slug string) (string, bool, error) {
	return r.findID(ctx, `SELECT id FROM restaurants WHERE slug = $1`, slug)
}

func (r *restaurantRepository) FindIDByDomain(ctx context.Context, domain string) (string, bool, error) {
	return r.findID(ctx, `SELECT id FROM restaurants WHERE domain = $1`, domain)
}

func (r *restaurantRepository) FindIDByNameLike(ctx context.Context, candidate string) (string, bool, error) {
	query := `SELECT id FROM restaurants WHERE name ILIKE '%' || $1 || '%' ORDER BY name LIMIT 1`
	return r.findID(ctx, query, candidate)
}

func (r *restaurantRepository) findID(ctx context.Context, query, arg string) (string, bool, error) {
	var id string
	err := r.db.QueryRow(ctx, query, arg).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up restaurant id: %w", err)
	}
	return id, true, nil
}

func (r *restaurantRepository) GetContactSettings(ctx context.Context, restaurantID string) (*models.ContactSettings, error) {
	query := `SELECT restaurant_id, enabled, COALESCE(message, '')
		FROM contact_settings WHERE restaurant_id = $1::uuid`

	var cs models.ContactSettings
	err := r.db.QueryRow(ctx, query, restaurantID).Scan(&cs.RestaurantID, &cs.Enabled, &cs.Message)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact settings: %w", err)
	}

	return &cs, nil
}
