package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tandem-ai/tandem-engine/pkg/database"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// MenuRepository provides read access to menus with nested items.
type MenuRepository interface {
	// ListByRestaurant fetches the restaurant's menus with their items in
	// one round trip. An empty slice is valid.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error)

	// ListAll fetches every menu with nested items.
	ListAll(ctx context.Context) ([]models.Menu, error)
}

type menuRepository struct {
	db *database.DB
}

// NewMenuRepository creates a new MenuRepository backed by the store.
func NewMenuRepository(db *database.DB) MenuRepository {
	return &menuRepository{db: db}
}

var _ MenuRepository = (*menuRepository)(nil)

const menuItemJoin = `
	SELECT m.id, m.restaurant_id, m.title, m.position,
	       i.id, i.menu_id, i.name, COALESCE(i.description, ''), i.price, COALESCE(i.notes, '')
	FROM menus m
	LEFT JOIN menu_items i ON i.menu_id = m.id`

func (r *menuRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	query := menuItemJoin + `
	WHERE m.restaurant_id = $1::uuid
	ORDER BY m.position, m.title, i.name`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	return scanMenuRows(rows)
}

func (r *menuRepository) ListAll(ctx context.Context) ([]models.Menu, error) {
	query := menuItemJoin + `
	ORDER BY m.restaurant_id, m.position, m.title, i.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	defer rows.Close()

	return scanMenuRows(rows)
}

// scanMenuRows folds the left-joined rows into menus with nested items,
// preserving first-seen menu order.
func scanMenuRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.Menu, error) {
	menus := make([]models.Menu, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var m models.Menu
		var itemID, itemMenuID *uuid.UUID
		var itemName, itemDesc, itemNotes *string
		var itemPrice *float64

		if err := rows.Scan(
			&m.ID, &m.RestaurantID, &m.Title, &m.Position,
			&itemID, &itemMenuID, &itemName, &itemDesc, &itemPrice, &itemNotes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}

		pos, seen := index[m.ID]
		if !seen {
			m.Items = make([]models.MenuItem, 0)
			menus = append(menus, m)
			pos = len(menus) - 1
			index[m.ID] = pos
		}

		// NULL item columns mean a menu with no items yet
		if itemID == nil {
			continue
		}
		item := models.MenuItem{
			ID:     *itemID,
			MenuID: *itemMenuID,
			Price:  itemPrice,
		}
		if itemName != nil {
			item.Name = *itemName
		}
		if itemDesc != nil {
			item.Description = *itemDesc
		}
		if itemNotes != nil {
			item.Notes = *itemNotes
		}
		menus[pos].Items = append(menus[pos].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu rows: %w", err)
	}

	return menus, nil
}
