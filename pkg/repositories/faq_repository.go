package repositories

import (
	"context"
	"fmt"

	"github.com/tandem-ai/tandem-engine/pkg/database"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// FaqRepository provides read access to restaurant FAQs.
type FaqRepository interface {
	// ListByRestaurant fetches the restaurant's FAQs. An empty slice is valid.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Faq, error)
}

type faqRepository struct {
	db *database.DB
}

// NewFaqRepository creates a new FaqRepository backed by the store.
func NewFaqRepository(db *database.DB) FaqRepository {
	return &faqRepository{db: db}
}

var _ FaqRepository = (*faqRepository)(nil)

func (r *faqRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Faq, error) {
	query := `SELECT id, restaurant_id, question, answer
		FROM faqs WHERE restaurant_id = $1::uuid ORDER BY question`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	faqs := make([]models.Faq, 0)
	for rows.Next() {
		var f models.Faq
		if err := rows.Scan(&f.ID, &f.RestaurantID, &f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faq rows: %w", err)
	}

	return faqs, nil
}
