package models

import "github.com/google/uuid"

// Faq is a question/answer pair attached to a restaurant. Matching against
// replies is case-insensitive prefix/equality, not full-text search.
type Faq struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
}
