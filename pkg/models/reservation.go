package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a booking request captured for a restaurant.
type Reservation struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PartySize    int       `json:"party_size,omitempty"`
	RequestedAt  string    `json:"requested_at,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
