// Package models contains domain types for tandem-engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a restaurant record in the store.
// ShortName is the informal name used in the assistant's opening line.
type Restaurant struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ShortName   string    `json:"short_name,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	Domain      string    `json:"domain,omitempty"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Hours       string    `json:"hours,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayShortName returns the short name, falling back to the full name.
func (r *Restaurant) DisplayShortName() string {
	if r.ShortName != "" {
		return r.ShortName
	}
	return r.Name
}

// ContactSettings is the optional per-restaurant contact-fallback policy.
// When Enabled, the assistant is instructed what to say when asked for
// contact information it does not have.
type ContactSettings struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Enabled      bool      `json:"enabled"`
	Message      string    `json:"message,omitempty"`
}
