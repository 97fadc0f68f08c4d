package models

import (
	"regexp"

	"github.com/google/uuid"
)

// Menu is a titled collection of menu items for one restaurant.
type Menu struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Title        string     `json:"title"`
	Position     int        `json:"position"`
	Items        []MenuItem `json:"items"`
}

// MenuItem is a single dish or drink on a menu. Notes may embed a
// "Pairing: <text>" fragment that the reply normalizer extracts.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	MenuID      uuid.UUID `json:"menu_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

var pairingNoteRe = regexp.MustCompile(`(?i)Pairing:\s*(.*)`)

// PairingNote returns the pairing text embedded in the item's notes,
// or "" when the notes carry no pairing fragment.
func (i *MenuItem) PairingNote() string {
	m := pairingNoteRe.FindStringSubmatch(i.Notes)
	if m == nil {
		return ""
	}
	return m[1]
}
