package models

// WinePairing is a row returned by the get_wine_pairing stored function,
// keyed by free-text dish name. Style is the wine descriptor used by the
// dispatcher's natural-language rendering ("a smooth red" when empty).
type WinePairing struct {
	Dish  string `json:"dish"`
	Wine  string `json:"wine"`
	Notes string `json:"notes,omitempty"`
	Style string `json:"style,omitempty"`
}
