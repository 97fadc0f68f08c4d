// Package demodata provides an embedded read-only dataset used when no
// database is configured. It lets the chat endpoints serve realistic demo
// responses without any external dependencies.
package demodata

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

//go:embed windmill.json
var windmillJSON []byte

type dataset struct {
	Restaurant struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		ShortName   string    `json:"short_name"`
		Slug        string    `json:"slug"`
		Domain      string    `json:"domain"`
		Description string    `json:"description"`
		Phone       string    `json:"phone"`
		Hours       string    `json:"hours"`
	} `json:"restaurant"`
	ContactSettings struct {
		Enabled bool   `json:"enabled"`
		Message string `json:"message"`
	} `json:"contact_settings"`
	Menus []struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
		Items []struct {
			ID          uuid.UUID `json:"id"`
			Name        string    `json:"name"`
			Description string    `json:"description"`
			Price       *float64  `json:"price"`
			Notes       string    `json:"notes"`
		} `json:"items"`
	} `json:"menus"`
	Faqs []struct {
		ID       uuid.UUID `json:"id"`
		Question string    `json:"question"`
		Answer   string    `json:"answer"`
	} `json:"faqs"`
	WinePairings []struct {
		Dish  string `json:"dish"`
		Wine  string `json:"wine"`
		Notes string `json:"notes"`
		Style string `json:"style"`
	} `json:"wine_pairings"`
}

// Store holds the parsed dataset. The Restaurants, Menus, Faqs, and
// Pairings views implement the same read interfaces as the Postgres
// repositories. Lookups ignore the requested restaurant id since the
// dataset holds a single restaurant.
type Store struct {
	restaurant models.Restaurant
	contact    models.ContactSettings
	menus      []models.Menu
	faqs       []models.Faq
	pairings   []models.WinePairing
}

// New parses the embedded dataset.
func New() (*Store, error) {
	var d dataset
	if err := json.Unmarshal(windmillJSON, &d); err != nil {
		return nil, fmt.Errorf("failed to parse embedded demo data: %w", err)
	}

	s := &Store{
		restaurant: models.Restaurant{
			ID:          d.Restaurant.ID,
			Name:        d.Restaurant.Name,
			ShortName:   d.Restaurant.ShortName,
			Slug:        d.Restaurant.Slug,
			Domain:      d.Restaurant.Domain,
			Description: d.Restaurant.Description,
			Phone:       d.Restaurant.Phone,
			Hours:       d.Restaurant.Hours,
		},
		contact: models.ContactSettings{
			RestaurantID: d.Restaurant.ID,
			Enabled:      d.ContactSettings.Enabled,
			Message:      d.ContactSettings.Message,
		},
	}

	for i, m := range d.Menus {
		menu := models.Menu{
			ID:           m.ID,
			RestaurantID: d.Restaurant.ID,
			Title:        m.Title,
			Position:     i,
		}
		for _, it := range m.Items {
			menu.Items = append(menu.Items, models.MenuItem{
				ID:          it.ID,
				MenuID:      m.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				Notes:       it.Notes,
			})
		}
		s.menus = append(s.menus, menu)
	}

	for _, f := range d.Faqs {
		s.faqs = append(s.faqs, models.Faq{
			ID:           f.ID,
			RestaurantID: d.Restaurant.ID,
			Question:     f.Question,
			Answer:       f.Answer,
		})
	}

	for _, p := range d.WinePairings {
		s.pairings = append(s.pairings, models.WinePairing{
			Dish:  p.Dish,
			Wine:  p.Wine,
			Notes: p.Notes,
			Style: p.Style,
		})
	}

	return s, nil
}

// Restaurants returns the restaurant view of the dataset.
func (s *Store) Restaurants() *RestaurantStore { return &RestaurantStore{s: s} }

// Menus returns the menu view of the dataset.
func (s *Store) Menus() *MenuStore { return &MenuStore{s: s} }

// Faqs returns the FAQ view of the dataset.
func (s *Store) Faqs() *FaqStore { return &FaqStore{s: s} }

// Pairings returns the wine pairing view of the dataset.
func (s *Store) Pairings() *PairingStore { return &PairingStore{s: s} }

type RestaurantStore struct {
	s *Store
}

// GetByID returns the embedded restaurant for any id.
func (r *RestaurantStore) GetByID(_ context.Context, _ string) (*models.Restaurant, error) {
	out := r.s.restaurant
	return &out, nil
}

func (r *RestaurantStore) FindIDBySlug(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (r *RestaurantStore) FindIDByDomain(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (r *RestaurantStore) FindIDByNameLike(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (r *RestaurantStore) GetContactSettings(_ context.Context, _ string) (*models.ContactSettings, error) {
	out := r.s.contact
	return &out, nil
}

type MenuStore struct {
	s *Store
}

func (m *MenuStore) ListByRestaurant(_ context.Context, _ string) ([]models.Menu, error) {
	return m.s.copyMenus(), nil
}

func (m *MenuStore) ListAll(_ context.Context) ([]models.Menu, error) {
	return m.s.copyMenus(), nil
}

type FaqStore struct {
	s *Store
}

func (f *FaqStore) ListByRestaurant(_ context.Context, _ string) ([]models.Faq, error) {
	out := make([]models.Faq, len(f.s.faqs))
	copy(out, f.s.faqs)
	return out, nil
}

type PairingStore struct {
	s *Store
}

// Lookup matches the dish name exactly first, then by substring either way.
func (p *PairingStore) Lookup(_ context.Context, dish string) (*models.WinePairing, error) {
	needle := strings.ToLower(strings.TrimSpace(dish))
	if needle == "" {
		return nil, apperrors.ErrNotFound
	}
	for _, pairing := range p.s.pairings {
		if strings.ToLower(pairing.Dish) == needle {
			out := pairing
			return &out, nil
		}
	}
	for _, pairing := range p.s.pairings {
		candidate := strings.ToLower(pairing.Dish)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			out := pairing
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) copyMenus() []models.Menu {
	out := make([]models.Menu, len(s.menus))
	copy(out, s.menus)
	return out
}
