package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
	"github.com/tandem-ai/tandem-engine/pkg/database"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

// ReservationRepository persists reservation requests. It is constructed
// with the privileged write pool when one is configured.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) error
}

type reservationRepository struct {
	db *database.DB
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(db *database.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

var _ ReservationRepository = (*reservationRepository)(nil)

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if reservation.ID == uuid.Nil {
		reservation.ID = uuid.New()
	}
	reservation.CreatedAt = time.Now()

	query := `
		INSERT INTO reservations (
			id, restaurant_id, name, email, phone, party_size, requested_at, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query,
		reservation.ID, reservation.RestaurantID, reservation.Name, reservation.Email,
		reservation.Phone, reservation.PartySize, reservation.RequestedAt, reservation.Notes,
		reservation.CreatedAt,
	).Scan(&reservation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

type unconfiguredReservationRepository struct{}

// NewUnconfiguredReservationRepository returns a repository that rejects
// every write. Used when no database is configured; the embedded demo
// dataset has no write path.
func NewUnconfiguredReservationRepository() ReservationRepository {
	return &unconfiguredReservationRepository{}
}

var _ ReservationRepository = (*unconfiguredReservationRepository)(nil)

func (r *unconfiguredReservationRepository) Create(_ context.Context, _ *models.Reservation) error {
	return apperrors.ErrStoreNotConfigured
}
