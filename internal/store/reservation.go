package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
)

// ReservationStore defines persistence for reservation headers and their line items.
//
// Create and CreateItem are meant to run inside one transaction so that a
// failure while adding lines leaves no header behind:
//
//	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
//	    txStore := reservationStore.WithTx(tx)
//	    if err := txStore.Create(ctx, r); err != nil {
//	        return err
//	    }
//	    return txStore.CreateItem(ctx, item)
//	})
type ReservationStore interface {
	// Create inserts a reservation header. Items are not written.
	Create(ctx context.Context, r *domain.DressReservation) error

	// CreateItem inserts one line item of an existing reservation.
	CreateItem(ctx context.Context, item *domain.ReservedDress) error

	// GetForUpdate retrieves a reservation header and holds a row lock on it
	// until the surrounding transaction ends. It must be called on a store
	// bound with WithTx. Returns ErrReservationNotFound if it does not exist.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.DressReservation, error)

	// UpdateStatus overwrites the status of a reservation.
	// Returns ErrReservationNotFound if no row was updated.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReservationStatus, updatedAt time.Time) error

	// FindOrderLines returns the line items of one reservation owned by userID.
	// A reservation that does not belong to the user yields an empty slice.
	FindOrderLines(ctx context.Context, reservationID, userID uuid.UUID) ([]*domain.OrderLine, error)

	// FindOrderSummaries returns one summary row per reservation of userID,
	// newest first. A nil status matches every status.
	FindOrderSummaries(
		ctx context.Context,
		userID uuid.UUID,
		status *domain.ReservationStatus,
	) ([]*domain.OrderSummary, error)

	WithTx(tx *sql.Tx) ReservationStore
}
