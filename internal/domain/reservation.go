package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a DressReservation.
// Only pending -> canceled is exercised today; confirmed and fulfilled are
// reserved for the shop-side workflow.
type ReservationStatus string

// Possible reservation status values
const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusFulfilled ReservationStatus = "fulfilled"
	ReservationStatusCanceled  ReservationStatus = "canceled"
)

// Reservation validation errors
var (
	ErrEmptyReservationID      = errors.New("reservation ID cannot be empty")
	ErrEmptyReservationUserID  = errors.New("reservation user ID cannot be empty")
	ErrEmptyReservationStoreID = errors.New("reservation store ID cannot be empty")
	ErrEmptyReservationItems   = errors.New("reservation must contain at least one item")
	ErrInvalidQuantity         = errors.New("quantity must be greater than zero")
	ErrDuplicateOptionSlot     = errors.New("option slots of a reserved dress must be distinct")
)

// ParseReservationStatus converts raw input into a ReservationStatus.
func ParseReservationStatus(raw string) (ReservationStatus, error) {
	s := ReservationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", NewValidationError("status", "is not a known reservation status", ErrInvalidReservationStatus)
	}
	return s, nil
}

// Valid reports whether s is a known status.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusFulfilled, ReservationStatusCanceled:
		return true
	default:
		return false
	}
}

// DressReservation is the header of a user's request to rent dresses at a store.
// It owns its ReservedDress line items.
type DressReservation struct {
	ID        uuid.UUID         `json:"id"`
	StoreID   uuid.UUID         `json:"store_id"`
	UserID    uuid.UUID         `json:"user_id"`
	Status    ReservationStatus `json:"status"`
	Items     []*ReservedDress  `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewDressReservation creates a pending reservation header with no items.
func NewDressReservation(userID, storeID uuid.UUID) (*DressReservation, error) {
	now := time.Now().UTC()
	r := &DressReservation{
		ID:        uuid.New(),
		StoreID:   storeID,
		UserID:    userID,
		Status:    ReservationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the header fields.
func (r *DressReservation) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReservationID
	}
	if r.UserID == uuid.Nil {
		return ErrEmptyReservationUserID
	}
	if r.StoreID == uuid.Nil {
		return ErrEmptyReservationStoreID
	}
	if !r.Status.Valid() {
		return ErrInvalidReservationStatus
	}
	return nil
}

// SetStatus overwrites the status and bumps UpdatedAt.
// Transition rules are enforced by the caller.
func (r *DressReservation) SetStatus(status ReservationStatus) error {
	if !status.Valid() {
		return ErrInvalidReservationStatus
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// ReservedDress is a reservation line: one dress with exactly two option
// slots and a quantity.
type ReservedDress struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	DressID       uuid.UUID `json:"dress_id"`
	Option1ID     uuid.UUID `json:"option1_id"`
	Option2ID     uuid.UUID `json:"option2_id"`
	Quantity      int       `json:"quantity"`
}

// NewReservedDress creates a line item attached to reservationID.
func NewReservedDress(
	reservationID, dressID uuid.UUID,
	option1, option2 *DressOptionDetail,
	quantity int,
) (*ReservedDress, error) {
	if option1 == nil || option2 == nil {
		return nil, NewValidationError("option", "is required", ErrValidation)
	}
	item := &ReservedDress{
		ID:            uuid.New(),
		ReservationID: reservationID,
		DressID:       dressID,
		Option1ID:     option1.ID,
		Option2ID:     option2.ID,
		Quantity:      quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks the line item invariants.
func (d *ReservedDress) Validate() error {
	if d.ReservationID == uuid.Nil {
		return ErrEmptyReservationID
	}
	if d.DressID == uuid.Nil || d.Option1ID == uuid.Nil || d.Option2ID == uuid.Nil {
		return ErrInvalidID
	}
	return ValidateStockQuantity(StockQuantity{
		Option1ID: d.Option1ID,
		Option2ID: d.Option2ID,
		Quantity:  d.Quantity,
	})
}

// StockQuantity is a requested line: two option slot ids and a quantity.
type StockQuantity struct {
	Option1ID uuid.UUID `json:"stock1_id" validate:"required"`
	Option2ID uuid.UUID `json:"stock2_id" validate:"required"`
	Quantity  int       `json:"quantity"  validate:"required,gt=0"`
}

// ValidateStockQuantity checks a requested line before any lookup happens.
func ValidateStockQuantity(sq StockQuantity) error {
	if sq.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if sq.Option1ID == sq.Option2ID {
		return ErrDuplicateOptionSlot
	}
	return nil
}
