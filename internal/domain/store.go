package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Store is a physical shop offering dresses at fixed coordinates.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	ImageKey  string    `json:"-"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Coordinates returns the store position in degrees.
func (s *Store) Coordinates() (lat, lng float64) {
	return s.Latitude, s.Longitude
}

// StoreDistance pairs a store with its distance in meters from a query point.
// It only exists while ranking search results.
type StoreDistance struct {
	Store    *Store  `json:"store"`
	Distance float64 `json:"distance"`
}

// ValidateCoordinates checks that lat and lng are valid degree values.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return NewValidationError("lat", "must be between -90 and 90", ErrInvalidCoordinates)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return NewValidationError("lng", "must be between -180 and 180", ErrInvalidCoordinates)
	}
	return nil
}
