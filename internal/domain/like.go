package domain

import (
	"time"

	"github.com/google/uuid"
)

// DressLike marks a dress as a favorite of a user. At most one exists per
// (user, dress) pair; its presence is the liked state.
type DressLike struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DressID   uuid.UUID `json:"dress_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentView counts how many times a user opened a dress detail page.
type RecentView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DressID   uuid.UUID `json:"dress_id"`
	Click     int       `json:"click"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
