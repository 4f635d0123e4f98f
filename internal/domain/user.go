package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The rental core only ever checks that a user
// exists; profile management lives elsewhere.
type User struct {
	ID        uuid.UUID `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
