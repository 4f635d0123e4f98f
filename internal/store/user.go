package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
)

// UserStore defines the interface for user lookups. Accounts are created by
// the identity provider, so this service only reads them.
type UserStore interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
