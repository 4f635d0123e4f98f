package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
)

// StoreStore defines persistence for rental stores (shops).
// Stores are reference data and are never written by this service.
type StoreStore interface {
	// GetByID retrieves a store by ID.
	// Returns ErrStoreNotFound if the store does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)

	// FindAll returns every store. Proximity filtering happens in memory,
	// so implementations must not apply any ordering the caller relies on.
	FindAll(ctx context.Context) ([]*domain.Store, error)

	WithTx(tx *sql.Tx) StoreStore
}
