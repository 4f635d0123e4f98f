package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
)

// DressStore defines read access to the dress catalog.
type DressStore interface {
	// GetByID retrieves a dress by ID.
	// Returns ErrDressNotFound if the dress does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dress, error)

	// Search returns dresses matching criteria. Name matches as a
	// case-insensitive substring. Liked is computed for criteria.UserID.
	// Every sort except domain.SortDistance is applied by the store;
	// distance ordering needs the caller's position and is left to the caller.
	Search(ctx context.Context, criteria domain.DressSearchCriteria) ([]*domain.DressBrief, error)

	// FindByStore returns the dresses of a store, newest first, optionally
	// narrowed to one category.
	FindByStore(ctx context.Context, storeID uuid.UUID, category *domain.DressCategory) ([]*domain.DressBrief, error)

	// FindLikedByUser returns the dresses a user liked, most recent like first.
	FindLikedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LikedDress, error)

	// GetImages returns the image keys of a dress ordered by position.
	GetImages(ctx context.Context, dressID uuid.UUID) ([]*domain.DressImage, error)

	// GetOptions returns the option groups of a dress with their details.
	GetOptions(ctx context.Context, dressID uuid.UUID) ([]*domain.DressOption, error)

	WithTx(tx *sql.Tx) DressStore
}

// OptionStore resolves individual option slots.
type OptionStore interface {
	// GetDetailByID retrieves one option detail (slot).
	// Returns ErrOptionNotFound if it does not exist.
	GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.DressOptionDetail, error)

	WithTx(tx *sql.Tx) OptionStore
}
