package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// LikeStore defines persistence for dress likes.
type LikeStore interface {
	// Toggle deletes the (user, dress) like if it exists and inserts it
	// otherwise, in a single atomic statement, and returns the new state.
	// Returns ErrLikeExists when a concurrent insert for the same pair won
	// the race; the caller may retry.
	Toggle(ctx context.Context, userID, dressID uuid.UUID) (bool, error)

	// Exists reports whether the user likes the dress.
	Exists(ctx context.Context, userID, dressID uuid.UUID) (bool, error)

	WithTx(tx *sql.Tx) LikeStore
}

// RecentViewStore defines persistence for per-user view counters.
type RecentViewStore interface {
	// Increment creates the (user, dress) counter at 1 or adds 1 to it,
	// atomically, and returns the new value.
	Increment(ctx context.Context, userID, dressID uuid.UUID) (int, error)

	WithTx(tx *sql.Tx) RecentViewStore
}
