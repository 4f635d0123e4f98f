package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// PostgresRecentViewStore implements store.RecentViewStore.
type PostgresRecentViewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRecentViewStore creates a view counter store. If logger is nil, a default logger will be used.
func NewPostgresRecentViewStore(db store.DBTX, logger *slog.Logger) *PostgresRecentViewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRecentViewStore{
		db:     db,
		logger: logger.With(slog.String("component", "recent_view_store")),
	}
}

var _ store.RecentViewStore = (*PostgresRecentViewStore)(nil)

// Increment implements store.RecentViewStore.Increment
func (s *PostgresRecentViewStore) Increment(ctx context.Context, userID, dressID uuid.UUID) (int, error) {
	query := `
		INSERT INTO recent_views (id, user_id, dress_id, click, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $4)
		ON CONFLICT (user_id, dress_id)
		DO UPDATE SET click = recent_views.click + 1, updated_at = EXCLUDED.updated_at
		RETURNING click
	`

	var click int
	err := s.db.QueryRowContext(ctx, query, uuid.New(), userID, dressID, time.Now().UTC()).Scan(&click)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to record dress view",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
		return 0, MapError(err)
	}
	return click, nil
}

// WithTx implements store.RecentViewStore.WithTx
func (s *PostgresRecentViewStore) WithTx(tx *sql.Tx) store.RecentViewStore {
	return &PostgresRecentViewStore{db: tx, logger: s.logger}
}
