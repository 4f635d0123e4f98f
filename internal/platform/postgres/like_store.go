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

// toggleLikeQuery removes the like if present, otherwise inserts it. The
// two flags report which branch ran; both false means a concurrent insert
// for the same pair committed first and ON CONFLICT skipped ours.
const toggleLikeQuery = `
	WITH deleted AS (
		DELETE FROM dress_likes
		WHERE user_id = $1 AND dress_id = $2
		RETURNING id
	), inserted AS (
		INSERT INTO dress_likes (id, user_id, dress_id, created_at)
		SELECT $3, $1, $2, $4
		WHERE NOT EXISTS (SELECT 1 FROM deleted)
		ON CONFLICT (user_id, dress_id) DO NOTHING
		RETURNING id
	)
	SELECT EXISTS (SELECT 1 FROM deleted), EXISTS (SELECT 1 FROM inserted)
`

// PostgresLikeStore implements store.LikeStore.
type PostgresLikeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLikeStore creates a like store. If logger is nil, a default logger will be used.
func NewPostgresLikeStore(db store.DBTX, logger *slog.Logger) *PostgresLikeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresLikeStore{
		db:     db,
		logger: logger.With(slog.String("component", "like_store")),
	}
}

var _ store.LikeStore = (*PostgresLikeStore)(nil)

// Toggle implements store.LikeStore.Toggle
func (s *PostgresLikeStore) Toggle(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var deleted, inserted bool
	err := s.db.QueryRowContext(ctx, toggleLikeQuery,
		userID,
		dressID,
		uuid.New(),
		time.Now().UTC(),
	).Scan(&deleted, &inserted)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("dress like insert conflicted with a concurrent toggle",
				slog.String("user_id", userID.String()),
				slog.String("dress_id", dressID.String()))
			return false, store.ErrLikeExists
		}
		log.Error("failed to toggle dress like",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
		return false, MapError(err)
	}

	switch {
	case deleted:
		log.Debug("dress like removed",
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
		return false, nil
	case inserted:
		log.Debug("dress like added",
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
		return true, nil
	default:
		return false, store.ErrLikeExists
	}
}

// Exists implements store.LikeStore.Exists
func (s *PostgresLikeStore) Exists(ctx context.Context, userID, dressID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM dress_likes WHERE user_id = $1 AND dress_id = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, dressID).Scan(&exists); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to check dress like",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("dress_id", dressID.String()))
		return false, MapError(err)
	}
	return exists, nil
}

// WithTx implements store.LikeStore.WithTx
func (s *PostgresLikeStore) WithTx(tx *sql.Tx) store.LikeStore {
	return &PostgresLikeStore{db: tx, logger: s.logger}
}
