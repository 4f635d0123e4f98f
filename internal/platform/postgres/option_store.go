package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

// PostgresOptionStore implements store.OptionStore.
type PostgresOptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOptionStore creates an option slot reader. If logger is nil, a default logger will be used.
func NewPostgresOptionStore(db store.DBTX, logger *slog.Logger) *PostgresOptionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresOptionStore{
		db:     db,
		logger: logger.With(slog.String("component", "option_store")),
	}
}

var _ store.OptionStore = (*PostgresOptionStore)(nil)

// GetDetailByID implements store.OptionStore.GetDetailByID
func (s *PostgresOptionStore) GetDetailByID(ctx context.Context, id uuid.UUID) (*domain.DressOptionDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, option_id, name
		FROM dress_option_details
		WHERE id = $1
	`

	var detail domain.DressOptionDetail
	err := s.db.QueryRowContext(ctx, query, id).Scan(&detail.ID, &detail.OptionID, &detail.Name)
	if err != nil {
		err = MapEntityError(err, store.ErrOptionNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("option detail not found", slog.String("option_id", id.String()))
			return nil, err
		}
		log.Error("failed to get option detail",
			slog.String("error", err.Error()),
			slog.String("option_id", id.String()))
		return nil, err
	}
	return &detail, nil
}

// WithTx implements store.OptionStore.WithTx
func (s *PostgresOptionStore) WithTx(tx *sql.Tx) store.OptionStore {
	return &PostgresOptionStore{db: tx, logger: s.logger}
}
