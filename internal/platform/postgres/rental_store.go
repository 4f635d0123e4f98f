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

const storeColumns = `id, name, address, phone, image_key, latitude, longitude, created_at`

// PostgresStoreStore implements store.StoreStore for rental shops.
type PostgresStoreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStoreStore creates a store reader. If logger is nil, a default logger will be used.
func NewPostgresStoreStore(db store.DBTX, logger *slog.Logger) *PostgresStoreStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStoreStore{
		db:     db,
		logger: logger.With(slog.String("component", "store_store")),
	}
}

var _ store.StoreStore = (*PostgresStoreStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (*domain.Store, error) {
	var st domain.Store
	if err := row.Scan(
		&st.ID,
		&st.Name,
		&st.Address,
		&st.Phone,
		&st.ImageKey,
		&st.Latitude,
		&st.Longitude,
		&st.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetByID implements store.StoreStore.GetByID
func (s *PostgresStoreStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	st, err := scanStore(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = MapEntityError(err, store.ErrStoreNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("store not found", slog.String("store_id", id.String()))
			return nil, err
		}
		log.Error("failed to get store by ID",
			slog.String("error", err.Error()),
			slog.String("store_id", id.String()))
		return nil, err
	}
	return st, nil
}

// FindAll implements store.StoreStore.FindAll
func (s *PostgresStoreStore) FindAll(ctx context.Context) ([]*domain.Store, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query stores", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		st, err := scanStore(rows)
		if err != nil {
			log.Error("failed to scan store row", slog.String("error", err.Error()))
			return nil, err
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating store rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("stores loaded", slog.Int("count", len(stores)))
	return stores, nil
}

// WithTx implements store.StoreStore.WithTx
func (s *PostgresStoreStore) WithTx(tx *sql.Tx) store.StoreStore {
	return &PostgresStoreStore{db: tx, logger: s.logger}
}
