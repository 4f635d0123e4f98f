package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pickle-rental/pickle-api/internal/domain"
	"github.com/pickle-rental/pickle-api/internal/platform/logger"
	"github.com/pickle-rental/pickle-api/internal/store"
)

const reservationColumns = `id, store_id, user_id, status, created_at, updated_at`

// PostgresReservationStore implements the store.ReservationStore interface.
type PostgresReservationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReservationStore creates a new PostgreSQL implementation of the ReservationStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresReservationStore(db store.DBTX, logger *slog.Logger) *PostgresReservationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresReservationStore{
		db:     db,
		logger: logger.With(slog.String("component", "reservation_store")),
	}
}

// Ensure PostgresReservationStore implements store.ReservationStore interface
var _ store.ReservationStore = (*PostgresReservationStore)(nil)

// Create implements store.ReservationStore.Create
// Returns validation errors from the domain reservation if data is invalid.
// Returns store.ErrInvalidEntity if the store or user does not exist.
func (s *PostgresReservationStore) Create(ctx context.Context, r *domain.DressReservation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := r.Validate(); err != nil {
		log.Warn("reservation validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reservation_id", r.ID.String()))
		return err
	}

	query := `
		INSERT INTO dress_reservations (id, store_id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		r.StoreID,
		r.UserID,
		r.Status,
		r.CreatedAt,
		r.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create reservation",
			slog.String("error", err.Error()),
			slog.String("reservation_id", r.ID.String()),
			slog.String("user_id", r.UserID.String()),
			slog.String("store_id", r.StoreID.String()))
		return MapError(err)
	}

	log.Debug("reservation header created",
		slog.String("reservation_id", r.ID.String()),
		slog.String("status", string(r.Status)))
	return nil
}

// CreateItem implements store.ReservationStore.CreateItem
func (s *PostgresReservationStore) CreateItem(ctx context.Context, item *domain.ReservedDress) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("reserved dress validation failed",
			slog.String("error", err.Error()),
			slog.String("reservation_id", item.ReservationID.String()))
		return err
	}

	query := `
		INSERT INTO reserved_dresses (id, reservation_id, dress_id, option1_id, option2_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.ReservationID,
		item.DressID,
		item.Option1ID,
		item.Option2ID,
		item.Quantity,
	)
	if err != nil {
		log.Error("failed to create reserved dress",
			slog.String("error", err.Error()),
			slog.String("reservation_id", item.ReservationID.String()),
			slog.String("dress_id", item.DressID.String()))
		return MapError(err)
	}
	return nil
}

// GetForUpdate implements store.ReservationStore.GetForUpdate
func (s *PostgresReservationStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.DressReservation, error) {
	return s.get(ctx, `SELECT `+reservationColumns+` FROM dress_reservations WHERE id = $1 FOR UPDATE`, id)
}

func (s *PostgresReservationStore) get(ctx context.Context, query string, id uuid.UUID) (*domain.DressReservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var (
		r      domain.DressReservation
		status string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID,
		&r.StoreID,
		&r.UserID,
		&status,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		err = MapEntityError(err, store.ErrReservationNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("reservation not found", slog.String("reservation_id", id.String()))
			return nil, err
		}
		log.Error("failed to get reservation",
			slog.String("error", err.Error()),
			slog.String("reservation_id", id.String()))
		return nil, err
	}

	r.Status, err = parseStoredStatus(status)
	if err != nil {
		log.Error("reservation has unknown status",
			slog.String("reservation_id", id.String()),
			slog.String("status", status))
		return nil, err
	}
	return &r, nil
}

// UpdateStatus implements store.ReservationStore.UpdateStatus
func (s *PostgresReservationStore) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.ReservationStatus,
	updatedAt time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !status.Valid() {
		return domain.ErrInvalidReservationStatus
	}

	query := `
		UPDATE dress_reservations
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		log.Error("failed to update reservation status",
			slog.String("error", err.Error()),
			slog.String("reservation_id", id.String()),
			slog.String("status", string(status)))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrReservationNotFound); err != nil {
		return err
	}

	log.Info("reservation status updated",
		slog.String("reservation_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// FindOrderLines implements store.ReservationStore.FindOrderLines
func (s *PostgresReservationStore) FindOrderLines(
	ctx context.Context,
	reservationID, userID uuid.UUID,
) ([]*domain.OrderLine, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT r.id, r.status, s.name,
			d.id, d.name, d.price, COALESCE(img.key, ''),
			o1.name, o2.name, rd.quantity, r.created_at
		FROM dress_reservations r
		JOIN stores s ON s.id = r.store_id
		JOIN reserved_dresses rd ON rd.reservation_id = r.id
		JOIN dresses d ON d.id = rd.dress_id
		JOIN dress_option_details o1 ON o1.id = rd.option1_id
		JOIN dress_option_details o2 ON o2.id = rd.option2_id` + firstImageJoin + `
		WHERE r.id = $1 AND r.user_id = $2
		ORDER BY rd.seq
	`

	rows, err := s.db.QueryContext(ctx, query, reservationID, userID)
	if err != nil {
		log.Error("failed to query order lines",
			slog.String("error", err.Error()),
			slog.String("reservation_id", reservationID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	lines := make([]*domain.OrderLine, 0)
	for rows.Next() {
		var (
			line   domain.OrderLine
			status string
		)
		if err := rows.Scan(
			&line.ReservationID,
			&status,
			&line.StoreName,
			&line.DressID,
			&line.DressName,
			&line.Price,
			&line.ImageKey,
			&line.Option1Name,
			&line.Option2Name,
			&line.Quantity,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		if line.Status, err = parseStoredStatus(status); err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FindOrderSummaries implements store.ReservationStore.FindOrderSummaries
func (s *PostgresReservationStore) FindOrderSummaries(
	ctx context.Context,
	userID uuid.UUID,
	status *domain.ReservationStatus,
) ([]*domain.OrderSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT r.id, r.status, s.name,
			COALESCE(first.name, ''), COALESCE(first.image_key, ''),
			COALESCE(agg.item_count, 0), COALESCE(agg.total_quantity, 0),
			r.created_at
		FROM dress_reservations r
		JOIN stores s ON s.id = r.store_id
		LEFT JOIN LATERAL (
			SELECT d.name,
				(SELECT di.key FROM dress_images di WHERE di.dress_id = d.id ORDER BY di.position LIMIT 1) AS image_key
			FROM reserved_dresses rd
			JOIN dresses d ON d.id = rd.dress_id
			WHERE rd.reservation_id = r.id
			ORDER BY rd.seq
			LIMIT 1
		) first ON true
		LEFT JOIN LATERAL (
			SELECT COUNT(*) AS item_count, SUM(rd.quantity) AS total_quantity
			FROM reserved_dresses rd
			WHERE rd.reservation_id = r.id
		) agg ON true
		WHERE r.user_id = $1
		  AND ($2::text IS NULL OR r.status = $2)
		ORDER BY r.created_at DESC, r.id
	`

	var statusArg sql.NullString
	if status != nil {
		statusArg = sql.NullString{String: string(*status), Valid: true}
	}

	rows, err := s.db.QueryContext(ctx, query, userID, statusArg)
	if err != nil {
		log.Error("failed to query order summaries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	summaries := make([]*domain.OrderSummary, 0)
	for rows.Next() {
		var (
			sum       domain.OrderSummary
			rawStatus string
		)
		if err := rows.Scan(
			&sum.ReservationID,
			&rawStatus,
			&sum.StoreName,
			&sum.DressName,
			&sum.ImageKey,
			&sum.ItemCount,
			&sum.TotalQuantity,
			&sum.CreatedAt,
		); err != nil {
			return nil, err
		}
		if sum.Status, err = parseStoredStatus(rawStatus); err != nil {
			return nil, err
		}
		summaries = append(summaries, &sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("order summaries loaded",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(summaries)))
	return summaries, nil
}

// WithTx implements store.ReservationStore.WithTx
func (s *PostgresReservationStore) WithTx(tx *sql.Tx) store.ReservationStore {
	return &PostgresReservationStore{db: tx, logger: s.logger}
}

func parseStoredStatus(raw string) (domain.ReservationStatus, error) {
	status, err := domain.ParseReservationStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w: stored reservation status %q: %v", store.ErrInvalidEntity, raw, err)
	}
	return status, nil
}
